package catalog

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// Parser reads catalog files.
type Parser struct {
	parser *participle.Parser[File]
}

// NewParser creates a new catalog parser instance
func NewParser() (*Parser, error) {
	parser, err := participle.Build[File](
		participle.Lexer(CatalogLexer),
		participle.Elide("Comment", "Whitespace"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// Parse parses a catalog from a reader
func (p *Parser) Parse(r io.Reader) (*File, error) {
	return p.parse("", r)
}

// ParseString parses a catalog from a string
func (p *Parser) ParseString(input string) (*File, error) {
	return p.parse("", strings.NewReader(input))
}

// ParseFile parses a catalog from a file path
func (p *Parser) ParseFile(filename string) (*File, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.parse(filename, file)
}

// parse terminates the input with a newline so the last record needs none.
func (p *Parser) parse(name string, r io.Reader) (*File, error) {
	file, err := p.parser.Parse(name, io.MultiReader(r, strings.NewReader("\n")))
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return file, nil
}
