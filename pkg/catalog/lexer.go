package catalog

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// CatalogLexer tokenises delimited catalog files: one "value, tolerance"
// record per line with '#' comments.
var CatalogLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},

	// Decimal and exponent forms: 4700, 4.7e3, .5, 1.
	{Name: "Number", Pattern: `[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`},

	{Name: "Comma", Pattern: `,`},

	// Newlines terminate records.
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
})
