package passive

import (
	"fmt"
	"strings"
)

// Kind identifies the family a component belongs to.
type Kind int

const (
	Derived Kind = iota
	Resistor
	Capacitor
	Inductor
)

// Kinds lists the catalog kinds in display order.
var Kinds = []Kind{Resistor, Capacitor, Inductor}

func (k Kind) String() string {
	switch k {
	case Resistor:
		return "resistor"
	case Capacitor:
		return "capacitor"
	case Inductor:
		return "inductor"
	default:
		return "derived"
	}
}

// Unit returns the SI unit symbol for values of this kind.
func (k Kind) Unit() string {
	switch k {
	case Resistor:
		return "Ω"
	case Capacitor:
		return "F"
	case Inductor:
		return "H"
	default:
		return ""
	}
}

// Scale converts catalog units to SI units: ohms, picofarads and nanohenries.
func (k Kind) Scale() float64 {
	switch k {
	case Capacitor:
		return 1e-12
	case Inductor:
		return 1e-9
	default:
		return 1
	}
}

// ParseKind accepts the short CLI letters as well as full names.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "r", "res", "resistor":
		return Resistor, nil
	case "c", "cap", "capacitor":
		return Capacitor, nil
	case "l", "ind", "inductor":
		return Inductor, nil
	}
	return Derived, fmt.Errorf("%w %q", ErrUnknownKind, s)
}

// MarshalText implements encoding.TextMarshaler so kinds can key YAML maps.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
