// Package model defines the soil classification domain types shared across the application.
package model

import "fmt"

// Code is an AASHTO group classification.
type Code string

// AASHTO group codes, in decision table order.
const (
	CodeA1a Code = "A-1-a"
	CodeA1b Code = "A-1-b"
	CodeA3  Code = "A-3"
	CodeA24 Code = "A-2-4"
	CodeA25 Code = "A-2-5"
	CodeA26 Code = "A-2-6"
	CodeA27 Code = "A-2-7"
	CodeA4  Code = "A-4"
	CodeA5  Code = "A-5"
	CodeA6  Code = "A-6"
	CodeA7  Code = "A-7"

	// CodeUnclassifiable is returned when no rule matches the sample.
	CodeUnclassifiable Code = "Unclassifiable"
)

var codes = []Code{
	CodeA1a, CodeA1b, CodeA3,
	CodeA24, CodeA25, CodeA26, CodeA27,
	CodeA4, CodeA5, CodeA6, CodeA7,
}

// Codes returns every AASHTO group code, excluding the unclassifiable sentinel.
func Codes() []Code {
	out := make([]Code, len(codes))
	copy(out, codes)
	return out
}

// String returns the code as written in AASHTO M 145.
func (c Code) String() string {
	return string(c)
}

// Valid reports whether c is one of the AASHTO group codes.
func (c Code) Valid() bool {
	for _, code := range codes {
		if c == code {
			return true
		}
	}
	return false
}

// Classified reports whether c is anything other than the unclassifiable sentinel.
func (c Code) Classified() bool {
	return c != CodeUnclassifiable && c != ""
}

// ParseCode converts a string to a Code.
func ParseCode(s string) (Code, error) {
	c := Code(s)
	if c.Valid() || c == CodeUnclassifiable {
		return c, nil
	}
	return "", fmt.Errorf("unknown AASHTO code %q", s)
}

// MaterialType is the coarse granular / silt-clay split on No.200 passing.
type MaterialType string

// Material types.
const (
	MaterialGranular MaterialType = "granular"
	MaterialSiltClay MaterialType = "silt-clay"
)

// Label returns the human-facing name of the material type.
func (m MaterialType) Label() string {
	switch m {
	case MaterialGranular:
		return "Granular Material"
	case MaterialSiltClay:
		return "Silt-Clay Material"
	default:
		return "Unknown Material"
	}
}

// ConstituentsUnknown is the constituent description for codes without one.
const ConstituentsUnknown = "Unknown"
