package lcbreader

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/andrewkroh/go-celestial-db/internal/errs"
)

// CleanDesignatedName strips surrounding whitespace and, when the value
// holds more than one whitespace-separated token, drops the leading
// designation so that "   433 Eros (A898 PA)" becomes "Eros (A898 PA)".
// Single-token names such as "1P/Halley" are returned unchanged.
func CleanDesignatedName(s string) string {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s
	}
	return strings.TrimLeftFunc(s[i:], unicode.IsSpace)
}

// Unit is a unit token recognised inside a quantity string. PerBase is how
// many of this unit make one base unit, so a value v in this unit is
// v / PerBase in the base unit.
type Unit struct {
	Token   string
	PerBase float64
}

// MassUnits normalise masses to kilograms. Tokens are matched by substring
// in order, so longer tokens that contain "g" come first.
var MassUnits = []Unit{
	{Token: "mg", PerBase: 1e6},
	{Token: "kg", PerBase: 1},
	{Token: "tonne", PerBase: 1e-3},
	{Token: "g", PerBase: 1e3},
}

// LengthUnits normalise lengths to kilometres.
var LengthUnits = []Unit{
	{Token: "km", PerBase: 1},
	{Token: "m", PerBase: 1e3},
}

// ParseQuantity parses a number followed by an optional unit token, such
// as "21 g" or "1.5 kg", and converts it to the base unit of units. The
// string is truncated at its first non-printable character and the number
// is the text before the first space. A missing unit means the base unit.
// Malformed numbers, negative or non-finite values, and unrecognised units
// are row errors.
func ParseQuantity(s string, units []Unit) (float64, error) {
	num, rest := splitQuantity(s)

	v, err := parseNonNegative(num)
	if err != nil {
		return 0, err
	}

	rest = strings.ToLower(strings.TrimSpace(rest))
	if rest == "" {
		return v, nil
	}
	for _, u := range units {
		if strings.Contains(rest, u.Token) {
			return v / u.PerBase, nil
		}
	}
	return 0, errs.Newf(errs.ErrKindInvalidRow, "unknown unit %q", rest)
}

// ParseNumber parses the leading number of s and ignores any trailing
// annotation.
func ParseNumber(s string) (float64, error) {
	num, _ := splitQuantity(s)
	return parseNonNegative(num)
}

func splitQuantity(s string) (num, rest string) {
	if i := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsPrint(r) }); i >= 0 {
		s = s[:i]
	}
	num, rest, _ = strings.Cut(strings.TrimSpace(s), " ")
	return num, rest
}

func parseNonNegative(num string) (float64, error) {
	if num == "" {
		return 0, errs.New(errs.ErrKindInvalidRow, "missing number")
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, errs.Wrap(errs.ErrKindInvalidRow, "parsing number", err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, errs.Newf(errs.ErrKindInvalidRow, "value %q out of range", num)
	}
	return v, nil
}
