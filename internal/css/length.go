// Package css models the small slice of CSS this project needs: lengths
// with units, and deferred calc() expressions over them.
package css

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit is a CSS length unit.
type Unit int

const (
	Px Unit = iota
	Percent
	Vw
	Vh
	Em
	Rem
	Ch
)

func (u Unit) String() string {
	switch u {
	case Px:
		return "px"
	case Percent:
		return "%"
	case Vw:
		return "vw"
	case Vh:
		return "vh"
	case Em:
		return "em"
	case Rem:
		return "rem"
	case Ch:
		return "ch"
	default:
		return "px"
	}
}

// units is ordered so longer suffixes are tried first ("rem" before "em").
var units = []struct {
	suffix string
	unit   Unit
}{
	{"rem", Rem},
	{"px", Px},
	{"vw", Vw},
	{"vh", Vh},
	{"em", Em},
	{"ch", Ch},
	{"%", Percent},
}

// Length is a CSS length value with its unit, e.g. 240px or 37.5%.
type Length struct {
	Value float64
	Unit  Unit
}

// PxLen returns a pixel length.
func PxLen(v float64) Length { return Length{Value: v, Unit: Px} }

// Parse parses a computed-style length string such as "240px", "-12.5%"
// or "0". Keywords like "auto" and "none" are not lengths and fail.
func Parse(s string) (Length, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Length{}, fmt.Errorf("empty length")
	}
	// Unitless zero is the only unitless length CSS allows.
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if v == 0 {
			return Length{}, nil
		}
		return Length{}, fmt.Errorf("length %q is missing a unit", s)
	}
	for _, u := range units {
		if strings.HasSuffix(s, u.suffix) {
			num := strings.TrimSpace(strings.TrimSuffix(s, u.suffix))
			v, err := strconv.ParseFloat(num, 64)
			if err != nil {
				return Length{}, fmt.Errorf("parsing length %q: %w", s, err)
			}
			return Length{Value: v, Unit: u.unit}, nil
		}
	}
	return Length{}, fmt.Errorf("unsupported length %q", s)
}

// String serializes the length back to CSS text.
func (l Length) String() string {
	return strconv.FormatFloat(l.Value, 'f', -1, 64) + l.Unit.String()
}

// IsZero reports whether the length is exactly zero, regardless of unit.
func (l Length) IsZero() bool { return l.Value == 0 }

// Context supplies the reference values needed to normalize a length
// to pixels. Percentages resolve against the containing block width;
// for this page skeleton that is the viewport.
type Context struct {
	ViewportWidth  float64
	ViewportHeight float64
	FontSize       float64
	RootFontSize   float64
}

// ResolvePx normalizes the length to pixels within ctx.
func (l Length) ResolvePx(ctx Context) (float64, error) {
	switch l.Unit {
	case Px:
		return l.Value, nil
	case Percent:
		return l.Value / 100 * ctx.ViewportWidth, nil
	case Vw:
		return l.Value / 100 * ctx.ViewportWidth, nil
	case Vh:
		return l.Value / 100 * ctx.ViewportHeight, nil
	case Em:
		if ctx.FontSize <= 0 {
			return 0, fmt.Errorf("resolving %s: no font size in context", l)
		}
		return l.Value * ctx.FontSize, nil
	case Rem:
		if ctx.RootFontSize <= 0 {
			return 0, fmt.Errorf("resolving %s: no root font size in context", l)
		}
		return l.Value * ctx.RootFontSize, nil
	case Ch:
		if ctx.FontSize <= 0 {
			return 0, fmt.Errorf("resolving %s: no font size in context", l)
		}
		// Approximation used by layout engines without font metrics.
		return l.Value * ctx.FontSize * 0.5, nil
	default:
		return 0, fmt.Errorf("resolving %s: unknown unit", l)
	}
}
