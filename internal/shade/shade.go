package shade

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	veneererrors "github.com/veneer-ui/veneer/pkg/errors"
)

// Name identifies one of the four canonical lightness variants derived from
// a base colour. These are the only shade names the framework recognises;
// the historical "MEDIUM" alias for MID is deliberately not accepted.
type Name string

const (
	Light Name = "LIGHT"
	Mid   Name = "MID"
	Dark  Name = "DARK"
	XDark Name = "XDARK"
)

// Names returns the canonical shades ordered by decreasing lightness.
func Names() []Name {
	return []Name{Light, Mid, Dark, XDark}
}

// Parse maps a case-insensitive shade token to its canonical Name.
func Parse(s string) (Name, error) {
	switch Name(strings.ToUpper(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Mid:
		return Mid, nil
	case Dark:
		return Dark, nil
	case XDark:
		return XDark, nil
	default:
		return "", veneererrors.NewUnknownTokenError("shade", s)
	}
}

// Lightness deltas applied to the base colour's HSL lightness channel.
// MID is always the base unchanged.
const (
	deltaLight = 0.12
	deltaDark  = -0.10
	deltaXDark = -0.25
)

// Scale is the ordered 4-shade family derived from one base colour. Values
// are upper-case "#RRGGBB" strings. A Scale has no identity of its own; it
// is owned by the colour family it was derived for.
type Scale struct {
	Light string
	Mid   string
	Dark  string
	XDark string
}

// Get returns the hex value for a canonical shade name.
func (s Scale) Get(name Name) (string, error) {
	switch name {
	case Light:
		return s.Light, nil
	case Mid:
		return s.Mid, nil
	case Dark:
		return s.Dark, nil
	case XDark:
		return s.XDark, nil
	default:
		return "", veneererrors.NewUnknownTokenError("shade", string(name))
	}
}

// Derive computes the 4-shade scale for a base colour by shifting its HSL
// lightness channel by fixed deltas and clamping to [0, 1]. The derivation
// is a pure function of the base: no randomness, no hidden state. Clamping
// at the extremes of the lightness range may collapse adjacent shades onto
// the same value; that is accepted, not an error.
func Derive(baseHex string) (Scale, error) {
	base, err := parse(baseHex)
	if err != nil {
		return Scale{}, err
	}

	h, s, l := base.Hsl()

	return Scale{
		Light: shifted(h, s, l, deltaLight),
		Mid:   format(base),
		Dark:  shifted(h, s, l, deltaDark),
		XDark: shifted(h, s, l, deltaXDark),
	}, nil
}

// Lightness returns the HSL lightness channel of a hex colour in [0, 1].
// Used by callers asserting the LIGHT > MID >= DARK > XDARK ordering.
func Lightness(hex string) (float64, error) {
	c, err := parse(hex)
	if err != nil {
		return 0, err
	}
	_, _, l := c.Hsl()
	return l, nil
}

// ContrastRatio computes the WCAG 2.1 contrast ratio between two colours.
// The result is in [1, 21]; 4.5 is the AA threshold for normal text.
func ContrastRatio(a, b string) (float64, error) {
	ca, err := parse(a)
	if err != nil {
		return 0, err
	}
	cb, err := parse(b)
	if err != nil {
		return 0, err
	}

	la := relativeLuminance(ca)
	lb := relativeLuminance(cb)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05), nil
}

func shifted(h, s, l, delta float64) string {
	l = clamp01(l + delta)
	return format(colorful.Hsl(h, s, l).Clamped())
}

func parse(hex string) (colorful.Color, error) {
	trimmed := strings.TrimSpace(hex)
	if !strings.HasPrefix(trimmed, "#") {
		trimmed = "#" + trimmed
	}
	if len(trimmed) != 7 && len(trimmed) != 4 {
		return colorful.Color{}, veneererrors.NewInvalidColorError(hex,
			fmt.Errorf("expected #RGB or #RRGGBB, got %d characters", len(trimmed)))
	}

	c, err := colorful.Hex(strings.ToLower(trimmed))
	if err != nil {
		return colorful.Color{}, veneererrors.NewInvalidColorError(hex, err)
	}
	return c, nil
}

func format(c colorful.Color) string {
	return strings.ToUpper(c.Hex())
}

// relativeLuminance implements the sRGB linearisation from WCAG 2.1 §1.4.3.
func relativeLuminance(c colorful.Color) float64 {
	lin := func(ch float64) float64 {
		if ch <= 0.03928 {
			return ch / 12.92
		}
		return math.Pow((ch+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(c.R) + 0.7152*lin(c.G) + 0.0722*lin(c.B)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
