package engine

import (
	"strings"

	"github.com/veneer-ui/veneer/internal/registry"
	"github.com/veneer-ui/veneer/internal/shade"
	"github.com/veneer-ui/veneer/internal/stylekey"
	veneererrors "github.com/veneer-ui/veneer/pkg/errors"
)

// TextParams is the request for a text style. The zero value resolves to
// black body text with no background. The foreground is either a named text
// colour (FgColor) or a family shade (FgFamily + FgShade); setting both is
// an error. Background family and shade go together: both set or both
// empty.
type TextParams struct {
	FgColor   string
	FgFamily  string
	FgShade   shade.Name
	BgFamily  string
	BgShade   shade.Name
	Size      string
	Bold      bool
	Underline bool
	Italic    bool
}

// ResolveTextStyle validates the request, canonicalises it into a style
// key, and returns the handle of the registered style. Identical requests
// return the same handle without touching the native registry again.
func (e *Engine) ResolveTextStyle(p TextParams) (registry.Handle, error) {
	size := p.Size
	if size == "" {
		size = "BODY"
	}
	size = strings.ToUpper(size)
	if _, err := e.store.FontSpec(size); err != nil {
		return "", err
	}

	fgHex, fgLabel, err := e.resolveTextForeground(p)
	if err != nil {
		return "", err
	}

	bgHex, bgLabel, err := e.resolveOptionalBackground(p.BgFamily, p.BgShade)
	if err != nil {
		return "", err
	}

	extras := map[string]string{
		"fg":   fgLabel,
		"size": size,
	}
	if bgLabel != "" {
		extras["bg"] = bgLabel
	}
	if p.Bold {
		extras["bold"] = "true"
	}
	if p.Underline {
		extras["underline"] = "true"
	}
	if p.Italic {
		extras["italic"] = "true"
	}

	key := stylekey.Build(stylekey.Request{Category: "text", Variant: "label", Extras: extras})

	return e.resolve(key, registry.Spec{
		Foreground: fgHex,
		Background: bgHex,
		Bold:       p.Bold,
		Underline:  p.Underline,
		Italic:     p.Italic,
	})
}

func (e *Engine) resolveTextForeground(p TextParams) (hex, label string, err error) {
	if p.FgFamily != "" {
		if p.FgColor != "" {
			return "", "", veneererrors.NewValidationError("text.fg", "fg colour token and fg family are mutually exclusive", nil)
		}
		sh := shade.Mid
		if p.FgShade != "" {
			sh, err = shade.Parse(string(p.FgShade))
			if err != nil {
				return "", "", err
			}
		}
		hex, err = e.store.Color(p.FgFamily, sh)
		if err != nil {
			return "", "", err
		}
		return hex, strings.ToUpper(p.FgFamily) + ":" + string(sh), nil
	}

	if p.FgShade != "" {
		return "", "", veneererrors.NewValidationError("text.fg", "fg shade requires a fg family", nil)
	}

	color := p.FgColor
	if color == "" {
		color = "BLACK"
	}
	hex, err = e.store.TextColor(color)
	if err != nil {
		return "", "", err
	}
	return hex, strings.ToUpper(color), nil
}

// resolveOptionalBackground enforces the both-or-neither rule shared by
// text and control requests.
func (e *Engine) resolveOptionalBackground(family string, sh shade.Name) (hex, label string, err error) {
	if family == "" && sh == "" {
		return "", "", nil
	}
	if family == "" || sh == "" {
		return "", "", veneererrors.NewValidationError("bg", "background family and shade must both be set or both be empty", nil)
	}

	canonical, err := shade.Parse(string(sh))
	if err != nil {
		return "", "", err
	}
	hex, err = e.store.Color(family, canonical)
	if err != nil {
		return "", "", err
	}
	return hex, strings.ToUpper(family) + ":" + string(canonical), nil
}
