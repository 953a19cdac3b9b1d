package engine

import (
	"strings"

	"github.com/veneer-ui/veneer/internal/registry"
	"github.com/veneer-ui/veneer/internal/shade"
	"github.com/veneer-ui/veneer/internal/stylekey"
)

// ControlParams is the request for an interactive control (button,
// checkbox, radio, switch) style. The zero value resolves to a PRIMARY
// button: black text on the PRIMARY MID face, DARK hover, XDARK pressed,
// thin DARK border, SM padding. Every shade participates in the style key
// even though the registered style carries the normal state; two controls
// that differ only in hover behaviour are distinct styles.
type ControlParams struct {
	Widget       ControlWidget
	Variant      string
	FgColor      string
	FgFamily     string
	FgShade      shade.Name
	BgFamily     string
	ShadeNormal  shade.Name
	ShadeHover   shade.Name
	ShadePressed shade.Name
	BorderFamily string
	BorderShade  shade.Name
	BorderWeight string
	Padding      string
}

// ResolveControlStyle validates the request, canonicalises it, and returns
// the handle of the registered control style.
func (e *Engine) ResolveControlStyle(p ControlParams) (registry.Handle, error) {
	widget, err := parseControlWidget(p.Widget)
	if err != nil {
		return "", err
	}

	variant := p.Variant
	if variant == "" {
		variant = "PRIMARY"
	}
	variant = strings.ToUpper(variant)
	if _, err := e.store.ColorFamily(variant); err != nil {
		return "", err
	}

	bgFamily := p.BgFamily
	if bgFamily == "" {
		bgFamily = variant
	}
	bgScale, err := e.store.ColorFamily(bgFamily)
	if err != nil {
		return "", err
	}

	normal, err := shadeOrDefault(p.ShadeNormal, shade.Mid)
	if err != nil {
		return "", err
	}
	hover, err := shadeOrDefault(p.ShadeHover, shade.Dark)
	if err != nil {
		return "", err
	}
	pressed, err := shadeOrDefault(p.ShadePressed, shade.XDark)
	if err != nil {
		return "", err
	}
	bgHex, err := bgScale.Get(normal)
	if err != nil {
		return "", err
	}

	fgHex, fgLabel, err := e.resolveTextForeground(TextParams{
		FgColor:  p.FgColor,
		FgFamily: p.FgFamily,
		FgShade:  p.FgShade,
	})
	if err != nil {
		return "", err
	}

	borderFamily := p.BorderFamily
	if borderFamily == "" {
		borderFamily = bgFamily
	}
	borderShade, err := shadeOrDefault(p.BorderShade, shade.Dark)
	if err != nil {
		return "", err
	}
	borderHex, err := e.store.Color(borderFamily, borderShade)
	if err != nil {
		return "", err
	}

	borderToken, borderWidth, err := e.resolveBorder(p.BorderWeight, "THIN")
	if err != nil {
		return "", err
	}
	paddingToken, padX, padY, err := e.resolvePadding(p.Padding, "SM")
	if err != nil {
		return "", err
	}

	key := stylekey.Build(stylekey.Request{
		Category: "control",
		Variant:  strings.ToLower(string(widget)),
		Extras: map[string]string{
			"variant": variant,
			"fg":      fgLabel,
			"bg":      strings.ToUpper(bgFamily) + ":" + string(normal),
			"hover":   string(hover),
			"pressed": string(pressed),
			"bc":      strings.ToUpper(borderFamily) + ":" + string(borderShade),
			"bw":      borderToken,
			"padding": paddingToken,
		},
	})

	spec := registry.Spec{
		Foreground:  fgHex,
		Background:  bgHex,
		Bold:        widget == WidgetButton,
		BorderWidth: borderWidth,
		PaddingX:    padX,
		PaddingY:    padY,
	}
	if borderWidth > 0 {
		spec.BorderColor = borderHex
	}

	return e.resolve(key, spec)
}

func shadeOrDefault(sh shade.Name, fallback shade.Name) (shade.Name, error) {
	if sh == "" {
		return fallback, nil
	}
	canonical, err := shade.Parse(string(sh))
	if err != nil {
		return "", err
	}
	return canonical, nil
}

// ControlStateColors returns the resolved background colours for the
// normal, hover, and pressed states of a control request without
// registering anything. Widgets that render state previews use these
// directly.
func (e *Engine) ControlStateColors(p ControlParams) (normal, hover, pressed string, err error) {
	variant := p.Variant
	if variant == "" {
		variant = "PRIMARY"
	}
	bgFamily := p.BgFamily
	if bgFamily == "" {
		bgFamily = variant
	}
	scale, err := e.store.ColorFamily(bgFamily)
	if err != nil {
		return "", "", "", err
	}

	shades := []struct {
		requested shade.Name
		fallback  shade.Name
		out       *string
	}{
		{p.ShadeNormal, shade.Mid, &normal},
		{p.ShadeHover, shade.Dark, &hover},
		{p.ShadePressed, shade.XDark, &pressed},
	}
	for _, entry := range shades {
		sh, err := shadeOrDefault(entry.requested, entry.fallback)
		if err != nil {
			return "", "", "", err
		}
		hex, err := scale.Get(sh)
		if err != nil {
			return "", "", "", err
		}
		*entry.out = hex
	}

	return normal, hover, pressed, nil
}
