package engine

import (
	"strings"

	"github.com/veneer-ui/veneer/internal/registry"
	"github.com/veneer-ui/veneer/internal/shade"
	"github.com/veneer-ui/veneer/internal/stylekey"
)

// InputParams is the request for an input field (entry, combobox, spinbox)
// style. The zero value resolves to a SECONDARY/LIGHT entry with a thin
// border and SM padding. Status roles (SUCCESS, WARNING, ERROR) restyle the
// field surface and border for validation feedback.
type InputParams struct {
	Control InputControl
	Role    string
	Shade   shade.Name
	Border  string
	Padding string
}

// ResolveInputStyle validates the request, canonicalises it, and returns
// the handle of the registered input style. Text inside the field is always
// black; the role only drives surface and border colours.
func (e *Engine) ResolveInputStyle(p InputParams) (registry.Handle, error) {
	control, err := parseInputControl(p.Control)
	if err != nil {
		return "", err
	}

	role := p.Role
	if role == "" {
		role = "SECONDARY"
	}
	sh := shade.Light
	if p.Shade != "" {
		sh, err = shade.Parse(string(p.Shade))
		if err != nil {
			return "", err
		}
	}

	scale, err := e.store.ColorFamily(role)
	if err != nil {
		return "", err
	}
	bgHex, err := scale.Get(sh)
	if err != nil {
		return "", err
	}
	fgHex, err := e.store.TextColor("BLACK")
	if err != nil {
		return "", err
	}

	borderToken, borderWidth, err := e.resolveBorder(p.Border, "THIN")
	if err != nil {
		return "", err
	}
	paddingToken, padX, padY, err := e.resolvePadding(p.Padding, "SM")
	if err != nil {
		return "", err
	}

	key := stylekey.Build(stylekey.Request{
		Category: "input",
		Variant:  strings.ToLower(string(control)),
		Extras: map[string]string{
			"bg":      strings.ToUpper(role) + ":" + string(sh),
			"border":  borderToken,
			"padding": paddingToken,
		},
	})

	return e.resolve(key, registry.Spec{
		Foreground:  fgHex,
		Background:  bgHex,
		BorderWidth: borderWidth,
		BorderColor: borderColorFor(scale, borderWidth),
		PaddingX:    padX,
		PaddingY:    padY,
	})
}
