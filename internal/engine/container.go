package engine

import (
	"strings"

	"github.com/veneer-ui/veneer/internal/registry"
	"github.com/veneer-ui/veneer/internal/shade"
	"github.com/veneer-ui/veneer/internal/stylekey"
	veneererrors "github.com/veneer-ui/veneer/pkg/errors"
)

// ContainerParams is the request for a container (frame, card, panel)
// style. The zero value resolves to a SECONDARY/LIGHT surface with a thin
// border and MD padding. BgFamily/BgShade override Role/Shade when set;
// they follow the both-or-neither rule.
type ContainerParams struct {
	Kind     ContainerKind
	Role     string
	Shade    shade.Name
	Border   string
	Padding  string
	BgFamily string
	BgShade  shade.Name
}

// ResolveContainerStyle validates the request, canonicalises it, and
// returns the handle of the registered container style.
func (e *Engine) ResolveContainerStyle(p ContainerParams) (registry.Handle, error) {
	kind, err := parseContainerKind(p.Kind)
	if err != nil {
		return "", err
	}

	family, sh, err := e.containerBackground(p)
	if err != nil {
		return "", err
	}
	scale, err := e.store.ColorFamily(family)
	if err != nil {
		return "", err
	}
	bgHex, err := scale.Get(sh)
	if err != nil {
		return "", err
	}

	borderToken, borderWidth, err := e.resolveBorder(p.Border, "THIN")
	if err != nil {
		return "", err
	}
	paddingToken, padX, padY, err := e.resolvePadding(p.Padding, "MD")
	if err != nil {
		return "", err
	}

	key := stylekey.Build(stylekey.Request{
		Category: "container",
		Variant:  strings.ToLower(string(kind)),
		Extras: map[string]string{
			"bg":      strings.ToUpper(family) + ":" + string(sh),
			"border":  borderToken,
			"padding": paddingToken,
		},
	})

	return e.resolve(key, registry.Spec{
		Background:  bgHex,
		BorderWidth: borderWidth,
		BorderColor: borderColorFor(scale, borderWidth),
		PaddingX:    padX,
		PaddingY:    padY,
	})
}

func (e *Engine) containerBackground(p ContainerParams) (family string, sh shade.Name, err error) {
	if p.BgFamily != "" || p.BgShade != "" {
		if p.BgFamily == "" || p.BgShade == "" {
			return "", "", veneererrors.NewValidationError("container.bg", "background family and shade must both be set or both be empty", nil)
		}
		sh, err = shade.Parse(string(p.BgShade))
		if err != nil {
			return "", "", err
		}
		return p.BgFamily, sh, nil
	}

	family = p.Role
	if family == "" {
		family = "SECONDARY"
	}
	sh = shade.Light
	if p.Shade != "" {
		sh, err = shade.Parse(string(p.Shade))
		if err != nil {
			return "", "", err
		}
	}
	return family, sh, nil
}

// resolveBorder maps a border token (defaulted when empty) to its canonical
// label and width. A zero width always canonicalises to "NONE" so that
// NONE-by-name and NONE-by-width share a key.
func (e *Engine) resolveBorder(token, fallback string) (label string, width int, err error) {
	if token == "" {
		token = fallback
	}
	token = strings.ToUpper(token)
	width, err = e.store.BorderWeight(token)
	if err != nil {
		return "", 0, err
	}
	if width == 0 {
		return "NONE", 0, nil
	}
	return token, width, nil
}

// resolvePadding maps a spacing token (defaulted when empty) to its label
// and cell padding. "NONE" disables padding.
func (e *Engine) resolvePadding(token, fallback string) (label string, x, y int, err error) {
	if token == "" {
		token = fallback
	}
	token = strings.ToUpper(token)
	if token == "NONE" {
		return "NONE", 0, 0, nil
	}
	px, err := e.store.Spacing(token)
	if err != nil {
		return "", 0, 0, err
	}
	x, y = e.paddingCells(px)
	return token, x, y, nil
}

// borderColorFor picks the border colour for a surface: the DARK shade of
// its own family, so borders always read as an outline of the surface.
func borderColorFor(scale shade.Scale, width int) string {
	if width == 0 {
		return ""
	}
	return scale.Dark
}
