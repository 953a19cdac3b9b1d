// Package widgets renders themed building blocks on top of the style
// engine. A Factory never composes colours itself; everything visual goes
// through style resolution so repeated renders reuse registered styles.
package widgets

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/veneer-ui/veneer/internal/engine"
	"github.com/veneer-ui/veneer/internal/registry"
	"github.com/veneer-ui/veneer/internal/shade"
)

// Factory builds rendered widgets from semantic parameters.
type Factory struct {
	engine *engine.Engine
}

// NewFactory creates a Factory over a style engine.
func NewFactory(e *engine.Engine) *Factory {
	return &Factory{engine: e}
}

// Engine exposes the underlying style engine.
func (f *Factory) Engine() *engine.Engine {
	return f.engine
}

func (f *Factory) styleFor(handle registry.Handle) (lipgloss.Style, error) {
	style, ok := f.engine.Registry().Style(handle)
	if !ok {
		return lipgloss.Style{}, fmt.Errorf("no registered style for handle %q", handle)
	}
	return style, nil
}

// Text renders content with a resolved text style.
func (f *Factory) Text(content string, p engine.TextParams) (string, error) {
	handle, err := f.engine.ResolveTextStyle(p)
	if err != nil {
		return "", err
	}
	style, err := f.styleFor(handle)
	if err != nil {
		return "", err
	}
	return style.Render(content), nil
}

// Heading renders bold heading-sized text.
func (f *Factory) Heading(content string) (string, error) {
	return f.Text(content, engine.TextParams{Size: "HEADING", Bold: true})
}

// Body renders default body text.
func (f *Factory) Body(content string) (string, error) {
	return f.Text(content, engine.TextParams{})
}

// Small renders de-emphasised small text.
func (f *Factory) Small(content string) (string, error) {
	return f.Text(content, engine.TextParams{FgColor: "GREY", Size: "SMALL"})
}

// ErrorText renders body text in the ERROR family's DARK shade.
func (f *Factory) ErrorText(content string) (string, error) {
	return f.Text(content, engine.TextParams{FgFamily: "ERROR", FgShade: shade.Dark})
}

// SuccessText renders body text in the SUCCESS family's DARK shade.
func (f *Factory) SuccessText(content string) (string, error) {
	return f.Text(content, engine.TextParams{FgFamily: "SUCCESS", FgShade: shade.Dark})
}

// WarningText renders body text in the WARNING family's DARK shade.
func (f *Factory) WarningText(content string) (string, error) {
	return f.Text(content, engine.TextParams{FgFamily: "WARNING", FgShade: shade.Dark})
}

// Button renders a control-styled button face.
func (f *Factory) Button(label string, p engine.ControlParams) (string, error) {
	p.Widget = engine.WidgetButton
	handle, err := f.engine.ResolveControlStyle(p)
	if err != nil {
		return "", err
	}
	style, err := f.styleFor(handle)
	if err != nil {
		return "", err
	}
	return style.Render(label), nil
}

// PrimaryButton renders the default call-to-action button.
func (f *Factory) PrimaryButton(label string) (string, error) {
	return f.Button(label, engine.ControlParams{FgColor: "WHITE"})
}

// Badge renders a compact status label on the variant family's MID shade.
func (f *Factory) Badge(label, variant string) (string, error) {
	return f.Text(label, engine.TextParams{
		FgColor:  "WHITE",
		BgFamily: variant,
		BgShade:  shade.Mid,
		Size:     "SMALL",
		Bold:     true,
	})
}

// Field renders an input field showing the given value or placeholder.
func (f *Factory) Field(value string, p engine.InputParams) (string, error) {
	handle, err := f.engine.ResolveInputStyle(p)
	if err != nil {
		return "", err
	}
	style, err := f.styleFor(handle)
	if err != nil {
		return "", err
	}
	return style.Render(value), nil
}

// DefaultEntry renders a neutral entry field.
func (f *Factory) DefaultEntry(value string) (string, error) {
	return f.Field(value, engine.InputParams{})
}

// ErrorEntry renders an entry field in validation-failure styling.
func (f *Factory) ErrorEntry(value string) (string, error) {
	return f.Field(value, engine.InputParams{Role: "ERROR", Shade: shade.Light, Border: "MEDIUM"})
}

// Card renders content inside a card container.
func (f *Factory) Card(content string, p engine.ContainerParams) (string, error) {
	p.Kind = engine.KindCard
	handle, err := f.engine.ResolveContainerStyle(p)
	if err != nil {
		return "", err
	}
	style, err := f.styleFor(handle)
	if err != nil {
		return "", err
	}
	return style.Render(content), nil
}

// Panel renders content inside a borderless panel with generous padding.
func (f *Factory) Panel(content string) (string, error) {
	handle, err := f.engine.ResolveContainerStyle(engine.ContainerParams{
		Kind:    engine.KindPanel,
		Border:  "NONE",
		Padding: "LG",
	})
	if err != nil {
		return "", err
	}
	style, err := f.styleFor(handle)
	if err != nil {
		return "", err
	}
	return style.Render(content), nil
}
