package engine

import (
	"strings"

	veneererrors "github.com/veneer-ui/veneer/pkg/errors"
)

// ContainerKind names the surface a container style is meant for. The set
// is closed; it feeds the style key, not the visual attributes.
type ContainerKind string

const (
	KindSurface ContainerKind = "SURFACE"
	KindCard    ContainerKind = "CARD"
	KindPanel   ContainerKind = "PANEL"
	KindSection ContainerKind = "SECTION"
)

// InputControl names the input widget type a style targets.
type InputControl string

const (
	ControlEntry    InputControl = "ENTRY"
	ControlCombobox InputControl = "COMBOBOX"
	ControlSpinbox  InputControl = "SPINBOX"
)

// ControlWidget names the interactive control type a style targets.
type ControlWidget string

const (
	WidgetButton   ControlWidget = "BUTTON"
	WidgetCheckbox ControlWidget = "CHECKBOX"
	WidgetRadio    ControlWidget = "RADIO"
	WidgetSwitch   ControlWidget = "SWITCH"
)

var containerKinds = map[ContainerKind]struct{}{
	KindSurface: {}, KindCard: {}, KindPanel: {}, KindSection: {},
}

var inputControls = map[InputControl]struct{}{
	ControlEntry: {}, ControlCombobox: {}, ControlSpinbox: {},
}

var controlWidgets = map[ControlWidget]struct{}{
	WidgetButton: {}, WidgetCheckbox: {}, WidgetRadio: {}, WidgetSwitch: {},
}

func parseContainerKind(kind ContainerKind) (ContainerKind, error) {
	if kind == "" {
		return KindSurface, nil
	}
	canonical := ContainerKind(strings.ToUpper(string(kind)))
	if _, ok := containerKinds[canonical]; !ok {
		return "", veneererrors.NewUnknownTokenError("container kind", string(kind))
	}
	return canonical, nil
}

func parseInputControl(control InputControl) (InputControl, error) {
	if control == "" {
		return ControlEntry, nil
	}
	canonical := InputControl(strings.ToUpper(string(control)))
	if _, ok := inputControls[canonical]; !ok {
		return "", veneererrors.NewUnknownTokenError("input control", string(control))
	}
	return canonical, nil
}

func parseControlWidget(widget ControlWidget) (ControlWidget, error) {
	if widget == "" {
		return WidgetButton, nil
	}
	canonical := ControlWidget(strings.ToUpper(string(widget)))
	if _, ok := controlWidgets[canonical]; !ok {
		return "", veneererrors.NewUnknownTokenError("control widget", string(widget))
	}
	return canonical, nil
}
