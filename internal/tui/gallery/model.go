// Package gallery is the interactive style gallery: one section per widget
// category, every swatch rendered through the style engine so the footer's
// cache statistics reflect real resolution traffic.
package gallery

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/veneer-ui/veneer/internal/widgets"
)

// Section identifies one page of the gallery.
type Section int

const (
	SectionText Section = iota
	SectionControls
	SectionInputs
	SectionContainers
	SectionTokens
	sectionCount
)

var sectionTitles = map[Section]string{
	SectionText:       "Text",
	SectionControls:   "Controls",
	SectionInputs:     "Inputs",
	SectionContainers: "Containers",
	SectionTokens:     "Tokens",
}

// Model is the gallery model.
type Model struct {
	factory *widgets.Factory

	section  Section
	width    int
	height   int
	help     help.Model
	keys     keyMap
	showHelp bool
	errMsg   string
}

// NewModel creates a gallery over a widget factory.
func NewModel(factory *widgets.Factory) Model {
	return Model{
		factory: factory,
		section: SectionText,
		keys:    defaultKeyMap(),
		help:    help.New(),
		width:   80,
		height:  24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Title returns the display name of a section.
func (s Section) Title() string {
	return sectionTitles[s]
}
