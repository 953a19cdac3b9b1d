package gallery

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/veneer-ui/veneer/internal/engine"
	"github.com/veneer-ui/veneer/internal/shade"
)

// View implements tea.Model. Every styled fragment goes through the widget
// factory; rendering the gallery is what populates the style cache the
// footer reports on.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(m.renderSection())
	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, int(sectionCount))
	for s := Section(0); s < sectionCount; s++ {
		title := " " + s.Title() + " "
		var rendered string
		var err error
		if s == m.section {
			rendered, err = m.factory.Badge(title, "PRIMARY")
		} else {
			rendered, err = m.factory.Small(title)
		}
		if err != nil {
			rendered = title
		}
		tabs = append(tabs, rendered)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, tabs...)
}

func (m Model) renderSection() string {
	var lines []string
	var err error

	switch m.section {
	case SectionText:
		lines, err = m.textSection()
	case SectionControls:
		lines, err = m.controlsSection()
	case SectionInputs:
		lines, err = m.inputsSection()
	case SectionContainers:
		lines, err = m.containersSection()
	case SectionTokens:
		lines, err = m.tokensSection()
	}
	if err != nil {
		return "render error: " + err.Error()
	}

	return strings.Join(lines, "\n")
}

func (m Model) textSection() ([]string, error) {
	renders := []func() (string, error){
		func() (string, error) { return m.factory.Heading("Heading 16pt bold") },
		func() (string, error) { return m.factory.Body("Body text, 11pt") },
		func() (string, error) { return m.factory.Small("Small de-emphasised text") },
		func() (string, error) { return m.factory.SuccessText("Success message") },
		func() (string, error) { return m.factory.WarningText("Warning message") },
		func() (string, error) { return m.factory.ErrorText("Error message") },
	}
	return collect(renders)
}

func (m Model) controlsSection() ([]string, error) {
	variants := []string{"PRIMARY", "SUCCESS", "WARNING", "ERROR"}
	lines := make([]string, 0, len(variants)+2)

	for _, variant := range variants {
		button, err := m.factory.Button(" "+variant+" ", engine.ControlParams{
			Variant: variant,
			FgColor: "WHITE",
		})
		if err != nil {
			return nil, err
		}

		normal, hover, pressed, err := m.factory.Engine().ControlStateColors(engine.ControlParams{Variant: variant})
		if err != nil {
			return nil, err
		}
		states, err := m.factory.Small(fmt.Sprintf("  normal %s  hover %s  pressed %s", normal, hover, pressed))
		if err != nil {
			return nil, err
		}

		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Center, button, states))
	}

	return lines, nil
}

func (m Model) inputsSection() ([]string, error) {
	renders := []func() (string, error){
		func() (string, error) { return m.factory.DefaultEntry(" name@example.com          ") },
		func() (string, error) { return m.factory.ErrorEntry(" not-an-email              ") },
		func() (string, error) {
			return m.factory.Field(" Option A ▾                ", engine.InputParams{Control: engine.ControlCombobox})
		},
		func() (string, error) {
			return m.factory.Field(" 42 ⬍                      ", engine.InputParams{Control: engine.ControlSpinbox})
		},
	}
	return collect(renders)
}

func (m Model) containersSection() ([]string, error) {
	body, err := m.factory.Body("Card content on a light surface")
	if err != nil {
		return nil, err
	}
	card, err := m.factory.Card(body, engine.ContainerParams{})
	if err != nil {
		return nil, err
	}

	status, err := m.factory.SuccessText("Status card")
	if err != nil {
		return nil, err
	}
	statusCard, err := m.factory.Card(status, engine.ContainerParams{Role: "SUCCESS", Shade: shade.Light})
	if err != nil {
		return nil, err
	}

	panelBody, err := m.factory.Small("Borderless panel with LG padding")
	if err != nil {
		return nil, err
	}
	panel, err := m.factory.Panel(panelBody)
	if err != nil {
		return nil, err
	}

	return []string{card, "", statusCard, "", panel}, nil
}

func (m Model) tokensSection() ([]string, error) {
	store := m.factory.Engine().Store()
	lines := make([]string, 0, len(store.FamilyNames())+2)

	for _, family := range store.FamilyNames() {
		swatches := make([]string, 0, len(shade.Names())+1)
		label, err := m.factory.Body(fmt.Sprintf("%-10s", family))
		if err != nil {
			return nil, err
		}
		swatches = append(swatches, label)

		for _, sh := range shade.Names() {
			swatch, err := m.factory.Text("      ", engine.TextParams{BgFamily: family, BgShade: sh})
			if err != nil {
				return nil, err
			}
			swatches = append(swatches, swatch)
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Center, swatches...))
	}

	spacing := make([]string, 0, 6)
	for _, name := range store.SpacingNames() {
		px, err := store.Spacing(name)
		if err != nil {
			return nil, err
		}
		spacing = append(spacing, fmt.Sprintf("%s=%dpx", name, px))
	}
	spacingLine, err := m.factory.Small("spacing  " + strings.Join(spacing, "  "))
	if err != nil {
		return nil, err
	}
	lines = append(lines, "", spacingLine)

	return lines, nil
}

func (m Model) renderFooter() string {
	stats := m.factory.Engine().CacheStats()
	registrations := m.factory.Engine().Registry().Registrations()

	summary, err := m.factory.Small(fmt.Sprintf(
		"styles %d  hits %d  misses %d  registered %d",
		stats.Entries, stats.Hits, stats.Misses, registrations,
	))
	if err != nil {
		summary = ""
	}

	return summary + "\n" + m.help.View(m.keys)
}

func collect(renders []func() (string, error)) ([]string, error) {
	lines := make([]string, 0, len(renders))
	for _, render := range renders {
		line, err := render()
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
