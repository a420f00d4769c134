package tui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// PickItem is one selectable installation in the picker.
type PickItem struct {
	Name    string
	Version string
	Path    string
}

// PickerModel is a bubbletea model that lets the user choose one
// installation from a list with the arrow keys.
type PickerModel struct {
	title  string
	items  []PickItem
	cursor int

	chosen   bool
	finished bool
}

// NewPickerModel creates a picker over the given items.
func NewPickerModel(title string, items []PickItem) PickerModel {
	return PickerModel{title: title, items: items}
}

// Choice returns the selected item. ok is false when the user aborted.
func (m PickerModel) Choice() (PickItem, bool) {
	if !m.chosen || m.cursor >= len(m.items) {
		return PickItem{}, false
	}
	return m.items[m.cursor], true
}

// Init satisfies the tea.Model interface.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update satisfies the tea.Model interface.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.items) > 0 {
			m.chosen = true
		}
		m.finished = true
		return m, tea.Quit
	case "q", "esc", "ctrl+c":
		m.finished = true
		return m, tea.Quit
	}
	return m, nil
}

// View satisfies the tea.Model interface.
func (m PickerModel) View() string {
	if m.finished {
		return ""
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(m.title))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("%s  %s", item.Name, DimStyle.Render(item.Version))
		if i == m.cursor {
			b.WriteString(SelectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("up/down: move • enter: select • q: cancel"))
	b.WriteString("\n")
	return b.String()
}

// RunPicker shows the picker on out and returns the selected item.
// ok is false when the user cancelled.
func RunPicker(out io.Writer, title string, items []PickItem) (PickItem, bool, error) {
	p := tea.NewProgram(NewPickerModel(title, items), tea.WithOutput(out))
	finalModel, err := p.Run()
	if err != nil {
		return PickItem{}, false, err
	}
	m, ok := finalModel.(PickerModel)
	if !ok {
		return PickItem{}, false, nil
	}
	item, chosen := m.Choice()
	return item, chosen, nil
}
