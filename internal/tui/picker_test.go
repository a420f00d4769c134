package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func testItems() []PickItem {
	return []PickItem{
		{Name: "Visual Studio Community 2022", Version: "17.9.5", Path: `C:\VS2022`},
		{Name: "Visual Studio Professional 2019", Version: "16.11.34", Path: `C:\VS2019`},
	}
}

func TestPickerSelectsUnderCursor(t *testing.T) {
	m := NewPickerModel("pick", testItems())

	updated, _ := m.Update(keyMsg("down"))
	m = updated.(PickerModel)
	updated, cmd := m.Update(keyMsg("enter"))
	m = updated.(PickerModel)

	if cmd == nil {
		t.Fatal("expected tea.Quit command after enter")
	}
	item, ok := m.Choice()
	if !ok {
		t.Fatal("expected a choice after enter")
	}
	if item.Path != `C:\VS2019` {
		t.Fatalf("expected second item, got %q", item.Path)
	}
}

func TestPickerCursorStaysInBounds(t *testing.T) {
	m := NewPickerModel("pick", testItems())

	for i := 0; i < 5; i++ {
		updated, _ := m.Update(keyMsg("down"))
		m = updated.(PickerModel)
	}
	if m.cursor != 1 {
		t.Fatalf("cursor ran past the list: %d", m.cursor)
	}

	for i := 0; i < 5; i++ {
		updated, _ := m.Update(keyMsg("up"))
		m = updated.(PickerModel)
	}
	if m.cursor != 0 {
		t.Fatalf("cursor ran before the list: %d", m.cursor)
	}
}

func TestPickerAbort(t *testing.T) {
	m := NewPickerModel("pick", testItems())

	updated, cmd := m.Update(keyMsg("q"))
	m = updated.(PickerModel)

	if cmd == nil {
		t.Fatal("expected tea.Quit command after q")
	}
	if _, ok := m.Choice(); ok {
		t.Fatal("aborting must not produce a choice")
	}
}

func TestPickerEnterOnEmptyList(t *testing.T) {
	m := NewPickerModel("pick", nil)

	updated, _ := m.Update(keyMsg("enter"))
	m = updated.(PickerModel)

	if _, ok := m.Choice(); ok {
		t.Fatal("empty list must not produce a choice")
	}
}
