package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m BoxTypeListModel, keys ...string) (BoxTypeListModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		m = next.(BoxTypeListModel)
	}
	return m, cmd
}

var pickerTypes = []string{"angled", "basic", "flex", "tray"}

func TestBoxTypeListStartsOnCurrent(t *testing.T) {
	m := NewBoxTypeListModel(pickerTypes, "flex")
	if m.Cursor != 2 {
		t.Errorf("Cursor = %d, want 2", m.Cursor)
	}
	if m := NewBoxTypeListModel(pickerTypes, "hexagon"); m.Cursor != 0 {
		t.Errorf("unknown current: Cursor = %d, want 0", m.Cursor)
	}
}

func TestBoxTypeListNavigation(t *testing.T) {
	m := NewBoxTypeListModel(pickerTypes, "basic")

	m, _ = press(m, "down", "j", "down")
	if m.Cursor != 3 {
		t.Errorf("Cursor = %d after moving past the end, want 3", m.Cursor)
	}

	m, _ = press(m, "up", "k", "k", "k", "up")
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d after moving past the start, want 0", m.Cursor)
	}
}

func TestBoxTypeListSelect(t *testing.T) {
	m, cmd := press(NewBoxTypeListModel(pickerTypes, "basic"), "down", "enter")
	if m.Selected != "flex" {
		t.Errorf("Selected = %q, want flex", m.Selected)
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
}

func TestBoxTypeListQuit(t *testing.T) {
	m, cmd := press(NewBoxTypeListModel(pickerTypes, "basic"), "q")
	if m.Selected != "" {
		t.Errorf("Selected = %q after quitting, want empty", m.Selected)
	}
	if cmd == nil {
		t.Error("q should quit the program")
	}
}

func TestBoxTypeListView(t *testing.T) {
	view := NewBoxTypeListModel(pickerTypes, "tray").View()
	for _, want := range []string{"Select Box Type", "angled", "living-hinge", "[4/4]"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() does not contain %q", want)
		}
	}
}
