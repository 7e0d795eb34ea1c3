package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/scorecard/pkg/repository"
)

func testKeys() []repository.Key {
	return []repository.Key{
		{Date: "2021-07-04", Away: "CHC", Home: "STL", GameNumber: 1},
		{Date: "2021-07-04", Away: "NYY", Home: "BOS", GameNumber: 1},
		{Date: "2021-07-04", Away: "NYY", Home: "BOS", GameNumber: 2},
	}
}

func press(m tea.Model, key string) tea.Model {
	var msg tea.KeyMsg
	switch key {
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	m, _ = m.Update(msg)
	return m
}

func TestGameListModelNavigation(t *testing.T) {
	var m tea.Model = NewGameListModel(testKeys())
	m = press(m, "down")
	m = press(m, "j")
	m = press(m, "down") // already at the end
	m = press(m, "up")

	gm := m.(GameListModel)
	if gm.Cursor != 1 {
		t.Fatalf("Cursor = %d, want 1", gm.Cursor)
	}

	m = press(m, "enter")
	gm = m.(GameListModel)
	if gm.Selected == nil || gm.Selected.Home != "BOS" || gm.Selected.GameNumber != 1 {
		t.Errorf("Selected = %+v", gm.Selected)
	}
}

func TestGameListModelQuit(t *testing.T) {
	m := press(NewGameListModel(testKeys()), "q")
	if m.(GameListModel).Selected != nil {
		t.Error("quitting should not select a game")
	}
}

func TestGameListModelView(t *testing.T) {
	view := NewGameListModel(testKeys()).View()
	for _, want := range []string{"Select Game", "CHC", "BOS", "[1/3]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
