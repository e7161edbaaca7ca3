package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jfdoradotr/navstack/pkg/navpath"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func updateList(t *testing.T, m listModel, keys ...string) listModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		var ok bool
		m, ok = next.(listModel)
		if !ok {
			t.Fatalf("Update returned %T, want listModel", next)
		}
	}
	return m
}

func updateStack(t *testing.T, m stackModel, keys ...string) stackModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		var ok bool
		m, ok = next.(stackModel)
		if !ok {
			t.Fatalf("Update returned %T, want stackModel", next)
		}
	}
	return m
}

func TestListModelPushAndPop(t *testing.T) {
	items := []navpath.Entry{
		navpath.String("Profile"),
		navpath.String("Settings"),
	}
	m := newListModel("test", items)

	m = updateList(t, m, "enter")
	if !m.path.Equal(navpath.New(navpath.String("Profile"))) {
		t.Fatalf("path after push = %v", m.path)
	}

	m = updateList(t, m, "down", "enter")
	want := navpath.Path{navpath.String("Profile"), navpath.String("Settings")}
	if !m.path.Equal(want) {
		t.Fatalf("path after second push = %v, want %v", m.path, want)
	}

	m = updateList(t, m, "backspace")
	if !m.path.Equal(navpath.New(navpath.String("Profile"))) {
		t.Errorf("path after pop = %v", m.path)
	}
}

func TestListModelCursorBounds(t *testing.T) {
	items := []navpath.Entry{navpath.Int(0), navpath.Int(1)}
	m := newListModel("test", items)

	m = updateList(t, m, "up")
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up at top, want 0", m.cursor)
	}

	m = updateList(t, m, "down", "down", "down")
	if m.cursor != 1 {
		t.Errorf("cursor = %d after down at bottom, want 1", m.cursor)
	}
}

func TestListModelResetReturnsToRoot(t *testing.T) {
	m := newListModel("test", []navpath.Entry{navpath.Int(7)})
	m = updateList(t, m, "enter", "enter", "r")
	if !m.path.IsEmpty() {
		t.Errorf("path after reset = %v, want empty", m.path)
	}
}

func TestListModelPopAtRootStaysAtRoot(t *testing.T) {
	m := newListModel("test", []navpath.Entry{navpath.Int(7)})
	m = updateList(t, m, "backspace")
	if !m.path.IsEmpty() {
		t.Errorf("path = %v, want empty", m.path)
	}
}

func TestListModelViewShowsItems(t *testing.T) {
	m := newListModel("Basic Navigation", []navpath.Entry{navpath.String("Profile")})
	view := m.View()
	if !strings.Contains(view, "Basic Navigation") {
		t.Error("view missing title")
	}
	if !strings.Contains(view, "Profile") {
		t.Error("view missing item")
	}
	if !strings.Contains(view, "root") {
		t.Error("view missing root breadcrumb")
	}
}

func TestStackModelPushesMixedKinds(t *testing.T) {
	m := newStackModel("test", "", nil, 1)
	m = updateStack(t, m, "n", "w")

	if m.path.Len() != 2 {
		t.Fatalf("path length = %d, want 2", m.path.Len())
	}
	if m.path[0].Kind() != navpath.KindInt {
		t.Errorf("first entry kind = %v, want int", m.path[0].Kind())
	}
	if m.path[1].Kind() != navpath.KindString {
		t.Errorf("second entry kind = %v, want string", m.path[1].Kind())
	}
}

func TestStackModelPopAndReset(t *testing.T) {
	m := newStackModel("test", "", nil, 1)
	m = updateStack(t, m, "n", "n", "backspace")
	if m.path.Len() != 1 {
		t.Fatalf("path length after pop = %d, want 1", m.path.Len())
	}

	m = updateStack(t, m, "r")
	if !m.path.IsEmpty() {
		t.Errorf("path after reset = %v, want empty", m.path)
	}
}

func TestStackModelDeterministicWithSeed(t *testing.T) {
	a := updateStack(t, newStackModel("a", "", nil, 42), "n", "w", "n")
	b := updateStack(t, newStackModel("b", "", nil, 42), "n", "w", "n")

	if !a.path.Equal(b.path) {
		t.Errorf("same seed produced different paths: %v vs %v", a.path, b.path)
	}
}

func TestStackModelViewShowsRawArray(t *testing.T) {
	m := newStackModel("test", "stays local", nil, 1)
	m = updateStack(t, m, "n")

	view := m.View()
	if !strings.Contains(view, "path = [") {
		t.Error("view missing raw array display")
	}
	if !strings.Contains(view, "stays local") {
		t.Error("view missing footer")
	}
}

func TestRenderTrailEmptyPathIsRootOnly(t *testing.T) {
	trail := renderTrail(nil)
	if !strings.Contains(trail, "root") {
		t.Errorf("trail = %q, want root marker", trail)
	}
}

func TestRenderScreenForTailKinds(t *testing.T) {
	intScreen := renderScreen(navpath.New(navpath.Int(556)))
	if !strings.Contains(intScreen, "556") {
		t.Errorf("int screen missing value: %q", intScreen)
	}

	strScreen := renderScreen(navpath.New(navpath.String("Hello")))
	if !strings.Contains(strScreen, "Hello") {
		t.Errorf("string screen missing value: %q", strScreen)
	}

	rootScreen := renderScreen(nil)
	if !strings.Contains(rootScreen, "Root") {
		t.Errorf("root screen missing marker: %q", rootScreen)
	}
}
