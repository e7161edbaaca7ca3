package cli

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jfdoradotr/navstack/pkg/navpath"
	"github.com/jfdoradotr/navstack/pkg/navstore"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)

	screenBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 2)
)

// =============================================================================
// Shared rendering
// =============================================================================

// renderTrail renders the path as a styled breadcrumb.
func renderTrail(p navpath.Path) string {
	parts := []string{StyleHighlight.Render("root")}
	for _, e := range p {
		parts = append(parts, StyleValue.Render(e.Display()))
	}
	return strings.Join(parts, listDimStyle.Render(" / "))
}

// renderScreen builds the view for the top of the stack. The destination is
// constructed here, at display time, from nothing but the tail entry; nothing
// is allocated when an entry is pushed.
func renderScreen(p navpath.Path) string {
	tail, ok := p.Last()
	if !ok {
		return screenBorderStyle.Render(StyleTitle.Render("Root") + "\n" + StyleDim.Render("select something below"))
	}

	var body string
	switch tail.Kind() {
	case navpath.KindInt:
		body = fmt.Sprintf("Number screen for %s", StyleHighlight.Render(tail.Display()))
	case navpath.KindString:
		body = fmt.Sprintf("Detail screen for %s", StyleHighlight.Render(tail.Display()))
	}

	depth := fmt.Sprintf("depth %d", p.Len())
	return screenBorderStyle.Render(StyleTitle.Render(tail.Display()) + "\n" + body + "\n" + StyleDim.Render(depth))
}

// =============================================================================
// listModel - selection-driven navigation (basic and destination demos)
// =============================================================================

// listModel drives navigation from a fixed list of destinations: selecting
// an item pushes it, backspace pops, and the screen for the tail entry is
// built lazily at render time.
type listModel struct {
	title  string
	items  []navpath.Entry
	cursor int
	path   navpath.Path
}

func newListModel(title string, items []navpath.Entry) listModel {
	return listModel{title: title, items: items}
}

func (m listModel) Init() tea.Cmd {
	return nil
}

func (m listModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "enter":
			m.path = m.path.Push(m.items[m.cursor])
		case "backspace", "esc":
			m.path = m.path.Pop()
		case "r":
			m.path = nil
		}
	}
	return m, nil
}

func (m listModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ move  ⏎ push  ⌫ pop  r root  q quit"))
	b.WriteString("\n\n")
	b.WriteString(renderTrail(m.path))
	b.WriteString("\n\n")
	b.WriteString(renderScreen(m.path))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		line := cursor + item.Display()
		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// =============================================================================
// stackModel - programmatic path mutation (stack and persistent demos)
// =============================================================================

// wordPool feeds the random string pushes in the stack demos.
var wordPool = []string{"Hello", "World", "Details", "Profile", "Settings", "Archive"}

// stackModel mutates the path programmatically instead of via selection:
// keys push random entries, pop, or reset to root. With a store attached,
// every mutation is persisted and the starting path is whatever the last
// run left behind.
type stackModel struct {
	title  string
	footer string

	// store is nil for the in-memory variant; mutations then touch only path.
	store *navstore.PathStore
	path  navpath.Path
	ctx   context.Context

	rng *rand.Rand
}

func newStackModel(title, footer string, store *navstore.PathStore, seed int64) stackModel {
	m := stackModel{
		title:  title,
		footer: footer,
		store:  store,
		ctx:    context.Background(),
		rng:    rand.New(rand.NewSource(seed)),
	}
	if store != nil {
		m.path = store.Path()
	}
	return m
}

// current returns the path being displayed.
func (m stackModel) current() navpath.Path {
	return m.path
}

// mutate applies the new path, writing through the store when present.
func (m stackModel) mutate(p navpath.Path) stackModel {
	if m.store != nil {
		m.store.Set(m.ctx, p)
		m.path = m.store.Path()
		return m
	}
	m.path = p
	return m
}

func (m stackModel) Init() tea.Cmd {
	return nil
}

func (m stackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "n":
			m = m.mutate(m.current().Push(navpath.Int(m.rng.Int63n(1000))))
		case "w":
			word := wordPool[m.rng.Intn(len(wordPool))]
			m = m.mutate(m.current().Push(navpath.String(word)))
		case "backspace", "esc":
			m = m.mutate(m.current().Pop())
		case "r":
			m = m.mutate(nil)
		}
	}
	return m, nil
}

func (m stackModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("n push number  w push word  ⌫ pop  r root  q quit"))
	b.WriteString("\n\n")
	b.WriteString(renderTrail(m.path))
	b.WriteString("\n\n")

	// Show the path the way the code sees it: a plain array.
	elems := make([]string, len(m.path))
	for i, e := range m.path {
		elems[i] = fmt.Sprintf("%s(%s)", e.Kind(), e.Display())
	}
	b.WriteString(StyleDim.Render("path = ["))
	b.WriteString(StyleValue.Render(strings.Join(elems, StyleDim.Render(", "))))
	b.WriteString(StyleDim.Render("]"))
	b.WriteString("\n\n")
	b.WriteString(renderScreen(m.path))

	if m.footer != "" {
		b.WriteString("\n\n")
		b.WriteString(listDimStyle.Render(m.footer))
	}

	return b.String()
}
