package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shhac/travelease/internal/domain"
	"github.com/shhac/travelease/internal/itinerary"
	"github.com/shhac/travelease/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	louvre = domain.Recommendation{ID: "a", PlaceName: "Louvre", Price: "17 EUR", TimeMinutes: "120", Date: "2024-05-01"}
	orsay  = domain.Recommendation{ID: "b", PlaceName: "Orsay", Price: "16 EUR", TimeMinutes: "90", Date: "2024-05-01"}
	tower  = domain.Recommendation{ID: "c", PlaceName: "Eiffel Tower", Date: "2024-05-02"}
)

func newTestModel(expanded ...string) (*Model, *itinerary.GroupedList) {
	items := itinerary.NewGroupedList([]domain.ListItem{
		domain.DateHeader{Date: "2024-05-01"}, louvre, orsay,
		domain.DateHeader{Date: "2024-05-02"}, tower,
	}, itinerary.WithExpanded(expanded...))
	return New(items, "Paris", logging.NewNopLogger()), items
}

func press(m *Model, keys ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(k)
	}
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	down  = tea.KeyMsg{Type: tea.KeyDown}
	up    = tea.KeyMsg{Type: tea.KeyUp}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
)

func TestModel_CursorMovesAndClamps(t *testing.T) {
	m, _ := newTestModel()

	press(m, up)
	assert.Equal(t, 0, m.Cursor())

	press(m, down, down, down)
	assert.Equal(t, 1, m.Cursor(), "two headers visible")

	press(m, runes("k"))
	assert.Equal(t, 0, m.Cursor())
}

func TestModel_ToggleHeader(t *testing.T) {
	m, items := newTestModel()

	press(m, enter)
	assert.True(t, items.IsExpanded("2024-05-01"))
	assert.Equal(t, 4, items.ItemCount())

	press(m, space)
	assert.False(t, items.IsExpanded("2024-05-01"))
}

func TestModel_SelectRow(t *testing.T) {
	m, items := newTestModel("2024-05-01")

	var clicked []domain.Recommendation
	m.SetOnItemClick(func(row domain.Recommendation) {
		clicked = append(clicked, row)
	})

	press(m, down, enter)

	assert.Equal(t, []domain.Recommendation{louvre}, clicked)
	assert.True(t, items.IsExpanded("2024-05-01"))
	assert.Contains(t, m.View(), "Louvre on 2024-05-01 (17 EUR · 120 min)")
}

func TestModel_DeleteRow(t *testing.T) {
	m, items := newTestModel("2024-05-01")
	m.SetOnDeleteClick(func(row domain.Recommendation, date string) {
		assert.Equal(t, "2024-05-01", date)
		items.RemoveItem(row)
	})

	press(m, down, down, runes("d"))
	assert.Equal(t, 4, items.Len())
	assert.Equal(t, 2, m.Cursor(), "cursor stays on the next item")
	assert.Contains(t, m.View(), "Removed Orsay")

	press(m, up, tea.KeyMsg{Type: tea.KeyDelete})
	assert.Equal(t, 3, items.Len())
	assert.Equal(t, 1, m.Cursor())
}

func TestModel_DeleteOnHeaderIgnored(t *testing.T) {
	m, items := newTestModel("2024-05-01")
	called := false
	m.SetOnDeleteClick(func(domain.Recommendation, string) { called = true })

	press(m, runes("d"))

	assert.False(t, called)
	assert.Equal(t, 5, items.Len())
}

func TestModel_CursorClampedAfterCollapse(t *testing.T) {
	m, items := newTestModel("2024-05-01", "2024-05-02")

	press(m, down, down, down, down)
	require.Equal(t, 4, m.Cursor())

	items.CollapseAll()

	assert.Equal(t, 1, m.Cursor())
}

func TestModel_ExpandCollapseAll(t *testing.T) {
	m, items := newTestModel()

	press(m, runes("e"))
	assert.Equal(t, 5, items.ItemCount())

	press(m, runes("c"))
	assert.Equal(t, 2, items.ItemCount())
}

func TestModel_Save(t *testing.T) {
	m, _ := newTestModel()

	press(m, runes("s"))
	assert.NotContains(t, m.View(), "Saved", "save disabled without a handler")

	saves := 0
	m.SetOnSave(func() error {
		saves++
		return nil
	})
	press(m, runes("s"))
	assert.Equal(t, 1, saves)
	assert.Contains(t, m.View(), "Saved")

	m.SetOnSave(func() error { return errors.New("disk full") })
	press(m, runes("s"))
	assert.Contains(t, m.View(), "Error: disk full")
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel()

	cmd := press(m, runes("q"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_View(t *testing.T) {
	m, _ := newTestModel("2024-05-01")

	view := m.View()

	assert.Contains(t, view, "Paris")
	assert.Contains(t, view, "▾ 2024-05-01")
	assert.Contains(t, view, "(2)")
	assert.Contains(t, view, "Louvre")
	assert.Contains(t, view, "17 EUR · 120 min")
	assert.Contains(t, view, "▸ 2024-05-02")
	assert.NotContains(t, view, "Eiffel Tower")
}

func TestModel_ViewScrolls(t *testing.T) {
	m, _ := newTestModel("2024-05-01", "2024-05-02")
	m.Update(tea.WindowSizeMsg{Width: 80, Height: chromeLines + 2})

	press(m, down, down, down, down)

	view := m.View()
	assert.NotContains(t, view, "2024-05-01")
	assert.Contains(t, view, "2024-05-02")
	assert.Contains(t, view, "Eiffel Tower")
}

func TestModel_EmptyView(t *testing.T) {
	m := New(itinerary.NewGroupedList(nil), "Empty", logging.NewNopLogger())

	press(m, down, enter, runes("d"))

	assert.Equal(t, 0, m.Cursor())
	assert.Contains(t, m.View(), "No places planned")
}
