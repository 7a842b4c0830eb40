package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shhac/travelease/internal/domain"
	"github.com/shhac/travelease/internal/itinerary"
)

// chromeLines is the number of lines around the list: title, status and help
const chromeLines = 6

// Model is a terminal view over a grouped itinerary list. The cursor moves
// over visible positions.
type Model struct {
	items  *itinerary.GroupedList
	title  string
	logger *slog.Logger

	keys keyMap
	help help.Model

	cursor int
	offset int
	width  int
	height int

	status string
	err    error

	onDeleteClick func(row domain.Recommendation, date string)
	onItemClick   func(row domain.Recommendation)
	onSave        func() error
}

// New creates a terminal model over items
func New(items *itinerary.GroupedList, title string, logger *slog.Logger) *Model {
	m := &Model{
		items:  items,
		title:  title,
		logger: logger,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
	items.OnChange(func(itinerary.Change) {
		m.clamp()
	})
	return m
}

// SetOnDeleteClick sets the callback for the delete key on a place
func (m *Model) SetOnDeleteClick(fn func(row domain.Recommendation, date string)) {
	m.onDeleteClick = fn
}

// SetOnItemClick sets the callback for selecting a place
func (m *Model) SetOnItemClick(fn func(row domain.Recommendation)) {
	m.onItemClick = fn
}

// SetOnSave enables the save key
func (m *Model) SetOnSave(fn func() error) {
	m.onSave = fn
	m.keys.Save.SetEnabled(fn != nil)
}

// Cursor returns the visible position under the cursor
func (m *Model) Cursor() int {
	return m.cursor
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.clamp()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.cursor--
		case key.Matches(msg, m.keys.Down):
			m.cursor++
		case key.Matches(msg, m.keys.Toggle):
			m.activate()
		case key.Matches(msg, m.keys.Delete):
			m.delete()
		case key.Matches(msg, m.keys.ExpandAll):
			m.items.ExpandAll()
		case key.Matches(msg, m.keys.CollapseAll):
			m.items.CollapseAll()
		case key.Matches(msg, m.keys.Save):
			m.save()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		m.clamp()
	}

	return m, nil
}

// activate toggles the header under the cursor or selects the place
func (m *Model) activate() {
	item, err := m.items.ItemAt(m.cursor)
	if err != nil {
		return
	}

	switch it := item.(type) {
	case domain.DateHeader:
		m.items.Toggle(it.Date)
	case domain.Recommendation:
		m.setStatus(describe(it))
		if m.onItemClick != nil {
			m.onItemClick(it)
		}
	}
}

func (m *Model) delete() {
	item, err := m.items.ItemAt(m.cursor)
	if err != nil {
		return
	}
	row, ok := item.(domain.Recommendation)
	if !ok || m.onDeleteClick == nil {
		return
	}
	m.onDeleteClick(row, row.Date)
	m.setStatus("Removed " + row.PlaceName)
}

func (m *Model) save() {
	if m.onSave == nil {
		return
	}
	if err := m.onSave(); err != nil {
		m.logger.Error("failed to save itinerary", slog.Any("error", err))
		m.err = err
		m.status = ""
		return
	}
	m.setStatus("Saved")
}

func (m *Model) setStatus(status string) {
	m.status = status
	m.err = nil
}

// clamp keeps the cursor on a visible position and inside the scroll window
func (m *Model) clamp() {
	count := m.items.ItemCount()
	if m.cursor >= count {
		m.cursor = count - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	rows := m.listHeight()
	if rows <= 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	if m.offset > max(count-rows, 0) {
		m.offset = max(count-rows, 0)
	}
}

// listHeight is the number of list lines that fit, or 0 when unknown
func (m *Model) listHeight() int {
	if m.height == 0 {
		return 0
	}
	return max(m.height-chromeLines, 1)
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")

	count := m.items.ItemCount()
	if count == 0 {
		b.WriteString(emptyStyle.Render("No places planned"))
		b.WriteString("\n")
	}

	end := count
	if rows := m.listHeight(); rows > 0 {
		end = min(m.offset+rows, count)
	}

	line := &lineBinder{}
	for pos := m.offset; pos < end; pos++ {
		if err := m.items.Bind(pos, line); err != nil {
			m.logger.Error("failed to render itinerary item", slog.Int("position", pos), slog.Any("error", err))
			continue
		}
		text := line.text
		if pos == m.cursor {
			text = cursorStyle.Render(text)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// lineBinder renders one visible position as a line of text
type lineBinder struct {
	text string
}

func (l *lineBinder) BindHeader(header domain.DateHeader, state itinerary.HeaderState) {
	chevron := "▸"
	if state.Expanded {
		chevron = "▾"
	}
	l.text = headerStyle.Render(chevron+" "+header.Date) + " " + countStyle.Render(fmt.Sprintf("(%d)", state.Places))
}

func (l *lineBinder) BindRow(row domain.Recommendation) {
	l.text = rowStyle.Render(row.PlaceName + " " + detailStyle.Render(details(row)))
}

func details(row domain.Recommendation) string {
	var parts []string
	if row.Price != "" {
		parts = append(parts, row.Price)
	}
	if row.TimeMinutes != "" {
		parts = append(parts, row.TimeMinutes+" min")
	}
	return strings.Join(parts, " · ")
}

func describe(row domain.Recommendation) string {
	if d := details(row); d != "" {
		return fmt.Sprintf("%s on %s (%s)", row.PlaceName, row.Date, d)
	}
	return fmt.Sprintf("%s on %s", row.PlaceName, row.Date)
}
