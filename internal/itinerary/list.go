package itinerary

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/shhac/travelease/internal/domain"
	apperrors "github.com/shhac/travelease/internal/errors"
	"github.com/shhac/travelease/internal/logging"
)

// Kind is the view kind of a visible position
type Kind int

const (
	KindHeader Kind = iota
	KindRow
)

func (k Kind) String() string {
	switch k {
	case KindHeader:
		return "header"
	case KindRow:
		return "row"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// HeaderState describes how a header is currently presented
type HeaderState struct {
	Expanded bool
	Places   int // Length of the run of places following the header
}

// Binder renders the item at a visible position. Hosts implement both
// methods; Bind calls exactly one of them.
type Binder interface {
	BindHeader(header domain.DateHeader, state HeaderState)
	BindRow(row domain.Recommendation)
}

// section is a header and the run of places that follows it in the backing list
type section struct {
	date string
	run  int
	slot int // visible position of the header
}

// GroupedList presents a flat backing list of date headers and places as a
// two-level collapsible list. Expansion is tracked per date, so it survives
// insertions and removals that shift backing indices.
//
// A GroupedList is not safe for concurrent use; hosts drive it from their
// UI goroutine.
type GroupedList struct {
	items    []domain.ListItem
	expanded map[string]bool

	// Derived from items and expanded; rebuilt after every mutation
	sections []section
	visible  []int // visible position -> backing index

	listeners []func(Change)
	logger    *slog.Logger
}

// Option configures a GroupedList
type Option func(*GroupedList)

// WithLogger sets the logger used for debug output
func WithLogger(logger *slog.Logger) Option {
	return func(l *GroupedList) {
		l.logger = logger
	}
}

// WithExpanded marks the given dates as expanded from the start
func WithExpanded(dates ...string) Option {
	return func(l *GroupedList) {
		for _, date := range dates {
			l.expanded[date] = true
		}
	}
}

// NewGroupedList creates a list over a copy of items
func NewGroupedList(items []domain.ListItem, opts ...Option) *GroupedList {
	l := &GroupedList{
		items:    slices.Clone(items),
		expanded: make(map[string]bool),
		logger:   logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.rebuild()
	return l
}

// OnChange registers a listener for visible changes
func (l *GroupedList) OnChange(fn func(Change)) {
	l.listeners = append(l.listeners, fn)
}

// ItemCount returns the number of visible positions
func (l *GroupedList) ItemCount() int {
	return len(l.visible)
}

// Len returns the number of entries in the backing list
func (l *GroupedList) Len() int {
	return len(l.items)
}

// Items returns a copy of the backing list
func (l *GroupedList) Items() []domain.ListItem {
	return slices.Clone(l.items)
}

// Resolve translates a visible position into a backing index
func (l *GroupedList) Resolve(pos int) (int, error) {
	if pos < 0 || pos >= len(l.visible) {
		return 0, fmt.Errorf("%w: %d of %d", apperrors.ErrPositionOutOfRange, pos, len(l.visible))
	}
	return l.visible[pos], nil
}

// ItemAt returns the item shown at a visible position
func (l *GroupedList) ItemAt(pos int) (domain.ListItem, error) {
	idx, err := l.Resolve(pos)
	if err != nil {
		return nil, err
	}
	return l.items[idx], nil
}

// KindAt classifies the item shown at a visible position
func (l *GroupedList) KindAt(pos int) (Kind, error) {
	item, err := l.ItemAt(pos)
	if err != nil {
		return 0, err
	}
	switch item.(type) {
	case domain.DateHeader:
		return KindHeader, nil
	case domain.Recommendation:
		return KindRow, nil
	default:
		return 0, fmt.Errorf("%w: %T", apperrors.ErrInvalidViewKind, item)
	}
}

// Bind renders the item at a visible position through b
func (l *GroupedList) Bind(pos int, b Binder) error {
	idx, err := l.Resolve(pos)
	if err != nil {
		return err
	}
	switch v := l.items[idx].(type) {
	case domain.DateHeader:
		b.BindHeader(v, HeaderState{
			Expanded: l.expanded[v.Date],
			Places:   l.runAfter(idx),
		})
	case domain.Recommendation:
		b.BindRow(v)
	default:
		return fmt.Errorf("%w: %T at %d", apperrors.ErrInvalidViewKind, v, idx)
	}
	return nil
}

// IsExpanded reports whether the places under date are visible
func (l *GroupedList) IsExpanded(date string) bool {
	return l.expanded[date]
}

// ExpandedDates returns the expanded dates in backing order
func (l *GroupedList) ExpandedDates() []string {
	var dates []string
	for _, s := range l.sections {
		if l.expanded[s.date] && !slices.Contains(dates, s.date) {
			dates = append(dates, s.date)
		}
	}
	return dates
}

// RunLength returns the number of places directly following the first
// header for date, or -1 if there is no such header.
func (l *GroupedList) RunLength(date string) int {
	idx := l.headerIndex(date)
	if idx < 0 {
		return -1
	}
	return l.runAfter(idx)
}

// Toggle flips the expansion of date
func (l *GroupedList) Toggle(date string) {
	l.setExpanded(date, !l.expanded[date])
}

// ToggleAt flips the expansion of the header at a visible position. It is a
// no-op for rows.
func (l *GroupedList) ToggleAt(pos int) error {
	item, err := l.ItemAt(pos)
	if err != nil {
		return err
	}
	if header, ok := item.(domain.DateHeader); ok {
		l.Toggle(header.Date)
	}
	return nil
}

// Expand shows the places under date
func (l *GroupedList) Expand(date string) {
	l.setExpanded(date, true)
}

// Collapse hides the places under date
func (l *GroupedList) Collapse(date string) {
	l.setExpanded(date, false)
}

// ExpandAll shows the places under every header
func (l *GroupedList) ExpandAll() {
	l.mutate(func() {
		for _, s := range l.sections {
			l.expanded[s.date] = true
		}
	})
}

// CollapseAll hides every place
func (l *GroupedList) CollapseAll() {
	l.mutate(func() {
		clear(l.expanded)
	})
}

// RemoveItem removes the first entry equal to target. It reports whether an
// entry was removed; an absent target changes nothing.
func (l *GroupedList) RemoveItem(target domain.Recommendation) bool {
	idx := slices.Index(l.items, domain.ListItem(target))
	if idx < 0 {
		return false
	}
	l.mutate(func() {
		l.items = slices.Delete(l.items, idx, idx+1)
	})
	l.logger.Debug("removed place",
		slog.String("place", target.PlaceName),
		slog.String("date", target.Date),
		slog.Int("index", idx))
	return true
}

// AddItemToDate inserts item directly after the header for date and expands
// that date. Without such a header, a new header and the item are appended
// to the end of the list, and the new date starts expanded.
func (l *GroupedList) AddItemToDate(item domain.Recommendation, date string) {
	idx := l.headerIndex(date)
	l.mutate(func() {
		if idx >= 0 {
			l.items = slices.Insert(l.items, idx+1, domain.ListItem(item))
		} else {
			l.items = append(l.items, domain.DateHeader{Date: date}, item)
		}
		l.expanded[date] = true
	})
	l.logger.Debug("added place",
		slog.String("place", item.PlaceName),
		slog.String("date", date),
		slog.Bool("new_date", idx < 0))
}

// UpdateRecommendation replaces the entry with the same ID as row. It
// reports whether such an entry exists.
func (l *GroupedList) UpdateRecommendation(row domain.Recommendation) bool {
	idx := slices.IndexFunc(l.items, func(item domain.ListItem) bool {
		r, ok := item.(domain.Recommendation)
		return ok && r.ID == row.ID
	})
	if idx < 0 {
		return false
	}
	if l.items[idx] == domain.ListItem(row) {
		return true
	}
	l.items[idx] = row
	if pos := slices.Index(l.visible, idx); pos >= 0 {
		l.notify(Change{Op: OpChanged, Position: pos, Count: 1})
	}
	return true
}

// ReplaceAll replaces the backing list with a copy of items. Expansion is
// kept for dates that still have a header.
func (l *GroupedList) ReplaceAll(items []domain.ListItem) {
	l.items = slices.Clone(items)

	present := make(map[string]bool)
	for _, item := range l.items {
		if header, ok := item.(domain.DateHeader); ok {
			present[header.Date] = true
		}
	}
	for date := range l.expanded {
		if !present[date] {
			delete(l.expanded, date)
		}
	}

	l.rebuild()
	l.logger.Debug("replaced itinerary", slog.Int("items", len(l.items)))
	l.notify(Change{Op: OpReset, Count: len(l.visible)})
}

// Days groups the backing list by header for persistence
func (l *GroupedList) Days() []domain.Day {
	days, orphans := domain.Group(l.items)
	if len(orphans) > 0 {
		l.logger.Warn("places without a date header are not saved", slog.Int("count", len(orphans)))
	}
	return days
}

func (l *GroupedList) setExpanded(date string, expanded bool) {
	if l.expanded[date] == expanded {
		return
	}
	l.mutate(func() {
		if expanded {
			l.expanded[date] = true
		} else {
			delete(l.expanded, date)
		}
	})
}

// mutate applies fn, rebuilds the derived layout and notifies listeners of
// the visible difference. Headers whose expansion or place count changed are
// reported as changed unless they were re-inserted anyway. Mutations never
// remove or reorder existing headers, so headers are matched by ordinal.
func (l *GroupedList) mutate(fn func()) {
	before := l.visibleItems()
	beforeHeaders := make([]HeaderState, len(l.sections))
	for k, s := range l.sections {
		beforeHeaders[k] = HeaderState{Expanded: l.expanded[s.date], Places: s.run}
	}

	fn()
	l.rebuild()

	changes := diff(before, l.visibleItems())
	for k, s := range l.sections {
		if k >= len(beforeHeaders) {
			break
		}
		now := HeaderState{Expanded: l.expanded[s.date], Places: s.run}
		if now != beforeHeaders[k] && !inserted(changes, s.slot) {
			changes = append(changes, Change{Op: OpChanged, Position: s.slot, Count: 1})
		}
	}
	for _, c := range changes {
		l.notify(c)
	}
}

func (l *GroupedList) notify(c Change) {
	for _, fn := range l.listeners {
		fn(c)
	}
}

// rebuild recomputes sections and the visible table from items
func (l *GroupedList) rebuild() {
	l.sections = l.sections[:0]
	l.visible = l.visible[:0]
	for i, item := range l.items {
		header, ok := item.(domain.DateHeader)
		if !ok {
			continue
		}
		s := section{date: header.Date, run: l.runAfter(i), slot: len(l.visible)}
		l.visible = append(l.visible, i)
		if l.expanded[header.Date] {
			for k := 1; k <= s.run; k++ {
				l.visible = append(l.visible, i+k)
			}
		}
		l.sections = append(l.sections, s)
	}
}

func (l *GroupedList) visibleItems() []domain.ListItem {
	out := make([]domain.ListItem, len(l.visible))
	for pos, idx := range l.visible {
		out[pos] = l.items[idx]
	}
	return out
}

// runAfter counts the places directly following backing index idx
func (l *GroupedList) runAfter(idx int) int {
	run := 0
	for j := idx + 1; j < len(l.items); j++ {
		if _, ok := l.items[j].(domain.Recommendation); !ok {
			break
		}
		run++
	}
	return run
}

// headerIndex returns the backing index of the first header for date, or -1
func (l *GroupedList) headerIndex(date string) int {
	return slices.IndexFunc(l.items, func(item domain.ListItem) bool {
		header, ok := item.(domain.DateHeader)
		return ok && header.Date == date
	})
}
