package itinerary

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/shhac/travelease/internal/domain"
	"github.com/shhac/travelease/internal/imageload"
	"github.com/shhac/travelease/internal/itinerary"
)

// ItineraryList displays an itinerary's dates and the places planned for
// each. Tapping a date expands or collapses it.
type ItineraryList struct {
	widget.BaseWidget

	items  *itinerary.GroupedList
	images imageload.Loader
	logger *slog.Logger

	list        *widget.List
	placeholder *widget.Label
	content     fyne.CanvasObject

	// Callbacks
	onDeleteClick func(row domain.Recommendation, date string)
	onItemClick   func(row domain.Recommendation)
	onTimeChange  func(row domain.Recommendation, minutes string)
}

// NewItineraryList creates a list widget over items
func NewItineraryList(items *itinerary.GroupedList, images imageload.Loader, logger *slog.Logger) *ItineraryList {
	l := &ItineraryList{
		items:  items,
		images: images,
		logger: logger,
	}

	l.list = widget.NewList(
		l.items.ItemCount,
		func() fyne.CanvasObject {
			return newItemView(l)
		},
		l.update,
	)
	l.list.OnSelected = l.onListSelected

	l.placeholder = widget.NewLabel("No places yet. Add one with the + button")
	l.placeholder.Alignment = fyne.TextAlignCenter
	l.placeholder.Wrapping = fyne.TextWrapWord
	l.placeholder.TextStyle = fyne.TextStyle{Italic: true}

	l.content = container.NewThemeOverride(
		container.NewStack(l.list, l.placeholder),
		newListTheme(theme.DefaultTheme()),
	)

	l.items.OnChange(l.onItemsChanged)
	l.updatePlaceholder()

	l.ExtendBaseWidget(l)
	return l
}

// SetOnDeleteClick sets the callback for a place's delete button
func (l *ItineraryList) SetOnDeleteClick(fn func(row domain.Recommendation, date string)) {
	l.onDeleteClick = fn
}

// SetOnItemClick sets the callback for tapping a place
func (l *ItineraryList) SetOnItemClick(fn func(row domain.Recommendation)) {
	l.onItemClick = fn
}

// SetOnTimeChange sets the callback for a submitted minutes entry
func (l *ItineraryList) SetOnTimeChange(fn func(row domain.Recommendation, minutes string)) {
	l.onTimeChange = fn
}

// CreateRenderer implements the fyne.Widget interface
func (l *ItineraryList) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(l.content)
}

// update binds the template at a visible position
func (l *ItineraryList) update(id widget.ListItemID, obj fyne.CanvasObject) {
	view := obj.(*itemView)
	if err := l.items.Bind(id, view); err != nil {
		l.logger.Error("failed to bind itinerary item",
			slog.Int("position", id),
			slog.Any("error", err))
	}
}

// onListSelected toggles headers and reports place clicks
func (l *ItineraryList) onListSelected(id widget.ListItemID) {
	// Unselect so tapping the same item again triggers OnSelected
	defer l.list.Unselect(id)

	item, err := l.items.ItemAt(id)
	if err != nil {
		l.logger.Warn("selected item out of range", slog.Int("position", id), slog.Any("error", err))
		return
	}

	switch it := item.(type) {
	case domain.DateHeader:
		if err := l.items.ToggleAt(id); err != nil {
			l.logger.Warn("failed to toggle date", slog.String("date", it.Date), slog.Any("error", err))
		}
	case domain.Recommendation:
		if l.onItemClick != nil {
			l.onItemClick(it)
		}
	}
}

func (l *ItineraryList) onItemsChanged(c itinerary.Change) {
	if c.Op == itinerary.OpChanged {
		for pos := c.Position; pos < c.Position+c.Count; pos++ {
			l.list.RefreshItem(pos)
		}
		return
	}
	l.list.Refresh()
	l.updatePlaceholder()
}

func (l *ItineraryList) handleDelete(row domain.Recommendation) {
	if l.onDeleteClick != nil {
		l.onDeleteClick(row, row.Date)
	}
}

func (l *ItineraryList) handleTimeChange(row domain.Recommendation, minutes string) {
	if l.onTimeChange != nil {
		l.onTimeChange(row, minutes)
	}
}

func (l *ItineraryList) updatePlaceholder() {
	if l.items.ItemCount() == 0 {
		l.placeholder.Show()
	} else {
		l.placeholder.Hide()
	}
}
