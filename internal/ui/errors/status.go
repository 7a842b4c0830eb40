package errors

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/travelease/internal/model"
)

// StatusBar displays the last action with a shape-changing icon indicator
// and the size of the open itinerary. Each state uses a distinct icon shape:
//   - Idle: info icon
//   - Saved: confirm icon (checkmark)
//   - Error: error icon (X shape)
type StatusBar struct {
	widget.BaseWidget

	state       *model.ApplicationState
	statusLabel *widget.Label
	countLabel  *widget.Label
	indicator   *widget.Icon
}

// NewStatusBar creates a new status bar bound to the given application state.
func NewStatusBar(state *model.ApplicationState) *StatusBar {
	label := widget.NewLabel("")
	label.Truncation = fyne.TextTruncateEllipsis

	count := widget.NewLabel("")
	count.Importance = widget.LowImportance

	s := &StatusBar{
		state:       state,
		statusLabel: label,
		countLabel:  count,
		indicator:   widget.NewIcon(theme.InfoIcon()),
	}
	s.ExtendBaseWidget(s)

	state.Status.State.AddListener(binding.NewDataListener(s.updateStatus))
	state.Status.Message.AddListener(binding.NewDataListener(s.updateStatus))
	state.PlaceCount.AddListener(binding.NewDataListener(s.updateCounts))
	state.VisibleCount.AddListener(binding.NewDataListener(s.updateCounts))

	s.updateStatus()
	s.updateCounts()

	return s
}

// updateStatus refreshes the indicator and message from the status state.
func (s *StatusBar) updateStatus() {
	stateStr, _ := s.state.Status.State.Get()
	message, _ := s.state.Status.Message.Get()

	switch stateStr {
	case "saved":
		s.indicator.SetResource(theme.ConfirmIcon())
		if message == "" {
			message = "Saved"
		}
	case "error":
		s.indicator.SetResource(theme.ErrorIcon())
		if message == "" {
			message = "Something went wrong"
		}
	default:
		s.indicator.SetResource(theme.InfoIcon())
		if message == "" {
			message = "Ready"
		}
	}

	s.statusLabel.SetText(message)
}

// updateCounts refreshes the place and row counts.
func (s *StatusBar) updateCounts() {
	places, _ := s.state.PlaceCount.Get()
	visible, _ := s.state.VisibleCount.Get()
	s.countLabel.SetText(fmt.Sprintf("%d places · %d rows shown", places, visible))
}

// CreateRenderer implements fyne.Widget.
func (s *StatusBar) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(
		nil, nil,
		s.indicator,
		s.countLabel,
		s.statusLabel,
	))
}
