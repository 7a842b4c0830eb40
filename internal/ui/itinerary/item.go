package itinerary

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/shhac/travelease/internal/domain"
	"github.com/shhac/travelease/internal/imageload"
	"github.com/shhac/travelease/internal/itinerary"
)

const photoSize = 48

// itemView is the single template the list recycles for every position.
// It holds both layouts and shows the one matching what it was bound to.
type itemView struct {
	widget.BaseWidget

	owner *ItineraryList

	// Header layout
	chevron   *widget.Icon
	date      *widget.Label
	count     *widget.Label
	headerBox *fyne.Container

	// Row layout
	photo     *canvas.Image
	name      *widget.Label
	price     *widget.Label
	minutes   *widget.Entry
	deleteBtn *widget.Button
	rowBox    *fyne.Container

	row domain.Recommendation
}

var _ itinerary.Binder = (*itemView)(nil)

func newItemView(owner *ItineraryList) *itemView {
	v := &itemView{owner: owner}

	v.chevron = widget.NewIcon(theme.NavigateNextIcon())
	v.date = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	v.count = widget.NewLabel("")
	v.count.Importance = widget.LowImportance
	v.headerBox = container.NewHBox(v.chevron, v.date, v.count)

	v.photo = canvas.NewImageFromResource(imageload.Placeholder)
	v.photo.FillMode = canvas.ImageFillContain
	v.photo.SetMinSize(fyne.NewSize(photoSize, photoSize))

	v.name = widget.NewLabel("")
	v.name.Truncation = fyne.TextTruncateEllipsis
	v.price = widget.NewLabel("")
	v.price.Importance = widget.LowImportance

	v.minutes = widget.NewEntry()
	v.minutes.SetPlaceHolder("min")
	v.minutes.Validator = domain.ValidateMinutes
	v.minutes.OnSubmitted = v.submitMinutes

	v.deleteBtn = widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		v.owner.handleDelete(v.row)
	})
	v.deleteBtn.Importance = widget.LowImportance

	trailing := container.NewHBox(
		container.NewGridWrap(fyne.NewSize(72, v.minutes.MinSize().Height), v.minutes),
		widget.NewLabel("min"),
		v.deleteBtn,
	)
	v.rowBox = container.NewBorder(nil, nil,
		v.photo,
		trailing,
		container.NewVBox(v.name, v.price),
	)

	v.ExtendBaseWidget(v)
	return v
}

// CreateRenderer implements the fyne.Widget interface
func (v *itemView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(v.headerBox, v.rowBox))
}

// BindHeader shows the header layout for a date
func (v *itemView) BindHeader(header domain.DateHeader, state itinerary.HeaderState) {
	v.rowBox.Hide()
	v.headerBox.Show()

	if state.Expanded {
		v.chevron.SetResource(theme.MenuDropDownIcon())
	} else {
		v.chevron.SetResource(theme.NavigateNextIcon())
	}
	v.date.SetText(header.Date)
	v.count.SetText(placesLabel(state.Places))
}

// BindRow shows the row layout for a place
func (v *itemView) BindRow(row domain.Recommendation) {
	v.headerBox.Hide()
	v.rowBox.Show()

	v.row = row
	v.name.SetText(row.PlaceName)
	v.price.SetText(row.Price)
	v.minutes.SetText(row.TimeMinutes)
	v.owner.images.Load(row.ImageURL, v.photo)
}

func (v *itemView) submitMinutes(text string) {
	if v.minutes.Validate() != nil {
		return
	}
	v.owner.handleTimeChange(v.row, text)
}

func placesLabel(n int) string {
	if n == 1 {
		return "1 place"
	}
	return fmt.Sprintf("%d places", n)
}
