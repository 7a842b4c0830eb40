package place

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/shhac/travelease/internal/domain"
	apperrors "github.com/shhac/travelease/internal/errors"
	"github.com/shhac/travelease/internal/ui/components"
	uierrors "github.com/shhac/travelease/internal/ui/errors"
)

// Form collects the fields of a new place
type Form struct {
	date    *widget.Entry
	name    *widget.Entry
	price   *widget.Entry
	minutes *widget.Entry
	image   *widget.Entry

	content fyne.CanvasObject
}

// NewForm creates an empty form whose date defaults to date
func NewForm(date string) *Form {
	f := &Form{
		date:    widget.NewEntry(),
		name:    widget.NewEntry(),
		price:   widget.NewEntry(),
		minutes: widget.NewEntry(),
		image:   widget.NewEntry(),
	}

	f.date.SetPlaceHolder(domain.DateLayout)
	f.date.SetText(date)
	f.date.Validator = domain.ValidateDate

	f.name.SetPlaceHolder("Louvre Museum")
	f.name.Validator = func(s string) error {
		if strings.TrimSpace(s) == "" {
			return apperrors.ValidationError{Field: "place", Message: "must not be empty"}
		}
		return nil
	}

	f.price.SetPlaceHolder("17 EUR")
	f.minutes.SetPlaceHolder("90")
	f.minutes.Validator = domain.ValidateMinutes

	f.image.SetPlaceHolder("https://")
	f.image.Validator = domain.ValidateImageURL

	form := widget.NewForm(
		widget.NewFormItem("Date", f.date),
		widget.NewFormItem("Place", f.name),
		widget.NewFormItem("Price", f.price),
		widget.NewFormItem("Minutes", f.minutes),
	)
	photo := components.NewCollapsibleSection("Photo",
		widget.NewForm(widget.NewFormItem("Image URL", f.image)), false)

	f.content = container.NewVBox(form, photo)
	return f
}

// Content returns the form layout
func (f *Form) Content() fyne.CanvasObject {
	return f.content
}

// Place returns the entered place with a fresh ID
func (f *Form) Place() domain.Recommendation {
	return domain.NewRecommendation(
		strings.TrimSpace(f.name.Text),
		strings.TrimSpace(f.price.Text),
		strings.TrimSpace(f.minutes.Text),
		strings.TrimSpace(f.image.Text),
		strings.TrimSpace(f.date.Text),
	)
}

// Validate checks every field
func (f *Form) Validate() error {
	return f.Place().Validate()
}

// ShowAddPlaceDialog asks for a new place. onAdd is called with a valid
// place; an error it returns is shown to the user.
func ShowAddPlaceDialog(window fyne.Window, date string, onAdd func(domain.Recommendation) error) {
	if date == "" {
		date = time.Now().Format(domain.DateLayout)
	}
	form := NewForm(date)

	dlg := dialog.NewCustomConfirm("Add Place", "Add", "Cancel", form.Content(), func(add bool) {
		if !add {
			return
		}
		if err := form.Validate(); err != nil {
			uierrors.ShowError(err, window)
			return
		}
		if err := onAdd(form.Place()); err != nil {
			uierrors.ShowError(err, window)
		}
	}, window)

	dlg.Resize(fyne.NewSize(420, 360))
	dlg.Show()
	window.Canvas().Focus(form.name)
}
