package errors

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	apperrors "github.com/shhac/travelease/internal/errors"
)

// ShowError displays an error dialog with a friendly title, recovery
// suggestions and technical details. Cancellations are not shown.
func ShowError(err error, window fyne.Window) {
	if err == nil {
		return
	}

	uiErr := apperrors.ClassifyError(err)
	if uiErr.Severity == apperrors.SeverityInfo {
		return
	}

	dialog.ShowCustom(uiErr.Title, "Close", errorContent(uiErr), window)
}

// errorContent builds the dialog body for uiErr
func errorContent(uiErr *apperrors.UIError) *fyne.Container {
	// Word-wrapping labels keep the dialog from growing horizontally
	msgLabel := widget.NewLabel(uiErr.Message)
	msgLabel.Wrapping = fyne.TextWrapWord
	content := container.NewVBox(msgLabel)

	if len(uiErr.Recovery) > 0 {
		content.Add(widget.NewSeparator())
		content.Add(widget.NewLabel("You can:"))
		for _, suggestion := range uiErr.Recovery {
			lbl := widget.NewLabel("• " + suggestion)
			lbl.Wrapping = fyne.TextWrapWord
			content.Add(lbl)
		}
	}

	if uiErr.Details != "" {
		detailsLabel := widget.NewLabel(uiErr.Details)
		detailsLabel.Wrapping = fyne.TextWrapWord
		accordion := widget.NewAccordion(
			widget.NewAccordionItem("Technical Details", detailsLabel),
		)
		content.Add(accordion)
	}

	return content
}

// ShowMessage displays a plain informational dialog.
func ShowMessage(window fyne.Window, title, message string) {
	dialog.ShowInformation(title, message, window)
}
