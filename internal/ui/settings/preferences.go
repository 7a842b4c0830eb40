package settings

import (
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Theme modes offered in the Appearance tab, keyed by their label.
var themeModes = map[string]string{
	"System Default": "system",
	"Light":          "light",
	"Dark":           "dark",
}

// PreferencesCallbacks provides hooks for the preferences dialog to apply changes.
type PreferencesCallbacks struct {
	OnThemeChange        func(mode string) // Called with "system", "dark", or "light"
	OnImageTimeoutChange func(timeout time.Duration)
}

// Current holds the values the dialog opens with.
type Current struct {
	ThemeMode    string
	ImageTimeout time.Duration
}

// preferencesForm holds the dialog's inputs
type preferencesForm struct {
	timeoutEntry  *widget.Entry
	themeSelector *widget.Select
	content       fyne.CanvasObject
}

func newPreferencesForm(current Current) *preferencesForm {
	f := &preferencesForm{}

	// --- General tab ---

	f.timeoutEntry = widget.NewEntry()
	f.timeoutEntry.SetText(strconv.Itoa(int(current.ImageTimeout / time.Second)))
	f.timeoutEntry.Validator = func(s string) error {
		_, err := parseSeconds(s)
		return err
	}

	generalTab := container.NewTabItem("General", container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Photo Timeout (seconds)", f.timeoutEntry),
		),
		widget.NewLabel("Place photos that take longer keep their placeholder."),
	))

	// --- Appearance tab ---

	f.themeSelector = widget.NewSelect([]string{"System Default", "Light", "Dark"}, nil)
	switch current.ThemeMode {
	case "dark":
		f.themeSelector.SetSelected("Dark")
	case "light":
		f.themeSelector.SetSelected("Light")
	default:
		f.themeSelector.SetSelected("System Default")
	}

	appearanceTab := container.NewTabItem("Appearance", container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Theme", f.themeSelector),
		),
	))

	f.content = container.NewAppTabs(generalTab, appearanceTab)
	return f
}

// apply reports the chosen values through callbacks
func (f *preferencesForm) apply(callbacks PreferencesCallbacks) {
	if timeout, err := parseSeconds(f.timeoutEntry.Text); err == nil && callbacks.OnImageTimeoutChange != nil {
		callbacks.OnImageTimeoutChange(timeout)
	}

	mode, ok := themeModes[f.themeSelector.Selected]
	if !ok {
		mode = "system"
	}
	if callbacks.OnThemeChange != nil {
		callbacks.OnThemeChange(mode)
	}
}

// ShowPreferencesDialog displays the preferences dialog with General and Appearance tabs.
func ShowPreferencesDialog(window fyne.Window, current Current, callbacks PreferencesCallbacks) {
	form := newPreferencesForm(current)

	dlg := dialog.NewCustomConfirm("Preferences", "Save", "Cancel", form.content, func(save bool) {
		if save {
			form.apply(callbacks)
		}
	}, window)

	dlg.Resize(fyne.NewSize(500, 350))
	dlg.Show()
}

func parseSeconds(s string) (time.Duration, error) {
	secs, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if secs <= 0 {
		return 0, strconv.ErrRange
	}
	return time.Duration(secs) * time.Second, nil
}
