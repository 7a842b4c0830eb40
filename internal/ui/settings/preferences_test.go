package settings

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestPreferencesForm_Initial(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	f := newPreferencesForm(Current{ThemeMode: "dark", ImageTimeout: 10 * time.Second})

	assert.Equal(t, "10", f.timeoutEntry.Text)
	assert.Equal(t, "Dark", f.themeSelector.Selected)
}

func TestPreferencesForm_Apply(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	tests := []struct {
		name        string
		timeout     string
		theme       string
		wantTimeout time.Duration
		wantMode    string
	}{
		{"valid", "4", "Light", 4 * time.Second, "light"},
		{"system", "30", "System Default", 30 * time.Second, "system"},
		{"bad timeout skipped", "soon", "Dark", 0, "dark"},
		{"zero timeout skipped", "0", "Dark", 0, "dark"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPreferencesForm(Current{ImageTimeout: 10 * time.Second})
			f.timeoutEntry.SetText(tt.timeout)
			f.themeSelector.SetSelected(tt.theme)

			var gotTimeout time.Duration
			var gotMode string
			f.apply(PreferencesCallbacks{
				OnThemeChange:        func(mode string) { gotMode = mode },
				OnImageTimeoutChange: func(d time.Duration) { gotTimeout = d },
			})

			assert.Equal(t, tt.wantTimeout, gotTimeout)
			assert.Equal(t, tt.wantMode, gotMode)
		})
	}
}
