package components

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
)

func TestNewCollapsibleSection(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	closed := NewCollapsibleSection("Photo", widget.NewLabel("url"), false)
	open := NewCollapsibleSection("Photo", widget.NewLabel("url"), true)

	assert.Len(t, closed.Items, 1)
	assert.Equal(t, "Photo", closed.Items[0].Title)
	assert.False(t, closed.Items[0].Open)
	assert.True(t, open.Items[0].Open)
}
