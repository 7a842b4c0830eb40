package ui

import (
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/shhac/travelease/internal/app"
	"github.com/shhac/travelease/internal/domain"
	"github.com/shhac/travelease/internal/imageload"
	"github.com/shhac/travelease/internal/model"
	uierrors "github.com/shhac/travelease/internal/ui/errors"
	"github.com/shhac/travelease/internal/ui/itinerary"
	"github.com/shhac/travelease/internal/ui/place"
	"github.com/shhac/travelease/internal/ui/settings"
	"github.com/shhac/travelease/internal/ui/trips"
)

const windowTitle = "TravelEase"

// AppController defines the interface for app-level operations needed by the UI
type AppController interface {
	State() *model.ApplicationState
	Logger() *slog.Logger
	Trip() *app.Trip
	Images() imageload.Loader
	ImageTimeout() time.Duration
	SetImageTimeout(timeout time.Duration)
	FyneApp() fyne.App
}

// MainWindow manages the main application window and its layout.
type MainWindow struct {
	window fyne.Window
	state  *model.ApplicationState
	logger *slog.Logger
	app    AppController
	trip   *app.Trip

	// Panel widgets
	tripsPanel    *trips.TripsPanel
	itineraryList *itinerary.ItineraryList
	statusBar     *uierrors.StatusBar
	toolbar       *widget.Toolbar
}

// NewMainWindow creates a new main window with the application layout.
// The window is split horizontally with:
//   - Left side: saved itineraries
//   - Right side: toolbar (top), itinerary list (middle), status bar (bottom)
func NewMainWindow(fyneApp fyne.App, app AppController) *MainWindow {
	window := fyneApp.NewWindow(windowTitle)

	mw := &MainWindow{
		window: window,
		state:  app.State(),
		logger: app.Logger(),
		app:    app,
		trip:   app.Trip(),
	}

	mw.tripsPanel = trips.NewTripsPanel(mw.trip, mw.state, mw.logger, window)
	mw.itineraryList = itinerary.NewItineraryList(mw.trip.List(), app.Images(), mw.logger)
	mw.statusBar = uierrors.NewStatusBar(mw.state)
	mw.toolbar = mw.buildToolbar()

	mw.wireCallbacks()
	mw.SetContent()
	mw.setupMainMenu()
	mw.setupKeyboardShortcuts()

	window.Resize(fyne.NewSize(1000, 700))

	return mw
}

// wireCallbacks sets up all the event handlers and connects components
func (w *MainWindow) wireCallbacks() {
	w.itineraryList.SetOnDeleteClick(func(row domain.Recommendation, date string) {
		w.logger.Debug("delete place", slog.String("place", row.PlaceName), slog.String("date", date))
		w.trip.RemovePlace(row)
	})

	w.itineraryList.SetOnItemClick(func(row domain.Recommendation) {
		w.trip.Select(row)
	})

	w.itineraryList.SetOnTimeChange(func(row domain.Recommendation, minutes string) {
		if err := w.trip.SetMinutes(row, minutes); err != nil {
			uierrors.ShowError(err, w.window)
		}
	})

	title := binding.NewDataListener(w.updateTitle)
	w.state.CurrentItinerary.AddListener(title)
	w.state.Dirty.AddListener(title)
}

// buildToolbar creates the actions above the itinerary list
func (w *MainWindow) buildToolbar() *widget.Toolbar {
	return widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentAddIcon(), w.handleAddPlace),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.MenuDropDownIcon(), w.trip.List().ExpandAll),
		widget.NewToolbarAction(theme.MenuExpandIcon(), w.trip.List().CollapseAll),
		widget.NewToolbarSpacer(),
		widget.NewToolbarAction(theme.SettingsIcon(), w.handlePreferences),
		widget.NewToolbarAction(theme.HelpIcon(), func() { ShowShortcutDialog(w.window) }),
	)
}

// setupMainMenu adds the File and Help menus
func (w *MainWindow) setupMainMenu() {
	file := fyne.NewMenu("File",
		fyne.NewMenuItem("Save Itinerary", w.tripsPanel.TriggerSave),
		fyne.NewMenuItem("Add Place…", w.handleAddPlace),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences…", w.handlePreferences),
	)
	help := fyne.NewMenu("Help",
		fyne.NewMenuItem("Keyboard Shortcuts", func() { ShowShortcutDialog(w.window) }),
		fyne.NewMenuItem("About TravelEase", func() { ShowAboutDialog(w.window) }),
	)
	w.window.SetMainMenu(fyne.NewMainMenu(file, help))
}

// handleAddPlace opens the add place dialog, defaulting to the last planned date
func (w *MainWindow) handleAddPlace() {
	place.ShowAddPlaceDialog(w.window, w.defaultDate(), w.trip.AddPlace)
}

// defaultDate is the date of the last day in the itinerary, or empty for today
func (w *MainWindow) defaultDate() string {
	days := w.trip.List().Days()
	if len(days) == 0 {
		return ""
	}
	return days[len(days)-1].Date
}

// handlePreferences opens the preferences dialog with the current values
func (w *MainWindow) handlePreferences() {
	fyneApp := w.app.FyneApp()
	settings.ShowPreferencesDialog(w.window, settings.Current{
		ThemeMode:    ThemeMode(fyneApp),
		ImageTimeout: w.app.ImageTimeout(),
	}, settings.PreferencesCallbacks{
		OnThemeChange: func(mode string) {
			SaveThemePreference(fyneApp, mode)
		},
		OnImageTimeoutChange: w.app.SetImageTimeout,
	})
}

// updateTitle shows the open itinerary and whether it has unsaved changes
func (w *MainWindow) updateTitle() {
	w.window.SetTitle(title(w.trip.Name(), w.isDirty()))
}

func (w *MainWindow) isDirty() bool {
	dirty, _ := w.state.Dirty.Get()
	return dirty
}

func title(name string, dirty bool) string {
	t := windowTitle
	if name != "" {
		t = name + " - " + windowTitle
	}
	if dirty {
		t = "• " + t
	}
	return t
}

// SetContent builds and sets the main window layout.
// Layout structure:
//
//	┌─────────────────┬──────────────────────────────┐
//	│                 │      Toolbar                 │
//	│  Saved          ├──────────────────────────────┤
//	│  Itineraries    │      Itinerary List          │
//	│                 ├──────────────────────────────┤
//	│                 │      Status Bar              │
//	└─────────────────┴──────────────────────────────┘
func (w *MainWindow) SetContent() {
	rightPanel := container.NewBorder(
		w.toolbar,   // top
		w.statusBar, // bottom
		nil,
		nil,
		w.itineraryList,
	)

	mainSplit := container.NewHSplit(w.tripsPanel, rightPanel)
	mainSplit.SetOffset(0.25)

	w.window.SetContent(mainSplit)
}

// Window returns the underlying Fyne window.
func (w *MainWindow) Window() fyne.Window {
	return w.window
}
