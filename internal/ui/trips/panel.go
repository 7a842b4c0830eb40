package trips

import (
	"log/slog"
	"slices"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
	"github.com/shhac/travelease/internal/model"
	uierrors "github.com/shhac/travelease/internal/ui/errors"
)

// Store is what the panel needs from the open trip
type Store interface {
	Name() string
	New(destination string)
	Save(name string) error
	Open(name string) error
	Delete(name string) error
	RefreshNames() error
}

// TripsPanel lists saved itineraries and saves, opens and deletes them
type TripsPanel struct {
	widget.BaseWidget

	store  Store
	state  *model.ApplicationState
	logger *slog.Logger
	window fyne.Window

	// UI components
	listWidget *widget.List
	nameEntry  *widget.Entry
	saveBtn    *widget.Button
	openBtn    *widget.Button
	deleteBtn  *widget.Button
	newBtn     *widget.Button

	// Empty state
	placeholder *widget.Label

	content *fyne.Container
}

// NewTripsPanel creates a new saved itinerary panel
func NewTripsPanel(store Store, state *model.ApplicationState, logger *slog.Logger, window fyne.Window) *TripsPanel {
	p := &TripsPanel{
		store:  store,
		state:  state,
		logger: logger,
		window: window,
	}

	p.ExtendBaseWidget(p)
	p.buildUI()
	p.initializeComponents()

	state.Itineraries.AddListener(binding.NewDataListener(p.updatePlaceholder))
	p.RefreshList()

	return p
}

// buildUI constructs the panel widgets
func (p *TripsPanel) buildUI() {
	p.listWidget = widget.NewListWithData(
		p.state.Itineraries,
		func() fyne.CanvasObject {
			return widget.NewLabel("template")
		},
		func(i binding.DataItem, o fyne.CanvasObject) {
			label := o.(*widget.Label)
			strItem := i.(binding.String)
			val, _ := strItem.Get()
			label.SetText(val)
		},
	)

	p.listWidget.OnSelected = func(id widget.ListItemID) {
		names, _ := p.state.Itineraries.Get()
		if id >= 0 && id < len(names) {
			p.nameEntry.SetText(names[id])
		}
	}

	p.nameEntry = widget.NewEntry()
	p.nameEntry.SetPlaceHolder("Itinerary name")

	p.placeholder = widget.NewLabel("No saved itineraries. Name this one and save it")
	p.placeholder.Alignment = fyne.TextAlignCenter
	p.placeholder.Wrapping = fyne.TextWrapWord
	p.placeholder.TextStyle = fyne.TextStyle{Italic: true}

	p.saveBtn = widget.NewButton("Save", p.handleSave)
	p.openBtn = widget.NewButton("Open", p.handleOpen)
	p.deleteBtn = widget.NewButton("Delete", p.handleDelete)
	p.deleteBtn.Importance = widget.DangerImportance
	p.newBtn = widget.NewButton("New", p.handleNew)
}

// initializeComponents creates the layout once and stores it in p.content.
func (p *TripsPanel) initializeComponents() {
	title := widget.NewLabelWithStyle("Itineraries", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	buttonRow := container.NewGridWithColumns(2, p.saveBtn, p.openBtn)
	actionRow := container.NewGridWithColumns(2, p.deleteBtn, p.newBtn)

	p.content = container.NewBorder(
		title,
		container.NewVBox(p.nameEntry, buttonRow, actionRow),
		nil,
		nil,
		container.NewStack(container.NewScroll(p.listWidget), p.placeholder),
	)
}

// CreateRenderer implements the fyne.Widget interface
func (p *TripsPanel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.content)
}

// RefreshList reloads saved itinerary names from storage
func (p *TripsPanel) RefreshList() {
	if err := p.store.RefreshNames(); err != nil {
		p.logger.Error("failed to list itineraries", slog.Any("error", err))
	}
	p.updatePlaceholder()
}

// TriggerSave programmatically triggers save (for keyboard shortcut)
func (p *TripsPanel) TriggerSave() {
	p.handleSave()
}

// selectedName returns the entered name, falling back to the open trip's
func (p *TripsPanel) selectedName() string {
	if name := strings.TrimSpace(p.nameEntry.Text); name != "" {
		return name
	}
	return p.store.Name()
}

func (p *TripsPanel) handleSave() {
	name := p.selectedName()
	if name == "" {
		uierrors.ShowMessage(p.window, "Name Required", "Please enter an itinerary name")
		return
	}

	doSave := func() {
		if err := p.store.Save(name); err != nil {
			p.logger.Error("failed to save itinerary", slog.String("name", name), slog.Any("error", err))
			uierrors.ShowError(err, p.window)
			return
		}
		p.nameEntry.SetText(name)
		p.updatePlaceholder()
	}

	// Saving over a different saved itinerary needs confirmation
	names, _ := p.state.Itineraries.Get()
	if name != p.store.Name() && slices.Contains(names, name) {
		ShowOverwriteConfirm(p.window, name, doSave)
		return
	}

	doSave()
}

func (p *TripsPanel) handleOpen() {
	name := strings.TrimSpace(p.nameEntry.Text)
	if name == "" {
		uierrors.ShowMessage(p.window, "Name Required", "Please select or enter an itinerary name")
		return
	}

	doOpen := func() {
		if err := p.store.Open(name); err != nil {
			p.logger.Error("failed to open itinerary", slog.String("name", name), slog.Any("error", err))
			uierrors.ShowError(err, p.window)
			p.RefreshList()
		}
	}

	if dirty, _ := p.state.Dirty.Get(); dirty {
		ShowDiscardConfirm(p.window, doOpen)
		return
	}
	doOpen()
}

func (p *TripsPanel) handleDelete() {
	name := strings.TrimSpace(p.nameEntry.Text)
	if name == "" {
		uierrors.ShowMessage(p.window, "Name Required", "Please select or enter an itinerary name")
		return
	}

	ShowDeleteConfirm(p.window, name, func() {
		if err := p.store.Delete(name); err != nil {
			p.logger.Error("failed to delete itinerary", slog.String("name", name), slog.Any("error", err))
			uierrors.ShowError(err, p.window)
			return
		}
		p.nameEntry.SetText("")
		p.listWidget.UnselectAll()
		p.updatePlaceholder()
	})
}

func (p *TripsPanel) handleNew() {
	doNew := func() {
		p.store.New("")
		p.nameEntry.SetText("")
		p.listWidget.UnselectAll()
	}

	if dirty, _ := p.state.Dirty.Get(); dirty {
		ShowDiscardConfirm(p.window, doNew)
		return
	}
	doNew()
}

func (p *TripsPanel) updatePlaceholder() {
	if p.state.Itineraries.Length() == 0 {
		p.placeholder.Show()
	} else {
		p.placeholder.Hide()
	}
}
