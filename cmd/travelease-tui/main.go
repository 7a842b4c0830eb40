package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shhac/travelease/internal/app"
	"github.com/shhac/travelease/internal/domain"
	"github.com/shhac/travelease/internal/itinerary"
	"github.com/shhac/travelease/internal/logging"
	"github.com/shhac/travelease/internal/storage"
	"github.com/shhac/travelease/internal/ui/tui"
)

func main() {
	file := flag.String("file", "", "itinerary JSON file to open")
	name := flag.String("name", "", "saved itinerary to open")
	flag.Parse()

	if err := run(*file, *name); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(file, name string) error {
	if (file == "") == (name == "") {
		return fmt.Errorf("exactly one of -file or -name is required")
	}

	cfg := app.ConfigFromEnv()

	logger, logFile, err := logging.InitLogger(logging.Options{
		AppName: "travelease-tui",
		Debug:   cfg.Debug,
		Dir:     cfg.LogDir,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logFile.Close()

	var (
		trip *domain.Itinerary
		repo storage.Repository
	)
	if file != "" {
		trip, err = storage.ReadItineraryFile(file)
	} else {
		repo, err = openRepository(cfg, logger)
		if err != nil {
			return err
		}
		trip, err = repo.LoadItinerary(name)
	}
	if err != nil {
		return fmt.Errorf("failed to open itinerary: %w", err)
	}

	logger.Info("opening itinerary in terminal",
		slog.String("name", trip.Name),
		slog.Int("days", len(trip.Days)))

	items := itinerary.NewGroupedList(domain.Flatten(trip.Days),
		itinerary.WithLogger(logger),
		itinerary.WithExpanded(trip.Expanded...))

	title := trip.Name
	if trip.Destination != "" {
		title += " · " + trip.Destination
	}

	model := tui.New(items, title, logger)
	save := newSaver(file, name, repo)
	model.SetOnDeleteClick(func(row domain.Recommendation, date string) {
		items.RemoveItem(row)
	})
	model.SetOnSave(func() error {
		snapshot := *trip
		snapshot.Days = items.Days()
		snapshot.Expanded = items.ExpandedDates()
		snapshot.UpdatedAt = time.Now().UTC()
		return save(snapshot)
	})

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("terminal program failed: %w", err)
	}
	return nil
}

func openRepository(cfg *app.Config, logger *slog.Logger) (storage.Repository, error) {
	path := cfg.StoragePath
	if path == "" {
		var err error
		path, err = storage.DefaultStoragePath()
		if err != nil {
			return nil, fmt.Errorf("failed to determine storage path: %w", err)
		}
	}
	return storage.NewJSONRepository(path, logger), nil
}

// newSaver writes back to file when one was given, otherwise to the saved
// itinerary called name.
func newSaver(file, name string, repo storage.Repository) func(domain.Itinerary) error {
	if file != "" {
		return func(it domain.Itinerary) error {
			return storage.WriteItineraryFile(file, it)
		}
	}
	return func(it domain.Itinerary) error {
		it.Name = name
		return repo.SaveItinerary(it)
	}
}
