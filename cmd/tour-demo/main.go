package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/rs/zerolog"

	"github.com/BrianJOC/tourguide/definitions"
	"github.com/BrianJOC/tourguide/logging"
	"github.com/BrianJOC/tourguide/pkg/tourapp"
)

func main() {
	tourDir := flag.String("tours", "", "directory of tour definition files (defaults to the builtin demo tour)")
	tourName := flag.String("tour", "", "name of the tour to run when -tours is set")
	debugLog := flag.String("debug-log", "", "write debug logs to this file")
	flag.Parse()

	if *debugLog != "" {
		f, err := os.OpenFile(*debugLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("failed to open debug log: %v", err)
		}
		defer f.Close()
		logging.Setup(f, zerolog.DebugLevel)
	}

	def, err := pickTour(*tourDir, *tourName)
	if err != nil {
		log.Fatalf("failed to load tour: %v", err)
	}

	app, err := tourapp.New(
		tourapp.WithPanels(demoPanels()...),
		tourapp.WithDefinitions(def),
	)
	if err != nil {
		log.Fatalf("failed to initialize tour app: %v", err)
	}

	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("tui exited with error: %v", err)
	}
}

func pickTour(dir, name string) (*definitions.Tour, error) {
	if dir == "" {
		return definitions.Builtin(), nil
	}
	tours, err := definitions.LoadDir(dir)
	if err != nil {
		return nil, err
	}
	if name == "" && len(tours) > 0 {
		return tours[0], nil
	}
	for _, t := range tours {
		if t.Name == name {
			return t, nil
		}
	}
	return definitions.Builtin(), nil
}

func demoPanels() []tourapp.Panel {
	return []tourapp.Panel{
		{ID: "#sidebar", Title: "Sidebar", Body: "Projects\nAlerts\nSettings"},
		{ID: "#chart", Title: "Throughput", Body: "▂▄▆█▆▄▂\nlast 24h"},
		{ID: "#log", Title: "Activity", Body: "deploy ok\nbackup ok\n2 warnings"},
		{ID: "#statusbar", Title: "Status", Body: "All systems nominal"},
	}
}
