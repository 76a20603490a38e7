package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"habiter/internal/app"
	"habiter/internal/config"
	"habiter/internal/record"
	"habiter/internal/ui/terminal"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	configPath := flag.String("config", "", "path to a YAML config file")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	recordsPath := flag.String("records", "", "path to the high score file")
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}
	if *recordsPath != "" {
		cfg.RecordsPath = *recordsPath
	}

	// The terminal belongs to tcell once it starts.
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	path := cfg.RecordsPath
	if path == "" {
		if path, err = record.DefaultPath(); err != nil {
			log.Fatalf("Failed to locate records: %v", err)
		}
	}
	store := record.NewStore(path, record.DefaultMax)

	best := 0
	if r, ok, err := store.Best(); err != nil {
		log.Printf("Failed to load records from %s: %v", store.Path(), err)
	} else if ok {
		best = int(r.Score)
	}

	application, err := app.NewApp(&cfg.Game, store)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	defer screen.Fini()

	presenter := terminal.NewPresenter(screen, application, best)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return application.Run(ctx)
	})
	g.Go(func() error {
		defer cancel()
		return presenter.Run(ctx)
	})

	if err := g.Wait(); err != nil {
		screen.Fini()
		log.SetOutput(os.Stderr)
		log.Fatalf("Terminal UI failed: %v", err)
	}
}
