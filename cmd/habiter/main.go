package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"habiter/internal/app"
	"habiter/internal/config"
	"habiter/internal/record"
	"habiter/internal/ui/graphics"
	"habiter/internal/ui/graphics/components"
	"habiter/internal/ui/graphics/screens"
	"habiter/internal/ui/sound"
	"habiter/internal/ui/types"

	"golang.org/x/sync/errgroup"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	configPath := flag.String("config", "", "path to a YAML config file")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	recordsPath := flag.String("records", "", "path to the high score file")
	mute := flag.Bool("mute", false, "disable sound effects")
	dumpConfig := flag.Bool("dump-config", false, "print the effective config and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}
	if *mute {
		cfg.Sound = false
	}
	if *recordsPath != "" {
		cfg.RecordsPath = *recordsPath
	}

	if *dumpConfig {
		data, err := cfg.Marshal()
		if err != nil {
			log.Fatalf("Failed to encode config: %v", err)
		}
		fmt.Print(string(data))
		return
	}

	store, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open records: %v", err)
	}

	application, err := app.NewApp(&cfg.Game, store)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	boardW, boardH := cfg.WindowSize()
	engine := graphics.NewEngine(
		cfg.Window.Title,
		boardW+components.PanelWidth+40,
		boardH+components.HeaderHeight+components.FooterHeight+20,
	)
	engine.SetConfig(&cfg.Game)
	engine.SetScale(cfg.Window.Scale)
	engine.SetSnapshot(application.Snapshot())
	refreshRecords(store, engine)

	engine.RegisterScreens(
		screens.NewGameScreen(engine),
		screens.NewGameOverScreen(engine),
		screens.NewScoresScreen(engine),
		screens.NewSettingsScreen(engine),
	)

	player := sound.NewPlayer(!cfg.Sound)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return application.Run(ctx)
	})
	g.Go(func() error {
		return handleAppEvents(ctx, application, engine, store, player)
	})
	g.Go(func() error {
		return handleUIEvents(ctx, application, engine)
	})
	g.Go(func() error {
		<-ctx.Done()
		engine.Quit()
		return nil
	})

	if err := engine.Run(); err != nil {
		log.Printf("UI error: %v", err)
	}

	log.Println("Shutting down...")
	cancel()
	if err := g.Wait(); err != nil {
		log.Printf("Shutdown error: %v", err)
		os.Exit(1)
	}
}

func openStore(cfg *config.Config) (*record.Store, error) {
	path := cfg.RecordsPath
	if path == "" {
		var err error
		if path, err = record.DefaultPath(); err != nil {
			return nil, err
		}
	}
	return record.NewStore(path, record.DefaultMax), nil
}

func refreshRecords(store *record.Store, engine *graphics.Engine) {
	records, err := store.Load()
	if err != nil {
		log.Printf("Failed to load records from %s: %v", store.Path(), err)
		return
	}
	engine.SetRecords(records)
}

func handleAppEvents(ctx context.Context, application *app.App, engine *graphics.Engine, store *record.Store, player *sound.Player) error {
	for {
		var event app.Event
		select {
		case <-ctx.Done():
			return nil
		case event = <-application.Events():
		}

		switch event.Type {
		case app.EventStateUpdated:
			engine.SetSnapshot(application.Snapshot())

		case app.EventFoodEaten:
			player.Play(sound.EffectEat)

		case app.EventGameOver:
			payload, ok := event.Payload.(app.GameOverPayload)
			if !ok {
				continue
			}
			engine.SetSnapshot(payload.Snapshot)
			engine.SetGameOver(payload.Snapshot, payload.Rank)
			refreshRecords(store, engine)
			player.Play(sound.EffectGameOver)
			engine.RequestScreen(types.ScreenGameOver)

		case app.EventRestarted:
			engine.SetSnapshot(application.Snapshot())
			engine.SetConfig(application.Config())
			player.Play(sound.EffectRestart)
			engine.RequestScreen(types.ScreenGame)

		case app.EventError:
			if payload, ok := event.Payload.(app.ErrorPayload); ok {
				engine.SetError(payload.Message)
			}
		}
	}
}

func handleUIEvents(ctx context.Context, application *app.App, engine *graphics.Engine) error {
	for {
		var event types.UIEvent
		select {
		case <-ctx.Done():
			return nil
		case event = <-engine.Events():
		}

		switch event.Type {
		case types.UIEventSteer:
			data, ok := event.Payload.(types.SteerData)
			if !ok {
				continue
			}
			for _, dir := range data.Directions {
				application.Steer(dir)
			}

		case types.UIEventRestart:
			application.Restart()

		case types.UIEventApplySettings:
			data, ok := event.Payload.(types.SettingsData)
			if !ok || data.Config == nil {
				continue
			}
			application.Reconfigure(data.Config)

		case types.UIEventQuit:
			log.Println("Quit requested")
		}
	}
}
