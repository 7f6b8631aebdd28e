package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"bustrip/internal/api"
	"bustrip/internal/config"
	"bustrip/internal/eventbus"
	"bustrip/internal/session"
	"bustrip/internal/storage"
	"bustrip/internal/ui"
)

func main() {
	// Parse command line arguments
	var (
		configPath      string
		apiURL          string
		logPath         string
		resetOnboarding bool
		showHelp        bool
	)
	flag.StringVarP(&configPath, "config", "c", "", "Path to config.toml (default: user config dir)")
	flag.StringVar(&apiURL, "api", "", "API base URL, overrides config and BUSTRIP_API_BASE_URL")
	flag.StringVar(&logPath, "log-file", "", "Log file path (default: bustrip.log)")
	flag.BoolVar(&resetOnboarding, "reset-onboarding", false, "Show country and language selection again")
	flag.BoolVarP(&showHelp, "help", "h", false, "Show this help")
	flag.Parse()

	if showHelp {
		fmt.Fprintf(os.Stderr, "Usage: bustrip [flags]\n\n")
		flag.PrintDefaults()
		return
	}

	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(configPath, bus)

	// Subscribe before loading so the load itself is logged
	subscribeLogging(bus)

	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if apiURL != "" {
		cfg.API.BaseURL = apiURL
	}
	if logPath != "" {
		cfg.Log.File = logPath
	}

	// Set up logging
	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}
	log.Printf("Using config %s, API %s", configSvc.Path(), cfg.API.BaseURL)

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	store, err := openStore(cfg.Storage.Path)
	if err != nil {
		log.Printf("Storage unavailable, nothing will be remembered: %v", err)
	} else {
		defer store.Close()
	}

	sess := session.New(store, bus)
	authenticated, err := sess.Restore(ctx)
	if errors.Is(err, session.ErrExpired) {
		log.Printf("Saved session expired, signing in again")
	} else if err != nil {
		log.Printf("Could not restore session: %v", err)
	}

	onboarded := hasOnboarded(ctx, store)
	if resetOnboarding {
		if store != nil {
			if err := store.DeleteItem(ctx, storage.KeyHasOnboarded); err != nil {
				log.Printf("Could not reset onboarding: %v", err)
			}
		}
		onboarded = false
	}

	// Onboarding choices go to both storage and the config file
	bus.Subscribe(eventbus.EventOnboardingCompleted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.OnboardingCompletedEvent); ok {
			if err := savePreferences(configSvc, event.Country, event.Language); err != nil {
				log.Printf("Failed to save preferences: %v", err)
			}
		}
	})

	client := api.New(cfg.API.BaseURL, cfg.Timeout(),
		api.WithTokenSource(sess.Token),
		api.WithCityCache(cfg.CacheTTL()),
		api.WithCodeLength(cfg.OTP.Length),
	)

	uiModel := ui.NewModel(ui.Deps{
		Config:  cfg,
		Bus:     bus,
		Backend: client,
		Session: sess,
		Store:   store,
		Start:   ui.StartMode(onboarded, authenticated && !resetOnboarding),
	})

	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Run the UI
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}

func openStore(path string) (storage.Store, error) {
	store, err := storage.Open(path)
	if err != nil {
		return nil, err
	}
	return store, nil
}

func hasOnboarded(ctx context.Context, store storage.Store) bool {
	if store == nil {
		return false
	}
	value, err := store.GetItem(ctx, storage.KeyHasOnboarded)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		log.Printf("Could not read onboarding state: %v", err)
	}
	return value == "true"
}

// savePreferences writes the choices into the config file without
// persisting command line or environment overrides
func savePreferences(svc config.ConfigService, country, language string) error {
	cfg, err := svc.LoadFromPath(svc.Path())
	if err != nil {
		if _, statErr := os.Stat(svc.Path()); !os.IsNotExist(statErr) {
			return err
		}
		cfg = config.DefaultConfig()
	}
	cfg.Preferences.Country = country
	cfg.Preferences.Language = language
	return svc.Save(cfg)
}

// subscribeLogging writes every domain event to the log
func subscribeLogging(bus eventbus.EventBus) {
	logEvent := func(e eventbus.DomainEvent) {
		switch event := e.(type) {
		case eventbus.ConfigLoadedEvent:
			log.Printf("Config loaded from %s", event.Path)
		case eventbus.ConfigSavedEvent:
			log.Printf("Config saved to %s", event.Path)
		case eventbus.SearchCompletedEvent:
			log.Printf("City search %q (generation %d) returned %d results", event.Term, event.Generation, event.Count)
		case eventbus.SearchFailedEvent:
			log.Printf("City search %q (generation %d) failed, stale=%t: %v", event.Term, event.Generation, event.Stale, event.Err)
		case eventbus.UserLoggedInEvent:
			log.Printf("Signed in as %s", event.User.Email)
		case eventbus.UserLoggedOutEvent:
			log.Printf("Signed out")
		case eventbus.OnboardingCompletedEvent:
			log.Printf("Onboarding completed: %s / %s", event.Country, event.Language)
		case eventbus.ErrorEvent:
			log.Printf("Error: %s: %v", event.Message, event.Err)
		}
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventConfigLoaded,
		eventbus.EventConfigSaved,
		eventbus.EventSearchCompleted,
		eventbus.EventSearchFailed,
		eventbus.EventUserLoggedIn,
		eventbus.EventUserLoggedOut,
		eventbus.EventOnboardingCompleted,
		eventbus.EventError,
	} {
		bus.Subscribe(t, logEvent)
	}
}
