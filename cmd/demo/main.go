package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	userpilot "github.com/Tap30/segment-userpilot-go"
	"github.com/Tap30/segment-userpilot-go/adapters"
	"github.com/Tap30/segment-userpilot-go/internal/config"
	"github.com/Tap30/segment-userpilot-go/internal/deeplink"
	"github.com/Tap30/segment-userpilot-go/internal/logger"
	"github.com/Tap30/segment-userpilot-go/internal/scenario"
)

func main() {
	os.Exit(demo())
}

// demo returns the process exit code. The logger is flushed before it returns.
func demo() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Error("Demo failed", zap.Error(err))
		return 1
	}
	return 0
}

func run(cfg *config.Config, log *zap.Logger) error {
	s, err := scenario.Load(cfg.Scenario)
	if err != nil {
		return err
	}
	if cfg.Token != "" {
		if s.Settings.Integrations == nil {
			s.Settings.Integrations = make(map[string]any)
		}
		s.Settings.Integrations[userpilot.IntegrationKey] = userpilot.IntegrationSettings{Token: cfg.Token}
	}

	loggerAdapter := adapters.NewZapLoggerAdapter(log)
	sdk := adapters.NewLoggerSDKAdapter(adapters.NewZapLoggerAdapter(log.Named("sdk")))

	plugin, err := userpilot.New(userpilot.Config{
		SDKAdapter:    sdk,
		LoggerAdapter: loggerAdapter,
		Logging:       cfg.Logging,
	})
	if err != nil {
		return fmt.Errorf("failed to create plugin: %w", err)
	}

	emitter := adapters.NewLocalEventEmitter()
	bridge, err := userpilot.NewBridge(emitter, loggerAdapter)
	if err != nil {
		return fmt.Errorf("failed to create bridge: %w", err)
	}
	defer bridge.Close()

	router := deeplink.NewRouter()
	router.Handle("userpilot-example", "demo", "DeepLink")

	bridge.StartListening(userpilot.Handlers{
		OnAnalyticsEvent: func(payload userpilot.Payload) {
			log.Info("Analytics Event", zap.Any("event", payload))
		},
		OnExperienceEvent: func(payload userpilot.Payload) {
			log.Info("Experience Event", zap.Any("event", payload))
		},
		OnNavigationEvent: func(payload userpilot.Payload) {
			log.Info("Navigation Event", zap.Any("event", payload))
			url, ok := payload.URL()
			if !ok {
				return
			}
			route, err := router.Resolve(url)
			if err != nil {
				if errors.Is(err, deeplink.ErrInvalidLink) {
					log.Error("Invalid deep link format", zap.String("url", url))
				} else {
					log.Warn("Unrouted deep link", zap.String("url", url), zap.Error(err))
				}
				return
			}
			log.Info("Navigating", zap.String("route", route), zap.String("url", url))
		},
	})

	plugin.Update(s.Settings, userpilot.UpdateTypeInitial)
	if !plugin.Initialized() {
		log.Warn("Plugin not initialized; events will not be forwarded")
	}

	for _, step := range s.Steps {
		if step.IsReset() {
			plugin.Reset()
			continue
		}
		event, err := step.ToEvent()
		if err != nil {
			return err
		}
		plugin.Execute(event)
	}

	for _, native := range s.Native {
		delivered := emitter.Emit(native.Channel, userpilot.Payload(native.Payload))
		log.Debug("Emitted native event", zap.String("channel", native.Channel), zap.Int("listeners", delivered))
	}

	return nil
}
