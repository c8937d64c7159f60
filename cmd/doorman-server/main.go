package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/bryanq/doorman/internal/cli"
	"github.com/bryanq/doorman/internal/entities"
	"github.com/bryanq/doorman/internal/intercom"
	"github.com/bryanq/doorman/internal/model"
	"github.com/bryanq/doorman/internal/pubsub"
	"github.com/bryanq/doorman/internal/secrets"
	"github.com/bryanq/doorman/internal/server"
	"github.com/bryanq/doorman/internal/sms"
	"github.com/bryanq/doorman/pkg/config"
)

func main() {
	configFile := "/etc/doorman/config.yaml"
	cfg, err := config.FromFile(configFile)
	configFlag := &config.Flag{File: configFile, Config: &cfg}

	flags := flag.CommandLine
	flags.Var(configFlag, "config", "Path to the configuration file")
	flags.StringVar(&cfg.EntitiesFile, "entities", cfg.EntitiesFile, "path to the YAML building directory of units and tenants")
	flags.StringVar(&cfg.WordsFile, "words", cfg.WordsFile, "path to the password word list, one candidate per line")
	flags.StringVar(&cfg.TwilioConfigFile, "twilio-config", cfg.TwilioConfigFile, "path to the Twilio credentials file; SMS is logged instead of sent when empty")
	flags.StringVar(&cfg.DefaultTenant, "default-tenant", cfg.DefaultTenant, "tenant the entry and password commands apply to")
	flags.StringVar(&cfg.ListenAddress, "listen", cfg.ListenAddress, "address the intercom console listens on")
	cli.ParseFlagsWithEnvVars(flags, "DOORMAN_")

	if !configFlag.IsSet && err != nil {
		slog.Warn(fmt.Sprintf("using flag defaults: %s", err))
	}

	err = config.Validate(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = runServer(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
}

func runServer(ctx context.Context, cfg config.Configuration) error {
	store, err := entities.Load(cfg.EntitiesFile)
	if err != nil {
		return err
	}

	words, err := secrets.LoadWordList(cfg.WordsFile)
	if err != nil {
		return err
	}

	var texter secrets.Texter = logTexter{}
	if cfg.TwilioConfigFile != "" {
		twilioCfg, err := sms.LoadConfig(cfg.TwilioConfigFile)
		if err != nil {
			return err
		}

		texter = sms.NewMessenger(twilioCfg)
	} else {
		slog.Warn("no twilio config provided, text messages will be logged instead of sent")
	}

	feed := pubsub.NewFeed()
	defer feed.Stop()

	// On the console the doorman's lines go to the transcript stream
	// instead of a speaker.
	say := func(text string) {
		slog.Info(fmt.Sprintf("doorman: %s", text))
		feed.Publish(model.TranscriptEvent{Role: model.RoleDoorman, Text: text})
	}

	d, err := intercom.NewDispatcher(intercom.Options{
		Say:              say,
		Store:            store,
		Rotator:          &secrets.Rotator{Words: words, Messenger: texter},
		DefaultTenant:    cfg.DefaultTenant,
		GetVolumeCommand: cfg.GetVolumeCommand,
		SetVolumeCommand: cfg.SetVolumeCommand,
	})
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	ic := &server.Intercom{Dispatcher: d, Feed: feed}
	ic.AddRoutes(mux)

	srv := &http.Server{
		Addr:        cfg.ListenAddress,
		Handler:     mux,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()
		log.Println("terminating")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	slog.Info(fmt.Sprintf("intercom console listening on %s", cfg.ListenAddress))

	err = srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// logTexter stands in for the SMS gateway during local development.
type logTexter struct{}

func (logTexter) SendText(to, message string) error {
	slog.Info(fmt.Sprintf("would text %s: %s", to, message))
	return nil
}
