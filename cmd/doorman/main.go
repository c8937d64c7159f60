package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bryanq/doorman/internal/actions"
	"github.com/bryanq/doorman/internal/cli"
	"github.com/bryanq/doorman/internal/entities"
	"github.com/bryanq/doorman/internal/intercom"
	"github.com/bryanq/doorman/internal/secrets"
	"github.com/bryanq/doorman/internal/sms"
	"github.com/bryanq/doorman/internal/tts"
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
	flags.StringVar(&cfg.Language, "lang", cfg.Language, "language code for the TTS engine")
	flags.StringVar(&cfg.TTSServerURL, "tts-url", cfg.TTSServerURL, "URL of the translate TTS endpoint")
	flags.StringVar(&cfg.PlayerCommand, "player", cfg.PlayerCommand, "audio player command reading MP3 data from stdin; speech is logged only when empty")
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

	go func() {
		<-ctx.Done()
		log.Println("terminating")
	}()

	err = runCommandLoop(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
}

func runCommandLoop(ctx context.Context, cfg config.Configuration) error {
	store, err := entities.Load(cfg.EntitiesFile)
	if err != nil {
		return err
	}

	words, err := secrets.LoadWordList(cfg.WordsFile)
	if err != nil {
		return err
	}

	texter, err := newTexter(cfg)
	if err != nil {
		return err
	}

	d, err := intercom.NewDispatcher(intercom.Options{
		Say:              newSay(ctx, cfg),
		Store:            store,
		Rotator:          &secrets.Rotator{Words: words, Messenger: texter},
		DefaultTenant:    cfg.DefaultTenant,
		GetVolumeCommand: cfg.GetVolumeCommand,
		SetVolumeCommand: cfg.SetVolumeCommand,
	})
	if err != nil {
		return err
	}

	// The speech recognizer is an external collaborator. Until it is
	// hooked up, utterances arrive as text lines on stdin.
	lines := make(chan string)
	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}

			utterance := strings.TrimSpace(line)
			if utterance == "" {
				continue
			}

			matched, err := d.Handle(utterance)
			if err != nil {
				slog.Error(fmt.Sprintf("handle %q: %s", utterance, err))
				continue
			}

			if !matched {
				slog.Debug(fmt.Sprintf("no keyword matched: %s", utterance))
			}
		}
	}
}

func newSay(ctx context.Context, cfg config.Configuration) actions.Say {
	if cfg.PlayerCommand == "" {
		return func(text string) {
			slog.Info(fmt.Sprintf("doorman: %s", text))
		}
	}

	speaker := &tts.Speaker{
		Service: &tts.Client{
			URL:    cfg.TTSServerURL,
			Lang:   cfg.Language,
			Client: &http.Client{Timeout: 30 * time.Second},
		},
		PlayerCommand: strings.Fields(cfg.PlayerCommand),
	}

	return speaker.SayFunc(ctx)
}

func newTexter(cfg config.Configuration) (secrets.Texter, error) {
	if cfg.TwilioConfigFile == "" {
		slog.Warn("no twilio config provided, text messages will be logged instead of sent")
		return logTexter{}, nil
	}

	twilioCfg, err := sms.LoadConfig(cfg.TwilioConfigFile)
	if err != nil {
		return nil, err
	}

	return sms.NewMessenger(twilioCfg), nil
}

// logTexter stands in for the SMS gateway during local development.
type logTexter struct{}

func (logTexter) SendText(to, message string) error {
	slog.Info(fmt.Sprintf("would text %s: %s", to, message))
	return nil
}
