// Package sms sends text messages to tenants via Twilio.
package sms

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gopkg.in/yaml.v3"
)

// Config holds the Twilio credentials, kept in a separate YAML document
// next to the main configuration.
type Config struct {
	AccountSID string `yaml:"account_sid" validate:"required"`
	AuthToken  string `yaml:"auth_token" validate:"required"`
	From       string `yaml:"from" validate:"required,e164"`
}

func LoadConfig(path string) (Config, error) {
	var cfg Config

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read twilio config: %w", err)
	}

	err = yaml.Unmarshal(b, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("read twilio config at %s: %w", path, err)
	}

	err = validator.New().Struct(cfg)
	if err != nil {
		return cfg, fmt.Errorf("invalid twilio config at %s: %w", path, err)
	}

	return cfg, nil
}

// Messenger sends one-off text messages. There is no retry on transient
// failures; errors propagate to the caller.
type Messenger struct {
	client *twilio.RestClient
	from   string
}

func NewMessenger(cfg Config) *Messenger {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})

	return &Messenger{client: client, from: cfg.From}
}

func (m *Messenger) SendText(to, message string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(m.from)
	params.SetBody(message)

	msg, err := m.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("send sms via twilio: %w", err)
	}

	if msg.Sid != nil {
		slog.Debug(fmt.Sprintf("sent sms %s", *msg.Sid))
	}

	return nil
}
