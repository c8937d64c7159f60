// Package tts renders phrases as speech by fetching MP3 audio from a
// translate TTS endpoint and piping it into an external player command.
package tts

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
)

// DefaultPlayerCommand plays an MP3 stream from stdin using sox.
var DefaultPlayerCommand = []string{"play", "-t", "mp3", "-"}

// Speaker speaks phrases aloud. Playback blocks until the player exits.
type Speaker struct {
	Service       *Client
	PlayerCommand []string
}

func (s *Speaker) Say(ctx context.Context, phrase string) error {
	audio, err := s.Service.FetchSpeech(ctx, phrase)
	if err != nil {
		return err
	}
	defer audio.Close()

	player := s.PlayerCommand
	if len(player) == 0 {
		player = DefaultPlayerCommand
	}

	cmd := exec.CommandContext(ctx, player[0], player[1:]...)
	cmd.Stdin = audio

	err = cmd.Run()
	if err != nil {
		return fmt.Errorf("play speech: %w", err)
	}

	return nil
}

// SayFunc returns the speech callback handed to the action handlers.
// A failed playback is logged but must not kill the command loop.
func (s *Speaker) SayFunc(ctx context.Context) func(string) {
	return func(phrase string) {
		slog.Info(fmt.Sprintf("doorman: %s", phrase))

		err := s.Say(ctx, phrase)
		if err != nil {
			slog.Error(fmt.Sprintf("speak: %s", err))
		}
	}
}
