package actions

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

const (
	// DefaultGetVolumeCommand extracts the current master volume percentage.
	DefaultGetVolumeCommand = `amixer get Master | grep "Front Left:" | sed "s/.*\[\([0-9]\+\)%\].*/\1/"`
	// DefaultSetVolumeCommand applies a volume percentage. It is a format
	// string taking the target percentage.
	DefaultSetVolumeCommand = `amixer -q set Master %d%%`
)

// VolumeControl adds a signed delta to the system output volume, clamped
// to [0,100], and says the new level. Failures are absorbed: the visitor
// hears an apology and the error is logged, never propagated.
type VolumeControl struct {
	Say        Say
	Change     int
	GetCommand string
	SetCommand string
	Runner     CommandRunner
}

func (a *VolumeControl) Run(utterance string) error {
	runner := a.Runner
	if runner == nil {
		runner = runShell
	}

	getCmd := a.GetCommand
	if getCmd == "" {
		getCmd = DefaultGetVolumeCommand
	}

	setCmd := a.SetCommand
	if setCmd == "" {
		setCmd = DefaultSetVolumeCommand
	}

	out, err := runner(getCmd)
	if err != nil {
		a.apologize(fmt.Errorf("query volume: %w", err))
		return nil
	}

	current, err := strconv.Atoi(strings.TrimSpace(string(out)))
	if err != nil {
		a.apologize(fmt.Errorf("parse volume %q: %w", strings.TrimSpace(string(out)), err))
		return nil
	}

	slog.Info(fmt.Sprintf("volume: %d", current))

	volume := current + a.Change
	volume = max(0, min(100, volume))

	_, err = runner(fmt.Sprintf(setCmd, volume))
	if err != nil {
		a.apologize(fmt.Errorf("set volume: %w", err))
		return nil
	}

	a.Say(fmt.Sprintf("Volume at %d %%.", volume))

	return nil
}

func (a *VolumeControl) apologize(err error) {
	slog.Error(fmt.Sprintf("adjust volume: %s", err))
	a.Say("Sorry, I couldn't do that")
}
