// Package actions contains the voice-command handlers.
//
// Every handler implements dispatch.Handler and receives a Say callback at
// construction. Say is the only output channel towards the visitor.
package actions

import (
	"fmt"
	"math/rand"
	"os/exec"
	"strings"
)

// Say speaks the given text to the visitor.
type Say func(text string)

// CommandRunner executes a shell command line and returns its stdout.
type CommandRunner func(command string) ([]byte, error)

func runShell(command string) ([]byte, error) {
	return exec.Command("sh", "-c", command).Output()
}

// Speak says a fixed phrase, ignoring the utterance.
type Speak struct {
	Say   Say
	Words string
}

func (a *Speak) Run(utterance string) error {
	a.Say(a.Words)
	return nil
}

// RepeatAfterMe speaks the utterance with the trigger keyword removed.
type RepeatAfterMe struct {
	Say     Say
	Keyword string
}

func (a *RepeatAfterMe) Run(utterance string) error {
	// The utterance still contains the keyword, so strip its first
	// occurrence before repeating the rest.
	a.Say(strings.Replace(utterance, a.Keyword, "", 1))
	return nil
}

// SpeakShellCommandOutput runs a shell command and speaks its output.
// When the command prints nothing, the configured failure text is spoken
// instead. Execution errors propagate to the dispatch caller.
type SpeakShellCommandOutput struct {
	Say         Say
	Command     string
	FailureText string
	Runner      CommandRunner
}

func (a *SpeakShellCommandOutput) Run(utterance string) error {
	runner := a.Runner
	if runner == nil {
		runner = runShell
	}

	out, err := runner(a.Command)
	if err != nil {
		return fmt.Errorf("run command %q: %w", a.Command, err)
	}

	output := strings.TrimSpace(string(out))

	if output != "" {
		a.Say(output)
	} else if a.FailureText != "" {
		a.Say(a.FailureText)
	}

	return nil
}

func pickResponse(responses []string) string {
	return responses[rand.Intn(len(responses))]
}
