// Package intercom assembles the keyword registry out of the configured
// entity directory and the built-in device commands.
package intercom

import (
	"fmt"

	"github.com/bryanq/doorman/internal/actions"
	"github.com/bryanq/doorman/internal/dispatch"
	"github.com/bryanq/doorman/internal/entities"
	"github.com/bryanq/doorman/internal/secrets"
)

const ipAddressCommand = "ip -4 route get 1 | head -1 | cut -d' ' -f8"

// Options carries the dependencies of the keyword registry.
// Say is the sole output channel; every handler speaks through it.
type Options struct {
	Say              actions.Say
	Store            *entities.Store
	Rotator          *secrets.Rotator
	DefaultTenant    string
	GetVolumeCommand string
	SetVolumeCommand string
}

// NewDispatcher builds the keyword registry.
//
// Registration order matters because the first matching phrase wins:
// device commands come first, then per-unit and per-tenant paging, then
// the door entry and password reset commands, and the canned responses
// and the time announcement last. An utterance naming both a tenant and
// an entry keyword therefore pages the tenant.
func NewDispatcher(opts Options) (*dispatch.Dispatcher, error) {
	say := opts.Say
	d := &dispatch.Dispatcher{}

	d.AddKeyword(&actions.SpeakShellCommandOutput{
		Say:         say,
		Command:     ipAddressCommand,
		FailureText: "I do not have an ip address assigned to me.",
	}, "ip address")

	d.AddKeyword(volumeControl(opts, 10), "volume up")
	d.AddKeyword(volumeControl(opts, -10), "volume down")
	d.AddKeyword(volumeControl(opts, 100), "max volume")

	d.AddKeyword(&actions.RepeatAfterMe{Say: say, Keyword: "repeat after me"}, "repeat after me")

	for _, id := range opts.Store.UnitIDs() {
		unit, _ := opts.Store.Unit(id)
		d.AddKeyword(actions.NewPageUnit(say, unit), unit.Synonyms()...)
	}

	for _, id := range opts.Store.TenantIDs() {
		tenant, _ := opts.Store.Tenant(id)
		d.AddKeyword(actions.NewPageTenant(say, tenant), tenant.Synonyms()...)
	}

	// TODO: resolve the tenant from the conversation instead of
	// configuring a single default tenant.
	tenant, ok := opts.Store.Tenant(opts.DefaultTenant)
	if !ok {
		return nil, fmt.Errorf("default tenant %q not found in the entity directory", opts.DefaultTenant)
	}

	d.AddKeyword(&actions.GainEntry{
		Say:     say,
		Tenant:  tenant,
		Rotator: opts.Rotator,
	}, actions.GainEntryKeywords...)

	d.AddKeyword(&actions.RequestPassword{
		Say:     say,
		Tenant:  tenant,
		Rotator: opts.Rotator,
	}, actions.RequestPasswordKeywords...)

	addCannedResponses(d, say)

	d.AddKeyword(&actions.SpeakTime{Say: say}, "time")

	return d, nil
}

func volumeControl(opts Options, change int) *actions.VolumeControl {
	return &actions.VolumeControl{
		Say:        opts.Say,
		Change:     change,
		GetCommand: opts.GetVolumeCommand,
		SetCommand: opts.SetVolumeCommand,
	}
}

func addCannedResponses(d *dispatch.Dispatcher, say actions.Say) {
	simple := func(keyword, response string) {
		d.AddKeyword(&actions.Speak{Say: say, Words: response}, keyword)
	}

	simple("alexa", "We've been friends since we were both starter projects")
	simple("beatbox", "pv zk pv pv zk pv zk kz zk pv pv pv zk pv zk zk pzk pzk pvzkpkzvpvzk kkkkkk bsch")
	simple("clap", "clap clap")
	simple("google home", "She taught me everything I know.")
	simple("hello", "hello to you too")
	simple("tell me a joke", "What do you call an alligator in a vest? An investigator.")
	simple("three laws of robotics", `The laws of robotics are
0: A robot may not injure a human being or, through inaction, allow a human
being to come to harm.
1: A robot must obey orders given it by human beings except where such orders
would conflict with the First Law.
2: A robot must protect its own existence as long as such protection does not
conflict with the First or Second Law.`)
	simple("where are you from", "A galaxy far, far, just kidding. I'm from Seattle.")
	simple("your name", "A machine has no name")
}
