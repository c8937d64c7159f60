package actions

import (
	"fmt"
	"strings"

	"github.com/bryanq/doorman/internal/entities"
	"github.com/bryanq/doorman/internal/secrets"
)

// RequestPasswordKeywords trigger a password reset.
// TODO: "forgot" and "help" are too general, narrow them down once the
// tenant can be resolved from context.
var RequestPasswordKeywords = []string{
	"password",
	"forgot",
	"help",
}

var requestPasswordResponses = []string{
	"ok, $tenant, i've sent you a new password",
	"ok, $tenant, check your messages",
	"you got it, $tenant, i just texted you a new one.",
}

// RequestPassword rotates the tenant's password and confirms by voice.
type RequestPassword struct {
	Say     Say
	Tenant  entities.Tenant
	Rotator *secrets.Rotator
}

func (a *RequestPassword) Run(utterance string) error {
	_, err := a.Rotator.Rotate(a.Tenant)
	if err != nil {
		return err
	}

	response := pickResponse(requestPasswordResponses)
	a.Say(strings.ReplaceAll(response, "$tenant", a.Tenant.Name()))

	return nil
}

// GainEntryKeywords trigger the door entry check.
var GainEntryKeywords = []string{
	"let me in",
	"open up",
	"open the door",
	"knock knock",
}

var gainEntryPassResponses = []string{
	"hello, $tenant, have a wonderful day",
	"good day, $tenant, nice to see you",
	"howdy, $tenant!  another lovely day in the city",
}

var gainEntryFailResponses = []string{
	"sorry, i could not let you in",
	"authorization has been denied.  please try again",
	"please check your password, it didn't match",
	"try spelling it out slowly next time",
}

// GainEntry checks the spoken utterance for the tenant's current password
// and rotates it after a successful entry.
type GainEntry struct {
	Say     Say
	Tenant  entities.Tenant
	Rotator *secrets.Rotator
}

func (a *GainEntry) Run(utterance string) error {
	password := a.Tenant.Password()
	passed := strings.Contains(strings.ToLower(utterance), strings.ToLower(password))

	var response string

	if passed {
		response = fmt.Sprintf("that is the correct password: %s. ", password)
		response += pickResponse(gainEntryPassResponses)
	} else {
		response = "i didn't recognize the password. "
		response += pickResponse(gainEntryFailResponses)
	}

	a.Say(strings.ReplaceAll(response, "$tenant", a.Tenant.Name()))

	if passed {
		// Rotate only after speaking so the visitor is not kept waiting
		// for the SMS round trip.
		_, err := a.Rotator.Rotate(a.Tenant)
		return err
	}

	return nil
}
