// Package dispatch routes recognized utterances to action handlers by
// keyword phrase.
package dispatch

import "strings"

// Handler carries out a single voice command.
type Handler interface {
	Run(utterance string) error
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(utterance string) error

func (f HandlerFunc) Run(utterance string) error {
	return f(utterance)
}

type entry struct {
	phrases []string
	handler Handler
}

// Dispatcher holds an ordered registry of keyword phrases and handlers.
//
// A phrase matches when it appears as a case-insensitive substring
// anywhere in the utterance. The first registered entry with a matching
// phrase wins, so registration order decides ambiguous utterances.
type Dispatcher struct {
	entries []entry
}

// AddKeyword registers one or more keyword phrases, all routed to the
// same handler. Registration order is significant.
func (d *Dispatcher) AddKeyword(handler Handler, phrases ...string) {
	lower := make([]string, len(phrases))

	for i, p := range phrases {
		lower[i] = strings.ToLower(p)
	}

	d.entries = append(d.entries, entry{phrases: lower, handler: handler})
}

// Handle invokes the handler of the first matching registry entry.
// It reports whether any entry matched. An utterance matching no keyword
// is ignored; the caller decides whether to surface that.
// Handler errors are returned unmodified.
func (d *Dispatcher) Handle(utterance string) (bool, error) {
	lower := strings.ToLower(utterance)

	for _, e := range d.entries {
		for _, phrase := range e.phrases {
			if strings.Contains(lower, phrase) {
				return true, e.handler.Run(utterance)
			}
		}
	}

	return false, nil
}
