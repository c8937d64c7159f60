// Package pubsub fans intercom transcript events out to console
// subscribers.
package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bryanq/doorman/internal/model"
)

// Feed broadcasts transcript events to all active subscriptions.
type Feed struct {
	mutex         sync.RWMutex
	subscriptions map[int64]*Subscription
	seq           int64
	stopped       bool
}

func NewFeed() *Feed {
	return &Feed{subscriptions: map[int64]*Subscription{}}
}

// Subscribe registers a new transcript consumer.
// The subscription ends when ctx is cancelled or Stop is called.
func (f *Feed) Subscribe(ctx context.Context) *Subscription {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	s := &Subscription{feed: f, ch: make(chan model.TranscriptEvent, 16)}

	if f.stopped {
		close(s.ch)
		return s
	}

	f.seq++
	s.id = f.seq
	f.subscriptions[s.id] = s

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return s
}

// Publish delivers the event to every subscription. A subscriber that
// does not drain its channel loses events rather than blocking the
// command loop.
func (f *Feed) Publish(evt model.TranscriptEvent) {
	f.mutex.RLock()
	defer f.mutex.RUnlock()

	if f.stopped {
		return
	}

	for _, s := range f.subscriptions {
		select {
		case s.ch <- evt:
		default:
			slog.Warn(fmt.Sprintf("dropping transcript event for slow subscriber %d", s.id))
		}
	}
}

// Stop ends all subscriptions and makes the feed drop further events.
func (f *Feed) Stop() {
	f.mutex.Lock()
	subscriptions := f.subscriptions
	f.subscriptions = map[int64]*Subscription{}
	f.stopped = true
	f.mutex.Unlock()

	for _, s := range subscriptions {
		s.close()
	}
}

// Subscription is one consumer's view of the transcript feed.
type Subscription struct {
	feed   *Feed
	id     int64
	ch     chan model.TranscriptEvent
	closed sync.Once
}

func (s *Subscription) ResultChan() <-chan model.TranscriptEvent {
	return s.ch
}

func (s *Subscription) Stop() {
	s.feed.mutex.Lock()
	delete(s.feed.subscriptions, s.id)
	s.feed.mutex.Unlock()

	s.close()
}

func (s *Subscription) close() {
	s.closed.Do(func() {
		close(s.ch)
	})
}
