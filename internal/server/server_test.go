package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bryanq/doorman/internal/dispatch"
	"github.com/bryanq/doorman/internal/model"
	"github.com/bryanq/doorman/internal/pubsub"
	"github.com/stretchr/testify/require"
)

func newTestMux(t *testing.T, feed *pubsub.Feed) (*http.ServeMux, *[]string) {
	t.Helper()

	handled := []string{}
	d := &dispatch.Dispatcher{}
	d.AddKeyword(dispatch.HandlerFunc(func(utterance string) error {
		handled = append(handled, utterance)
		return nil
	}), "knock knock")

	mux := http.NewServeMux()
	intercom := &Intercom{Dispatcher: d, Feed: feed}
	intercom.AddRoutes(mux)

	return mux, &handled
}

func TestHandleUtterance(t *testing.T) {
	for _, tc := range []struct {
		name           string
		body           string
		expectedStatus int
		expectHandled  bool
	}{
		{
			name:           "matched utterance",
			body:           "knock knock, it's me",
			expectedStatus: http.StatusAccepted,
			expectHandled:  true,
		},
		{
			name:           "unmatched utterance is a silent no-op",
			body:           "is anybody home",
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "empty utterance",
			body:           "  \n",
			expectedStatus: http.StatusBadRequest,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			feed := pubsub.NewFeed()
			defer feed.Stop()

			mux, handled := newTestMux(t, feed)

			req := httptest.NewRequest(http.MethodPost, "/utterances", strings.NewReader(tc.body))
			resp := httptest.NewRecorder()

			mux.ServeHTTP(resp, req)

			require.Equal(t, tc.expectedStatus, resp.Code)

			if tc.expectHandled {
				require.Equal(t, []string{strings.TrimSpace(tc.body)}, *handled)
			} else {
				require.Empty(t, *handled)
			}
		})
	}
}

func TestHandleUtterancePublishesTranscript(t *testing.T) {
	feed := pubsub.NewFeed()
	defer feed.Stop()

	mux, _ := newTestMux(t, feed)

	s := feed.Subscribe(context.Background())
	defer s.Stop()

	req := httptest.NewRequest(http.MethodPost, "/utterances", strings.NewReader("knock knock"))
	mux.ServeHTTP(httptest.NewRecorder(), req)

	evt := <-s.ResultChan()
	require.Equal(t, model.RoleVisitor, evt.Role)
	require.Equal(t, "knock knock", evt.Text)
}
