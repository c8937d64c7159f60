// Package server exposes the intercom as a small HTTP API: utterances
// are posted as text and the resulting conversation transcript is
// streamed back over a WebSocket or a chunked HTTP response.
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/bryanq/doorman/internal/dispatch"
	"github.com/bryanq/doorman/internal/model"
	"github.com/bryanq/doorman/internal/pubsub"
	"github.com/coder/websocket"
)

const maxUtteranceBytes = 4096

// Intercom handles utterance submission and transcript streaming.
type Intercom struct {
	Dispatcher *dispatch.Dispatcher
	Feed       *pubsub.Feed
}

func (i *Intercom) AddRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /utterances", i.handleUtterance)
	mux.HandleFunc("GET /transcript", i.handleTranscript)
}

func (i *Intercom) handleUtterance(w http.ResponseWriter, req *http.Request) {
	defer req.Body.Close()

	b, err := io.ReadAll(io.LimitReader(req.Body, maxUtteranceBytes))
	if err != nil {
		err = fmt.Errorf("read utterance from request body: %w", err)
		log.Println("WARNING:", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	utterance := strings.TrimSpace(string(b))
	if utterance == "" {
		http.Error(w, "empty utterance provided", http.StatusBadRequest)
		return
	}

	i.Feed.Publish(model.TranscriptEvent{Role: model.RoleVisitor, Text: utterance})

	matched, err := i.Dispatcher.Handle(utterance)
	if err != nil {
		log.Println("ERROR: handle utterance:", err)
		http.Error(w, "command failed", http.StatusInternalServerError)
		return
	}

	if !matched {
		// An unrecognized utterance is a silent no-op on the intercom.
		// The HTTP client still gets told.
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (i *Intercom) handleTranscript(w http.ResponseWriter, req *http.Request) {
	if strings.Contains(req.Header.Get("Connection"), "Upgrade") {
		i.streamTranscriptWebsocket(w, req)
		return
	}

	i.streamTranscriptHTTP(w, req)
}

func (i *Intercom) streamTranscriptWebsocket(w http.ResponseWriter, req *http.Request) {
	log.Println("Accepting websocket connection")

	conn, err := websocket.Accept(w, req, nil)
	if err != nil {
		err = fmt.Errorf("accept websocket connection: %w", err)
		log.Println("WARNING:", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer conn.CloseNow()

	s := i.Feed.Subscribe(req.Context())
	defer s.Stop()

	for evt := range s.ResultChan() {
		b, err := json.Marshal(evt)
		if err != nil {
			log.Println("ERROR: marshal transcript event:", err)
			return
		}

		err = conn.Write(req.Context(), websocket.MessageText, b)
		if err != nil {
			log.Println("WARNING: write transcript to websocket:", err)
			return
		}
	}

	conn.Close(websocket.StatusNormalClosure, "transcript ended")
}

func (i *Intercom) streamTranscriptHTTP(w http.ResponseWriter, req *http.Request) {
	h := w.Header()
	h.Set("Content-Type", "text/plain; charset=utf-8")
	h.Set("Transfer-Encoding", "chunked")
	h.Set("X-Accel-Buffering", "no") // tell reverse proxy not to buffer
	h.Set("Cache-Control", "no-cache, no-store, must-revalidate")

	w.WriteHeader(http.StatusOK)

	flusher, _ := w.(http.Flusher)

	s := i.Feed.Subscribe(req.Context())
	defer s.Stop()

	for evt := range s.ResultChan() {
		_, err := fmt.Fprintf(w, "%s: %s\n", evt.Role, evt.Text)
		if err != nil {
			log.Println("WARNING: write transcript line:", err)
			return
		}

		if flusher != nil {
			flusher.Flush()
		}
	}
}
