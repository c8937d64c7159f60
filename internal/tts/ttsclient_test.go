package tts

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFetchSpeech(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		require.Equal(t, "tw-ob", req.URL.Query().Get("client"))
		require.Equal(t, "It is four o'clock.", req.URL.Query().Get("q"))
		require.Equal(t, "en-US", req.URL.Query().Get("tl"))
		require.Contains(t, req.Header.Get("User-Agent"), "Mozilla")

		_, _ = w.Write([]byte("fake mp3 data"))
	}))
	defer srv.Close()

	testee := &Client{URL: srv.URL, Client: srv.Client()}

	audio, err := testee.FetchSpeech(context.Background(), "It is four o'clock.")
	require.NoError(t, err)
	defer audio.Close()

	b, err := io.ReadAll(audio)
	require.NoError(t, err)
	require.Equal(t, "fake mp3 data", string(b))
}

func TestFetchSpeechServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	testee := &Client{URL: srv.URL, Client: srv.Client()}

	_, err := testee.FetchSpeech(context.Background(), "hello")
	require.Error(t, err)
	require.Contains(t, err.Error(), "403")
}
