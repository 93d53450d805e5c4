package classifier

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyParsesPrediction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/classify", r.URL.Path)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "payload.png", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"detected_class": "js", "confidence": 81.3299}`)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, 5*time.Second)
	prediction, err := client.Classify(context.Background(), "payload.png", []byte("not-really-a-png"))

	require.NoError(t, err)
	assert.Equal(t, "js", prediction.PredictedClass)
	assert.Equal(t, 81.33, prediction.Confidence)
}

func TestClassifyUnknownLabel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"detected_class": "ransomware", "confidence": 99.9}`)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, 5*time.Second)
	_, err := client.Classify(context.Background(), "payload.png", []byte("data"))

	assert.ErrorIs(t, err, ErrUnknownLabel)
}

func TestClassifyMalformedResponse(t *testing.T) {
	cases := map[string]string{
		"not json":          `<html>oops</html>`,
		"missing class":     `{"confidence": 50}`,
		"missing confidence": `{"detected_class": "clean"}`,
		"confidence range":  `{"detected_class": "clean", "confidence": 250}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, body)
			}))
			defer server.Close()

			client := NewHTTPClient(server.URL, 5*time.Second)
			_, err := client.Classify(context.Background(), "payload.png", []byte("data"))

			assert.ErrorIs(t, err, ErrBadResponse)
		})
	}
}

func TestClassifyServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, 5*time.Second)
	_, err := client.Classify(context.Background(), "payload.png", []byte("data"))

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClassifyTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := NewHTTPClient(server.URL, 50*time.Millisecond)
	_, err := client.Classify(context.Background(), "payload.png", []byte("data"))

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClassifyCancellation(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	client := NewHTTPClient(server.URL, 5*time.Second)
	_, err := client.Classify(ctx, "payload.png", []byte("data"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable) || errors.Is(err, context.Canceled))
}
