package huggingface

import (
	"context"
	"emotion-lab/errors"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.Client(), server.URL, "test/emotion", "secret", logs.GetLoggerFromLevel(slog.LevelDebug))
}

func TestClient_Classify(t *testing.T) {
	req := require.New(t)

	// Given a model answering with nested label scores
	var gotPath, gotAuth string
	var gotBody requestBody
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		_, _ = w.Write([]byte(`[[{"label":"anger","score":0.9},{"label":"disgust","score":0.95},{"label":"joy","score":0.1},{"label":"surprise","score":0.05}]]`))
	})

	// When classifying
	result, err := client.Classify(context.Background(), "ты дурак")

	// Then the request follows the inference API
	req.NoError(err)
	req.Equal("/models/test/emotion", gotPath)
	req.Equal("Bearer secret", gotAuth)
	req.Equal("ты дурак", gotBody.Inputs)
	req.True(gotBody.Options.WaitForModel)

	// And the scores are rescaled and grouped per category
	req.Equal("test/emotion", result.Model)
	req.Equal("disgust", result.Emotion)
	req.InDelta(95, result.Confidence, 1e-9)
	req.NotNil(result.Categories.Aggression)
	req.InDelta(95, *result.Categories.Aggression, 1e-9)
	req.InDelta(10, *result.Categories.Positivity, 1e-9)
	req.Nil(result.Categories.Stress)
	req.Nil(result.Categories.Toxicity)
}

func TestClient_ClassifyFlatBody(t *testing.T) {
	req := require.New(t)
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"label":"fear","score":0.7}]`))
	})

	result, err := client.Classify(context.Background(), "всё горит")
	req.NoError(err)
	req.Equal("fear", result.Emotion)
	req.InDelta(70, *result.Categories.Stress, 1e-9)
}

func TestClient_ClassifyFailures(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected error
	}{
		{name: "Server error", status: http.StatusServiceUnavailable, body: `{"error":"loading"}`, expected: errors.ErrRemoteStatus},
		{name: "Error body", status: http.StatusOK, body: `{"error":"Model is loading"}`, expected: errors.ErrRemoteMalformed},
		{name: "Not JSON", status: http.StatusOK, body: `<html>`, expected: errors.ErrRemoteMalformed},
		{name: "Empty list", status: http.StatusOK, body: `[]`, expected: errors.ErrRemoteMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			_, err := client.Classify(context.Background(), "text")
			req.ErrorIs(err, tt.expected)
		})
	}
}

func TestClient_ClassifyHonorsDeadline(t *testing.T) {
	req := require.New(t)
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	start := time.Now()
	_, err := client.Classify(ctx, "text")

	req.ErrorIs(err, errors.ErrRemoteUnavailable)
	req.Less(time.Since(start), 2*time.Second)
}

func TestNew_Defaults(t *testing.T) {
	req := require.New(t)
	client := New(nil, " ", "", "", logs.GetLoggerFromLevel(slog.LevelDebug))
	req.Equal(DefaultBaseURL, client.baseURL)
	req.Equal(DefaultModel, client.Name())
	req.NotNil(client.http)
	req.True(lo.IsEmpty(client.apiKey))
}
