package huggingface

import (
	"bytes"
	"context"
	"emotion-lab/analyzer"
	"emotion-lab/contract"
	"emotion-lab/domain"
	"emotion-lab/errors"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

const (
	DefaultBaseURL = "https://api-inference.huggingface.co"
	DefaultModel   = "Osiris/emotion_classifier"
	maxBodyBytes   = 1 << 20
)

var _ contract.Classifier = (*Client)(nil)

// Client calls the Hugging Face inference API of a text-classification model.
// It never retries: the caller bounds every call with a deadline.
type Client struct {
	http    *http.Client
	baseURL string
	model   string
	apiKey  string
	log     *slog.Logger
}

func New(httpClient *http.Client, baseURL, model, apiKey string, log *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	baseURL = strings.TrimSpace(strings.TrimRight(baseURL, "/"))
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model = strings.Trim(strings.TrimSpace(model), "/")
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		http:    httpClient,
		baseURL: baseURL,
		model:   model,
		apiKey:  strings.TrimSpace(apiKey),
		log:     log,
	}
}

func (c *Client) Name() string { return c.model }

type requestBody struct {
	Inputs  string         `json:"inputs"`
	Options requestOptions `json:"options"`
}

type requestOptions struct {
	WaitForModel bool `json:"wait_for_model"`
	UseCache     bool `json:"use_cache"`
}

type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classify posts the text and converts the label scores (0-1) into a
// RemoteResult on the 0-100 scale.
func (c *Client) Classify(ctx context.Context, text string) (domain.RemoteResult, error) {
	payload, err := json.Marshal(requestBody{
		Inputs:  text,
		Options: requestOptions{WaitForModel: true, UseCache: false},
	})
	if err != nil {
		return domain.RemoteResult{}, fmt.Errorf("marshal inference payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/models/"+c.model, bytes.NewReader(payload))
	if err != nil {
		return domain.RemoteResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.RemoteResult{}, fmt.Errorf("%w: %w", errors.ErrRemoteUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return domain.RemoteResult{}, fmt.Errorf("%w: %w", errors.ErrRemoteUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Debug("Inference API error", "status", resp.StatusCode, "body", truncate(string(raw), 200))
		return domain.RemoteResult{}, fmt.Errorf("%w: %d", errors.ErrRemoteStatus, resp.StatusCode)
	}

	scores, err := decodeScores(raw)
	if err != nil {
		return domain.RemoteResult{}, err
	}
	return toRemoteResult(c.model, scores), nil
}

// decodeScores accepts both shapes returned by the API for a single input:
// [{label,score}...] and [[{label,score}...]].
func decodeScores(raw []byte) ([]labelScore, error) {
	var apiErr struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error != "" {
		return nil, fmt.Errorf("%w: %s", errors.ErrRemoteMalformed, apiErr.Error)
	}

	var nested [][]labelScore
	if err := json.Unmarshal(raw, &nested); err == nil && len(nested) > 0 && len(nested[0]) > 0 {
		return nested[0], nil
	}
	var flat []labelScore
	if err := json.Unmarshal(raw, &flat); err == nil && len(flat) > 0 {
		return flat, nil
	}
	return nil, fmt.Errorf("%w: %s", errors.ErrRemoteMalformed, truncate(string(raw), 80))
}

func toRemoteResult(model string, scores []labelScore) domain.RemoteResult {
	result := domain.RemoteResult{Model: model}
	best := -1.0
	for _, s := range scores {
		score := s.Score * 100
		if score > best {
			best = score
			result.Emotion = strings.ToLower(s.Label)
			result.Confidence = score
		}
		var slot **float64
		switch analyzer.LabelEmotion(s.Label) {
		case domain.EmotionAggression:
			slot = &result.Categories.Aggression
		case domain.EmotionStress:
			slot = &result.Categories.Stress
		case domain.EmotionSarcasm:
			slot = &result.Categories.Sarcasm
		case domain.EmotionPositivity:
			slot = &result.Categories.Positivity
		default:
			continue
		}
		if *slot == nil || **slot < score {
			v := score
			*slot = &v
		}
	}
	return result
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
