// Package analyzer is the entry point of the scoring pipeline: it chains the
// language detector, the normalizer, the feature extractor and the scoring
// engine, then optionally merges a remote classifier result.
package analyzer

import (
	"context"
	"emotion-lab/contract"
	"emotion-lab/domain"
	"emotion-lab/errors"
	"emotion-lab/features"
	"emotion-lab/language"
	"emotion-lab/lexicon"
	"emotion-lab/normalize"
	"emotion-lab/scoring"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const DefaultRemoteTimeout = 3 * time.Second

type Config struct {
	Mode          domain.Mode
	RemoteTimeout time.Duration
	Weights       features.Weights
	Thresholds    scoring.Thresholds
}

func DefaultConfig() Config {
	return Config{
		Mode:          domain.ModeLocalOnly,
		RemoteTimeout: DefaultRemoteTimeout,
		Weights:       features.DefaultWeights(),
		Thresholds:    scoring.DefaultThresholds(),
	}
}

// Analyzer holds no mutable state; one instance serves concurrent callers.
type Analyzer struct {
	normalizer *normalize.Normalizer
	extractor  *features.Extractor
	engine     *scoring.Engine
	validate   *validator.Validate
	classifier contract.Classifier
	mode       domain.Mode
	timeout    time.Duration
	log        *slog.Logger
}

// New builds an analyzer. The classifier is only required in ModeLocalPlusRemote.
func New(store *lexicon.Store, classifier contract.Classifier, cfg Config, log *slog.Logger) (*Analyzer, error) {
	switch cfg.Mode {
	case domain.ModeLocalOnly:
	case domain.ModeLocalPlusRemote:
		if classifier == nil {
			return nil, fmt.Errorf("%w: %s requires a classifier", errors.ErrInvalidMode, cfg.Mode)
		}
	default:
		return nil, fmt.Errorf("%w: %s", errors.ErrInvalidMode, cfg.Mode)
	}
	extractor, err := features.NewExtractor(store, cfg.Weights)
	if err != nil {
		return nil, err
	}
	timeout := cfg.RemoteTimeout
	if timeout <= 0 {
		timeout = DefaultRemoteTimeout
	}
	return &Analyzer{
		normalizer: normalize.New(store),
		extractor:  extractor,
		engine:     scoring.NewEngine(cfg.Thresholds),
		validate:   validator.New(),
		classifier: classifier,
		mode:       cfg.Mode,
		timeout:    timeout,
		log:        log,
	}, nil
}

func (a *Analyzer) Mode() domain.Mode {
	return a.mode
}

// Analyze scores text locally and merges remote when it is present and well formed.
// It never fails: empty or whitespace-only text yields the neutral result.
func (a *Analyzer) Analyze(text string, remote *domain.RemoteResult) domain.AnalysisResult {
	if strings.TrimSpace(text) == "" {
		return domain.NeutralResult(text)
	}
	result := a.local(text)
	if remote == nil {
		return result
	}
	merged, _ := a.merge(result, *remote)
	return merged
}

// AnalyzeContext scores text and, in ModeLocalPlusRemote, asks the classifier
// for a second opinion on the normalized text. Any remote failure leaves the
// local result untouched.
func (a *Analyzer) AnalyzeContext(ctx context.Context, text string) domain.AnalysisResult {
	if strings.TrimSpace(text) == "" {
		return domain.NeutralResult(text)
	}
	result := a.local(text)
	if a.mode != domain.ModeLocalPlusRemote {
		return result
	}

	remote, err := a.classify(ctx, result.NormalizedText)
	if err != nil {
		a.log.Info("Remote classifier failed, keeping local scores",
			"model", a.classifier.Name(), "error", err)
		return result
	}
	merged, applied := a.merge(result, remote)
	if !applied {
		a.log.Info("Remote result ignored", "model", a.classifier.Name(), "emotion", remote.Emotion)
	}
	return merged
}

func (a *Analyzer) local(text string) domain.AnalysisResult {
	lang := language.Detect(text)
	norm := a.normalizer.Normalize(text)
	f := a.extractor.Extract(text, norm.Text, lang)
	verdict := a.engine.Finalize(a.engine.Aggregate(f.Total()))

	return domain.AnalysisResult{
		OriginalText:     text,
		NormalizedText:   norm.Text,
		CorrectedText:    norm.Corrected,
		DetectedLanguage: lang,
		SlangDetected:    norm.SlangDetected,
		ErrorsFixed:      norm.ErrorsFixed,
		DominantEmotion:  verdict.Dominant,
		Confidence:       verdict.Confidence,
		Categories:       verdict.Categories,
		Severity:         verdict.Severity,
		ModelUsed:        []string{domain.LocalModel},
	}
}

// merge takes the per-category maximum of local and remote scores. Without
// categories, the remote label lifts its own category to the remote confidence.
// Toxicity is always derived again. The bool reports whether remote was used.
func (a *Analyzer) merge(result domain.AnalysisResult, remote domain.RemoteResult) (domain.AnalysisResult, bool) {
	if err := a.validate.Struct(remote); err != nil {
		return result, false
	}

	c := result.Categories
	if !remote.Categories.IsEmpty() {
		c.Aggression = maxOf(c.Aggression, remote.Categories.Aggression)
		c.Stress = maxOf(c.Stress, remote.Categories.Stress)
		c.Sarcasm = maxOf(c.Sarcasm, remote.Categories.Sarcasm)
		c.Positivity = maxOf(c.Positivity, remote.Categories.Positivity)
	} else {
		emotion := LabelEmotion(remote.Emotion)
		if emotion == domain.EmotionNeutral {
			return result, false
		}
		c = c.With(emotion, max(c.Score(emotion), remote.Confidence))
	}

	verdict := a.engine.Finalize(c)
	result.Categories = verdict.Categories
	result.DominantEmotion = verdict.Dominant
	result.Confidence = verdict.Confidence
	result.Severity = verdict.Severity

	model := remote.Model
	if model == "" {
		model = "remote"
	}
	result.ModelUsed = []string{domain.LocalModel, model}
	return result, true
}

// classify bounds the remote call with the analyzer timeout, even when the
// classifier ignores its context, and turns a panic into an error.
func (a *Analyzer) classify(ctx context.Context, text string) (domain.RemoteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	type outcome struct {
		result domain.RemoteResult
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("%w: classifier panicked: %v", errors.ErrRemoteUnavailable, r)}
			}
		}()
		res, err := a.classifier.Classify(ctx, text)
		done <- outcome{result: res, err: err}
	}()

	select {
	case <-ctx.Done():
		return domain.RemoteResult{}, fmt.Errorf("%w: %w", errors.ErrRemoteUnavailable, ctx.Err())
	case o := <-done:
		return o.result, o.err
	}
}

func maxOf(local float64, remote *float64) float64 {
	if remote == nil {
		return local
	}
	return max(local, *remote)
}
