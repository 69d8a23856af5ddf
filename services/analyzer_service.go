//go:generate go run go.uber.org/mock/mockgen -source=analyzer_service.go -destination=../mocks/mock_analyzer_service.go -package=mocks
package services

import (
	"context"
	"emotion-lab/alerting"
	"emotion-lab/contract"
	"emotion-lab/domain"
	"emotion-lab/errors"
	"emotion-lab/observability"
	"emotion-lab/repositories"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AnalyzeRequest is one chat message handed over for analysis.
// Content may be empty: it then scores as neutral. Telegram caps messages at 4096 runes.
type AnalyzeRequest struct {
	MessageID uuid.UUID
	ChatID    int64     `validate:"required"`
	Author    string    `validate:"required,max=128"`
	Content   string    `validate:"max=4096"`
	At        time.Time `validate:"required"`
}

// Outcome is everything produced for one processed message.
type Outcome struct {
	Record repositories.AnalysisRecord
	Stats  domain.ChatStats
	Risk   domain.UserRiskProfile
}

type IAnalyzerService interface {
	Analyze(ctx context.Context, text string) domain.AnalysisResult
	Process(ctx context.Context, request AnalyzeRequest) (Outcome, error)
	History(chatID int64, cursor *string) ([]repositories.AnalysisRecord, *string, error)
	Search(ctx context.Context, query string, chatID int64, offset int) ([]repositories.AnalysisRecord, uint64, error)
	Toxic(ctx context.Context, low, high float64, chatID int64) ([]repositories.AnalysisRecord, uint64, error)
	Stats(chatID int64) (domain.ChatStats, error)
	TopRisks(chatID int64, n int) ([]domain.UserRiskProfile, error)
	Flush() error
}

type AnalyzerService struct {
	analyzer   contract.IAnalyzer
	censor     contract.Censor
	policy     *alerting.Policy
	analyses   repositories.IAnalysisRepository
	stats      repositories.IChatStatsRepository
	risks      repositories.IRiskRepository
	monitoring *observability.MonitoringManager
	validate   *validator.Validate
	log        *slog.Logger
}

func NewAnalyzerService(
	analyzer contract.IAnalyzer,
	censor contract.Censor,
	policy *alerting.Policy,
	analyses repositories.IAnalysisRepository,
	stats repositories.IChatStatsRepository,
	risks repositories.IRiskRepository,
	monitoring *observability.MonitoringManager,
	log *slog.Logger) *AnalyzerService {
	return &AnalyzerService{
		analyzer:   analyzer,
		censor:     censor,
		policy:     policy,
		analyses:   analyses,
		stats:      stats,
		risks:      risks,
		monitoring: monitoring,
		validate:   validator.New(),
		log:        log,
	}
}

// Analyze scores a text without storing anything.
func (s *AnalyzerService) Analyze(ctx context.Context, text string) domain.AnalysisResult {
	return s.analyzer.AnalyzeContext(ctx, text)
}

// Process scores a message, stores the censored copy with its result,
// folds it into the chat statistics and records the alerts against the author.
func (s *AnalyzerService) Process(ctx context.Context, request AnalyzeRequest) (Outcome, error) {
	if err := s.validate.Struct(request); err != nil {
		return Outcome{}, fmt.Errorf("%w: %w", errors.ErrInvalidRequest, err)
	}
	if request.MessageID == uuid.Nil {
		request.MessageID = uuid.New()
	}

	result := s.analyzer.AnalyzeContext(ctx, request.Content)
	sanitized, censored := s.censor.Censor(request.Content)
	alerts := s.policy.Evaluate(result)

	record := repositories.AnalysisRecord{
		ID:            uuid.New(),
		MessageID:     request.MessageID,
		ChatID:        request.ChatID,
		Author:        request.Author,
		At:            request.At.UTC(),
		Sanitized:     sanitized,
		CensoredWords: censored,
		Tier:          s.policy.Tier(result),
		Alerts:        alerts,
		Result:        result,
	}
	if err := s.analyses.Store(record); err != nil {
		if stderrors.Is(err, errors.ErrDuplicateAnalysis) {
			s.log.Info("Duplicate message skipped", "chat_id", request.ChatID, "message_id", request.MessageID)
			return Outcome{}, err
		}
		s.monitoring.IncrErrorCount()
		return Outcome{}, fmt.Errorf("failed to store analysis: %w", err)
	}

	stats, err := s.stats.Apply(request.ChatID, result, record.At)
	if err != nil {
		s.monitoring.IncrErrorCount()
		return Outcome{}, fmt.Errorf("failed to update chat stats: %w", err)
	}

	risk, err := s.risks.Record(request.ChatID, request.Author, alerts, record.At)
	if err != nil {
		s.monitoring.IncrErrorCount()
		return Outcome{}, fmt.Errorf("failed to update risk profile: %w", err)
	}

	s.monitoring.IncrAnalyzed()
	s.monitoring.AddAlerts(request.ChatID, request.Author, alerts)
	for _, alert := range alerts {
		s.log.Warn("Alert raised",
			"chat_id", request.ChatID,
			"author", request.Author,
			"type", alert.Type,
			"tier", alert.Tier,
			"score", alert.Score)
	}
	return Outcome{Record: record, Stats: stats, Risk: risk}, nil
}

func (s *AnalyzerService) History(chatID int64, cursor *string) ([]repositories.AnalysisRecord, *string, error) {
	return s.analyses.ScanByChat(chatID, cursor)
}

func (s *AnalyzerService) Search(ctx context.Context, query string, chatID int64, offset int) ([]repositories.AnalysisRecord, uint64, error) {
	return s.analyses.SearchPaginated(ctx, query, chatID, offset)
}

func (s *AnalyzerService) Toxic(ctx context.Context, low, high float64, chatID int64) ([]repositories.AnalysisRecord, uint64, error) {
	if low > high {
		low, high = high, low
	}
	return s.analyses.SearchByToxicity(ctx, low, high, chatID)
}

func (s *AnalyzerService) Stats(chatID int64) (domain.ChatStats, error) {
	return s.stats.Get(chatID)
}

func (s *AnalyzerService) TopRisks(chatID int64, n int) ([]domain.UserRiskProfile, error) {
	return s.risks.TopByChat(chatID, n)
}

// Flush makes every stored analysis searchable.
func (s *AnalyzerService) Flush() error {
	return s.analyses.Flush()
}
