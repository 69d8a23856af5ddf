package grpc

import (
	"context"
	"emotion-lab/alerting"
	"emotion-lab/codec"
	"emotion-lab/domain"
	"emotion-lab/errors"
	"emotion-lab/language"
	"emotion-lab/projection"
	"emotion-lab/repositories"
	"emotion-lab/services"
	stderrors "errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const defaultTopRisk = 5

// Pipeline queues messages for asynchronous analysis and follows the chat moods.
type Pipeline interface {
	Submit(msg domain.Message) (uuid.UUID, error)
	Mood(chatID int64) projection.Mood
}

// AnalyzerServer exposes the analyzer service over gRPC.
type AnalyzerServer struct {
	service  services.IAnalyzerService
	policy   *alerting.Policy
	pipeline Pipeline
	validate *validator.Validate
	log      *slog.Logger
}

var _ EmotionAnalyzerServer = (*AnalyzerServer)(nil)

func NewAnalyzerServer(service services.IAnalyzerService, policy *alerting.Policy, pipeline Pipeline, log *slog.Logger) *AnalyzerServer {
	return &AnalyzerServer{
		service:  service,
		policy:   policy,
		pipeline: pipeline,
		validate: validator.New(),
		log:      log,
	}
}

// Analyze scores a text synchronously. Nothing is stored.
func (s *AnalyzerServer) Analyze(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var request AnalyzeRequest
	if err := s.decode(in, &request); err != nil {
		return nil, err
	}
	result := s.service.Analyze(ctx, request.Text)
	lang, confidence := language.Guess(request.Text)
	return encode(AnalyzeResponse{
		Result:             result,
		Tier:               s.policy.Tier(result),
		Alerts:             toAlertViews(s.policy.Evaluate(result)),
		Language:           lang,
		LanguageConfidence: confidence,
	})
}

// Submit queues a chat message and returns its id without waiting for the analysis.
func (s *AnalyzerServer) Submit(_ context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var request SubmitRequest
	if err := s.decode(in, &request); err != nil {
		return nil, err
	}
	id := uuid.Nil
	if request.MessageID != "" {
		parsed, err := uuid.Parse(request.MessageID)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid message_id: %v", err)
		}
		id = parsed
	}
	id, err := s.pipeline.Submit(domain.Message{
		ID:      id,
		ChatID:  request.ChatID,
		Author:  request.Author,
		Content: request.Content,
		At:      request.At,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	s.log.Debug("Message queued", "message_id", id, "chat_id", request.ChatID)
	return encode(SubmitResponse{MessageID: id.String()})
}

// Stats returns the chat aggregate and its riskiest users.
func (s *AnalyzerServer) Stats(_ context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var request StatsRequest
	if err := s.decode(in, &request); err != nil {
		return nil, err
	}
	stats, err := s.service.Stats(request.ChatID)
	if err != nil {
		return nil, toStatus(err)
	}
	top := request.TopRisk
	if top == 0 {
		top = defaultTopRisk
	}
	risks, err := s.service.TopRisks(request.ChatID, top)
	if err != nil {
		return nil, toStatus(err)
	}
	return encode(StatsResponse{
		ChatID:        request.ChatID,
		Messages:      stats.Messages,
		EmotionCounts: stats.EmotionCounts,
		Averages:      stats.Averages(),
		LastMessageAt: stats.LastMessageAt,
		Mood:          s.pipeline.Mood(request.ChatID),
		TopRisks:      lo.Map(risks, func(p domain.UserRiskProfile, _ int) RiskView { return toRiskView(p) }),
	})
}

// Search runs a full-text query over the sanitized messages of a chat,
// or a toxicity range query when max_toxicity is set.
func (s *AnalyzerServer) Search(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var request SearchRequest
	if err := s.decode(in, &request); err != nil {
		return nil, err
	}
	var (
		records []repositories.AnalysisRecord
		total   uint64
		err     error
	)
	if request.MaxToxicity > 0 {
		records, total, err = s.service.Toxic(ctx, request.MinToxicity, request.MaxToxicity, request.ChatID)
	} else {
		records, total, err = s.service.Search(ctx, request.Query, request.ChatID, request.Offset)
	}
	if err != nil {
		return nil, toStatus(err)
	}
	return encode(SearchResponse{
		Total:   total,
		Results: lo.Map(records, func(r repositories.AnalysisRecord, _ int) RecordView { return toRecordView(r) }),
	})
}

func (s *AnalyzerServer) decode(in *structpb.Struct, v any) error {
	if err := codec.FromStruct(in, v); err != nil {
		return status.Errorf(codes.InvalidArgument, "malformed request: %v", err)
	}
	if err := s.validate.Struct(v); err != nil {
		return status.Errorf(codes.InvalidArgument, "invalid request: %v", err)
	}
	return nil
}

func encode(v any) (*structpb.Struct, error) {
	out, err := codec.ToStruct(v)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode response: %v", err)
	}
	return out, nil
}

func toStatus(err error) error {
	switch {
	case stderrors.Is(err, errors.ErrQueueFull):
		return status.Error(codes.ResourceExhausted, err.Error())
	case stderrors.Is(err, errors.ErrInvalidRequest):
		return status.Error(codes.InvalidArgument, err.Error())
	case stderrors.Is(err, errors.ErrAnalysisNotFound):
		return status.Error(codes.NotFound, err.Error())
	case stderrors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case stderrors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
