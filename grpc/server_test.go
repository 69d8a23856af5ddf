package grpc

import (
	"context"
	"emotion-lab/alerting"
	"emotion-lab/auth"
	"emotion-lab/domain"
	"emotion-lab/errors"
	"emotion-lab/mocks"
	"emotion-lab/projection"
	"emotion-lab/repositories"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	sdkgrpc "github.com/mama165/sdk-go/grpc"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	ggrpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type fakePipeline struct {
	received []domain.Message
	err      error
}

func (f *fakePipeline) Submit(msg domain.Message) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.Nil, f.err
	}
	f.received = append(f.received, msg)
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	return msg.ID, nil
}

func (f *fakePipeline) Mood(chatID int64) projection.Mood {
	return projection.Mood{ChatID: chatID, Messages: 4, NegativeShare: 75, Dominant: domain.EmotionAggression, Trend: projection.TrendInsufficient}
}

type harness struct {
	service  *mocks.MockIAnalyzerService
	pipeline *fakePipeline
	client   *EmotionAnalyzerClient
}

func newHarness(t *testing.T, signer *auth.Signer) harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	h := harness{service: mocks.NewMockIAnalyzerService(ctrl), pipeline: &fakePipeline{}}

	listener := bufconn.Listen(1024 * 1024)
	server := ggrpc.NewServer(ggrpc.ChainUnaryInterceptor(
		RecoveryInterceptor(log),
		sdkgrpc.UnaryLoggingInterceptor(log),
		auth.Interceptor(signer, AnalyzeFullMethodName),
	))
	RegisterEmotionAnalyzerServer(server, NewAnalyzerServer(h.service, alerting.NewPolicy(alerting.DefaultRules()), h.pipeline, log))
	go func() { _ = server.Serve(listener) }()
	t.Cleanup(server.Stop)

	conn, err := ggrpc.NewClient("passthrough:///bufnet",
		ggrpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return listener.DialContext(ctx) }),
		ggrpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	h.client = NewEmotionAnalyzerClient(conn)
	return h
}

func toxic() domain.AnalysisResult {
	return domain.AnalysisResult{
		OriginalText:     "ты дурак идиот!!!",
		DetectedLanguage: domain.LangRU,
		DominantEmotion:  domain.EmotionAggression,
		Confidence:       95,
		Categories:       domain.EmotionCategories{Aggression: 95, Stress: 40, Toxicity: 92},
		Severity:         domain.SeverityCritical,
		ModelUsed:        []string{domain.LocalModel},
	}
}

func TestAnalyze_ReturnsResultTierAndAlerts(t *testing.T) {
	req := require.New(t)
	h := newHarness(t, nil)
	ctx := context.Background()

	// Given the service scores the text as critical aggression
	h.service.EXPECT().Analyze(gomock.Any(), "ты дурак идиот!!!").Return(toxic())

	// When calling Analyze over the wire
	resp, err := h.client.Analyze(ctx, AnalyzeRequest{Text: "ты дурак идиот!!!"})

	// Then the result and its alerts come back in evaluation order
	req.NoError(err)
	req.Equal(domain.EmotionAggression, resp.Result.DominantEmotion)
	req.Equal(92.0, resp.Result.Categories.Toxicity)
	req.Equal(domain.TierCritical, resp.Tier)
	req.Len(resp.Alerts, 3)
	req.Equal(domain.AlertToxicity, resp.Alerts[0].Type)
	req.Equal(domain.AlertAggression, resp.Alerts[1].Type)
	req.Equal(domain.AlertStress, resp.Alerts[2].Type)
}

func TestAnalyze_RejectsTooLongText(t *testing.T) {
	req := require.New(t)
	h := newHarness(t, nil)

	_, err := h.client.Analyze(context.Background(), AnalyzeRequest{Text: string(make([]rune, 5000))})

	req.Equal(codes.InvalidArgument, status.Code(err))
}

func TestSubmit_QueuesMessage(t *testing.T) {
	req := require.New(t)
	h := newHarness(t, nil)
	id := uuid.New()

	resp, err := h.client.Submit(context.Background(), SubmitRequest{
		MessageID: id.String(),
		ChatID:    -100123,
		Author:    "alice",
		Content:   "привет",
		At:        time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	})

	req.NoError(err)
	req.Equal(id.String(), resp.MessageID)
	req.Len(h.pipeline.received, 1)
	req.Equal(int64(-100123), h.pipeline.received[0].ChatID)
	req.Equal("alice", h.pipeline.received[0].Author)
}

func TestSubmit_MapsErrors(t *testing.T) {
	req := require.New(t)
	h := newHarness(t, nil)
	ctx := context.Background()

	// Given a full queue
	h.pipeline.err = errors.ErrQueueFull
	_, err := h.client.Submit(ctx, SubmitRequest{ChatID: 1, Author: "bob"})
	req.Equal(codes.ResourceExhausted, status.Code(err))

	// Given a missing author
	_, err = h.client.Submit(ctx, SubmitRequest{ChatID: 1})
	req.Equal(codes.InvalidArgument, status.Code(err))

	// Given a malformed message id
	h.pipeline.err = nil
	_, err = h.client.Submit(ctx, SubmitRequest{MessageID: "not-a-uuid", ChatID: 1, Author: "bob"})
	req.Equal(codes.InvalidArgument, status.Code(err))
	req.Empty(h.pipeline.received)
}

func TestStats_DefaultsTopRisk(t *testing.T) {
	req := require.New(t)
	h := newHarness(t, nil)
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	stats := domain.NewChatStats(7).Add(toxic(), at)
	risk := domain.NewUserRiskProfile(7, "alice").Record([]domain.Alert{{Type: domain.AlertToxicity, Tier: domain.TierCritical, Score: 92}}, at)
	h.service.EXPECT().Stats(int64(7)).Return(stats, nil)
	h.service.EXPECT().TopRisks(int64(7), defaultTopRisk).Return([]domain.UserRiskProfile{risk}, nil)

	resp, err := h.client.Stats(context.Background(), StatsRequest{ChatID: 7})

	req.NoError(err)
	req.Equal(1, resp.Messages)
	req.Equal(1, resp.EmotionCounts[domain.EmotionAggression])
	req.Equal(95.0, resp.Averages.Aggression)
	req.Equal(75.0, resp.Mood.NegativeShare)
	req.Equal(projection.TrendInsufficient, resp.Mood.Trend)
	req.Len(resp.TopRisks, 1)
	req.Equal("alice", resp.TopRisks[0].UserID)
	req.Equal(1, resp.TopRisks[0].Total)
}

func TestSearch_ChoosesQueryKind(t *testing.T) {
	req := require.New(t)
	h := newHarness(t, nil)
	ctx := context.Background()
	record := repositories.AnalysisRecord{MessageID: uuid.New(), ChatID: 7, Author: "alice", Sanitized: "ты ***** *****!!!", Result: toxic(), Tier: domain.TierCritical}

	// Given a text query
	h.service.EXPECT().Search(gomock.Any(), "дурак", int64(7), 0).Return([]repositories.AnalysisRecord{record}, uint64(1), nil)
	resp, err := h.client.Search(ctx, SearchRequest{ChatID: 7, Query: "дурак"})
	req.NoError(err)
	req.Equal(uint64(1), resp.Total)
	req.Equal(record.MessageID, resp.Results[0].MessageID)
	req.Equal(92.0, resp.Results[0].Toxicity)

	// Given a toxicity range
	h.service.EXPECT().Toxic(gomock.Any(), 50.0, 100.0, int64(7)).Return(nil, uint64(0), nil)
	resp, err = h.client.Search(ctx, SearchRequest{ChatID: 7, MinToxicity: 50, MaxToxicity: 100})
	req.NoError(err)
	req.Zero(resp.Total)
}

func TestAuth_ProtectsEverythingButAnalyze(t *testing.T) {
	req := require.New(t)
	signer := auth.NewSigner("a_long_enough_test_secret")
	h := newHarness(t, signer)
	ctx := context.Background()

	h.service.EXPECT().Analyze(gomock.Any(), "hi").Return(domain.NeutralResult("hi"))
	_, err := h.client.Analyze(ctx, AnalyzeRequest{Text: "hi"})
	req.NoError(err)

	_, err = h.client.Submit(ctx, SubmitRequest{ChatID: 1, Author: "bob"})
	req.Equal(codes.Unauthenticated, status.Code(err))

	token, err := signer.GenerateToken("bot", nil, time.Hour)
	req.NoError(err)
	authed := metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
	_, err = h.client.Submit(authed, SubmitRequest{ChatID: 1, Author: "bob"})
	req.NoError(err)
}
