package main

import (
	"context"
	"emotion-lab/alerting"
	"emotion-lab/analyzer"
	"emotion-lab/auth"
	"emotion-lab/contract"
	"emotion-lab/domain"
	emotiongrpc "emotion-lab/grpc"
	"emotion-lab/infrastructure/huggingface"
	"emotion-lab/internal"
	"emotion-lab/lexicon"
	"emotion-lab/moderation"
	"emotion-lab/observability"
	"emotion-lab/repositories"
	"emotion-lab/runtime"
	"emotion-lab/runtime/workers"
	"emotion-lab/services"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	sdkgrpc "github.com/mama165/sdk-go/grpc"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Exit codes reported to the service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "analyzerd terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run keeps every defer (database close, index flush) on the exit path.
func run() (int, error) {
	// 1. Configuration & Logger
	config, err := internal.Load()
	if err != nil {
		return exitConfig, err
	}
	mode, err := config.Mode()
	if err != nil {
		return exitConfig, err
	}
	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()

	// 2. Storage
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	if config.DebugPort > 0 {
		endpoint := "/inspect"
		logger.Info("Debug Badger inspector available", "url", fmt.Sprintf("http://localhost:%d%s", config.DebugPort, endpoint))
		database.StartDebugServer(db, config.DebugPort, endpoint, AnalysisMapper)
	}

	analyses := repositories.NewAnalysisRepository(db, blugeWriter, logger, config.LimitAnalyses, config.SearchPageSize)
	stats := repositories.NewChatStatsRepository(db, logger)
	risks := repositories.NewRiskRepository(db, logger)
	blacklist := repositories.NewBlacklistRepository(db)

	// 3. Scoring
	store := lexicon.Default()
	extra, err := blacklist.List()
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to load blacklist: %w", err)
	}
	moderator, err := moderation.NewFromLexicon(store, extra, charReplacement, logger)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to build moderator: %w", err)
	}

	var classifier contract.Classifier
	if mode == domain.ModeLocalPlusRemote {
		classifier = huggingface.New(&http.Client{}, config.HuggingFaceBaseURL, config.HuggingFaceModel, config.HuggingFaceAPIKey, logger)
	}
	analyzerConfig := analyzer.DefaultConfig()
	analyzerConfig.Mode = mode
	analyzerConfig.RemoteTimeout = config.RemoteTimeout
	emotionAnalyzer, err := analyzer.New(store, classifier, analyzerConfig, logger)
	if err != nil {
		return exitConfig, err
	}
	logger.Info("Analyzer ready", "mode", mode.String(), "lexicon_entries", len(store.Entries()), "blacklist", len(extra))

	// 4. Supervision & Orchestration
	monitoring := observability.NewMonitoringManager(logger)
	policy := alerting.NewPolicy(alerting.DefaultRules())
	analyzerService := services.NewAnalyzerService(emotionAnalyzer, moderator, policy, analyses, stats, risks, monitoring, logger)
	sup := workers.NewSupervisor(logger).WithRestartDelay(config.RestartInterval)
	orchestrator := runtime.NewOrchestrator(logger, sup, analyzerService, monitoring, runtime.Config{
		NumWorkers:        config.NumberOfWorkers,
		BufferSize:        config.BufferSize,
		FlushInterval:     config.FlushInterval,
		HeartbeatInterval: config.HeartbeatInterval,
		MetricInterval:    config.MetricInterval,
		LatencyThreshold:  config.LatencyThreshold,
		NodeName:          config.NodeName,
		MoodWindow:        config.MoodWindow,
	})

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 2)
	done := make(chan struct{})
	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()
	stopWorkers := func() {
		orchestrator.Stop()
		cancelRun()
	}
	go func() {
		defer close(done)
		if err := orchestrator.Start(runCtx); err != nil {
			errChan <- fmt.Errorf("orchestrator error: %w", err)
		}
	}()

	// 6. gRPC Server
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		stopWorkers()
		<-done
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	var signer *auth.Signer
	if config.AuthSecret != "" {
		signer = auth.NewSigner(config.AuthSecret)
	}
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			emotiongrpc.RecoveryInterceptor(logger),
			sdkgrpc.UnaryLoggingInterceptor(logger),
			auth.Interceptor(signer, emotiongrpc.AnalyzeFullMethodName),
		))
	emotiongrpc.RegisterEmotionAnalyzerServer(s, emotiongrpc.NewAnalyzerServer(analyzerService, policy, orchestrator, logger))
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(s, healthServer)
	healthServer.SetServingStatus(emotiongrpc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	go func() {
		logger.Info("Starting gRPC server", "address", address, "at", time.Now().UTC(), "auth", signer != nil)
		for serviceName := range s.GetServiceInfo() {
			logger.Debug("gRPC exposed service", "name", serviceName)
		}
		if err := s.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error, then drain before the deferred storage closes
	err = awaitShutdown(ctx, errChan, done, logger, func() {
		healthServer.Shutdown()
		s.GracefulStop()
	}, stopWorkers)
	if err != nil {
		return exitRuntime, err
	}
	logger.Info("Program stopped cleanly", "analyzed", monitoring.GetLatest().Analyzed)

	return exitOK, nil
}

// awaitShutdown blocks until ctx is done or a component fails. Either way calls
// are refused first, then the workers are stopped and awaited so the last index
// flush lands before storage is closed.
func awaitShutdown(ctx context.Context, errChan <-chan error, done <-chan struct{},
	logger *slog.Logger, stopServing, stopWorkers func()) error {
	var failure error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case failure = <-errChan:
		logger.Error("Component failed, shutting down", "error", failure)
	}

	logger.Info("Shutting down gracefully...")
	stopServing()
	stopWorkers()
	<-done
	return failure
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)
	if logger.Enabled(ctx, slog.LevelDebug) {
		return options.WithLoggingLevel(badger.DEBUG)
	}
	return options.WithLoggingLevel(badger.WARNING)
}
