package main

import (
	"context"
	stderrors "errors"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type shutdownRecorder struct {
	steps []string
	done  chan struct{}
}

func newShutdownRecorder() *shutdownRecorder {
	return &shutdownRecorder{done: make(chan struct{})}
}

func (r *shutdownRecorder) stopServing() { r.steps = append(r.steps, "serving") }

// stopWorkers closes done only once the drain has been requested.
func (r *shutdownRecorder) stopWorkers() {
	r.steps = append(r.steps, "workers")
	go func() {
		time.Sleep(20 * time.Millisecond)
		r.steps = append(r.steps, "drained")
		close(r.done)
	}()
}

func TestAwaitShutdown_ComponentFailureDrainsWorkers(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	recorder := newShutdownRecorder()
	errChan := make(chan error, 1)

	// Given the gRPC server fails while the workers run
	boom := stderrors.New("gRPC server error: listener closed")
	errChan <- boom

	// When waiting for shutdown
	err := awaitShutdown(context.Background(), errChan, recorder.done, log, recorder.stopServing, recorder.stopWorkers)

	// Then the failure is reported only after the workers drained
	req.ErrorIs(err, boom)
	req.Equal([]string{"serving", "workers", "drained"}, recorder.steps)
}

func TestAwaitShutdown_SignalStopsCleanly(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	recorder := newShutdownRecorder()
	ctx, cancel := context.WithCancel(context.Background())

	// Given a shutdown signal
	cancel()

	// When waiting for shutdown
	err := awaitShutdown(ctx, make(chan error), recorder.done, log, recorder.stopServing, recorder.stopWorkers)

	// Then everything is stopped in order without error
	req.NoError(err)
	req.Equal([]string{"serving", "workers", "drained"}, recorder.steps)
}
