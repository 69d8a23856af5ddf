package workers

import (
	"context"
	"emotion-lab/observability"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/shirou/gopsutil/process"
	"github.com/stretchr/testify/require"
)

func TestSelfStats(t *testing.T) {
	req := require.New(t)
	p, err := process.NewProcess(int32(os.Getpid()))
	req.NoError(err)

	stats, err := SelfStats(p)
	req.NoError(err)
	req.Equal(int32(os.Getpid()), stats.PID)
	req.Positive(stats.RamBytes)
}

func TestHeartbeatWorker_Run(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	monitoring := observability.NewMonitoringManager(log)
	monitoring.IncrAnalyzed()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	err := NewHeartbeatWorker(log, monitoring, 10*time.Millisecond, "test").Run(ctx)

	// Then the snapshot was refreshed by the beats
	req.NoError(err)
	req.Equal(uint64(1), monitoring.GetLatest().Analyzed)
}
