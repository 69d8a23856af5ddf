package workers

import (
	"context"
	"emotion-lab/observability"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// ProcessStats are the technical metrics of the running daemon.
type ProcessStats struct {
	PID        int32
	Status     string
	CpuPercent float64
	RamBytes   uint64
}

type HeartbeatWorker struct {
	log        *slog.Logger
	monitoring *observability.MonitoringManager
	interval   time.Duration
	node       string
}

func NewHeartbeatWorker(log *slog.Logger, monitoring *observability.MonitoringManager, interval time.Duration, node string) *HeartbeatWorker {
	return &HeartbeatWorker{log: log, monitoring: monitoring, interval: interval, node: node}
}

// Run refreshes the monitoring snapshot and logs it with the process
// metrics (CPU, RAM, status) every interval.
func (w *HeartbeatWorker) Run(ctx context.Context) error {
	w.log.Info("Starting heartbeat worker", "node", w.node)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.beat(p)
		}
	}
}

func (w *HeartbeatWorker) beat(p *process.Process) {
	w.monitoring.Refresh()
	stats := w.monitoring.GetLatest()

	self, err := SelfStats(p)
	if err != nil {
		w.log.Error("Failed to collect self stats", "error", err)
		return
	}
	w.log.Info("Heartbeat",
		"node", w.node,
		"pid", self.PID,
		"status", self.Status,
		"cpu_percent", self.CpuPercent,
		"ram_bytes", self.RamBytes,
		"analyzed", stats.Analyzed,
		"analyzed_per_sec", stats.AnalyzedPerSec,
		"alerts", stats.Alerts,
		"errors", stats.Errors,
		"dropped", stats.Dropped,
		"queue", stats.CurrentQueueSize,
		"capacity", stats.MaxCapacity)
}

// SelfStats retrieves technical metrics (Memory, CPU, and OS Status) for the given process.
func SelfStats(p *process.Process) (ProcessStats, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return ProcessStats{}, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return ProcessStats{}, err
	}
	status, err := p.Status()
	if err != nil {
		return ProcessStats{}, err
	}
	return ProcessStats{PID: p.Pid, Status: status, CpuPercent: cpuPercent, RamBytes: memInfo.RSS}, nil
}
