package observability

import (
	"context"
	"emotion-lab/domain"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

const recentAlertsKept = 20

// RecentAlert is one alert raised by the pipeline, newest first in the stats.
type RecentAlert struct {
	ChatID    int64            `json:"chat_id,string"`
	Author    string           `json:"author"`
	Type      domain.AlertType `json:"type"`
	Tier      domain.AlertTier `json:"tier"`
	Score     float64          `json:"score"`
	Timestamp string           `json:"timestamp"`
}

// MonitoringStats is the snapshot exposed to the heartbeat and the CLI.
type MonitoringStats struct {
	Analyzed       uint64  `json:"analyzed"`
	AnalyzedPerSec float64 `json:"analyzed_per_sec"`
	Alerts         uint64  `json:"alerts"`
	Errors         uint64  `json:"errors"`
	Dropped        uint64  `json:"dropped"`

	AllocMemMb       uint64        `json:"alloc_mem_mb"`
	NumGC            uint32        `json:"num_gc"`
	CurrentQueueSize int           `json:"current_queue_size"`
	MaxCapacity      uint32        `json:"max_capacity"`
	RecentAlerts     []RecentAlert `json:"recent_alerts"`
}

// MonitoringManager keeps the pipeline counters. Counters are atomic and
// the derived snapshot is refreshed by Listen.
type MonitoringManager struct {
	log         *slog.Logger
	mu          sync.RWMutex
	latestStats MonitoringStats

	Analyzed  uint64
	Alerts    uint64
	Errors    uint64
	Dropped   uint64
	lastCount uint64
	LastCheck time.Time
}

func NewMonitoringManager(log *slog.Logger) *MonitoringManager {
	return &MonitoringManager{
		log:       log,
		LastCheck: time.Now(),
		latestStats: MonitoringStats{
			RecentAlerts: make([]RecentAlert, 0),
		},
	}
}

func (mm *MonitoringManager) IncrAnalyzed() {
	atomic.AddUint64(&mm.Analyzed, 1)
}

func (mm *MonitoringManager) IncrErrorCount() {
	atomic.AddUint64(&mm.Errors, 1)
}

func (mm *MonitoringManager) IncrDropped() {
	atomic.AddUint64(&mm.Dropped, 1)
}

// AddAlerts counts the alerts and keeps the most recent ones.
func (mm *MonitoringManager) AddAlerts(chatID int64, author string, alerts []domain.Alert) {
	if len(alerts) == 0 {
		return
	}
	atomic.AddUint64(&mm.Alerts, uint64(len(alerts)))

	mm.mu.Lock()
	defer mm.mu.Unlock()
	now := time.Now().Format("15:04:05")
	recent := make([]RecentAlert, 0, len(alerts)+len(mm.latestStats.RecentAlerts))
	for _, a := range alerts {
		recent = append(recent, RecentAlert{
			ChatID:    chatID,
			Author:    author,
			Type:      a.Type,
			Tier:      a.Tier,
			Score:     a.Score,
			Timestamp: now,
		})
	}
	recent = append(recent, mm.latestStats.RecentAlerts...)
	if len(recent) > recentAlertsKept {
		recent = recent[:recentAlertsKept]
	}
	mm.latestStats.RecentAlerts = recent
}

// Listen refreshes the snapshot every interval until ctx is done.
func (mm *MonitoringManager) Listen(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			mm.log.Info("Monitoring manager stopped")
			return
		case <-ticker.C:
			mm.Refresh()
		}
	}
}

// Refresh recomputes throughput and memory figures.
func (mm *MonitoringManager) Refresh() {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	now := time.Now()
	analyzed := atomic.LoadUint64(&mm.Analyzed)
	if duration := now.Sub(mm.LastCheck).Seconds(); duration > 0 {
		mm.latestStats.AnalyzedPerSec = float64(analyzed-mm.lastCount) / duration
	}
	mm.lastCount = analyzed
	mm.LastCheck = now

	mm.latestStats.Analyzed = analyzed
	mm.latestStats.Alerts = atomic.LoadUint64(&mm.Alerts)
	mm.latestStats.Errors = atomic.LoadUint64(&mm.Errors)
	mm.latestStats.Dropped = atomic.LoadUint64(&mm.Dropped)

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	mm.latestStats.AllocMemMb = m.Alloc / 1024 / 1024
	mm.latestStats.NumGC = m.NumGC

	mm.log.Debug("Stats updated",
		"analyzed", mm.latestStats.Analyzed,
		"per_sec", mm.latestStats.AnalyzedPerSec,
		"alerts", mm.latestStats.Alerts,
		"mem_mb", mm.latestStats.AllocMemMb,
	)
}

func (mm *MonitoringManager) GetLatest() MonitoringStats {
	mm.mu.RLock()
	defer mm.mu.RUnlock()
	stats := mm.latestStats
	stats.RecentAlerts = append([]RecentAlert(nil), mm.latestStats.RecentAlerts...)
	return stats
}

func (mm *MonitoringManager) UpdateQueue(size int, max uint32) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.latestStats.CurrentQueueSize = size
	mm.latestStats.MaxCapacity = max
}
