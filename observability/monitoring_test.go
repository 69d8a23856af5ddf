package observability

import (
	"emotion-lab/domain"
	"log/slog"
	"sync"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestMonitoringManager_Counters(t *testing.T) {
	req := require.New(t)
	mm := NewMonitoringManager(logs.GetLoggerFromLevel(slog.LevelDebug))

	// Given concurrent increments
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mm.IncrAnalyzed()
		}()
	}
	wg.Wait()
	mm.IncrErrorCount()
	mm.IncrDropped()
	mm.UpdateQueue(3, 10)

	// When refreshing the snapshot
	mm.Refresh()
	stats := mm.GetLatest()

	// Then every counter is visible
	req.Equal(uint64(50), stats.Analyzed)
	req.Equal(uint64(1), stats.Errors)
	req.Equal(uint64(1), stats.Dropped)
	req.Equal(3, stats.CurrentQueueSize)
	req.Equal(uint32(10), stats.MaxCapacity)
	req.GreaterOrEqual(stats.AnalyzedPerSec, 0.0)
}

func TestMonitoringManager_RecentAlerts(t *testing.T) {
	req := require.New(t)
	mm := NewMonitoringManager(logs.GetLoggerFromLevel(slog.LevelDebug))

	mm.AddAlerts(1, "alice", nil)
	req.Empty(mm.GetLatest().RecentAlerts)

	// Given more alerts than kept
	for i := 0; i < 15; i++ {
		mm.AddAlerts(1, "bob", []domain.Alert{
			{Type: domain.AlertToxicity, Tier: domain.TierMedium, Score: 72},
			{Type: domain.AlertStress, Tier: domain.TierHigh, Score: 95},
		})
	}
	mm.AddAlerts(2, "carol", []domain.Alert{{Type: domain.AlertConflict, Tier: domain.TierMedium, Score: 80}})
	mm.Refresh()

	// Then only the newest are kept, newest first
	stats := mm.GetLatest()
	req.Equal(uint64(31), stats.Alerts)
	req.Len(stats.RecentAlerts, recentAlertsKept)
	req.Equal("carol", stats.RecentAlerts[0].Author)
	req.Equal(domain.AlertToxicity, stats.RecentAlerts[1].Type)
}
