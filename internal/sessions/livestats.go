package sessions

import (
	"context"
	"math"
	"time"

	"github.com/setforge/setforge/internal/telemetry/tracing"
)

// LiveStats is the in-session snapshot shown while the user is still
// training. It never persists anything.
type LiveStats struct {
	SessionID            int      `json:"sessionId"`
	CompletedSets        int      `json:"completedSets"`
	TotalSets            int      `json:"totalSets"`
	CompletionPercentage float64  `json:"completionPercentage"`
	TotalVolume          float64  `json:"totalVolume"`
	AverageRPE           *float64 `json:"averageRpe,omitempty"`
	ElapsedSeconds       int      `json:"elapsedSeconds"`
	PaceRatio            float64  `json:"paceRatio"`
}

type liveStatsRepo interface {
	Get(ctx context.Context, id int) (*Session, error)
	SetLogs(ctx context.Context, sessionID int) ([]SetLog, error)
}

type LiveStatsCalculator struct {
	repo liveStatsRepo
	now  func() time.Time
}

func NewLiveStatsCalculator(repo liveStatsRepo) *LiveStatsCalculator {
	return &LiveStatsCalculator{
		repo: repo,
		now:  time.Now,
	}
}

// Calculate computes the live snapshot for an active session. Asking for
// stats of a terminal session yields ErrSessionNotActive. A session with
// no sets yet is fine and gives zeroed stats.
func (c *LiveStatsCalculator) Calculate(ctx context.Context, sessionID int) (_ *LiveStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "livestats.calculate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	session, err := c.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != StatusActive {
		return nil, ErrSessionNotActive
	}

	sets, err := c.repo.SetLogs(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	stats := &LiveStats{
		SessionID: sessionID,
		TotalSets: len(sets),
	}

	var rpeSum, rpeCount int
	for _, set := range sets {
		if set.Completed {
			stats.CompletedSets++
			stats.TotalVolume += set.Volume()
		}
		if set.RPE != nil {
			rpeSum += *set.RPE
			rpeCount++
		}
	}

	if stats.TotalSets > 0 {
		pct := float64(stats.CompletedSets) / float64(stats.TotalSets) * 100
		stats.CompletionPercentage = math.Min(pct, 100)
	}
	if rpeCount > 0 {
		avg := float64(rpeSum) / float64(rpeCount)
		stats.AverageRPE = &avg
	}

	elapsed := c.now().Sub(session.StartedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	stats.ElapsedSeconds = int(elapsed.Seconds())
	if session.PlannedDurationSeconds > 0 {
		stats.PaceRatio = elapsed.Seconds() / float64(session.PlannedDurationSeconds)
	}

	return stats, nil
}
