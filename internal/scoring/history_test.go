package scoring_test

import (
	"testing"
	"time"

	"github.com/setforge/setforge/internal/scoring"
	"github.com/setforge/setforge/internal/sessions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func priorRecords(scores ...int) []sessions.ScoreRecord {
	// newest first, like storage returns them
	records := make([]sessions.ScoreRecord, 0, len(scores))
	base := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	for i, score := range scores {
		records = append(records, sessions.ScoreRecord{
			SessionID:   100 - i,
			Score:       score,
			CompletedAt: base.AddDate(0, 0, -i),
		})
	}
	return records
}

func TestCompare(t *testing.T) {
	testCases := []struct {
		name      string
		current   int
		priors    []sessions.ScoreRecord
		wantTrend scoring.Trend
		wantMean  float64
	}{
		{
			name:      "no priors stays stable",
			current:   80,
			wantTrend: scoring.TrendStable,
		},
		{
			name:      "single prior stays stable even on a big jump",
			current:   90,
			priors:    priorRecords(40),
			wantTrend: scoring.TrendStable,
			wantMean:  40,
		},
		{
			name:      "improving",
			current:   85,
			priors:    priorRecords(75, 70, 72),
			wantTrend: scoring.TrendImproving,
			wantMean:  72.333,
		},
		{
			name:      "declining",
			current:   60,
			priors:    priorRecords(75, 70, 72),
			wantTrend: scoring.TrendDeclining,
			wantMean:  72.333,
		},
		{
			name:      "within threshold is stable",
			current:   75,
			priors:    priorRecords(75, 70, 72),
			wantTrend: scoring.TrendStable,
			wantMean:  72.333,
		},
		{
			name:      "exactly five above is still stable",
			current:   75,
			priors:    priorRecords(70, 70),
			wantTrend: scoring.TrendStable,
			wantMean:  70,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			comparison := scoring.Compare(tc.current, tc.priors)
			assert.Equal(t, tc.wantTrend, comparison.Trend)
			assert.Equal(t, tc.current, comparison.CurrentScore)
			assert.InDelta(t, tc.wantMean, comparison.PriorMean, 0.001)
			assert.Len(t, comparison.PriorScores, len(tc.priors))
		})
	}
}

func TestCompare_PriorsOldestToNewest(t *testing.T) {
	priors := priorRecords(80, 75, 70) // newest first

	comparison := scoring.Compare(85, priors)

	require.Len(t, comparison.PriorScores, 3)
	assert.Equal(t, 70, comparison.PriorScores[0].Score)
	assert.Equal(t, 75, comparison.PriorScores[1].Score)
	assert.Equal(t, 80, comparison.PriorScores[2].Score)
	assert.True(t, comparison.PriorScores[0].CompletedAt.Before(comparison.PriorScores[2].CompletedAt))
}
