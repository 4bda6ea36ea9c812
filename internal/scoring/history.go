package scoring

import (
	"github.com/setforge/setforge/internal/sessions"
)

type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

const (
	// DefaultHistoryWindow is how many prior sessions of the same
	// workout feed the trend classification.
	DefaultHistoryWindow = 10

	// the score must move more than this against the prior mean to
	// count as improving or declining
	trendThreshold = 5.0
)

type HistoricalComparison struct {
	CurrentScore int `json:"currentScore"`

	// PriorScores holds the trailing window, oldest to newest.
	PriorScores []sessions.ScoreRecord `json:"priorScores"`

	PriorMean float64 `json:"priorMean"`
	Delta     float64 `json:"delta"`
	Trend     Trend   `json:"trend"`
}

// Compare classifies the current score against the trailing window of
// prior scores. Priors arrive newest-first, as storage returns them.
// Fewer than 2 priors means there is not enough signal, and the trend
// stays stable rather than erroring out.
func Compare(currentScore int, priors []sessions.ScoreRecord) HistoricalComparison {
	comparison := HistoricalComparison{
		CurrentScore: currentScore,
		Trend:        TrendStable,
	}

	if len(priors) == 0 {
		return comparison
	}

	comparison.PriorScores = make([]sessions.ScoreRecord, len(priors))
	for i, rec := range priors {
		comparison.PriorScores[len(priors)-1-i] = rec
	}

	var sum float64
	for _, rec := range priors {
		sum += float64(rec.Score)
	}
	comparison.PriorMean = sum / float64(len(priors))
	comparison.Delta = float64(currentScore) - comparison.PriorMean

	if len(priors) < 2 {
		return comparison
	}

	switch {
	case comparison.Delta > trendThreshold:
		comparison.Trend = TrendImproving
	case comparison.Delta < -trendThreshold:
		comparison.Trend = TrendDeclining
	}

	return comparison
}
