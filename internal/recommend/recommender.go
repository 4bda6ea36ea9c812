package recommend

import (
	"context"
	"fmt"
	"math"

	"github.com/setforge/setforge/internal/sessions"
	"github.com/setforge/setforge/internal/telemetry/tracing"
)

// Reason is the caller-supplied context for asking. It colors the
// justification text but never overrides the data-driven rules, so a
// user asking for more weight still gets a deload when the numbers
// say so.
type Reason string

const (
	ReasonPreference          Reason = "preference"
	ReasonPlateauBreak        Reason = "plateau_break"
	ReasonDeload              Reason = "deload"
	ReasonProgressiveOverload Reason = "progressive_overload"
)

func (r Reason) IsValid() bool {
	switch r {
	case ReasonPreference, ReasonPlateauBreak, ReasonDeload, ReasonProgressiveOverload:
		return true
	default:
		return false
	}
}

type Rationale string

const (
	RationaleDeload              Rationale = "deload"
	RationaleProgressiveOverload Rationale = "progressive_overload"
	RationalePlateauBreak        Rationale = "plateau_break"
	RationaleMaintain            Rationale = "maintain"
	RationalePreference          Rationale = "preference"
)

// Rule thresholds, all over per-session averages of the exercise.
const (
	deloadRPEThreshold       = 9.0
	deloadSessions           = 2
	deloadWeightCutPercent   = 10.0
	overloadRPEThreshold     = 6.0
	overloadSessions         = 3
	overloadWeightAddPercent = 5.0
	plateauSessions          = 3
	plateauRPELow            = 7.0
	plateauRPEHigh           = 8.0
	plateauRepVaryPercent    = 20.0

	// how many recent sessions of the exercise feed the rules
	defaultSessionWindow = 6
)

type Recommendation struct {
	ExerciseID         string    `json:"exerciseId"`
	WeightDeltaPercent float64   `json:"weightDeltaPercent"`
	RepDeltaPercent    float64   `json:"repDeltaPercent"`
	CurrentAvgKilos    float64   `json:"currentAvgKilos"`
	SuggestedKilos     float64   `json:"suggestedKilos"`
	Rationale          Rationale `json:"rationale"`
	Justification      string    `json:"justification"`
}

type exerciseHistory interface {
	SetLogsForExercise(ctx context.Context, userID int, exerciseID string, sessionLimit int) ([]sessions.SetLog, error)
}

type Recommender struct {
	repo          exerciseHistory
	sessionWindow int
}

func NewRecommender(repo exerciseHistory) *Recommender {
	return &Recommender{
		repo:          repo,
		sessionWindow: defaultSessionWindow,
	}
}

// sessionStats summarizes one prior session's sets of the exercise.
type sessionStats struct {
	avgRPE         *float64
	completionRate float64
	avgKilos       float64
	avgPlannedReps float64
}

// Recommend runs the adjustment rules over the exercise's recent
// history, first match wins. Sparse history is never an error, it just
// lands on maintain.
func (r *Recommender) Recommend(ctx context.Context, userID int, exerciseID string, reason Reason) (_ *Recommendation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "recommend.recommend")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	setLogs, err := r.repo.SetLogsForExercise(ctx, userID, exerciseID, r.sessionWindow)
	if err != nil {
		return nil, fmt.Errorf("get exercise history: %w", err)
	}

	history := groupBySession(setLogs)

	rec := &Recommendation{ExerciseID: exerciseID}
	if len(history) > 0 {
		rec.CurrentAvgKilos = history[0].avgKilos
	}

	switch {
	case deloadDue(history):
		rec.Rationale = RationaleDeload
		rec.WeightDeltaPercent = -deloadWeightCutPercent
		rec.Justification = fmt.Sprintf(
			"average RPE has been %.0f+ for your last %d sessions; drop the weight ~%.0f%% and keep the reps to recover",
			deloadRPEThreshold, deloadSessions, deloadWeightCutPercent)

	case overloadDue(history):
		rec.Rationale = RationaleProgressiveOverload
		rec.WeightDeltaPercent = overloadWeightAddPercent
		rec.Justification = fmt.Sprintf(
			"last %d sessions were completed in full at RPE %.0f or lower; add ~%.0f%% weight",
			overloadSessions, overloadRPEThreshold, overloadWeightAddPercent)

	case plateauDue(history):
		rec.Rationale = RationalePlateauBreak
		rec.RepDeltaPercent = plateauRepDirection(history) * plateauRepVaryPercent
		rec.Justification = fmt.Sprintf(
			"weight and reps have not moved for %d sessions; vary the rep target by ~%.0f%% instead of the weight",
			plateauSessions, plateauRepVaryPercent)

	default:
		rec.Rationale = RationaleMaintain
		if len(history) < 2 {
			rec.Justification = "not enough session history for this exercise yet; keep the current plan"
		} else {
			rec.Justification = "progress looks on track; keep the current weight and reps"
		}
		if reason == ReasonPreference {
			rec.Rationale = RationalePreference
			rec.Justification += " (as per your stated preference)"
		}
	}

	rec.SuggestedKilos = roundKilos(rec.CurrentAvgKilos * (1 + rec.WeightDeltaPercent/100))

	return rec, nil
}

// groupBySession folds the flat set-log list into per-session stats,
// preserving the newest-first session order the repo returns.
func groupBySession(setLogs []sessions.SetLog) []sessionStats {
	var (
		order []int
		sets  = map[int][]sessions.SetLog{}
	)
	for _, set := range setLogs {
		if _, seen := sets[set.SessionID]; !seen {
			order = append(order, set.SessionID)
		}
		sets[set.SessionID] = append(sets[set.SessionID], set)
	}

	history := make([]sessionStats, 0, len(order))
	for _, sessionID := range order {
		history = append(history, summarize(sets[sessionID]))
	}
	return history
}

func summarize(sets []sessions.SetLog) sessionStats {
	var stats sessionStats
	var completed, rpeCount int
	var rpeSum, kiloSum, plannedRepSum float64

	for _, set := range sets {
		if set.Completed {
			completed++
		}
		if set.RPE != nil {
			rpeSum += float64(*set.RPE)
			rpeCount++
		}
		kiloSum += set.Kilos
		plannedRepSum += float64(set.PlannedReps)
	}

	total := float64(len(sets))
	stats.completionRate = float64(completed) / total * 100
	stats.avgKilos = kiloSum / total
	stats.avgPlannedReps = plannedRepSum / total
	if rpeCount > 0 {
		avg := rpeSum / float64(rpeCount)
		stats.avgRPE = &avg
	}

	return stats
}

func deloadDue(history []sessionStats) bool {
	if len(history) < deloadSessions {
		return false
	}
	for _, stats := range history[:deloadSessions] {
		if stats.avgRPE == nil || *stats.avgRPE < deloadRPEThreshold {
			return false
		}
	}
	return true
}

func overloadDue(history []sessionStats) bool {
	if len(history) < overloadSessions {
		return false
	}
	for _, stats := range history[:overloadSessions] {
		if stats.avgRPE == nil || *stats.avgRPE > overloadRPEThreshold {
			return false
		}
		if stats.completionRate < 100 {
			return false
		}
	}
	return true
}

func plateauDue(history []sessionStats) bool {
	if len(history) < plateauSessions {
		return false
	}
	first := history[0]
	for _, stats := range history[:plateauSessions] {
		if stats.avgRPE == nil || *stats.avgRPE < plateauRPELow || *stats.avgRPE > plateauRPEHigh {
			return false
		}
		if math.Abs(stats.avgKilos-first.avgKilos) > 0.001 {
			return false
		}
		if math.Abs(stats.avgPlannedReps-first.avgPlannedReps) > 0.001 {
			return false
		}
	}
	return true
}

// plateauRepDirection picks which way to vary the reps: high-rep work
// shifts down into heavier territory, low-rep work shifts up.
func plateauRepDirection(history []sessionStats) float64 {
	if history[0].avgPlannedReps >= 10 {
		return -1
	}
	return 1
}

func roundKilos(kilos float64) float64 {
	return math.Round(kilos*100) / 100
}
