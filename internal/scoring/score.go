package scoring

import (
	"math"

	"github.com/setforge/setforge/internal/sessions"
)

// Final score weights. They must sum to 1.
const (
	WeightCompletion  = 0.25
	WeightVolume      = 0.20
	WeightIntensity   = 0.20
	WeightConsistency = 0.15
	WeightEfficiency  = 0.10
	WeightProgression = 0.10
)

// RPE target band and scoring slopes. The band is inferred from common
// hypertrophy guidance: working sets around RPE 7-9 are on target,
// grinding past 9 is penalized harder than staying light.
const (
	RPETargetLow  = 7.0
	RPETargetHigh = 9.0

	rpePenaltyBelowPerPoint = 20.0
	rpePenaltyAbovePerPoint = 50.0

	// used when there is no data to judge by, so the absence of
	// history or RPE entries is never treated as poor performance
	NeutralScore = 50.0

	// rest within this fraction of the planned rest counts as adherent
	restAdherenceTolerance = 0.2
)

// Breakdown is the six-factor performance score of a completed session.
// Produced once per session and immutable afterwards.
type Breakdown struct {
	Completion  float64 `json:"completionScore"`
	Volume      float64 `json:"volumeScore"`
	Intensity   float64 `json:"intensityScore"`
	Consistency float64 `json:"consistencyScore"`
	Efficiency  float64 `json:"efficiencyScore"`
	Progression float64 `json:"progressionScore"`
	FinalScore  int     `json:"finalScore"`
}

// ExerciseBreakdown aggregates a session's set logs for one exercise.
// Derived on demand, never persisted on its own.
type ExerciseBreakdown struct {
	ExerciseID     string   `json:"exerciseId"`
	TotalSets      int      `json:"totalSets"`
	CompletedSets  int      `json:"completedSets"`
	TotalVolume    float64  `json:"totalVolume"`
	CompletionRate float64  `json:"completionRate"`
	AverageRPE     *float64 `json:"averageRpe,omitempty"`
	AverageKilos   float64  `json:"averageKilos"`
}

// Inputs carries everything the scorer needs, already fetched by the
// caller. The scorer itself does no I/O.
type Inputs struct {
	Sets []sessions.SetLog

	PlannedDurationSeconds int
	ActualDurationSeconds  int

	// TrailingAvgVolume is the user's average total volume over recent
	// completed sessions of the same workout. Zero means no priors.
	TrailingAvgVolume float64

	// PriorExerciseAverages maps exercise id to the average weight of
	// the user's most recent prior session containing that exercise.
	// Exercises absent from the map are first-timers.
	PriorExerciseAverages map[string]float64
}

// Compute produces the full six-factor breakdown. A session with zero
// sets is a valid degenerate case and scores zero across the board.
func Compute(in Inputs) Breakdown {
	if len(in.Sets) == 0 {
		return Breakdown{}
	}

	var (
		completedSets int
		totalVolume   float64
		rpeSum        float64
		rpeCount      int
		adherentSets  int
	)
	for _, set := range in.Sets {
		if set.Completed {
			completedSets++
			totalVolume += set.Volume()
		}
		if set.RPE != nil {
			rpeSum += float64(*set.RPE)
			rpeCount++
		}
		if restAdherent(set) {
			adherentSets++
		}
	}

	totalSets := len(in.Sets)

	b := Breakdown{
		Completion:  float64(completedSets) / float64(totalSets) * 100,
		Volume:      volumeScore(totalVolume, in.TrailingAvgVolume),
		Consistency: float64(adherentSets) / float64(totalSets) * 100,
		Efficiency:  efficiencyScore(in.PlannedDurationSeconds, in.ActualDurationSeconds),
		Progression: progressionScore(in.Sets, in.PriorExerciseAverages),
	}
	if rpeCount > 0 {
		b.Intensity = intensityScore(rpeSum / float64(rpeCount))
	} else {
		b.Intensity = NeutralScore
	}

	b.FinalScore = int(math.Round(
		WeightCompletion*b.Completion +
			WeightVolume*b.Volume +
			WeightIntensity*b.Intensity +
			WeightConsistency*b.Consistency +
			WeightEfficiency*b.Efficiency +
			WeightProgression*b.Progression,
	))

	return b
}

// ByExercise groups a session's set logs into per-exercise aggregates,
// keeping the order in which exercises first appear.
func ByExercise(sets []sessions.SetLog) []ExerciseBreakdown {
	index := map[string]int{}
	var breakdowns []ExerciseBreakdown
	rpeSums := map[string]float64{}
	rpeCounts := map[string]int{}
	kiloSums := map[string]float64{}

	for _, set := range sets {
		i, seen := index[set.ExerciseID]
		if !seen {
			i = len(breakdowns)
			index[set.ExerciseID] = i
			breakdowns = append(breakdowns, ExerciseBreakdown{ExerciseID: set.ExerciseID})
		}

		breakdowns[i].TotalSets++
		kiloSums[set.ExerciseID] += set.Kilos
		if set.Completed {
			breakdowns[i].CompletedSets++
			breakdowns[i].TotalVolume += set.Volume()
		}
		if set.RPE != nil {
			rpeSums[set.ExerciseID] += float64(*set.RPE)
			rpeCounts[set.ExerciseID]++
		}
	}

	for i := range breakdowns {
		eb := &breakdowns[i]
		eb.CompletionRate = float64(eb.CompletedSets) / float64(eb.TotalSets) * 100
		eb.AverageKilos = kiloSums[eb.ExerciseID] / float64(eb.TotalSets)
		if count := rpeCounts[eb.ExerciseID]; count > 0 {
			avg := rpeSums[eb.ExerciseID] / float64(count)
			eb.AverageRPE = &avg
		}
	}

	return breakdowns
}

func restAdherent(set sessions.SetLog) bool {
	if set.PlannedRestSeconds <= 0 {
		return true
	}
	diff := math.Abs(float64(set.RestSeconds - set.PlannedRestSeconds))
	return diff <= restAdherenceTolerance*float64(set.PlannedRestSeconds)
}

func volumeScore(totalVolume, trailingAvg float64) float64 {
	if trailingAvg <= 0 {
		// no prior sessions of this workout to compare against
		return 100
	}
	return math.Min(totalVolume/trailingAvg*100, 100)
}

func intensityScore(avgRPE float64) float64 {
	switch {
	case avgRPE >= RPETargetLow && avgRPE <= RPETargetHigh:
		return 100
	case avgRPE < RPETargetLow:
		return math.Max(100-(RPETargetLow-avgRPE)*rpePenaltyBelowPerPoint, 0)
	default:
		return math.Max(100-(avgRPE-RPETargetHigh)*rpePenaltyAbovePerPoint, 0)
	}
}

func efficiencyScore(plannedSeconds, actualSeconds int) float64 {
	if plannedSeconds <= 0 || actualSeconds <= 0 {
		// no plan to measure against, or a sub-second session
		return 100
	}
	return math.Min(float64(plannedSeconds)/float64(actualSeconds)*100, 100)
}

// progressionScore compares this session's average working weight per
// exercise against the weight of the user's most recent prior session
// with that exercise. Exercises without a prior are skipped; when none
// have one, the score is neutral.
func progressionScore(sets []sessions.SetLog, priorAverages map[string]float64) float64 {
	breakdowns := ByExercise(sets)

	var compared, improved int
	for _, eb := range breakdowns {
		prior, ok := priorAverages[eb.ExerciseID]
		if !ok || prior <= 0 {
			continue
		}
		compared++
		if eb.AverageKilos >= prior {
			improved++
		}
	}

	if compared == 0 {
		return NeutralScore
	}

	fraction := float64(improved) / float64(compared)
	if fraction >= 0.5 {
		return 100
	}
	return math.Round(fraction * 100)
}
