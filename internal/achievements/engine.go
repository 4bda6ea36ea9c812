package achievements

// Engine evaluates a metrics snapshot against the catalog. It is a
// pure function over its inputs: no prior-unlock state leaks in here,
// de-duplication is the write boundary's job.
type Engine struct {
	catalog []Definition
}

func NewEngine(catalog []Definition) *Engine {
	return &Engine{catalog: catalog}
}

// Eval dispatch per category. A definition with an unknown category
// never qualifies.
var categoryChecks = map[Category]func(Condition, Snapshot) bool{
	CategoryPerformance: performanceHolds,
	CategoryMilestone:   milestoneHolds,
	CategoryStreak:      streakHolds,
	CategoryVolume:      volumeHolds,
	CategorySpeed:       speedHolds,
	CategorySpecial:     specialHolds,
}

// Evaluate returns every catalog definition whose condition currently
// holds for the snapshot, in catalog order. Calling it twice with the
// same snapshot returns the same candidates.
func (e *Engine) Evaluate(snapshot Snapshot) []Definition {
	var qualifying []Definition
	for _, def := range e.catalog {
		check, ok := categoryChecks[def.Category]
		if !ok {
			continue
		}
		if check(def.Condition, snapshot) {
			qualifying = append(qualifying, def)
		}
	}
	return qualifying
}

func performanceHolds(c Condition, s Snapshot) bool {
	return s.FinalScore >= c.MinFinalScore &&
		s.CompletionScore >= c.MinCompletionScore &&
		s.ConsistencyScore >= c.MinConsistencyScore
}

func milestoneHolds(c Condition, s Snapshot) bool {
	return s.LifetimeSessions >= c.MinLifetimeSessions
}

func streakHolds(c Condition, s Snapshot) bool {
	return s.CurrentStreak >= c.MinCurrentStreak
}

func volumeHolds(c Condition, s Snapshot) bool {
	if c.MinLifetimeVolume > 0 && s.LifetimeVolume >= c.MinLifetimeVolume {
		return true
	}
	if c.MinLifetimeReps > 0 && s.LifetimeReps >= c.MinLifetimeReps {
		return true
	}
	return false
}

func speedHolds(c Condition, s Snapshot) bool {
	if s.PlannedDurationSeconds <= 0 || s.ActualDurationSeconds <= 0 {
		return false
	}
	limit := (1 - c.SpeedMarginFraction) * float64(s.PlannedDurationSeconds)
	return float64(s.ActualDurationSeconds) <= limit
}

func specialHolds(c Condition, s Snapshot) bool {
	hour := s.StartedAt.Hour()
	if c.StartBeforeHour > 0 && hour < c.StartBeforeHour {
		return true
	}
	if c.StartAtOrAfterHour > 0 && hour >= c.StartAtOrAfterHour {
		return true
	}
	return false
}
