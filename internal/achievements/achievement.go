package achievements

import "time"

type Category string

const (
	CategoryPerformance Category = "performance"
	CategoryMilestone   Category = "milestone"
	CategoryStreak      Category = "streak"
	CategoryVolume      Category = "volume"
	CategorySpeed       Category = "speed"
	CategorySpecial     Category = "special"
)

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Definition is one immutable catalog entry. The Condition holds the
// thresholds its category's check reads; adding an achievement means
// adding a catalog row, not a new code path.
type Definition struct {
	ID          string    `json:"id"`
	Category    Category  `json:"category"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Points      int       `json:"points"`
	Rarity      Rarity    `json:"rarity"`
	Condition   Condition `json:"-"`
}

// Condition is the tagged threshold set of a definition. Only the
// fields relevant to the definition's category are read.
type Condition struct {
	// performance
	MinFinalScore       int
	MinCompletionScore  float64
	MinConsistencyScore float64

	// milestone
	MinLifetimeSessions int

	// streak
	MinCurrentStreak int

	// volume
	MinLifetimeVolume float64
	MinLifetimeReps   int

	// speed: the session must finish at least this fraction faster
	// than planned (0.1 = 10% under the estimate)
	SpeedMarginFraction float64

	// special: workout start hour bounds, 24h clock
	StartBeforeHour int
	StartAtOrAfterHour int
}

// Snapshot is the metrics bundle one completed session produces,
// assembled by the caller from the score breakdown, streaks and
// lifetime totals. The engine only ever reads it.
type Snapshot struct {
	UserID int `json:"userId"`

	FinalScore       int     `json:"finalScore"`
	CompletionScore  float64 `json:"completionScore"`
	ConsistencyScore float64 `json:"consistencyScore"`

	LifetimeSessions int     `json:"lifetimeSessions"`
	CurrentStreak    int     `json:"currentStreak"`
	LifetimeVolume   float64 `json:"lifetimeVolume"`
	LifetimeReps     int     `json:"lifetimeReps"`

	PlannedDurationSeconds int `json:"plannedDurationSeconds"`
	ActualDurationSeconds  int `json:"actualDurationSeconds"`

	StartedAt time.Time `json:"startedAt"`
}

// Unlocked is a persisted (user, achievement) pair. Unique per pair,
// which is what keeps double unlocks out.
type Unlocked struct {
	UserID        int       `json:"userId"`
	AchievementID string    `json:"achievementId"`
	UnlockedAt    time.Time `json:"unlockedAt"`
}
