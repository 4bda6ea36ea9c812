package sessions

import (
	"errors"
	"time"
)

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionNotActive    = errors.New("session not active")
	ErrSessionNotCompleted = errors.New("session not completed")
)

// Status can be one of:
//   - active
//   - completed
//   - abandoned
//
// A session has exactly one terminal transition:
// active -> completed or active -> abandoned.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusAbandoned Status = "abandoned"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusAbandoned:
		return true
	default:
		return false
	}
}

type Session struct {
	ID        int        `json:"id"`
	UserID    int        `json:"userId"`
	WorkoutID string     `json:"workoutId"`
	Status    Status     `json:"status"`
	StartedAt time.Time  `json:"startedAt"`
	EndedAt   *time.Time `json:"endedAt,omitempty"`

	// PlannedDurationSeconds comes from the workout definition and is
	// copied onto the session at start, so pacing and efficiency can be
	// computed without reaching for the workout service.
	PlannedDurationSeconds int `json:"plannedDurationSeconds"`

	DurationSeconds int `json:"durationSeconds"`
	Calories        int `json:"calories"`

	// set on completion, together with the score breakdown
	TotalVolume float64 `json:"totalVolume"`
	FinalScore  *int    `json:"finalScore,omitempty"`
}

// SetLog is one performed (or skipped) set within a session.
// Set logs are append-only while the session is active.
type SetLog struct {
	ID         int    `json:"id"`
	SessionID  int    `json:"sessionId"`
	ExerciseID string `json:"exerciseId"`

	PlannedReps int     `json:"plannedReps"`
	Reps        int     `json:"reps"`
	Kilos       float64 `json:"kilos"`

	PlannedRestSeconds int `json:"plannedRestSeconds"`
	RestSeconds        int `json:"restSeconds"`
	DurationSeconds    int `json:"durationSeconds"`

	// RPE is the rating of perceived exertion, 1-10, optional
	RPE *int `json:"rpe,omitempty"`

	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// Volume is the classic training volume of the set: kilos times reps.
func (sl SetLog) Volume() float64 {
	return sl.Kilos * float64(sl.Reps)
}

// ScoreRecord is a prior session's final score, used for
// historical comparison.
type ScoreRecord struct {
	SessionID   int       `json:"sessionId"`
	Score       int       `json:"score"`
	CompletedAt time.Time `json:"completedAt"`
}
