package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/setforge/setforge/internal/achievements"
	"github.com/setforge/setforge/internal/sessions"
	"github.com/setforge/setforge/internal/streaks"
	"github.com/setforge/setforge/internal/telemetry/metrics"
	"github.com/setforge/setforge/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=summary_mocks_test.go -package=scoring_test

type sessionsStore interface {
	Get(ctx context.Context, id int) (*sessions.Session, error)
	SetLogs(ctx context.Context, sessionID int) ([]sessions.SetLog, error)
	Complete(ctx context.Context, params sessions.CompleteParams) error
	SaveScore(ctx context.Context, sessionID, finalScore int, breakdown []byte, totalVolume float64) error
	BreakdownJSON(ctx context.Context, sessionID int) ([]byte, error)
	PriorScores(ctx context.Context, userID int, workoutID string, excludeSessionID, limit int) ([]sessions.ScoreRecord, error)
	PriorVolumes(ctx context.Context, userID int, workoutID string, excludeSessionID, limit int) ([]float64, error)
	LastExerciseAverages(ctx context.Context, userID int, before time.Time) (map[string]float64, error)
	CompletionDates(ctx context.Context, userID int) ([]time.Time, error)
	CountCompleted(ctx context.Context, userID int) (int, error)
	LifetimeTotals(ctx context.Context, userID int) (float64, int, error)
}

type achievementsUnlocker interface {
	EvaluateAndUnlock(ctx context.Context, snapshot achievements.Snapshot) ([]achievements.Definition, error)
}

type summaryCache interface {
	Get(sessionID int) ([]byte, bool)
	Set(sessionID int, summaryJson []byte)
}

// SessionSummary is the complete post-workout picture of one completed
// session. Generated on demand and cached by session id.
type SessionSummary struct {
	Session         *sessions.Session         `json:"session"`
	Exercises       []ExerciseBreakdown       `json:"exercises"`
	Score           Breakdown                 `json:"score"`
	Comparison      HistoricalComparison      `json:"comparison"`
	Streaks         streaks.Streaks           `json:"streaks"`
	NewAchievements []achievements.Definition `json:"newAchievements,omitempty"`
}

type Service struct {
	repo          sessionsStore
	unlocker      achievementsUnlocker
	cache         summaryCache
	metrics       *metrics.Manager
	historyWindow int
	now           func() time.Time
}

func NewService(
	repo sessionsStore,
	unlocker achievementsUnlocker,
	cache summaryCache,
	metricsManager *metrics.Manager,
	historyWindow int,
) *Service {
	if historyWindow <= 0 {
		historyWindow = DefaultHistoryWindow
	}
	return &Service{
		repo:          repo,
		unlocker:      unlocker,
		cache:         cache,
		metrics:       metricsManager,
		historyWindow: historyWindow,
		now:           time.Now,
	}
}

type FinalizeParams struct {
	SessionID int
	Calories  int

	// DurationSeconds is optional; when zero the duration is measured
	// from the session start to now.
	DurationSeconds int
}

// Finalize flips a session from active to completed and runs the whole
// post-workout pipeline: score it, persist the score, compare against
// history, refresh streaks and hand the metrics snapshot to the
// achievement unlocker. The status flip is a compare-and-set, so of two
// concurrent completion requests exactly one gets to score the session.
func (s *Service) Finalize(ctx context.Context, params FinalizeParams) (_ *SessionSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "scoring.finalize")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	session, err := s.repo.Get(ctx, params.SessionID)
	if err != nil {
		return nil, err
	}

	endedAt := s.now()
	durationSeconds := params.DurationSeconds
	if durationSeconds <= 0 {
		durationSeconds = int(endedAt.Sub(session.StartedAt).Seconds())
	}

	if err := s.repo.Complete(ctx, sessions.CompleteParams{
		ID:              params.SessionID,
		EndedAt:         endedAt,
		DurationSeconds: durationSeconds,
		Calories:        params.Calories,
	}); err != nil {
		return nil, err
	}

	session.Status = sessions.StatusCompleted
	session.EndedAt = &endedAt
	session.DurationSeconds = durationSeconds
	session.Calories = params.Calories

	setLogs, err := s.repo.SetLogs(ctx, params.SessionID)
	if err != nil {
		return nil, fmt.Errorf("get set logs: %w", err)
	}

	priorVolumes, err := s.repo.PriorVolumes(ctx, session.UserID, session.WorkoutID, session.ID, s.historyWindow)
	if err != nil {
		return nil, fmt.Errorf("get prior volumes: %w", err)
	}
	priorAverages, err := s.repo.LastExerciseAverages(ctx, session.UserID, session.StartedAt)
	if err != nil {
		return nil, fmt.Errorf("get prior exercise averages: %w", err)
	}

	breakdown := Compute(Inputs{
		Sets:                   setLogs,
		PlannedDurationSeconds: session.PlannedDurationSeconds,
		ActualDurationSeconds:  durationSeconds,
		TrailingAvgVolume:      mean(priorVolumes),
		PriorExerciseAverages:  priorAverages,
	})

	totalVolume := totalCompletedVolume(setLogs)
	breakdownJson, err := json.Marshal(breakdown)
	if err != nil {
		return nil, fmt.Errorf("marshal breakdown: %w", err)
	}
	if err := s.repo.SaveScore(ctx, session.ID, breakdown.FinalScore, breakdownJson, totalVolume); err != nil {
		return nil, fmt.Errorf("save score: %w", err)
	}
	session.TotalVolume = totalVolume
	session.FinalScore = &breakdown.FinalScore

	summary, err := s.assembleSummary(ctx, session, setLogs, breakdown)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.buildSnapshot(ctx, session, breakdown, summary.Streaks)
	if err != nil {
		return nil, err
	}
	newAchievements, err := s.unlocker.EvaluateAndUnlock(ctx, snapshot)
	if err != nil {
		// the session is already scored; losing the unlock is worse
		// for the user than a noisy summary, so fail loudly
		return nil, fmt.Errorf("evaluate achievements: %w", err)
	}
	summary.NewAchievements = newAchievements

	s.metrics.CounterSessionsCompleted.Inc()
	s.metrics.HistSessionScore.Observe(float64(breakdown.FinalScore))
	if len(newAchievements) > 0 {
		s.metrics.CounterAchievementsUnlocked.Add(float64(len(newAchievements)))
	}

	// new achievements are a one-time part of the completion response,
	// they do not belong in the cached summary
	cached := *summary
	cached.NewAchievements = nil
	s.cacheSummary(session.ID, &cached)

	return summary, nil
}

// Summary returns the summary of an already completed session,
// cache-first. Asking for an active or abandoned session yields
// ErrSessionNotCompleted.
func (s *Service) Summary(ctx context.Context, sessionID int) (_ *SessionSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "scoring.summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if cached, ok := s.cache.Get(sessionID); ok {
		var summary SessionSummary
		if err := json.Unmarshal(cached, &summary); err == nil {
			return &summary, nil
		}
		log.Warnf("corrupt cached summary for session %d, rebuilding", sessionID)
	}

	session, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != sessions.StatusCompleted {
		return nil, sessions.ErrSessionNotCompleted
	}

	setLogs, err := s.repo.SetLogs(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get set logs: %w", err)
	}

	breakdown, err := s.storedBreakdown(ctx, session, setLogs)
	if err != nil {
		return nil, err
	}

	summary, err := s.assembleSummary(ctx, session, setLogs, breakdown)
	if err != nil {
		return nil, err
	}

	s.cacheSummary(sessionID, summary)

	return summary, nil
}

// Streaks computes the user's current and best daily streaks from the
// completion dates on record.
func (s *Service) Streaks(ctx context.Context, userID int) (_ streaks.Streaks, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "scoring.streaks")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	dates, err := s.repo.CompletionDates(ctx, userID)
	if err != nil {
		return streaks.Streaks{}, err
	}
	return streaks.Compute(dates, s.now()), nil
}

func (s *Service) assembleSummary(
	ctx context.Context,
	session *sessions.Session,
	setLogs []sessions.SetLog,
	breakdown Breakdown,
) (*SessionSummary, error) {
	priorScores, err := s.repo.PriorScores(ctx, session.UserID, session.WorkoutID, session.ID, s.historyWindow)
	if err != nil {
		return nil, fmt.Errorf("get prior scores: %w", err)
	}

	userStreaks, err := s.Streaks(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("compute streaks: %w", err)
	}

	return &SessionSummary{
		Session:    session,
		Exercises:  ByExercise(setLogs),
		Score:      breakdown,
		Comparison: Compare(breakdown.FinalScore, priorScores),
		Streaks:    userStreaks,
	}, nil
}

func (s *Service) buildSnapshot(
	ctx context.Context,
	session *sessions.Session,
	breakdown Breakdown,
	userStreaks streaks.Streaks,
) (achievements.Snapshot, error) {
	lifetimeSessions, err := s.repo.CountCompleted(ctx, session.UserID)
	if err != nil {
		return achievements.Snapshot{}, fmt.Errorf("count completed sessions: %w", err)
	}
	lifetimeVolume, lifetimeReps, err := s.repo.LifetimeTotals(ctx, session.UserID)
	if err != nil {
		return achievements.Snapshot{}, fmt.Errorf("get lifetime totals: %w", err)
	}

	return achievements.Snapshot{
		UserID:                 session.UserID,
		FinalScore:             breakdown.FinalScore,
		CompletionScore:        breakdown.Completion,
		ConsistencyScore:       breakdown.Consistency,
		LifetimeSessions:       lifetimeSessions,
		CurrentStreak:          userStreaks.Current,
		LifetimeVolume:         lifetimeVolume,
		LifetimeReps:           lifetimeReps,
		PlannedDurationSeconds: session.PlannedDurationSeconds,
		ActualDurationSeconds:  session.DurationSeconds,
		StartedAt:              session.StartedAt,
	}, nil
}

// storedBreakdown reads the breakdown persisted at completion time,
// falling back to a recompute for sessions scored before breakdowns
// were stored.
func (s *Service) storedBreakdown(
	ctx context.Context,
	session *sessions.Session,
	setLogs []sessions.SetLog,
) (Breakdown, error) {
	breakdownJson, err := s.repo.BreakdownJSON(ctx, session.ID)
	if err != nil {
		return Breakdown{}, fmt.Errorf("get stored breakdown: %w", err)
	}
	if len(breakdownJson) > 0 {
		var breakdown Breakdown
		if err := json.Unmarshal(breakdownJson, &breakdown); err == nil {
			return breakdown, nil
		}
		log.Warnf("corrupt stored breakdown for session %d, recomputing", session.ID)
	}

	priorVolumes, err := s.repo.PriorVolumes(ctx, session.UserID, session.WorkoutID, session.ID, s.historyWindow)
	if err != nil {
		return Breakdown{}, fmt.Errorf("get prior volumes: %w", err)
	}
	priorAverages, err := s.repo.LastExerciseAverages(ctx, session.UserID, session.StartedAt)
	if err != nil {
		return Breakdown{}, fmt.Errorf("get prior exercise averages: %w", err)
	}

	return Compute(Inputs{
		Sets:                   setLogs,
		PlannedDurationSeconds: session.PlannedDurationSeconds,
		ActualDurationSeconds:  session.DurationSeconds,
		TrailingAvgVolume:      mean(priorVolumes),
		PriorExerciseAverages:  priorAverages,
	}), nil
}

func (s *Service) cacheSummary(sessionID int, summary *SessionSummary) {
	summaryJson, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("marshal summary for cache: %s", err)
		return
	}
	s.cache.Set(sessionID, summaryJson)
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func totalCompletedVolume(setLogs []sessions.SetLog) float64 {
	var total float64
	for _, set := range setLogs {
		if set.Completed {
			total += set.Volume()
		}
	}
	return total
}
