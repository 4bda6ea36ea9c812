package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/setforge/setforge/internal/telemetry/tracing"
	"github.com/setforge/setforge/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Start(ctx context.Context, session Session) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.start")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`INSERT INTO workout_session
			(user_id, workout_id, status, started_at, planned_duration_seconds)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		session.UserID, session.WorkoutID, StatusActive, session.StartedAt, session.PlannedDurationSeconds,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	session.ID = id
	session.Status = StatusActive
	return &session, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var s Session
	err = r.db.QueryRow(ctx,
		`SELECT
			id, user_id, workout_id, status, started_at, ended_at,
			planned_duration_seconds, duration_seconds, calories,
			total_volume, final_score
		FROM workout_session
		WHERE id = $1`, id,
	).Scan(
		&s.ID, &s.UserID, &s.WorkoutID, &s.Status, &s.StartedAt, &s.EndedAt,
		&s.PlannedDurationSeconds, &s.DurationSeconds, &s.Calories,
		&s.TotalVolume, &s.FinalScore,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *Repo) AddSetLog(ctx context.Context, set SetLog) (_ *SetLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.addSetLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`INSERT INTO set_log
			(session_id, exercise_id, planned_reps, reps, kilos,
			 planned_rest_seconds, rest_seconds, duration_seconds,
			 rpe, completed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`,
		set.SessionID, set.ExerciseID, set.PlannedReps, set.Reps, set.Kilos,
		set.PlannedRestSeconds, set.RestSeconds, set.DurationSeconds,
		set.RPE, set.Completed, set.CreatedAt,
	)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	set.ID = id
	return &set, nil
}

// SetLogs returns all set logs of a session in the order they were logged.
func (r *Repo) SetLogs(ctx context.Context, sessionID int) (_ []SetLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.setLogs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT
			id, session_id, exercise_id, planned_reps, reps, kilos,
			planned_rest_seconds, rest_seconds, duration_seconds,
			rpe, completed, created_at
		FROM set_log
		WHERE session_id = $1
		ORDER BY created_at ASC, id ASC`, sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSetLogs(rows)
}

type CompleteParams struct {
	ID              int
	EndedAt         time.Time
	DurationSeconds int
	Calories        int
}

// Complete moves a session from active to completed. The status check
// happens inside the UPDATE, so two concurrent completions cannot both
// succeed. When no row was updated, the follow-up read tells apart a
// missing session from one already in a terminal state.
func (r *Repo) Complete(ctx context.Context, params CompleteParams) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx,
		`UPDATE workout_session
		SET status = $1, ended_at = $2, duration_seconds = $3, calories = $4
		WHERE id = $5 AND status = $6`,
		StatusCompleted, params.EndedAt, params.DurationSeconds, params.Calories,
		params.ID, StatusActive,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		if _, getErr := r.Get(ctx, params.ID); getErr != nil {
			return getErr
		}
		return ErrSessionNotActive
	}

	return nil
}

// Abandon moves a session from active to abandoned, with the same
// compare-and-set semantics as Complete.
func (r *Repo) Abandon(ctx context.Context, id int, endedAt time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.abandon")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx,
		`UPDATE workout_session
		SET status = $1, ended_at = $2
		WHERE id = $3 AND status = $4`,
		StatusAbandoned, endedAt, id, StatusActive,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		if _, getErr := r.Get(ctx, id); getErr != nil {
			return getErr
		}
		return ErrSessionNotActive
	}

	return nil
}

// SaveScore persists the final score and total volume of a completed
// session. The breakdown is stored as JSON for later retrieval.
func (r *Repo) SaveScore(ctx context.Context, sessionID, finalScore int, breakdown []byte, totalVolume float64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.saveScore")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx,
		`UPDATE workout_session
		SET final_score = $1, score_breakdown = $2, total_volume = $3
		WHERE id = $4`,
		finalScore, breakdown, totalVolume, sessionID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// CompletionDates returns the start timestamps of all completed sessions
// of a user, newest first.
func (r *Repo) CompletionDates(ctx context.Context, userID int) (_ []time.Time, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.completionDates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT started_at FROM workout_session
		WHERE user_id = $1 AND status = $2
		ORDER BY started_at DESC`,
		userID, StatusCompleted,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		dates = append(dates, d)
	}

	return dates, rows.Err()
}

func (r *Repo) CountCompleted(ctx context.Context, userID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.countCompleted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	err = r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM workout_session
		WHERE user_id = $1 AND status = $2`,
		userID, StatusCompleted,
	).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// PriorScores returns the scores of the most recent completed sessions of
// the same workout, excluding the given session, newest first.
func (r *Repo) PriorScores(ctx context.Context, userID int, workoutID string, excludeSessionID, limit int) (_ []ScoreRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.priorScores")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT id, final_score, ended_at FROM workout_session
		WHERE user_id = $1 AND workout_id = $2 AND status = $3
			AND id != $4 AND final_score IS NOT NULL
		ORDER BY ended_at DESC
		LIMIT $5`,
		userID, workoutID, StatusCompleted, excludeSessionID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []ScoreRecord
	for rows.Next() {
		var rec ScoreRecord
		if err := rows.Scan(&rec.SessionID, &rec.Score, &rec.CompletedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// PriorVolumes returns the total volumes of the most recent completed
// sessions of the same workout, excluding the given session, newest first.
func (r *Repo) PriorVolumes(ctx context.Context, userID int, workoutID string, excludeSessionID, limit int) (_ []float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.priorVolumes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT total_volume FROM workout_session
		WHERE user_id = $1 AND workout_id = $2 AND status = $3 AND id != $4
		ORDER BY ended_at DESC
		LIMIT $5`,
		userID, workoutID, StatusCompleted, excludeSessionID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var volumes []float64
	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		volumes = append(volumes, v)
	}

	return volumes, rows.Err()
}

// BreakdownJSON returns the persisted score breakdown of a session, or
// nil when the session has not been scored.
func (r *Repo) BreakdownJSON(ctx context.Context, sessionID int) (_ []byte, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.breakdownJSON")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var breakdown []byte
	err = r.db.QueryRow(ctx,
		`SELECT score_breakdown FROM workout_session WHERE id = $1`, sessionID,
	).Scan(&breakdown)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	return breakdown, nil
}

// LastExerciseAverages returns, per exercise, the average weight the user
// moved in the most recent completed session before the given time that
// contained that exercise.
func (r *Repo) LastExerciseAverages(ctx context.Context, userID int, before time.Time) (_ map[string]float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.lastExerciseAverages")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`WITH prior AS (
			SELECT sl.exercise_id, s.started_at, AVG(sl.kilos) AS avg_kilos
			FROM set_log sl
			JOIN workout_session s ON sl.session_id = s.id
			WHERE s.user_id = $1 AND s.status = $2 AND s.started_at < $3
			GROUP BY sl.exercise_id, s.id, s.started_at
		)
		SELECT DISTINCT ON (exercise_id) exercise_id, avg_kilos
		FROM prior
		ORDER BY exercise_id, started_at DESC`,
		userID, StatusCompleted, before,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	averages := map[string]float64{}
	for rows.Next() {
		var exerciseID string
		var avgKilos float64
		if err := rows.Scan(&exerciseID, &avgKilos); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		averages[exerciseID] = avgKilos
	}

	return averages, rows.Err()
}

// SetLogsForExercise returns the set logs of one exercise across the
// user's most recent completed sessions, newest session first. Within a
// session the sets keep their logged order.
func (r *Repo) SetLogsForExercise(ctx context.Context, userID int, exerciseID string, sessionLimit int) (_ []SetLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.setLogsForExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT
			sl.id, sl.session_id, sl.exercise_id, sl.planned_reps, sl.reps, sl.kilos,
			sl.planned_rest_seconds, sl.rest_seconds, sl.duration_seconds,
			sl.rpe, sl.completed, sl.created_at
		FROM set_log sl
		JOIN workout_session s ON sl.session_id = s.id
		WHERE s.user_id = $1 AND sl.exercise_id = $2 AND s.status = $3
			AND sl.session_id IN (
				SELECT s2.id
				FROM workout_session s2
				JOIN set_log sl2 ON sl2.session_id = s2.id
				WHERE s2.user_id = $1 AND sl2.exercise_id = $2 AND s2.status = $3
				GROUP BY s2.id
				ORDER BY MAX(s2.started_at) DESC
				LIMIT $4
			)
		ORDER BY s.started_at DESC, sl.created_at ASC, sl.id ASC`,
		userID, exerciseID, StatusCompleted, sessionLimit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSetLogs(rows)
}

// LifetimeTotals returns the total volume and total reps the user has
// accumulated across all completed sessions.
func (r *Repo) LifetimeTotals(ctx context.Context, userID int) (volume float64, reps int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.lifetimeTotals")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(ctx,
		`SELECT
			COALESCE(SUM(sl.kilos * sl.reps), 0),
			COALESCE(SUM(sl.reps), 0)
		FROM set_log sl
		JOIN workout_session s ON sl.session_id = s.id
		WHERE s.user_id = $1 AND s.status = $2`,
		userID, StatusCompleted,
	).Scan(&volume, &reps)
	if err != nil {
		return 0, 0, err
	}

	return volume, reps, nil
}

func scanSetLogs(rows pgx.Rows) ([]SetLog, error) {
	var sets []SetLog
	for rows.Next() {
		var sl SetLog
		if err := rows.Scan(
			&sl.ID, &sl.SessionID, &sl.ExerciseID, &sl.PlannedReps, &sl.Reps, &sl.Kilos,
			&sl.PlannedRestSeconds, &sl.RestSeconds, &sl.DurationSeconds,
			&sl.RPE, &sl.Completed, &sl.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		sets = append(sets, sl)
	}
	return sets, rows.Err()
}
