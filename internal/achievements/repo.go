package achievements

import (
	"context"
	"fmt"

	"github.com/setforge/setforge/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Exists(ctx context.Context, userID int, achievementID string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.achievements.exists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var exists bool
	err = r.db.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM unlocked_achievement
			WHERE user_id = $1 AND achievement_id = $2
		)`, userID, achievementID,
	).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// Insert stores a new unlock. The table carries a uniqueness constraint
// on (user_id, achievement_id) and the conflict is swallowed, so a
// concurrent double unlock ends up as a single row either way.
func (r *Repo) Insert(ctx context.Context, unlocked Unlocked) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.achievements.insert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx,
		`INSERT INTO unlocked_achievement (user_id, achievement_id, unlocked_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, achievement_id) DO NOTHING`,
		unlocked.UserID, unlocked.AchievementID, unlocked.UnlockedAt,
	)
	return err
}

func (r *Repo) ListForUser(ctx context.Context, userID int) (_ []Unlocked, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.achievements.listForUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT user_id, achievement_id, unlocked_at
		FROM unlocked_achievement
		WHERE user_id = $1
		ORDER BY unlocked_at ASC`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var unlocked []Unlocked
	for rows.Next() {
		var u Unlocked
		if err := rows.Scan(&u.UserID, &u.AchievementID, &u.UnlockedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		unlocked = append(unlocked, u)
	}

	return unlocked, rows.Err()
}
