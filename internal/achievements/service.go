package achievements

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

type unlockedStore interface {
	Exists(ctx context.Context, userID int, achievementID string) (bool, error)
	Insert(ctx context.Context, unlocked Unlocked) error
	ListForUser(ctx context.Context, userID int) ([]Unlocked, error)
}

// Service sits at the write boundary: the engine stays pure, the
// service owns the existence check and the insert.
type Service struct {
	engine *Engine
	store  unlockedStore
	now    func() time.Time
}

func NewService(engine *Engine, store unlockedStore) *Service {
	return &Service{
		engine: engine,
		store:  store,
		now:    time.Now,
	}
}

// EvaluateAndUnlock runs the engine over the snapshot and persists
// every qualifying achievement the user does not already have. It
// returns only the newly unlocked definitions.
func (s *Service) EvaluateAndUnlock(ctx context.Context, snapshot Snapshot) ([]Definition, error) {
	candidates := s.engine.Evaluate(snapshot)
	if len(candidates) == 0 {
		return nil, nil
	}

	var newlyUnlocked []Definition
	for _, def := range candidates {
		exists, err := s.store.Exists(ctx, snapshot.UserID, def.ID)
		if err != nil {
			return nil, fmt.Errorf("check achievement %s: %w", def.ID, err)
		}
		if exists {
			continue
		}

		if err := s.store.Insert(ctx, Unlocked{
			UserID:        snapshot.UserID,
			AchievementID: def.ID,
			UnlockedAt:    s.now(),
		}); err != nil {
			return nil, fmt.Errorf("insert achievement %s: %w", def.ID, err)
		}

		log.Debugf("user %d unlocked achievement: %s", snapshot.UserID, def.ID)
		newlyUnlocked = append(newlyUnlocked, def)
	}

	return newlyUnlocked, nil
}

// ListForUser returns the user's unlocked achievements joined with
// their catalog definitions. Unlocks whose definition has left the
// catalog are skipped.
func (s *Service) ListForUser(ctx context.Context, userID int) ([]UserAchievement, error) {
	unlocked, err := s.store.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	defsByID := map[string]Definition{}
	for _, def := range s.engine.catalog {
		defsByID[def.ID] = def
	}

	var userAchievements []UserAchievement
	for _, u := range unlocked {
		def, ok := defsByID[u.AchievementID]
		if !ok {
			log.Warnf("unlocked achievement %s has no catalog definition, skipping", u.AchievementID)
			continue
		}
		userAchievements = append(userAchievements, UserAchievement{
			Definition: def,
			UnlockedAt: u.UnlockedAt,
		})
	}

	return userAchievements, nil
}

// UserAchievement is an unlocked achievement together with its
// catalog definition.
type UserAchievement struct {
	Definition
	UnlockedAt time.Time `json:"unlockedAt"`
}
