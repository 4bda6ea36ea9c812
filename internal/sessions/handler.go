package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/setforge/setforge/internal/telemetry/metrics"
	"github.com/setforge/setforge/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=sessions_test

type sessionsRepo interface {
	Start(ctx context.Context, session Session) (*Session, error)
	Get(ctx context.Context, id int) (*Session, error)
	AddSetLog(ctx context.Context, set SetLog) (*SetLog, error)
	Abandon(ctx context.Context, id int, endedAt time.Time) error
}

type liveStatsCalculator interface {
	Calculate(ctx context.Context, sessionID int) (*LiveStats, error)
}

type Handler struct {
	repo      sessionsRepo
	liveStats liveStatsCalculator
	metrics   *metrics.Manager
	now       func() time.Time
}

func NewHandler(repo sessionsRepo, liveStats liveStatsCalculator, metrics *metrics.Manager) *Handler {
	return &Handler{
		repo:      repo,
		liveStats: liveStats,
		metrics:   metrics,
		now:       time.Now,
	}
}

type startSessionRequest struct {
	UserID                 int    `json:"userId"`
	WorkoutID              string `json:"workoutId"`
	PlannedDurationSeconds int    `json:"plannedDurationSeconds"`
}

func (handler *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("start session, unmarshal json params: %s", err)
		http.Error(w, "add session failed", http.StatusBadRequest)
		return
	}
	if req.UserID <= 0 || req.WorkoutID == "" {
		http.Error(w, "error, user id or workout id empty", http.StatusBadRequest)
		return
	}

	session, err := handler.repo.Start(r.Context(), Session{
		UserID:                 req.UserID,
		WorkoutID:              req.WorkoutID,
		StartedAt:              handler.now(),
		PlannedDurationSeconds: req.PlannedDurationSeconds,
	})
	if err != nil {
		log.Errorf("failed to start session: %s", err)
		http.Error(w, "error, failed to start session", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterSessionsStarted.Inc()

	sessionJson, err := json.Marshal(session)
	if err != nil {
		log.Errorf("marshal started session: %s", err)
		http.Error(w, "error, failed to start session", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, sessionJson, http.StatusCreated)
}

func (handler *Handler) HandleAddSet(w http.ResponseWriter, r *http.Request) {
	sessionID, err := sessionIDParam(r)
	if err != nil {
		http.Error(w, "error, session id invalid", http.StatusBadRequest)
		return
	}

	var set SetLog
	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		log.Errorf("add set log, unmarshal json params: %s", err)
		http.Error(w, "add set log failed", http.StatusBadRequest)
		return
	}
	if set.ExerciseID == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}
	if set.RPE != nil && (*set.RPE < 1 || *set.RPE > 10) {
		http.Error(w, "error, rpe out of range", http.StatusBadRequest)
		return
	}

	session, err := handler.repo.Get(r.Context(), sessionID)
	if err != nil {
		writeSessionError(w, "add set log", err)
		return
	}
	if session.Status != StatusActive {
		http.Error(w, "error, session not active", http.StatusConflict)
		return
	}

	set.SessionID = sessionID
	if set.CreatedAt.IsZero() {
		set.CreatedAt = handler.now()
	}

	added, err := handler.repo.AddSetLog(r.Context(), set)
	if err != nil {
		log.Errorf("failed to add set log: %s", err)
		http.Error(w, "error, failed to add set log", http.StatusInternalServerError)
		return
	}

	setJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("marshal added set log: %s", err)
		http.Error(w, "error, failed to add set log", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, setJson, http.StatusCreated)
}

func (handler *Handler) HandleAbandon(w http.ResponseWriter, r *http.Request) {
	sessionID, err := sessionIDParam(r)
	if err != nil {
		http.Error(w, "error, session id invalid", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Abandon(r.Context(), sessionID, handler.now()); err != nil {
		writeSessionError(w, "abandon session", err)
		return
	}

	handler.metrics.CounterSessionsAbandoned.Inc()

	pkg.WriteTextResponseOK(w, fmt.Sprintf("abandoned:%d", sessionID))
}

func (handler *Handler) HandleLiveStats(w http.ResponseWriter, r *http.Request) {
	sessionID, err := sessionIDParam(r)
	if err != nil {
		http.Error(w, "error, session id invalid", http.StatusBadRequest)
		return
	}

	stats, err := handler.liveStats.Calculate(r.Context(), sessionID)
	if err != nil {
		writeSessionError(w, "live stats", err)
		return
	}

	handler.metrics.CounterLiveStatsPolls.Inc()

	statsJson, err := json.Marshal(stats)
	if err != nil {
		log.Errorf("marshal live stats: %s", err)
		http.Error(w, "error, failed to get live stats", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, statsJson)
}

func sessionIDParam(r *http.Request) (int, error) {
	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		return 0, errors.New("session id empty")
	}
	return strconv.Atoi(idStr)
}

func writeSessionError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		http.Error(w, "error, session not found", http.StatusNotFound)
	case errors.Is(err, ErrSessionNotActive):
		http.Error(w, "error, session not active", http.StatusConflict)
	case errors.Is(err, ErrSessionNotCompleted):
		http.Error(w, "error, session not completed", http.StatusConflict)
	default:
		log.Errorf("%s: %s", op, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
