package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/setforge/setforge/internal/sessions"
	"github.com/setforge/setforge/internal/streaks"
	"github.com/setforge/setforge/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=scoring_test

type summaryService interface {
	Finalize(ctx context.Context, params FinalizeParams) (*SessionSummary, error)
	Summary(ctx context.Context, sessionID int) (*SessionSummary, error)
	Streaks(ctx context.Context, userID int) (streaks.Streaks, error)
}

type Handler struct {
	service summaryService
}

func NewHandler(service summaryService) *Handler {
	return &Handler{service: service}
}

type completeSessionRequest struct {
	DurationSeconds int `json:"durationSeconds"`
	Calories        int `json:"calories"`
}

func (handler *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	sessionID, err := idParam(r)
	if err != nil {
		http.Error(w, "error, session id invalid", http.StatusBadRequest)
		return
	}

	// body is optional, an empty POST completes with measured duration
	var req completeSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Errorf("complete session, unmarshal json params: %s", err)
		http.Error(w, "complete session failed", http.StatusBadRequest)
		return
	}

	summary, err := handler.service.Finalize(r.Context(), FinalizeParams{
		SessionID:       sessionID,
		DurationSeconds: req.DurationSeconds,
		Calories:        req.Calories,
	})
	if err != nil {
		writeScoringError(w, "complete session", err)
		return
	}

	summaryJson, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("marshal session summary: %s", err)
		http.Error(w, "error, failed to complete session", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, summaryJson)
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	sessionID, err := idParam(r)
	if err != nil {
		http.Error(w, "error, session id invalid", http.StatusBadRequest)
		return
	}

	summary, err := handler.service.Summary(r.Context(), sessionID)
	if err != nil {
		writeScoringError(w, "session summary", err)
		return
	}

	summaryJson, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("marshal session summary: %s", err)
		http.Error(w, "error, failed to get session summary", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, summaryJson)
}

func (handler *Handler) HandleStreaks(w http.ResponseWriter, r *http.Request) {
	userID, err := idParam(r)
	if err != nil {
		http.Error(w, "error, user id invalid", http.StatusBadRequest)
		return
	}

	userStreaks, err := handler.service.Streaks(r.Context(), userID)
	if err != nil {
		writeScoringError(w, "user streaks", err)
		return
	}

	streaksJson, err := json.Marshal(userStreaks)
	if err != nil {
		log.Errorf("marshal streaks: %s", err)
		http.Error(w, "error, failed to get streaks", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, streaksJson)
}

func idParam(r *http.Request) (int, error) {
	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		return 0, errors.New("id empty")
	}
	return strconv.Atoi(idStr)
}

func writeScoringError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, sessions.ErrSessionNotFound):
		http.Error(w, "error, session not found", http.StatusNotFound)
	case errors.Is(err, sessions.ErrSessionNotActive):
		http.Error(w, "error, session not active", http.StatusConflict)
	case errors.Is(err, sessions.ErrSessionNotCompleted):
		http.Error(w, "error, session not completed", http.StatusConflict)
	default:
		log.Errorf("%s: %s", op, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
