package recommend

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/setforge/setforge/internal/telemetry/metrics"
	"github.com/setforge/setforge/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=recommend_test

type recommender interface {
	Recommend(ctx context.Context, userID int, exerciseID string, reason Reason) (*Recommendation, error)
}

type Handler struct {
	recommender recommender
	metrics     *metrics.Manager
}

func NewHandler(recommender recommender, metrics *metrics.Manager) *Handler {
	return &Handler{
		recommender: recommender,
		metrics:     metrics,
	}
}

type recommendationRequest struct {
	UserID     int    `json:"userId"`
	ExerciseID string `json:"exerciseId"`
	Reason     Reason `json:"reason"`
}

func (handler *Handler) HandleRecommend(w http.ResponseWriter, r *http.Request) {
	var req recommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("recommendation, unmarshal json params: %s", err)
		http.Error(w, "recommendation failed", http.StatusBadRequest)
		return
	}
	if req.UserID <= 0 || req.ExerciseID == "" {
		http.Error(w, "error, user id or exercise id empty", http.StatusBadRequest)
		return
	}
	if req.Reason == "" {
		req.Reason = ReasonPreference
	}
	if !req.Reason.IsValid() {
		http.Error(w, "error, reason invalid", http.StatusBadRequest)
		return
	}

	recommendation, err := handler.recommender.Recommend(r.Context(), req.UserID, req.ExerciseID, req.Reason)
	if err != nil {
		log.Errorf("failed to get recommendation: %s", err)
		http.Error(w, "error, failed to get recommendation", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterRecommendations.Inc()

	recommendationJson, err := json.Marshal(recommendation)
	if err != nil {
		log.Errorf("marshal recommendation: %s", err)
		http.Error(w, "error, failed to get recommendation", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, recommendationJson)
}
