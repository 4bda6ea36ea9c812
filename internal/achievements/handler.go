package achievements

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/setforge/setforge/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=achievements_test

type achievementsService interface {
	ListForUser(ctx context.Context, userID int) ([]UserAchievement, error)
}

type Handler struct {
	catalog []Definition
	service achievementsService
}

func NewHandler(catalog []Definition, service achievementsService) *Handler {
	return &Handler{
		catalog: catalog,
		service: service,
	}
}

// HandleCatalog returns the full achievement catalog. The catalog is
// static, so this is safe to serve unauthenticated.
func (handler *Handler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	catalogJson, err := json.Marshal(handler.catalog)
	if err != nil {
		log.Errorf("marshal achievements catalog: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, catalogJson)
}

func (handler *Handler) HandleUserAchievements(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, user id invalid", http.StatusBadRequest)
		return
	}

	userAchievements, err := handler.service.ListForUser(r.Context(), userID)
	if err != nil {
		log.Errorf("list achievements for user %d: %s", userID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if userAchievements == nil {
		userAchievements = []UserAchievement{}
	}

	achievementsJson, err := json.Marshal(userAchievements)
	if err != nil {
		log.Errorf("marshal user achievements: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, achievementsJson)
}
