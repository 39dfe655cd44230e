package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	apperrors "github.com/fundwise/sipadvisor/internal/errors"
	"github.com/fundwise/sipadvisor/internal/models"
	"github.com/fundwise/sipadvisor/internal/validator"
)

// UserProfileStore persists and retrieves user profiles.
type UserProfileStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// SavedRecommendationStore reads persisted recommendations.
type SavedRecommendationStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.SavedRecommendation, error)
}

// defaultRecommendationLimit covers any portfolio this service produces;
// callers page with ?limit= and ?offset= when they want less.
const defaultRecommendationLimit = 100

type UserHandler struct {
	users     UserProfileStore
	savedRecs SavedRecommendationStore
	engine    RecommendationEngine
}

func NewUserHandler(users UserProfileStore, savedRecs SavedRecommendationStore, engine RecommendationEngine) *UserHandler {
	return &UserHandler{users: users, savedRecs: savedRecs, engine: engine}
}

// CreateProfile registers a new user profile. Duplicate emails are
// rejected with a conflict.
func (h *UserHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeError(w, r, apperrors.NewValidationError("Invalid request body", err))
		return
	}

	v := validator.New()
	v.ValidateUser(&user)
	if !v.Valid() {
		writeError(w, r, apperrors.NewInvalidRequestError("Invalid user profile", v.Errors))
		return
	}

	if err := h.users.Create(r.Context(), &user); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User profile created successfully",
		"user":    user,
	})
}

// GetProfile returns one user profile by id.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, apperrors.NewValidationError("Invalid user ID", err))
		return
	}

	user, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// GetRecommendations returns a user's saved recommendations together
// with a freshly projected portfolio summary for their stored
// investment parameters.
func (h *UserHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, apperrors.NewValidationError("Invalid user ID", err))
		return
	}

	user, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = defaultRecommendationLimit
	}
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	saved, err := h.savedRecs.ListByUser(r.Context(), id, limit, offset)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.engine.GenerateRecommendations(r.Context(), &models.InvestmentRequest{
		RiskProfile:       user.RiskProfile,
		InvestmentYears:   user.InvestmentYears,
		MonthlyInvestment: user.MonthlyInvestment,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user":                user,
		"recommendations":     saved,
		"portfolio_summary":   result.PortfolioSummary,
		"investment_strategy": result.InvestmentStrategy,
	})
}
