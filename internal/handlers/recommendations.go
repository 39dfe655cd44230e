package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/fundwise/sipadvisor/internal/catalog"
	apperrors "github.com/fundwise/sipadvisor/internal/errors"
	"github.com/fundwise/sipadvisor/internal/logger"
	"github.com/fundwise/sipadvisor/internal/models"
	"github.com/fundwise/sipadvisor/internal/validator"
)

// RecommendationEngine is the recommendation pipeline as the handlers
// consume it.
type RecommendationEngine interface {
	GenerateRecommendations(ctx context.Context, req *models.InvestmentRequest) (*models.RecommendationResult, error)
	CompareScenarios(ctx context.Context, scenarios []models.Scenario) ([]models.ScenarioComparison, error)
}

// UserStore persists user profiles.
type UserStore interface {
	Upsert(ctx context.Context, user *models.User) error
}

// RecommendationStore persists generated recommendations per user.
type RecommendationStore interface {
	Replace(ctx context.Context, userID uuid.UUID, recs []models.Recommendation) error
}

type RecommendationHandler struct {
	engine RecommendationEngine
	users  UserStore
	recs   RecommendationStore
	log    *logger.Logger
}

func NewRecommendationHandler(engine RecommendationEngine, users UserStore, recs RecommendationStore, log *logger.Logger) *RecommendationHandler {
	return &RecommendationHandler{engine: engine, users: users, recs: recs, log: log}
}

type generateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	models.InvestmentRequest
}

type generateResponse struct {
	UserID             uuid.UUID                 `json:"user_id"`
	Recommendations    []models.Recommendation   `json:"recommendations"`
	PortfolioSummary   models.PortfolioSummary   `json:"portfolio_summary"`
	InvestmentStrategy models.InvestmentStrategy `json:"investment_strategy"`
	DataSource         *models.DataSourceInfo    `json:"data_source,omitempty"`
	FundCountInfo      *models.FundCountInfo     `json:"fund_count_info,omitempty"`
}

// Generate runs the recommendation pipeline, upserts the requesting
// user and replaces their saved recommendations.
func (h *RecommendationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, apperrors.NewValidationError("Invalid request body", err))
		return
	}

	v := validator.New()
	v.Check(req.Name != "", "name", "must be provided")
	v.ValidateEmail(req.Email)
	if !v.Valid() {
		writeError(w, r, apperrors.NewInvalidRequestError("Invalid investment request", v.Errors))
		return
	}

	result, err := h.engine.GenerateRecommendations(r.Context(), &req.InvestmentRequest)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user := &models.User{
		Name:              req.Name,
		Email:             req.Email,
		RiskProfile:       req.RiskProfile,
		InvestmentYears:   req.InvestmentYears,
		MonthlyInvestment: req.MonthlyInvestment,
	}
	if err := h.users.Upsert(r.Context(), user); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.recs.Replace(r.Context(), user.ID, result.Recommendations); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{
		UserID:             user.ID,
		Recommendations:    result.Recommendations,
		PortfolioSummary:   result.PortfolioSummary,
		InvestmentStrategy: result.InvestmentStrategy,
		DataSource:         result.DataSource,
		FundCountInfo:      result.FundCountInfo,
	})
}

// CompareScenarios projects two or more scenarios side by side.
func (h *RecommendationHandler) CompareScenarios(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Scenarios []models.Scenario `json:"scenarios"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, apperrors.NewValidationError("Invalid request body", err))
		return
	}

	comparisons, err := h.engine.CompareScenarios(r.Context(), req.Scenarios)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"comparisons": comparisons})
}

// Sectors lists the selectable sector options.
func (h *RecommendationHandler) Sectors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"sectors": catalog.SectorOptions()})
}
