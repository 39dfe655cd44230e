package recommendation

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/fundwise/sipadvisor/internal/errors"
	"github.com/fundwise/sipadvisor/internal/logger"
	"github.com/fundwise/sipadvisor/internal/models"
	"github.com/fundwise/sipadvisor/internal/monitoring"
	"github.com/fundwise/sipadvisor/internal/validator"
)

// Fund universe size fetched for dynamic selection when the caller does
// not cap the fund count.
const defaultFetchCount = 15

// Engine generates SIP recommendations from a risk profile, horizon and
// monthly amount.
type Engine struct {
	provider FundDataProvider
	log      *logger.Logger
}

func NewEngine(provider FundDataProvider, log *logger.Logger) *Engine {
	return &Engine{provider: provider, log: log}
}

// GenerateRecommendations runs the full pipeline: validation, allocation,
// duration adjustment, projection, fund selection and assembly.
func (e *Engine) GenerateRecommendations(ctx context.Context, req *models.InvestmentRequest) (*models.RecommendationResult, error) {
	start := time.Now()

	v := validator.New()
	v.ValidateInvestmentRequest(req)
	if !v.Valid() {
		return nil, apperrors.NewInvalidRequestError("Invalid investment request", v.Errors)
	}

	alloc, err := BaseAllocation(req.RiskProfile)
	if err != nil {
		return nil, err
	}
	alloc = AdjustForDuration(alloc, req.RiskProfile, req.InvestmentYears)

	projection := Project(req.MonthlyInvestment, req.InvestmentYears, alloc)

	fetchCount := defaultFetchCount
	if req.MaxFunds != nil {
		fetchCount = *req.MaxFunds
	}

	var sel selection
	if len(req.SectorPreferences) > 0 {
		sel = selectSectorFunds(ctx, e.provider, req)
	} else {
		sel = selectGeneralFunds(ctx, e.provider, req, alloc, fetchCount)
	}

	if sel.usedFallback {
		monitoring.StaticFallbacks.Inc()
	}

	recs := sel.recommendations
	if req.MaxFunds != nil {
		recs = applyMaxFunds(recs, *req.MaxFunds, req.MonthlyInvestment)
	}

	result := &models.RecommendationResult{
		Recommendations:    recs,
		PortfolioSummary:   projection.Summary,
		InvestmentStrategy: buildStrategy(req.RiskProfile, req.InvestmentYears, req.SectorPreferences),
		DataSource:         sel.dataSource,
		FundCountInfo:      fundCountInfo(req.MaxFunds, len(recs), req.MonthlyInvestment),
	}

	monitoring.RecommendationRuns.WithLabelValues(string(req.RiskProfile)).Inc()
	e.log.LogRecommendation(string(req.RiskProfile), len(recs), req.MonthlyInvestment, time.Since(start))

	return result, nil
}

// CompareScenarios runs the projection for each scenario and collects
// the portfolio summaries side by side.
func (e *Engine) CompareScenarios(ctx context.Context, scenarios []models.Scenario) ([]models.ScenarioComparison, error) {
	if len(scenarios) < 2 {
		return nil, apperrors.NewValidationError("Please provide at least 2 scenarios to compare", nil)
	}

	comparisons := make([]models.ScenarioComparison, 0, len(scenarios))
	for i, scenario := range scenarios {
		result, err := e.GenerateRecommendations(ctx, &models.InvestmentRequest{
			RiskProfile:       scenario.RiskProfile,
			InvestmentYears:   scenario.InvestmentYears,
			MonthlyInvestment: scenario.MonthlyInvestment,
		})
		if err != nil {
			return nil, err
		}

		name := scenario.Name
		if name == "" {
			name = fmt.Sprintf("Scenario %d", i+1)
		}
		comparisons = append(comparisons, models.ScenarioComparison{
			ScenarioName:     name,
			Input:            scenario,
			PortfolioSummary: result.PortfolioSummary,
		})
	}

	return comparisons, nil
}
