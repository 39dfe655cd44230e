package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	apperrors "github.com/fundwise/sipadvisor/internal/errors"
	"github.com/fundwise/sipadvisor/internal/models"
	"github.com/fundwise/sipadvisor/internal/services/holdings"
)

// FundDataService serves indicative NAV, performance and review data.
type FundDataService interface {
	CompleteFundData(fundName string) models.CompleteFundData
	PerformanceSeries(fundName, period string) []models.PerformancePoint
	Reviews(fundName string) models.FundReviews
}

// HoldingsService resolves representative portfolio composition.
type HoldingsService interface {
	Lookup(q holdings.Query) (*models.HoldingsReport, bool)
}

type FundHandler struct {
	fundData FundDataService
	holdings HoldingsService
}

func NewFundHandler(fundData FundDataService, holdings HoldingsService) *FundHandler {
	return &FundHandler{fundData: fundData, holdings: holdings}
}

// Performance serves NAV, trailing returns, a historical series and
// reviews for one fund. The period query parameter defaults to 1Y.
func (h *FundHandler) Performance(w http.ResponseWriter, r *http.Request) {
	fundName := mux.Vars(r)["fund"]

	period := r.URL.Query().Get("period")
	if period == "" {
		period = "1Y"
	}

	data := h.fundData.CompleteFundData(fundName)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"fund_name":       fundName,
		"current_nav":     data.CurrentNAV,
		"performance":     data.Performance,
		"historical_data": h.fundData.PerformanceSeries(fundName, period),
		"reviews":         data.Reviews,
		"last_updated":    data.LastUpdated,
	})
}

// Reviews serves investor reviews for one fund.
func (h *FundHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.fundData.Reviews(mux.Vars(r)["fund"]))
}

type holdingsRequest struct {
	FundName string `json:"fund_name"`
	FundType string `json:"fund_type,omitempty"`
	Sector   string `json:"sector,omitempty"`
}

// Holdings resolves representative holdings for a fund descriptor.
func (h *FundHandler) Holdings(w http.ResponseWriter, r *http.Request) {
	var req holdingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, apperrors.NewValidationError("Invalid request body", err))
		return
	}
	if req.FundName == "" && req.Sector == "" {
		writeError(w, r, apperrors.NewValidationError("fund_name or sector is required", nil))
		return
	}

	report, ok := h.holdings.Lookup(holdings.Query{
		FundName: req.FundName,
		FundType: req.FundType,
		Sector:   req.Sector,
	})
	if !ok {
		writeError(w, r, apperrors.NewNotFoundError("No holdings data available for this fund", nil))
		return
	}

	writeJSON(w, http.StatusOK, report)
}
