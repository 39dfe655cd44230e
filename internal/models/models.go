package models

import (
	"time"

	"github.com/google/uuid"
)

// RiskProfile is one of low, medium, high.
type RiskProfile string

const (
	RiskLow    RiskProfile = "low"
	RiskMedium RiskProfile = "medium"
	RiskHigh   RiskProfile = "high"
)

func (p RiskProfile) Valid() bool {
	switch p {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// Title renders the profile for display, e.g. "Medium Risk".
func (p RiskProfile) Title() string {
	switch p {
	case RiskLow:
		return "Low Risk"
	case RiskMedium:
		return "Medium Risk"
	case RiskHigh:
		return "High Risk"
	}
	return string(p)
}

// FundSelectionMode controls how candidate funds are picked when no
// sector preference is given.
type FundSelectionMode string

const (
	SelectionCurated       FundSelectionMode = "curated"
	SelectionComprehensive FundSelectionMode = "comprehensive"
)

type FundCategory string

const (
	CategoryDebt   FundCategory = "debt"
	CategoryHybrid FundCategory = "hybrid"
	CategoryEquity FundCategory = "equity"
)

// Title renders the category the way recommendations display it.
func (c FundCategory) Title() string {
	switch c {
	case CategoryDebt:
		return "Debt Funds"
	case CategoryHybrid:
		return "Hybrid Funds"
	case CategoryEquity:
		return "Equity Funds"
	}
	return string(c)
}

type InvestmentRequest struct {
	RiskProfile       RiskProfile       `json:"risk_profile"`
	InvestmentYears   int               `json:"investment_years"`
	MonthlyInvestment float64           `json:"monthly_investment"`
	MaxFunds          *int              `json:"max_funds,omitempty"`
	SectorPreferences []string          `json:"sector_preferences,omitempty"`
	SelectionMode     FundSelectionMode `json:"fund_selection_mode,omitempty"`
	IndexFundsOnly    bool              `json:"index_funds_only,omitempty"`
}

// CategoryAllocation is one leg of the debt/hybrid/equity split for a
// risk profile. TargetPercent values for the three legs always sum to 100.
type CategoryAllocation struct {
	Category       FundCategory `json:"category"`
	TargetPercent  float64      `json:"target_percentage"`
	ExpectedReturn float64      `json:"expected_annual_return_percent"`
	Funds          []string     `json:"funds"`
}

type Allocation struct {
	Debt   CategoryAllocation `json:"debt"`
	Hybrid CategoryAllocation `json:"hybrid"`
	Equity CategoryAllocation `json:"equity"`
}

// Categories returns the three legs in debt, hybrid, equity order.
func (a Allocation) Categories() []CategoryAllocation {
	return []CategoryAllocation{a.Debt, a.Hybrid, a.Equity}
}

// FundCandidate is a fund considered for recommendation. Candidates come
// either from the static catalog or from the fund-data API (IsDynamic).
type FundCandidate struct {
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	ExpectedReturn float64 `json:"expected_return"`
	RiskLevel      string  `json:"risk_level"`
	Sector         string  `json:"sector,omitempty"`
	SchemeCode     string  `json:"scheme_code,omitempty"`
	NAV            float64 `json:"nav,omitempty"`
	NAVDate        string  `json:"nav_date,omitempty"`
	FundHouse      string  `json:"fund_house,omitempty"`
	CAGR3Y         float64 `json:"cagr_3y,omitempty"`
	IsDynamic      bool    `json:"is_dynamic,omitempty"`
}

type Recommendation struct {
	FundName          string  `json:"fund_name"`
	FundType          string  `json:"fund_type"`
	AllocationPercent float64 `json:"allocation_percentage"`
	MonthlyInvestment float64 `json:"monthly_investment"`
	ExpectedReturn    float64 `json:"expected_return"`
	RiskLevel         string  `json:"risk_level"`
	Sector            string  `json:"sector,omitempty"`
	SchemeCode        string  `json:"scheme_code,omitempty"`
	NAV               float64 `json:"nav,omitempty"`
	NAVDate           string  `json:"nav_date,omitempty"`
	FundHouse         string  `json:"fund_house,omitempty"`
	HasHoldings       bool    `json:"has_holdings"`
}

type PortfolioSummary struct {
	TotalMonthlyInvestment float64 `json:"total_monthly_investment"`
	TotalInvested          float64 `json:"total_invested"`
	ExpectedPortfolioValue float64 `json:"expected_portfolio_value"`
	ExpectedGains          float64 `json:"expected_gains"`
	OverallReturnPercent   float64 `json:"overall_return_percentage"`
}

// CategoryProjection is the projected outcome for one allocation leg.
type CategoryProjection struct {
	Category          FundCategory `json:"category"`
	MonthlyInvestment float64      `json:"monthly_investment"`
	TotalInvested     float64      `json:"total_invested"`
	ExpectedValue     float64      `json:"expected_value"`
	ExpectedReturnPct float64      `json:"expected_return_percentage"`
	AllocationPercent float64      `json:"allocation_percentage"`
	Funds             []string     `json:"funds"`
}

type Projection struct {
	Categories []CategoryProjection `json:"category_wise"`
	Summary    PortfolioSummary     `json:"portfolio_summary"`
}

// DataSourceInfo reports whether candidates came from the live fund-data
// API or from the static fallback tables, and why.
type DataSourceInfo struct {
	Source     string `json:"source"`
	APIName    string `json:"api_name,omitempty"`
	Reason     string `json:"reason,omitempty"`
	FundCount  int    `json:"fund_count,omitempty"`
	HasLiveNAV bool   `json:"has_live_nav,omitempty"`
}

// FundCountInfo explains a shortfall against a requested max_funds.
type FundCountInfo struct {
	Requested  int    `json:"requested"`
	Showing    int    `json:"showing"`
	Reason     string `json:"reason"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

type InvestmentStrategy struct {
	Strategy      string   `json:"strategy"`
	Rebalancing   string   `json:"rebalancing"`
	SIPBenefits   []string `json:"sip_benefits"`
	SectorWarning string   `json:"sector_warning,omitempty"`
	SectorNote    string   `json:"sector_note,omitempty"`
}

// RecommendationResult is the full output of one recommendation run.
type RecommendationResult struct {
	Recommendations    []Recommendation   `json:"recommendations"`
	PortfolioSummary   PortfolioSummary   `json:"portfolio_summary"`
	InvestmentStrategy InvestmentStrategy `json:"investment_strategy"`
	DataSource         *DataSourceInfo    `json:"data_source,omitempty"`
	FundCountInfo      *FundCountInfo     `json:"fund_count_info,omitempty"`
}

// Scenario is one input set for scenario comparison.
type Scenario struct {
	Name              string      `json:"name,omitempty"`
	RiskProfile       RiskProfile `json:"risk_profile"`
	InvestmentYears   int         `json:"investment_years"`
	MonthlyInvestment float64     `json:"monthly_investment"`
}

type ScenarioComparison struct {
	ScenarioName     string           `json:"scenario_name"`
	Input            Scenario         `json:"input"`
	PortfolioSummary PortfolioSummary `json:"portfolio_summary"`
}

// NAVPoint is a single dated NAV observation. Histories are newest-first.
type NAVPoint struct {
	Date time.Time `json:"date"`
	NAV  float64   `json:"nav"`
}

// FundDetails is the typed form of one fund-data API payload, decoded
// once at the client boundary.
type FundDetails struct {
	SchemeCode string     `json:"scheme_code"`
	Name       string     `json:"scheme_name"`
	Category   string     `json:"scheme_category"`
	FundHouse  string     `json:"fund_house"`
	History    []NAVPoint `json:"history"`
}

// LatestNAV returns the most recent observation, or a zero point when
// the history is empty.
func (d *FundDetails) LatestNAV() NAVPoint {
	if len(d.History) == 0 {
		return NAVPoint{}
	}
	return d.History[0]
}

type Holding struct {
	Name    string  `json:"name"`
	Percent float64 `json:"percentage"`
	Sector  string  `json:"sector"`
}

type HoldingsReport struct {
	Holdings    []Holding `json:"holdings"`
	DataSource  string    `json:"data_source"`
	LastUpdated string    `json:"last_updated"`
	Note        string    `json:"note,omitempty"`
}

type FundReview struct {
	User    string `json:"user"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

type FundReviews struct {
	AverageRating float64      `json:"average_rating"`
	TotalReviews  int          `json:"total_reviews"`
	Reviews       []FundReview `json:"reviews"`
}

type PerformancePoint struct {
	Date string  `json:"date"`
	NAV  float64 `json:"nav"`
}

type PeriodReturns struct {
	Days7   float64 `json:"7_days"`
	Month1  float64 `json:"1_month"`
	Months3 float64 `json:"3_months"`
	Months6 float64 `json:"6_months"`
	Year1   float64 `json:"1_year"`
}

type FundPerformance struct {
	CurrentNAV float64       `json:"current_nav"`
	Returns    PeriodReturns `json:"returns"`
}

type CompleteFundData struct {
	FundName    string          `json:"fund_name"`
	CurrentNAV  float64         `json:"current_nav"`
	Performance FundPerformance `json:"performance"`
	Reviews     FundReviews     `json:"reviews"`
	LastUpdated string          `json:"last_updated"`
}

type User struct {
	ID                uuid.UUID   `json:"id" db:"id"`
	Name              string      `json:"name" db:"name"`
	Email             string      `json:"email" db:"email"`
	RiskProfile       RiskProfile `json:"risk_profile" db:"risk_profile"`
	InvestmentYears   int         `json:"investment_years" db:"investment_years"`
	MonthlyInvestment float64     `json:"monthly_investment" db:"monthly_investment"`
	CreatedAt         time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at" db:"updated_at"`
}

type SavedRecommendation struct {
	ID                int64     `json:"id" db:"id"`
	UserID            uuid.UUID `json:"user_id" db:"user_id"`
	FundName          string    `json:"fund_name" db:"fund_name"`
	FundType          string    `json:"fund_type" db:"fund_type"`
	AllocationPercent float64   `json:"allocation_percentage" db:"allocation_percentage"`
	MonthlyInvestment float64   `json:"monthly_investment" db:"monthly_investment"`
	ExpectedReturn    float64   `json:"expected_return" db:"expected_return"`
	RiskLevel         string    `json:"risk_level" db:"risk_level"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}
