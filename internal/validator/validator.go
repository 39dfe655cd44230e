package validator

import (
	"regexp"

	"github.com/fundwise/sipadvisor/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Validator struct {
	Errors map[string]string
}

func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
	}
}

func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

func (v *Validator) ValidateEmail(email string) {
	v.Check(emailRegex.MatchString(email), "email", "must be a valid email address")
}

// ValidateInvestmentRequest applies the request constraints: a known risk
// profile, 1-30 investment years, at least 500/month, and an optional
// max_funds between 1 and 15.
func (v *Validator) ValidateInvestmentRequest(req *models.InvestmentRequest) {
	v.Check(req.RiskProfile.Valid(), "risk_profile",
		"must be 'low', 'medium', or 'high'")
	v.Check(req.InvestmentYears >= 1 && req.InvestmentYears <= 30, "investment_years",
		"must be between 1 and 30")
	v.Check(req.MonthlyInvestment >= 500, "monthly_investment",
		"must be at least 500")
	if req.MaxFunds != nil {
		v.Check(*req.MaxFunds >= 1 && *req.MaxFunds <= 15, "max_funds",
			"must be between 1 and 15")
	}
	v.Check(!(len(req.SectorPreferences) > 0 && req.IndexFundsOnly), "sector_preferences",
		"cannot be combined with index_funds_only")
	if req.SelectionMode != "" {
		v.Check(req.SelectionMode == models.SelectionCurated || req.SelectionMode == models.SelectionComprehensive,
			"fund_selection_mode", "must be 'curated' or 'comprehensive'")
	}
}

// ValidateUser checks profile fields before persistence.
func (v *Validator) ValidateUser(user *models.User) {
	v.Check(user.Name != "", "name", "must be provided")
	v.ValidateEmail(user.Email)
	v.Check(user.RiskProfile.Valid(), "risk_profile",
		"must be 'low', 'medium', or 'high'")
	v.Check(user.InvestmentYears >= 1 && user.InvestmentYears <= 30, "investment_years",
		"must be between 1 and 30")
	v.Check(user.MonthlyInvestment >= 500, "monthly_investment",
		"must be at least 500")
}
