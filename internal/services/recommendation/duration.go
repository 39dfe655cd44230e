package recommendation

import "github.com/fundwise/sipadvisor/internal/models"

// AdjustForDuration shifts the allocation for the investment horizon.
// Long horizons (>= 10 years) move conservative profiles toward equity;
// short horizons (<= 3 years) pull aggressive profiles back toward debt.
// The three target percentages always still sum to 100.
func AdjustForDuration(alloc models.Allocation, profile models.RiskProfile, years int) models.Allocation {
	switch {
	case years >= 10:
		switch profile {
		case models.RiskLow:
			alloc.Debt.TargetPercent = 50
			alloc.Hybrid.TargetPercent = 30
			alloc.Equity.TargetPercent = 20
		case models.RiskMedium:
			alloc.Debt.TargetPercent = 30
			alloc.Hybrid.TargetPercent = 30
			alloc.Equity.TargetPercent = 40
		}
	case years <= 3:
		switch profile {
		case models.RiskHigh:
			alloc.Debt.TargetPercent = 20
			alloc.Hybrid.TargetPercent = 30
			alloc.Equity.TargetPercent = 50
		case models.RiskMedium:
			alloc.Debt.TargetPercent = 50
			alloc.Hybrid.TargetPercent = 30
			alloc.Equity.TargetPercent = 20
		}
	}
	return alloc
}
