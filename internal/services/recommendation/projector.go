package recommendation

import (
	"math"

	"github.com/fundwise/sipadvisor/internal/models"
)

// sipFutureValue computes the future value of a monthly SIP at the
// given annual return percentage. A zero rate degenerates to the sum of
// contributions.
func sipFutureValue(monthly float64, months int, annualReturnPct float64) float64 {
	monthlyRate := annualReturnPct / 100 / 12
	if monthlyRate == 0 {
		return monthly * float64(months)
	}
	return monthly * ((math.Pow(1+monthlyRate, float64(months)) - 1) / monthlyRate) * (1 + monthlyRate)
}

// Project computes per-category and portfolio-level expected outcomes.
// Each category's expected value is the whole-SIP future value at that
// category's return, scaled by the category weight.
func Project(monthly float64, years int, alloc models.Allocation) models.Projection {
	months := years * 12

	categories := make([]models.CategoryProjection, 0, 3)
	var totalExpected float64

	for _, leg := range alloc.Categories() {
		futureValue := sipFutureValue(monthly, months, leg.ExpectedReturn)

		weight := leg.TargetPercent / 100
		categoryMonthly := monthly * weight
		categoryValue := futureValue * weight

		categories = append(categories, models.CategoryProjection{
			Category:          leg.Category,
			MonthlyInvestment: categoryMonthly,
			TotalInvested:     categoryMonthly * float64(months),
			ExpectedValue:     categoryValue,
			ExpectedReturnPct: leg.ExpectedReturn,
			AllocationPercent: leg.TargetPercent,
			Funds:             leg.Funds,
		})
		totalExpected += categoryValue
	}

	totalInvested := monthly * float64(months)
	gains := totalExpected - totalInvested

	return models.Projection{
		Categories: categories,
		Summary: models.PortfolioSummary{
			TotalMonthlyInvestment: monthly,
			TotalInvested:          totalInvested,
			ExpectedPortfolioValue: totalExpected,
			ExpectedGains:          gains,
			OverallReturnPercent:   gains / totalInvested * 100,
		},
	}
}
