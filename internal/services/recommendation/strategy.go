package recommendation

import (
	"fmt"

	"github.com/fundwise/sipadvisor/internal/models"
)

var strategyText = map[models.RiskProfile]map[string]string{
	models.RiskLow: {
		"short":  "Focus on capital preservation with debt funds. Minimal equity exposure.",
		"medium": "Balanced approach with majority in debt, some hybrid funds for growth.",
		"long":   "Gradual equity exposure while maintaining debt foundation for stability.",
	},
	models.RiskMedium: {
		"short":  "Balanced portfolio with equal focus on stability and growth.",
		"medium": "Diversified across debt, hybrid, and equity for optimal risk-return.",
		"long":   "Increased equity allocation to maximize long-term wealth creation.",
	},
	models.RiskHigh: {
		"short":  "Aggressive but cautious - higher equity with safety net.",
		"medium": "Equity-focused portfolio with diversification across market caps.",
		"long":   "Maximum equity exposure across large, mid, and small cap funds.",
	},
}

func durationBucket(years int) string {
	switch {
	case years <= 3:
		return "short"
	case years >= 10:
		return "long"
	default:
		return "medium"
	}
}

// buildStrategy assembles the advisory text for a recommendation run.
// Sector-concentrated portfolios get an extra warning.
func buildStrategy(profile models.RiskProfile, years int, sectors []string) models.InvestmentStrategy {
	strategy := models.InvestmentStrategy{
		Strategy:    strategyText[profile][durationBucket(years)],
		Rebalancing: "Review and rebalance portfolio annually",
		SIPBenefits: []string{
			"Rupee cost averaging reduces market timing risk",
			"Disciplined investment approach",
			"Power of compounding over time",
			"Flexibility to increase SIP amount",
		},
	}

	if len(sectors) > 0 {
		if len(sectors) == 1 {
			strategy.SectorWarning = fmt.Sprintf(
				"You've selected only the %s sector. Sector-specific investments carry higher risk due to lack of diversification. Consider adding 2-3 more sectors for better risk management.",
				sectors[0])
		}
		strategy.SectorNote = "Sector funds can be volatile. Monitor sector performance regularly and consider rebalancing if any sector becomes overweight in your portfolio."
	}

	return strategy
}
