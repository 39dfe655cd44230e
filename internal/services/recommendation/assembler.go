package recommendation

import (
	"fmt"
	"math"
	"sort"

	"github.com/fundwise/sipadvisor/internal/models"
)

// RoundSIPAmount rounds a monthly amount to a clean SIP value: nearest
// 10 below 100, nearest 50 below 1000, nearest 100 otherwise.
func RoundSIPAmount(amount float64) float64 {
	switch {
	case amount < 100:
		return math.Round(amount/10) * 10
	case amount < 1000:
		return math.Round(amount/50) * 50
	default:
		return math.Round(amount/100) * 100
	}
}

// applyMaxFunds truncates recommendations to maxFunds, keeping the
// largest allocations, then renormalizes percentages to 100 and
// re-rounds the monthly amounts.
func applyMaxFunds(recs []models.Recommendation, maxFunds int, monthly float64) []models.Recommendation {
	if len(recs) <= maxFunds {
		return recs
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].AllocationPercent > recs[j].AllocationPercent
	})
	recs = recs[:maxFunds]

	var total float64
	for _, rec := range recs {
		total += rec.AllocationPercent
	}
	for i := range recs {
		recs[i].AllocationPercent = recs[i].AllocationPercent / total * 100
		recs[i].MonthlyInvestment = RoundSIPAmount(monthly * recs[i].AllocationPercent / 100)
	}
	return recs
}

// fundCountInfo explains a shortfall against the requested fund count.
// Returns nil when the request was met.
func fundCountInfo(maxFunds *int, showing int, monthly float64) *models.FundCountInfo {
	if maxFunds == nil || showing >= *maxFunds {
		return nil
	}

	info := &models.FundCountInfo{
		Requested: *maxFunds,
		Showing:   showing,
		Reason:    "optimal_diversification",
		Message: fmt.Sprintf(
			"Showing %d out of %d requested funds based on optimal portfolio diversification for your risk profile.",
			showing, *maxFunds),
	}

	minSIPForMaxFunds := float64(*maxFunds) * 500
	if monthly < minSIPForMaxFunds {
		info.Suggestion = fmt.Sprintf(
			"To invest in more funds, consider increasing your SIP amount to at least %.0f/month (500 minimum per fund).",
			minSIPForMaxFunds)
	}
	return info
}
