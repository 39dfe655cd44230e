package catalog

import "github.com/fundwise/sipadvisor/internal/models"

// Base asset allocations per risk profile, with Indian mutual funds as
// the curated candidate universe. The three target percentages for each
// profile sum to 100.
var baseAllocations = map[models.RiskProfile]models.Allocation{
	models.RiskLow: {
		Debt: models.CategoryAllocation{
			Category:       models.CategoryDebt,
			TargetPercent:  70,
			ExpectedReturn: 7.5,
			Funds: []string{
				"HDFC Short Term Debt Fund",
				"ICICI Prudential Corporate Bond Fund",
				"Axis Banking & PSU Debt Fund",
			},
		},
		Hybrid: models.CategoryAllocation{
			Category:       models.CategoryHybrid,
			TargetPercent:  20,
			ExpectedReturn: 9.0,
			Funds: []string{
				"HDFC Hybrid Debt Fund",
				"ICICI Prudential Equity & Debt Fund",
			},
		},
		Equity: models.CategoryAllocation{
			Category:       models.CategoryEquity,
			TargetPercent:  10,
			ExpectedReturn: 12.0,
			Funds: []string{
				"HDFC Index Fund - Nifty 50",
				"UTI Nifty Index Fund",
			},
		},
	},
	models.RiskMedium: {
		Debt: models.CategoryAllocation{
			Category:       models.CategoryDebt,
			TargetPercent:  40,
			ExpectedReturn: 7.5,
			Funds: []string{
				"HDFC Corporate Bond Fund",
				"Axis Corporate Debt Fund",
			},
		},
		Hybrid: models.CategoryAllocation{
			Category:       models.CategoryHybrid,
			TargetPercent:  30,
			ExpectedReturn: 10.0,
			Funds: []string{
				"HDFC Balanced Advantage Fund",
				"ICICI Prudential Balanced Advantage Fund",
			},
		},
		Equity: models.CategoryAllocation{
			Category:       models.CategoryEquity,
			TargetPercent:  30,
			ExpectedReturn: 13.5,
			Funds: []string{
				"Axis Bluechip Fund",
				"Mirae Asset Large Cap Fund",
				"HDFC Top 100 Fund",
			},
		},
	},
	models.RiskHigh: {
		Debt: models.CategoryAllocation{
			Category:       models.CategoryDebt,
			TargetPercent:  10,
			ExpectedReturn: 7.5,
			Funds: []string{
				"HDFC Short Term Debt Fund",
			},
		},
		Hybrid: models.CategoryAllocation{
			Category:       models.CategoryHybrid,
			TargetPercent:  20,
			ExpectedReturn: 11.0,
			Funds: []string{
				"HDFC Balanced Advantage Fund",
			},
		},
		Equity: models.CategoryAllocation{
			Category:       models.CategoryEquity,
			TargetPercent:  70,
			ExpectedReturn: 15.0,
			Funds: []string{
				"Axis Bluechip Fund",
				"Parag Parikh Flexi Cap Fund",
				"Mirae Asset Emerging Bluechip Fund",
				"Axis Midcap Fund",
				"Kotak Small Cap Fund",
			},
		},
	},
}

// BaseAllocation returns the static allocation for a risk profile. The
// second return value is false for unknown profiles.
func BaseAllocation(profile models.RiskProfile) (models.Allocation, bool) {
	alloc, ok := baseAllocations[profile]
	return alloc, ok
}

// FundBuckets is the share of max_funds taken from each category when
// picking top-performing funds for a risk profile.
var FundBuckets = map[models.RiskProfile]map[models.FundCategory]float64{
	models.RiskLow:    {models.CategoryDebt: 0.70, models.CategoryHybrid: 0.20, models.CategoryEquity: 0.10},
	models.RiskMedium: {models.CategoryDebt: 0.40, models.CategoryHybrid: 0.30, models.CategoryEquity: 0.30},
	models.RiskHigh:   {models.CategoryDebt: 0.10, models.CategoryHybrid: 0.20, models.CategoryEquity: 0.70},
}

// IndexFundBuckets is the equivalent split across index fund classes.
// High risk adds a small-cap leg.
var IndexFundBuckets = map[models.RiskProfile]map[string]float64{
	models.RiskLow:    {"debt": 0.70, "large_cap": 0.20, "mid_cap": 0.10},
	models.RiskMedium: {"debt": 0.30, "large_cap": 0.40, "mid_cap": 0.30},
	models.RiskHigh:   {"debt": 0.10, "large_cap": 0.30, "mid_cap": 0.30, "small_cap": 0.30},
}
