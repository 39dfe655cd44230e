package recommendation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fundwise/sipadvisor/internal/models"
)

func targetSum(alloc models.Allocation) float64 {
	return alloc.Debt.TargetPercent + alloc.Hybrid.TargetPercent + alloc.Equity.TargetPercent
}

func TestBaseAllocation(t *testing.T) {
	cases := []struct {
		profile models.RiskProfile
		debt    float64
		hybrid  float64
		equity  float64
	}{
		{models.RiskLow, 70, 20, 10},
		{models.RiskMedium, 40, 30, 30},
		{models.RiskHigh, 10, 20, 70},
	}

	for _, tc := range cases {
		t.Run(string(tc.profile), func(t *testing.T) {
			alloc, err := BaseAllocation(tc.profile)
			require.NoError(t, err)

			assert.Equal(t, tc.debt, alloc.Debt.TargetPercent)
			assert.Equal(t, tc.hybrid, alloc.Hybrid.TargetPercent)
			assert.Equal(t, tc.equity, alloc.Equity.TargetPercent)
			assert.Equal(t, 100.0, targetSum(alloc))

			// Debt always returns 7.5 across profiles.
			assert.Equal(t, 7.5, alloc.Debt.ExpectedReturn)
			assert.NotEmpty(t, alloc.Debt.Funds)
			assert.NotEmpty(t, alloc.Hybrid.Funds)
			assert.NotEmpty(t, alloc.Equity.Funds)
		})
	}

	t.Run("unknown profile", func(t *testing.T) {
		_, err := BaseAllocation("reckless")
		assert.Error(t, err)
	})
}

func TestAdjustForDuration(t *testing.T) {
	mustBase := func(profile models.RiskProfile) models.Allocation {
		alloc, err := BaseAllocation(profile)
		require.NoError(t, err)
		return alloc
	}

	t.Run("long horizon shifts low risk toward equity", func(t *testing.T) {
		alloc := AdjustForDuration(mustBase(models.RiskLow), models.RiskLow, 10)
		assert.Equal(t, 50.0, alloc.Debt.TargetPercent)
		assert.Equal(t, 30.0, alloc.Hybrid.TargetPercent)
		assert.Equal(t, 20.0, alloc.Equity.TargetPercent)
	})

	t.Run("long horizon shifts medium risk toward equity", func(t *testing.T) {
		alloc := AdjustForDuration(mustBase(models.RiskMedium), models.RiskMedium, 15)
		assert.Equal(t, 30.0, alloc.Debt.TargetPercent)
		assert.Equal(t, 40.0, alloc.Equity.TargetPercent)
	})

	t.Run("short horizon pulls high risk back", func(t *testing.T) {
		alloc := AdjustForDuration(mustBase(models.RiskHigh), models.RiskHigh, 2)
		assert.Equal(t, 20.0, alloc.Debt.TargetPercent)
		assert.Equal(t, 30.0, alloc.Hybrid.TargetPercent)
		assert.Equal(t, 50.0, alloc.Equity.TargetPercent)
	})

	t.Run("short horizon pulls medium risk back", func(t *testing.T) {
		alloc := AdjustForDuration(mustBase(models.RiskMedium), models.RiskMedium, 3)
		assert.Equal(t, 50.0, alloc.Debt.TargetPercent)
		assert.Equal(t, 20.0, alloc.Equity.TargetPercent)
	})

	t.Run("middle horizon leaves allocations unchanged", func(t *testing.T) {
		for _, profile := range []models.RiskProfile{models.RiskLow, models.RiskMedium, models.RiskHigh} {
			base := mustBase(profile)
			assert.Equal(t, base, AdjustForDuration(base, profile, 5))
		}
	})

	t.Run("equity grows monotonically with horizon for medium risk", func(t *testing.T) {
		short := AdjustForDuration(mustBase(models.RiskMedium), models.RiskMedium, 3)
		long := AdjustForDuration(mustBase(models.RiskMedium), models.RiskMedium, 10)
		assert.Equal(t, 20.0, short.Equity.TargetPercent)
		assert.Equal(t, 40.0, long.Equity.TargetPercent)
	})

	t.Run("sum stays at 100 for every profile and horizon", func(t *testing.T) {
		for _, profile := range []models.RiskProfile{models.RiskLow, models.RiskMedium, models.RiskHigh} {
			for years := 1; years <= 30; years++ {
				alloc := AdjustForDuration(mustBase(profile), profile, years)
				assert.Equal(t, 100.0, targetSum(alloc), "profile %s years %d", profile, years)
			}
		}
	})
}

func TestRoundSIPAmount(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{44, 40},
		{45, 50},
		{99, 100},
		{101, 100},
		{124, 100},
		{126, 150},
		{975, 1000},
		{999, 1000},
		{1049, 1000},
		{1050, 1100},
		{12345, 12300},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, RoundSIPAmount(tc.in), "RoundSIPAmount(%v)", tc.in)
	}

	t.Run("idempotent", func(t *testing.T) {
		for _, x := range []float64{0, 7, 44, 99, 101, 350, 975, 1049, 7777, 123456} {
			once := RoundSIPAmount(x)
			assert.Equal(t, once, RoundSIPAmount(once), "x=%v", x)
		}
	})
}

func TestProject(t *testing.T) {
	mustBase := func(profile models.RiskProfile) models.Allocation {
		alloc, err := BaseAllocation(profile)
		require.NoError(t, err)
		return alloc
	}

	t.Run("portfolio totals", func(t *testing.T) {
		alloc := AdjustForDuration(mustBase(models.RiskMedium), models.RiskMedium, 10)
		projection := Project(10000, 10, alloc)

		assert.Equal(t, 10000.0, projection.Summary.TotalMonthlyInvestment)
		assert.Equal(t, 1200000.0, projection.Summary.TotalInvested)
		assert.Greater(t, projection.Summary.ExpectedPortfolioValue, projection.Summary.TotalInvested)
		assert.Equal(t,
			projection.Summary.ExpectedPortfolioValue-projection.Summary.TotalInvested,
			projection.Summary.ExpectedGains)

		var categorySum float64
		for _, cat := range projection.Categories {
			categorySum += cat.ExpectedValue
		}
		assert.InDelta(t, projection.Summary.ExpectedPortfolioValue, categorySum, 0.01)
	})

	t.Run("category monthly amounts follow the allocation", func(t *testing.T) {
		alloc := mustBase(models.RiskHigh)
		projection := Project(10000, 5, alloc)

		require.Len(t, projection.Categories, 3)
		assert.Equal(t, 1000.0, projection.Categories[0].MonthlyInvestment)
		assert.Equal(t, 2000.0, projection.Categories[1].MonthlyInvestment)
		assert.Equal(t, 7000.0, projection.Categories[2].MonthlyInvestment)
	})

	t.Run("zero expected return degenerates to contributions", func(t *testing.T) {
		assert.Equal(t, 120000.0, sipFutureValue(1000, 120, 0))
	})

	t.Run("negative returns flow through the formula", func(t *testing.T) {
		fv := sipFutureValue(1000, 120, -5)
		assert.Greater(t, fv, 0.0)
		assert.Less(t, fv, 120000.0)
	})
}

func TestApplyMaxFunds(t *testing.T) {
	recs := []models.Recommendation{
		{FundName: "A", AllocationPercent: 10, MonthlyInvestment: 1000},
		{FundName: "B", AllocationPercent: 40, MonthlyInvestment: 4000},
		{FundName: "C", AllocationPercent: 30, MonthlyInvestment: 3000},
		{FundName: "D", AllocationPercent: 20, MonthlyInvestment: 2000},
	}

	t.Run("keeps the largest allocations", func(t *testing.T) {
		got := applyMaxFunds(append([]models.Recommendation(nil), recs...), 2, 10000)
		require.Len(t, got, 2)
		assert.Equal(t, "B", got[0].FundName)
		assert.Equal(t, "C", got[1].FundName)

		// 40 and 30 renormalize to 57.14 and 42.86.
		assert.InDelta(t, 100.0, got[0].AllocationPercent+got[1].AllocationPercent, 0.001)
		assert.InDelta(t, 57.14, got[0].AllocationPercent, 0.01)
		assert.Equal(t, RoundSIPAmount(10000*got[0].AllocationPercent/100), got[0].MonthlyInvestment)
	})

	t.Run("no-op below the cap", func(t *testing.T) {
		got := applyMaxFunds(append([]models.Recommendation(nil), recs...), 10, 10000)
		assert.Len(t, got, 4)
	})
}

func TestFundCountInfo(t *testing.T) {
	t.Run("nil when the request was met", func(t *testing.T) {
		assert.Nil(t, fundCountInfo(nil, 5, 10000))
		assert.Nil(t, fundCountInfo(intPtr(5), 5, 10000))
	})

	t.Run("suggestion only when the SIP is too small", func(t *testing.T) {
		info := fundCountInfo(intPtr(10), 7, 3000)
		require.NotNil(t, info)
		assert.Equal(t, 10, info.Requested)
		assert.Equal(t, 7, info.Showing)
		assert.Contains(t, info.Suggestion, "5000")

		richInfo := fundCountInfo(intPtr(10), 7, 50000)
		require.NotNil(t, richInfo)
		assert.Empty(t, richInfo.Suggestion)
	})
}
