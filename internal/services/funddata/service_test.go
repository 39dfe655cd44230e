package funddata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	svc := NewService()
	svc.now = func() time.Time {
		return time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	}
	return svc
}

func TestCurrentNAV(t *testing.T) {
	svc := newTestService()

	assert.Equal(t, 67.34, svc.CurrentNAV("Axis Bluechip Fund"))
	assert.Equal(t, 25.43, svc.CurrentNAV("HDFC Short Term Debt Fund"))
	assert.Equal(t, 100.00, svc.CurrentNAV("Unknown Fund"))
}

func TestPerformanceSeries(t *testing.T) {
	svc := newTestService()

	t.Run("length and date range", func(t *testing.T) {
		series := svc.PerformanceSeries("Axis Bluechip Fund", "1M")
		require.Len(t, series, 31)
		assert.Equal(t, "2025-05-16", series[0].Date)
		assert.Equal(t, "2025-06-15", series[len(series)-1].Date)
	})

	t.Run("unknown period defaults to a year", func(t *testing.T) {
		series := svc.PerformanceSeries("Axis Bluechip Fund", "5Y")
		assert.Len(t, series, 366)
	})

	t.Run("values stay near the reference NAV", func(t *testing.T) {
		series := svc.PerformanceSeries("Axis Bluechip Fund", "1Y")
		for _, p := range series {
			assert.Greater(t, p.NAV, 0.0)
			assert.Less(t, p.NAV, 67.34*1.05)
		}
		// The series trends upward toward the current NAV.
		assert.Greater(t, series[len(series)-1].NAV, series[0].NAV)
	})

	t.Run("deterministic per fund and period", func(t *testing.T) {
		first := svc.PerformanceSeries("HDFC Top 100 Fund", "3M")
		second := svc.PerformanceSeries("HDFC Top 100 Fund", "3M")
		assert.Equal(t, first, second)

		other := svc.PerformanceSeries("Axis Midcap Fund", "3M")
		assert.NotEqual(t, first, other)
	})
}

func TestReturns(t *testing.T) {
	svc := newTestService()

	t.Run("debt funds stay in the low band", func(t *testing.T) {
		perf := svc.Returns("HDFC Short Term Debt Fund")
		assert.Equal(t, 25.43, perf.CurrentNAV)
		// Base 6-9% annual with 5% jitter on the one year figure.
		assert.GreaterOrEqual(t, perf.Returns.Year1, 1.0)
		assert.LessOrEqual(t, perf.Returns.Year1, 14.0)
	})

	t.Run("equity funds in the high band", func(t *testing.T) {
		perf := svc.Returns("Axis Bluechip Fund")
		assert.GreaterOrEqual(t, perf.Returns.Year1, 7.0)
		assert.LessOrEqual(t, perf.Returns.Year1, 23.0)
	})

	t.Run("shorter periods scale down", func(t *testing.T) {
		perf := svc.Returns("Mirae Asset Large Cap Fund")
		assert.Less(t, perf.Returns.Days7, perf.Returns.Year1)
	})

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, svc.Returns("Axis Bluechip Fund"), svc.Returns("Axis Bluechip Fund"))
	})
}

func TestReviews(t *testing.T) {
	svc := newTestService()

	reviews := svc.Reviews("Axis Bluechip Fund")

	assert.GreaterOrEqual(t, reviews.TotalReviews, 3)
	assert.LessOrEqual(t, reviews.TotalReviews, 5)
	require.Len(t, reviews.Reviews, reviews.TotalReviews)

	var total int
	for _, r := range reviews.Reviews {
		assert.Regexp(t, `^Investor\d{4}$`, r.User)
		assert.GreaterOrEqual(t, r.Rating, 3)
		assert.LessOrEqual(t, r.Rating, 5)
		assert.NotEmpty(t, r.Comment)
		date, err := time.Parse("2006-01-02", r.Date)
		require.NoError(t, err)
		assert.True(t, date.Before(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)))
		total += r.Rating
	}

	expectedAvg := float64(total) / float64(reviews.TotalReviews)
	assert.InDelta(t, expectedAvg, reviews.AverageRating, 0.05)

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, reviews, svc.Reviews("Axis Bluechip Fund"))
	})
}

func TestCompleteFundData(t *testing.T) {
	svc := newTestService()

	data := svc.CompleteFundData("Parag Parikh Flexi Cap Fund")

	assert.Equal(t, "Parag Parikh Flexi Cap Fund", data.FundName)
	assert.Equal(t, 56.78, data.CurrentNAV)
	assert.Equal(t, data.CurrentNAV, data.Performance.CurrentNAV)
	assert.NotZero(t, data.Reviews.TotalReviews)
	assert.Equal(t, "2025-06-15 10:30:00", data.LastUpdated)
}
