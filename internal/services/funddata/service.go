package funddata

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/fundwise/sipadvisor/internal/catalog"
	"github.com/fundwise/sipadvisor/internal/models"
)

// Periods supported by the performance series, in days.
var periodDays = map[string]int{
	"7D": 7,
	"1M": 30,
	"3M": 90,
	"6M": 180,
	"1Y": 365,
}

// Service produces indicative fund data for the curated fund universe:
// reference NAVs, synthetic performance series, period returns and
// reviews. Values are seeded from the fund name so repeated requests
// for the same fund return the same data.
type Service struct {
	now func() time.Time
}

func NewService() *Service {
	return &Service{now: time.Now}
}

// CurrentNAV returns the reference NAV for a curated fund, or 100.00
// for funds outside the reference table.
func (s *Service) CurrentNAV(fundName string) float64 {
	return catalog.ReferenceNAV(fundName)
}

// PerformanceSeries builds a daily NAV series ending today for the
// given period. Unknown periods default to one year.
func (s *Service) PerformanceSeries(fundName, period string) []models.PerformancePoint {
	days, ok := periodDays[period]
	if !ok {
		days = 365
	}

	currentNAV := s.CurrentNAV(fundName)
	rng := rngFor(fundName, "performance:"+period)
	baseReturn := baseAnnualReturn(fundName, rng)
	today := s.now()

	points := make([]models.PerformancePoint, 0, days+1)
	for i := days; i >= 0; i-- {
		dailyChange := uniform(rng, -0.02, 0.02)
		nav := currentNAV * (1 - (baseReturn/365)*float64(i)) * (1 + dailyChange)
		points = append(points, models.PerformancePoint{
			Date: today.AddDate(0, 0, -i).Format("2006-01-02"),
			NAV:  round2(nav),
		})
	}
	return points
}

// Returns computes indicative trailing returns for the standard
// periods, in percent.
func (s *Service) Returns(fundName string) models.FundPerformance {
	rng := rngFor(fundName, "returns")
	baseReturn := baseAnnualReturn(fundName, rng)

	periodReturn := func(days int, jitter float64) float64 {
		return round2(baseReturn*(float64(days)/365)+uniform(rng, -jitter, jitter)) * 100
	}

	return models.FundPerformance{
		CurrentNAV: s.CurrentNAV(fundName),
		Returns: models.PeriodReturns{
			Days7:   periodReturn(7, 0.01),
			Month1:  periodReturn(30, 0.02),
			Months3: periodReturn(90, 0.03),
			Months6: periodReturn(180, 0.04),
			Year1:   periodReturn(365, 0.05),
		},
	}
}

var reviewComments = []string{
	"Great fund with consistent returns. Highly recommended for long-term investors.",
	"Good performance during market volatility. Fund manager is experienced.",
	"Steady growth with low expense ratio. Perfect for SIP investments.",
	"Excellent fund for risk-averse investors. Consistent dividends.",
	"Good diversification and professional management. Satisfied with returns.",
}

// Reviews returns between three and five investor reviews with an
// aggregate rating.
func (s *Service) Reviews(fundName string) models.FundReviews {
	rng := rngFor(fundName, "reviews")
	count := randInt(rng, 3, 5)
	today := s.now()

	reviews := make([]models.FundReview, 0, count)
	var totalRating int
	for i := 0; i < count; i++ {
		minRating := 3
		if i%len(reviewComments) == 3 {
			minRating = 4
		}
		rating := randInt(rng, minRating, 5)
		totalRating += rating

		reviews = append(reviews, models.FundReview{
			User:    fmt.Sprintf("Investor%d", randInt(rng, 1000, 9999)),
			Rating:  rating,
			Comment: reviewComments[i%len(reviewComments)],
			Date:    today.AddDate(0, 0, -randInt(rng, 1, 90)).Format("2006-01-02"),
		})
	}

	avg := float64(totalRating) / float64(count)
	return models.FundReviews{
		AverageRating: math.Round(avg*10) / 10,
		TotalReviews:  count,
		Reviews:       reviews,
	}
}

// CompleteFundData aggregates NAV, returns and reviews for one fund.
func (s *Service) CompleteFundData(fundName string) models.CompleteFundData {
	return models.CompleteFundData{
		FundName:    fundName,
		CurrentNAV:  s.CurrentNAV(fundName),
		Performance: s.Returns(fundName),
		Reviews:     s.Reviews(fundName),
		LastUpdated: s.now().Format("2006-01-02 15:04:05"),
	}
}

// baseAnnualReturn picks an indicative annual return range from the
// fund's category keywords.
func baseAnnualReturn(fundName string, rng *rand.Rand) float64 {
	name := strings.ToLower(fundName)
	switch {
	case strings.Contains(name, "debt") || strings.Contains(name, "bond"):
		return uniform(rng, 0.06, 0.09)
	case strings.Contains(name, "hybrid") || strings.Contains(name, "balanced"):
		return uniform(rng, 0.09, 0.12)
	default:
		return uniform(rng, 0.12, 0.18)
	}
}

// rngFor seeds a generator from the fund name and a per-use salt so
// each data kind is stable per fund without sharing a sequence.
func rngFor(fundName, salt string) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(fundName))
	h.Write([]byte{0})
	h.Write([]byte(salt))
	return rand.New(rand.NewSource(int64(h.Sum64())))
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func randInt(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
