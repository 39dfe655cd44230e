package market

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fundwise/sipadvisor/internal/cache"
	"github.com/fundwise/sipadvisor/internal/logger"
	"github.com/fundwise/sipadvisor/internal/models"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	dataCache := cache.NewFundDataCache(cache.NewMemoryStore(), 6*time.Hour, 5*time.Minute)
	client := NewClient(Config{BaseURL: server.URL}, dataCache, logger.NewNop())
	return client, server
}

func fundPayload(name, category string, entries ...string) string {
	var data []string
	for i := 0; i < len(entries); i += 2 {
		data = append(data, fmt.Sprintf(`{"date":%q,"nav":%q}`, entries[i], entries[i+1]))
	}
	return fmt.Sprintf(`{"meta":{"scheme_name":%q,"scheme_category":%q,"fund_house":"Test AMC"},"data":[%s]}`,
		name, category, strings.Join(data, ","))
}

func TestFetchFundDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes payload and caches it", func(t *testing.T) {
		var hits int
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			fmt.Fprint(w, fundPayload("Mirae Asset Large Cap Fund", "Equity Scheme - Large Cap Fund",
				"28-08-2026", "112.45",
				"27-08-2026", "112.10",
			))
		}))

		result := client.FetchFundDetails(ctx, "118825")
		require.Equal(t, FetchOK, result.Status)
		assert.Equal(t, "Mirae Asset Large Cap Fund", result.Details.Name)
		assert.Equal(t, "118825", result.Details.SchemeCode)
		assert.Equal(t, 112.45, result.Details.LatestNAV().NAV)
		assert.Len(t, result.Details.History, 2)

		// Second fetch is served from cache.
		result = client.FetchFundDetails(ctx, "118825")
		require.Equal(t, FetchOK, result.Status)
		assert.Equal(t, 1, hits)
	})

	t.Run("non-OK status reports unavailable", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		result := client.FetchFundDetails(ctx, "118825")
		assert.Equal(t, FetchUnavailable, result.Status)
		assert.Nil(t, result.Details)
	})

	t.Run("undecodable body reports malformed", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"meta":`)
		}))

		result := client.FetchFundDetails(ctx, "118825")
		assert.Equal(t, FetchMalformed, result.Status)
	})

	t.Run("empty history reports malformed", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"meta":{"scheme_name":"Some Fund"},"data":[]}`)
		}))

		result := client.FetchFundDetails(ctx, "118825")
		assert.Equal(t, FetchMalformed, result.Status)
	})
}

func TestAvailable(t *testing.T) {
	ctx := context.Background()

	t.Run("probe result is cached", func(t *testing.T) {
		var probes int
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			probes++
			w.WriteHeader(http.StatusOK)
		}))

		assert.True(t, client.Available(ctx))
		assert.True(t, client.Available(ctx))
		assert.Equal(t, 1, probes)
	})

	t.Run("negative probe result is cached too", func(t *testing.T) {
		var probes int
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			probes++
			w.WriteHeader(http.StatusServiceUnavailable)
		}))

		assert.False(t, client.Available(ctx))
		assert.False(t, client.Available(ctx))
		assert.Equal(t, 1, probes)
	})
}

func navHistory(now time.Time, spec ...interface{}) []models.NAVPoint {
	var history []models.NAVPoint
	for i := 0; i < len(spec); i += 2 {
		daysAgo := spec[i].(int)
		nav := spec[i+1].(float64)
		history = append(history, models.NAVPoint{Date: now.AddDate(0, 0, -daysAgo), NAV: nav})
	}
	return history
}

func TestCAGRFromHistory(t *testing.T) {
	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	client := &Client{now: func() time.Time { return now }}
	ctx := context.Background()

	t.Run("three year growth", func(t *testing.T) {
		// NAV doubled over exactly 3 years (1095 days).
		history := navHistory(now, 0, 200.0, 1095, 100.0)

		cagr, ok := client.cagrFromHistory(ctx, "X", history, 3)
		require.True(t, ok)
		// 2^(1/3) - 1 = 25.99%
		assert.InDelta(t, 25.99, cagr, 0.05)
	})

	t.Run("uses most recent entry at or before period start", func(t *testing.T) {
		history := navHistory(now,
			0, 200.0,
			1100, 100.0, // first entry at or before the 3y mark
			1500, 80.0,
		)

		cagr, ok := client.cagrFromHistory(ctx, "X", history, 3)
		require.True(t, ok)
		// Base NAV is 100 at 1100 days, not 80 at 1500 days.
		assert.Greater(t, cagr, 20.0)
		assert.Less(t, cagr, 30.0)
	})

	t.Run("falls back to one year when coverage is short", func(t *testing.T) {
		// Only ~1.1 years of history: 3y coverage fails, 1y succeeds.
		history := navHistory(now, 0, 110.0, 400, 100.0)

		cagr, ok := client.cagrFromHistory(ctx, "X", history, 3)
		require.True(t, ok)
		// ~10% over ~1.1 years annualizes just under 10%.
		assert.InDelta(t, 9.0, cagr, 1.5)
	})

	t.Run("not computable without enough history", func(t *testing.T) {
		history := navHistory(now, 0, 110.0, 30, 100.0)

		_, ok := client.cagrFromHistory(ctx, "X", history, 3)
		assert.False(t, ok)
	})
}

func TestRankByPerformance(t *testing.T) {
	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	payloads := map[string]string{
		// Strong performer: 100 -> 200 over 3 years.
		"111111": fundPayload("Fund A", "Equity",
			now.Format(navDateFormat), "200.0",
			now.AddDate(0, 0, -1100).Format(navDateFormat), "100.0"),
		// Weak performer: 100 -> 110 over 3 years.
		"222222": fundPayload("Fund B", "Equity",
			now.Format(navDateFormat), "110.0",
			now.AddDate(0, 0, -1100).Format(navDateFormat), "100.0"),
		// No usable history.
		"333333": fundPayload("Fund C", "Equity",
			now.Format(navDateFormat), "50.0"),
	}

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		code := strings.TrimPrefix(r.URL.Path, "/mf/")
		payload, ok := payloads[code]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, payload)
	}))
	client.now = func() time.Time { return now }

	ranked := client.RankByPerformance(ctx, []string{"333333", "222222", "111111"})
	require.Len(t, ranked, 3)
	assert.Equal(t, "111111", ranked[0].SchemeCode)
	assert.Equal(t, "222222", ranked[1].SchemeCode)
	assert.Equal(t, "333333", ranked[2].SchemeCode)
	assert.Equal(t, cagrUnavailable, ranked[2].CAGR)
}

func TestEstimateReturn(t *testing.T) {
	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	t.Run("defaults with short history", func(t *testing.T) {
		details := &models.FundDetails{History: navHistory(now, 0, 105.0, 100, 100.0)}
		assert.Equal(t, 12.0, estimateReturn(details))
	})

	t.Run("computes trailing one year return", func(t *testing.T) {
		history := make([]models.NAVPoint, 0, 400)
		for i := 0; i < 400; i++ {
			nav := 100.0
			if i == 0 {
				nav = 115.0
			}
			history = append(history, models.NAVPoint{Date: now.AddDate(0, 0, -i), NAV: nav})
		}
		details := &models.FundDetails{History: history}
		assert.Equal(t, 15.0, estimateReturn(details))
	})
}

func TestEstimateRisk(t *testing.T) {
	cases := []struct {
		category string
		want     string
	}{
		{"Debt Scheme - Short Duration Fund", "Low"},
		{"Open Ended Liquid Fund", "Low"},
		{"Hybrid Scheme - Balanced Advantage", "Medium"},
		{"Equity Scheme - Large Cap Fund", "Medium-High"},
		{"Equity Scheme - Mid Cap Fund", "High"},
		{"Equity Scheme - Small Cap Fund", "High"},
		{"Equity Scheme - Sectoral / Thematic", "Very High"},
	}

	for _, tc := range cases {
		t.Run(tc.category, func(t *testing.T) {
			details := &models.FundDetails{Category: tc.category}
			assert.Equal(t, tc.want, estimateRisk(details))
		})
	}

	t.Run("volatility fallback for unlabelled category", func(t *testing.T) {
		now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

		// Flat NAV series has near-zero volatility.
		flat := make([]models.NAVPoint, 100)
		for i := range flat {
			flat[i] = models.NAVPoint{Date: now.AddDate(0, 0, -i), NAV: 100.0}
		}
		assert.Equal(t, "Low", estimateRisk(&models.FundDetails{Category: "Other", History: flat}))

		// Wildly swinging NAV series lands in the highest bucket.
		volatile := make([]models.NAVPoint, 100)
		for i := range volatile {
			nav := 100.0
			if i%2 == 0 {
				nav = 110.0
			}
			volatile[i] = models.NAVPoint{Date: now.AddDate(0, 0, -i), NAV: nav}
		}
		assert.Equal(t, "Very High", estimateRisk(&models.FundDetails{Category: "Other", History: volatile}))
	})

	t.Run("defaults to medium without history", func(t *testing.T) {
		assert.Equal(t, "Medium", estimateRisk(&models.FundDetails{Category: "Other"}))
	})
}

func TestBucketCounts(t *testing.T) {
	weights := map[models.FundCategory]float64{
		models.CategoryDebt:   0.10,
		models.CategoryHybrid: 0.20,
		models.CategoryEquity: 0.70,
	}

	t.Run("fifteen funds high risk", func(t *testing.T) {
		counts := bucketCounts(15, weights)
		assert.Equal(t, 1, counts[models.CategoryDebt])
		assert.Equal(t, 3, counts[models.CategoryHybrid])
		assert.Equal(t, 10, counts[models.CategoryEquity])
	})

	t.Run("every weighted category gets at least one", func(t *testing.T) {
		counts := bucketCounts(5, weights)
		assert.GreaterOrEqual(t, counts[models.CategoryDebt], 1)
		assert.GreaterOrEqual(t, counts[models.CategoryHybrid], 1)
	})

	t.Run("overflow is rescaled", func(t *testing.T) {
		even := map[models.FundCategory]float64{
			models.CategoryDebt:   0.40,
			models.CategoryHybrid: 0.40,
			models.CategoryEquity: 0.40,
		}
		counts := bucketCounts(4, even)
		total := counts[models.CategoryDebt] + counts[models.CategoryHybrid] + counts[models.CategoryEquity]
		assert.LessOrEqual(t, total, 4)
	})
}
