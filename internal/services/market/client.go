package market

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/fundwise/sipadvisor/internal/cache"
	"github.com/fundwise/sipadvisor/internal/catalog"
	"github.com/fundwise/sipadvisor/internal/logger"
	"github.com/fundwise/sipadvisor/internal/models"
	"github.com/fundwise/sipadvisor/internal/monitoring"
)

const navDateFormat = "02-01-2006"

// FetchStatus classifies the outcome of one fund-data fetch.
type FetchStatus int

const (
	FetchOK FetchStatus = iota
	FetchUnavailable
	FetchMalformed
)

// FetchResult carries a fetch outcome. Details is set only for FetchOK.
type FetchResult struct {
	Status  FetchStatus
	Details *models.FundDetails
}

// RankedFund pairs a scheme code with its 3-year CAGR. Funds whose CAGR
// could not be computed carry the sentinel score so they sort last.
type RankedFund struct {
	SchemeCode string
	CAGR       float64
}

// cagrUnavailable ranks below any plausible real CAGR.
const cagrUnavailable = -999.0

// Client fetches Indian mutual fund data from an MFApi-compatible
// endpoint, with caching and graceful degradation.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	probeClient  *http.Client
	cache        *cache.FundDataCache
	log          *logger.Logger
	now          func() time.Time
}

// Config configures a Client.
type Config struct {
	BaseURL      string
	ReadTimeout  time.Duration
	ProbeTimeout time.Duration
}

func NewClient(cfg Config, dataCache *cache.FundDataCache, log *logger.Logger) *Client {
	readTimeout := cfg.ReadTimeout
	if readTimeout == 0 {
		readTimeout = 10 * time.Second
	}
	probeTimeout := cfg.ProbeTimeout
	if probeTimeout == 0 {
		probeTimeout = 5 * time.Second
	}

	return &Client{
		baseURL:     cfg.BaseURL,
		httpClient:  &http.Client{Timeout: readTimeout},
		probeClient: &http.Client{Timeout: probeTimeout},
		cache:       dataCache,
		log:         log,
		now:         time.Now,
	}
}

// Wire format of the fund-data API.
type apiFundResponse struct {
	Meta struct {
		SchemeName     string `json:"scheme_name"`
		SchemeCategory string `json:"scheme_category"`
		FundHouse      string `json:"fund_house"`
	} `json:"meta"`
	Data []struct {
		Date string `json:"date"`
		NAV  string `json:"nav"`
	} `json:"data"`
}

// Available reports whether the fund-data API is reachable. The probe
// result is cached so at most one probe runs per availability window.
func (c *Client) Available(ctx context.Context) bool {
	if available, ok := c.cache.GetAvailability(ctx); ok {
		return available
	}

	start := c.now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/mf", nil)
	if err != nil {
		return false
	}

	resp, err := c.probeClient.Do(req)
	available := false
	if err == nil {
		resp.Body.Close()
		available = resp.StatusCode == http.StatusOK
	}
	c.log.LogAPIRequest("mfapi", "/mf", c.now().Sub(start), err)

	if cacheErr := c.cache.SetAvailability(ctx, available); cacheErr != nil {
		c.log.Warnw("Failed to cache API availability", "error", cacheErr)
	}
	return available
}

// FetchFundDetails fetches one fund's metadata and NAV history, decoding
// it once at this boundary. Cached payloads are served without a network
// round trip.
func (c *Client) FetchFundDetails(ctx context.Context, schemeCode string) FetchResult {
	if cached, err := c.cache.GetFundDetails(ctx, schemeCode); err == nil && cached != nil {
		monitoring.CacheHits.Inc()
		return FetchResult{Status: FetchOK, Details: cached}
	}
	monitoring.CacheMisses.Inc()

	start := c.now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/mf/%s", c.baseURL, schemeCode), nil)
	if err != nil {
		monitoring.FundAPIRequests.WithLabelValues("unavailable").Inc()
		return FetchResult{Status: FetchUnavailable}
	}

	resp, err := c.httpClient.Do(req)
	duration := c.now().Sub(start)
	monitoring.FundAPIDuration.Observe(duration.Seconds())

	if err != nil {
		c.log.LogAPIRequest("mfapi", "/mf/"+schemeCode, duration, err)
		monitoring.FundAPIRequests.WithLabelValues("unavailable").Inc()
		return FetchResult{Status: FetchUnavailable}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warnw("Fund API returned non-OK status",
			"scheme_code", schemeCode, "status", resp.StatusCode)
		monitoring.FundAPIRequests.WithLabelValues("unavailable").Inc()
		return FetchResult{Status: FetchUnavailable}
	}

	var payload apiFundResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.Warnw("Fund API payload not decodable", "scheme_code", schemeCode, "error", err)
		monitoring.FundAPIRequests.WithLabelValues("malformed").Inc()
		return FetchResult{Status: FetchMalformed}
	}

	details, err := parseFundPayload(schemeCode, &payload)
	if err != nil {
		c.log.Warnw("Fund API payload malformed", "scheme_code", schemeCode, "error", err)
		monitoring.FundAPIRequests.WithLabelValues("malformed").Inc()
		return FetchResult{Status: FetchMalformed}
	}

	monitoring.FundAPIRequests.WithLabelValues("ok").Inc()
	c.log.LogFundFetch(schemeCode, "ok", duration)

	if err := c.cache.SetFundDetails(ctx, schemeCode, details); err != nil {
		c.log.Warnw("Failed to cache fund details", "scheme_code", schemeCode, "error", err)
	}
	return FetchResult{Status: FetchOK, Details: details}
}

func parseFundPayload(schemeCode string, payload *apiFundResponse) (*models.FundDetails, error) {
	if payload.Meta.SchemeName == "" {
		return nil, fmt.Errorf("missing scheme name")
	}
	if len(payload.Data) == 0 {
		return nil, fmt.Errorf("empty NAV history")
	}

	history := make([]models.NAVPoint, 0, len(payload.Data))
	for _, entry := range payload.Data {
		date, err := time.Parse(navDateFormat, entry.Date)
		if err != nil {
			return nil, fmt.Errorf("bad NAV date %q: %w", entry.Date, err)
		}
		nav, err := strconv.ParseFloat(entry.NAV, 64)
		if err != nil {
			return nil, fmt.Errorf("bad NAV value %q: %w", entry.NAV, err)
		}
		history = append(history, models.NAVPoint{Date: date, NAV: nav})
	}

	return &models.FundDetails{
		SchemeCode: schemeCode,
		Name:       payload.Meta.SchemeName,
		Category:   payload.Meta.SchemeCategory,
		FundHouse:  payload.Meta.FundHouse,
		History:    history,
	}, nil
}

// CAGR computes the compound annual growth rate over the given period.
// The old NAV is the most recent observation dated at or before the
// period start. When less than 90% of the period is covered, a 1-year
// CAGR is tried before giving up.
func (c *Client) CAGR(ctx context.Context, schemeCode string, years int) (float64, bool) {
	result := c.FetchFundDetails(ctx, schemeCode)
	if result.Status != FetchOK || len(result.Details.History) < 2 {
		return 0, false
	}
	return c.cagrFromHistory(ctx, schemeCode, result.Details.History, years)
}

func (c *Client) cagrFromHistory(ctx context.Context, schemeCode string, history []models.NAVPoint, years int) (float64, bool) {
	now := c.now()
	currentNAV := history[0].NAV
	target := now.AddDate(0, 0, -years*365)

	var oldNAV float64
	var actualDays float64
	for _, point := range history {
		if !point.Date.After(target) {
			oldNAV = point.NAV
			actualDays = now.Sub(point.Date).Hours() / 24
			break
		}
	}

	if oldNAV <= 0 || actualDays < float64(years)*365*0.9 {
		if years > 1 {
			return c.cagrFromHistory(ctx, schemeCode, history, 1)
		}
		return 0, false
	}

	actualYears := actualDays / 365.0
	cagr := (math.Pow(currentNAV/oldNAV, 1/actualYears) - 1) * 100
	return math.Round(cagr*100) / 100, true
}

// RankByPerformance orders scheme codes by 3-year CAGR, highest first.
// Codes without usable history keep their place at the end.
func (c *Client) RankByPerformance(ctx context.Context, schemeCodes []string) []RankedFund {
	ranked := make([]RankedFund, 0, len(schemeCodes))
	for _, code := range schemeCodes {
		if cagr, ok := c.CAGR(ctx, code, 3); ok {
			ranked = append(ranked, RankedFund{SchemeCode: code, CAGR: cagr})
		} else {
			ranked = append(ranked, RankedFund{SchemeCode: code, CAGR: cagrUnavailable})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CAGR > ranked[j].CAGR
	})
	return ranked
}

// estimateReturn derives an expected annual return from the trailing
// 1-year NAV change, defaulting to 12% when the history is too short.
func estimateReturn(details *models.FundDetails) float64 {
	if len(details.History) < 365 {
		return 12.0
	}

	currentNAV := details.History[0].NAV
	idx := 365
	if idx > len(details.History)-1 {
		idx = len(details.History) - 1
	}
	yearAgoNAV := details.History[idx].NAV

	if yearAgoNAV <= 0 {
		return 12.0
	}
	returnPct := ((currentNAV - yearAgoNAV) / yearAgoNAV) * 100
	return math.Round(returnPct*100) / 100
}

// estimateRisk classifies a fund by its category, falling back to the
// annualized volatility of daily NAV returns when the category gives no
// signal.
func estimateRisk(details *models.FundDetails) string {
	category := strings.ToLower(details.Category)

	switch {
	case strings.Contains(category, "debt") || strings.Contains(category, "liquid"):
		return "Low"
	case strings.Contains(category, "hybrid") || strings.Contains(category, "balanced"):
		return "Medium"
	case strings.Contains(category, "large cap") || strings.Contains(category, "bluechip"):
		return "Medium-High"
	case strings.Contains(category, "mid cap") || strings.Contains(category, "small cap"):
		return "High"
	case strings.Contains(category, "sectoral") || strings.Contains(category, "thematic"):
		return "Very High"
	}

	return riskFromVolatility(details.History)
}

func riskFromVolatility(history []models.NAVPoint) string {
	if len(history) < 30 {
		return "Medium"
	}

	window := history
	if len(window) > 365 {
		window = window[:365]
	}

	returns := make([]float64, 0, len(window)-1)
	for i := 0; i < len(window)-1; i++ {
		prev := window[i+1].NAV
		if prev <= 0 {
			continue
		}
		returns = append(returns, (window[i].NAV-prev)/prev)
	}
	if len(returns) < 2 {
		return "Medium"
	}

	annualized := stat.StdDev(returns, nil) * math.Sqrt(252)
	switch {
	case annualized < 0.05:
		return "Low"
	case annualized < 0.12:
		return "Medium"
	case annualized < 0.20:
		return "Medium-High"
	case annualized < 0.30:
		return "High"
	default:
		return "Very High"
	}
}

// candidate builds a FundCandidate from decoded fund data.
func candidate(details *models.FundDetails, fallbackType string, cagr *float64) models.FundCandidate {
	fundType := details.Category
	if fundType == "" {
		fundType = fallbackType
	}

	latest := details.LatestNAV()
	fc := models.FundCandidate{
		Name:           details.Name,
		Type:           fundType,
		SchemeCode:     details.SchemeCode,
		NAV:            latest.NAV,
		NAVDate:        latest.Date.Format(navDateFormat),
		FundHouse:      details.FundHouse,
		ExpectedReturn: estimateReturn(details),
		RiskLevel:      estimateRisk(details),
		IsDynamic:      true,
	}
	if cagr != nil {
		fc.CAGR3Y = *cagr
	}
	return fc
}

// SectorFunds fetches funds for the given sectors, deduplicated across
// sectors by scheme code. The second return value is false when nothing
// usable was fetched.
func (c *Client) SectorFunds(ctx context.Context, sectors []string) ([]models.FundCandidate, bool) {
	if !c.Available(ctx) {
		c.log.Warnw("Fund API unavailable for sector funds")
		return nil, false
	}

	var funds []models.FundCandidate
	seen := make(map[string]bool)

	for _, sector := range sectors {
		codes, ok := catalog.SectorFundCodes[sector]
		if !ok {
			continue
		}
		for _, code := range codes {
			if seen[code] {
				continue
			}
			result := c.FetchFundDetails(ctx, code)
			if result.Status != FetchOK {
				continue
			}
			seen[code] = true
			fc := candidate(result.Details, "Equity Fund", nil)
			fc.Sector = sector
			funds = append(funds, fc)
		}
	}

	return funds, len(funds) > 0
}

// bucketCounts splits maxFunds across categories by weight. Every
// weighted category gets at least one fund; overflow past maxFunds is
// corrected by rescaling.
func bucketCounts(maxFunds int, weights map[models.FundCategory]float64) map[models.FundCategory]int {
	debt := max1(int(float64(maxFunds) * weights[models.CategoryDebt]))
	hybrid := max1(int(float64(maxFunds) * weights[models.CategoryHybrid]))
	equity := max1(int(float64(maxFunds) * weights[models.CategoryEquity]))

	if total := debt + hybrid + equity; total > maxFunds {
		debt = max1(debt * maxFunds / total)
		hybrid = max1(hybrid * maxFunds / total)
		equity = maxFunds - debt - hybrid
	}

	return map[models.FundCategory]int{
		models.CategoryDebt:   debt,
		models.CategoryHybrid: hybrid,
		models.CategoryEquity: equity,
	}
}

func max1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// CuratedFunds returns the top performers from the general universe,
// ranked by 3-year CAGR within each category bucket.
func (c *Client) CuratedFunds(ctx context.Context, profile models.RiskProfile, maxFunds int) ([]models.FundCandidate, bool) {
	if !c.Available(ctx) {
		c.log.Warnw("Fund API unavailable for curated funds")
		return nil, false
	}

	weights, ok := catalog.FundBuckets[profile]
	if !ok {
		weights = catalog.FundBuckets[models.RiskMedium]
	}
	counts := bucketCounts(maxFunds, weights)

	var funds []models.FundCandidate
	for _, category := range []models.FundCategory{models.CategoryDebt, models.CategoryHybrid, models.CategoryEquity} {
		ranked := c.RankByPerformance(ctx, catalog.GeneralFundCodes[category])
		taken := 0
		for _, rf := range ranked {
			if taken >= counts[category] {
				break
			}
			if rf.CAGR <= cagrUnavailable {
				continue
			}
			result := c.FetchFundDetails(ctx, rf.SchemeCode)
			if result.Status != FetchOK {
				continue
			}
			cagr := rf.CAGR
			funds = append(funds, candidate(result.Details, category.Title(), &cagr))
			taken++
		}
	}

	return funds, len(funds) > 0
}

// ComprehensiveFunds returns general funds taken front to back from the
// category tables, without performance ranking.
func (c *Client) ComprehensiveFunds(ctx context.Context, profile models.RiskProfile, maxFunds int) ([]models.FundCandidate, bool) {
	if !c.Available(ctx) {
		c.log.Warnw("Fund API unavailable for comprehensive funds")
		return nil, false
	}

	weights, ok := catalog.FundBuckets[profile]
	if !ok {
		weights = catalog.FundBuckets[models.RiskMedium]
	}

	var funds []models.FundCandidate
	for _, category := range []models.FundCategory{models.CategoryDebt, models.CategoryHybrid, models.CategoryEquity} {
		count := max1(int(float64(maxFunds) * weights[category]))
		codes := catalog.GeneralFundCodes[category]
		if count > len(codes) {
			count = len(codes)
		}
		for _, code := range codes[:count] {
			result := c.FetchFundDetails(ctx, code)
			if result.Status != FetchOK {
				continue
			}
			funds = append(funds, candidate(result.Details, category.Title(), nil))
		}
	}

	return funds, len(funds) > 0
}

// IndexFunds returns passive funds across cap buckets, ranked by 3-year
// CAGR. High-risk portfolios add a small-cap bucket.
func (c *Client) IndexFunds(ctx context.Context, profile models.RiskProfile, maxFunds int) ([]models.FundCandidate, bool) {
	if !c.Available(ctx) {
		c.log.Warnw("Fund API unavailable for index funds")
		return nil, false
	}

	weights, ok := catalog.IndexFundBuckets[profile]
	if !ok {
		weights = catalog.IndexFundBuckets[models.RiskMedium]
	}

	buckets := []struct {
		key         string
		defaultType string
		atLeastOne  bool
	}{
		{"debt", "Debt Index Fund", true},
		{"large_cap", "Large Cap Index Fund", true},
		{"mid_cap", "Mid Cap Index Fund", true},
		{"small_cap", "Small Cap Index Fund", false},
	}

	var funds []models.FundCandidate
	for _, bucket := range buckets {
		weight := weights[bucket.key]
		if weight == 0 {
			continue
		}
		count := int(float64(maxFunds) * weight)
		if bucket.atLeastOne {
			count = max1(count)
		}
		if count == 0 {
			continue
		}

		ranked := c.RankByPerformance(ctx, catalog.IndexFundCodes[bucket.key])
		taken := 0
		for _, rf := range ranked {
			if taken >= count {
				break
			}
			if rf.CAGR <= cagrUnavailable {
				continue
			}
			result := c.FetchFundDetails(ctx, rf.SchemeCode)
			if result.Status != FetchOK {
				continue
			}
			cagr := rf.CAGR
			funds = append(funds, candidate(result.Details, bucket.defaultType, &cagr))
			taken++
		}
	}

	return funds, len(funds) > 0
}

// NAVByFundName searches the general and sector universes for a fund
// whose name contains the query, returning its latest NAV.
func (c *Client) NAVByFundName(ctx context.Context, fundName string) (float64, bool) {
	query := strings.ToLower(fundName)

	search := func(codes []string) (float64, bool) {
		for _, code := range codes {
			result := c.FetchFundDetails(ctx, code)
			if result.Status != FetchOK {
				continue
			}
			if strings.Contains(strings.ToLower(result.Details.Name), query) {
				return result.Details.LatestNAV().NAV, true
			}
		}
		return 0, false
	}

	for _, codes := range catalog.GeneralFundCodes {
		if nav, ok := search(codes); ok {
			return nav, true
		}
	}
	for _, codes := range catalog.SectorFundCodes {
		if nav, ok := search(codes); ok {
			return nav, true
		}
	}
	return 0, false
}
