package recommendation

import (
	"context"
	"sort"

	"github.com/fundwise/sipadvisor/internal/catalog"
	"github.com/fundwise/sipadvisor/internal/models"
)

// Most funds shown for a sector request before trimming by expected
// return.
const maxSectorFunds = 10

// FundDataProvider supplies live fund candidates. The market client is
// the production implementation.
type FundDataProvider interface {
	SectorFunds(ctx context.Context, sectors []string) ([]models.FundCandidate, bool)
	CuratedFunds(ctx context.Context, profile models.RiskProfile, maxFunds int) ([]models.FundCandidate, bool)
	ComprehensiveFunds(ctx context.Context, profile models.RiskProfile, maxFunds int) ([]models.FundCandidate, bool)
	IndexFunds(ctx context.Context, profile models.RiskProfile, maxFunds int) ([]models.FundCandidate, bool)
}

// selection is the outcome of fund selection before truncation.
type selection struct {
	recommendations []models.Recommendation
	dataSource      *models.DataSourceInfo
	usedFallback    bool
}

func containsDiversified(sectors []string) bool {
	for _, s := range sectors {
		if s == "diversified" {
			return true
		}
	}
	return false
}

// selectSectorFunds picks funds for explicit sector preferences:
// live data first, the static sector tables as fallback, and the static
// diversified picks when even those come up empty.
func selectSectorFunds(ctx context.Context, provider FundDataProvider, req *models.InvestmentRequest) selection {
	if containsDiversified(req.SectorPreferences) {
		return staticSectorSelection(catalog.DiversifiedFunds(), req.MonthlyInvestment,
			&models.DataSourceInfo{Source: "static", Reason: "diversified_selected"}, false)
	}

	if candidates, ok := provider.SectorFunds(ctx, req.SectorPreferences); ok {
		candidates = trimByExpectedReturn(candidates, maxSectorFunds)
		return selection{
			recommendations: candidatesToRecommendations(candidates, req.MonthlyInvestment),
			dataSource: &models.DataSourceInfo{
				Source:     "api",
				APIName:    "MFApi",
				FundCount:  len(candidates),
				HasLiveNAV: true,
			},
		}
	}

	// Static fallback, deduplicated by fund name across sectors.
	var funds []catalog.StaticSectorFund
	seen := make(map[string]bool)
	for _, sector := range req.SectorPreferences {
		group, ok := catalog.SectorFunds(sector)
		if !ok {
			continue
		}
		for _, fund := range group.Funds {
			if fund.Name == "" || seen[fund.Name] {
				continue
			}
			seen[fund.Name] = true
			funds = append(funds, fund)
		}
	}
	if len(funds) == 0 {
		funds = catalog.DiversifiedFunds()
	}

	return staticSectorSelection(funds, req.MonthlyInvestment, &models.DataSourceInfo{
		Source:    "static",
		Reason:    "api_unavailable",
		FundCount: len(funds),
	}, true)
}

func staticSectorSelection(funds []catalog.StaticSectorFund, monthly float64, source *models.DataSourceInfo, fallback bool) selection {
	candidates := make([]models.FundCandidate, 0, len(funds))
	for _, fund := range funds {
		candidates = append(candidates, models.FundCandidate{
			Name:           fund.Name,
			Type:           fund.Type,
			ExpectedReturn: fund.ExpectedReturn,
			RiskLevel:      fund.RiskLevel,
		})
	}
	candidates = trimByExpectedReturn(candidates, maxSectorFunds)
	if source.FundCount > 0 {
		source.FundCount = len(candidates)
	}

	return selection{
		recommendations: candidatesToRecommendations(candidates, monthly),
		dataSource:      source,
		usedFallback:    fallback,
	}
}

// trimByExpectedReturn keeps the top n candidates by expected return.
func trimByExpectedReturn(candidates []models.FundCandidate, n int) []models.FundCandidate {
	if len(candidates) <= n {
		return candidates
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].ExpectedReturn > candidates[j].ExpectedReturn
	})
	return candidates[:n]
}

// candidatesToRecommendations splits the allocation evenly across the
// candidates and rounds each monthly amount.
func candidatesToRecommendations(candidates []models.FundCandidate, monthly float64) []models.Recommendation {
	if len(candidates) == 0 {
		return nil
	}

	perFund := 100.0 / float64(len(candidates))
	recs := make([]models.Recommendation, 0, len(candidates))
	for _, fc := range candidates {
		sector := fc.Sector
		if sector == "" {
			sector = "Sector-Specific"
		}
		rec := models.Recommendation{
			FundName:          fc.Name,
			FundType:          fc.Type,
			AllocationPercent: perFund,
			MonthlyInvestment: RoundSIPAmount(monthly * perFund / 100),
			ExpectedReturn:    fc.ExpectedReturn,
			RiskLevel:         fc.RiskLevel,
			Sector:            sector,
			HasHoldings:       true,
		}
		if fc.IsDynamic {
			rec.SchemeCode = fc.SchemeCode
			rec.NAV = fc.NAV
			rec.NAVDate = fc.NAVDate
			rec.FundHouse = fc.FundHouse
		}
		recs = append(recs, rec)
	}
	return recs
}

// selectGeneralFunds picks funds for a diversified portfolio. Live data
// is used per the selection mode; the static curated lists serve as
// fallback.
func selectGeneralFunds(ctx context.Context, provider FundDataProvider, req *models.InvestmentRequest, alloc models.Allocation, fetchCount int) selection {
	var candidates []models.FundCandidate
	var ok bool
	wantDynamic := true

	switch {
	case req.IndexFundsOnly:
		candidates, ok = provider.IndexFunds(ctx, req.RiskProfile, fetchCount)
	case req.SelectionMode == models.SelectionComprehensive:
		candidates, ok = provider.ComprehensiveFunds(ctx, req.RiskProfile, fetchCount)
	case req.SelectionMode == models.SelectionCurated:
		candidates, ok = provider.CuratedFunds(ctx, req.RiskProfile, fetchCount)
	default:
		// No explicit mode: static allocation tables, as always.
		wantDynamic = false
	}

	if wantDynamic && ok {
		recs := make([]models.Recommendation, 0, len(candidates))
		perFund := 100.0 / float64(len(candidates))
		for _, fc := range candidates {
			recs = append(recs, models.Recommendation{
				FundName:          fc.Name,
				FundType:          fc.Type,
				AllocationPercent: perFund,
				MonthlyInvestment: RoundSIPAmount(req.MonthlyInvestment * perFund / 100),
				ExpectedReturn:    fc.ExpectedReturn,
				RiskLevel:         fc.RiskLevel,
				SchemeCode:        fc.SchemeCode,
				NAV:               fc.NAV,
				NAVDate:           fc.NAVDate,
				FundHouse:         fc.FundHouse,
				HasHoldings:       true,
			})
		}
		return selection{
			recommendations: recs,
			dataSource: &models.DataSourceInfo{
				Source:     "api",
				APIName:    "MFApi",
				FundCount:  len(recs),
				HasLiveNAV: true,
			},
		}
	}

	sel := staticGeneralSelection(req, alloc)
	if wantDynamic {
		// A dynamic mode was requested but the API had nothing.
		sel.dataSource = &models.DataSourceInfo{
			Source:    "static",
			Reason:    "api_unavailable",
			FundCount: len(sel.recommendations),
		}
		sel.usedFallback = true
	}
	return sel
}

// staticGeneralSelection spreads each category's allocation evenly over
// its curated fund list.
func staticGeneralSelection(req *models.InvestmentRequest, alloc models.Allocation) selection {
	var recs []models.Recommendation
	for _, leg := range alloc.Categories() {
		if len(leg.Funds) == 0 {
			continue
		}
		perFundPct := leg.TargetPercent / float64(len(leg.Funds))
		categoryMonthly := req.MonthlyInvestment * leg.TargetPercent / 100
		perFundMonthly := categoryMonthly / float64(len(leg.Funds))

		for _, name := range leg.Funds {
			recs = append(recs, models.Recommendation{
				FundName:          name,
				FundType:          leg.Category.Title(),
				AllocationPercent: perFundPct,
				MonthlyInvestment: RoundSIPAmount(perFundMonthly),
				ExpectedReturn:    leg.ExpectedReturn,
				RiskLevel:         req.RiskProfile.Title(),
				HasHoldings:       false,
			})
		}
	}
	return selection{recommendations: recs}
}
