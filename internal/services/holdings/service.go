package holdings

import (
	"fmt"
	"strings"

	"github.com/fundwise/sipadvisor/internal/catalog"
	"github.com/fundwise/sipadvisor/internal/models"
)

// Query describes the fund whose portfolio composition is requested.
// All fields are optional; the lookup works with whatever is present.
type Query struct {
	FundName string
	FundType string
	Sector   string
}

// Service resolves representative holdings for a fund through a chain
// of strategies: explicit sector, name inference, category inference
// and finally index composition for index-style funds.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Lookup returns the holdings report for the query, or false when no
// strategy matched.
func (s *Service) Lookup(q Query) (*models.HoldingsReport, bool) {
	sector := strings.ToLower(strings.TrimSpace(q.Sector))
	if h, ok := catalog.SectorHoldings[sector]; ok {
		return &models.HoldingsReport{
			Holdings:    h,
			DataSource:  "sector_inference",
			LastUpdated: "Typical sector allocation",
			Note:        fmt.Sprintf("Representative holdings for %s sector funds", titleCase(sector)),
		}, true
	}

	name := strings.ToLower(q.FundName)
	if inferred := sectorFromName(name); inferred != "" {
		return &models.HoldingsReport{
			Holdings:    catalog.SectorHoldings[inferred],
			DataSource:  "name_inference",
			LastUpdated: "Typical sector allocation",
			Note:        fmt.Sprintf("Representative holdings for %s sector (inferred from fund name)", titleCase(inferred)),
		}, true
	}

	fundType := strings.ToLower(q.FundType)
	if strings.Contains(fundType, "sectoral") || strings.Contains(fundType, "thematic") {
		if inferred := sectorFromCategory(fundType); inferred != "" {
			return &models.HoldingsReport{
				Holdings:    catalog.SectorHoldings[inferred],
				DataSource:  "category_inference",
				LastUpdated: "Typical sector allocation",
				Note:        fmt.Sprintf("Representative holdings for %s sector", titleCase(inferred)),
			}, true
		}
	}

	if strings.Contains(name, "index") || strings.Contains(name, "nifty") || strings.Contains(name, "sensex") {
		return &models.HoldingsReport{
			Holdings:    catalog.NiftyHoldings,
			DataSource:  "index_composition",
			LastUpdated: "Approximate Nifty 50 weights",
			Note:        "Top 10 holdings from Nifty 50 index (approximate weights)",
		}, true
	}

	return nil, false
}

// sectorFromName matches fund-name keywords against the sector tables.
// The keyword order is fixed so overlapping names resolve the same way
// every time.
func sectorFromName(name string) string {
	if name == "" {
		return ""
	}
	for _, entry := range catalog.SectorKeywords {
		for _, kw := range entry.Keywords {
			if strings.Contains(name, kw) {
				return entry.Sector
			}
		}
	}
	return ""
}

func sectorFromCategory(fundType string) string {
	switch {
	case strings.Contains(fundType, "technology") || strings.Contains(fundType, "it"):
		return "it"
	case strings.Contains(fundType, "pharma") || strings.Contains(fundType, "healthcare"):
		return "pharma"
	case strings.Contains(fundType, "banking") || strings.Contains(fundType, "financial"):
		return "banking"
	case strings.Contains(fundType, "energy") || strings.Contains(fundType, "power"):
		return "energy"
	}
	return ""
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
