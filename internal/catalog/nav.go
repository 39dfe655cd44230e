package catalog

// Reference NAVs for the curated fund universe, used when no live NAV
// is available.
var fundNAVs = map[string]float64{
	"HDFC Short Term Debt Fund":               25.43,
	"ICICI Prudential Corporate Bond Fund":    22.87,
	"Axis Banking & PSU Debt Fund":            18.92,
	"HDFC Hybrid Debt Fund":                   45.67,
	"ICICI Prudential Equity & Debt Fund":     156.34,
	"HDFC Index Fund - Nifty 50":              89.23,
	"UTI Nifty Index Fund":                    112.45,
	"HDFC Corporate Bond Fund":                23.56,
	"Axis Corporate Debt Fund":                19.78,
	"HDFC Balanced Advantage Fund":            234.56,
	"ICICI Prudential Balanced Advantage Fund": 45.89,
	"Axis Bluechip Fund":                      67.34,
	"Mirae Asset Large Cap Fund":              89.12,
	"HDFC Top 100 Fund":                       678.90,
	"Parag Parikh Flexi Cap Fund":             56.78,
	"Mirae Asset Emerging Bluechip Fund":      78.45,
	"Axis Midcap Fund":                        98.76,
	"Kotak Small Cap Fund":                    234.12,
}

// ReferenceNAV returns the static NAV for a fund, with 100.00 as the
// default for unknown funds.
func ReferenceNAV(fundName string) float64 {
	if nav, ok := fundNAVs[fundName]; ok {
		return nav
	}
	return 100.00
}
