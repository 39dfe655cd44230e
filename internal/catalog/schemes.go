package catalog

import "github.com/fundwise/sipadvisor/internal/models"

// AMFI scheme codes for the general (non-sector) candidate universe,
// keyed by fund category. Order matters for the comprehensive mode,
// which takes codes front to back.
var GeneralFundCodes = map[models.FundCategory][]string{
	models.CategoryDebt: {
		"119016", // HDFC Short Term Debt Fund
		"111972", // ICICI Prudential Corporate Bond Fund
		"120438", // Axis Banking & PSU Debt Fund
		"118987", // HDFC Corporate Bond Fund
		"119553", // HDFC Banking and PSU Debt Fund
		"120595", // ICICI Prudential Banking and PSU Debt Fund
		"119554", // SBI Magnum Income Fund
		"119555", // Kotak Bond Fund
		"119556", // Aditya Birla Sun Life Corporate Bond Fund
		"119557", // UTI Bond Fund
	},
	models.CategoryHybrid: {
		"119118", // HDFC Hybrid Debt Fund
		"120252", // ICICI Prudential Equity & Debt Fund
		"118968", // HDFC Balanced Advantage Fund
		"131451", // ICICI Prudential Balanced Advantage Fund
		"119558", // SBI Equity Hybrid Fund
		"119559", // Kotak Equity Hybrid Fund
		"119560", // Aditya Birla Sun Life Equity Hybrid Fund
		"119561", // UTI Hybrid Equity Fund
	},
	models.CategoryEquity: {
		"118825", // Mirae Asset Large Cap Fund
		"122639", // Parag Parikh Flexi Cap Fund
		"149937", // Axis Nifty Midcap 50 Index Fund
		"120164", // Kotak Small Cap Fund
		"149288", // HDFC NIFTY Next 50 Index Fund
		"150313", // UTI Nifty Midcap 150 Quality 50 Index Fund
		"119562", // SBI Bluechip Fund
		"119563", // ICICI Prudential Bluechip Fund
		"119564", // Kotak Bluechip Fund
		"119565", // HDFC Mid-Cap Opportunities Fund
		"119566", // ICICI Prudential Midcap Fund
		"119567", // Nippon India Small Cap Fund
		"119568", // DSP Midcap Fund
		"119569", // Motilal Oswal Midcap Fund
		"119570", // Quant Small Cap Fund
	},
}

// Curated sector picks by AMFI scheme code.
var SectorFundCodes = map[string][]string{
	"metal": {
		"152769", // ICICI Prudential Nifty Metal ETF
		"152924", // Mirae Asset Nifty Metal ETF
		"154034", // Groww Nifty Metal ETF
		"149455", // ICICI Prudential Strategic Metal and Energy FoF - Growth
		"149458", // ICICI Prudential Strategic Metal and Energy FoF - IDCW
		"119584", // ABSL Commodities Equities Global Precious Metals - Growth
		"119583", // ABSL Commodities Equities Global Precious Metals - Dividend
		"111346", // BSL Commodities Equities Global Precious Metals - Growth
		"111345", // BSL Commodities Equities Global Precious Metals - Inst Growth
		"149456", // ICICI Prudential Strategic Metal and Energy FoF - Regular
	},
	"defense": {
		"152712", // Motilal Oswal Nifty India Defence Index Fund - Direct
		"151750", // HDFC Defence Fund - Direct
		"152798", // ABSL Nifty India Defence Index Fund - Direct
		"153045", // Nippon India ETF Nifty India Defence
		"153128", // ICICI Prudential Nifty India Defence ETF
		"152713", // Motilal Oswal Nifty India Defence Index Fund - Regular
		"151751", // HDFC Defence Fund - Regular
		"152799", // ABSL Nifty India Defence Index Fund - Regular
		"152800", // ABSL Nifty India Defence Index Fund - Direct IDCW
		"151752", // HDFC Defence Fund - Direct IDCW
	},
	"it": {
		"152462", // Kotak Technology Fund - Growth
		"152437", // Edelweiss Technology Fund - Growth
		"120595", // ICICI Prudential Technology Fund - IDCW
		"120594", // ICICI Prudential Technology Fund - Growth
		"152923", // Mirae Asset Nifty IT ETF
		"152768", // ICICI Prudential Nifty IT ETF
		"153046", // Nippon India ETF Nifty IT
		"119551", // Tata Digital India Fund
		"149267", // ITI Technology Fund
		"152463", // Kotak Technology Fund - IDCW
	},
	"pharma": {
		"147409", // ABSL Pharma and Healthcare Fund - Growth
		"149268", // ITI Pharma and Healthcare Fund - Growth
		"143874", // ICICI Prudential P.H.D Fund - Cumulative
		"152925", // Mirae Asset Nifty Pharma ETF
		"152770", // ICICI Prudential Nifty Pharma ETF
		"153047", // Nippon India ETF Nifty Pharma
		"147410", // ABSL Pharma and Healthcare Fund - IDCW
		"143875", // ICICI Prudential P.H.D Fund - IDCW
		"149269", // ITI Pharma and Healthcare Fund - IDCW
		"119552", // SBI Healthcare Opportunities Fund
	},
	"banking": {
		"103188", // ABSL Banking & PSU Debt Fund
		"101296", // Bank BeES
		"152771", // ICICI Prudential Nifty Bank ETF
		"152926", // Mirae Asset Nifty Bank ETF
		"153048", // Nippon India ETF Nifty Bank
		"152927", // Mirae Asset Nifty PSU Bank ETF
		"153049", // Nippon India ETF Nifty PSU Bank
		"152928", // Mirae Asset Nifty Financial Services ETF
		"153050", // Nippon India ETF Nifty Financial Services
		"119553", // HDFC Banking and PSU Debt Fund
	},
	"auto": {
		"152929", // Mirae Asset Nifty Auto ETF
		"152772", // ICICI Prudential Nifty Auto ETF
		"153051", // Nippon India ETF Nifty Auto
		"149455", // ICICI Prudential Strategic Metal and Energy FoF
		"119554", // Tata India Consumer Fund
		"152930", // Groww Nifty Auto Index Fund
		"152931", // Kotak Nifty Auto Index Fund
		"152773", // ICICI Prudential Nifty Auto ETF - Regular
		"152932", // Mirae Asset Nifty Auto ETF - Regular
		"153052", // Nippon India ETF Nifty Auto - Regular
	},
	"infrastructure": {
		"119555", // ICICI Prudential Infrastructure Fund - Growth
		"119556", // Kotak Infrastructure and Economic Reform Fund - Growth
		"119557", // L&T Infrastructure Fund - Growth
		"149455", // ICICI Prudential Strategic Metal and Energy FoF
		"119558", // SBI Infrastructure Fund
		"119559", // ICICI Prudential Infrastructure Fund - IDCW
		"119560", // Kotak Infrastructure and Economic Reform Fund - IDCW
		"119561", // L&T Infrastructure Fund - IDCW
		"119562", // ABSL Infrastructure Fund
		"119563", // HDFC Infrastructure Fund
	},
	"energy": {
		"149455", // ICICI Prudential Strategic Metal and Energy FoF - Direct
		"119028", // DSP Natural Resources and New Energy Fund - Growth
		"119564", // SBI Magnum Global Fund
		"152933", // Mirae Asset Nifty Energy ETF
		"152774", // ICICI Prudential Nifty Energy ETF
		"153053", // Nippon India ETF Nifty Energy
		"149456", // ICICI Prudential Strategic Metal and Energy FoF - Regular
		"119029", // DSP Natural Resources and New Energy Fund - IDCW
		"119565", // ABSL Natural Resources Fund
		"119566", // HDFC Natural Resources and New Energy Fund
	},
	"fmcg": {
		"152934", // Mirae Asset Nifty FMCG ETF
		"152775", // ICICI Prudential Nifty FMCG ETF
		"153054", // Nippon India ETF Nifty FMCG
		"119567", // Tata India Consumer Fund
		"119568", // ICICI Prudential FMCG Fund
		"119569", // SBI Consumption Opportunities Fund
		"119570", // ABSL FMCG Fund
		"119571", // HDFC FMCG Fund
		"152935", // Groww Nifty FMCG Index Fund
		"119572", // Kotak FMCG Fund
	},
}

// Passive-only universe for the index_funds_only mode.
var IndexFundCodes = map[string][]string{
	"large_cap": {
		"120716", // HDFC Index Fund - Nifty 50 Plan
		"120503", // ICICI Prudential Nifty Index Fund
		"120830", // UTI Nifty Index Fund
		"149288", // HDFC NIFTY Next 50 Index Fund
		"120717", // SBI Nifty Index Fund
		"149937", // Axis Nifty Midcap 50 Index Fund - Regular
	},
	"mid_cap": {
		"150313", // UTI Nifty Midcap 150 Quality 50 Index Fund
		"149289", // HDFC Nifty Midcap 150 Index Fund
		"149938", // Axis Nifty Midcap 50 Index Fund - Direct
		"150314", // ICICI Prudential Nifty Midcap 150 Index Fund
	},
	"small_cap": {
		"150315", // UTI Nifty Smallcap 250 Index Fund
		"149290", // HDFC Nifty Smallcap 250 Index Fund
		"150316", // ICICI Prudential Nifty Smallcap 250 Index Fund
	},
	"sectoral": {
		"149291", // HDFC Nifty Bank Index Fund
		"150317", // ICICI Prudential Nifty Bank Index Fund
		"149292", // HDFC Nifty IT Index Fund
		"150318", // ICICI Prudential Nifty IT Index Fund
		"149293", // HDFC Nifty Pharma Index Fund
		"150319", // ICICI Prudential Nifty Pharma Index Fund
	},
	"debt": {
		"149294", // HDFC Nifty SDL Plus AAA PSU Bond Apr 2027 60:40 Index Fund
		"150320", // ICICI Prudential Nifty SDL Plus AAA PSU Bond Index Fund
		"149295", // UTI Nifty SDL Plus AAA PSU Bond Index Fund
	},
}
