package catalog

// CompanyWeight is one portfolio position of a fund.
type CompanyWeight struct {
	Company string  `json:"company"`
	Percent float64 `json:"percentage"`
}

// StaticSectorFund is a hand-curated fund entry used when live fund data
// cannot be fetched. Static entries carry no scheme code.
type StaticSectorFund struct {
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	ExpectedReturn float64         `json:"expected_return"`
	RiskLevel      string          `json:"risk_level"`
	Description    string          `json:"description"`
	TopHoldings    []CompanyWeight `json:"top_holdings"`
}

// SectorGroup names a sector and lists its curated funds.
type SectorGroup struct {
	Name  string
	Funds []StaticSectorFund
}

// SectorOption is a sector choice as presented to clients.
type SectorOption struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

var sectorFunds = map[string]SectorGroup{
	"metal": {
		Name: "Metal & Mining",
		Funds: []StaticSectorFund{
			{
				Name:           "Nippon India ETF Metal",
				Type:           "ETF",
				ExpectedReturn: 18.0,
				RiskLevel:      "Very High",
				Description:    "Invests in metal and mining companies including steel, aluminum, copper, and coal sectors",
				TopHoldings: []CompanyWeight{
					{"Tata Steel", 22.5},
					{"Hindalco Industries", 18.3},
					{"JSW Steel", 15.7},
					{"Coal India", 12.4},
					{"Vedanta", 10.8},
				},
			},
			{
				Name:           "SBI PSU Fund",
				Type:           "Equity Fund",
				ExpectedReturn: 16.5,
				RiskLevel:      "High",
				Description:    "Focuses on Public Sector Undertakings including metal PSUs",
				TopHoldings: []CompanyWeight{
					{"NTPC", 8.5},
					{"Coal India", 7.8},
					{"Power Grid", 7.2},
					{"ONGC", 6.9},
					{"Indian Oil", 6.5},
				},
			},
		},
	},
	"defense": {
		Name: "Defense & Aerospace",
		Funds: []StaticSectorFund{
			{
				Name:           "Motilal Oswal Nifty India Defence Index Fund",
				Type:           "Index Fund",
				ExpectedReturn: 20.0,
				RiskLevel:      "Very High",
				Description:    "Tracks Nifty India Defence Index with defense manufacturing and aerospace companies",
				TopHoldings: []CompanyWeight{
					{"Hindustan Aeronautics (HAL)", 25.3},
					{"Bharat Electronics (BEL)", 22.7},
					{"Mazagon Dock Shipbuilders", 15.4},
					{"Cochin Shipyard", 12.8},
					{"Bharat Dynamics", 10.2},
				},
			},
			{
				Name:           "SBI PSU Fund",
				Type:           "Equity Fund",
				ExpectedReturn: 16.5,
				RiskLevel:      "High",
				Description:    "PSU-focused fund with defense sector exposure",
				TopHoldings: []CompanyWeight{
					{"Bharat Electronics", 6.5},
					{"NTPC", 8.5},
					{"Power Grid", 7.2},
					{"ONGC", 6.9},
					{"Indian Oil", 6.5},
				},
			},
		},
	},
	"it": {
		Name: "Information Technology",
		Funds: []StaticSectorFund{
			{
				Name:           "ICICI Prudential Technology Fund",
				Type:           "Sectoral Fund",
				ExpectedReturn: 17.5,
				RiskLevel:      "High",
				Description:    "Invests in IT services, software, and technology companies",
				TopHoldings: []CompanyWeight{
					{"TCS", 18.5},
					{"Infosys", 16.8},
					{"HCL Technologies", 12.4},
					{"Wipro", 10.2},
					{"Tech Mahindra", 8.7},
				},
			},
			{
				Name:           "Nippon India ETF Nifty IT",
				Type:           "ETF",
				ExpectedReturn: 16.0,
				RiskLevel:      "High",
				Description:    "Tracks Nifty IT Index with top IT companies",
				TopHoldings: []CompanyWeight{
					{"TCS", 20.3},
					{"Infosys", 18.9},
					{"HCL Technologies", 13.2},
					{"Wipro", 11.5},
					{"Tech Mahindra", 9.8},
				},
			},
		},
	},
	"pharma": {
		Name: "Pharmaceuticals & Healthcare",
		Funds: []StaticSectorFund{
			{
				Name:           "Nippon India Pharma Fund",
				Type:           "Sectoral Fund",
				ExpectedReturn: 15.5,
				RiskLevel:      "High",
				Description:    "Focuses on pharmaceutical and healthcare companies",
				TopHoldings: []CompanyWeight{
					{"Sun Pharma", 15.8},
					{"Divi's Laboratories", 12.4},
					{"Dr. Reddy's Labs", 11.7},
					{"Cipla", 10.5},
					{"Aurobindo Pharma", 9.2},
				},
			},
			{
				Name:           "SBI Healthcare Opportunities Fund",
				Type:           "Sectoral Fund",
				ExpectedReturn: 16.0,
				RiskLevel:      "High",
				Description:    "Invests in pharma, hospitals, and healthcare services",
				TopHoldings: []CompanyWeight{
					{"Sun Pharma", 14.2},
					{"Apollo Hospitals", 11.8},
					{"Divi's Laboratories", 10.9},
					{"Dr. Reddy's Labs", 10.3},
					{"Cipla", 9.7},
				},
			},
		},
	},
	"banking": {
		Name: "Banking & Financial Services",
		Funds: []StaticSectorFund{
			{
				Name:           "ICICI Prudential Banking and Financial Services Fund",
				Type:           "Sectoral Fund",
				ExpectedReturn: 16.5,
				RiskLevel:      "High",
				Description:    "Focuses on banking and financial services sector",
				TopHoldings: []CompanyWeight{
					{"HDFC Bank", 18.5},
					{"ICICI Bank", 16.2},
					{"Kotak Mahindra Bank", 12.8},
					{"Axis Bank", 11.4},
					{"SBI", 10.7},
				},
			},
			{
				Name:           "Nippon India ETF Bank BeES",
				Type:           "ETF",
				ExpectedReturn: 15.0,
				RiskLevel:      "High",
				Description:    "Tracks Nifty Bank Index",
				TopHoldings: []CompanyWeight{
					{"HDFC Bank", 28.5},
					{"ICICI Bank", 22.3},
					{"Kotak Mahindra Bank", 12.4},
					{"Axis Bank", 11.8},
					{"SBI", 10.2},
				},
			},
		},
	},
	"auto": {
		Name: "Automobile & Auto Components",
		Funds: []StaticSectorFund{
			{
				Name:           "Tata Digital India Fund",
				Type:           "Thematic Fund",
				ExpectedReturn: 17.0,
				RiskLevel:      "High",
				Description:    "Includes auto sector with digital transformation focus",
				TopHoldings: []CompanyWeight{
					{"Maruti Suzuki", 12.5},
					{"Mahindra & Mahindra", 10.8},
					{"Tata Motors", 9.7},
					{"Bajaj Auto", 8.4},
					{"Hero MotoCorp", 7.9},
				},
			},
		},
	},
	"infrastructure": {
		Name: "Infrastructure & Construction",
		Funds: []StaticSectorFund{
			{
				Name:           "ICICI Prudential Infrastructure Fund",
				Type:           "Sectoral Fund",
				ExpectedReturn: 18.0,
				RiskLevel:      "Very High",
				Description:    "Invests in infrastructure, construction, and capital goods",
				TopHoldings: []CompanyWeight{
					{"Larsen & Toubro", 15.8},
					{"UltraTech Cement", 12.4},
					{"Power Grid", 10.7},
					{"NTPC", 9.8},
					{"Adani Ports", 8.9},
				},
			},
		},
	},
	"energy": {
		Name: "Energy & Power",
		Funds: []StaticSectorFund{
			{
				Name:           "SBI PSU Fund",
				Type:           "Equity Fund",
				ExpectedReturn: 16.5,
				RiskLevel:      "High",
				Description:    "PSU fund with significant energy sector exposure",
				TopHoldings: []CompanyWeight{
					{"NTPC", 8.5},
					{"Power Grid", 7.2},
					{"ONGC", 6.9},
					{"Indian Oil", 6.5},
					{"Coal India", 7.8},
				},
			},
		},
	},
	"fmcg": {
		Name: "FMCG & Consumer Goods",
		Funds: []StaticSectorFund{
			{
				Name:           "Nippon India ETF Nifty FMCG",
				Type:           "ETF",
				ExpectedReturn: 14.0,
				RiskLevel:      "Medium",
				Description:    "Tracks FMCG sector with consumer goods companies",
				TopHoldings: []CompanyWeight{
					{"Hindustan Unilever", 32.5},
					{"ITC", 18.7},
					{"Nestle India", 12.4},
					{"Britannia", 10.8},
					{"Dabur India", 8.2},
				},
			},
		},
	},
	"diversified": {
		Name: "Diversified / Multi-Sector",
		Funds: []StaticSectorFund{
			{
				Name:           "Axis Bluechip Fund",
				Type:           "Large Cap Fund",
				ExpectedReturn: 15.0,
				RiskLevel:      "Medium-High",
				Description:    "Diversified large-cap fund across multiple sectors",
				TopHoldings: []CompanyWeight{
					{"HDFC Bank", 8.5},
					{"ICICI Bank", 7.2},
					{"Infosys", 6.8},
					{"Reliance Industries", 6.5},
					{"TCS", 5.9},
				},
			},
			{
				Name:           "Parag Parikh Flexi Cap Fund",
				Type:           "Flexi Cap Fund",
				ExpectedReturn: 15.0,
				RiskLevel:      "High",
				Description:    "Diversified across Indian and international equities",
				TopHoldings: []CompanyWeight{
					{"Alphabet (Google)", 8.2},
					{"Microsoft", 7.5},
					{"HDFC Bank", 6.8},
					{"Infosys", 5.9},
					{"Amazon", 5.2},
				},
			},
		},
	},
}

// SectorFunds returns the curated static funds for a sector key.
func SectorFunds(sector string) (SectorGroup, bool) {
	group, ok := sectorFunds[sector]
	return group, ok
}

// DiversifiedFunds returns the static multi-sector picks.
func DiversifiedFunds() []StaticSectorFund {
	return sectorFunds["diversified"].Funds
}

// SectorOptions lists the sector choices shown to clients, diversified first.
func SectorOptions() []SectorOption {
	return []SectorOption{
		{Value: "diversified", Label: "Diversified (Recommended)", Description: "Balanced across all sectors"},
		{Value: "metal", Label: "Metal & Mining", Description: "Steel, aluminum, copper, coal"},
		{Value: "defense", Label: "Defense & Aerospace", Description: "Defense manufacturing, aerospace"},
		{Value: "it", Label: "Information Technology", Description: "IT services, software"},
		{Value: "pharma", Label: "Pharmaceuticals", Description: "Pharma, healthcare"},
		{Value: "banking", Label: "Banking & Finance", Description: "Banks, financial services"},
		{Value: "auto", Label: "Automobile", Description: "Auto manufacturers, components"},
		{Value: "infrastructure", Label: "Infrastructure", Description: "Construction, capital goods"},
		{Value: "energy", Label: "Energy & Power", Description: "Oil, gas, power generation"},
		{Value: "fmcg", Label: "FMCG & Consumer", Description: "Consumer goods, retail"},
	}
}
