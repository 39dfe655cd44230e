package catalog

import "github.com/fundwise/sipadvisor/internal/models"

// Representative top holdings per sector. Used when a fund's real
// portfolio composition is not available.
var SectorHoldings = map[string][]models.Holding{
	"metal": {
		{Name: "Tata Steel", Percent: 18.5, Sector: "Metals & Mining"},
		{Name: "Hindalco Industries", Percent: 15.2, Sector: "Metals & Mining"},
		{Name: "JSW Steel", Percent: 12.8, Sector: "Metals & Mining"},
		{Name: "Vedanta", Percent: 10.5, Sector: "Metals & Mining"},
		{Name: "NMDC", Percent: 8.3, Sector: "Metals & Mining"},
		{Name: "Coal India", Percent: 7.2, Sector: "Mining"},
		{Name: "Jindal Steel & Power", Percent: 6.5, Sector: "Metals & Mining"},
		{Name: "Steel Authority of India", Percent: 5.8, Sector: "Metals & Mining"},
		{Name: "National Aluminium Company", Percent: 4.2, Sector: "Metals & Mining"},
		{Name: "APL Apollo Tubes", Percent: 3.5, Sector: "Metals & Mining"},
	},
	"defense": {
		{Name: "Hindustan Aeronautics", Percent: 22.5, Sector: "Aerospace & Defense"},
		{Name: "Bharat Electronics", Percent: 18.3, Sector: "Aerospace & Defense"},
		{Name: "Bharat Dynamics", Percent: 12.7, Sector: "Aerospace & Defense"},
		{Name: "Mazagon Dock Shipbuilders", Percent: 10.5, Sector: "Aerospace & Defense"},
		{Name: "Cochin Shipyard", Percent: 8.2, Sector: "Aerospace & Defense"},
		{Name: "Garden Reach Shipbuilders", Percent: 6.8, Sector: "Aerospace & Defense"},
		{Name: "Data Patterns India", Percent: 5.5, Sector: "Aerospace & Defense"},
		{Name: "Solar Industries India", Percent: 4.8, Sector: "Chemicals"},
		{Name: "Paras Defence and Space", Percent: 3.9, Sector: "Aerospace & Defense"},
		{Name: "Astra Microwave Products", Percent: 3.2, Sector: "Aerospace & Defense"},
	},
	"it": {
		{Name: "Tata Consultancy Services", Percent: 20.5, Sector: "IT Services"},
		{Name: "Infosys", Percent: 18.2, Sector: "IT Services"},
		{Name: "HCL Technologies", Percent: 12.8, Sector: "IT Services"},
		{Name: "Wipro", Percent: 10.5, Sector: "IT Services"},
		{Name: "Tech Mahindra", Percent: 8.3, Sector: "IT Services"},
		{Name: "LTIMindtree", Percent: 7.2, Sector: "IT Services"},
		{Name: "Persistent Systems", Percent: 5.5, Sector: "IT Services"},
		{Name: "Mphasis", Percent: 4.8, Sector: "IT Services"},
		{Name: "Coforge", Percent: 3.9, Sector: "IT Services"},
		{Name: "L&T Technology Services", Percent: 3.5, Sector: "IT Services"},
	},
	"pharma": {
		{Name: "Sun Pharmaceutical", Percent: 16.5, Sector: "Pharmaceuticals"},
		{Name: "Divi's Laboratories", Percent: 14.2, Sector: "Pharmaceuticals"},
		{Name: "Dr. Reddy's Laboratories", Percent: 12.8, Sector: "Pharmaceuticals"},
		{Name: "Cipla", Percent: 11.5, Sector: "Pharmaceuticals"},
		{Name: "Lupin", Percent: 9.3, Sector: "Pharmaceuticals"},
		{Name: "Aurobindo Pharma", Percent: 8.2, Sector: "Pharmaceuticals"},
		{Name: "Torrent Pharmaceuticals", Percent: 6.8, Sector: "Pharmaceuticals"},
		{Name: "Alkem Laboratories", Percent: 5.5, Sector: "Pharmaceuticals"},
		{Name: "Biocon", Percent: 4.9, Sector: "Biotechnology"},
		{Name: "Glenmark Pharmaceuticals", Percent: 3.8, Sector: "Pharmaceuticals"},
	},
	"banking": {
		{Name: "HDFC Bank", Percent: 22.5, Sector: "Banking"},
		{Name: "ICICI Bank", Percent: 18.3, Sector: "Banking"},
		{Name: "State Bank of India", Percent: 15.2, Sector: "Banking"},
		{Name: "Kotak Mahindra Bank", Percent: 12.5, Sector: "Banking"},
		{Name: "Axis Bank", Percent: 10.8, Sector: "Banking"},
		{Name: "IndusInd Bank", Percent: 6.5, Sector: "Banking"},
		{Name: "Bank of Baroda", Percent: 4.8, Sector: "Banking"},
		{Name: "Punjab National Bank", Percent: 3.5, Sector: "Banking"},
		{Name: "IDFC First Bank", Percent: 2.9, Sector: "Banking"},
		{Name: "Federal Bank", Percent: 2.5, Sector: "Banking"},
	},
	"energy": {
		{Name: "Reliance Industries", Percent: 25.5, Sector: "Oil & Gas"},
		{Name: "ONGC", Percent: 15.2, Sector: "Oil & Gas"},
		{Name: "Indian Oil Corporation", Percent: 12.8, Sector: "Oil & Gas"},
		{Name: "NTPC", Percent: 10.5, Sector: "Power Generation"},
		{Name: "Power Grid Corporation", Percent: 8.3, Sector: "Power Transmission"},
		{Name: "Adani Green Energy", Percent: 7.2, Sector: "Renewable Energy"},
		{Name: "Tata Power", Percent: 5.8, Sector: "Power Generation"},
		{Name: "Coal India", Percent: 4.5, Sector: "Mining"},
		{Name: "GAIL India", Percent: 3.9, Sector: "Oil & Gas"},
		{Name: "Adani Total Gas", Percent: 3.2, Sector: "Gas Distribution"},
	},
	"auto": {
		{Name: "Maruti Suzuki", Percent: 18.5, Sector: "Automobiles"},
		{Name: "Tata Motors", Percent: 15.2, Sector: "Automobiles"},
		{Name: "Mahindra & Mahindra", Percent: 12.8, Sector: "Automobiles"},
		{Name: "Bajaj Auto", Percent: 10.5, Sector: "Automobiles"},
		{Name: "Hero MotoCorp", Percent: 9.3, Sector: "Automobiles"},
		{Name: "Eicher Motors", Percent: 8.2, Sector: "Automobiles"},
		{Name: "TVS Motor Company", Percent: 6.8, Sector: "Automobiles"},
		{Name: "Ashok Leyland", Percent: 5.5, Sector: "Automobiles"},
		{Name: "Bosch", Percent: 4.2, Sector: "Auto Components"},
		{Name: "Motherson Sumi Systems", Percent: 3.5, Sector: "Auto Components"},
	},
	"fmcg": {
		{Name: "Hindustan Unilever", Percent: 20.5, Sector: "FMCG"},
		{Name: "ITC", Percent: 16.2, Sector: "FMCG"},
		{Name: "Nestle India", Percent: 12.8, Sector: "FMCG"},
		{Name: "Britannia Industries", Percent: 10.5, Sector: "FMCG"},
		{Name: "Dabur India", Percent: 8.3, Sector: "FMCG"},
		{Name: "Marico", Percent: 7.2, Sector: "FMCG"},
		{Name: "Godrej Consumer Products", Percent: 6.5, Sector: "FMCG"},
		{Name: "Colgate-Palmolive India", Percent: 5.8, Sector: "FMCG"},
		{Name: "Tata Consumer Products", Percent: 4.9, Sector: "FMCG"},
		{Name: "Varun Beverages", Percent: 3.8, Sector: "FMCG"},
	},
	"infrastructure": {
		{Name: "Larsen & Toubro", Percent: 22.5, Sector: "Construction"},
		{Name: "UltraTech Cement", Percent: 15.2, Sector: "Cement"},
		{Name: "Adani Ports", Percent: 12.8, Sector: "Infrastructure"},
		{Name: "Ambuja Cements", Percent: 10.5, Sector: "Cement"},
		{Name: "ACC", Percent: 8.3, Sector: "Cement"},
		{Name: "Shree Cement", Percent: 7.2, Sector: "Cement"},
		{Name: "NCC", Percent: 5.8, Sector: "Construction"},
		{Name: "IRB Infrastructure", Percent: 4.5, Sector: "Infrastructure"},
		{Name: "KNR Constructions", Percent: 3.9, Sector: "Construction"},
		{Name: "PNC Infratech", Percent: 3.2, Sector: "Construction"},
	},
}

// NiftyHoldings is the approximate top-10 composition of the Nifty 50
// index, shown for index and other diversified funds.
var NiftyHoldings = []models.Holding{
	{Name: "Reliance Industries", Percent: 10.2, Sector: "Oil & Gas"},
	{Name: "HDFC Bank", Percent: 9.8, Sector: "Banking"},
	{Name: "ICICI Bank", Percent: 7.5, Sector: "Banking"},
	{Name: "Infosys", Percent: 6.2, Sector: "IT Services"},
	{Name: "TCS", Percent: 5.8, Sector: "IT Services"},
	{Name: "Hindustan Unilever", Percent: 4.5, Sector: "FMCG"},
	{Name: "ITC", Percent: 4.2, Sector: "FMCG"},
	{Name: "State Bank of India", Percent: 3.8, Sector: "Banking"},
	{Name: "Bharti Airtel", Percent: 3.5, Sector: "Telecom"},
	{Name: "Kotak Mahindra Bank", Percent: 3.2, Sector: "Banking"},
}

// SectorKeywords maps sector keys to fund-name substrings that imply
// the sector. Checked in this order.
var SectorKeywords = []struct {
	Sector   string
	Keywords []string
}{
	{"metal", []string{"metal", "steel", "mining"}},
	{"defense", []string{"defense", "defence", "aerospace"}},
	{"it", []string{"technology", "tech", "it", "software", "digital"}},
	{"pharma", []string{"pharma", "healthcare", "health", "medical"}},
	{"banking", []string{"banking", "bank", "financial services", "psu"}},
	{"energy", []string{"energy", "power", "oil", "gas", "renewable"}},
	{"auto", []string{"auto", "automobile", "mobility"}},
	{"fmcg", []string{"fmcg", "consumer", "consumption"}},
	{"infrastructure", []string{"infrastructure", "construction", "cement"}},
}
