package holdings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	svc := NewService()

	t.Run("explicit sector wins", func(t *testing.T) {
		report, ok := svc.Lookup(Query{FundName: "Some Technology Fund", Sector: "pharma"})
		require.True(t, ok)
		assert.Equal(t, "sector_inference", report.DataSource)
		assert.Len(t, report.Holdings, 10)
		assert.Equal(t, "Sun Pharmaceutical", report.Holdings[0].Name)
		assert.Contains(t, report.Note, "Pharma sector funds")
	})

	t.Run("sector matching is case insensitive", func(t *testing.T) {
		report, ok := svc.Lookup(Query{Sector: " Banking "})
		require.True(t, ok)
		assert.Equal(t, "sector_inference", report.DataSource)
		assert.Equal(t, "HDFC Bank", report.Holdings[0].Name)
	})

	t.Run("infers sector from fund name", func(t *testing.T) {
		report, ok := svc.Lookup(Query{FundName: "ICICI Prudential Technology Fund"})
		require.True(t, ok)
		assert.Equal(t, "name_inference", report.DataSource)
		assert.Equal(t, "Tata Consultancy Services", report.Holdings[0].Name)
		assert.Contains(t, report.Note, "inferred from fund name")
	})

	t.Run("name inference respects keyword order", func(t *testing.T) {
		// "steel" maps to metal even though the name also says "power".
		report, ok := svc.Lookup(Query{FundName: "Jindal Steel Power Fund"})
		require.True(t, ok)
		assert.Equal(t, "name_inference", report.DataSource)
		assert.Equal(t, "Tata Steel", report.Holdings[0].Name)
	})

	t.Run("infers sector from a sectoral category", func(t *testing.T) {
		report, ok := svc.Lookup(Query{FundName: "Alpha Growth Fund", FundType: "Sectoral/Thematic - Energy"})
		require.True(t, ok)
		assert.Equal(t, "category_inference", report.DataSource)
		assert.Contains(t, report.Note, "Energy sector")
	})

	t.Run("category inference requires a sectoral fund type", func(t *testing.T) {
		_, ok := svc.Lookup(Query{FundName: "Alpha Growth Fund", FundType: "Equity - Large Cap"})
		assert.False(t, ok)
	})

	t.Run("index funds fall back to the nifty composition", func(t *testing.T) {
		report, ok := svc.Lookup(Query{FundName: "UTI Nifty 50 Index Fund"})
		require.True(t, ok)
		assert.Equal(t, "index_composition", report.DataSource)
		require.Len(t, report.Holdings, 10)
		assert.Equal(t, "Reliance Industries", report.Holdings[0].Name)
		assert.Equal(t, "Top 10 holdings from Nifty 50 index (approximate weights)", report.Note)
	})

	t.Run("no strategy matches", func(t *testing.T) {
		report, ok := svc.Lookup(Query{FundName: "Parag Parikh Flexi Cap Fund"})
		assert.False(t, ok)
		assert.Nil(t, report)
	})

	t.Run("empty query", func(t *testing.T) {
		_, ok := svc.Lookup(Query{})
		assert.False(t, ok)
	})
}
