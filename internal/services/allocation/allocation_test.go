package allocation

import (
	"testing"

	"github.com/findosh/advisor/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAllocate_MediumDefaultCatalog(t *testing.T) {
	catalog := models.DefaultAssets()

	alloc, err := Allocate(catalog, models.RiskMedium)
	require.NoError(t, err)
	require.Len(t, alloc, 10)

	for _, e := range alloc {
		assert.True(t, e.Fraction.Equal(d("0.1")), "%s got %s", e.Asset, e.Fraction)
	}

	byType := alloc.ByType(catalog)
	assert.True(t, byType[models.AssetTypeStock].Equal(d("0.5")))
	assert.True(t, byType[models.AssetTypeBond].Equal(d("0.3")))
	assert.True(t, byType[models.AssetTypeCommodity].Equal(d("0.1")))
	assert.True(t, byType[models.AssetTypeRealEstate].Equal(d("0.1")))
	assert.True(t, alloc.Total().Equal(d("1")), "total %s", alloc.Total())

	// Medium keeps catalog order within each type
	assert.Equal(t, []string{
		"Nifty 500 ETF",
		"High-Yield Dividend ETF",
		"International Stocks ETF",
		"Emerging Markets ETF",
		"Technology Sector ETF",
		"Total Bond ETF",
		"Treasury Bonds",
		"Corporate Bonds ETF",
		"Gold ETF",
		"Real Estate ETF",
	}, alloc.Names())
}

func TestAllocate_HighOrdersByReturn(t *testing.T) {
	catalog := []models.Asset{
		{Name: "Dividend", Type: models.AssetTypeStock, AnnualReturn: d("0.07"), RiskLevel: d("0.6")},
		{Name: "Tech", Type: models.AssetTypeStock, AnnualReturn: d("0.12"), RiskLevel: d("0.9")},
	}

	alloc, err := Allocate(catalog, models.RiskHigh)
	require.NoError(t, err)
	require.Len(t, alloc, 2)

	assert.Equal(t, "Tech", alloc[0].Asset)
	assert.Equal(t, "Dividend", alloc[1].Asset)
	assert.True(t, alloc[0].Fraction.Equal(d("0.35")))
	assert.True(t, alloc[1].Fraction.Equal(d("0.35")))
}

func TestAllocate_LowOrdersByRisk(t *testing.T) {
	alloc, err := Allocate(models.DefaultAssets(), models.RiskLow)
	require.NoError(t, err)

	names := alloc.Names()
	assert.Equal(t, "High-Yield Dividend ETF", names[0], "safest stock first")
	assert.Equal(t, []string{"Treasury Bonds", "Total Bond ETF", "Corporate Bonds ETF"}, names[5:8])

	byType := alloc.ByType(models.DefaultAssets())
	assert.True(t, byType[models.AssetTypeBond].Round(10).Equal(d("0.5")))
	assert.True(t, byType[models.AssetTypeStock].Round(10).Equal(d("0.3")))

	total := alloc.Total().Round(models.FractionPrecision)
	assert.True(t, total.Equal(d("1")), "total %s", alloc.Total())
	assert.True(t, alloc.Unallocated().IsZero())
}

func TestAllocate_UnevenSplitIsFullyAllocated(t *testing.T) {
	catalog := []models.Asset{
		{Name: "S", Type: models.AssetTypeStock, AnnualReturn: d("0.1"), RiskLevel: d("0.8")},
		{Name: "B", Type: models.AssetTypeBond, AnnualReturn: d("0.04"), RiskLevel: d("0.3")},
		{Name: "C1", Type: models.AssetTypeCommodity, AnnualReturn: d("0.05"), RiskLevel: d("0.6")},
		{Name: "C2", Type: models.AssetTypeCommodity, AnnualReturn: d("0.06"), RiskLevel: d("0.6")},
		{Name: "C3", Type: models.AssetTypeCommodity, AnnualReturn: d("0.07"), RiskLevel: d("0.6")},
		{Name: "R", Type: models.AssetTypeRealEstate, AnnualReturn: d("0.08"), RiskLevel: d("0.7")},
	}

	alloc, err := Allocate(catalog, models.RiskMedium)
	require.NoError(t, err)
	require.Len(t, alloc, 6)

	// Each commodity gets an equal third of the 10% target
	for _, name := range []string{"C1", "C2", "C3"} {
		frac, _ := alloc.Get(name)
		assert.True(t, frac.Equal(d("0.0333333333333333")), "%s got %s", name, frac)
	}
	assert.True(t, Undistributed(catalog, models.RiskMedium).IsZero())
	assert.True(t, alloc.Unallocated().IsZero(), "total %s", alloc.Total())
}

func TestAllocate_MissingTypeLeavesShareUndistributed(t *testing.T) {
	catalog := []models.Asset{
		{Name: "Stock A", Type: models.AssetTypeStock, AnnualReturn: d("0.1"), RiskLevel: d("0.8")},
		{Name: "Bond A", Type: models.AssetTypeBond, AnnualReturn: d("0.04"), RiskLevel: d("0.3")},
		{Name: "Crypto", Type: models.AssetType("crypto"), AnnualReturn: d("0.5"), RiskLevel: d("1")},
	}

	alloc, err := Allocate(catalog, models.RiskMedium)
	require.NoError(t, err)

	assert.Equal(t, []string{"Stock A", "Bond A"}, alloc.Names(), "types outside the policy are ignored")
	assert.True(t, alloc.Total().Equal(d("0.8")))
	assert.True(t, Undistributed(catalog, models.RiskMedium).Equal(d("0.2")))
}

func TestAllocate_EmptyCatalog(t *testing.T) {
	alloc, err := Allocate(nil, models.RiskHigh)
	require.NoError(t, err)
	assert.Empty(t, alloc)
	assert.True(t, alloc.Total().IsZero())
}

func TestAllocate_InvalidInput(t *testing.T) {
	_, err := Allocate(models.DefaultAssets(), models.RiskCategory("reckless"))
	assert.True(t, models.IsInvalidInput(err))

	dup := []models.Asset{{Name: "X", Type: models.AssetTypeStock}, {Name: "X", Type: models.AssetTypeBond}}
	_, err = Allocate(dup, models.RiskLow)
	assert.True(t, models.IsInvalidInput(err))
}

func TestAllocate_Idempotent(t *testing.T) {
	catalog := models.DefaultAssets()
	first, err := Allocate(catalog, models.RiskHigh)
	require.NoError(t, err)
	second, err := Allocate(catalog, models.RiskHigh)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Catalog order is untouched by the sort
	assert.Equal(t, "Nifty 500 ETF", catalog[0].Name)
}

func TestPolicy(t *testing.T) {
	rows := Policy()
	require.Len(t, rows, 4)
	assert.Equal(t, models.AssetTypeStock, rows[0].Type)

	for _, c := range []models.RiskCategory{models.RiskLow, models.RiskMedium, models.RiskHigh} {
		total := decimal.Zero
		for _, r := range rows {
			total = total.Add(r.Targets[c])
		}
		assert.True(t, total.Equal(d("1")), "%s policy sums to %s", c, total)
	}

	// Mutating the copy does not affect the policy
	rows[0].Targets[models.RiskLow] = d("0.99")
	pct, ok := TargetFor(models.AssetTypeStock, models.RiskLow)
	require.True(t, ok)
	assert.True(t, pct.Equal(d("0.3")))
}
