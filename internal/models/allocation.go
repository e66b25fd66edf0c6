package models

import (
	"github.com/shopspring/decimal"
)

// FractionPrecision is the number of decimal places at which allocation
// totals are compared. Equal splits such as 0.5/3 are cut at 16 digits, so
// the raw sum of a fully funded allocation can miss 1 in the last place.
const FractionPrecision = 10

// AllocationEntry assigns a fraction of the investment to one asset
type AllocationEntry struct {
	Asset    string          `json:"asset" msgpack:"asset"`
	Fraction decimal.Decimal `json:"fraction" msgpack:"fraction"`
}

// Allocation maps asset names to fractions of the total investment.
// Entry order is the allocator's iteration order and is preserved by every
// encoding used in this module.
type Allocation []AllocationEntry

// Get returns the fraction allocated to an asset
func (a Allocation) Get(name string) (decimal.Decimal, bool) {
	for _, e := range a {
		if e.Asset == name {
			return e.Fraction, true
		}
	}
	return decimal.Zero, false
}

// Has reports whether the asset is part of the allocation
func (a Allocation) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Names returns the allocated asset names in iteration order
func (a Allocation) Names() []string {
	names := make([]string, len(a))
	for i, e := range a {
		names[i] = e.Asset
	}
	return names
}

// Total returns the sum of all fractions. It is below 1 when the catalog
// lacks an asset type the policy wants to fund.
func (a Allocation) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range a {
		total = total.Add(e.Fraction)
	}
	return total
}

// Unallocated returns the share of the investment left unfunded, compared at
// FractionPrecision. It is never negative.
func (a Allocation) Unallocated() decimal.Decimal {
	rest := decimal.NewFromInt(1).Sub(a.Total().Round(FractionPrecision))
	if rest.IsNegative() {
		return decimal.Zero
	}
	return rest
}

// Amounts splits an investment across the allocation
func (a Allocation) Amounts(investment decimal.Decimal) map[string]decimal.Decimal {
	amounts := make(map[string]decimal.Decimal, len(a))
	for _, e := range a {
		amounts[e.Asset] = investment.Mul(e.Fraction)
	}
	return amounts
}

// ByType sums fractions per asset type using the catalog for classification
func (a Allocation) ByType(catalog []Asset) map[AssetType]decimal.Decimal {
	out := make(map[AssetType]decimal.Decimal)
	for _, e := range a {
		asset, ok := FindAsset(catalog, e.Asset)
		if !ok {
			continue
		}
		out[asset.Type] = out[asset.Type].Add(e.Fraction)
	}
	return out
}

// ExpectedReturn is the allocation-weighted annual return over catalog assets
func (a Allocation) ExpectedReturn(catalog []Asset) decimal.Decimal {
	expected := decimal.Zero
	for _, asset := range catalog {
		if frac, ok := a.Get(asset.Name); ok {
			expected = expected.Add(asset.AnnualReturn.Mul(frac))
		}
	}
	return expected
}
