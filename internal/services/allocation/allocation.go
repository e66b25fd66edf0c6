// Package allocation maps a risk category onto a catalog allocation
package allocation

import (
	"sort"

	"github.com/findosh/advisor/internal/models"
	"github.com/shopspring/decimal"
)

// Target share of the investment per asset type and risk category
var policy = map[models.AssetType]map[models.RiskCategory]decimal.Decimal{
	models.AssetTypeStock: {
		models.RiskLow:    decimal.NewFromFloat(0.30),
		models.RiskMedium: decimal.NewFromFloat(0.50),
		models.RiskHigh:   decimal.NewFromFloat(0.70),
	},
	models.AssetTypeBond: {
		models.RiskLow:    decimal.NewFromFloat(0.50),
		models.RiskMedium: decimal.NewFromFloat(0.30),
		models.RiskHigh:   decimal.NewFromFloat(0.10),
	},
	models.AssetTypeCommodity: {
		models.RiskLow:    decimal.NewFromFloat(0.10),
		models.RiskMedium: decimal.NewFromFloat(0.10),
		models.RiskHigh:   decimal.NewFromFloat(0.10),
	},
	models.AssetTypeRealEstate: {
		models.RiskLow:    decimal.NewFromFloat(0.10),
		models.RiskMedium: decimal.NewFromFloat(0.10),
		models.RiskHigh:   decimal.NewFromFloat(0.10),
	},
}

// PolicyRow is one asset type's targets, for presentation
type PolicyRow struct {
	Type    models.AssetType                        `json:"type"`
	Targets map[models.RiskCategory]decimal.Decimal `json:"targets"`
}

// Policy returns a copy of the allocation policy table in policy order
func Policy() []PolicyRow {
	rows := make([]PolicyRow, 0, len(policy))
	for _, t := range models.PolicyAssetTypes() {
		targets := make(map[models.RiskCategory]decimal.Decimal, 3)
		for c, pct := range policy[t] {
			targets[c] = pct
		}
		rows = append(rows, PolicyRow{Type: t, Targets: targets})
	}
	return rows
}

// TargetFor returns the policy share for an asset type
func TargetFor(t models.AssetType, category models.RiskCategory) (decimal.Decimal, bool) {
	pct, ok := policy[t][category]
	return pct, ok
}

// Allocate splits each policy type's target evenly across the catalog assets
// of that type.
//
// Types missing from the catalog leave their share undistributed, so the
// allocation total can be below 1. Within a type the assets are ordered by
// category (high: best return first, low: safest first, medium: catalog order)
// and that order is the iteration order of the result; the split itself is
// equal regardless of order.
func Allocate(catalog []models.Asset, category models.RiskCategory) (alloc models.Allocation, err error) {
	defer models.RecoverStage(models.StageAllocation, &err)

	if !category.IsValid() {
		return nil, models.InvalidInput("unknown risk category %q", category)
	}
	if err := models.ValidateCatalog(catalog); err != nil {
		return nil, err
	}

	byType := make(map[models.AssetType][]models.Asset)
	for _, a := range catalog {
		byType[a.Type] = append(byType[a.Type], a)
	}

	alloc = models.Allocation{}
	for _, t := range models.PolicyAssetTypes() {
		group := byType[t]
		if len(group) == 0 {
			continue
		}

		pct, _ := TargetFor(t, category)
		share := pct.Div(decimal.NewFromInt(int64(len(group))))

		for _, a := range Order(group, category) {
			alloc = append(alloc, models.AllocationEntry{Asset: a.Name, Fraction: share})
		}
	}

	return alloc, nil
}

// Order returns a copy of the group ordered by the category's tie-break rule
func Order(group []models.Asset, category models.RiskCategory) []models.Asset {
	ordered := make([]models.Asset, len(group))
	copy(ordered, group)

	switch category {
	case models.RiskHigh:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].AnnualReturn.GreaterThan(ordered[j].AnnualReturn)
		})
	case models.RiskLow:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].RiskLevel.LessThan(ordered[j].RiskLevel)
		})
	}
	return ordered
}

// Undistributed returns the policy share left unallocated because the
// catalog has no asset of some policy type
func Undistributed(catalog []models.Asset, category models.RiskCategory) decimal.Decimal {
	present := make(map[models.AssetType]bool)
	for _, a := range catalog {
		present[a.Type] = true
	}

	missing := decimal.Zero
	for _, t := range models.PolicyAssetTypes() {
		if !present[t] {
			pct, _ := TargetFor(t, category)
			missing = missing.Add(pct)
		}
	}
	return missing
}
