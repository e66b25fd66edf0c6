package models

import (
	"github.com/shopspring/decimal"
)

// AssetType categorizes tradable instruments
type AssetType string

const (
	AssetTypeStock      AssetType = "stock"
	AssetTypeBond       AssetType = "bond"
	AssetTypeCommodity  AssetType = "commodity"
	AssetTypeRealEstate AssetType = "real_estate"
)

// PolicyAssetTypes returns the asset types covered by the allocation policy, in policy order
func PolicyAssetTypes() []AssetType {
	return []AssetType{
		AssetTypeStock,
		AssetTypeBond,
		AssetTypeCommodity,
		AssetTypeRealEstate,
	}
}

// DisplayName returns human-readable name for the asset type
func (a AssetType) DisplayName() string {
	switch a {
	case AssetTypeStock:
		return "Stock"
	case AssetTypeBond:
		return "Bond"
	case AssetTypeCommodity:
		return "Commodity"
	case AssetTypeRealEstate:
		return "Real Estate"
	default:
		return string(a)
	}
}

// Asset is an immutable catalog entry
type Asset struct {
	Name           string          `json:"name" msgpack:"name"`
	Type           AssetType       `json:"type" msgpack:"type"`
	AnnualReturn   decimal.Decimal `json:"annual_return" msgpack:"annual_return"` // fraction, 0.10 = 10%
	RiskLevel      decimal.Decimal `json:"risk_level" msgpack:"risk_level"`       // 0-1
	ReferencePrice decimal.Decimal `json:"reference_price" msgpack:"reference_price"`
}

func newAsset(name string, t AssetType, annualReturn, risk, price float64) Asset {
	return Asset{
		Name:           name,
		Type:           t,
		AnnualReturn:   decimal.NewFromFloat(annualReturn),
		RiskLevel:      decimal.NewFromFloat(risk),
		ReferencePrice: decimal.NewFromFloat(price),
	}
}

// DefaultAssets returns the built-in asset catalog.
// A fresh slice is returned on every call so callers cannot mutate the shared catalog.
func DefaultAssets() []Asset {
	return []Asset{
		newAsset("Nifty 500 ETF", AssetTypeStock, 0.10, 0.8, 450.0),
		newAsset("Total Bond ETF", AssetTypeBond, 0.04, 0.3, 80.0),
		newAsset("Gold ETF", AssetTypeCommodity, 0.05, 0.6, 180.0),
		newAsset("Real Estate ETF", AssetTypeRealEstate, 0.08, 0.7, 95.0),
		newAsset("High-Yield Dividend ETF", AssetTypeStock, 0.07, 0.6, 55.0),
		newAsset("Treasury Bonds", AssetTypeBond, 0.03, 0.2, 100.0),
		newAsset("International Stocks ETF", AssetTypeStock, 0.09, 0.8, 65.0),
		newAsset("Emerging Markets ETF", AssetTypeStock, 0.11, 0.9, 45.0),
		newAsset("Technology Sector ETF", AssetTypeStock, 0.12, 0.9, 160.0),
		newAsset("Corporate Bonds ETF", AssetTypeBond, 0.05, 0.4, 110.0),
	}
}

// FindAsset looks up an asset by name
func FindAsset(catalog []Asset, name string) (Asset, bool) {
	for _, a := range catalog {
		if a.Name == name {
			return a, true
		}
	}
	return Asset{}, false
}

// ValidateCatalog checks that asset names are present and unique
func ValidateCatalog(catalog []Asset) error {
	seen := make(map[string]bool, len(catalog))
	for i, a := range catalog {
		if a.Name == "" {
			return InvalidInput("asset %d has no name", i)
		}
		if seen[a.Name] {
			return InvalidInput("duplicate asset %q", a.Name)
		}
		seen[a.Name] = true
	}
	return nil
}
