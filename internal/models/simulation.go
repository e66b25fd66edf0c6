package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetValue is the projected value of one asset at a point in time
type AssetValue struct {
	Asset string          `json:"asset" msgpack:"asset"`
	Value decimal.Decimal `json:"value" msgpack:"value"`
}

// SimulationRow is one month of a growth projection
type SimulationRow struct {
	Month                  int             `json:"month" msgpack:"month"`
	Date                   time.Time       `json:"date" msgpack:"date"`
	Values                 []AssetValue    `json:"values" msgpack:"values"`
	TotalValue             decimal.Decimal `json:"total_value" msgpack:"total_value"`
	InflationAdjustedValue decimal.Decimal `json:"inflation_adjusted_value" msgpack:"inflation_adjusted_value"`
}

// Value returns the projected value of an asset in this row
func (r SimulationRow) Value(asset string) decimal.Decimal {
	for _, v := range r.Values {
		if v.Asset == asset {
			return v.Value
		}
	}
	return decimal.Zero
}
