// Package simulation projects monthly portfolio growth
package simulation

import (
	"time"

	"github.com/findosh/advisor/internal/models"
	"github.com/shopspring/decimal"
)

// MaxHorizonYears bounds the projection length
const MaxHorizonYears = 100

// Decimal places kept for projected asset values
const valuePrecision = 10

// Annual inflation assumed when discounting projected values
var AnnualInflationRate = decimal.NewFromFloat(0.06)

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)

	monthlyInflationFactor = one.Add(AnnualInflationRate.Div(twelve))
)

// Simulator projects allocations forward in time
type Simulator struct {
	now func() time.Time
}

// NewSimulator creates a simulator that starts projections at the current time
func NewSimulator() *Simulator {
	return &Simulator{now: time.Now}
}

// NewSimulatorWithClock creates a simulator with a fixed clock, mostly for tests
func NewSimulatorWithClock(now func() time.Time) *Simulator {
	return &Simulator{now: now}
}

// Simulate compounds every allocated asset monthly at annual_return/12 for
// horizonYears*12 months. Row 0 is the initial split; each row carries a
// column for every catalog asset, zero when the asset is not allocated.
// Asset values are rounded to ten decimal places after each month so the
// operands stay bounded; over the longest horizon the drift from exact
// compounding stays far below a paisa.
func (s *Simulator) Simulate(initial decimal.Decimal, alloc models.Allocation, catalog []models.Asset, horizonYears int) (rows []models.SimulationRow, err error) {
	defer models.RecoverStage(models.StageSimulation, &err)

	if initial.IsNegative() {
		return nil, models.InvalidInput("initial investment %s is negative", initial)
	}
	if horizonYears < 0 {
		return nil, models.InvalidInput("horizon %d years is negative", horizonYears)
	}
	if horizonYears > MaxHorizonYears {
		return nil, models.InvalidInput("horizon %d years exceeds %d", horizonYears, MaxHorizonYears)
	}
	if err := models.ValidateCatalog(catalog); err != nil {
		return nil, err
	}

	months := horizonYears * 12
	dates := MonthlyDates(s.now(), months+1)

	growth := make([]decimal.Decimal, len(catalog))
	for i, a := range catalog {
		growth[i] = one.Add(a.AnnualReturn.Div(twelve))
	}

	invested := false
	first := models.SimulationRow{
		Month:                  0,
		Date:                   dates[0],
		Values:                 make([]models.AssetValue, len(catalog)),
		TotalValue:             initial,
		InflationAdjustedValue: initial,
	}
	for i, a := range catalog {
		value := decimal.Zero
		if frac, ok := alloc.Get(a.Name); ok {
			value = initial.Mul(frac)
			invested = true
		}
		first.Values[i] = models.AssetValue{Asset: a.Name, Value: value}
	}

	rows = make([]models.SimulationRow, 0, months+1)
	rows = append(rows, first)

	for m := 1; m <= months; m++ {
		prev := rows[m-1]
		row := models.SimulationRow{
			Month:  m,
			Date:   dates[m],
			Values: make([]models.AssetValue, len(catalog)),
		}

		total := decimal.Zero
		for i, a := range catalog {
			value := decimal.Zero
			if alloc.Has(a.Name) {
				value = prev.Values[i].Value.Mul(growth[i]).Round(valuePrecision)
				total = total.Add(value)
			}
			row.Values[i] = models.AssetValue{Asset: a.Name, Value: value}
		}

		// Nothing allocated: the investment is held as cash
		if !invested {
			total = initial
		}

		row.TotalValue = total
		row.InflationAdjustedValue = Discount(total, m)
		rows = append(rows, row)
	}

	return rows, nil
}

// Discount expresses a value projected month months ahead in today's money
func Discount(value decimal.Decimal, month int) decimal.Decimal {
	if month <= 0 {
		return value
	}
	factor := monthlyInflationFactor.Pow(decimal.NewFromInt(int64(month)))
	return value.Div(factor)
}

// MonthlyDates returns count dates one calendar month apart starting at start.
// The day of month is clamped to the length of shorter months and always
// derived from start, so Jan 31 yields Feb 28/29 then Mar 31.
func MonthlyDates(start time.Time, count int) []time.Time {
	if count <= 0 {
		return nil
	}

	dates := make([]time.Time, count)
	year, month, day := start.Date()
	hour, minute, sec := start.Clock()

	for i := 0; i < count; i++ {
		target := time.Date(year, month+time.Month(i), 1, hour, minute, sec, start.Nanosecond(), start.Location())
		d := day
		if last := daysIn(target.Year(), target.Month(), start.Location()); d > last {
			d = last
		}
		dates[i] = time.Date(target.Year(), target.Month(), d, hour, minute, sec, start.Nanosecond(), start.Location())
	}
	return dates
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
