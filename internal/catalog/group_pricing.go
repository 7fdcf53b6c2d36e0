package catalog

import "github.com/shopspring/decimal"

// GroupPricing computes the surcharge added to a package for groups larger
// than two people.
type GroupPricing interface {
	Surcharge(groupSize int) decimal.Decimal
}

// FlatSurcharge charges the same amount for every person beyond the second.
type FlatSurcharge struct {
	PerExtraPerson decimal.Decimal
}

func (f FlatSurcharge) Surcharge(groupSize int) decimal.Decimal {
	if groupSize <= 2 {
		return decimal.Zero
	}
	return f.PerExtraPerson.Mul(decimal.NewFromInt(int64(groupSize - 2)))
}

// TableSurcharge looks the surcharge up by group size. Sizes without an
// explicit step use the nearest lower step; sizes above Max extend the last
// step by OverflowPerPerson per additional person.
type TableSurcharge struct {
	Steps             map[int]decimal.Decimal
	Max               int
	OverflowPerPerson decimal.Decimal
}

func (t TableSurcharge) Surcharge(groupSize int) decimal.Decimal {
	if groupSize <= 2 {
		return decimal.Zero
	}
	if groupSize > t.Max {
		extra := decimal.NewFromInt(int64(groupSize - t.Max))
		return t.step(t.Max).Add(t.OverflowPerPerson.Mul(extra))
	}
	return t.step(groupSize)
}

func (t TableSurcharge) step(size int) decimal.Decimal {
	for s := size; s > 2; s-- {
		if v, ok := t.Steps[s]; ok {
			return v
		}
	}
	return decimal.Zero
}
