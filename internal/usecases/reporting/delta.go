package reporting

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/roi-collector-api/internal/domain"
)

var (
	hundred      = decimal.NewFromInt(100)
	minPctChange = decimal.NewFromInt(-100)
	maxPctChange = decimal.NewFromInt(500)
)

// Delta compara duas coletas consecutivas. Sem coleta anterior, tudo é zero.
func Delta(current *domain.Snapshot, previous *domain.Snapshot) domain.SnapshotDelta {
	delta := domain.SnapshotDelta{
		SalesDiff:       decimal.Zero,
		SalesPctChange:  decimal.Zero,
		ROIPctChange:    decimal.Zero,
		ProfitDiff:      decimal.Zero,
		ProfitPctChange: decimal.Zero,
	}

	if current == nil || previous == nil {
		return delta
	}

	cur := current.Result.Totals
	prev := previous.Result.Totals

	delta.HasDataToCompare = true
	delta.SalesDiff = cur.Sales.Sub(prev.Sales)
	delta.SalesPctChange = percentChange(cur.Sales, prev.Sales)
	delta.ProfitDiff = cur.Profit.Sub(prev.Profit)
	delta.ProfitPctChange = percentChange(cur.Profit, prev.Profit)

	// ROI indefinido não tem variação percentual
	curROI, curOK := cur.ROI.Value()
	prevROI, prevOK := prev.ROI.Value()
	if curOK && prevOK {
		delta.ROIPctChange = percentChange(curROI, prevROI)
	}

	return delta
}

// percentChange é zero quando o valor anterior não é positivo e fica entre -100% e 500%
func percentChange(current decimal.Decimal, previous decimal.Decimal) decimal.Decimal {
	if !previous.IsPositive() {
		return decimal.Zero
	}

	change := current.Sub(previous).Div(previous).Mul(hundred).Round(2)

	switch {
	case change.LessThan(minPctChange):
		return minPctChange
	case change.GreaterThan(maxPctChange):
		return maxPctChange
	}

	return change
}
