package analyzer

import (
	"math"

	"github.com/dimityrivanov/transaction-insights/internal/reporter"
)

// Fixed outlier policy: a counterparty needs more than 2 transactions to
// establish a distribution, and a z-score magnitude above 2.5 flags the row.
const (
	outlierMinGroupSize = 2
	outlierZThreshold   = 2.5
)

const (
	reasonUnusuallyHigh = "Unusually high transaction amount"
	reasonUnusuallyLow  = "Unusually low transaction amount"
)

// detectOutliers computes the per-counterparty amount distribution and flags
// transactions whose z-score magnitude exceeds the threshold. Groups where
// every amount is identical (zero std) cannot have outliers and are skipped.
func detectOutliers(byCounterparty *GroupIndex) []reporter.OutlierRow {
	rows := make([]reporter.OutlierRow, 0)

	for _, g := range byCounterparty.Groups() {
		if len(g.Members) <= outlierMinGroupSize {
			continue
		}

		amounts := make([]float64, len(g.Members))
		for i, tx := range g.Members {
			amounts[i] = tx.Amount.InexactFloat64()
		}
		m := mean(amounts)
		std := populationStd(amounts, m)
		if std == 0 {
			continue
		}

		for i, tx := range g.Members {
			z := (amounts[i] - m) / std
			if math.Abs(z) <= outlierZThreshold {
				continue
			}
			reason := reasonUnusuallyLow
			if z > 0 {
				reason = reasonUnusuallyHigh
			}
			rows = append(rows, reporter.OutlierRow{
				Counterparty: g.Key,
				Amount:       moneyFloat(tx.Amount),
				Mean:         reporter.Float(round2(m)),
				Std:          reporter.Float(round2(std)),
				ZScore:       reporter.Float(round2(z)),
				Currency:     tx.Currency,
				BookingDate:  tx.DateString(),
				Reason:       reason,
			})
		}
	}
	return rows
}
