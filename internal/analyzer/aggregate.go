package analyzer

import (
	"sort"

	"github.com/dimityrivanov/transaction-insights/internal/models"
	"github.com/dimityrivanov/transaction-insights/internal/reporter"

	"github.com/shopspring/decimal"
)

// topCounterpartyLimit caps the top_debtors section of the report.
const topCounterpartyLimit = 5

// moneyFloat converts a decimal amount to its reported form: 2 decimal
// places, round-half-to-even. Accumulation stays in full decimal precision;
// rounding happens only here, at the serialization boundary.
func moneyFloat(d decimal.Decimal) reporter.Float {
	return reporter.Float(d.RoundBank(2).InexactFloat64())
}

// buildSummary computes the income/expense totals. Amounts keep their
// original sign, so the net result equals income + expense exactly and the
// identity survives decimal accumulation without drift.
func buildSummary(transactions []*models.Transaction) reporter.Summary {
	income := decimal.Zero
	expense := decimal.Zero
	for _, tx := range transactions {
		if tx.Type == models.TypeIncome {
			income = income.Add(tx.Amount)
		} else {
			expense = expense.Add(tx.Amount)
		}
	}

	currency := models.FallbackCurrency
	if len(transactions) > 0 {
		currency = transactions[0].Currency
	}

	return reporter.Summary{
		TotalIncome:  moneyFloat(income),
		TotalExpense: moneyFloat(expense),
		NetResult:    moneyFloat(income.Add(expense)),
		Currency:     currency,
	}
}

// buildDailyTotals sums amounts per booking date, ascending by date key.
// Undated transactions are excluded.
func buildDailyTotals(transactions []*models.Transaction) *reporter.OrderedMap {
	sums := make(map[string]decimal.Decimal)
	var dates []string
	for _, tx := range transactions {
		d := tx.DateString()
		if d == nil {
			continue
		}
		if _, seen := sums[*d]; !seen {
			dates = append(dates, *d)
		}
		sums[*d] = sums[*d].Add(tx.Amount)
	}
	sort.Strings(dates)

	out := reporter.NewOrderedMap()
	for _, d := range dates {
		out.Set(d, moneyFloat(sums[d]))
	}
	return out
}

// buildTopDebtors sums net flow per counterparty and keeps the top 5 by
// value, descending. The sort is stable over first-seen counterparty order,
// so ties retain input grouping order with no secondary key.
func buildTopDebtors(byCounterparty *GroupIndex) *reporter.OrderedMap {
	type entry struct {
		name string
		sum  decimal.Decimal
	}

	entries := make([]entry, 0, byCounterparty.Len())
	for _, g := range byCounterparty.Groups() {
		sum := decimal.Zero
		for _, tx := range g.Members {
			sum = sum.Add(tx.Amount)
		}
		entries = append(entries, entry{name: g.Key, sum: sum})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].sum.GreaterThan(entries[j].sum)
	})

	if len(entries) > topCounterpartyLimit {
		entries = entries[:topCounterpartyLimit]
	}

	out := reporter.NewOrderedMap()
	for _, e := range entries {
		out.Set(e.name, moneyFloat(e.sum))
	}
	return out
}
