package analyzer

import (
	"github.com/dimityrivanov/transaction-insights/internal/models"
	"github.com/dimityrivanov/transaction-insights/internal/reporter"
)

// detectDuplicates flags every member of any group sharing the exact
// (counterparty, amount, currency) triple with at least one other
// transaction. All members of a cluster are emitted, not just the repeats,
// and rows follow the table's original order within and across clusters.
func detectDuplicates(transactions []*models.Transaction) []reporter.DuplicateRow {
	byKey := GroupByDuplicateKey(transactions)

	rows := make([]reporter.DuplicateRow, 0)
	for _, tx := range transactions {
		if tx.Counterparty == nil {
			continue
		}
		if len(byKey.Get(duplicateKey(tx)).Members) < 2 {
			continue
		}
		rows = append(rows, reporter.DuplicateRow{
			BookingDate:  tx.DateString(),
			Counterparty: *tx.Counterparty,
			Amount:       moneyFloat(tx.Amount),
			Currency:     tx.Currency,
			IBAN:         optional(tx.CreditorIBAN),
			Remittance:   optional(tx.Remittance),
		})
	}
	return rows
}

// optional turns a raw string field into a nullable report value: empty
// means the source record had nothing, reported as null.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
