package analyzer

import (
	"testing"

	"github.com/dimityrivanov/transaction-insights/internal/models"
)

// outlierGroup builds eight 10.00 payments plus one extreme, which puts the
// extreme at |z| = 2.83, above the 2.5 threshold, while the regular members
// stay near 0.35.
func outlierGroup(extreme string) []*models.Transaction {
	txs := make([]*models.Transaction, 0, 9)
	for i := 0; i < 8; i++ {
		txs = append(txs, newTx("10", "EUR", "", "Subscriptions"))
	}
	txs = append(txs, newTx(extreme, "EUR", "2024-05-01", "Subscriptions"))
	return txs
}

func TestDetectOutliersHigh(t *testing.T) {
	rows := detectOutliers(GroupByCounterparty(outlierGroup("1000")))
	if len(rows) != 1 {
		t.Fatalf("Expected exactly one outlier, got %d", len(rows))
	}

	row := rows[0]
	if row.Counterparty != "Subscriptions" {
		t.Errorf("Unexpected counterparty: %s", row.Counterparty)
	}
	if float64(row.Amount) != 1000 {
		t.Errorf("Expected amount 1000, got %v", row.Amount)
	}
	// mean = (8*10 + 1000) / 9 = 120, std = sqrt(871200/9) = 311.13 (2dp)
	if float64(row.Mean) != 120 {
		t.Errorf("Expected mean 120, got %v", row.Mean)
	}
	if float64(row.Std) != 311.13 {
		t.Errorf("Expected std 311.13, got %v", row.Std)
	}
	if float64(row.ZScore) != 2.83 {
		t.Errorf("Expected z-score 2.83, got %v", row.ZScore)
	}
	if row.Reason != "Unusually high transaction amount" {
		t.Errorf("Unexpected reason: %s", row.Reason)
	}
	if row.BookingDate == nil || *row.BookingDate != "2024-05-01" {
		t.Errorf("Expected outlier date, got %v", row.BookingDate)
	}
}

func TestDetectOutliersLow(t *testing.T) {
	txs := make([]*models.Transaction, 0, 9)
	for i := 0; i < 8; i++ {
		txs = append(txs, newTx("1000", "EUR", "", "Payroll"))
	}
	txs = append(txs, newTx("10", "EUR", "", "Payroll"))

	rows := detectOutliers(GroupByCounterparty(txs))
	if len(rows) != 1 {
		t.Fatalf("Expected exactly one outlier, got %d", len(rows))
	}
	if rows[0].Reason != "Unusually low transaction amount" {
		t.Errorf("Unexpected reason: %s", rows[0].Reason)
	}
	if float64(rows[0].ZScore) != -2.83 {
		t.Errorf("Expected z-score -2.83, got %v", rows[0].ZScore)
	}
}

func TestDetectOutliersSmallGroups(t *testing.T) {
	// Two members never establish a distribution, even when wildly apart.
	txs := []*models.Transaction{
		newTx("1", "EUR", "", "Rare"),
		newTx("100000", "EUR", "", "Rare"),
	}
	if rows := detectOutliers(GroupByCounterparty(txs)); len(rows) != 0 {
		t.Errorf("Expected no outliers for a 2-member group, got %d", len(rows))
	}
}

func TestDetectOutliersZeroVariance(t *testing.T) {
	txs := []*models.Transaction{
		newTx("50", "EUR", "", "Flat"),
		newTx("50", "EUR", "", "Flat"),
		newTx("50", "EUR", "", "Flat"),
		newTx("50", "EUR", "", "Flat"),
	}
	if rows := detectOutliers(GroupByCounterparty(txs)); len(rows) != 0 {
		t.Errorf("Expected zero-variance group to be skipped, got %d rows", len(rows))
	}
}

func TestDetectOutliersModerateSpread(t *testing.T) {
	// Spread without an extreme member stays under the threshold.
	txs := []*models.Transaction{
		newTx("10", "EUR", "", "Shop"),
		newTx("20", "EUR", "", "Shop"),
		newTx("30", "EUR", "", "Shop"),
		newTx("40", "EUR", "", "Shop"),
	}
	if rows := detectOutliers(GroupByCounterparty(txs)); len(rows) != 0 {
		t.Errorf("Expected no outliers for moderate spread, got %d", len(rows))
	}
}
