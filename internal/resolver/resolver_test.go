package resolver

import (
	"reflect"
	"testing"

	"github.com/dimityrivanov/transaction-insights/internal/models"

	"github.com/shopspring/decimal"
)

func makeTx(amount string, creditor, debtor, remittance string) *models.Transaction {
	tx := models.NewTransaction(decimal.RequireFromString(amount), models.FallbackCurrency, nil)
	tx.CreditorName = creditor
	tx.DebtorName = debtor
	tx.Remittance = remittance
	return tx
}

func TestResolvePrecedence(t *testing.T) {
	tests := []struct {
		name     string
		tx       *models.Transaction
		expected string
	}{
		{"incoming prefers debtor", makeTx("100", "Bob", "Alice", ""), "Alice"},
		{"outgoing prefers creditor", makeTx("-100", "Bob", "Alice", ""), "Bob"},
		{"zero counts as outgoing", makeTx("0", "Bob", "Alice", ""), "Bob"},
		{"incoming falls back to creditor", makeTx("100", "Bob", "", ""), "Bob"},
		{"outgoing falls back to debtor", makeTx("-100", "", "Alice", ""), "Alice"},
		{"blank names fall through", makeTx("100", "   ", "\t", "Payment AZV-Jane Doe, ref 123"), "Jane Doe"},
		{"names are trimmed", makeTx("-100", "  Electric Co  ", "", ""), "Electric Co"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.tx)
			if got == nil {
				t.Fatalf("Expected %q, got nil", tt.expected)
			}
			if *got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, *got)
			}
		})
	}
}

func TestResolveUnresolvable(t *testing.T) {
	cases := []*models.Transaction{
		makeTx("100", "", "", ""),
		makeTx("-100", "  ", "", "no marker here"),
		makeTx("100", "", "", "AZV- , only blanks"),
	}
	for _, tx := range cases {
		if got := Resolve(tx); got != nil {
			t.Errorf("Expected nil counterparty for %v, got %q", tx, *got)
		}
	}
}

func TestExtractRemittanceNames(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{"single fragment", "Payment AZV-Jane Doe, ref 123", []string{"Jane Doe"}},
		{"fragment at end", "Transfer AZV-ACME Ltd", []string{"ACME Ltd"}},
		{"multiple fragments in order", "AZV-First, then AZV-Second, done", []string{"First", "Second"}},
		{"duplicates collapse", "AZV-Same, AZV-Same, AZV-Other", []string{"Same", "Other"}},
		{"no marker", "regular payment reference", nil},
		{"empty text", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractRemittanceNames(tt.text)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ExtractRemittanceNames(%q) = %v, expected %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestResolveAll(t *testing.T) {
	transactions := []*models.Transaction{
		makeTx("100", "Bob", "Alice", ""),
		makeTx("-100", "", "", ""),
	}
	ResolveAll(transactions)

	if transactions[0].Counterparty == nil || *transactions[0].Counterparty != "Alice" {
		t.Errorf("Expected Alice, got %v", transactions[0].Counterparty)
	}
	if transactions[1].Counterparty != nil {
		t.Errorf("Expected nil counterparty, got %v", *transactions[1].Counterparty)
	}
}
