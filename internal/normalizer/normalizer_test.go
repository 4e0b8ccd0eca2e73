package normalizer

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/dimityrivanov/transaction-insights/internal/models"
)

func decodeTree(t *testing.T, raw string) map[string]interface{} {
	t.Helper()
	var tree map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &tree); err != nil {
		t.Fatalf("Failed to decode fixture: %v", err)
	}
	return tree
}

func TestNormalizeOrderAndCounts(t *testing.T) {
	tree := decodeTree(t, `{
		"transactions": {
			"booked": [
				{"transactionAmount": {"amount": "100.00", "currency": "EUR"}, "bookingDate": "2024-01-01"},
				{"transactionAmount": {"amount": "-50.00", "currency": "EUR"}, "bookingDate": "2024-01-02"}
			],
			"pending": [
				{"transactionAmount": {"amount": "25.00", "currency": "USD"}}
			]
		}
	}`)

	transactions, stats := Normalize(tree)

	if stats.Booked != 2 || stats.Pending != 1 || stats.Total != 3 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.Dated != 2 {
		t.Errorf("Expected 2 dated transactions, got %d", stats.Dated)
	}
	if len(transactions) != 3 {
		t.Fatalf("Expected 3 transactions, got %d", len(transactions))
	}

	// Booked records come first, pending last.
	if transactions[0].Amount.String() != "100" || transactions[1].Amount.String() != "-50" {
		t.Errorf("Booked transactions out of order: %v, %v", transactions[0], transactions[1])
	}
	if transactions[2].Currency != "USD" {
		t.Errorf("Expected pending transaction last, got %v", transactions[2])
	}
	if transactions[2].BookingDate != nil {
		t.Error("Expected undated pending transaction")
	}
}

func TestNormalizeMissingSections(t *testing.T) {
	cases := []string{
		`{}`,
		`{"transactions": {}}`,
		`{"transactions": {"booked": [], "pending": []}}`,
		`{"transactions": "not-a-mapping"}`,
		`{"transactions": {"booked": "not-a-list"}}`,
	}

	for _, raw := range cases {
		transactions, stats := Normalize(decodeTree(t, raw))
		if len(transactions) != 0 || stats.Total != 0 {
			t.Errorf("Expected empty working set for %s, got %d transactions", raw, len(transactions))
		}
	}
}

func TestFlattenDefaults(t *testing.T) {
	tx := Flatten(map[string]interface{}{})
	if !tx.Amount.IsZero() {
		t.Errorf("Expected zero amount default, got %s", tx.Amount)
	}
	if tx.Currency != models.FallbackCurrency {
		t.Errorf("Expected fallback currency, got %s", tx.Currency)
	}
	if tx.BookingDate != nil {
		t.Error("Expected no date default")
	}
	if tx.Type != models.TypeExpense {
		t.Errorf("Expected zero amount to classify as expense, got %s", tx.Type)
	}

	// A non-mapping record flattens to all defaults instead of failing.
	tx = Flatten("garbage")
	if !tx.Amount.IsZero() || tx.Currency != models.FallbackCurrency {
		t.Errorf("Expected all-defaults transaction for non-mapping record, got %v", tx)
	}
}

func TestFlattenFields(t *testing.T) {
	tx := Flatten(map[string]interface{}{
		"transactionAmount": map[string]interface{}{
			"amount":   "-120.55",
			"currency": "EUR",
		},
		"bookingDate":                       "2024-03-10",
		"creditorName":                      "Electric Co",
		"debtorName":                        "John Doe",
		"remittanceInformationUnstructured": "March bill",
		"creditorAccount": map[string]interface{}{
			"iban": "BG80BNBG96611020345678",
		},
	})

	if tx.Amount.String() != "-120.55" {
		t.Errorf("Unexpected amount: %s", tx.Amount)
	}
	if tx.Type != models.TypeExpense {
		t.Errorf("Unexpected type: %s", tx.Type)
	}
	if tx.CreditorName != "Electric Co" || tx.DebtorName != "John Doe" {
		t.Errorf("Unexpected names: %q / %q", tx.CreditorName, tx.DebtorName)
	}
	if tx.Remittance != "March bill" {
		t.Errorf("Unexpected remittance: %q", tx.Remittance)
	}
	if tx.CreditorIBAN != "BG80BNBG96611020345678" {
		t.Errorf("Unexpected IBAN: %q", tx.CreditorIBAN)
	}
	if s := tx.DateString(); s == nil || *s != "2024-03-10" {
		t.Errorf("Unexpected date: %v", s)
	}
}

func TestSanitizeRewritesNaN(t *testing.T) {
	tree := map[string]interface{}{
		"direct": math.NaN(),
		"nested": map[string]interface{}{
			"inner": math.NaN(),
			"ok":    1.5,
		},
		"list": []interface{}{math.NaN(), "keep", 2.0},
	}

	Sanitize(tree)

	if tree["direct"] != nil {
		t.Error("Expected direct NaN to become nil")
	}
	nested := tree["nested"].(map[string]interface{})
	if nested["inner"] != nil {
		t.Error("Expected nested NaN to become nil")
	}
	if nested["ok"] != 1.5 {
		t.Error("Expected finite value to survive")
	}
	list := tree["list"].([]interface{})
	if list[0] != nil || list[1] != "keep" || list[2] != 2.0 {
		t.Errorf("Unexpected list after sanitize: %v", list)
	}
}

func TestSanitizeScalarRoot(t *testing.T) {
	if Sanitize(math.NaN()) != nil {
		t.Error("Expected NaN scalar root to become nil")
	}
	if Sanitize(3.5) != 3.5 {
		t.Error("Expected finite scalar root to be unchanged")
	}
	if Sanitize("text") != "text" {
		t.Error("Expected non-float scalar root to be unchanged")
	}
}
