// Package resolver determines the counterparty of each transaction.
//
// Real statement data frequently omits structured debtor/creditor fields for
// certain transfer types and embeds the true counterparty inside free-text
// remittance information instead. Resolution therefore runs a fixed
// per-transaction fallback chain: the name fields in sign-dependent order,
// then extraction from the remittance text, then nil.
package resolver

import (
	"regexp"
	"strings"

	"github.com/dimityrivanov/transaction-insights/internal/models"
)

// remittanceMarker matches a counterparty fragment embedded in unstructured
// remittance text: the literal AZV- marker followed by everything up to the
// next comma.
var remittanceMarker = regexp.MustCompile(`AZV-([^,]+)`)

// ResolveAll resolves the counterparty of every transaction in place.
func ResolveAll(transactions []*models.Transaction) {
	for _, tx := range transactions {
		tx.Counterparty = Resolve(tx)
	}
}

// Resolve applies the fallback chain to a single transaction:
//
//  1. incoming (amount > 0): debtorName, else creditorName
//  2. outgoing (amount <= 0): creditorName, else debtorName
//  3. first AZV- fragment of the remittance text
//  4. nil
//
// Only non-blank names (nonzero length after trimming) count; the returned
// name is trimmed.
func Resolve(tx *models.Transaction) *string {
	first, second := tx.CreditorName, tx.DebtorName
	if tx.Amount.IsPositive() {
		first, second = tx.DebtorName, tx.CreditorName
	}

	if !models.IsBlank(first) {
		return trimmed(first)
	}
	if !models.IsBlank(second) {
		return trimmed(second)
	}

	if names := ExtractRemittanceNames(tx.Remittance); len(names) > 0 {
		return &names[0]
	}
	return nil
}

// ExtractRemittanceNames collects the distinct trimmed AZV- fragments of a
// remittance string, in order of first appearance. Duplicates collapse by
// exact text match.
func ExtractRemittanceNames(text string) []string {
	matches := remittanceMarker.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		name := strings.TrimSpace(m[1])
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

func trimmed(s string) *string {
	t := strings.TrimSpace(s)
	return &t
}
