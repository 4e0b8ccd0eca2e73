package analyzer

import (
	"strings"

	"github.com/dimityrivanov/transaction-insights/internal/models"

	"github.com/shopspring/decimal"
)

// groupKeySep separates the components of a composite group key. A unit
// separator cannot occur in counterparty names, amounts or currency codes.
const groupKeySep = "\x1f"

// Group is one bucket of an ordered grouping pass.
type Group struct {
	Key     string
	Members []*models.Transaction
}

// GroupIndex is an ordered multimap from group key to member transactions.
// Keys iterate in first-seen order and members keep their table order, so
// every grouped pass is deterministic regardless of map iteration.
type GroupIndex struct {
	order  []string
	groups map[string]*Group
}

// NewGroupIndex creates an empty GroupIndex.
func NewGroupIndex() *GroupIndex {
	return &GroupIndex{groups: make(map[string]*Group)}
}

// Add appends a transaction to the group for key, creating the group on
// first sight.
func (gi *GroupIndex) Add(key string, tx *models.Transaction) {
	g, ok := gi.groups[key]
	if !ok {
		g = &Group{Key: key}
		gi.groups[key] = g
		gi.order = append(gi.order, key)
	}
	g.Members = append(g.Members, tx)
}

// Get returns the group for key, or nil.
func (gi *GroupIndex) Get(key string) *Group {
	return gi.groups[key]
}

// Groups returns all groups in first-seen key order.
func (gi *GroupIndex) Groups() []*Group {
	out := make([]*Group, 0, len(gi.order))
	for _, key := range gi.order {
		out = append(out, gi.groups[key])
	}
	return out
}

// Len returns the number of groups.
func (gi *GroupIndex) Len() int {
	return len(gi.order)
}

// GroupByCounterparty buckets transactions by resolved counterparty name.
// Transactions without a counterparty are left out: every per-counterparty
// pass (top counterparties, outliers, profiles) is defined only over named
// groups.
func GroupByCounterparty(transactions []*models.Transaction) *GroupIndex {
	gi := NewGroupIndex()
	for _, tx := range transactions {
		if tx.Counterparty == nil {
			continue
		}
		gi.Add(*tx.Counterparty, tx)
	}
	return gi
}

// GroupByDuplicateKey buckets transactions by the exact triple
// (counterparty, unrounded amount, raw currency). Unresolved counterparties
// cannot form duplicate clusters and are skipped.
func GroupByDuplicateKey(transactions []*models.Transaction) *GroupIndex {
	gi := NewGroupIndex()
	for _, tx := range transactions {
		if tx.Counterparty == nil {
			continue
		}
		gi.Add(duplicateKey(tx), tx)
	}
	return gi
}

func duplicateKey(tx *models.Transaction) string {
	return *tx.Counterparty + groupKeySep + canonicalAmount(tx.Amount) + groupKeySep + tx.Currency
}

// canonicalAmount renders an amount so that numerically equal values produce
// equal keys regardless of source formatting ("10", "10.0" and "10.00" must
// land in the same group).
func canonicalAmount(d decimal.Decimal) string {
	s := d.String()
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
