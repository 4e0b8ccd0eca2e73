// Package reporter defines the financial-behavior report produced by one
// analysis call and its serialization rules.
//
// Two serialization constraints are normative and drive the two small custom
// types here. First, several report objects (daily totals, top
// counterparties, payment frequency, behavioral profiles) have semantic key
// order, which a plain Go map cannot express; OrderedMap preserves insertion
// order through JSON encoding. Second, the transport must tolerate non-finite
// numeric fields: Float encodes NaN and the infinities as JSON null instead
// of failing the whole response the way encoding/json does.
package reporter

import (
	"bytes"
	"encoding/json"
	"math"
)

// ErrNoTransactions is the message of the single distinguished failure
// outcome: an input batch with no transactions at all.
const ErrNoTransactions = "No transactions found"

// Float is a float64 that serializes non-finite values as null.
type Float float64

// MarshalJSON implements json.Marshaler.
func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

// OrderedMap is a JSON object with insertion-ordered keys.
type OrderedMap struct {
	keys   []string
	values map[string]interface{}
}

// NewOrderedMap creates an empty OrderedMap.
func NewOrderedMap() *OrderedMap {
	return &OrderedMap{values: make(map[string]interface{})}
}

// Set inserts or replaces a key. A replaced key keeps its original position.
func (m *OrderedMap) Set(key string, value interface{}) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for a key and whether it is present.
func (m *OrderedMap) Get(key string) (interface{}, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *OrderedMap) Keys() []string {
	return m.keys
}

// Len returns the number of entries.
func (m *OrderedMap) Len() int {
	return len(m.keys)
}

// MarshalJSON implements json.Marshaler, emitting keys in insertion order.
func (m *OrderedMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Summary holds the income/expense totals of the batch. Expense amounts keep
// their original (non-positive) sign, so NetResult is exactly
// TotalIncome + TotalExpense.
type Summary struct {
	TotalIncome  Float  `json:"total_income"`
	TotalExpense Float  `json:"total_expense"`
	NetResult    Float  `json:"net_result"`
	Currency     string `json:"currency"`
}

// DuplicateRow is one member of a same-counterparty/same-amount/same-currency
// cluster. It is a review flag, not a confirmed duplicate: legitimate repeat
// payments show up here too.
type DuplicateRow struct {
	BookingDate  *string `json:"bookingDate"`
	Counterparty string  `json:"counterparty"`
	Amount       Float   `json:"amount"`
	Currency     string  `json:"currency"`
	IBAN         *string `json:"iban"`
	Remittance   *string `json:"remittance"`
}

// OutlierRow is a transaction whose amount deviates unusually from its
// counterparty's distribution.
type OutlierRow struct {
	Counterparty string  `json:"counterparty"`
	Amount       Float   `json:"amount"`
	Mean         Float   `json:"mean"`
	Std          Float   `json:"std"`
	ZScore       Float   `json:"z_score"`
	Currency     string  `json:"currency"`
	BookingDate  *string `json:"bookingDate"`
	Reason       string  `json:"reason"`
}

// Profile is the behavioral summary of one counterparty. RiskScore is an
// uncalibrated heuristic: it rewards amount volatility and scheduling
// irregularity symmetrically at a fixed 0.5 weight each, capped at 100.
type Profile struct {
	AvgAmount       Float   `json:"avg_amount"`
	Consistency     *Float  `json:"consistency"`
	AvgIntervalDays *Float  `json:"avg_interval_days"`
	Trend           string  `json:"trend"`
	MostActiveDay   *string `json:"most_active_day"`
	RiskScore       Float   `json:"risk_score"`
}

// Report is the complete output of one analysis call. When Error is
// non-empty the report serializes as the single-key error object and every
// other field is meaningless; callers must check IsError before consuming
// summary fields.
type Report struct {
	Error string

	Summary             Summary
	DailyTotals         *OrderedMap
	TopDebtors          *OrderedMap
	PaymentFrequency    *OrderedMap
	PotentialDuplicates []DuplicateRow
	Outliers            []OutlierRow
	BehavioralProfiles  *OrderedMap
	TransactionCount    int
}

// NewErrorReport creates the distinguished error outcome.
func NewErrorReport(message string) *Report {
	return &Report{Error: message}
}

// IsError reports whether this is the distinguished error outcome rather
// than a full report.
func (r *Report) IsError() bool {
	return r.Error != ""
}

// MarshalJSON implements json.Marshaler. The field order below is the report
// contract; the error outcome serializes as exactly {"error": "..."}.
func (r *Report) MarshalJSON() ([]byte, error) {
	if r.IsError() {
		return json.Marshal(struct {
			Error string `json:"error"`
		}{r.Error})
	}

	return json.Marshal(struct {
		Summary             Summary        `json:"summary"`
		DailyTotals         *OrderedMap    `json:"daily_totals"`
		TopDebtors          *OrderedMap    `json:"top_debtors"`
		PaymentFrequency    *OrderedMap    `json:"payment_frequency"`
		PotentialDuplicates []DuplicateRow `json:"potential_duplicates"`
		Outliers            []OutlierRow   `json:"outliers"`
		BehavioralProfiles  *OrderedMap    `json:"behavioral_profiles"`
		TransactionCount    int            `json:"transaction_count"`
	}{
		Summary:             r.Summary,
		DailyTotals:         r.DailyTotals,
		TopDebtors:          r.TopDebtors,
		PaymentFrequency:    r.PaymentFrequency,
		PotentialDuplicates: r.PotentialDuplicates,
		Outliers:            r.Outliers,
		BehavioralProfiles:  r.BehavioralProfiles,
		TransactionCount:    r.TransactionCount,
	})
}

// EncodeJSON serializes a report to its canonical JSON form.
func EncodeJSON(r *Report) ([]byte, error) {
	return json.Marshal(r)
}

// EncodeJSONIndent serializes a report with indentation, for files and
// console output.
func EncodeJSONIndent(r *Report) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
