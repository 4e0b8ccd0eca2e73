// Package models defines the uniform transaction model produced by the
// normalization step, together with the tolerant parse helpers that populate
// it.
//
// Open-banking statement exports are loosely typed: amounts arrive as numbers
// or strings, currencies and dates may be missing, and name fields are often
// blank. Every helper in this package parses on a best-effort basis and falls
// back to an explicit, documented default instead of returning an error, so
// that a single malformed field never discards a record.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FallbackCurrency is used whenever a record carries no currency code.
const FallbackCurrency = "BGN"

// BookingDateLayout is the canonical date format of statement exports and of
// every date string in the report.
const BookingDateLayout = "2006-01-02"

// TransactionType classifies a transaction by the sign of its amount.
type TransactionType string

const (
	// TypeIncome marks transactions with a strictly positive amount.
	TypeIncome TransactionType = "income"
	// TypeExpense marks transactions with a zero or negative amount.
	TypeExpense TransactionType = "expense"
)

// String returns the string representation of TransactionType.
func (t TransactionType) String() string {
	return string(t)
}

// IsValid checks if the transaction type is valid.
func (t TransactionType) IsValid() bool {
	return t == TypeIncome || t == TypeExpense
}

// TypeForAmount derives the transaction type from a signed amount. Zero
// amounts classify as expense.
func TypeForAmount(amount decimal.Decimal) TransactionType {
	if amount.IsPositive() {
		return TypeIncome
	}
	return TypeExpense
}

// Transaction is one normalized statement entry. Amount and Type are always
// determinate; BookingDate and Counterparty are nil when the source record
// gave nothing usable.
type Transaction struct {
	Amount       decimal.Decimal
	Currency     string
	BookingDate  *time.Time
	Type         TransactionType
	CreditorName string
	DebtorName   string
	Remittance   string
	CreditorIBAN string
	Counterparty *string
}

// NewTransaction creates a Transaction with the type derived from the amount.
func NewTransaction(amount decimal.Decimal, currency string, bookingDate *time.Time) *Transaction {
	return &Transaction{
		Amount:      amount,
		Currency:    currency,
		BookingDate: bookingDate,
		Type:        TypeForAmount(amount),
	}
}

// DateString returns the booking date formatted as YYYY-MM-DD, or nil for
// undated transactions.
func (t *Transaction) DateString() *string {
	if t.BookingDate == nil {
		return nil
	}
	s := t.BookingDate.Format(BookingDateLayout)
	return &s
}

// Weekday returns the English weekday name of the booking date, or an empty
// string for undated transactions.
func (t *Transaction) Weekday() string {
	if t.BookingDate == nil {
		return ""
	}
	return t.BookingDate.Weekday().String()
}

// String returns a compact representation for logs and test failures.
func (t *Transaction) String() string {
	date := "no date"
	if s := t.DateString(); s != nil {
		date = *s
	}
	name := "<unresolved>"
	if t.Counterparty != nil {
		name = *t.Counterparty
	}
	return fmt.Sprintf("Transaction{Amount: %s %s, Date: %s, Counterparty: %s}",
		t.Amount.String(), t.Currency, date, name)
}

// ParseAmount coerces an arbitrary decoded JSON value into a decimal amount.
// Numbers pass through, numeric strings are parsed after trimming; anything
// else, including parse failures, yields zero.
func ParseAmount(v interface{}) decimal.Decimal {
	switch val := v.(type) {
	case float64:
		return decimal.NewFromFloat(val)
	case int:
		return decimal.NewFromInt(int64(val))
	case int64:
		return decimal.NewFromInt(val)
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return decimal.Zero
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// ParseCurrency extracts a currency code, falling back to FallbackCurrency
// for missing, non-string or blank values.
func ParseCurrency(v interface{}) string {
	s, ok := v.(string)
	if !ok {
		return FallbackCurrency
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return FallbackCurrency
	}
	return s
}

// bookingDateLayouts lists the accepted date encodings, most specific last.
// Statement exports normally carry plain YYYY-MM-DD dates but some providers
// emit full timestamps.
var bookingDateLayouts = []string{
	BookingDateLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// ParseBookingDate parses a booking date, returning nil for missing,
// non-string or unparseable values. An unparseable date is "no date", never
// an error.
func ParseBookingDate(v interface{}) *time.Time {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range bookingDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// ParseOptionalString extracts a string field, returning "" for missing or
// non-string values. No trimming: raw values are preserved for reporting,
// blankness checks happen at resolution time.
func ParseOptionalString(v interface{}) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

// IsBlank reports whether a name field is unusable: absent or only
// whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
