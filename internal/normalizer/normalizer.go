// Package normalizer flattens the loosely typed open-banking input tree into
// the uniform transaction model.
//
// The input is a decoded JSON tree of the shape
//
//	{ "transactions": { "booked": [...], "pending": [...] } }
//
// where each entry is a mapping with optional nested fields
// (transactionAmount.amount, transactionAmount.currency, bookingDate,
// creditorName, debtorName, remittanceInformationUnstructured,
// creditorAccount.iban). Unknown keys are ignored. Extraction is tolerant:
// missing or malformed fields take the defaults documented in the models
// package, and no record is ever rejected.
package normalizer

import (
	"github.com/dimityrivanov/transaction-insights/internal/models"
)

// Stats describes one normalization run, for logging and diagnostics.
type Stats struct {
	Booked  int
	Pending int
	Total   int
	Dated   int
}

// Normalize sanitizes the input tree and flattens booked followed by pending
// records into transactions. The booked-then-pending order is part of the
// report contract: it decides the summary currency and every stable sort
// downstream.
func Normalize(input map[string]interface{}) ([]*models.Transaction, Stats) {
	Sanitize(input)

	booked := recordList(input, "booked")
	pending := recordList(input, "pending")

	stats := Stats{
		Booked:  len(booked),
		Pending: len(pending),
		Total:   len(booked) + len(pending),
	}

	transactions := make([]*models.Transaction, 0, stats.Total)
	for _, raw := range append(booked, pending...) {
		tx := Flatten(raw)
		if tx.BookingDate != nil {
			stats.Dated++
		}
		transactions = append(transactions, tx)
	}

	return transactions, stats
}

// Flatten converts one raw record into a Transaction. A non-mapping record
// flattens to an all-defaults transaction (zero amount, fallback currency,
// no date) rather than failing the batch.
func Flatten(raw interface{}) *models.Transaction {
	rec, _ := raw.(map[string]interface{})

	amount := models.ParseAmount(nested(rec, "transactionAmount", "amount"))
	currency := models.ParseCurrency(nested(rec, "transactionAmount", "currency"))
	bookingDate := models.ParseBookingDate(rec["bookingDate"])

	tx := models.NewTransaction(amount, currency, bookingDate)
	tx.CreditorName = models.ParseOptionalString(rec["creditorName"])
	tx.DebtorName = models.ParseOptionalString(rec["debtorName"])
	tx.Remittance = models.ParseOptionalString(rec["remittanceInformationUnstructured"])
	tx.CreditorIBAN = models.ParseOptionalString(nested(rec, "creditorAccount", "iban"))
	return tx
}

// recordList extracts transactions.<key> as a slice of raw records,
// tolerating any missing or mistyped level.
func recordList(input map[string]interface{}, key string) []interface{} {
	if input == nil {
		return nil
	}
	container, _ := input["transactions"].(map[string]interface{})
	if container == nil {
		return nil
	}
	list, _ := container[key].([]interface{})
	return list
}

// nested reads rec[outer][inner], returning nil when any level is missing or
// not a mapping.
func nested(rec map[string]interface{}, outer, inner string) interface{} {
	if rec == nil {
		return nil
	}
	child, _ := rec[outer].(map[string]interface{})
	if child == nil {
		return nil
	}
	return child[inner]
}
