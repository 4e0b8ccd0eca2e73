// Package analyzer runs the transaction-analytics pipeline: normalization,
// counterparty resolution, and the four analytical passes (aggregation,
// duplicate detection, outlier detection, behavioral profiling) over one
// self-contained batch.
//
// The pipeline is a pure, synchronous computation: one input tree in, one
// report out, no shared state across calls. Irregular data (missing fields,
// unparseable dates or amounts, tiny groups, zero-variance groups) is
// absorbed by per-field defaulting and per-rule gating; the only
// distinguished failure is an empty transaction set, surfaced as the
// report-level error value rather than a Go error.
package analyzer

import (
	"github.com/dimityrivanov/transaction-insights/internal/normalizer"
	"github.com/dimityrivanov/transaction-insights/internal/reporter"
	"github.com/dimityrivanov/transaction-insights/internal/resolver"
	"github.com/dimityrivanov/transaction-insights/pkg/logger"
)

// Analyzer executes analysis calls. It holds no per-call state and is safe
// to share across concurrent requests.
type Analyzer struct {
	log logger.Logger
}

// New creates an Analyzer. A nil logger falls back to the global instance.
func New(log logger.Logger) *Analyzer {
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	return &Analyzer{log: log.WithComponent("analyzer")}
}

// Analyze runs the full pipeline on a decoded JSON input tree and returns
// the report, or the distinguished error report when the batch contains no
// transactions.
func (a *Analyzer) Analyze(input map[string]interface{}) *reporter.Report {
	transactions, stats := normalizer.Normalize(input)
	if len(transactions) == 0 {
		a.log.Warn("No transactions in input batch")
		return reporter.NewErrorReport(reporter.ErrNoTransactions)
	}

	resolver.ResolveAll(transactions)
	byCounterparty := GroupByCounterparty(transactions)

	a.log.WithFields(logger.Fields{
		"booked":         stats.Booked,
		"pending":        stats.Pending,
		"dated":          stats.Dated,
		"counterparties": byCounterparty.Len(),
	}).Debug("Normalized transaction batch")

	profiles, frequency := buildProfiles(byCounterparty)

	report := &reporter.Report{
		Summary:             buildSummary(transactions),
		DailyTotals:         buildDailyTotals(transactions),
		TopDebtors:          buildTopDebtors(byCounterparty),
		PaymentFrequency:    frequency,
		PotentialDuplicates: detectDuplicates(transactions),
		Outliers:            detectOutliers(byCounterparty),
		BehavioralProfiles:  profiles,
		TransactionCount:    len(transactions),
	}

	a.log.WithFields(logger.Fields{
		"transactions": report.TransactionCount,
		"duplicates":   len(report.PotentialDuplicates),
		"outliers":     len(report.Outliers),
	}).Info("Analysis complete")

	return report
}
