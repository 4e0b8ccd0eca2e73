package analyzer

import (
	"math"
	"sort"
	"time"

	"github.com/dimityrivanov/transaction-insights/internal/models"
	"github.com/dimityrivanov/transaction-insights/internal/reporter"
)

// Risk scoring constants. The score is a heuristic composite, not a
// calibrated statistical risk measure: amount volatility and scheduling
// irregularity each contribute at a fixed 0.5 weight, capped at 100.
const (
	riskWeight = 50.0
	riskCap    = 100.0
)

const (
	trendIncreasing = "increasing"
	trendDecreasing = "decreasing"
	trendStable     = "stable"
)

// buildProfiles computes a behavioral profile for every counterparty (all
// group sizes, including singletons) plus the payment_frequency section,
// which maps each counterparty with a measurable rhythm to its average gap
// in days. Both keep first-seen counterparty order.
func buildProfiles(byCounterparty *GroupIndex) (profiles, frequency *reporter.OrderedMap) {
	profiles = reporter.NewOrderedMap()
	frequency = reporter.NewOrderedMap()

	for _, g := range byCounterparty.Groups() {
		p := profileGroup(g.Members)
		profiles.Set(g.Key, p)
		if p.AvgIntervalDays != nil {
			frequency.Set(g.Key, *p.AvgIntervalDays)
		}
	}
	return profiles, frequency
}

// profileGroup computes one counterparty profile over its transactions,
// sorted ascending by booking date (undated members keep relative order at
// the end).
func profileGroup(members []*models.Transaction) reporter.Profile {
	sorted := sortByDate(members)

	amounts := make([]float64, len(sorted))
	for i, tx := range sorted {
		amounts[i] = tx.Amount.InexactFloat64()
	}
	m := mean(amounts)
	std := populationStd(amounts, m)

	p := reporter.Profile{
		AvgAmount: reporter.Float(round2(m)),
		Trend:     trendLabel(amounts),
	}

	// std/mean is undefined for a zero mean, reported as null rather than 0.
	if m != 0 {
		c := reporter.Float(round2(std / m))
		p.Consistency = &c
	}

	gaps := dayGaps(sorted)
	var avgGap float64
	if len(gaps) > 0 {
		avgGap = mean(gaps)
		rounded := reporter.Float(round2(avgGap))
		p.AvgIntervalDays = &rounded
	}

	if day := mostActiveDay(sorted); day != "" {
		p.MostActiveDay = &day
	}

	p.RiskScore = reporter.Float(riskScore(m, std, gaps, avgGap, p.AvgIntervalDays != nil))
	return p
}

// sortByDate returns the members ordered ascending by booking date. The sort
// is stable and undated members sink to the end, so trend indexes stay
// deterministic.
func sortByDate(members []*models.Transaction) []*models.Transaction {
	sorted := make([]*models.Transaction, len(members))
	copy(sorted, members)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := sorted[i].BookingDate, sorted[j].BookingDate
		if di == nil {
			return false
		}
		if dj == nil {
			return true
		}
		return di.Before(*dj)
	})
	return sorted
}

// dayGaps returns the whole-day gaps between consecutive dated members of a
// date-sorted group. Fewer than 2 dated members yield no gaps.
func dayGaps(sorted []*models.Transaction) []float64 {
	var gaps []float64
	var prev *time.Time
	for _, tx := range sorted {
		if tx.BookingDate == nil {
			continue
		}
		if prev != nil {
			gaps = append(gaps, float64(tx.BookingDate.Sub(*prev)/(24*time.Hour)))
		}
		prev = tx.BookingDate
	}
	return gaps
}

// trendLabel fits a least-squares line of amount against sequence index.
// A strictly positive slope is "increasing"; zero or negative is
// "decreasing" (the zero-slope boundary is fixed contract behavior). Groups
// under 2 transactions are "stable".
func trendLabel(amounts []float64) string {
	if len(amounts) < 2 {
		return trendStable
	}
	if leastSquaresSlope(amounts) > 0 {
		return trendIncreasing
	}
	return trendDecreasing
}

// mostActiveDay returns the modal weekday name among dated members, or ""
// when none are dated. Ties resolve to the weekday seen first in iteration
// order.
func mostActiveDay(sorted []*models.Transaction) string {
	counts := make(map[string]int)
	var order []string
	for _, tx := range sorted {
		day := tx.Weekday()
		if day == "" {
			continue
		}
		if counts[day] == 0 {
			order = append(order, day)
		}
		counts[day]++
	}

	best := ""
	bestCount := 0
	for _, day := range order {
		if counts[day] > bestCount {
			best = day
			bestCount = counts[day]
		}
	}
	return best
}

// riskScore combines amount volatility (|std/mean|, 0 for a zero mean) and
// scheduling irregularity (std of gaps over average gap, 0 without a
// measurable rhythm) into min(100, (volatility+irregularity)*50).
func riskScore(m, std float64, gaps []float64, avgGap float64, hasInterval bool) float64 {
	var volatility float64
	if m != 0 {
		volatility = math.Abs(std / m)
	}

	var irregularity float64
	if hasInterval && avgGap != 0 {
		irregularity = populationStd(gaps, avgGap) / avgGap
	}

	return round2(math.Min(riskCap, (volatility+irregularity)*riskWeight))
}
