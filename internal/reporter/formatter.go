package reporter

import (
	"fmt"
	"io"
	"strings"
)

// WriteConsoleReport renders a report in a human-readable form, for the CLI's
// console output format.
func WriteConsoleReport(w io.Writer, r *Report) error {
	if r.IsError() {
		_, err := fmt.Fprintf(w, "Analysis failed: %s\n", r.Error)
		return err
	}

	var b strings.Builder

	writeSection(&b, "SUMMARY")
	fmt.Fprintf(&b, "  Transactions:  %d\n", r.TransactionCount)
	fmt.Fprintf(&b, "  Total income:  %.2f %s\n", float64(r.Summary.TotalIncome), r.Summary.Currency)
	fmt.Fprintf(&b, "  Total expense: %.2f %s\n", float64(r.Summary.TotalExpense), r.Summary.Currency)
	fmt.Fprintf(&b, "  Net result:    %.2f %s\n", float64(r.Summary.NetResult), r.Summary.Currency)

	if r.TopDebtors.Len() > 0 {
		writeSection(&b, "TOP COUNTERPARTIES")
		for _, name := range r.TopDebtors.Keys() {
			v, _ := r.TopDebtors.Get(name)
			fmt.Fprintf(&b, "  %-30s %12.2f\n", name, float64(v.(Float)))
		}
	}

	if r.PaymentFrequency.Len() > 0 {
		writeSection(&b, "PAYMENT FREQUENCY")
		for _, name := range r.PaymentFrequency.Keys() {
			v, _ := r.PaymentFrequency.Get(name)
			fmt.Fprintf(&b, "  %-30s every %.2f days\n", name, float64(v.(Float)))
		}
	}

	writeSection(&b, "DUPLICATE CANDIDATES")
	if len(r.PotentialDuplicates) == 0 {
		b.WriteString("  none\n")
	}
	for _, d := range r.PotentialDuplicates {
		fmt.Fprintf(&b, "  %-10s %-30s %12.2f %s\n",
			orNA(d.BookingDate), d.Counterparty, float64(d.Amount), d.Currency)
	}

	writeSection(&b, "OUTLIERS")
	if len(r.Outliers) == 0 {
		b.WriteString("  none\n")
	}
	for _, o := range r.Outliers {
		fmt.Fprintf(&b, "  %-30s %12.2f (z=%.2f) %s\n",
			o.Counterparty, float64(o.Amount), float64(o.ZScore), o.Reason)
	}

	if r.BehavioralProfiles.Len() > 0 {
		writeSection(&b, "BEHAVIORAL PROFILES")
		for _, name := range r.BehavioralProfiles.Keys() {
			v, _ := r.BehavioralProfiles.Get(name)
			p := v.(Profile)
			fmt.Fprintf(&b, "  %s\n", name)
			fmt.Fprintf(&b, "    avg amount: %.2f, trend: %s, risk: %.2f\n",
				float64(p.AvgAmount), p.Trend, float64(p.RiskScore))
			if p.AvgIntervalDays != nil {
				fmt.Fprintf(&b, "    avg interval: %.2f days\n", float64(*p.AvgIntervalDays))
			}
			if p.MostActiveDay != nil {
				fmt.Fprintf(&b, "    most active day: %s\n", *p.MostActiveDay)
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeSection(b *strings.Builder, title string) {
	fmt.Fprintf(b, "\n%s\n%s\n", title, strings.Repeat("-", len(title)))
}

func orNA(s *string) string {
	if s == nil {
		return "n/a"
	}
	return *s
}
