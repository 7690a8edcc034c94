package usecases

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"project_sentinel/internal/entities"
)

// FormatSummary renders the metrics snapshot as the fixed text block
// handed to the LLM as its only factual grounding. Absent inputs show
// up as 0 so the block's shape never changes.
func FormatSummary(m entities.MetricsSnapshot) string {
	var b strings.Builder
	b.WriteString("Dataset Overview:\n")
	fmt.Fprintf(&b, "- Total Customers: %s\n", humanize.Comma(int64(m.Total)))
	fmt.Fprintf(&b, "- Churned: %s (%.1f%%)\n", humanize.Comma(int64(m.ChurnedCount)), m.ChurnRate)
	fmt.Fprintf(&b, "- Revenue at Risk: ₹%s/month\n", humanize.Comma(int64(math.Round(m.RevenueRisk))))
	fmt.Fprintf(&b, "- Monthly Contract Churn: %.1f%%\n", m.MonthlyChurn)
	fmt.Fprintf(&b, "- Annual Contract Churn: %.1f%%\n", m.AnnualChurn)
	fmt.Fprintf(&b, "- Incomplete Onboarding Churn: %.1f%%\n", m.IncompleteChurn)
	fmt.Fprintf(&b, "- Complete Onboarding Churn: %.1f%%", m.CompleteChurn)
	return b.String()
}

// FormatRiskTable renders risk entries as a fixed-width text table,
// appended verbatim to the summary on turns that asked about risk.
func FormatRiskTable(entries []entities.RiskEntry) string {
	if len(entries) == 0 {
		return "(no active customers to score)"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%-15s %10s %-10s %15s %12s\n",
		"customer_id", "risk_score", "contract", "monthly_revenue", "engagement")
	for _, e := range entries {
		fmt.Fprintf(&b, "%-15s %10.1f %-10s %15.2f %12.1f\n",
			e.CustomerID, e.RiskScore, e.ContractType, e.MonthlyRevenue, e.EngagementScore)
	}
	return strings.TrimRight(b.String(), "\n")
}
