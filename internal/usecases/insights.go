package usecases

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"project_sentinel/internal/entities"
)

// BuildInsights derives the three narrative cards shown under the
// charts. Ratios with a zero denominator report 0 rather than blowing
// up on a dataset with no annual contracts or no completed onboarding.
func BuildInsights(m entities.MetricsSnapshot) []entities.InsightCard {
	contractRatio := safeRatio(m.MonthlyChurn, m.AnnualChurn)
	onboardingRatio := safeRatio(m.IncompleteChurn, m.CompleteChurn)

	return []entities.InsightCard{
		{
			Title:    "High-Risk Contracts",
			Headline: fmt.Sprintf("Monthly contracts churn at %.1fx the rate of annual contracts", contractRatio),
			Detail:   fmt.Sprintf("(%.1f%% vs %.1f%%)", m.MonthlyChurn, m.AnnualChurn),
		},
		{
			Title:    "Onboarding Impact",
			Headline: fmt.Sprintf("Incomplete onboarding leads to %.1fx higher churn", onboardingRatio),
			Detail:   fmt.Sprintf("(%.1f%% vs %.1f%%)", m.IncompleteChurn, m.CompleteChurn),
		},
		{
			Title:    "Revenue at Risk",
			Headline: fmt.Sprintf("₹%.1f lakhs monthly revenue at risk from churned customers", m.RevenueRisk/100000),
			Detail:   fmt.Sprintf("(%s customers)", humanize.Comma(int64(m.ChurnedCount))),
		},
	}
}

func safeRatio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
