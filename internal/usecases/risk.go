package usecases

import (
	"sort"

	"project_sentinel/internal/config"
	"project_sentinel/internal/entities"
)

// DefaultRiskTopN is how many entries the risk table keeps when the
// caller doesn't say otherwise.
const DefaultRiskTopN = 10

// ScoreRisk ranks still-active customers by heuristic churn risk.
// Each weight only applies when its column exists in the dataset.
// The sort is stable, so equal scores keep their original row order.
func ScoreRisk(records []entities.CustomerRecord, caps entities.Capabilities, n int, w config.RiskWeights) []entities.RiskEntry {
	if n <= 0 {
		n = DefaultRiskTopN
	}

	var entries []entities.RiskEntry
	for _, r := range records {
		if r.Churned != "No" {
			continue
		}
		score := 0.0
		if caps.HasContractType && r.ContractType == "Monthly" {
			score += w.MonthlyContract
		}
		if caps.HasOnboarding && r.OnboardingCompleted == "No" {
			score += w.IncompleteOnboarding
		}
		if caps.HasEngagement {
			score += (100 - r.EngagementScore) * w.EngagementFactor
		}
		entries = append(entries, entities.RiskEntry{
			CustomerID:      r.CustomerID,
			RiskScore:       score,
			ContractType:    r.ContractType,
			MonthlyRevenue:  r.MonthlyRevenue,
			EngagementScore: r.EngagementScore,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].RiskScore > entries[j].RiskScore
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
