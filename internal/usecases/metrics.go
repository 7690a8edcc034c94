package usecases

import (
	"fmt"

	"project_sentinel/internal/entities"
)

// ComputeMetrics derives the aggregate churn snapshot from the customer
// table. Pure: the input is never mutated, so concurrent callers are
// fine. An empty table is an error; everything downstream divides by
// the row count.
func ComputeMetrics(records []entities.CustomerRecord, caps entities.Capabilities) (entities.MetricsSnapshot, error) {
	if len(records) == 0 {
		return entities.MetricsSnapshot{}, fmt.Errorf("dataset has no rows")
	}

	m := entities.MetricsSnapshot{Total: len(records)}
	for _, r := range records {
		if r.Churned == "Yes" {
			m.ChurnedCount++
			m.RevenueRisk += r.MonthlyRevenue
		}
	}
	m.ChurnRate = 100 * float64(m.ChurnedCount) / float64(m.Total)

	if caps.HasContractType {
		m.MonthlyChurn = conditionalChurnRate(records, func(r entities.CustomerRecord) bool {
			return r.ContractType == "Monthly"
		})
		m.AnnualChurn = conditionalChurnRate(records, func(r entities.CustomerRecord) bool {
			return r.ContractType == "Annual"
		})
	}
	if caps.HasOnboarding {
		m.IncompleteChurn = conditionalChurnRate(records, func(r entities.CustomerRecord) bool {
			return r.OnboardingCompleted == "No"
		})
		m.CompleteChurn = conditionalChurnRate(records, func(r entities.CustomerRecord) bool {
			return r.OnboardingCompleted == "Yes"
		})
	}

	return m, nil
}

// conditionalChurnRate is the percentage of churned rows within the
// subgroup selected by match. Empty subgroups yield 0.
func conditionalChurnRate(records []entities.CustomerRecord, match func(entities.CustomerRecord) bool) float64 {
	var total, churned int
	for _, r := range records {
		if !match(r) {
			continue
		}
		total++
		if r.Churned == "Yes" {
			churned++
		}
	}
	if total == 0 {
		return 0
	}
	return 100 * float64(churned) / float64(total)
}
