package entities

// CustomerRecord is one row of the customer dataset.
type CustomerRecord struct {
	CustomerID          string  `json:"customer_id"`
	Churned             string  `json:"churned"` // "Yes" / "No"
	MonthlyRevenue      float64 `json:"monthly_revenue"`
	ContractType        string  `json:"contract_type"` // "Monthly", "Annual", ...
	OnboardingCompleted string  `json:"onboarding_completed"`
	EngagementScore     float64 `json:"engagement_score"`
}

// Capabilities records which optional dataset columns were present,
// so downstream computations can skip splits explicitly instead of
// probing each row.
type Capabilities struct {
	HasContractType bool `json:"has_contract_type"`
	HasOnboarding   bool `json:"has_onboarding"`
	HasEngagement   bool `json:"has_engagement"`
}

// MetricsSnapshot holds aggregate churn statistics derived from the
// full customer collection. It carries no state of its own; recompute
// it whenever the dataset changes.
type MetricsSnapshot struct {
	Total           int     `json:"total"`
	ChurnedCount    int     `json:"churned"`
	ChurnRate       float64 `json:"churn_rate"`    // percent
	RevenueRisk     float64 `json:"revenue_risk"`  // sum of monthly_revenue over churned rows
	MonthlyChurn    float64 `json:"monthly_churn"` // percent, Monthly contracts
	AnnualChurn     float64 `json:"annual_churn"`
	IncompleteChurn float64 `json:"incomplete_churn"` // percent, onboarding not completed
	CompleteChurn   float64 `json:"complete_churn"`
}

// RiskEntry is one active customer ranked by heuristic churn risk.
// Display fields are passed through from the source row.
type RiskEntry struct {
	CustomerID      string  `json:"customer_id"`
	RiskScore       float64 `json:"risk_score"`
	ContractType    string  `json:"contract_type,omitempty"`
	MonthlyRevenue  float64 `json:"monthly_revenue"`
	EngagementScore float64 `json:"engagement_score"`
}
