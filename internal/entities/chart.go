package entities

// Chart specs mirror the plotly figure payloads the dashboard page
// renders. They are plain data; building them is pure computation.

type GaugeStep struct {
	Range [2]float64 `json:"range"`
	Color string     `json:"color"`
}

// GaugeSpec is a gauge+number indicator (churn rate widget).
type GaugeSpec struct {
	Type      string      `json:"type"` // "indicator"
	Mode      string      `json:"mode"` // "gauge+number"
	Value     float64     `json:"value"`
	Title     string      `json:"title"`
	AxisRange [2]float64  `json:"axis_range"`
	BarColor  string      `json:"bar_color"`
	Steps     []GaugeStep `json:"steps"`
	Threshold float64     `json:"threshold"`
}

type BarSeries struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// ComparisonSpec is a grouped-bar chart (contract type comparison).
type ComparisonSpec struct {
	Type       string      `json:"type"` // "bar"
	Title      string      `json:"title"`
	YAxisTitle string      `json:"yaxis_title"`
	Series     []BarSeries `json:"series"`
}

// DeltaSpec is a number+delta indicator (revenue at risk widget).
type DeltaSpec struct {
	Type           string  `json:"type"` // "indicator"
	Mode           string  `json:"mode"` // "number+delta"
	Value          float64 `json:"value"`
	Prefix         string  `json:"prefix"`
	Suffix         string  `json:"suffix"`
	Title          string  `json:"title"`
	DeltaReference float64 `json:"delta_reference"`
	DeltaRelative  bool    `json:"delta_relative"`
}

// ChartSet bundles the three dashboard widgets.
type ChartSet struct {
	ChurnGauge   GaugeSpec      `json:"churn_gauge"`
	ContractBars ComparisonSpec `json:"contract_bars"`
	RevenueDelta DeltaSpec      `json:"revenue_delta"`
}

// InsightCard is one narrative highlight under the charts.
type InsightCard struct {
	Title    string `json:"title"`
	Headline string `json:"headline"`
	Detail   string `json:"detail"`
}
