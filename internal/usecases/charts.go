package usecases

import (
	"fmt"

	"project_sentinel/internal/config"
	"project_sentinel/internal/entities"
)

// Dashboard palette.
const (
	colorPrimary   = "#004a99"
	colorSecondary = "#a9c5e0"
	colorGreenBand = "#d9f0e0"
	colorAmberBand = "#fff0cc"
	colorRedBand   = "#ffe0e0"
)

// GaugeChart builds the churn-rate gauge. Band edges come from the
// chart tuning so the green/amber/red cutoffs stay configurable.
func GaugeChart(value float64, title string, t config.ChartTuning) entities.GaugeSpec {
	return entities.GaugeSpec{
		Type:      "indicator",
		Mode:      "gauge+number",
		Value:     value,
		Title:     title,
		AxisRange: [2]float64{0, t.GaugeMax},
		BarColor:  colorPrimary,
		Steps: []entities.GaugeStep{
			{Range: [2]float64{0, t.GaugeWarn}, Color: colorGreenBand},
			{Range: [2]float64{t.GaugeWarn, t.GaugeAlert}, Color: colorAmberBand},
			{Range: [2]float64{t.GaugeAlert, t.GaugeMax}, Color: colorRedBand},
		},
		Threshold: t.GaugeAlert,
	}
}

// FormatTargetDelta restates the churn rate as its distance from the
// configured target, shown beside the headline figure.
func FormatTargetDelta(churnRate float64, t config.ChartTuning) string {
	return fmt.Sprintf("%.1f%% vs target", churnRate-t.ChurnTarget)
}

// ComparisonChart builds the monthly vs annual churn bar pair.
func ComparisonChart(monthly, annual float64) entities.ComparisonSpec {
	return entities.ComparisonSpec{
		Type:       "bar",
		Title:      "Contract Type Comparison",
		YAxisTitle: "Churn Rate (%)",
		Series: []entities.BarSeries{
			{Name: "Monthly", Value: monthly, Color: colorPrimary},
			{Name: "Annual", Value: annual, Color: colorSecondary},
		},
	}
}

// RevenueChart builds the revenue-at-risk indicator. The value is
// restated in lakhs to match the ₹/L display.
func RevenueChart(revenue float64, t config.ChartTuning) entities.DeltaSpec {
	return entities.DeltaSpec{
		Type:           "indicator",
		Mode:           "number+delta",
		Value:          revenue / 100000,
		Prefix:         "₹",
		Suffix:         "L",
		Title:          "Monthly Revenue at Risk",
		DeltaReference: t.DeltaReference,
		DeltaRelative:  true,
	}
}

// BuildCharts assembles the three dashboard widgets from a snapshot.
func BuildCharts(m entities.MetricsSnapshot, t config.ChartTuning) entities.ChartSet {
	return entities.ChartSet{
		ChurnGauge:   GaugeChart(m.ChurnRate, "Churn Rate (%)", t),
		ContractBars: ComparisonChart(m.MonthlyChurn, m.AnnualChurn),
		RevenueDelta: RevenueChart(m.RevenueRisk, t),
	}
}
