package usecases

import (
	"project_sentinel/internal/config"
	"project_sentinel/internal/entities"
	"project_sentinel/internal/repository"
)

// DashboardUsecase serves the read-side of the dashboard: metrics,
// charts, insight cards and the risk table, all recomputed on demand
// from the cached dataset.
type DashboardUsecase struct {
	store *repository.Store
	cfg   *config.Config
}

func NewDashboardUsecase(store *repository.Store, cfg *config.Config) *DashboardUsecase {
	return &DashboardUsecase{store: store, cfg: cfg}
}

func (u *DashboardUsecase) Metrics() (entities.MetricsSnapshot, error) {
	ds, err := u.store.Load()
	if err != nil {
		return entities.MetricsSnapshot{}, err
	}
	return ComputeMetrics(ds.Records, ds.Caps)
}

func (u *DashboardUsecase) Charts() (entities.ChartSet, error) {
	m, err := u.Metrics()
	if err != nil {
		return entities.ChartSet{}, err
	}
	return BuildCharts(m, u.cfg.Charts), nil
}

func (u *DashboardUsecase) Insights() ([]entities.InsightCard, error) {
	m, err := u.Metrics()
	if err != nil {
		return nil, err
	}
	return BuildInsights(m), nil
}

func (u *DashboardUsecase) Risk(n int) ([]entities.RiskEntry, error) {
	ds, err := u.store.Load()
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		n = u.cfg.RiskTopN
	}
	return ScoreRisk(ds.Records, ds.Caps, n, u.cfg.Weights), nil
}

// TargetDelta renders the snapshot's churn rate against the configured
// target for the status line.
func (u *DashboardUsecase) TargetDelta(m entities.MetricsSnapshot) string {
	return FormatTargetDelta(m.ChurnRate, u.cfg.Charts)
}

// Reload drops the memoized dataset and reads it again.
func (u *DashboardUsecase) Reload() error {
	_, err := u.store.Reload()
	return err
}
