package repository

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"project_sentinel/internal/entities"
)

// Dataset is the customer table plus the capability set describing
// which optional columns were present in the file.
type Dataset struct {
	Records []entities.CustomerRecord
	Caps    entities.Capabilities
}

// Store owns the memoized dataset load. The file is read once per
// process; Reload discards the cached table and reads again.
type Store struct {
	path string

	mu     sync.Mutex
	loaded bool
	ds     *Dataset
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the cached dataset, reading the file on first use.
func (s *Store) Load() (*Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return s.ds, nil
	}
	ds, err := s.read()
	if err != nil {
		return nil, err
	}
	s.ds = ds
	s.loaded = true
	return ds, nil
}

// Reload drops the memoized table and loads fresh from disk.
func (s *Store) Reload() (*Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ds, err := s.read()
	if err != nil {
		return nil, err
	}
	s.ds = ds
	s.loaded = true
	return ds, nil
}

func (s *Store) read() (*Dataset, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()
	return ParseDataset(file)
}

// ParseDataset reads a delimited customer table. Headers are matched
// case-insensitively; customer_id, churned and monthly_revenue are
// required, the remaining columns feed the capability set.
func ParseDataset(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("dataset has no header row")
	}

	cols := map[string]int{}
	for i, name := range records[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"customer_id", "churned", "monthly_revenue"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("dataset missing required column %q", required)
		}
	}

	caps := entities.Capabilities{}
	_, caps.HasContractType = cols["contract_type"]
	_, caps.HasOnboarding = cols["onboarding_completed"]
	_, caps.HasEngagement = cols["engagement_score"]

	get := func(row []string, name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	ds := &Dataset{Caps: caps}
	for _, row := range records[1:] {
		id := get(row, "customer_id")
		if id == "" {
			continue
		}
		rec := entities.CustomerRecord{
			CustomerID:          id,
			Churned:             get(row, "churned"),
			MonthlyRevenue:      parseFloat(get(row, "monthly_revenue")),
			ContractType:        get(row, "contract_type"),
			OnboardingCompleted: get(row, "onboarding_completed"),
			EngagementScore:     parseFloat(get(row, "engagement_score")),
		}
		ds.Records = append(ds.Records, rec)
	}
	return ds, nil
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	return f
}
