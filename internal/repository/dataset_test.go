package repository

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseDatasetFull(t *testing.T) {
	csv := `customer_id,churned,monthly_revenue,contract_type,onboarding_completed,engagement_score
C1,Yes,"1,200.50",Monthly,No,20
C2,No,3000,Annual,Yes,85
`
	ds, err := ParseDataset(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseDataset: %v", err)
	}
	if len(ds.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(ds.Records))
	}
	if !ds.Caps.HasContractType || !ds.Caps.HasOnboarding || !ds.Caps.HasEngagement {
		t.Errorf("capabilities = %+v, want all true", ds.Caps)
	}
	r := ds.Records[0]
	if r.CustomerID != "C1" || r.Churned != "Yes" {
		t.Errorf("record = %+v", r)
	}
	if r.MonthlyRevenue != 1200.50 {
		t.Errorf("MonthlyRevenue = %v, want 1200.50 (grouped digits)", r.MonthlyRevenue)
	}
	if r.EngagementScore != 20 {
		t.Errorf("EngagementScore = %v", r.EngagementScore)
	}
}

func TestParseDatasetMinimalColumns(t *testing.T) {
	csv := "Customer_ID,Churned,Monthly_Revenue\nC1,No,500\n"
	ds, err := ParseDataset(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseDataset: %v", err)
	}
	if ds.Caps.HasContractType || ds.Caps.HasOnboarding || ds.Caps.HasEngagement {
		t.Errorf("capabilities = %+v, want all false", ds.Caps)
	}
	if ds.Records[0].MonthlyRevenue != 500 {
		t.Errorf("header matching should be case-insensitive")
	}
}

func TestParseDatasetMissingRequiredColumn(t *testing.T) {
	csv := "customer_id,monthly_revenue\nC1,500\n"
	if _, err := ParseDataset(strings.NewReader(csv)); err == nil {
		t.Fatal("expected error for missing churned column")
	} else if !strings.Contains(err.Error(), "churned") {
		t.Errorf("error = %v, should name the missing column", err)
	}
}

func TestParseDatasetSkipsBlankIDs(t *testing.T) {
	csv := "customer_id,churned,monthly_revenue\nC1,No,100\n,Yes,200\nC3,No,300\n"
	ds, err := ParseDataset(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseDataset: %v", err)
	}
	if len(ds.Records) != 2 {
		t.Errorf("got %d records, want 2 (blank id skipped)", len(ds.Records))
	}
}

func TestParseDatasetRaggedRow(t *testing.T) {
	csv := "customer_id,churned,monthly_revenue,engagement_score\nC1,No,100\nC2,Yes,200,55\n"
	ds, err := ParseDataset(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseDataset: %v", err)
	}
	if len(ds.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(ds.Records))
	}
	if ds.Records[0].EngagementScore != 0 {
		t.Errorf("missing cell should read as 0, got %v", ds.Records[0].EngagementScore)
	}
	if ds.Records[1].EngagementScore != 55 {
		t.Errorf("EngagementScore = %v, want 55", ds.Records[1].EngagementScore)
	}
}

func TestParseDatasetBadNumber(t *testing.T) {
	csv := "customer_id,churned,monthly_revenue\nC1,No,not-a-number\n"
	ds, err := ParseDataset(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseDataset: %v", err)
	}
	if ds.Records[0].MonthlyRevenue != 0 {
		t.Errorf("unparseable revenue = %v, want 0", ds.Records[0].MonthlyRevenue)
	}
}

func writeDataset(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
}

func TestStoreMemoizesUntilReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customers.csv")
	writeDataset(t, path, "customer_id,churned,monthly_revenue\nC1,No,100\n")

	store := NewStore(path)
	ds, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(ds.Records) != 1 {
		t.Fatalf("got %d records, want 1", len(ds.Records))
	}

	// The file changes on disk; Load must keep serving the cached copy.
	writeDataset(t, path, "customer_id,churned,monthly_revenue\nC1,No,100\nC2,Yes,200\n")
	ds, err = store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(ds.Records) != 1 {
		t.Errorf("Load re-read the file: got %d records, want cached 1", len(ds.Records))
	}

	ds, err = store.Reload()
	if err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if len(ds.Records) != 2 {
		t.Errorf("Reload got %d records, want 2", len(ds.Records))
	}

	// And the new table is what Load serves from now on.
	ds, _ = store.Load()
	if len(ds.Records) != 2 {
		t.Errorf("post-reload Load got %d records, want 2", len(ds.Records))
	}
}

func TestStoreMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nope.csv"))
	if _, err := store.Load(); err == nil {
		t.Fatal("expected error for missing file")
	}
}
