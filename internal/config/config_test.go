package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const inlineConfig = `
project:
  name: Wind Farm Beta
  technology: Onshore Wind
  capacity_mw: 50
  equipment_cost_per_mw: 1500000
  labor_cost_per_mw: 200000
  permitting_cost: 300000
  interest_rate: 6.0
  timeline_years: 4
  delay_months: 3
  inflation_rate: 2.0
  construction_months: 14
`

func TestLoadInlineProject(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", inlineConfig)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Project.Name != "Wind Farm Beta" {
		t.Errorf("name = %q", cfg.Project.Name)
	}
	if cfg.Project.CapacityMW != 50 || cfg.Project.TimelineYears != 4 {
		t.Errorf("parameters not parsed: %+v", cfg.Project)
	}

	// Omitted sections get the stock defaults.
	if len(cfg.Analysis.Timelines) != 3 {
		t.Errorf("timelines = %v, want the default three", cfg.Analysis.Timelines)
	}
	if cfg.Analysis.SensitivityRangePct != 20 {
		t.Errorf("sensitivity range = %f, want 20", cfg.Analysis.SensitivityRangePct)
	}
	if len(cfg.Scenarios) != 3 {
		t.Errorf("scenarios = %d, want the default three", len(cfg.Scenarios))
	}
}

func TestLoadProjectFileMerge(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "projects/wind.yaml", inlineConfig)
	// Relative project_file resolves against the config's own directory, and
	// inline fields override the file.
	cfgPath := writeFile(t, dir, "config.yaml", `
project_file: projects/wind.yaml
project:
  name: Wind Farm Beta Revised
  capacity_mw: 75
analysis:
  timelines: [5]
  sensitivity_range_pct: 30
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Project.Name != "Wind Farm Beta Revised" {
		t.Errorf("override name lost: %q", cfg.Project.Name)
	}
	if cfg.Project.CapacityMW != 75 {
		t.Errorf("override capacity lost: %f", cfg.Project.CapacityMW)
	}
	// Fields not overridden come from the project file.
	if cfg.Project.EquipmentCostPerMW != 1_500_000 || cfg.Project.ConstructionMonths != 14 {
		t.Errorf("project file fields lost: %+v", cfg.Project)
	}
	if len(cfg.Analysis.Timelines) != 1 || cfg.Analysis.Timelines[0] != 5 {
		t.Errorf("timelines = %v, want [5]", cfg.Analysis.Timelines)
	}
	if cfg.Analysis.SensitivityRangePct != 30 {
		t.Errorf("sensitivity range = %f, want 30", cfg.Analysis.SensitivityRangePct)
	}
}

func TestLoadRejectsInvalidProject(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", `
project:
  name: Broken
  capacity_mw: 0
  equipment_cost_per_mw: 1000000
  timeline_years: 5
  construction_months: 12
`)
	if _, err := Load(path); err == nil {
		t.Error("expected validation error for zero capacity")
	}
}

func TestLoadRejectsBadTimeline(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", inlineConfig+`
analysis:
  timelines: [5, -1]
`)
	if _, err := Load(path); err == nil {
		t.Error("expected validation error for negative timeline")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestMergeProjectZeroFieldsDoNotOverride(t *testing.T) {
	base := ProjectConfig{Name: "A", CapacityMW: 100, DelayMonths: 6, InterestRate: 5.5}
	merged := MergeProject(base, ProjectConfig{CapacityMW: 0, DelayMonths: 0})
	if merged.CapacityMW != 100 || merged.DelayMonths != 6 || merged.Name != "A" {
		t.Errorf("zero-valued override fields must not clobber base: %+v", merged)
	}

	merged = MergeProject(base, ProjectConfig{InterestRate: 7})
	if merged.InterestRate != 7 {
		t.Errorf("non-zero override lost: %f", merged.InterestRate)
	}
}
