package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"capex-forecast/internal/model"
	"capex-forecast/internal/scenario"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load project parameters from a separate YAML (e.g. examples/projects/*.yaml).
	// If both ProjectFile and Project are provided, Project overrides ProjectFile.
	ProjectFile string            `yaml:"project_file"`
	Project     ProjectConfig     `yaml:"project"`
	Scenarios   []scenario.Preset `yaml:"scenarios"`
	Analysis    AnalysisConfig    `yaml:"analysis"`
}

type ProjectConfig struct {
	Name               string  `yaml:"name"`
	Technology         string  `yaml:"technology"`
	CapacityMW         float64 `yaml:"capacity_mw"`
	EquipmentCostPerMW float64 `yaml:"equipment_cost_per_mw"`
	LaborCostPerMW     float64 `yaml:"labor_cost_per_mw"`
	PermittingCost     float64 `yaml:"permitting_cost"`
	InterestRate       float64 `yaml:"interest_rate"`
	TimelineYears      int     `yaml:"timeline_years"`
	DelayMonths        float64 `yaml:"delay_months"`
	InflationRate      float64 `yaml:"inflation_rate"`
	ConstructionMonths int     `yaml:"construction_months"`
}

type AnalysisConfig struct {
	Timelines           []int   `yaml:"timelines"`
	SensitivityRangePct float64 `yaml:"sensitivity_range_pct"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	// Defaults that keep configs concise: the standard dashboard timelines,
	// a +/-20% sweep and the three stock scenarios.
	if len(c.Analysis.Timelines) == 0 {
		c.Analysis.Timelines = scenario.DefaultTimelines()
	}
	if c.Analysis.SensitivityRangePct == 0 {
		c.Analysis.SensitivityRangePct = 20
	}
	if len(c.Scenarios) == 0 {
		c.Scenarios = scenario.Defaults()
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If project_file is set, load it and merge in any explicit overrides from c.Project.
	if c.ProjectFile != "" {
		projectPath := c.ProjectFile
		if !filepath.IsAbs(projectPath) {
			// Prefer interpreting relative paths as relative to the config file directory,
			// but fall back to the provided path (relative to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), projectPath)
			if _, err := os.Stat(cand); err == nil {
				projectPath = cand
			}
		}
		loaded, err := loadProjectFile(projectPath)
		if err != nil {
			return nil, err
		}
		c.Project = MergeProject(loaded, c.Project)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.Project.ToParameters().Validate(); err != nil {
		return fmt.Errorf("project config invalid: %w", err)
	}
	for _, s := range c.Scenarios {
		if s.Name == "" {
			return errors.New("scenario name is required")
		}
	}
	for _, t := range c.Analysis.Timelines {
		if t <= 0 {
			return fmt.Errorf("analysis timeline must be > 0, got %d", t)
		}
	}
	return nil
}

func (p ProjectConfig) ToParameters() model.ProjectParameters {
	return model.ProjectParameters{
		CapacityMW:         p.CapacityMW,
		EquipmentCostPerMW: p.EquipmentCostPerMW,
		LaborCostPerMW:     p.LaborCostPerMW,
		PermittingCost:     p.PermittingCost,
		InterestRate:       p.InterestRate,
		TimelineYears:      p.TimelineYears,
		DelayMonths:        p.DelayMonths,
		InflationRate:      p.InflationRate,
		ConstructionMonths: p.ConstructionMonths,
	}
}

type projectFileWrapper struct {
	Project ProjectConfig `yaml:"project"`
}

func loadProjectFile(path string) (ProjectConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ProjectConfig{}, err
	}
	var w projectFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return ProjectConfig{}, err
	}
	return w.Project, nil
}

// MergeProject overlays non-zero fields from override onto base.
// This is used when loading a project file and then applying overrides from
// the enclosing config or from a request.
func MergeProject(base, override ProjectConfig) ProjectConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.Technology != "" {
		out.Technology = override.Technology
	}
	if override.CapacityMW != 0 {
		out.CapacityMW = override.CapacityMW
	}
	if override.EquipmentCostPerMW != 0 {
		out.EquipmentCostPerMW = override.EquipmentCostPerMW
	}
	if override.LaborCostPerMW != 0 {
		out.LaborCostPerMW = override.LaborCostPerMW
	}
	if override.PermittingCost != 0 {
		out.PermittingCost = override.PermittingCost
	}
	if override.InterestRate != 0 {
		out.InterestRate = override.InterestRate
	}
	if override.TimelineYears != 0 {
		out.TimelineYears = override.TimelineYears
	}
	// Note: a zero delay is valid and common, so an explicit 0 cannot override
	// a non-zero delay from the project file.
	if override.DelayMonths != 0 {
		out.DelayMonths = override.DelayMonths
	}
	if override.InflationRate != 0 {
		out.InflationRate = override.InflationRate
	}
	if override.ConstructionMonths != 0 {
		out.ConstructionMonths = override.ConstructionMonths
	}
	return out
}
