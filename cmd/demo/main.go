package main

import (
	"flag"
	"fmt"
	"time"

	"capex-forecast/internal/capex"
	"capex-forecast/internal/config"
	"capex-forecast/internal/export"
	"capex-forecast/internal/model"
	"capex-forecast/internal/scenario"
	"capex-forecast/internal/sensitivity"
	"capex-forecast/internal/store"
)

// Demo:
// - Build a 100 MW solar project parameter set (or load one from --config)
// - Evaluate the scenario x timeline grid
// - Run a +/-20% sensitivity sweep and print the tornado ranking
// - Render the plain-text summary report to show how the pieces fit together
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	rangePct := flag.Float64("range", 20, "Sensitivity range percent")
	outCSV := flag.String("out", "", "Optional path to write the grid CSV (e.g. results/grid.csv)")
	flag.Parse()

	// Defaults mirror the dashboard's stock solar project.
	params := model.ProjectParameters{
		CapacityMW:         100,
		EquipmentCostPerMW: 1_200_000,
		LaborCostPerMW:     150_000,
		PermittingCost:     500_000,
		InterestRate:       5.5,
		TimelineYears:      5,
		DelayMonths:        6,
		InflationRate:      2.5,
		ConstructionMonths: 18,
	}
	projectName := "Solar Farm Project Alpha"
	timelines := scenario.DefaultTimelines()
	presets := scenario.Defaults()

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		params = cfg.Project.ToParameters()
		if cfg.Project.Name != "" {
			projectName = cfg.Project.Name
		}
		timelines = cfg.Analysis.Timelines
		presets = cfg.Scenarios
	}

	calc := capex.New()
	analyzer := sensitivity.New(calc)

	breakdown, err := calc.CostBreakdown(params)
	if err != nil {
		panic(err)
	}

	grid, err := scenario.EvaluateGrid(calc, params, timelines, presets)
	if err != nil {
		panic(err)
	}

	sens, err := analyzer.Analyze(params, *rangePct)
	if err != nil {
		panic(err)
	}

	tornado, err := analyzer.TornadoData(params, *rangePct)
	if err != nil {
		panic(err)
	}

	run := &store.AnalysisRun{
		ID:          "demo",
		CreatedAt:   time.Now(),
		ProjectName: projectName,
		Params:      params,
		Breakdown:   breakdown,
		Grid:        grid,
		Sensitivity: sens,
		Tornado:     tornado,
	}

	fmt.Println(export.SummaryReport(run))

	fmt.Printf("Tornado ranking (±%.0f%%):\n", *rangePct)
	for i, e := range tornado {
		fmt.Printf("  %d. %-20s range %.2f $M\n", i+1, e.Label, e.Range)
	}

	if *outCSV != "" {
		if err := export.WriteGridCSVFile(*outCSV, grid); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote grid CSV to %s\n", *outCSV)
	}
}
