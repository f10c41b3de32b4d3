// capex is the analyst CLI for the CapEx forecasting engine.
//
// Usage:
//   capex breakdown --config examples/config.yaml
//   capex grid --config examples/config.yaml --out results/grid.csv
//   capex sensitivity --config examples/config.yaml --range 20
//   capex tornado --config examples/config.yaml --range 20
//   capex montecarlo --config examples/config.yaml --simulations 5000 --seed 42
//   capex breakeven --config examples/config.yaml --parameter equipment_cost_per_mw --target 250000000
//   capex lcoe --config examples/config.yaml --capacity-factor 0.25 --lifetime 25 --discount-rate 6
//   capex metrics --cashflows="-1000,500,500,500" --discount-rate 10
package main

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"capex-forecast/internal/capex"
	"capex-forecast/internal/config"
	"capex-forecast/internal/export"
	"capex-forecast/internal/finance"
	"capex-forecast/internal/model"
	"capex-forecast/internal/scenario"
	"capex-forecast/internal/sensitivity"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "capex",
		Usage:   "Renewable energy CapEx forecasting and sensitivity analysis",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Value:   "examples/config.yaml",
				Usage:   "Path to YAML config",
				EnvVars: []string{"CAPEX_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "output",
				Value: "text",
				Usage: "Output format: text, json",
			},
		},
		Commands: []*cli.Command{
			breakdownCommand(),
			gridCommand(),
			sensitivityCommand(),
			tornadoCommand(),
			monteCarloCommand(),
			breakEvenCommand(),
			lcoeCommand(),
			metricsCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadParams(c *cli.Context) (*config.Config, model.ProjectParameters, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, model.ProjectParameters{}, err
	}
	return cfg, cfg.Project.ToParameters(), nil
}

func emit(c *cli.Context, v any, text func()) error {
	if c.String("output") == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text()
	return nil
}

func breakdownCommand() *cli.Command {
	return &cli.Command{
		Name:  "breakdown",
		Usage: "Compute the cost breakdown for the configured project",
		Action: func(c *cli.Context) error {
			_, params, err := loadParams(c)
			if err != nil {
				return err
			}
			b, err := capex.New().CostBreakdown(params)
			if err != nil {
				return err
			}
			return emit(c, b, func() {
				fmt.Printf("Equipment: %s\n", finance.FormatCurrency(b.Equipment, 2))
				fmt.Printf("Labor:     %s\n", finance.FormatCurrency(b.Labor, 2))
				fmt.Printf("Financing: %s\n", finance.FormatCurrency(b.Financing, 2))
				fmt.Printf("Other:     %s\n", finance.FormatCurrency(b.Other, 2))
				fmt.Printf("Total:     %s\n", finance.FormatCurrency(b.Total, 2))
			})
		},
	}
}

func gridCommand() *cli.Command {
	return &cli.Command{
		Name:  "grid",
		Usage: "Evaluate the scenario x timeline comparison grid",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Usage: "Optional CSV output path"},
		},
		Action: func(c *cli.Context) error {
			cfg, params, err := loadParams(c)
			if err != nil {
				return err
			}
			rows, err := scenario.EvaluateGrid(capex.New(), params, cfg.Analysis.Timelines, cfg.Scenarios)
			if err != nil {
				return err
			}
			if out := c.String("out"); out != "" {
				if err := export.WriteGridCSVFile(out, rows); err != nil {
					return err
				}
				fmt.Printf("Wrote %d rows to %s\n", len(rows), out)
				return nil
			}
			return emit(c, rows, func() {
				fmt.Printf("%-14s %-10s %12s %12s\n", "Scenario", "Timeline", "Total ($M)", "$K/MW")
				for _, r := range rows {
					fmt.Printf("%-14s %-10d %12.2f %12.2f\n", r.Scenario, r.TimelineYears, r.TotalCostM, r.CostPerMWK)
				}
			})
		},
	}
}

func sensitivityCommand() *cli.Command {
	return &cli.Command{
		Name:  "sensitivity",
		Usage: "Run the ±range sensitivity sweep over tracked parameters",
		Flags: []cli.Flag{
			&cli.Float64Flag{Name: "range", Value: 0, Usage: "Sensitivity range percent (default from config)"},
		},
		Action: func(c *cli.Context) error {
			cfg, params, err := loadParams(c)
			if err != nil {
				return err
			}
			rangePct := c.Float64("range")
			if rangePct == 0 {
				rangePct = cfg.Analysis.SensitivityRangePct
			}
			results, err := sensitivity.New(nil).Analyze(params, rangePct)
			if err != nil {
				return err
			}
			return emit(c, results, func() {
				fmt.Printf("Sensitivity ±%.0f%% ($M):\n", rangePct)
				fmt.Printf("%-24s %10s %10s %10s %10s\n", "Parameter", "Low", "High", "Range", "Base")
				for _, p := range sensitivity.TrackedParameters() {
					r := results[p]
					fmt.Printf("%-24s %10.2f %10.2f %10.2f %10.2f\n", sensitivity.ParameterLabel(p), r.Low, r.High, r.Range, r.Base)
				}
			})
		},
	}
}

func tornadoCommand() *cli.Command {
	return &cli.Command{
		Name:  "tornado",
		Usage: "Rank tracked parameters by cost swing",
		Flags: []cli.Flag{
			&cli.Float64Flag{Name: "range", Value: 0, Usage: "Sensitivity range percent (default from config)"},
		},
		Action: func(c *cli.Context) error {
			cfg, params, err := loadParams(c)
			if err != nil {
				return err
			}
			rangePct := c.Float64("range")
			if rangePct == 0 {
				rangePct = cfg.Analysis.SensitivityRangePct
			}
			entries, err := sensitivity.New(nil).TornadoData(params, rangePct)
			if err != nil {
				return err
			}
			return emit(c, entries, func() {
				fmt.Printf("%-24s %12s %12s %12s\n", "Parameter", "Low ($M)", "High ($M)", "Range ($M)")
				for _, e := range entries {
					fmt.Printf("%-24s %12.2f %12.2f %12.2f\n", e.Label, e.LowImpact, e.HighImpact, e.Range)
				}
			})
		},
	}
}

func monteCarloCommand() *cli.Command {
	return &cli.Command{
		Name:  "montecarlo",
		Usage: "Monte Carlo risk simulation over tracked parameters",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "simulations", Value: 1000, Usage: "Number of trials"},
			&cli.Int64Flag{Name: "seed", Value: 0, Usage: "Random seed (0 = random)"},
			&cli.Float64Flag{Name: "spread", Value: 10, Usage: "Std/half-width as percent of each base value"},
		},
		Action: func(c *cli.Context) error {
			_, params, err := loadParams(c)
			if err != nil {
				return err
			}

			// Default distributions: a normal around each tracked parameter's
			// base value with the requested relative spread.
			spread := c.Float64("spread") / 100
			dists := make(map[string]model.Distribution)
			for _, p := range sensitivity.TrackedParameters() {
				base, err := params.Value(p)
				if err != nil {
					return err
				}
				dists[p] = model.Distribution{
					Type: model.DistNormal,
					Mean: base,
					Std:  absF(base) * spread,
				}
			}

			seed := c.Int64("seed")
			if seed == 0 {
				seed = rand.Int63()
			}
			rng := rand.New(rand.NewSource(seed))

			summary, err := sensitivity.New(nil).MonteCarlo(params, c.Int("simulations"), dists, rng)
			if err != nil {
				return err
			}
			summary.Results = nil
			return emit(c, summary, func() {
				fmt.Printf("Monte Carlo (%d trials, seed %d), total cost $M:\n", c.Int("simulations"), seed)
				fmt.Printf("  mean %.2f  std %.2f  min %.2f  max %.2f\n", summary.Mean, summary.Std, summary.Min, summary.Max)
				fmt.Printf("  p5 %.2f  p25 %.2f  p50 %.2f  p75 %.2f  p95 %.2f\n",
					summary.Percentile5, summary.Percentile25, summary.Percentile50, summary.Percentile75, summary.Percentile95)
			})
		},
	}
}

func breakEvenCommand() *cli.Command {
	return &cli.Command{
		Name:  "breakeven",
		Usage: "Find the parameter value that hits a target total cost",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "parameter", Required: true, Usage: "Parameter to adjust"},
			&cli.Float64Flag{Name: "target", Required: true, Usage: "Target total cost in dollars"},
		},
		Action: func(c *cli.Context) error {
			_, params, err := loadParams(c)
			if err != nil {
				return err
			}
			result, err := sensitivity.New(nil).BreakEven(params, c.Float64("target"), c.String("parameter"))
			if err != nil {
				return err
			}
			return emit(c, result, func() {
				fmt.Printf("%s = %.2f (multiplier %.4f, %d iterations)\n",
					result.Parameter, result.Value, result.Multiplier, result.Iterations)
				if !result.Converged {
					fmt.Println("warning: did not converge within tolerance; value is approximate")
				}
			})
		},
	}
}

func lcoeCommand() *cli.Command {
	return &cli.Command{
		Name:  "lcoe",
		Usage: "Levelized cost of energy for the configured project",
		Flags: []cli.Flag{
			&cli.Float64Flag{Name: "capacity-factor", Value: 0.25, Usage: "Capacity factor (0-1)"},
			&cli.IntFlag{Name: "lifetime", Value: 25, Usage: "Operating lifetime in years"},
			&cli.Float64Flag{Name: "discount-rate", Value: 6, Usage: "Discount rate percent"},
		},
		Action: func(c *cli.Context) error {
			_, params, err := loadParams(c)
			if err != nil {
				return err
			}
			calc := capex.New()
			total, err := calc.TotalCapex(params)
			if err != nil {
				return err
			}
			lcoe := calc.LevelizedCost(total, params.CapacityMW, c.Float64("capacity-factor"), c.Int("lifetime"), c.Float64("discount-rate"))
			out := map[string]float64{"total_capex": total, "lcoe_per_mwh": lcoe}
			return emit(c, out, func() {
				fmt.Printf("Total CapEx: %s\n", finance.FormatCurrency(total, 2))
				fmt.Printf("LCOE: $%.2f/MWh (cf %.2f, %d years, %.1f%% discount)\n",
					lcoe, c.Float64("capacity-factor"), c.Int("lifetime"), c.Float64("discount-rate"))
			})
		},
	}
}

func metricsCommand() *cli.Command {
	return &cli.Command{
		Name:  "metrics",
		Usage: "NPV, IRR and payback over a comma-separated cash flow series",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "cashflows", Required: true, Usage: `Comma-separated annual flows, e.g. "-1000,500,500,500"`},
			&cli.Float64Flag{Name: "discount-rate", Value: 10, Usage: "Discount rate percent for NPV"},
			&cli.Float64Flag{Name: "guess", Value: 0.1, Usage: "Initial IRR guess (decimal)"},
		},
		Action: func(c *cli.Context) error {
			flows, err := parseCashFlows(c.String("cashflows"))
			if err != nil {
				return err
			}
			npv := finance.NPV(flows, c.Float64("discount-rate"))
			irr := finance.IRR(flows, c.Float64("guess"))
			payback := finance.PaybackPeriod(flows)

			out := map[string]any{"npv": npv, "irr": irr}
			if !math.IsInf(payback, 1) {
				out["payback_years"] = payback
			}
			return emit(c, out, func() {
				fmt.Printf("NPV @ %.1f%%: %s\n", c.Float64("discount-rate"), finance.FormatCurrency(npv, 2))
				fmt.Printf("IRR: %.4f (converged=%v, %d iterations)\n", irr.Rate, irr.Converged, irr.Iterations)
				if math.IsInf(payback, 1) {
					fmt.Println("Payback: never recovers")
				} else {
					fmt.Printf("Payback: %.2f years\n", payback)
				}
			})
		},
	}
}

func parseCashFlows(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	flows := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad cash flow %q: %w", p, err)
		}
		flows = append(flows, v)
	}
	return flows, nil
}

func absF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
