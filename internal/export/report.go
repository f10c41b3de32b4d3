package export

import (
	"fmt"
	"strings"

	"capex-forecast/internal/finance"
	"capex-forecast/internal/sensitivity"
	"capex-forecast/internal/store"
)

// SummaryReport renders the plain-text analysis report for download.
func SummaryReport(run *store.AnalysisRun) string {
	var b strings.Builder

	b.WriteString("RENEWABLE ENERGY CAPEX ANALYSIS REPORT\n")
	b.WriteString("=====================================\n\n")

	name := run.ProjectName
	if name == "" {
		name = "Unnamed Project"
	}
	fmt.Fprintf(&b, "Project: %s\n", name)
	fmt.Fprintf(&b, "Capacity: %.1f MW\n", run.Params.CapacityMW)
	fmt.Fprintf(&b, "Analysis Date: %s\n\n", run.CreatedAt.Format("2006-01-02"))

	fmt.Fprintf(&b, "BASE CASE RESULTS (%d-Year Timeline):\n", run.Params.TimelineYears)
	fmt.Fprintf(&b, "Total Cost: %s\n", finance.FormatCurrency(run.Breakdown.Total, 2))
	fmt.Fprintf(&b, "Cost per MW: %s\n", finance.FormatCurrency(run.Breakdown.Total/run.Params.CapacityMW, 0))
	fmt.Fprintf(&b, "  Equipment: %s\n", finance.FormatCurrency(run.Breakdown.Equipment, 2))
	fmt.Fprintf(&b, "  Labor:     %s\n", finance.FormatCurrency(run.Breakdown.Labor, 2))
	fmt.Fprintf(&b, "  Financing: %s\n", finance.FormatCurrency(run.Breakdown.Financing, 2))
	fmt.Fprintf(&b, "  Other:     %s\n", finance.FormatCurrency(run.Breakdown.Other, 2))

	if len(run.Grid) > 0 {
		b.WriteString("\nSCENARIO COMPARISON (Total Cost $M):\n")
		fmt.Fprintf(&b, "%-14s %-12s %12s\n", "Scenario", "Timeline", "Total ($M)")
		for _, r := range run.Grid {
			fmt.Fprintf(&b, "%-14s %-12d %12.2f\n", r.Scenario, r.TimelineYears, r.TotalCostM)
		}
	}

	if len(run.Sensitivity) > 0 {
		b.WriteString("\nKEY SENSITIVITY FACTORS ($M):\n")
		fmt.Fprintf(&b, "%-24s %10s %10s %10s %10s\n", "Parameter", "Low", "High", "Range", "Base")
		for _, param := range sensitivity.TrackedParameters() {
			res, ok := run.Sensitivity[param]
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "%-24s %10.2f %10.2f %10.2f %10.2f\n",
				sensitivity.ParameterLabel(param), res.Low, res.High, res.Range, res.Base)
		}
	}

	return b.String()
}
