package export

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"capex-forecast/internal/scenario"
)

// WriteGridCSV streams the scenario comparison table as CSV.
// This is the primary flat-file artifact for "what did the grid say".
func WriteGridCSV(w io.Writer, rows []scenario.GridRow) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{
		"timeline_years",
		"scenario",
		"total_cost_m",
		"cost_per_mw_k",
		"equipment_cost_m",
		"labor_cost_m",
		"financing_cost_m",
		"other_costs_m",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		row := []string{
			strconv.Itoa(r.TimelineYears),
			r.Scenario,
			fmtFloat(r.TotalCostM),
			fmtFloat(r.CostPerMWK),
			fmtFloat(r.EquipmentM),
			fmtFloat(r.LaborM),
			fmtFloat(r.FinancingM),
			fmtFloat(r.OtherM),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return cw.Error()
}

// WriteGridCSVFile writes the grid CSV to a path, creating the file.
func WriteGridCSVFile(path string, rows []scenario.GridRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteGridCSV(f, rows)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
