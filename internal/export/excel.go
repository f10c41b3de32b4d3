package export

import (
	"fmt"

	"capex-forecast/internal/sensitivity"
	"capex-forecast/internal/store"

	"github.com/xuri/excelize/v2"
)

// BuildWorkbook assembles the detailed-analysis workbook: a Scenario Analysis
// sheet, a Sensitivity Analysis sheet (when the run carries one) and a Project
// Summary sheet. The caller owns closing the returned file.
func BuildWorkbook(run *store.AnalysisRun) (*excelize.File, error) {
	f := excelize.NewFile()

	scenarioSheet := "Scenario Analysis"
	index, err := f.NewSheet(scenarioSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1") // Delete default sheet

	gridHeader := []interface{}{
		"Timeline (Years)", "Scenario", "Total Cost ($M)", "Cost per MW ($K)",
		"Equipment Cost ($M)", "Labor Cost ($M)", "Financing Cost ($M)", "Other Costs ($M)",
	}
	if err := f.SetSheetRow(scenarioSheet, "A1", &gridHeader); err != nil {
		return nil, err
	}
	for i, r := range run.Grid {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			r.TimelineYears, r.Scenario, r.TotalCostM, r.CostPerMWK,
			r.EquipmentM, r.LaborM, r.FinancingM, r.OtherM,
		}
		if err := f.SetSheetRow(scenarioSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	if len(run.Sensitivity) > 0 {
		sensSheet := "Sensitivity Analysis"
		if _, err := f.NewSheet(sensSheet); err != nil {
			return nil, err
		}
		sensHeader := []interface{}{"Parameter", "Low Impact ($M)", "High Impact ($M)", "Range ($M)", "Base Cost ($M)"}
		if err := f.SetSheetRow(sensSheet, "A1", &sensHeader); err != nil {
			return nil, err
		}
		rowIdx := 2
		for _, param := range sensitivity.TrackedParameters() {
			res, ok := run.Sensitivity[param]
			if !ok {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(1, rowIdx)
			row := []interface{}{param, res.Low, res.High, res.Range, res.Base}
			if err := f.SetSheetRow(sensSheet, cell, &row); err != nil {
				return nil, err
			}
			rowIdx++
		}
	}

	summarySheet := "Project Summary"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, err
	}
	summary := [][]interface{}{
		{"Project Name", run.ProjectName},
		{"Capacity (MW)", run.Params.CapacityMW},
		{"Equipment Cost ($/MW)", run.Params.EquipmentCostPerMW},
		{"Labor Cost ($/MW)", run.Params.LaborCostPerMW},
		{"Permitting Cost ($)", run.Params.PermittingCost},
		{"Interest Rate (%)", run.Params.InterestRate},
		{"Inflation Rate (%)", run.Params.InflationRate},
		{"Timeline (Years)", run.Params.TimelineYears},
		{"Permitting Delay (Months)", run.Params.DelayMonths},
		{"Construction (Months)", run.Params.ConstructionMonths},
		{"Total CapEx ($)", run.Breakdown.Total},
		{"Analysis Date", run.CreatedAt.Format("2006-01-02 15:04:05")},
	}
	for i, pair := range summary {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(summarySheet, cell, &pair); err != nil {
			return nil, err
		}
	}

	return f, nil
}
