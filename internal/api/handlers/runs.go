package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"capex-forecast/internal/api/models"
	"capex-forecast/internal/export"
	"capex-forecast/internal/store"

	"github.com/gin-gonic/gin"
)

// RunHandler re-serves stored analysis runs and their file exports.
type RunHandler struct {
	runs store.RunStore
}

func NewRunHandler(runs store.RunStore) *RunHandler {
	return &RunHandler{runs: runs}
}

// GetRun handles GET /api/v1/runs/:id
func (h *RunHandler) GetRun(c *gin.Context) {
	run, ok := h.runs.Get(c.Param("id"))
	if !ok {
		respondError(c, http.StatusNotFound, "RUN_NOT_FOUND", "run not found or expired")
		return
	}
	c.JSON(http.StatusOK, models.AnalyzeResponse{
		ID:          run.ID,
		CreatedAt:   run.CreatedAt,
		ProjectName: run.ProjectName,
		Breakdown:   run.Breakdown,
		Grid:        run.Grid,
		Sensitivity: run.Sensitivity,
		Tornado:     run.Tornado,
	})
}

// ExportRun handles GET /api/v1/runs/:id/export?format=csv|xlsx|txt
func (h *RunHandler) ExportRun(c *gin.Context) {
	run, ok := h.runs.Get(c.Param("id"))
	if !ok {
		respondError(c, http.StatusNotFound, "RUN_NOT_FOUND", "run not found or expired")
		return
	}

	name := run.ProjectName
	if name == "" {
		name = "capex_analysis"
	}
	name = strings.ReplaceAll(name, " ", "_")

	format := c.DefaultQuery("format", "csv")
	switch format {
	case "csv":
		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", fmt.Sprintf("attachment;filename=%s_capex_analysis.csv", name))
		if err := export.WriteGridCSV(c.Writer, run.Grid); err != nil {
			respondError(c, http.StatusInternalServerError, "EXPORT_ERROR", err.Error())
		}

	case "xlsx":
		f, err := export.BuildWorkbook(run)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "EXPORT_ERROR", err.Error())
			return
		}
		defer f.Close()
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment;filename=%s_detailed_analysis.xlsx", name))
		if err := f.Write(c.Writer); err != nil {
			respondError(c, http.StatusInternalServerError, "EXPORT_ERROR", err.Error())
		}

	case "txt":
		c.Header("Content-Type", "text/plain")
		c.Header("Content-Disposition", fmt.Sprintf("attachment;filename=%s_summary_report.txt", name))
		c.String(http.StatusOK, export.SummaryReport(run))

	default:
		respondError(c, http.StatusBadRequest, "INVALID_FORMAT", fmt.Sprintf("unknown export format %q", format))
	}
}
