package store

import (
	"time"

	"capex-forecast/internal/model"
	"capex-forecast/internal/scenario"
)

// AnalysisRun is a stored analysis result, kept so exports and follow-up
// requests can re-serve a run without recomputing it. Nothing here is a
// domain entity; a run is a snapshot keyed by a server-assigned ID.
type AnalysisRun struct {
	ID          string                             `json:"id"`
	CreatedAt   time.Time                          `json:"created_at"`
	ProjectName string                             `json:"project_name,omitempty"`
	Params      model.ProjectParameters            `json:"params"`
	Breakdown   model.CostBreakdown                `json:"breakdown"`
	Grid        []scenario.GridRow                 `json:"grid,omitempty"`
	Sensitivity map[string]model.SensitivityResult `json:"sensitivity,omitempty"`
	Tornado     []model.TornadoEntry               `json:"tornado,omitempty"`
}

// RunStore saves and retrieves analysis runs. Implementations: in-memory
// (default) and Redis (shared across instances).
type RunStore interface {
	Save(run *AnalysisRun) error
	Get(id string) (*AnalysisRun, bool)
}
