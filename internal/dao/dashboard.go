package dao

import (
	"time"

	"ethograph/internal/model"
	"ethograph/internal/normalize"
	"ethograph/internal/pipeline"
)

// DateRangeRequest is the query every windowed dashboard endpoint takes.
type DateRangeRequest struct {
	// Inclusive first day of the window, YYYY-MM-DD
	StartDate string `form:"start_date" binding:"required,ymd"`
	// Inclusive last day of the window, YYYY-MM-DD
	EndDate string `form:"end_date" binding:"required,ymd"`
	// Bypass the cache and refetch from the pipeline
	Refresh bool `form:"refresh"`
}

// WindowMeta tells the dashboard where a response's data came from and
// how the normalization went.
type WindowMeta struct {
	AnimalId  string           `json:"animalId"`
	StartDate string           `json:"startDate"`
	EndDate   string           `json:"endDate"`
	FetchedAt string           `json:"fetchedAt"`
	Cached    bool             `json:"cached"`
	Shape     string           `json:"shape"`
	Report    normalize.Report `json:"report"`
}

type EventsResponse struct {
	Window WindowMeta `json:"window"`
	Total  int        `json:"total"`
	// Normalized events in pipeline order
	Items []*model.Event `json:"items"`
}

type SummaryResponse struct {
	Window  WindowMeta             `json:"window"`
	Summary model.DashboardSummary `json:"summary"`
	// Stable hex color per behavior label
	Legend map[string]string `json:"legend"`
}

type HeatmapResponse struct {
	Window WindowMeta          `json:"window"`
	Cells  []model.HeatmapCell `json:"cells"`
}

// ReportResponse is the full export bundle behind the report endpoints.
type ReportResponse struct {
	Window  WindowMeta             `json:"window"`
	Summary model.DashboardSummary `json:"summary"`
	Legend  map[string]string      `json:"legend"`
	Events  []*model.Event         `json:"events"`
}

func ToWindowMeta(w *pipeline.Window, cached bool) WindowMeta {
	return WindowMeta{
		AnimalId:  w.AnimalId,
		StartDate: w.StartDate,
		EndDate:   w.EndDate,
		FetchedAt: w.FetchedAt.Format(time.RFC3339),
		Cached:    cached,
		Shape:     string(w.Envelope.Shape),
		Report:    w.Report,
	}
}
