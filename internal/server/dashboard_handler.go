package server

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"ethograph/internal/dao"
	"ethograph/internal/model"
	"ethograph/internal/stats"
)

// @Summary List behavior events
// @Description Fetch, normalize and return one animal's behavior events in a date window
// @Tags dashboard
// @Accept json
// @Produce json
// @Param animal_id path string true "Animal id"
// @Param start_date query string true "First day of the window, YYYY-MM-DD"
// @Param end_date query string true "Last day of the window, YYYY-MM-DD"
// @Param refresh query bool false "Bypass the cache"
// @Success 200 {object} dao.EventsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/animals/{animal_id}/events [get]
func (s *Server) handleAnimalEvents(c *gin.Context) {
	win, cached, ok := s.windowFromRequest(c)
	if !ok {
		return
	}

	s.media.ResolveEvents(c.Request.Context(), win.Events)
	c.JSON(http.StatusOK, dao.EventsResponse{
		Window: dao.ToWindowMeta(win, cached),
		Total:  len(win.Events),
		Items:  win.Events,
	})
}

// @Summary Get the dashboard summary
// @Description Aggregate one animal's window into per-behavior stats, the heatmap and a color legend
// @Tags dashboard
// @Accept json
// @Produce json
// @Param animal_id path string true "Animal id"
// @Param start_date query string true "First day of the window, YYYY-MM-DD"
// @Param end_date query string true "Last day of the window, YYYY-MM-DD"
// @Param refresh query bool false "Bypass the cache"
// @Success 200 {object} dao.SummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/animals/{animal_id}/summary [get]
func (s *Server) handleAnimalSummary(c *gin.Context) {
	win, cached, ok := s.windowFromRequest(c)
	if !ok {
		return
	}

	summary := s.agg.Summarize(win.Events)
	c.JSON(http.StatusOK, dao.SummaryResponse{
		Window:  dao.ToWindowMeta(win, cached),
		Summary: *summary,
		Legend:  legendFor(summary),
	})
}

// @Summary Get the hourly heatmap
// @Description Return the behavior x hour-of-day activity grid for one animal's window
// @Tags dashboard
// @Accept json
// @Produce json
// @Param animal_id path string true "Animal id"
// @Param start_date query string true "First day of the window, YYYY-MM-DD"
// @Param end_date query string true "Last day of the window, YYYY-MM-DD"
// @Param refresh query bool false "Bypass the cache"
// @Success 200 {object} dao.HeatmapResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/animals/{animal_id}/heatmap [get]
func (s *Server) handleAnimalHeatmap(c *gin.Context) {
	win, cached, ok := s.windowFromRequest(c)
	if !ok {
		return
	}

	summary := s.agg.Summarize(win.Events)
	c.JSON(http.StatusOK, dao.HeatmapResponse{
		Window: dao.ToWindowMeta(win, cached),
		Cells:  summary.Heatmap,
	})
}

// @Summary Export the window report
// @Description Return the full report bundle: window meta, summary, legend and events
// @Tags dashboard
// @Accept json
// @Produce json
// @Param animal_id path string true "Animal id"
// @Param start_date query string true "First day of the window, YYYY-MM-DD"
// @Param end_date query string true "Last day of the window, YYYY-MM-DD"
// @Param refresh query bool false "Bypass the cache"
// @Success 200 {object} dao.ReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/animals/{animal_id}/report [get]
func (s *Server) handleAnimalReport(c *gin.Context) {
	win, cached, ok := s.windowFromRequest(c)
	if !ok {
		return
	}

	summary := s.agg.Summarize(win.Events)
	s.media.ResolveEvents(c.Request.Context(), win.Events)
	c.JSON(http.StatusOK, dao.ReportResponse{
		Window:  dao.ToWindowMeta(win, cached),
		Summary: *summary,
		Legend:  legendFor(summary),
		Events:  win.Events,
	})
}

// @Summary Export the window report as CSV
// @Description Return one CSV row per normalized event
// @Tags dashboard
// @Produce text/csv
// @Param animal_id path string true "Animal id"
// @Param start_date query string true "First day of the window, YYYY-MM-DD"
// @Param end_date query string true "Last day of the window, YYYY-MM-DD"
// @Param refresh query bool false "Bypass the cache"
// @Success 200 {string} string "CSV body"
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/animals/{animal_id}/report.csv [get]
func (s *Server) handleAnimalReportCSV(c *gin.Context) {
	win, _, ok := s.windowFromRequest(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition",
		fmt.Sprintf("attachment; filename=%s_%s_%s.csv", win.AnimalId, win.StartDate, win.EndDate))
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	w.Write([]string{
		"id", "behavior", "raw_code", "start", "end",
		"duration_seconds", "camera", "confidence", "video_url",
	})
	for _, ev := range win.Events {
		w.Write([]string{
			ev.Id,
			ev.BehaviorLabel,
			ev.RawBehaviorCode,
			ev.StartInstant.Format(time.RFC3339),
			ev.EndInstant.Format(time.RFC3339),
			strconv.FormatInt(ev.DurationSeconds, 10),
			ev.CameraSource,
			strconv.FormatFloat(ev.ConfidenceScore, 'f', -1, 64),
			ev.VideoUrl,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		s.logger.WithError(err).Error("write report csv failed")
	}
}

func legendFor(summary *model.DashboardSummary) map[string]string {
	labels := make([]string, 0, len(summary.Behaviors))
	for _, b := range summary.Behaviors {
		labels = append(labels, b.BehaviorLabel)
	}
	return stats.NewColorAssigner().Legend(labels)
}
