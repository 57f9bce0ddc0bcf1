package server

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"

	"ethograph/internal/dao"
)

const trendMeasurement = "ethograph_event"

// @Summary Get live activity trends
// @Description Aggregate the stored live events of one animal into time-bucketed counts, overall and per behavior
// @Tags dashboard
// @Accept json
// @Produce json
// @Param animal_id path string true "Animal id"
// @Param start query string false "Range start (RFC3339), default 24 hours ago"
// @Param end query string false "Range end (RFC3339), default now"
// @Param window query string false "Aggregation window like 5m or 1h" default(5m)
// @Success 200 {object} dao.TrendsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/animals/{animal_id}/trends [get]
func (s *Server) handleAnimalTrends(c *gin.Context) {
	if s.influxQuery == nil || !s.conf.InfluxDB.Enabled {
		s.writeError(c, http.StatusBadRequest, fmt.Errorf("influxdb not enabled"))
		return
	}

	animalId := c.Param("animal_id")

	var req dao.TrendsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		s.writeError(c, http.StatusBadRequest, err)
		return
	}

	end := time.Now().UTC()
	if req.End != "" {
		te, err := time.Parse(time.RFC3339, req.End)
		if err != nil {
			s.writeError(c, http.StatusBadRequest, fmt.Errorf("invalid end: %w", err))
			return
		}
		end = te.UTC()
	}

	start := end.Add(-24 * time.Hour)
	if req.Start != "" {
		ts, err := time.Parse(time.RFC3339, req.Start)
		if err != nil {
			s.writeError(c, http.StatusBadRequest, fmt.Errorf("invalid start: %w", err))
			return
		}
		start = ts.UTC()
	}
	if !start.Before(end) {
		s.writeError(c, http.StatusBadRequest, fmt.Errorf("start must be before end"))
		return
	}

	window := req.Window
	if window == "" {
		window = "5m"
	}
	if !isValidWindow(window) {
		s.writeError(c, http.StatusBadRequest, fmt.Errorf("invalid window: %s", window))
		return
	}

	events, err := s.queryEventsTrend(c.Request.Context(), animalId, start, end, window)
	if err != nil {
		s.writeError(c, http.StatusInternalServerError, err)
		return
	}

	behaviors, err := s.queryBehaviorsTrend(c.Request.Context(), animalId, start, end, window)
	if err != nil {
		s.writeError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, dao.TrendsResponse{
		Events:    events,
		Behaviors: behaviors,
	})
}

func isValidWindow(w string) bool {
	re := regexp.MustCompile(`^[0-9]+(ms|s|m|h|d|w)$`)
	return re.MatchString(w)
}

func (s *Server) queryEventsTrend(ctx context.Context, animalId string, start, end time.Time, window string) ([]dao.TimeCount, error) {
	flux := fmt.Sprintf(
		`from(bucket: "%s")
      |> range(start: time(v: "%s"), stop: time(v: "%s"))
      |> filter(fn: (r) => r["_measurement"] == "%s")
      |> filter(fn: (r) => r["animal"] == "%s")
      |> filter(fn: (r) => r["_field"] == "duration")
      |> aggregateWindow(every: %s, fn: count, createEmpty: false)`,
		s.conf.InfluxDB.Bucket,
		start.Format(time.RFC3339),
		end.Format(time.RFC3339),
		trendMeasurement,
		animalId,
		window,
	)

	res, err := s.influxQuery.Query(ctx, flux)
	if err != nil {
		return nil, fmt.Errorf("query events trend: %w", err)
	}
	defer res.Close()

	items := make([]dao.TimeCount, 0, 32)
	for res.Next() {
		rec := res.Record()
		t := rec.Time().UTC().Format(time.RFC3339)
		count := toInt64(rec.Value())
		items = append(items, dao.TimeCount{Time: t, Count: count})
	}
	if res.Err() != nil {
		return nil, fmt.Errorf("query events trend result error: %v", res.Err())
	}
	return items, nil
}

func (s *Server) queryBehaviorsTrend(ctx context.Context, animalId string, start, end time.Time, window string) ([]dao.BehaviorTimeCount, error) {
	flux := fmt.Sprintf(
		`from(bucket: "%s")
      |> range(start: time(v: "%s"), stop: time(v: "%s"))
      |> filter(fn: (r) => r["_measurement"] == "%s")
      |> filter(fn: (r) => r["animal"] == "%s")
      |> filter(fn: (r) => r["_field"] == "duration")
      |> aggregateWindow(every: %s, fn: count, createEmpty: false)
      |> group(columns: ["behavior"])`,
		s.conf.InfluxDB.Bucket,
		start.Format(time.RFC3339),
		end.Format(time.RFC3339),
		trendMeasurement,
		animalId,
		window,
	)

	res, err := s.influxQuery.Query(ctx, flux)
	if err != nil {
		return nil, fmt.Errorf("query behaviors trend: %w", err)
	}
	defer res.Close()

	items := make([]dao.BehaviorTimeCount, 0, 64)
	for res.Next() {
		rec := res.Record()
		behavior, _ := rec.ValueByKey("behavior").(string)
		t := rec.Time().UTC().Format(time.RFC3339)
		count := toInt64(rec.Value())
		items = append(items, dao.BehaviorTimeCount{Behavior: behavior, Time: t, Count: count})
	}
	if res.Err() != nil {
		return nil, fmt.Errorf("query behaviors trend result error: %v", res.Err())
	}
	return items, nil
}

func toInt64(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case uint64:
		return int64(t)
	case int32:
		return int64(t)
	case uint32:
		return int64(t)
	case float64:
		return int64(t)
	case float32:
		return int64(t)
	case int:
		return int64(t)
	case uint:
		return int64(t)
	default:
		return 0
	}
}
