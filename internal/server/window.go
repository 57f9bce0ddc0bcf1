package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"ethograph/internal/dao"
	"ethograph/internal/pipeline"
	"ethograph/pkg/str"
)

// getWindow is the cache-aside read behind every windowed endpoint.
// The pipeline is only consulted on a miss or an explicit refresh, so
// repeated dashboard paints stay local.
func (s *Server) getWindow(ctx context.Context, animalId, startDate, endDate string, refresh bool) (*pipeline.Window, bool, error) {
	key := windowCacheKey(animalId, startDate, endDate)
	if !refresh {
		var win pipeline.Window
		if s.cache.GetJSON(key, &win) {
			s.metrics.CacheHit()
			return &win, true, nil
		}
		s.metrics.CacheMiss()
	}

	win, err := s.pipeline.FetchWindow(ctx, animalId, startDate, endDate)
	if err != nil {
		return nil, false, err
	}
	if err := s.cache.SetJSON(key, win); err != nil {
		s.logger.WithError(err).Warn("cache window failed")
	}
	return win, false, nil
}

func windowCacheKey(animalId, startDate, endDate string) string {
	return "window:" + str.Md5Str(animalId+"|"+startDate+"|"+endDate)
}

// windowFromRequest is the shared prelude of the windowed handlers:
// bind the date range, load the window, write the error response on
// failure. ok is false when a response has already been written.
func (s *Server) windowFromRequest(c *gin.Context) (win *pipeline.Window, cached bool, ok bool) {
	var req dao.DateRangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		s.writeError(c, http.StatusBadRequest, err)
		return nil, false, false
	}
	if req.StartDate > req.EndDate {
		s.writeError(c, http.StatusBadRequest, fmt.Errorf("start_date after end_date"))
		return nil, false, false
	}

	animalId := c.Param("animal_id")
	win, cached, err := s.getWindow(c.Request.Context(), animalId, req.StartDate, req.EndDate, req.Refresh)
	if err != nil {
		s.writeError(c, http.StatusBadGateway, err)
		return nil, false, false
	}
	return win, cached, true
}
