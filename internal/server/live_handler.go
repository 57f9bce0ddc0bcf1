package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ethograph/internal/dao"
	"ethograph/internal/model"
)

// @Summary List live events
// @Description Return the most recent events from the live push stream, newest first
// @Tags live
// @Accept json
// @Produce json
// @Param limit query int false "Newest events to return, 0 for everything buffered"
// @Success 200 {object} dao.LiveEventsResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/live/events [get]
func (s *Server) handleLiveEvents(c *gin.Context) {
	var req dao.LiveEventsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		s.writeError(c, http.StatusBadRequest, err)
		return
	}

	items := []*model.Event{}
	if s.feed != nil {
		items = s.feed.Latest(req.Limit)
	}
	s.media.ResolveEvents(c.Request.Context(), items)
	c.JSON(http.StatusOK, dao.LiveEventsResponse{
		Total: len(items),
		Items: items,
	})
}
