package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"ethograph/internal/dao"
	"ethograph/pkg/str"
)

// @Summary Ask about a window
// @Description Answer a question about one animal's window with a templated summary reply
// @Tags dashboard
// @Accept json
// @Produce json
// @Param request body dao.ChatRequest true "Question and window"
// @Success 200 {object} dao.ChatResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/chat [post]
func (s *Server) handleChat(c *gin.Context) {
	var req dao.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, http.StatusBadRequest, err)
		return
	}
	if req.StartDate > req.EndDate {
		s.writeError(c, http.StatusBadRequest, fmt.Errorf("startDate after endDate"))
		return
	}

	win, _, err := s.getWindow(c.Request.Context(), req.AnimalId, req.StartDate, req.EndDate, false)
	if err != nil {
		s.writeError(c, http.StatusBadGateway, err)
		return
	}

	summary := s.agg.Summarize(win.Events)
	reply, err := str.ExecuteTemplate(s.conf.Chat.ReplyTemplate, map[string]any{
		"AnimalId":     req.AnimalId,
		"StartDate":    req.StartDate,
		"EndDate":      req.EndDate,
		"Question":     req.Question,
		"TotalEvents":  summary.TotalEventCount,
		"TotalSeconds": summary.TotalMonitoredSeconds,
		"MostFrequent": summary.MostFrequentBehaviorLabel,
	})
	if err != nil {
		s.writeError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, dao.ChatResponse{Reply: reply})
}
