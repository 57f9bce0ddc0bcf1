package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ethograph/internal/dao"
)

// @Summary Resolve a media reference
// @Description Turn a stored media reference into a URL the player can fetch, presigned when an object store is configured
// @Tags media
// @Accept json
// @Produce json
// @Param url query string true "Raw media reference"
// @Success 200 {object} dao.MediaURLResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/media/url [get]
func (s *Server) handleMediaURL(c *gin.Context) {
	var req dao.MediaURLRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		s.writeError(c, http.StatusBadRequest, err)
		return
	}

	resolved, err := s.media.Resolve(c.Request.Context(), req.Url)
	if err != nil {
		s.writeError(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusOK, dao.MediaURLResponse{Url: resolved})
}
