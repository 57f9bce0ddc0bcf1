package dao

import "ethograph/internal/model"

type LiveEventsRequest struct {
	// Newest events to return, 0 for everything buffered
	Limit int `form:"limit"`
}

type LiveEventsResponse struct {
	Total int `json:"total"`
	// Buffered live events, newest first
	Items []*model.Event `json:"items"`
}
