package dao

type MediaURLRequest struct {
	// Raw media reference from an event
	Url string `form:"url" binding:"required"`
}

type MediaURLResponse struct {
	Url string `json:"url"`
}
