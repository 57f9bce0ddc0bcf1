package dao

type ChatRequest struct {
	AnimalId  string `json:"animalId" binding:"required"`
	StartDate string `json:"startDate" binding:"required,ymd"`
	EndDate   string `json:"endDate" binding:"required,ymd"`
	// Free-form question, available to the reply template
	Question string `json:"question"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}
