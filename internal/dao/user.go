package dao

type LoginRequest struct {
	// Demo account name
	Username string `json:"username" binding:"required"`
	// Demo account password
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	// Bearer token for subsequent requests
	Token    string `json:"token"`
	Username string `json:"username"`
}
