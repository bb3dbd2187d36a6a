package dto

// AboutResponse: the about page content
type AboutResponse struct {
	Content string `json:"content"`
}

// UpdateAboutRequest: payload for replacing the about page content
type UpdateAboutRequest struct {
	Content string `json:"content" binding:"required"`
}
