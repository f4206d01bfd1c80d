package models

// ChatRequest represents a message sent to the study assistant
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse represents the assistant's reply
type ChatResponse struct {
	Reply string `json:"reply"`
}
