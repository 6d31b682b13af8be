package handlers

import "github.com/Shyamantha-C/exam-tool-backend-clean/internal/models"

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// Type alias so swag can resolve models in annotations.
type Question = models.Question
