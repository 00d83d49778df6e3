package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

var (
	// Success response
	Success = Status{Code: http.StatusOK, Message: []string{"Success"}}
	// BadRequest response
	BadRequest = Status{Code: http.StatusBadRequest, Message: []string{"Sorry, Not responding because of incorrect syntax"}}
	// Unauthorized response
	Unauthorized = Status{Code: http.StatusUnauthorized, Message: []string{"Sorry, We are not able to process your request. Please try again"}}
	// Forbidden response
	Forbidden = Status{Code: http.StatusForbidden, Message: []string{"Sorry, Permission denied"}}
	// NotFound response
	NotFound = Status{Code: http.StatusNotFound, Message: []string{"Sorry, Data not found"}}
	// InternalServerError response
	InternalServerError = Status{Code: http.StatusInternalServerError, Message: []string{"Internal Server Error"}}
)

// ResponseBody struct - Generic HTTP response wrapper
type ResponseBody struct {
	Status Status      `json:"status,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

// Status struct
type Status struct {
	Code    int      `json:"code,omitempty"`
	Message []string `json:"message,omitempty"`
}

type (
	// ChatResponse struct - HTTP response DTO for one processed chat turn
	ChatResponse struct {
		SessionID   string                `json:"session_id"`
		UserMessage string                `json:"user_message"`
		Reply       string                `json:"reply"`
		History     []ChatMessageResponse `json:"history"`
	}

	// ChatMessageResponse struct - One transcript entry
	ChatMessageResponse struct {
		Sender string `json:"sender"`
		Text   string `json:"text"`
	}

	// BookResponse struct - HTTP response DTO for a catalog entry
	BookResponse struct {
		ID         uuid.UUID `json:"id"`
		BookName   string    `json:"book_name"`
		AuthorName string    `json:"author_name"`
		Price      float64   `json:"price"`
		Image      string    `json:"image,omitempty"`
		GenreID    uuid.UUID `json:"genre_id"`
		GenreName  string    `json:"genre_name"`
		Quantity   int       `json:"quantity"`
	}

	// GenreResponse struct - HTTP response DTO for a genre
	GenreResponse struct {
		ID        uuid.UUID `json:"id"`
		GenreName string    `json:"genre_name"`
	}

	// FeedbackResponse struct - HTTP response DTO for a feedback entry
	FeedbackResponse struct {
		ID          uuid.UUID `json:"id"`
		Email       string    `json:"email"`
		Message     string    `json:"message"`
		SubmittedAt time.Time `json:"submitted_at"`
	}

	// OrderItemResponse struct - One rendered order line
	OrderItemResponse struct {
		BookName  string  `json:"book_name"`
		Quantity  int     `json:"quantity"`
		UnitPrice float64 `json:"unit_price"`
	}

	// OrderResponse struct - HTTP response DTO for an order
	OrderResponse struct {
		ID         uuid.UUID           `json:"id"`
		UserID     string              `json:"user_id"`
		CreateDate time.Time           `json:"create_date"`
		StatusName string              `json:"status_name"`
		IsPaid     bool                `json:"is_paid"`
		Total      float64             `json:"total"`
		Items      []OrderItemResponse `json:"items"`
	}

	// OrderStatusResponse struct - HTTP response DTO for a status lookup entry
	OrderStatusResponse struct {
		ID         uuid.UUID `json:"id"`
		StatusName string    `json:"status_name"`
	}
)
