package domain

import (
	"time"

	"github.com/google/uuid"
)

// DTOs (Data Transfer Objects) - Domain layer request/response structures

type (
	// ChatTurnRequest struct - One incoming chat utterance. UserID is empty
	// for unauthenticated callers.
	ChatTurnRequest struct {
		SessionID string
		UserID    string
		Message   string
	}

	// ChatTurnResponse struct - The processed turn. History holds the
	// transcript up to but excluding the two turns just appended, matching
	// the storefront's chat view.
	ChatTurnResponse struct {
		SessionID   string        `json:"session_id"`
		UserMessage string        `json:"user_message"`
		Reply       string        `json:"reply"`
		History     []ChatMessage `json:"history"`
	}

	// QueryBookRequest struct - Domain catalog query DTO
	QueryBookRequest struct {
		SearchTerm *string
		GenreID    *uuid.UUID
	}

	// BookResponse struct - Domain catalog response DTO
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

	// GenreResponse struct - Domain genre response DTO
	GenreResponse struct {
		ID        uuid.UUID `json:"id"`
		GenreName string    `json:"genre_name"`
	}

	// Profile struct - The slice of the account the assistant may render
	Profile struct {
		Email string `json:"email"`
	}

	// FeedbackRequest struct - Domain feedback request DTO
	FeedbackRequest struct {
		Email   *string
		Message *string
	}

	// FeedbackResponse struct - Domain feedback response DTO
	FeedbackResponse struct {
		ID          uuid.UUID `json:"id"`
		Email       string    `json:"email"`
		Message     string    `json:"message"`
		SubmittedAt time.Time `json:"submitted_at"`
	}

	// UpdateOrderStatusRequest struct - Domain admin request DTO
	UpdateOrderStatusRequest struct {
		OrderID       uuid.UUID
		OrderStatusID uuid.UUID
	}

	// OrderItemResponse struct - One rendered order line
	OrderItemResponse struct {
		BookName  string  `json:"book_name"`
		Quantity  int     `json:"quantity"`
		UnitPrice float64 `json:"unit_price"`
	}

	// OrderResponse struct - Domain order response DTO
	OrderResponse struct {
		ID         uuid.UUID           `json:"id"`
		UserID     string              `json:"user_id"`
		CreateDate time.Time           `json:"create_date"`
		StatusName string              `json:"status_name"`
		IsPaid     bool                `json:"is_paid"`
		Total      float64             `json:"total"`
		Items      []OrderItemResponse `json:"items"`
	}
)
