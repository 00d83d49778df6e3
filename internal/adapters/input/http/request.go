package http

import "github.com/google/uuid"

type (
	// ChatRequest struct - HTTP request DTO. The session rides in the
	// X-Chat-Session header and the identity in X-User-ID, not the body.
	ChatRequest struct {
		Message *string `json:"message" validate:"required" form:"message"`
	}

	// QueryBookRequest struct - HTTP query request DTO
	QueryBookRequest struct {
		SearchTerm *string    `json:"search_term,omitempty" form:"search_term" query:"search_term"`
		GenreID    *uuid.UUID `json:"genre_id,omitempty" form:"genre_id" query:"genre_id"`
	}

	// FeedbackRequest struct - HTTP request DTO
	FeedbackRequest struct {
		Email   *string `json:"email" validate:"required,email,max=100" form:"email"`
		Message *string `json:"message" validate:"required,max=1000" form:"message"`
	}

	// UpdateOrderStatusRequest struct - HTTP request DTO
	UpdateOrderStatusRequest struct {
		OrderID       *uuid.UUID `json:"order_id" validate:"required" form:"order_id"`
		OrderStatusID *uuid.UUID `json:"order_status_id" validate:"required" form:"order_status_id"`
	}
)
