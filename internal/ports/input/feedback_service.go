package input

import (
	"bookmart/internal/domain"

	"github.com/google/uuid"
)

// FeedbackService interface - Input port (use case)
// Defines what the application can do with user feedback.
type FeedbackService interface {
	CreateFeedback(request domain.FeedbackRequest) (*domain.FeedbackResponse, error)
	ListFeedback() ([]domain.FeedbackResponse, error)
	DeleteFeedback(id uuid.UUID) error
}
