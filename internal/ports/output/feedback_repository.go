package output

import (
	"bookmart/internal/domain"

	"github.com/google/uuid"
)

// FeedbackRepository interface - Output port
// Defines what the application needs from the feedback store.
type FeedbackRepository interface {
	CreateFeedback(request domain.FeedbackRequest) (*domain.FeedbackResponse, error)

	// ListFeedback returns all feedback ordered by submission time, newest first.
	ListFeedback() ([]domain.FeedbackResponse, error)

	DeleteFeedback(id uuid.UUID) error
}
