package application

import (
	"bookmart/internal/domain"
	"bookmart/internal/ports/output"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// FeedbackService struct - Application service implementing feedback use cases
type FeedbackService struct {
	repo output.FeedbackRepository
}

// NewFeedbackService func - Creates new feedback service
func NewFeedbackService(repo output.FeedbackRepository) *FeedbackService {
	return &FeedbackService{
		repo: repo,
	}
}

// CreateFeedback func - Use case: Record user feedback
func (s *FeedbackService) CreateFeedback(request domain.FeedbackRequest) (*domain.FeedbackResponse, error) {
	result, err := s.repo.CreateFeedback(request)
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return result, nil
}

// ListFeedback func - Use case: List feedback for administration, newest first
func (s *FeedbackService) ListFeedback() ([]domain.FeedbackResponse, error) {
	return s.repo.ListFeedback()
}

// DeleteFeedback func - Use case: Remove a feedback entry
func (s *FeedbackService) DeleteFeedback(id uuid.UUID) error {
	return s.repo.DeleteFeedback(id)
}
