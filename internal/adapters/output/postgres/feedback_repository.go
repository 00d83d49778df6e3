package postgres

import (
	"bookmart/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// FeedbackRepository struct - Secondary/Driven adapter for PostgreSQL
type FeedbackRepository struct {
	dbGorm *gorm.DB
}

// NewFeedbackRepository func - Creates new PostgreSQL feedback repository
func NewFeedbackRepository(dbGorm *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{
		dbGorm: dbGorm,
	}
}

// CreateFeedback func - Stores a submitted feedback entry
func (p *FeedbackRepository) CreateFeedback(request domain.FeedbackRequest) (*domain.FeedbackResponse, error) {
	feedback := domain.Feedback{
		Email:   *request.Email,
		Message: *request.Message,
	}
	if err := p.dbGorm.Create(&feedback).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	return &domain.FeedbackResponse{
		ID:          feedback.ID,
		Email:       feedback.Email,
		Message:     feedback.Message,
		SubmittedAt: feedback.SubmittedAt,
	}, nil
}

// ListFeedback func - Retrieves all feedback, newest first
func (p *FeedbackRepository) ListFeedback() ([]domain.FeedbackResponse, error) {
	var feedbacks []domain.Feedback
	err := p.dbGorm.Order("submitted_at DESC").Find(&feedbacks).Error
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	responses := make([]domain.FeedbackResponse, len(feedbacks))
	for i, feedback := range feedbacks {
		responses[i] = domain.FeedbackResponse{
			ID:          feedback.ID,
			Email:       feedback.Email,
			Message:     feedback.Message,
			SubmittedAt: feedback.SubmittedAt,
		}
	}
	return responses, nil
}

// DeleteFeedback func - Removes a feedback entry
func (p *FeedbackRepository) DeleteFeedback(id uuid.UUID) error {
	tx := p.dbGorm.Where("id = ?", id).Delete(&domain.Feedback{})
	if tx.Error != nil {
		logrus.Errorln(tx.Error)
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrFeedbackNotFound
	}
	return nil
}
