package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Feedback struct - User feedback entity
type Feedback struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;"`
	Email       string    `gorm:"type:varchar(100);not null;"`
	Message     string    `gorm:"type:varchar(1000);not null;"`
	SubmittedAt time.Time `gorm:"type:timestamp;not null;index"`
}

// TableName func
func (f *Feedback) TableName() string {
	return "feedbacks"
}

// BeforeCreate hook - generates UUID and submission time before creating
func (f *Feedback) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == uuid.Nil {
		f.ID, err = uuid.NewRandom()
	}
	if f.SubmittedAt.IsZero() {
		f.SubmittedAt = time.Now()
	}
	return err
}
