package postgres

import (
	"bookmart/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// UserRepository struct - Secondary/Driven adapter for PostgreSQL
// The users table belongs to the account subsystem; this adapter only reads
// the profile slice the assistant renders.
type UserRepository struct {
	dbGorm *gorm.DB
}

// NewUserRepository func - Creates new PostgreSQL user repository
func NewUserRepository(dbGorm *gorm.DB) *UserRepository {
	return &UserRepository{
		dbGorm: dbGorm,
	}
}

// GetProfile func - Retrieves the registered profile for the given identity
func (p *UserRepository) GetProfile(userID string) (*domain.Profile, error) {
	var profile domain.Profile
	err := p.dbGorm.
		Table("users").
		Select("email").
		Where("id = ?", userID).
		Take(&profile).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrProfileNotFound
		}
		logrus.Errorln(err)
		return nil, err
	}
	return &profile, nil
}
