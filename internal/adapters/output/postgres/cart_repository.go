package postgres

import (
	"bookmart/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CartRepository struct - Secondary/Driven adapter for PostgreSQL
type CartRepository struct {
	dbGorm *gorm.DB
}

// NewCartRepository func - Creates new PostgreSQL shopping cart repository
func NewCartRepository(dbGorm *gorm.DB) *CartRepository {
	return &CartRepository{
		dbGorm: dbGorm,
	}
}

// GetUserCart func - Retrieves the user's open cart with its lines and books
// preloaded. A user without a cart gets an empty cart, not an error.
func (p *CartRepository) GetUserCart(userID string) (*domain.ShoppingCart, error) {
	var cart domain.ShoppingCart
	err := p.dbGorm.
		Preload("CartDetails.Book").
		Where("user_id = ? AND is_deleted = ?", userID, false).
		First(&cart).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return &domain.ShoppingCart{UserID: userID}, nil
		}
		logrus.Errorln(err)
		return nil, err
	}
	return &cart, nil
}
