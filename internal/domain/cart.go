package domain

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShoppingCart struct - The caller's open cart
type ShoppingCart struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;"`
	UserID      string    `gorm:"type:varchar(64);not null;index"`
	IsDeleted   bool      `gorm:"not null;default:false"`
	CartDetails []CartDetail
}

// TableName func
func (c *ShoppingCart) TableName() string {
	return "shopping_carts"
}

// BeforeCreate hook - generates UUID before creating
func (c *ShoppingCart) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID, err = uuid.NewRandom()
	}
	return err
}

// Total sums unit price x quantity over the cart lines
func (c *ShoppingCart) Total() float64 {
	var total float64
	for _, cd := range c.CartDetails {
		total += cd.UnitPrice * float64(cd.Quantity)
	}
	return total
}

// CartDetail struct - One line of a shopping cart
type CartDetail struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;"`
	ShoppingCartID uuid.UUID `gorm:"type:uuid;not null;index"`
	BookID         uuid.UUID `gorm:"type:uuid;not null;"`
	Book           Book
	Quantity       int     `gorm:"not null;"`
	UnitPrice      float64 `gorm:"type:numeric(10,2);not null;"`
}

// TableName func
func (cd *CartDetail) TableName() string {
	return "cart_details"
}

// BeforeCreate hook - generates UUID before creating
func (cd *CartDetail) BeforeCreate(tx *gorm.DB) (err error) {
	if cd.ID == uuid.Nil {
		cd.ID, err = uuid.NewRandom()
	}
	return err
}
