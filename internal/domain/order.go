package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order struct - A placed order with its checkout contact details
type Order struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;"`
	UserID        string    `gorm:"type:varchar(64);not null;index"`
	CreateDate    time.Time `gorm:"type:timestamp;not null;"`
	OrderStatusID uuid.UUID `gorm:"type:uuid;not null;"`
	OrderStatus   OrderStatus
	IsPaid        bool   `gorm:"not null;default:false"`
	Name          string `gorm:"type:varchar(30)"`
	Email         string `gorm:"type:varchar(30)"`
	MobileNumber  string `gorm:"type:varchar(20)"`
	Address       string `gorm:"type:varchar(200)"`
	PaymentMethod string `gorm:"type:varchar(20)"`
	OrderDetails  []OrderDetail
}

// TableName func
func (o *Order) TableName() string {
	return "orders"
}

// BeforeCreate hook - generates UUID before creating
func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == uuid.Nil {
		o.ID, err = uuid.NewRandom()
	}
	return err
}

// Total sums quantity x unit price over the order's line items
func (o *Order) Total() float64 {
	var total float64
	for _, od := range o.OrderDetails {
		total += float64(od.Quantity) * od.UnitPrice
	}
	return total
}

// OrderDetail struct - One line item of an order. UnitPrice is the price at
// purchase time, not the book's current price.
type OrderDetail struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	BookID    uuid.UUID `gorm:"type:uuid;not null;"`
	Book      Book
	Quantity  int     `gorm:"not null;"`
	UnitPrice float64 `gorm:"type:numeric(10,2);not null;"`
}

// TableName func
func (od *OrderDetail) TableName() string {
	return "order_details"
}

// BeforeCreate hook - generates UUID before creating
func (od *OrderDetail) BeforeCreate(tx *gorm.DB) (err error) {
	if od.ID == uuid.Nil {
		od.ID, err = uuid.NewRandom()
	}
	return err
}

// OrderStatus struct - Lookup entity for order states (Pending, Shipped, ...)
type OrderStatus struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;"`
	StatusName string    `gorm:"type:varchar(20);not null;"`
}

// TableName func
func (os *OrderStatus) TableName() string {
	return "order_statuses"
}

// BeforeCreate hook - generates UUID before creating
func (os *OrderStatus) BeforeCreate(tx *gorm.DB) (err error) {
	if os.ID == uuid.Nil {
		os.ID, err = uuid.NewRandom()
	}
	return err
}
