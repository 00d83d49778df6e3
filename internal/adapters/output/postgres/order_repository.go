package postgres

import (
	"bookmart/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// OrderRepository struct - Secondary/Driven adapter for PostgreSQL
type OrderRepository struct {
	dbGorm *gorm.DB
}

// NewOrderRepository func - Creates new PostgreSQL order repository
func NewOrderRepository(dbGorm *gorm.DB) *OrderRepository {
	return &OrderRepository{
		dbGorm: dbGorm,
	}
}

// UserOrders func - Retrieves the given user's orders with status and line
// items preloaded
func (p *OrderRepository) UserOrders(userID string) ([]domain.Order, error) {
	var orders []domain.Order
	err := p.dbGorm.
		Preload("OrderStatus").
		Preload("OrderDetails.Book").
		Where("user_id = ?", userID).
		Find(&orders).Error
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return orders, nil
}

// AllOrders func - Retrieves every user's orders, for administration
func (p *OrderRepository) AllOrders() ([]domain.Order, error) {
	var orders []domain.Order
	err := p.dbGorm.
		Preload("OrderStatus").
		Preload("OrderDetails.Book").
		Order("create_date DESC").
		Find(&orders).Error
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return orders, nil
}

// GetOrderStatuses func - Retrieves the order status lookup list
func (p *OrderRepository) GetOrderStatuses() ([]domain.OrderStatus, error) {
	var statuses []domain.OrderStatus
	if err := p.dbGorm.Find(&statuses).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return statuses, nil
}

// ChangeOrderStatus func - Moves an order to another status
func (p *OrderRepository) ChangeOrderStatus(request domain.UpdateOrderStatusRequest) error {
	tx := p.dbGorm.
		Model(&domain.Order{}).
		Where("id = ?", request.OrderID).
		Update("order_status_id", request.OrderStatusID)
	if tx.Error != nil {
		logrus.Errorln(tx.Error)
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// TogglePaymentStatus func - Flips an order's paid flag
func (p *OrderRepository) TogglePaymentStatus(orderID uuid.UUID) error {
	var order domain.Order
	if err := p.dbGorm.Where("id = ?", orderID).First(&order).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.ErrOrderNotFound
		}
		logrus.Errorln(err)
		return err
	}

	order.IsPaid = !order.IsPaid
	if err := p.dbGorm.Model(&order).Update("is_paid", order.IsPaid).Error; err != nil {
		logrus.Errorln(err)
		return err
	}
	return nil
}
