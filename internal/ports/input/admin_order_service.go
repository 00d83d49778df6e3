package input

import (
	"bookmart/internal/domain"

	"github.com/google/uuid"
)

// AdminOrderService interface - Input port (use case)
// Defines the order-administration operations.
type AdminOrderService interface {
	AllOrders() ([]domain.OrderResponse, error)
	GetOrderStatuses() ([]domain.OrderStatus, error)
	UpdateOrderStatus(request domain.UpdateOrderStatusRequest) error
	TogglePaymentStatus(orderID uuid.UUID) error
}
