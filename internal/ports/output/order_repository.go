package output

import (
	"bookmart/internal/domain"

	"github.com/google/uuid"
)

// OrderRepository interface - Output port
// Defines what the application needs from the order store.
type OrderRepository interface {
	// UserOrders returns the given user's orders with status and line items
	// preloaded, in the store's return order (no re-sorting imposed here).
	UserOrders(userID string) ([]domain.Order, error)

	// AllOrders returns every user's orders, for administration.
	AllOrders() ([]domain.Order, error)

	// GetOrderStatuses returns the order status lookup list.
	GetOrderStatuses() ([]domain.OrderStatus, error)

	// ChangeOrderStatus moves an order to another status.
	ChangeOrderStatus(request domain.UpdateOrderStatusRequest) error

	// TogglePaymentStatus flips an order's paid flag.
	TogglePaymentStatus(orderID uuid.UUID) error
}
