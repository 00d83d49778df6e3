package application

import (
	"bookmart/internal/domain"
	"bookmart/internal/ports/output"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AdminOrderService struct - Application service implementing order
// administration use cases
type AdminOrderService struct {
	repo output.OrderRepository
}

// NewAdminOrderService func - Creates new admin order service
func NewAdminOrderService(repo output.OrderRepository) *AdminOrderService {
	return &AdminOrderService{
		repo: repo,
	}
}

// AllOrders func - Use case: List every user's orders
func (s *AdminOrderService) AllOrders() ([]domain.OrderResponse, error) {
	orders, err := s.repo.AllOrders()
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	responses := make([]domain.OrderResponse, len(orders))
	for i, order := range orders {
		items := make([]domain.OrderItemResponse, len(order.OrderDetails))
		for j, od := range order.OrderDetails {
			items[j] = domain.OrderItemResponse{
				BookName:  od.Book.BookName,
				Quantity:  od.Quantity,
				UnitPrice: od.UnitPrice,
			}
		}
		responses[i] = domain.OrderResponse{
			ID:         order.ID,
			UserID:     order.UserID,
			CreateDate: order.CreateDate,
			StatusName: order.OrderStatus.StatusName,
			IsPaid:     order.IsPaid,
			Total:      order.Total(),
			Items:      items,
		}
	}
	return responses, nil
}

// GetOrderStatuses func - Use case: Status lookup list for the edit form
func (s *AdminOrderService) GetOrderStatuses() ([]domain.OrderStatus, error) {
	return s.repo.GetOrderStatuses()
}

// UpdateOrderStatus func - Use case: Move an order to another status
func (s *AdminOrderService) UpdateOrderStatus(request domain.UpdateOrderStatusRequest) error {
	if err := s.repo.ChangeOrderStatus(request); err != nil {
		logrus.Errorln(err)
		return err
	}
	return nil
}

// TogglePaymentStatus func - Use case: Flip an order's paid flag
func (s *AdminOrderService) TogglePaymentStatus(orderID uuid.UUID) error {
	return s.repo.TogglePaymentStatus(orderID)
}
