package application

import (
	"testing"
	"time"

	"bookmart/internal/domain"
)

// TestAllOrdersMapsEntitiesToResponses tests the order-to-response mapping,
// including totals and line items in store return order
func TestAllOrdersMapsEntitiesToResponses(t *testing.T) {
	repo := &MockOrderRepository{}
	created := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	service := NewAdminOrderService(repo)
	orders := []domain.Order{
		{
			UserID:      "u-1",
			CreateDate:  created,
			OrderStatus: domain.OrderStatus{StatusName: "Pending"},
			IsPaid:      true,
			OrderDetails: []domain.OrderDetail{
				{Book: domain.Book{BookName: "Dune"}, Quantity: 2, UnitPrice: 10},
				{Book: domain.Book{BookName: "Emma"}, Quantity: 1, UnitPrice: 7},
			},
		},
	}
	repoAllOrders := func() ([]domain.Order, error) { return orders, nil }
	repo.AllOrdersFunc = repoAllOrders

	responses, err := service.AllOrders()
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(responses) != 1 {
		t.Fatalf("expected 1 response, got %d", len(responses))
	}

	resp := responses[0]
	if resp.StatusName != "Pending" || !resp.IsPaid || resp.UserID != "u-1" {
		t.Errorf("unexpected response header fields: %+v", resp)
	}
	if resp.Total != 27 {
		t.Errorf("expected total 27, got %v", resp.Total)
	}
	if len(resp.Items) != 2 || resp.Items[0].BookName != "Dune" || resp.Items[1].BookName != "Emma" {
		t.Errorf("expected items in store return order, got %+v", resp.Items)
	}
}
