package http

import (
	"errors"

	"bookmart/internal/domain"
	"bookmart/internal/ports/input"
	"bookmart/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AdminHandler struct - Primary/Driving adapter for order administration
type AdminHandler struct {
	srv       input.AdminOrderService
	validator validator.Validator
}

// NewAdminHandler func - Creates new admin handler
func NewAdminHandler(srv input.AdminOrderService) *AdminHandler {
	return &AdminHandler{
		srv:       srv,
		validator: validator.New(),
	}
}

// GetOrders func
/* list all orders */
// GetOrders godoc
// @Summary List all orders
// @Description List every user's orders with totals and line items
// @Tags ADMIN
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/admin/orders [get]
// @Produce json
func (hdl *AdminHandler) GetOrders(c *fiber.Ctx) error {
	result, err := hdl.srv.AllOrders()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}

	// Convert domain response to HTTP response
	data := make([]OrderResponse, len(result))
	for i, order := range result {
		items := make([]OrderItemResponse, len(order.Items))
		for j, item := range order.Items {
			items[j] = OrderItemResponse{
				BookName:  item.BookName,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
			}
		}
		data[i] = OrderResponse{
			ID:         order.ID,
			UserID:     order.UserID,
			CreateDate: order.CreateDate,
			StatusName: order.StatusName,
			IsPaid:     order.IsPaid,
			Total:      order.Total,
			Items:      items,
		}
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: data})
}

// GetOrderStatuses func
/* list order statuses */
// GetOrderStatuses godoc
// @Summary List order statuses
// @Description List the order status lookup entries
// @Tags ADMIN
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/admin/order-statuses [get]
// @Produce json
func (hdl *AdminHandler) GetOrderStatuses(c *fiber.Ctx) error {
	result, err := hdl.srv.GetOrderStatuses()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}

	data := make([]OrderStatusResponse, len(result))
	for i, status := range result {
		data[i] = OrderStatusResponse{
			ID:         status.ID,
			StatusName: status.StatusName,
		}
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: data})
}

// UpdateOrderStatus func
/* update order status */
// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Move an order to another status
// @Tags ADMIN
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/admin/orders/status [put]
// @Produce json
// @param UpdateOrderStatus body UpdateOrderStatusRequest true "UpdateOrderStatus"
func (hdl *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	var request UpdateOrderStatusRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		msg := ResponseBody{
			Status: BadRequest,
		}
		msg.Status.Message = []string{
			err.Error(),
		}
		return c.Status(fiber.StatusBadRequest).JSON(msg)
	}

	domainReq := domain.UpdateOrderStatusRequest{
		OrderID:       *request.OrderID,
		OrderStatusID: *request.OrderStatusID,
	}
	if err := hdl.srv.UpdateOrderStatus(domainReq); err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ResponseBody{Status: NotFound})
		}
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}

// TogglePaymentStatus func
/* toggle order payment */
// TogglePaymentStatus godoc
// @Summary Toggle payment status
// @Description Flip an order's paid flag
// @Tags ADMIN
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/admin/orders/{id}/payment [put]
// @Produce json
// @param id path string true "uuid"
func (hdl *AdminHandler) TogglePaymentStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	if err := hdl.srv.TogglePaymentStatus(id); err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ResponseBody{Status: NotFound})
		}
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}
