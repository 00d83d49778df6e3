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

// FeedbackHandler struct - Primary/Driving adapter for user feedback
type FeedbackHandler struct {
	srv       input.FeedbackService
	validator validator.Validator
}

// NewFeedbackHandler func - Creates new feedback handler
func NewFeedbackHandler(srv input.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		srv:       srv,
		validator: validator.New(),
	}
}

// CreateFeedback func
/* submit feedback */
// CreateFeedback godoc
// @Summary Submit feedback
// @Description Submit feedback
// @Tags FEEDBACK
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/feedback [post]
// @Produce json
// @param CreateFeedback body FeedbackRequest true "CreateFeedback"
func (hdl *FeedbackHandler) CreateFeedback(c *fiber.Ctx) error {
	var request FeedbackRequest
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

	// Convert HTTP request to domain request
	domainReq := domain.FeedbackRequest{
		Email:   request.Email,
		Message: request.Message,
	}
	response, err := hdl.srv.CreateFeedback(domainReq)
	if err != nil {
		logrus.Errorln(err)
		msg := ResponseBody{
			Status: InternalServerError,
		}
		msg.Status.Message = []string{
			err.Error(),
		}
		return c.Status(fiber.StatusInternalServerError).JSON(msg)
	}

	data := FeedbackResponse{
		ID:          response.ID,
		Email:       response.Email,
		Message:     response.Message,
		SubmittedAt: response.SubmittedAt,
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: data})
}

// ListFeedback func
/* list feedback */
// ListFeedback godoc
// @Summary List feedback
// @Description List all feedback, newest first
// @Tags FEEDBACK
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/admin/feedback [get]
// @Produce json
func (hdl *FeedbackHandler) ListFeedback(c *fiber.Ctx) error {
	result, err := hdl.srv.ListFeedback()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}

	data := make([]FeedbackResponse, len(result))
	for i, feedback := range result {
		data[i] = FeedbackResponse{
			ID:          feedback.ID,
			Email:       feedback.Email,
			Message:     feedback.Message,
			SubmittedAt: feedback.SubmittedAt,
		}
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: data})
}

// DeleteFeedback func
/* delete feedback */
// DeleteFeedback godoc
// @Summary Delete feedback
// @Description Delete feedback
// @Tags FEEDBACK
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/admin/feedback/{id} [delete]
// @Produce json
// @param id path string true "uuid"
func (hdl *FeedbackHandler) DeleteFeedback(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	if err := hdl.srv.DeleteFeedback(id); err != nil {
		if errors.Is(err, domain.ErrFeedbackNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ResponseBody{Status: NotFound})
		}
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}
