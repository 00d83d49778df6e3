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

// Chat transport headers. The session travels out of band so the widget can
// keep one id across page loads; the identity header is set by the auth
// layer in front of this service.
const (
	HeaderChatSession = "X-Chat-Session"
	HeaderUserID      = "X-User-ID"
)

// ChatHandler struct - Primary/Driving adapter for the conversational assistant
type ChatHandler struct {
	srv       input.ChatService
	validator validator.Validator
}

// NewChatHandler func - Creates new chat handler
func NewChatHandler(srv input.ChatService) *ChatHandler {
	return &ChatHandler{
		srv:       srv,
		validator: validator.New(),
	}
}

// Chat func
/* process one chat turn */
// Chat godoc
// @Summary Process a chat turn
// @Description Routes the utterance to a domain responder or the assistant and returns the reply with the prior transcript. A missing X-Chat-Session header starts a new session; its id is returned in the response.
// @Tags CHAT
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/chat [post]
// @Produce json
// @param Chat body ChatRequest true "Chat"
// @param X-Chat-Session header string false "session id"
// @param X-User-ID header string false "user id"
func (hdl *ChatHandler) Chat(c *fiber.Ctx) error {
	var request ChatRequest
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

	sessionID := c.Get(HeaderChatSession)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	// Convert HTTP request to domain request
	domainReq := domain.ChatTurnRequest{
		SessionID: sessionID,
		UserID:    c.Get(HeaderUserID),
		Message:   *request.Message,
	}

	response, err := hdl.srv.ProcessTurn(c.Context(), domainReq)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyMessage) {
			msg := ResponseBody{
				Status: BadRequest,
			}
			msg.Status.Message = []string{
				err.Error(),
			}
			return c.Status(fiber.StatusBadRequest).JSON(msg)
		}
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}

	// Convert domain response to HTTP response
	data := ChatResponse{
		SessionID:   response.SessionID,
		UserMessage: response.UserMessage,
		Reply:       response.Reply,
		History:     toMessageResponses(response.History),
	}
	c.Set(HeaderChatSession, response.SessionID)
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: data})
}

// GetHistory func
/* get session transcript */
// GetHistory godoc
// @Summary Get chat history
// @Description Returns the session transcript in chronological order
// @Tags CHAT
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/chat/history [get]
// @Produce json
// @param X-Chat-Session header string true "session id"
func (hdl *ChatHandler) GetHistory(c *fiber.Ctx) error {
	sessionID := c.Get(HeaderChatSession)
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	history, err := hdl.srv.GetHistory(sessionID)
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: toMessageResponses(history)})
}

// ClearHistory func
/* clear session transcript */
// ClearHistory godoc
// @Summary Clear chat history
// @Description Removes the session transcript
// @Tags CHAT
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/chat/history [delete]
// @Produce json
// @param X-Chat-Session header string true "session id"
func (hdl *ChatHandler) ClearHistory(c *fiber.Ctx) error {
	sessionID := c.Get(HeaderChatSession)
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	if err := hdl.srv.ClearHistory(sessionID); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}

func toMessageResponses(history []domain.ChatMessage) []ChatMessageResponse {
	messages := make([]ChatMessageResponse, len(history))
	for i, msg := range history {
		messages[i] = ChatMessageResponse{
			Sender: string(msg.Sender),
			Text:   msg.Text,
		}
	}
	return messages
}
