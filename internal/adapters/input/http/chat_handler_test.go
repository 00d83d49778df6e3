package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"bookmart/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// MockChatService struct - Mock implementation of the chat use case
type MockChatService struct {
	ProcessTurnFunc   func(ctx context.Context, request domain.ChatTurnRequest) (*domain.ChatTurnResponse, error)
	GetHistoryFunc    func(sessionID string) ([]domain.ChatMessage, error)
	ClearHistoryFunc  func(sessionID string) error
	ProcessTurnCalls  int
	GetHistoryCalls   int
	ClearHistoryCalls int
}

func (m *MockChatService) ProcessTurn(ctx context.Context, request domain.ChatTurnRequest) (*domain.ChatTurnResponse, error) {
	m.ProcessTurnCalls++
	if m.ProcessTurnFunc != nil {
		return m.ProcessTurnFunc(ctx, request)
	}
	return &domain.ChatTurnResponse{SessionID: request.SessionID, UserMessage: request.Message}, nil
}

func (m *MockChatService) GetHistory(sessionID string) ([]domain.ChatMessage, error) {
	m.GetHistoryCalls++
	if m.GetHistoryFunc != nil {
		return m.GetHistoryFunc(sessionID)
	}
	return nil, nil
}

func (m *MockChatService) ClearHistory(sessionID string) error {
	m.ClearHistoryCalls++
	if m.ClearHistoryFunc != nil {
		return m.ClearHistoryFunc(sessionID)
	}
	return nil
}

func newChatTestApp(srv *MockChatService) *fiber.App {
	hdl := NewChatHandler(srv)
	app := fiber.New()
	app.Post("/v1/api/chat", hdl.Chat)
	app.Get("/v1/api/chat/history", hdl.GetHistory)
	app.Delete("/v1/api/chat/history", hdl.ClearHistory)
	return app
}

func TestChatReturnsReplyWithHistory(t *testing.T) {
	srv := &MockChatService{
		ProcessTurnFunc: func(ctx context.Context, request domain.ChatTurnRequest) (*domain.ChatTurnResponse, error) {
			if request.SessionID != "s-1" {
				t.Errorf("expected session s-1, got %q", request.SessionID)
			}
			if request.UserID != "u-1" {
				t.Errorf("expected user u-1, got %q", request.UserID)
			}
			return &domain.ChatTurnResponse{
				SessionID:   request.SessionID,
				UserMessage: request.Message,
				Reply:       "We stock Dune.",
				History: []domain.ChatMessage{
					{Sender: domain.ChatSenderUser, Text: "Hi"},
					{Sender: domain.ChatSenderBot, Text: "Hello!"},
				},
			}, nil
		},
	}
	app := newChatTestApp(srv)

	body := `{"message":"Do you have Dune?"}`
	req, _ := http.NewRequest(http.MethodPost, "/v1/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderChatSession, "s-1")
	req.Header.Set(HeaderUserID, "u-1")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get(HeaderChatSession); got != "s-1" {
		t.Errorf("expected session header echoed, got %q", got)
	}

	raw, _ := io.ReadAll(resp.Body)
	var envelope struct {
		Data ChatResponse `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	if envelope.Data.Reply != "We stock Dune." {
		t.Errorf("expected reply in envelope, got %q", envelope.Data.Reply)
	}
	if len(envelope.Data.History) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(envelope.Data.History))
	}
	if envelope.Data.History[0].Sender != "user" {
		t.Errorf("expected first sender user, got %q", envelope.Data.History[0].Sender)
	}
}

func TestChatMissingSessionStartsNewOne(t *testing.T) {
	var seenSession string
	srv := &MockChatService{
		ProcessTurnFunc: func(ctx context.Context, request domain.ChatTurnRequest) (*domain.ChatTurnResponse, error) {
			seenSession = request.SessionID
			return &domain.ChatTurnResponse{SessionID: request.SessionID, UserMessage: request.Message, Reply: "ok"}, nil
		},
	}
	app := newChatTestApp(srv)

	body := `{"message":"Hi"}`
	req, _ := http.NewRequest(http.MethodPost, "/v1/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if _, err := uuid.Parse(seenSession); err != nil {
		t.Errorf("expected generated uuid session, got %q", seenSession)
	}
	if got := resp.Header.Get(HeaderChatSession); got != seenSession {
		t.Errorf("expected new session %q returned in header, got %q", seenSession, got)
	}
}

func TestChatMissingMessageIsBadRequest(t *testing.T) {
	srv := &MockChatService{}
	app := newChatTestApp(srv)

	body := `{}`
	req, _ := http.NewRequest(http.MethodPost, "/v1/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderChatSession, "s-1")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
	if srv.ProcessTurnCalls != 0 {
		t.Errorf("expected no turn processed, got %d", srv.ProcessTurnCalls)
	}
}

func TestChatBlankMessageIsBadRequest(t *testing.T) {
	srv := &MockChatService{
		ProcessTurnFunc: func(ctx context.Context, request domain.ChatTurnRequest) (*domain.ChatTurnResponse, error) {
			return nil, domain.ErrEmptyMessage
		},
	}
	app := newChatTestApp(srv)

	body := `{"message":"   "}`
	req, _ := http.NewRequest(http.MethodPost, "/v1/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderChatSession, "s-1")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
}

func TestGetHistoryReturnsTranscript(t *testing.T) {
	srv := &MockChatService{
		GetHistoryFunc: func(sessionID string) ([]domain.ChatMessage, error) {
			if sessionID != "s-9" {
				t.Errorf("expected session s-9, got %q", sessionID)
			}
			return []domain.ChatMessage{
				{Sender: domain.ChatSenderUser, Text: "Show my cart"},
				{Sender: domain.ChatSenderBot, Text: "Your cart is empty."},
			}, nil
		},
	}
	app := newChatTestApp(srv)

	req, _ := http.NewRequest(http.MethodGet, "/v1/api/chat/history", nil)
	req.Header.Set(HeaderChatSession, "s-9")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	raw, _ := io.ReadAll(resp.Body)
	var envelope struct {
		Data []ChatMessageResponse `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	if len(envelope.Data) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(envelope.Data))
	}
	if envelope.Data[1].Text != "Your cart is empty." {
		t.Errorf("unexpected second entry: %q", envelope.Data[1].Text)
	}
}

func TestGetHistoryWithoutSessionIsBadRequest(t *testing.T) {
	srv := &MockChatService{}
	app := newChatTestApp(srv)

	req, _ := http.NewRequest(http.MethodGet, "/v1/api/chat/history", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
	if srv.GetHistoryCalls != 0 {
		t.Errorf("expected no history lookup, got %d", srv.GetHistoryCalls)
	}
}

func TestClearHistoryDelegatesToService(t *testing.T) {
	srv := &MockChatService{}
	app := newChatTestApp(srv)

	req, _ := http.NewRequest(http.MethodDelete, "/v1/api/chat/history", nil)
	req.Header.Set(HeaderChatSession, "s-9")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if srv.ClearHistoryCalls != 1 {
		t.Errorf("expected 1 clear call, got %d", srv.ClearHistoryCalls)
	}
}
