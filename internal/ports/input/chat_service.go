package input

import (
	"context"

	"bookmart/internal/domain"
)

// ChatService interface - Input port (use case)
// Defines what the application can do with the conversational assistant.
type ChatService interface {
	// ProcessTurn handles one chat utterance: it appends the user turn to the
	// session transcript, routes the utterance to a domain responder or the
	// external assistant, appends the bot turn and persists the transcript.
	// Every failure on the way to the reply is converted to displayable text;
	// an error is returned only for invalid input (empty message).
	ProcessTurn(ctx context.Context, request domain.ChatTurnRequest) (*domain.ChatTurnResponse, error)

	// GetHistory returns the session transcript in chronological order.
	// An absent or corrupt session yields an empty transcript.
	GetHistory(sessionID string) ([]domain.ChatMessage, error)

	// ClearHistory removes the session transcript. Idempotent.
	ClearHistory(sessionID string) error
}
