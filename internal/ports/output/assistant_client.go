package output

import (
	"context"

	"bookmart/internal/domain"
)

// AssistantClient interface - Output port
// Defines what the application needs from the external generative-language
// API for open-domain questions.
type AssistantClient interface {
	// GenerateReply sends the grounding prompt upstream and returns the
	// outcome. The call is total: network failures, malformed bodies and
	// explicit upstream error payloads all come back as an AssistantResult
	// variant that renders to displayable text. A single attempt is made per
	// call; retry policy is the caller's concern.
	GenerateReply(ctx context.Context, request domain.AssistantRequest) domain.AssistantResult
}
