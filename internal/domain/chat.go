package domain

import "fmt"

// ChatSender identifies who produced a chat turn
type ChatSender string

const (
	// ChatSenderUser - turn written by the shopper
	ChatSenderUser ChatSender = "user"
	// ChatSenderBot - turn written by the assistant
	ChatSenderBot ChatSender = "bot"
)

// ChatMessage represents a single turn in a chat transcript.
// Turns are immutable once created and kept in chronological order.
type ChatMessage struct {
	Sender ChatSender `json:"sender"`
	Text   string     `json:"text"`
}

// ChatIntent represents the classified purpose of a user utterance
type ChatIntent string

const (
	// IntentShowOrders - list the caller's orders
	IntentShowOrders ChatIntent = "show_orders"
	// IntentShowCart - show the caller's cart
	IntentShowCart ChatIntent = "show_cart"
	// IntentShowProfile - show the caller's profile
	IntentShowProfile ChatIntent = "show_profile"
	// IntentOpenDomain - anything else, answered by the external assistant
	IntentOpenDomain ChatIntent = "open_domain"
)

// Trigger phrases recognized by the classifier. Matching is exact and
// case-sensitive; near-matches fall through to the open-domain path.
const (
	TriggerShowOrders  = "Show my orders"
	TriggerShowCart    = "Show my cart"
	TriggerShowProfile = "Show my profile"
)

// ClassifyIntent maps a raw utterance to an intent. Total over all strings,
// no side effects.
func ClassifyIntent(utterance string) ChatIntent {
	switch utterance {
	case TriggerShowOrders:
		return IntentShowOrders
	case TriggerShowCart:
		return IntentShowCart
	case TriggerShowProfile:
		return IntentShowProfile
	default:
		return IntentOpenDomain
	}
}

// KnowledgeItem is one catalog entry flattened for the grounding prompt.
// Transient - rebuilt from the book store on every open-domain turn.
type KnowledgeItem struct {
	Title         string
	Author        string
	Price         float64
	StockQuantity int
}

// Line renders the item as a single knowledge-base line
func (k KnowledgeItem) Line() string {
	return fmt.Sprintf("%s by %s, Price %v, Quantity %d", k.Title, k.Author, k.Price, k.StockQuantity)
}

// AssistantRequest struct - prompt sent to the external assistant
type AssistantRequest struct {
	Prompt string
}

// AssistantResultKind discriminates the outcome of an assistant call
type AssistantResultKind string

const (
	// AssistantReply - upstream produced a usable reply text
	AssistantReply AssistantResultKind = "reply"
	// AssistantUpstreamError - upstream returned an explicit error payload
	AssistantUpstreamError AssistantResultKind = "upstream_error"
	// AssistantParseFailure - body was malformed, missing both shapes, or the
	// call failed at the network level
	AssistantParseFailure AssistantResultKind = "parse_failure"
)

// AssistantResult is the outcome of one assistant call. Exactly one variant
// is produced per call; every variant renders to displayable text.
type AssistantResult struct {
	Kind    AssistantResultKind
	Text    string // reply text, or the upstream error message
	RawBody string // raw response body, kept for parse failures
	Detail  string // diagnostic detail for parse failures
}

// NewAssistantReply builds a successful result
func NewAssistantReply(text string) AssistantResult {
	return AssistantResult{Kind: AssistantReply, Text: text}
}

// NewAssistantUpstreamError builds a result for an explicit upstream error payload
func NewAssistantUpstreamError(message string) AssistantResult {
	return AssistantResult{Kind: AssistantUpstreamError, Text: message}
}

// NewAssistantParseFailure builds a result for a malformed or failed call
func NewAssistantParseFailure(rawBody, detail string) AssistantResult {
	return AssistantResult{Kind: AssistantParseFailure, RawBody: rawBody, Detail: detail}
}

// DisplayText renders the result as the bot's reply. Upstream error messages
// are surfaced verbatim; parse failures embed the raw body so operators can
// diagnose upstream contract drift.
func (r AssistantResult) DisplayText() string {
	switch r.Kind {
	case AssistantReply, AssistantUpstreamError:
		return r.Text
	case AssistantParseFailure:
		return fmt.Sprintf("Error parsing assistant response: %s\nRaw: %s", r.Detail, r.RawBody)
	}
	return ""
}
