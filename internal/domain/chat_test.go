package domain

import (
	"strings"
	"testing"
)

// TestClassifyIntentTriggerPhrases tests that the three fixed trigger phrases
// map to their intents
func TestClassifyIntentTriggerPhrases(t *testing.T) {
	cases := map[string]ChatIntent{
		"Show my orders":  IntentShowOrders,
		"Show my cart":    IntentShowCart,
		"Show my profile": IntentShowProfile,
	}

	for utterance, want := range cases {
		if got := ClassifyIntent(utterance); got != want {
			t.Errorf("ClassifyIntent(%q) = %q, want %q", utterance, got, want)
		}
	}
}

// TestClassifyIntentFallsBackToOpenDomain tests that anything other than an
// exact trigger phrase routes to the open-domain path, including case
// variants and near-matches
func TestClassifyIntentFallsBackToOpenDomain(t *testing.T) {
	utterances := []string{
		"",
		"show my orders",
		"SHOW MY CART",
		"Show my orders ",
		" Show my cart",
		"Show my order",
		"What books do you have?",
		"Show my profile!",
	}

	for _, utterance := range utterances {
		if got := ClassifyIntent(utterance); got != IntentOpenDomain {
			t.Errorf("ClassifyIntent(%q) = %q, want %q", utterance, got, IntentOpenDomain)
		}
	}
}

// TestAssistantResultDisplayText tests that every result variant renders to
// displayable text
func TestAssistantResultDisplayText(t *testing.T) {
	reply := NewAssistantReply("Hello")
	if reply.DisplayText() != "Hello" {
		t.Errorf("expected reply text 'Hello', got %q", reply.DisplayText())
	}

	upstream := NewAssistantUpstreamError("quota exceeded")
	if upstream.DisplayText() != "quota exceeded" {
		t.Errorf("expected upstream error surfaced verbatim, got %q", upstream.DisplayText())
	}

	parseFail := NewAssistantParseFailure("not json", "invalid character 'o'")
	text := parseFail.DisplayText()
	if !strings.Contains(text, "not json") {
		t.Errorf("expected parse failure text to embed the raw body, got %q", text)
	}
	if !strings.Contains(text, "invalid character 'o'") {
		t.Errorf("expected parse failure text to include the detail, got %q", text)
	}
}

// TestKnowledgeItemLine tests the flattened catalog line format
func TestKnowledgeItemLine(t *testing.T) {
	item := KnowledgeItem{Title: "Dune", Author: "Frank Herbert", Price: 12.5, StockQuantity: 4}

	want := "Dune by Frank Herbert, Price 12.5, Quantity 4"
	if got := item.Line(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

// TestOrderTotal tests that the order total sums quantity x unit price over
// its line items
func TestOrderTotal(t *testing.T) {
	order := Order{
		OrderDetails: []OrderDetail{
			{Quantity: 2, UnitPrice: 10.0},
			{Quantity: 1, UnitPrice: 5.5},
		},
	}

	if got := order.Total(); got != 25.5 {
		t.Errorf("expected order total 25.5, got %v", got)
	}

	var empty Order
	if got := empty.Total(); got != 0 {
		t.Errorf("expected empty order total 0, got %v", got)
	}
}

// TestShoppingCartTotal tests that the cart total sums unit price x quantity
// over its lines
func TestShoppingCartTotal(t *testing.T) {
	cart := ShoppingCart{
		CartDetails: []CartDetail{
			{Quantity: 3, UnitPrice: 4.0},
			{Quantity: 2, UnitPrice: 9.25},
		},
	}

	if got := cart.Total(); got != 30.5 {
		t.Errorf("expected cart total 30.5, got %v", got)
	}
}
