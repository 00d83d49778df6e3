package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"bookmart/configs"
	"bookmart/internal/domain"
	"bookmart/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure ClientAdapter implements AssistantClient interface
var _ output.AssistantClient = (*ClientAdapter)(nil)

const (
	defaultEndpoint = "https://generativelanguage.googleapis.com"
	defaultModel    = "gemini-2.5-flash"
)

// ClientAdapter struct - Output adapter for the generativelanguage REST API
type ClientAdapter struct {
	httpClient *http.Client
	endpoint   string
	model      string
	apiKey     string
	timeout    time.Duration
}

// NewClientAdapter func - Creates new generativelanguage client adapter.
// Endpoint, model, API key and timeout come from configuration; a missing
// API key is a startup-time fatal condition, not a per-request one.
func NewClientAdapter(config configs.Gemini) (*ClientAdapter, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is not configured")
	}

	endpoint := strings.TrimSuffix(config.Endpoint, "/")
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	model := config.Model
	if model == "" {
		model = defaultModel
	}

	timeout := time.Duration(config.Timeout) * time.Second
	if config.Timeout <= 0 {
		timeout = 30 * time.Second
	}

	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	adapter := &ClientAdapter{
		httpClient: httpClient,
		endpoint:   endpoint,
		model:      model,
		apiKey:     config.APIKey,
		timeout:    timeout,
	}

	logrus.Infof("Gemini client adapter initialized with endpoint: %s, model: %s, timeout: %v", endpoint, model, timeout)

	return adapter, nil
}

// GenerateReply sends the prompt upstream and parses the result. The call is
// total: one attempt per turn, and every outcome - reply, explicit error
// payload, malformed body, network failure - comes back as a displayable
// AssistantResult. The upstream contract is not fully trusted.
func (a *ClientAdapter) GenerateReply(ctx context.Context, request domain.AssistantRequest) domain.AssistantResult {
	reqBody := generateContentRequest{
		Contents: []contentAPI{
			{
				Role:  "user",
				Parts: []partAPI{{Text: request.Prompt}},
			},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return domain.NewAssistantParseFailure("", fmt.Sprintf("failed to marshal request: %v", err))
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", a.endpoint, a.model, a.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return domain.NewAssistantParseFailure("", fmt.Sprintf("failed to create request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		// Timeouts, connection refusals and DNS failures all land here;
		// treated the same as a malformed body.
		logrus.Errorf("Gemini request failed: %v", err)
		return domain.NewAssistantParseFailure("", fmt.Sprintf("request failed: %v", err))
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		logrus.Errorf("Failed to read Gemini response body: %v", err)
		return domain.NewAssistantParseFailure("", fmt.Sprintf("failed to read response body: %v", err))
	}

	return parseResponse(rawBody, resp.StatusCode)
}

// parseResponse applies the three-tier fallback: candidate reply text, then
// an explicit upstream error payload, then a parse failure carrying the raw
// body. Non-2xx statuses usually arrive with a parseable error payload and
// fall out of the same logic.
func parseResponse(rawBody []byte, statusCode int) domain.AssistantResult {
	var parsed generateContentResponse
	if err := json.Unmarshal(rawBody, &parsed); err != nil {
		logrus.Warnf("Gemini response is not valid JSON (status %d): %v", statusCode, err)
		return domain.NewAssistantParseFailure(string(rawBody), err.Error())
	}

	if len(parsed.Candidates) > 0 && len(parsed.Candidates[0].Content.Parts) > 0 {
		if text := parsed.Candidates[0].Content.Parts[0].Text; text != "" {
			return domain.NewAssistantReply(text)
		}
	}

	if parsed.Error != nil && parsed.Error.Message != "" {
		logrus.Warnf("Gemini returned error payload (status %d): %s", statusCode, parsed.Error.Message)
		return domain.NewAssistantUpstreamError(parsed.Error.Message)
	}

	logrus.Warnf("Gemini response missing both candidate text and error payload (status %d)", statusCode)
	return domain.NewAssistantParseFailure(string(rawBody), "response contains neither candidate text nor an error message")
}

// API request/response structures for the generativelanguage REST API

// partAPI represents one text part of a content block
type partAPI struct {
	Text string `json:"text"`
}

// contentAPI represents one role-tagged content block
type contentAPI struct {
	Role  string    `json:"role"`
	Parts []partAPI `json:"parts"`
}

// generateContentRequest represents the request body for generateContent
type generateContentRequest struct {
	Contents []contentAPI `json:"contents"`
}

// generateContentResponse represents the response body, which carries either
// candidates or an error payload
type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
