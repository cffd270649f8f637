// ABOUTME: Refiner service calls an OpenAI-compatible endpoint to restructure Markdown
// ABOUTME: Typed failures; malformed responses fall back to the unrefined content

package refine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"markdown-collector-api/core/domain"
	coreerrors "markdown-collector-api/core/errors"
	"markdown-collector-api/core/interfaces"
)

// Service implements the Refiner interface.
type Service struct {
	httpClient interfaces.HTTPClient
	logger     interfaces.Logger
	notifier   interfaces.Notifier
}

// NewService creates a new refinement service.
func NewService(deps interfaces.Dependencies, notifier interfaces.Notifier) *Service {
	return &Service{
		httpClient: deps.HTTPClient,
		logger:     deps.Logger,
		notifier:   notifier,
	}
}

type chatResponse struct {
	Choices []struct {
		Message responseMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
	Message string `json:"message"`
}

type responseMessage struct {
	Content   string `json:"content"`
	ToolCalls []struct {
		Function struct {
			Name      string `json:"name"`
			Arguments string `json:"arguments"`
		} `json:"function"`
	} `json:"tool_calls"`
	FunctionCall *struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	} `json:"function_call"`
}

// Refine sends one refinement call and renders the structured result.
func (s *Service) Refine(ctx context.Context, markdown, prompt string, creds domain.Credentials, tabID int) (string, error) {
	if creds.APIKey == "" {
		return "", &coreerrors.AuthError{Message: "API key is required"}
	}

	if len(prompt)+len(markdown) > warnContentLength {
		s.logger.Warn("Content length may exceed token limits", map[string]interface{}{
			"length": len(prompt) + len(markdown),
		})
	}

	body, err := json.Marshal(newChatRequest(creds.Model, markdown, prompt))
	if err != nil {
		return "", fmt.Errorf("failed to encode refinement request: %w", err)
	}

	// Loading signals are best-effort UI hints, never pipeline errors.
	s.notifier.ShowLoading(tabID)
	defer s.notifier.HideLoading(tabID)

	resp, err := s.httpClient.Post(ctx, creds.BaseURL, bytes.NewReader(body), map[string]string{
		"Authorization": "Bearer " + creds.APIKey,
	})
	if err != nil {
		return "", &coreerrors.ConnectionError{Message: err.Error()}
	}
	defer resp.Body().Close()

	raw, err := io.ReadAll(resp.Body())
	if err != nil {
		return "", &coreerrors.ConnectionError{Message: err.Error()}
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return "", s.statusError(resp.StatusCode(), raw)
	}

	return s.decodeResult(raw, markdown)
}

// statusError maps a non-2xx response to the error taxonomy, extracting
// the upstream message when the body carries one.
func (s *Service) statusError(status int, raw []byte) error {
	message := fmt.Sprintf("API error: %d", status)

	var payload chatResponse
	if err := json.Unmarshal(raw, &payload); err == nil {
		if payload.Error != nil && payload.Error.Message != "" {
			message = payload.Error.Message
		} else if payload.Message != "" {
			message = payload.Message
		}
	} else if len(raw) > 0 {
		snippet := string(raw)
		if len(snippet) > 200 {
			snippet = snippet[:200]
		}
		message = fmt.Sprintf("%s - %s", message, snippet)
	}

	s.logger.Error("LLM API error", map[string]interface{}{
		"status":  status,
		"message": message,
	})

	if status == http.StatusUnauthorized {
		return &coreerrors.AuthError{Message: message}
	}
	return &coreerrors.ExternalAPIError{StatusCode: status, Message: message}
}

// decodeResult extracts the structured payload: tool_calls first, the
// legacy function_call next, raw content after that. When none of them
// is usable the original markdown comes back with a typed error so the
// caller can decide to keep it.
func (s *Service) decodeResult(raw []byte, original string) (string, error) {
	var payload chatResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return original, &coreerrors.MalformedResponseError{Message: err.Error()}
	}

	if len(payload.Choices) == 0 {
		return original, &coreerrors.MalformedResponseError{Message: "no choices returned"}
	}

	message := payload.Choices[0].Message

	if len(message.ToolCalls) > 0 {
		call := message.ToolCalls[0].Function
		if call.Name == "structure_content" {
			return s.renderArguments(call.Arguments, original)
		}
	}

	if message.FunctionCall != nil && message.FunctionCall.Name == "structure_content" {
		return s.renderArguments(message.FunctionCall.Arguments, original)
	}

	if message.Content != "" {
		return message.Content, nil
	}

	s.logger.Warn("No tool call or content in response, returning original markdown", nil)
	return original, &coreerrors.MalformedResponseError{Message: "response carried no tool call or content"}
}

func (s *Service) renderArguments(arguments, original string) (string, error) {
	var structured StructuredContent
	if err := json.Unmarshal([]byte(arguments), &structured); err != nil {
		s.logger.Error("Failed to parse tool call arguments", map[string]interface{}{
			"error": err.Error(),
		})
		return original, &coreerrors.MalformedResponseError{Message: "invalid tool call arguments"}
	}
	return structured.ToMarkdown(), nil
}
