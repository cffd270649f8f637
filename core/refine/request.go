// ABOUTME: Chat-completions request construction for the structure_content tool
// ABOUTME: Matches the OpenAI-compatible wire format, tool_choice pinned

package refine

import "fmt"

const systemPrompt = "You are an AI assistant that refines and structures webpage content based on user prompts. Your task is to modify the given markdown content according to the user's instructions."

// warnContentLength is the character count beyond which the payload is
// likely to exceed the model's token limit.
const warnContentLength = 50000

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatTool struct {
	Type     string       `json:"type"`
	Function toolFunction `json:"function"`
}

type toolFunction struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"`
}

type toolChoice struct {
	Type     string `json:"type"`
	Function struct {
		Name string `json:"name"`
	} `json:"function"`
}

type chatRequest struct {
	Model      string        `json:"model"`
	Messages   []chatMessage `json:"messages"`
	Tools      []chatTool    `json:"tools"`
	ToolChoice toolChoice    `json:"tool_choice"`
}

// structureContentSchema is the JSON schema for the structured payload
// the model must return.
func structureContentSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"title": map[string]interface{}{"type": "string"},
			"content": map[string]interface{}{
				"type": "array",
				"items": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"type": map[string]interface{}{
							"type": "string",
							"enum": []string{"heading", "paragraph", "list", "code", "quote"},
						},
						"content": map[string]interface{}{
							"oneOf": []interface{}{
								map[string]interface{}{"type": "string"},
								map[string]interface{}{
									"type":  "array",
									"items": map[string]interface{}{"type": "string"},
								},
							},
						},
						"level": map[string]interface{}{
							"type":    "integer",
							"minimum": 1,
							"maximum": 6,
						},
						"language": map[string]interface{}{"type": "string"},
					},
					"required": []string{"type", "content"},
				},
			},
		},
		"required": []string{"title", "content"},
	}
}

// newChatRequest builds the request body for one refinement call.
func newChatRequest(model, markdown, prompt string) chatRequest {
	req := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf("Refine the following markdown content based on this prompt: \"%s\"\n\nContent:\n%s", prompt, markdown)},
		},
		Tools: []chatTool{
			{
				Type: "function",
				Function: toolFunction{
					Name:        "structure_content",
					Description: "Structure the refined content",
					Parameters:  structureContentSchema(),
				},
			},
		},
	}
	req.ToolChoice.Type = "function"
	req.ToolChoice.Function.Name = "structure_content"
	return req
}
