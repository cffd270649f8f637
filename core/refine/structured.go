// ABOUTME: Structured refinement payload and its deterministic Markdown rendering
// ABOUTME: Pure transform, independent of any network call

package refine

import (
	"encoding/json"
	"strings"
)

// StructuredContent is the payload the LLM returns through the
// structure_content tool call.
type StructuredContent struct {
	Title   string         `json:"title"`
	Content []ContentBlock `json:"content"`
}

// ContentBlock is one unit of refined content. Type is one of heading,
// paragraph, list, code or quote; anything else renders as raw content.
type ContentBlock struct {
	Type     string       `json:"type"`
	Content  BlockContent `json:"content"`
	Level    int          `json:"level,omitempty"`
	Language string       `json:"language,omitempty"`
}

// BlockContent accepts either a string or an array of strings, as the
// tool schema allows both.
type BlockContent struct {
	Text  string
	Items []string
}

// UnmarshalJSON implements the string-or-array decoding.
func (b *BlockContent) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		b.Text = text
		return nil
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	b.Items = items
	return nil
}

// MarshalJSON renders back whichever form was decoded.
func (b BlockContent) MarshalJSON() ([]byte, error) {
	if b.Items != nil {
		return json.Marshal(b.Items)
	}
	return json.Marshal(b.Text)
}

// IsList reports whether the block content is the array form.
func (b BlockContent) IsList() bool {
	return b.Items != nil
}

// ToMarkdown renders the structured content as Markdown text.
func (c StructuredContent) ToMarkdown() string {
	var markdown strings.Builder

	if c.Title != "" {
		markdown.WriteString("# ")
		markdown.WriteString(c.Title)
		markdown.WriteString("\n\n")
	}

	for _, block := range c.Content {
		switch block.Type {
		case "heading":
			level := block.Level
			if level == 0 {
				level = 2
			}
			markdown.WriteString(strings.Repeat("#", level))
			markdown.WriteString(" ")
			markdown.WriteString(block.Content.Text)
			markdown.WriteString("\n\n")
		case "paragraph":
			markdown.WriteString(block.Content.Text)
			markdown.WriteString("\n\n")
		case "list":
			if block.Content.IsList() {
				for _, item := range block.Content.Items {
					markdown.WriteString("- ")
					markdown.WriteString(item)
					markdown.WriteString("\n")
				}
				markdown.WriteString("\n")
			}
		case "code":
			markdown.WriteString("```")
			markdown.WriteString(block.Language)
			markdown.WriteString("\n")
			markdown.WriteString(block.Content.Text)
			markdown.WriteString("\n```\n\n")
		case "quote":
			markdown.WriteString("> ")
			markdown.WriteString(block.Content.Text)
			markdown.WriteString("\n\n")
		default:
			markdown.WriteString(block.Content.Text)
			markdown.WriteString("\n\n")
		}
	}

	return strings.TrimSpace(markdown.String())
}
