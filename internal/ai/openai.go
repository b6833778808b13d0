package ai

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient implements Client using OpenAI chat completions. It exists as
// an alternative backend; Gemini remains the default provider.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey, model string) (*OpenAIClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("openai: missing api key")
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIClient{client: openai.NewClient(apiKey), model: model}, nil
}

// GenerateText performs one chat-completion round-trip. OpenAI's JSON mode
// cannot carry a schema object and only guarantees a top-level JSON object,
// so the schema descriptor is rendered into the prompt as an instruction
// block instead, and JSON mode is enabled only for object-shaped schemas.
func (c *OpenAIClient) GenerateText(ctx context.Context, prompt string, schema *Schema) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}
	if schema != nil {
		req.Messages[0].Content = prompt + "\n\n" + schemaInstruction(schema)
		if schema.Kind == KindObject {
			req.ResponseFormat = &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			}
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		log.Printf("openai generation error: %v", err)
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no response choices", ErrUpstream)
	}
	out := cleanJSONString(resp.Choices[0].Message.Content)
	if out == "" {
		return "", fmt.Errorf("%w: empty response text", ErrUpstream)
	}
	return out, nil
}

// schemaInstruction renders the schema descriptor as a textual contract the
// model must follow. Deterministic field order keeps prompts reproducible.
func schemaInstruction(s *Schema) string {
	var b strings.Builder
	b.WriteString("응답은 반드시 아래 형태의 JSON만 출력하세요. 다른 텍스트나 마크다운은 금지합니다.\n")
	writeSchemaShape(&b, s, 0)
	return b.String()
}

func writeSchemaShape(b *strings.Builder, s *Schema, depth int) {
	indent := strings.Repeat("  ", depth)
	switch s.Kind {
	case KindString:
		fmt.Fprintf(b, "%sstring", indent)
		if s.Description != "" {
			fmt.Fprintf(b, " // %s", s.Description)
		}
		b.WriteString("\n")
	case KindArray:
		fmt.Fprintf(b, "%s[\n", indent)
		writeSchemaShape(b, s.Items, depth+1)
		fmt.Fprintf(b, "%s]\n", indent)
	case KindObject:
		required := make(map[string]bool, len(s.Required))
		for _, r := range s.Required {
			required[r] = true
		}
		names := make([]string, 0, len(s.Properties))
		for name := range s.Properties {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Fprintf(b, "%s{\n", indent)
		for _, name := range names {
			marker := " (optional)"
			if required[name] {
				marker = " (required)"
			}
			fmt.Fprintf(b, "%s  %q:%s\n", indent, name, marker)
			writeSchemaShape(b, s.Properties[name], depth+2)
		}
		fmt.Fprintf(b, "%s}\n", indent)
	}
}
