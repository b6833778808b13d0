package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient implements Client using Google's Gemini models.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &GeminiClient{client: client, model: model}, nil
}

// Close cleans up the Gemini client resources.
func (c *GeminiClient) Close() {
	c.client.Close()
}

// GenerateText performs one generation round-trip. When schema is non-nil the
// model is put in JSON mode with a response schema so the provider constrains
// the output shape; otherwise free-form text is returned (used for the HTML
// itinerary, which is opaque to this layer).
func (c *GeminiClient) GenerateText(ctx context.Context, prompt string, schema *Schema) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.4)
	if schema != nil {
		model.ResponseMIMEType = "application/json"
		model.ResponseSchema = toGenaiSchema(schema)
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("gemini generation error: %v", err)
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: no response candidates", ErrUpstream)
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}
	out := cleanJSONString(responseText.String())
	if out == "" {
		return "", fmt.Errorf("%w: empty response text", ErrUpstream)
	}
	return out, nil
}

// toGenaiSchema translates the neutral schema descriptor into the Gemini SDK form.
func toGenaiSchema(s *Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{Description: s.Description}
	switch s.Kind {
	case KindString:
		out.Type = genai.TypeString
	case KindArray:
		out.Type = genai.TypeArray
		out.Items = toGenaiSchema(s.Items)
	case KindObject:
		out.Type = genai.TypeObject
		out.Required = s.Required
		if len(s.Properties) > 0 {
			out.Properties = make(map[string]*genai.Schema, len(s.Properties))
			for name, prop := range s.Properties {
				out.Properties[name] = toGenaiSchema(prop)
			}
		}
	}
	return out
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```html")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
