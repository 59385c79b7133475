// Package vision defines the receipt-extraction port and the shared
// plumbing around it: image normalization, model-output parsing, and the
// fixed fallback item list.
package vision

import "context"

// Item is one line item extracted from a receipt image.
type Item struct {
	Name     string  `json:"name"`
	Quantity string  `json:"quantity"`
	Price    float64 `json:"price"`
}

// Extractor is the port for outbound receipt-analysis backends.
type Extractor interface {
	// ExtractItems reads the line items out of a normalized JPEG image.
	ExtractItems(ctx context.Context, jpegImage []byte) ([]Item, error)
}
