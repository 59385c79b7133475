package services

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"baniya/internal/vision"
)

// Competitor price multiplier ranges, applied to the extracted price.
const (
	instamartLow, instamartHigh = 0.85, 1.15
	zeptoLow, zeptoHigh         = 0.80, 1.10
)

// savingsAlertPercent is the savings share above which the analyzer switches
// to the alert-style recommendation message.
const savingsAlertPercent = 10.0

type QCommerceItem struct {
	Name             string  `json:"name"`
	Quantity         string  `json:"quantity"`
	BlinkitPrice     float64 `json:"blinkit_price"`
	InstamartPrice   float64 `json:"instamart_price"`
	ZeptoPrice       float64 `json:"zepto_price"`
	BestPlatform     string  `json:"best_platform"`
	PotentialSavings float64 `json:"potential_savings"`
}

type QCommerceResult struct {
	Items          []QCommerceItem `json:"items"`
	TotalBlinkit   float64         `json:"total_blinkit"`
	TotalSavings   float64         `json:"total_savings"`
	Recommendation string          `json:"recommendation"`
}

// Analyzer turns a receipt image into a cross-platform price comparison.
// Competitor prices are synthetic, drawn from uniform multipliers over the
// extracted price, so results vary between calls.
type Analyzer struct {
	extractor vision.Extractor
	uniform   func(low, high float64) float64
}

func NewAnalyzer(extractor vision.Extractor) *Analyzer {
	return &Analyzer{
		extractor: extractor,
		uniform: func(low, high float64) float64 {
			return low + rand.Float64()*(high-low)
		},
	}
}

// Analyze normalizes the uploaded image, extracts its line items, and
// builds the comparison. Decode and extractor failures are returned to the
// caller; an unparseable model reply never reaches here because the
// extractor already degrades to the fallback list.
func (a *Analyzer) Analyze(ctx context.Context, imageData []byte) (QCommerceResult, error) {
	jpegImage, err := vision.NormalizeImage(imageData)
	if err != nil {
		return QCommerceResult{}, fmt.Errorf("normalize image: %w", err)
	}

	items, err := a.extractor.ExtractItems(ctx, jpegImage)
	if err != nil {
		return QCommerceResult{}, fmt.Errorf("extract items: %w", err)
	}

	result := QCommerceResult{Items: make([]QCommerceItem, 0, len(items))}
	totalBest := 0.0

	for _, item := range items {
		blinkit := item.Price
		instamart := round2(blinkit * a.uniform(instamartLow, instamartHigh))
		zepto := round2(blinkit * a.uniform(zeptoLow, zeptoHigh))

		// Ties favor Blinkit, then Instamart, matching the comparison order.
		bestPlatform, bestPrice := "Blinkit", blinkit
		if instamart < bestPrice {
			bestPlatform, bestPrice = "Instamart", instamart
		}
		if zepto < bestPrice {
			bestPlatform, bestPrice = "Zepto", zepto
		}

		result.TotalBlinkit += blinkit
		totalBest += bestPrice

		result.Items = append(result.Items, QCommerceItem{
			Name:             item.Name,
			Quantity:         item.Quantity,
			BlinkitPrice:     blinkit,
			InstamartPrice:   instamart,
			ZeptoPrice:       zepto,
			BestPlatform:     bestPlatform,
			PotentialSavings: round2(blinkit - bestPrice),
		})
	}

	totalSavings := round2(result.TotalBlinkit - totalBest)
	savingsPercent := 0.0
	if result.TotalBlinkit > 0 {
		savingsPercent = round1(totalSavings / result.TotalBlinkit * 100)
	}

	result.TotalSavings = math.Abs(totalSavings)
	result.Recommendation = recommendationMessage(result.Items, savingsPercent, result.TotalSavings)

	return result, nil
}

func recommendationMessage(items []QCommerceItem, savingsPercent, totalSavings float64) string {
	if savingsPercent > savingsAlertPercent {
		return fmt.Sprintf("🎯 Bachat Alert! Save %s%% (₹%s) by smart shopping!",
			formatNumber(savingsPercent), formatNumber(totalSavings))
	}
	platform := "other platforms"
	if len(items) > 0 {
		platform = items[0].BestPlatform
	}
	return fmt.Sprintf("Switch to %s to save ₹%s!", platform, formatNumber(totalSavings))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// formatNumber renders a float without trailing zeros ("12.5", "40").
func formatNumber(v float64) string {
	return fmt.Sprintf("%g", v)
}
