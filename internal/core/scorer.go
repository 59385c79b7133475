package core

import (
	"sort"
	"strings"
)

// Scoring weights and spend thresholds for each category rule.
// A rule fires only when the monthly spend strictly exceeds its threshold
// and the card lists the category in its best-for set.
const (
	groceryThreshold   = 5000
	diningThreshold    = 3000
	travelThreshold    = 5000
	shoppingThreshold  = 8000
	utilitiesThreshold = 2000

	lowFeeThreshold = 1000 // rupees; below this a card earns the fee bonus

	maxMatchScore      = 100
	maxRecommendations = 5
)

const reasonSeparator = " • "

// fallbackReason covers a card that clears the score gate without any rule
// attaching text. Unreachable with the current rule set, kept for future rules.
const fallbackReason = "Versatile card for general use"

type scoreRule struct {
	spend     func(SpendingProfile) int
	threshold int
	category  string
	points    int
	reason    string
}

var scoreRules = []scoreRule{
	{func(p SpendingProfile) int { return p.Grocery }, groceryThreshold, CategoryGrocery, 30, "Great for groceries"},
	{func(p SpendingProfile) int { return p.Dining }, diningThreshold, CategoryDining, 25, "Excellent dining rewards"},
	{func(p SpendingProfile) int { return p.Travel }, travelThreshold, CategoryTravel, 35, "Premium travel benefits"},
	{func(p SpendingProfile) int { return p.Shopping }, shoppingThreshold, CategoryShopping, 30, "Maximum shopping cashback"},
	{func(p SpendingProfile) int { return p.Utilities }, utilitiesThreshold, CategoryUtilities, 20, "Good for bill payments"},
}

// Recommend scores every card in the catalog against the spending profile and
// returns at most five recommendations, best match first. Cards qualify only
// with a positive accumulated score; a low annual fee alone is enough.
//
// The reported match score is clamped to 100, but the savings estimate is
// computed from the raw accumulated score. Keep that asymmetry: existing
// clients expect both values exactly as produced here.
func Recommend(profile SpendingProfile, cards []Card) []Recommendation {
	recs := make([]Recommendation, 0, len(cards))

	for _, card := range cards {
		score := 0
		var reasons []string

		for _, rule := range scoreRules {
			if rule.spend(profile) > rule.threshold && card.OptimizedFor(rule.category) {
				score += rule.points
				reasons = append(reasons, rule.reason)
			}
		}

		if fee, err := ParseRupees(card.AnnualFee); err == nil && fee < lowFeeThreshold {
			score += 15
			reasons = append(reasons, "Budget-friendly annual fee")
		}

		if score <= 0 {
			continue
		}

		reason := fallbackReason
		if len(reasons) > 0 {
			reason = strings.Join(reasons, reasonSeparator)
		}

		recs = append(recs, Recommendation{
			Card:             card,
			MatchScore:       min(score, maxMatchScore),
			EstimatedSavings: int(float64(profile.Total()) * 0.02 * (float64(score) / 100)),
			Reason:           reason,
		})
	}

	// Stable keeps catalog order for equal scores.
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchScore > recs[j].MatchScore
	})

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}
