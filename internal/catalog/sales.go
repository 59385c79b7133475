package catalog

import (
	"strings"

	"github.com/google/uuid"

	"baniya/internal/core"
)

var sales = withSaleIDs([]core.SaleEvent{
	{Platform: "Amazon", EventName: "Great Indian Festival", StartDate: "2025-02-05", EndDate: "2025-02-12", ExpectedDiscount: "40-80%", Categories: []string{"Electronics", "Fashion", "Home"}, Confidence: "95%"},
	{Platform: "Flipkart", EventName: "Big Billion Days", StartDate: "2025-02-10", EndDate: "2025-02-17", ExpectedDiscount: "50-85%", Categories: []string{"Mobiles", "TVs", "Appliances"}, Confidence: "98%"},
	{Platform: "Amazon", EventName: "Prime Day", StartDate: "2025-03-20", EndDate: "2025-03-22", ExpectedDiscount: "30-70%", Categories: []string{"Electronics", "Books", "Smart Home"}, Confidence: "92%"},
	{Platform: "Myntra", EventName: "End of Season Sale", StartDate: "2025-02-15", EndDate: "2025-02-28", ExpectedDiscount: "50-90%", Categories: []string{"Fashion", "Footwear", "Accessories"}, Confidence: "90%"},
	{Platform: "Flipkart", EventName: "Electronics Sale", StartDate: "2025-03-01", EndDate: "2025-03-07", ExpectedDiscount: "25-65%", Categories: []string{"Laptops", "Mobiles", "Accessories"}, Confidence: "88%"},
	{Platform: "Amazon", EventName: "Summer Sale", StartDate: "2025-04-10", EndDate: "2025-04-20", ExpectedDiscount: "30-60%", Categories: []string{"Fashion", "Home", "Beauty"}, Confidence: "85%"},
	{Platform: "Ajio", EventName: "Big Bold Sale", StartDate: "2025-02-20", EndDate: "2025-03-05", ExpectedDiscount: "40-80%", Categories: []string{"Ethnic Wear", "Western Wear"}, Confidence: "87%"},
	{Platform: "Flipkart", EventName: "Fashion Days", StartDate: "2025-03-15", EndDate: "2025-03-25", ExpectedDiscount: "50-80%", Categories: []string{"Clothing", "Footwear"}, Confidence: "91%"},
})

func withSaleIDs(ss []core.SaleEvent) []core.SaleEvent {
	for i := range ss {
		ss[i].ID = uuid.NewString()
	}
	return ss
}

// Predictions returns sale events in catalog order. When platform is
// non-empty, only events whose platform matches case-insensitively are
// returned; an unknown platform yields an empty slice, not nil.
func Predictions(platform string) []core.SaleEvent {
	if platform == "" {
		return append([]core.SaleEvent(nil), sales...)
	}
	out := make([]core.SaleEvent, 0, len(sales))
	for _, s := range sales {
		if strings.EqualFold(s.Platform, platform) {
			out = append(out, s)
		}
	}
	return out
}
