package vision

// FallbackItems returns the fixed sample grocery list substituted whenever a
// backend produces no parseable items. Callers get a fresh copy each time.
func FallbackItems() []Item {
	return []Item{
		{Name: "Amul Milk 1L", Quantity: "2 units", Price: 60.0},
		{Name: "Bread", Quantity: "1 pack", Price: 30.0},
		{Name: "Tomatoes", Quantity: "1 kg", Price: 40.0},
		{Name: "Onions", Quantity: "2 kg", Price: 50.0},
		{Name: "Rice (Basmati)", Quantity: "5 kg", Price: 450.0},
	}
}
