package vision

import "testing"

func TestExtractItemsJSON(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		want  int
		ok    bool
		first string
	}{
		{
			name:  "bare array",
			text:  `[{"name": "Milk", "quantity": "1 L", "price": 60.0}]`,
			want:  1,
			ok:    true,
			first: "Milk",
		},
		{
			name:  "array inside prose",
			text:  "Here are the items:\n```json\n[{\"name\": \"Bread\", \"quantity\": \"1 pack\", \"price\": 30}]\n```\nHope that helps!",
			want:  1,
			ok:    true,
			first: "Bread",
		},
		{
			name:  "brackets inside string literals",
			text:  `[{"name": "Rice [Basmati]", "quantity": "5 kg", "price": 450}]`,
			want:  1,
			ok:    true,
			first: "Rice [Basmati]",
		},
		{
			name:  "escaped quote before bracket",
			text:  `[{"name": "5\" [pack]", "quantity": "1", "price": 10}]`,
			want:  1,
			ok:    true,
			first: `5" [pack]`,
		},
		{
			name: "multiple items",
			text: `sure! [{"name": "A", "quantity": "1", "price": 1}, {"name": "B", "quantity": "2", "price": 2}] done`,
			want: 2,
			ok:   true,
		},
		{name: "no array at all", text: "I could not read the image, sorry.", ok: false},
		{name: "unbalanced", text: `[{"name": "A", "quantity": "1", "price": 1}`, ok: false},
		{name: "first span not valid JSON", text: "[not json] but later [still prose]", ok: false},
		{name: "empty input", text: "", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items, ok := ExtractItemsJSON(tc.text)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if !tc.ok {
				return
			}
			if len(items) != tc.want {
				t.Fatalf("got %d items, want %d", len(items), tc.want)
			}
			if tc.first != "" && items[0].Name != tc.first {
				t.Fatalf("first item %q, want %q", items[0].Name, tc.first)
			}
		})
	}
}

func TestFallbackItemsIsFreshCopy(t *testing.T) {
	a := FallbackItems()
	if len(a) != 5 {
		t.Fatalf("expected 5 fallback items, got %d", len(a))
	}
	a[0].Name = "mutated"
	if b := FallbackItems(); b[0].Name == "mutated" {
		t.Fatal("FallbackItems shares state between calls")
	}
}
