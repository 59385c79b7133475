package vision

import "encoding/json"

// ExtractItemsJSON pulls an item list out of free-form model output.
//
// Grammar: the first balanced `[...]` span in the text, where brackets
// inside JSON string literals (including escaped quotes) do not count
// toward balance. The span is then parsed as a JSON array of items.
// Returns ok=false when no such span exists or the span is not valid JSON;
// the caller decides the fallback policy.
func ExtractItemsJSON(text string) ([]Item, bool) {
	span, found := firstBalancedArray(text)
	if !found {
		return nil, false
	}

	var items []Item
	if err := json.Unmarshal([]byte(span), &items); err != nil {
		return nil, false
	}
	return items, true
}

func firstBalancedArray(text string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, r := range text {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}

		switch r {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '[':
			if depth == 0 {
				start = i
			}
			depth++
		case ']':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}
