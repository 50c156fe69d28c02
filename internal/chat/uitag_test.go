package chat

import "testing"

func TestExtractUITag(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		tag      string
		stripped string
	}{
		{"bracket prefix", "[starRating] How was your experience?", "starRating", "How was your experience?"},
		{"bracket text", "[text] Fees start at 1%.", "text", "Fees start at 1%."},
		{"bracket no space", "[contactForm]Leave your details.", "contactForm", "Leave your details."},
		{"trailing json", `Please rate us. {"component": "starRating"}`, "starRating", "Please rate us."},
		{"trailing json tight", `Pick a colour.{"component":"colorPicker"}`, "colorPicker", "Pick a colour."},
		{"no tag", "Transfers take 1-3 business days.", "text", "Transfers take 1-3 business days."},
		{"bracket mid-sentence ignored", "See [text] in the docs.", "text", "See [text] in the docs."},
		{"bracket wins over trailing", `[starRating] Rate us. {"component": "text"}`, "starRating", `Rate us. {"component": "text"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tag, stripped := ExtractUITag(tc.in)
			if tag != tc.tag {
				t.Errorf("tag = %q, want %q", tag, tc.tag)
			}
			if stripped != tc.stripped {
				t.Errorf("stripped = %q, want %q", stripped, tc.stripped)
			}
		})
	}
}
