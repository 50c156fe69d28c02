package faq

import (
	"regexp"
	"strings"
)

var bulletMarker = regexp.MustCompile(`(?:\d+\.|-)\s`)

// FormatAnswer rewrites inline numbered or dashed lists as bullet lines so
// the widget renders them one per line. Answers without list markers pass
// through unchanged.
func FormatAnswer(answer string) string {
	parts := bulletMarker.Split(answer, -1)
	if len(parts) <= 1 {
		return answer
	}

	var b strings.Builder
	b.WriteString(strings.TrimSpace(parts[0]))
	for _, part := range parts[1:] {
		b.WriteString("\n • ")
		b.WriteString(strings.TrimSpace(part))
	}
	return b.String()
}

// FormatSections returns a copy of sections with every answer run through
// FormatAnswer, for accordion display.
func FormatSections(sections []Section) []Section {
	out := make([]Section, len(sections))
	for i, sec := range sections {
		items := make([]Item, len(sec.Items))
		for j, item := range sec.Items {
			items[j] = Item{Question: item.Question, Answer: FormatAnswer(item.Answer)}
		}
		out[i] = Section{Title: sec.Title, Items: items}
	}
	return out
}
