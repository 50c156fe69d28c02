package chat

import (
	"regexp"
	"strings"
)

// DefaultUITag is assumed when the assistant reply carries no tag.
const DefaultUITag = "text"

var (
	bracketTag  = regexp.MustCompile(`^\[([A-Za-z][A-Za-z0-9_-]*)\]\s*`)
	trailingTag = regexp.MustCompile(`\{\s*"component"\s*:\s*"([A-Za-z][A-Za-z0-9_-]*)"\s*\}\s*$`)
)

// ExtractUITag pulls the UI-hint tag out of an assistant reply and returns
// the tag and the reply with the tag stripped. Two grammars exist in the
// wild depending on which system prompt a deployment runs: a bracketed
// prefix like "[starRating] ..." and a trailing `{"component": "..."}`
// marker. The bracket form is canonical and tried first.
func ExtractUITag(text string) (tag string, stripped string) {
	if m := bracketTag.FindStringSubmatch(text); m != nil {
		return m[1], strings.TrimSpace(text[len(m[0]):])
	}
	if m := trailingTag.FindStringSubmatchIndex(text); m != nil {
		return text[m[2]:m[3]], strings.TrimSpace(text[:m[0]])
	}
	return DefaultUITag, strings.TrimSpace(text)
}
