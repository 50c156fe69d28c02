package faq

import (
	"log"
	"os"
	"strings"
)

// Store loads the FAQ document from disk. The document is read fresh on
// every call so edits to the knowledge base show up without a restart.
type Store struct {
	path string
}

// NewStore creates a Store reading from the given document path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the document path this store reads from.
func (s *Store) Path() string { return s.path }

// Load reads and parses the FAQ document. It never fails the caller: a
// read error is logged and yields an empty store.
func (s *Store) Load() []Section {
	content, err := os.ReadFile(s.path)
	if err != nil {
		log.Printf("faq: reading %s: %v", s.path, err)
		return nil
	}
	return Parse(string(content))
}

// Parse converts the FAQ document into sections. The grammar is
// line-oriented: "### " starts a section, "**Q:" starts an item with an
// empty answer, "A:" fills the answer of the most recent item. Anything
// else is ignored, so answers are single-line. An "A:" with no preceding
// question in its section is dropped. Items that appear before the first
// heading never get flushed.
func Parse(content string) []Section {
	var sections []Section
	var current *Section

	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)

		switch {
		case strings.HasPrefix(line, "### "):
			if current != nil {
				sections = append(sections, *current)
			}
			current = &Section{Title: strings.TrimSpace(strings.TrimPrefix(line, "### "))}

		case strings.HasPrefix(line, "**Q:"):
			if current == nil {
				continue
			}
			q := strings.TrimPrefix(line, "**Q:")
			q = strings.Replace(q, "**", "", 1)
			current.Items = append(current.Items, Item{Question: strings.TrimSpace(q)})

		case strings.HasPrefix(line, "A:"):
			if current == nil || len(current.Items) == 0 {
				continue
			}
			current.Items[len(current.Items)-1].Answer = strings.TrimSpace(strings.TrimPrefix(line, "A:"))
		}
	}

	if current != nil {
		sections = append(sections, *current)
	}
	return sections
}
