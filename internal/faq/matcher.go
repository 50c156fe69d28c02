package faq

import (
	"regexp"
	"sort"
	"strings"
)

var wordRe = regexp.MustCompile(`\w+`)

// wordSet lowercases s and extracts its word runs into a set of unique
// words. Punctuation is not part of a word, so "fees?" matches "fees".
func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range wordRe.FindAllString(strings.ToLower(s), -1) {
		set[w] = struct{}{}
	}
	return set
}

// score counts the words the query shares with the candidate question.
func score(question string, query map[string]struct{}) int {
	n := 0
	for w := range wordSet(question) {
		if _, ok := query[w]; ok {
			n++
		}
	}
	return n
}

// BestMatch returns the highest-scoring item across all sections, or nil
// when nothing shares a word with the query. Ties keep the first item seen
// in document order, so only a strictly greater score replaces the running
// best.
func BestMatch(sections []Section, query string) *Match {
	queryWords := wordSet(query)

	var best *Match
	bestScore := 0
	for _, sec := range sections {
		for _, item := range sec.Items {
			if sc := score(item.Question, queryWords); sc > bestScore {
				bestScore = sc
				best = &Match{
					Question: item.Question,
					Answer:   item.Answer,
					Section:  sec.Title,
					Score:    sc,
				}
			}
		}
	}
	return best
}

// TopMatches returns up to n items scoring above zero, ordered by
// descending score. Equal scores retain document order.
func TopMatches(sections []Section, query string, n int) []Match {
	queryWords := wordSet(query)

	var matches []Match
	for _, sec := range sections {
		for _, item := range sec.Items {
			if sc := score(item.Question, queryWords); sc > 0 {
				matches = append(matches, Match{
					Question: item.Question,
					Answer:   item.Answer,
					Section:  sec.Title,
					Score:    sc,
				})
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > n {
		matches = matches[:n]
	}
	return matches
}
