package faq

import "testing"

func testSections() []Section {
	return []Section{
		{
			Title: "Fees",
			Items: []Item{
				{Question: "What are your fees?", Answer: "1% flat fee."},
				{Question: "What exchange rate do you use?", Answer: "The mid-market rate."},
			},
		},
		{
			Title: "Transfers",
			Items: []Item{
				{Question: "How long does a transfer take?", Answer: "Minutes."},
				{Question: "Can I cancel a transfer?", Answer: "Before pickup, yes."},
			},
		},
	}
}

func TestBestMatchFindsOverlap(t *testing.T) {
	m := BestMatch(testSections(), "tell me about your fees please")
	if m == nil {
		t.Fatal("expected a match")
	}
	if m.Question != "What are your fees?" {
		t.Errorf("question = %q", m.Question)
	}
	if m.Section != "Fees" {
		t.Errorf("section = %q", m.Section)
	}
}

func TestBestMatchIsCaseInsensitive(t *testing.T) {
	upper := BestMatch(testSections(), "FEES")
	lower := BestMatch(testSections(), "fees")

	if upper == nil || lower == nil {
		t.Fatal("expected matches for both casings")
	}
	if upper.Question != "What are your fees?" {
		t.Errorf("question = %q", upper.Question)
	}
	if upper.Question != lower.Question {
		t.Errorf("casing changed the match: %q vs %q", upper.Question, lower.Question)
	}
}

func TestBestMatchReturnsNilOnZeroScore(t *testing.T) {
	if m := BestMatch(testSections(), "xyz completely unrelated"); m != nil {
		t.Errorf("expected nil, got %+v", m)
	}
}

func TestBestMatchTieKeepsFirstInSourceOrder(t *testing.T) {
	sections := []Section{
		{Title: "A", Items: []Item{{Question: "transfer limits", Answer: "first"}}},
		{Title: "B", Items: []Item{{Question: "transfer speed", Answer: "second"}}},
	}

	// "transfer" scores 1 against both; the earlier item must win.
	m := BestMatch(sections, "transfer")
	if m == nil {
		t.Fatal("expected a match")
	}
	if m.Answer != "first" {
		t.Errorf("tie broke to %q, want the first item", m.Answer)
	}
}

func TestBestMatchDuplicateWordsCountOnce(t *testing.T) {
	sections := []Section{
		{Title: "A", Items: []Item{{Question: "fees fees fees", Answer: "dup"}}},
		{Title: "B", Items: []Item{{Question: "fees and rates", Answer: "two words"}}},
	}

	m := BestMatch(sections, "fees rates")
	if m == nil {
		t.Fatal("expected a match")
	}
	if m.Answer != "two words" {
		t.Errorf("got %q; repeated words must not inflate the score", m.Answer)
	}
}

func TestTopMatchesLimitsAndExcludesZeroScores(t *testing.T) {
	matches := TopMatches(testSections(), "how long does a transfer take", 2)

	if len(matches) > 2 {
		t.Fatalf("expected at most 2 matches, got %d", len(matches))
	}
	for _, m := range matches {
		if m.Score <= 0 {
			t.Errorf("zero-score match leaked into ranked results: %+v", m)
		}
	}
	if len(matches) == 0 || matches[0].Question != "How long does a transfer take?" {
		t.Errorf("unexpected top match: %+v", matches)
	}
}

func TestTopMatchesEmptyWhenNothingOverlaps(t *testing.T) {
	if matches := TopMatches(testSections(), "zzz qqq", 2); len(matches) != 0 {
		t.Errorf("expected no matches, got %d", len(matches))
	}
}

func TestTopMatchesStableOnTies(t *testing.T) {
	sections := []Section{
		{Title: "A", Items: []Item{
			{Question: "transfer limits", Answer: "first"},
			{Question: "transfer speed", Answer: "second"},
			{Question: "transfer fees", Answer: "third"},
		}},
	}

	matches := TopMatches(sections, "transfer", 3)
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}
	for i, want := range []string{"first", "second", "third"} {
		if matches[i].Answer != want {
			t.Errorf("matches[%d] = %q, want %q", i, matches[i].Answer, want)
		}
	}
}

func TestFormatAnswerBullets(t *testing.T) {
	got := FormatAnswer("Three steps: 1. Sign up 2. Add a recipient 3. Send")
	want := "Three steps:\n • Sign up\n • Add a recipient\n • Send"
	if got != want {
		t.Errorf("FormatAnswer = %q, want %q", got, want)
	}
}

func TestFormatAnswerPlainTextUnchanged(t *testing.T) {
	in := "We charge a 1% flat fee on every transfer."
	if got := FormatAnswer(in); got != in {
		t.Errorf("FormatAnswer changed plain text: %q", got)
	}
}
