package faq

// Item is a single question/answer pair. Answer may be empty when the source
// document had no answer line for the question.
type Item struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Section is a titled group of items in document order.
type Section struct {
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// Match is a scored candidate returned by the matcher. Score is the number
// of words shared between the query and the question.
type Match struct {
	Question string
	Answer   string
	Section  string
	Score    int
}
