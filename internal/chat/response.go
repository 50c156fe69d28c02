package chat

import "github.com/xunohq/support-chat/internal/faq"

// Kind tags the response shapes the widget knows how to render. The set is
// closed; the transport switches on it exhaustively.
type Kind string

const (
	KindSingleQA  Kind = "single_qa"
	KindAccordion Kind = "accordion"
	KindError     Kind = "error"
	KindText      Kind = "text"
)

// UIComponent tells the widget which interactive component to show
// alongside an assistant reply.
type UIComponent struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// Response is the contract between the backend and the rendering layer.
// Exactly one payload group is populated, selected by Type.
type Response struct {
	Type Kind `json:"type"`

	// single_qa
	Question string `json:"question,omitempty"`
	Answer   string `json:"answer,omitempty"`

	// accordion
	Sections []faq.Section `json:"sections,omitempty"`

	// error
	Message string `json:"message,omitempty"`

	// text
	Text        string       `json:"response,omitempty"`
	UIComponent *UIComponent `json:"uiComponent,omitempty"`

	SessionID string `json:"sessionId,omitempty"`
}

// SingleQA builds a single question/answer response.
func SingleQA(question, answer string) Response {
	return Response{Type: KindSingleQA, Question: question, Answer: answer}
}

// Accordion builds a response carrying the full FAQ for accordion display.
func Accordion(sections []faq.Section) Response {
	return Response{Type: KindAccordion, Sections: sections}
}

// ErrorResponse builds an error-tagged response with a user-facing message.
func ErrorResponse(message string) Response {
	return Response{Type: KindError, Message: message}
}

// TextResponse builds a free-text assistant response with its UI hint.
func TextResponse(text string, component *UIComponent) Response {
	return Response{Type: KindText, Text: text, UIComponent: component}
}
