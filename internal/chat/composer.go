package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/xunohq/support-chat/internal/faq"
	"github.com/xunohq/support-chat/internal/llm"
)

// Mode selects how the composer answers messages that are not canned
// replies: from the FAQ alone, or by delegating to the completion service.
type Mode string

const (
	ModeFAQ       Mode = "faq"
	ModeAssistant Mode = "assistant"
)

// faqContextSize is how many ranked FAQ matches are folded into the
// assistant's system prompt.
const faqContextSize = 2

const personaPrompt = `You are the Xuno support assistant. You help customers of a money-transfer service with questions about fees, transfers, supported countries and their account. Be concise and friendly. Always start your response with the UI component to show in brackets, like [text], [starRating], [colorPicker], or [contactForm], followed by your reply.`

const welcomeAnswer = "Hi! I'm here to help you with information about Xuno's money transfer services. How can I assist you today?"

const fallbackMessage = "I couldn't find a specific answer to your question. You can:\n • Ask about our fees and rates\n • Learn about the transfer process\n • Check supported countries\n • Type 'faq' to see all available topics"

// ComposerConfig holds the tunables for a Composer.
type ComposerConfig struct {
	Mode        Mode
	Model       string
	Temperature float64
	MaxTokens   int
}

// Composer decides, per incoming message, whether to answer from the FAQ,
// delegate to the completion service, or fall back.
type Composer struct {
	cfg      ComposerConfig
	faq      *faq.Store
	sessions *SessionStore
	provider llm.Provider
}

// NewComposer creates a Composer. provider may be nil, in which case the
// composer always operates in FAQ mode.
func NewComposer(cfg ComposerConfig, faqStore *faq.Store, sessions *SessionStore, provider llm.Provider) *Composer {
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.7
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 1000
	}
	if provider == nil {
		cfg.Mode = ModeFAQ
	}
	return &Composer{cfg: cfg, faq: faqStore, sessions: sessions, provider: provider}
}

// Respond processes one conversation turn. The returned session id is
// fresh when the supplied one was empty or unknown. A non-nil error means
// the completion service failed; the caller converts it to a generic
// error response and logs the cause.
func (c *Composer) Respond(ctx context.Context, message, sessionID string) (Response, string, error) {
	if strings.TrimSpace(message) == "" {
		return ErrorResponse("Message is required"), sessionID, nil
	}

	sections := c.faq.Load()
	sess, id := c.sessions.GetOrCreate(sessionID)
	c.sessions.Append(sess, "user", message)

	if resp, ok := c.cannedReply(message, sections); ok {
		c.sessions.Touch(sess)
		resp.SessionID = id
		return resp, id, nil
	}

	if c.cfg.Mode == ModeAssistant {
		resp, err := c.assist(ctx, sess, message, sections)
		if err != nil {
			// Session keeps the user message; no assistant message is appended.
			return Response{}, id, err
		}
		c.sessions.Touch(sess)
		resp.SessionID = id
		return resp, id, nil
	}

	resp := c.faqReply(message, sections)
	c.sessions.Touch(sess)
	resp.SessionID = id
	return resp, id, nil
}

// AnswerQuestion answers a single question from the FAQ without touching
// any session. Used by the FAQ endpoint, the offline REPL and the MCP tools.
func (c *Composer) AnswerQuestion(question string) Response {
	if strings.TrimSpace(question) == "" {
		return ErrorResponse("Question is required")
	}
	sections := c.faq.Load()
	if resp, ok := c.cannedReply(question, sections); ok {
		return resp
	}
	return c.faqReply(question, sections)
}

// Sections returns the formatted FAQ for accordion display.
func (c *Composer) Sections() []faq.Section {
	return faq.FormatSections(c.faq.Load())
}

// cannedReply handles greetings and the "faq" command, which pre-empt both
// FAQ matching and assistant delegation.
func (c *Composer) cannedReply(message string, sections []faq.Section) (Response, bool) {
	lower := strings.ToLower(strings.TrimSpace(message))

	switch lower {
	case "hi", "hello", "hey":
		return SingleQA("Welcome", welcomeAnswer), true
	}

	if strings.Contains(lower, "faq") {
		return Accordion(faq.FormatSections(sections)), true
	}

	return Response{}, false
}

// faqReply answers from the single best FAQ match, or the fixed fallback.
func (c *Composer) faqReply(message string, sections []faq.Section) Response {
	if m := faq.BestMatch(sections, message); m != nil {
		return SingleQA(m.Question, faq.FormatAnswer(m.Answer))
	}
	return ErrorResponse(fallbackMessage)
}

// assist delegates the turn to the completion service with the full
// session history, enriching the system prompt with ranked FAQ context
// when any question overlaps the message.
func (c *Composer) assist(ctx context.Context, sess *Session, message string, sections []faq.Section) (Response, error) {
	system := personaPrompt
	if matches := faq.TopMatches(sections, message, faqContextSize); len(matches) > 0 {
		system += "\n\n" + faqContextBlock(matches)
	}

	history := c.sessions.History(sess)
	messages := make([]llm.Message, len(history))
	for i, m := range history {
		messages[i] = llm.Message{Role: llm.Role(m.Role), Content: m.Content}
	}

	resp, err := c.provider.Complete(ctx, llm.CompletionRequest{
		Model:       c.cfg.Model,
		System:      system,
		Messages:    messages,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return Response{}, fmt.Errorf("completion service: %w", err)
	}

	tag, text := ExtractUITag(resp.Content)
	c.sessions.Append(sess, string(llm.RoleAssistant), text)

	component := &UIComponent{Type: tag}
	if tag != DefaultUITag {
		component.Text = text
	}
	return TextResponse(text, component), nil
}

func faqContextBlock(matches []faq.Match) string {
	var b strings.Builder
	b.WriteString("Relevant FAQ entries:\n")
	for _, m := range matches {
		fmt.Fprintf(&b, "Q: %s\nA: %s\n", m.Question, m.Answer)
	}
	return strings.TrimSpace(b.String())
}
