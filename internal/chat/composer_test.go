package chat

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xunohq/support-chat/internal/faq"
	"github.com/xunohq/support-chat/internal/llm"
)

const sampleFAQ = `### Fees and Rates

**Q: What are your fees?
A: Our fees start at 1% per transfer.

**Q: Do you charge hidden costs?
A: No, the price you see is the price you pay.

### Transfer Process

**Q: How long does a transfer take?
A: Most transfers arrive within 1-3 business days.
`

type fakeProvider struct {
	reply   string
	err     error
	lastReq llm.CompletionRequest
	calls   int
}

func (f *fakeProvider) Complete(_ context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &llm.CompletionResponse{Content: f.reply}, nil
}

func (f *fakeProvider) Name() string { return "fake" }

func writeFAQ(t *testing.T) *faq.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "faq.md")
	if err := os.WriteFile(path, []byte(sampleFAQ), 0o644); err != nil {
		t.Fatal(err)
	}
	return faq.NewStore(path)
}

func newTestComposer(t *testing.T, mode Mode, provider llm.Provider) (*Composer, *SessionStore) {
	t.Helper()
	sessions := NewSessionStore(0, 0)
	t.Cleanup(sessions.Stop)
	c := NewComposer(ComposerConfig{Mode: mode, Model: "test-model"}, writeFAQ(t), sessions, provider)
	return c, sessions
}

func TestRespondRejectsEmptyMessage(t *testing.T) {
	c, sessions := newTestComposer(t, ModeFAQ, nil)

	resp, _, err := c.Respond(context.Background(), "   ", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Type != KindError {
		t.Errorf("type = %q, want error", resp.Type)
	}
	if sessions.Len() != 0 {
		t.Error("empty message must not create a session")
	}
}

func TestRespondGreeting(t *testing.T) {
	c, _ := newTestComposer(t, ModeFAQ, nil)

	resp, id, err := c.Respond(context.Background(), "hello", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Type != KindSingleQA || resp.Question != "Welcome" {
		t.Errorf("got %+v, want welcome single_qa", resp)
	}
	if resp.SessionID != id || id == "" {
		t.Errorf("response must carry the session id, got %q / %q", resp.SessionID, id)
	}
}

func TestRespondFAQCommandReturnsAccordion(t *testing.T) {
	c, _ := newTestComposer(t, ModeFAQ, nil)

	resp, _, err := c.Respond(context.Background(), "show me the faq please", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Type != KindAccordion {
		t.Fatalf("type = %q, want accordion", resp.Type)
	}
	if len(resp.Sections) != 2 {
		t.Errorf("got %d sections, want 2", len(resp.Sections))
	}
}

func TestRespondFAQModeBestMatch(t *testing.T) {
	c, _ := newTestComposer(t, ModeFAQ, nil)

	resp, _, err := c.Respond(context.Background(), "what fees do you charge?", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Type != KindSingleQA {
		t.Fatalf("type = %q, want single_qa", resp.Type)
	}
	if resp.Question != "What are your fees?" {
		t.Errorf("matched %q, want the fees question", resp.Question)
	}
}

func TestRespondFAQModeFallback(t *testing.T) {
	c, _ := newTestComposer(t, ModeFAQ, nil)

	resp, _, err := c.Respond(context.Background(), "quantum entanglement", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Type != KindError {
		t.Fatalf("type = %q, want error fallback", resp.Type)
	}
	if !strings.Contains(resp.Message, "Type 'faq'") {
		t.Errorf("fallback message missing hint: %q", resp.Message)
	}
}

func TestRespondAssistantDelegates(t *testing.T) {
	provider := &fakeProvider{reply: "[starRating] How would you rate our service?"}
	c, sessions := newTestComposer(t, ModeAssistant, provider)

	resp, id, err := c.Respond(context.Background(), "I want to leave feedback about fees", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Type != KindText {
		t.Fatalf("type = %q, want text", resp.Type)
	}
	if resp.Text != "How would you rate our service?" {
		t.Errorf("tag not stripped: %q", resp.Text)
	}
	if resp.UIComponent == nil || resp.UIComponent.Type != "starRating" {
		t.Errorf("uiComponent = %+v, want starRating", resp.UIComponent)
	}

	if provider.lastReq.Model != "test-model" {
		t.Errorf("model = %q", provider.lastReq.Model)
	}
	if provider.lastReq.Temperature != 0.7 || provider.lastReq.MaxTokens != 1000 {
		t.Errorf("tunables not defaulted: %+v", provider.lastReq)
	}
	if !strings.Contains(provider.lastReq.System, "Relevant FAQ entries") {
		t.Error("system prompt missing FAQ context for an overlapping message")
	}

	sess, _ := sessions.GetOrCreate(id)
	hist := sessions.History(sess)
	if len(hist) != 2 {
		t.Fatalf("history has %d messages, want user+assistant", len(hist))
	}
	if hist[1].Content != "How would you rate our service?" {
		t.Errorf("assistant turn stored with tag: %q", hist[1].Content)
	}
}

func TestRespondAssistantNoContextWithoutOverlap(t *testing.T) {
	provider := &fakeProvider{reply: "Happy to help."}
	c, _ := newTestComposer(t, ModeAssistant, provider)

	if _, _, err := c.Respond(context.Background(), "zzz qqq", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(provider.lastReq.System, "Relevant FAQ entries") {
		t.Error("system prompt should not carry FAQ context without any match")
	}
}

func TestRespondAssistantCarriesHistory(t *testing.T) {
	provider := &fakeProvider{reply: "Sure."}
	c, _ := newTestComposer(t, ModeAssistant, provider)

	_, id, err := c.Respond(context.Background(), "first turn", "")
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := c.Respond(context.Background(), "second turn", id); err != nil {
		t.Fatal(err)
	}

	if len(provider.lastReq.Messages) != 3 {
		t.Fatalf("got %d messages, want user+assistant+user", len(provider.lastReq.Messages))
	}
	if provider.lastReq.Messages[2].Content != "second turn" {
		t.Errorf("last message = %q", provider.lastReq.Messages[2].Content)
	}
}

func TestRespondAssistantUpstreamError(t *testing.T) {
	provider := &fakeProvider{err: errors.New("boom")}
	c, sessions := newTestComposer(t, ModeAssistant, provider)

	_, id, err := c.Respond(context.Background(), "hello there assistant", "")
	if err == nil {
		t.Fatal("expected an error from the provider")
	}

	sess, _ := sessions.GetOrCreate(id)
	hist := sessions.History(sess)
	if len(hist) != 1 || hist[0].Role != "user" {
		t.Errorf("session should keep only the user message, got %+v", hist)
	}
}

func TestNewComposerForcesFAQModeWithoutProvider(t *testing.T) {
	c, _ := newTestComposer(t, ModeAssistant, nil)

	resp, _, err := c.Respond(context.Background(), "how long does a transfer take?", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Type != KindSingleQA {
		t.Errorf("type = %q, want single_qa from the FAQ", resp.Type)
	}
}

func TestAnswerQuestion(t *testing.T) {
	c, sessions := newTestComposer(t, ModeAssistant, &fakeProvider{reply: "unused"})

	resp := c.AnswerQuestion("hidden costs?")
	if resp.Type != KindSingleQA || resp.Question != "Do you charge hidden costs?" {
		t.Errorf("got %+v", resp)
	}
	if resp.SessionID != "" {
		t.Error("sessionless answer must not carry a session id")
	}
	if sessions.Len() != 0 {
		t.Error("AnswerQuestion must not create sessions")
	}

	if got := c.AnswerQuestion(""); got.Type != KindError {
		t.Errorf("empty question: got %q, want error", got.Type)
	}
}
