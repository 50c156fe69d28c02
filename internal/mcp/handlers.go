package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xunohq/support-chat/internal/chat"
	"github.com/xunohq/support-chat/internal/faq"
)

// handleFAQLookup answers one question from the FAQ knowledge base.
func (s *Server) handleFAQLookup(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: question"), nil
	}

	resp := s.composer.AnswerQuestion(question)
	switch resp.Type {
	case chat.KindSingleQA:
		return mcp.NewToolResultText(fmt.Sprintf("Q: %s\nA: %s", resp.Question, resp.Answer)), nil
	case chat.KindAccordion:
		return mcp.NewToolResultText(formatSections(resp.Sections)), nil
	default:
		return mcp.NewToolResultText(resp.Message), nil
	}
}

// handleListFAQSections returns the whole knowledge base.
func (s *Server) handleListFAQSections(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sections := s.composer.Sections()
	if len(sections) == 0 {
		return mcp.NewToolResultText("The FAQ knowledge base is empty."), nil
	}
	return mcp.NewToolResultText(formatSections(sections)), nil
}

func formatSections(sections []faq.Section) string {
	var b strings.Builder
	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "## %s\n", sec.Title)
		for _, item := range sec.Items {
			fmt.Fprintf(&b, "Q: %s\nA: %s\n", item.Question, item.Answer)
		}
	}
	return strings.TrimSpace(b.String())
}
