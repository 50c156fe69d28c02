package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/xunohq/support-chat/internal/chat"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the FAQ knowledge base as tools,
// so support agents' AI assistants can answer from the same canned content
// the widget uses.
type Server struct {
	composer *chat.Composer
	mcp      *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(composer *chat.Composer) *Server {
	s := &Server{composer: composer}

	s.mcp = server.NewMCPServer(
		"supportchat",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(faqLookupTool, s.handleFAQLookup)
	s.mcp.AddTool(listFAQSectionsTool, s.handleListFAQSections)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
