package mcp

import "github.com/mark3labs/mcp-go/mcp"

// faqLookupTool defines the faq_lookup MCP tool.
var faqLookupTool = mcp.NewTool("faq_lookup",
	mcp.WithDescription("Answer a customer question from the money-transfer FAQ knowledge base. Returns the best-matching question/answer pair, or the fallback topics when nothing matches."),
	mcp.WithString("question",
		mcp.Required(),
		mcp.Description("The customer's question in free text"),
	),
)

// listFAQSectionsTool defines the list_faq_sections MCP tool.
var listFAQSectionsTool = mcp.NewTool("list_faq_sections",
	mcp.WithDescription("List every section of the FAQ knowledge base with its question/answer pairs."),
)
