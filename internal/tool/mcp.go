package tool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"geeknews/internal/model"
)

// RegisterTools registers the GeekNews tools on the MCP server.
func RegisterTools(s *server.MCPServer, h *Handler) {
	getArticles := mcp.NewTool("get_articles",
		mcp.WithDescription("Fetch articles from a GeekNews listing page, ordered by page rank"),
		mcp.WithString("category",
			mcp.Description("Listing category"),
			mcp.Enum("top", "new", "ask", "show"),
			mcp.DefaultString(string(model.CategoryTop)),
		),
		mcp.WithNumber("count",
			mcp.Description(fmt.Sprintf("Number of articles to return (at most %d)", h.cfg.MaxCount)),
			mcp.DefaultNumber(float64(h.cfg.DefaultCount)),
		),
	)

	s.AddTool(getArticles, h.handleGetArticles)
}

// handleGetArticles adapts GetArticles to the MCP tool contract: either
// a JSON article list or a structured error payload, never a raw error.
func (h *Handler) handleGetArticles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category := req.GetString("category", string(model.CategoryTop))
	count := req.GetInt("count", h.cfg.DefaultCount)

	articles, err := h.GetArticles(ctx, category, count)
	if err != nil {
		var toolErr *ToolError
		if errors.As(err, &toolErr) {
			payload, _ := json.Marshal(ErrorResponse{Error: toolErr})
			return mcp.NewToolResultError(string(payload)), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}

	payload, err := json.Marshal(ArticlesResponse{Articles: articles})
	if err != nil {
		return nil, fmt.Errorf("encoding articles: %w", err)
	}
	return mcp.NewToolResultText(string(payload)), nil
}
