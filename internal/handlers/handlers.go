package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"geeknews/internal/model"
	"geeknews/internal/tool"
)

// articlesHandler serves the article listing for one category. The
// response shape matches the MCP tool payload.
func (s *Server) articlesHandler(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = string(model.CategoryTop)
	}

	count := s.handler.DefaultCount()
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, &tool.ToolError{
				Kind:    tool.KindInvalidCount,
				Message: fmt.Sprintf("count must be an integer, got %q", raw),
			})
			return
		}
		count = parsed
	}

	articles, err := s.handler.GetArticles(r.Context(), category, count)
	if err != nil {
		var toolErr *tool.ToolError
		if errors.As(err, &toolErr) {
			writeError(w, statusFor(toolErr.Kind), toolErr)
			return
		}
		writeError(w, http.StatusInternalServerError, &tool.ToolError{
			Kind:    tool.KindUpstreamUnavailable,
			Message: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, tool.ArticlesResponse{Articles: articles})
}

// statusFor maps tool error kinds onto HTTP status codes: caller errors
// are 400, anything upstream-shaped is 502.
func statusFor(kind tool.Kind) int {
	switch kind {
	case tool.KindInvalidCategory, tool.KindInvalidCount:
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, toolErr *tool.ToolError) {
	writeJSON(w, status, tool.ErrorResponse{Error: toolErr})
}
