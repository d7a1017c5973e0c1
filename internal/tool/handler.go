// Package tool implements the get_articles tool: input validation, the
// fetch→parse pipeline, and the structured response contract.
package tool

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"geeknews/internal/client"
	"geeknews/internal/config"
	"geeknews/internal/model"
	"geeknews/internal/parser"
)

// Fetcher fetches raw listing HTML for a category.
type Fetcher interface {
	FetchListing(ctx context.Context, category model.Category) (string, error)
}

// Handler validates tool inputs and runs the fetch→parse pipeline.
type Handler struct {
	cfg     *config.Config
	fetcher Fetcher
	parser  *parser.Parser
	logger  *logrus.Logger
}

// New wires a handler from the loaded configuration.
func New(cfg *config.Config, logger *logrus.Logger) (*Handler, error) {
	p, err := parser.New(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("creating parser: %w", err)
	}

	return &Handler{
		cfg:     cfg,
		fetcher: client.New(cfg, logger),
		parser:  p,
		logger:  logger,
	}, nil
}

// NewWithDeps creates a handler with injected dependencies.
func NewWithDeps(cfg *config.Config, fetcher Fetcher, p *parser.Parser, logger *logrus.Logger) *Handler {
	return &Handler{cfg: cfg, fetcher: fetcher, parser: p, logger: logger}
}

// DefaultCount returns the configured count used when the caller omits
// the parameter.
func (h *Handler) DefaultCount() int {
	return h.cfg.DefaultCount
}

// GetArticles returns up to count articles for the named category.
// Counts above the configured maximum are clamped silently; every
// failure surfaces as *ToolError, nothing else escapes this boundary.
func (h *Handler) GetArticles(ctx context.Context, categoryName string, count int) ([]model.Article, error) {
	category, err := model.ParseCategory(categoryName)
	if err != nil {
		return nil, &ToolError{Kind: KindInvalidCategory, Message: err.Error()}
	}

	if count < 1 {
		return nil, &ToolError{Kind: KindInvalidCount, Message: fmt.Sprintf("count must be a positive integer, got %d", count)}
	}
	if count > h.cfg.MaxCount {
		count = h.cfg.MaxCount
	}

	html, err := h.fetcher.FetchListing(ctx, category)
	if err != nil {
		h.logger.WithError(err).WithField("category", category).Warn("listing fetch failed")

		var upstream *client.UpstreamError
		if errors.As(err, &upstream) && upstream.Status != 0 {
			return nil, &ToolError{
				Kind:    KindUpstreamUnavailable,
				Message: fmt.Sprintf("GeekNews returned status %d", upstream.Status),
			}
		}
		return nil, &ToolError{
			Kind:    KindUpstreamUnavailable,
			Message: "GeekNews is unreachable: " + err.Error(),
		}
	}

	articles, err := h.parser.ParseArticles(html, count)
	if err != nil {
		h.logger.WithError(err).WithField("category", category).Error("listing parse failed")

		if errors.Is(err, parser.ErrUnexpectedPageStructure) {
			return nil, &ToolError{
				Kind:    KindUnexpectedPageStructure,
				Message: "listing page did not contain the expected article container",
			}
		}
		return nil, &ToolError{Kind: KindUnexpectedPageStructure, Message: err.Error()}
	}

	h.logger.WithFields(logrus.Fields{
		"category": category,
		"count":    len(articles),
	}).Info("articles fetched")

	return articles, nil
}

// ArticlesResponse is the success payload returned to the caller.
type ArticlesResponse struct {
	Articles []model.Article `json:"articles"`
}

// ErrorResponse is the failure payload returned to the caller.
type ErrorResponse struct {
	Error *ToolError `json:"error"`
}
