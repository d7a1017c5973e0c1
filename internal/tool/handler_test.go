package tool

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"geeknews/internal/client"
	"geeknews/internal/config"
	"geeknews/internal/model"
	"geeknews/internal/parser"
)

const fixtureHTML = `<html><body><div class="topics">
	<div class="topic_row">
		<div class="topictitle"><a href="/topic?id=1"><h1>First</h1></a></div>
		<div class="topicinfo"><span id="tp1">10</span> points by <a href="/user?id=a">a</a> 1시간전 | <a class="u" href="/topic?id=1">댓글 2개</a></div>
	</div>
	<div class="topic_row">
		<div class="topictitle"><a href="/topic?id=2"><h1>Second</h1></a></div>
		<div class="topicinfo"><span id="tp2">20</span> points by <a href="/user?id=b">b</a> 2시간전 | <a class="u" href="/topic?id=2">댓글 4개</a></div>
	</div>
	<div class="topic_row">
		<div class="topictitle"><a href="/topic?id=3"><h1>Third</h1></a></div>
		<div class="topicinfo"><span id="tp3">30</span> points by <a href="/user?id=c">c</a> 3시간전 | <a class="u" href="/topic?id=3">댓글 6개</a></div>
	</div>
	<div class="topic_row">
		<div class="topictitle"><a href="/topic?id=4"><h1>Fourth</h1></a></div>
		<div class="topicinfo"><span id="tp4">40</span> points by <a href="/user?id=d">d</a> 4시간전 | <a class="u" href="/topic?id=4">댓글 8개</a></div>
	</div>
	<div class="topic_row">
		<div class="topictitle"><a href="/topic?id=5"><h1>Fifth</h1></a></div>
		<div class="topicinfo"><span id="tp5">50</span> points by <a href="/user?id=e">e</a> 5시간전 | <a class="u" href="/topic?id=5">댓글 10개</a></div>
	</div>
</div></body></html>`

// fakeFetcher serves canned HTML or a canned error.
type fakeFetcher struct {
	html string
	err  error

	lastCategory model.Category
}

func (f *fakeFetcher) FetchListing(ctx context.Context, category model.Category) (string, error) {
	f.lastCategory = category
	if f.err != nil {
		return "", f.err
	}
	return f.html, nil
}

func newTestHandler(t *testing.T, fetcher Fetcher) *Handler {
	t.Helper()

	cfg := &config.Config{
		BaseURL:        "https://news.hada.io",
		DefaultCount:   2,
		MaxCount:       3,
		RequestTimeout: 10,
	}
	p, err := parser.New(cfg.BaseURL)
	if err != nil {
		t.Fatalf("parser.New failed: %v", err)
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return NewWithDeps(cfg, fetcher, p, logger)
}

func expectKind(t *testing.T, err error, kind Kind) *ToolError {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected %s error, got nil", kind)
	}
	var toolErr *ToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("Expected *ToolError, got %T: %v", err, err)
	}
	if toolErr.Kind != kind {
		t.Fatalf("Expected kind %s, got %s (%s)", kind, toolErr.Kind, toolErr.Message)
	}
	return toolErr
}

func TestGetArticles(t *testing.T) {
	fetcher := &fakeFetcher{html: fixtureHTML}
	h := newTestHandler(t, fetcher)

	articles, err := h.GetArticles(context.Background(), "new", 2)
	if err != nil {
		t.Fatalf("GetArticles failed: %v", err)
	}

	if fetcher.lastCategory != model.CategoryNew {
		t.Errorf("Expected category 'new' passed to fetcher, got '%s'", fetcher.lastCategory)
	}
	if len(articles) != 2 {
		t.Fatalf("Expected 2 articles, got %d", len(articles))
	}
	for i, a := range articles {
		if a.Rank != i+1 {
			t.Errorf("Article %d: expected rank %d, got %d", i, i+1, a.Rank)
		}
	}
	if articles[0].Title != "First" || articles[1].Title != "Second" {
		t.Errorf("Unexpected titles: %q, %q", articles[0].Title, articles[1].Title)
	}
}

func TestGetArticlesInvalidCategory(t *testing.T) {
	h := newTestHandler(t, &fakeFetcher{html: fixtureHTML})

	_, err := h.GetArticles(context.Background(), "weekly", 2)
	toolErr := expectKind(t, err, KindInvalidCategory)
	if !strings.Contains(toolErr.Message, "weekly") {
		t.Errorf("Expected message to name the bad category, got %q", toolErr.Message)
	}
}

func TestGetArticlesNonPositiveCount(t *testing.T) {
	h := newTestHandler(t, &fakeFetcher{html: fixtureHTML})

	for _, count := range []int{0, -1, -100} {
		_, err := h.GetArticles(context.Background(), "top", count)
		expectKind(t, err, KindInvalidCount)
	}
}

func TestGetArticlesClampsToMax(t *testing.T) {
	h := newTestHandler(t, &fakeFetcher{html: fixtureHTML})

	// MaxCount is 3; asking for 10 is not an error, just clamped.
	articles, err := h.GetArticles(context.Background(), "top", 10)
	if err != nil {
		t.Fatalf("GetArticles failed: %v", err)
	}
	if len(articles) != 3 {
		t.Errorf("Expected clamp to 3 articles, got %d", len(articles))
	}
}

func TestGetArticlesUpstreamStatus(t *testing.T) {
	fetcher := &fakeFetcher{err: &client.UpstreamError{Status: 503}}
	h := newTestHandler(t, fetcher)

	_, err := h.GetArticles(context.Background(), "top", 2)
	toolErr := expectKind(t, err, KindUpstreamUnavailable)
	if !strings.Contains(toolErr.Message, "503") {
		t.Errorf("Expected message to include the status code, got %q", toolErr.Message)
	}
}

func TestGetArticlesUpstreamUnreachable(t *testing.T) {
	fetcher := &fakeFetcher{err: &client.UpstreamError{Err: errors.New("connection refused")}}
	h := newTestHandler(t, fetcher)

	_, err := h.GetArticles(context.Background(), "top", 2)
	expectKind(t, err, KindUpstreamUnavailable)
}

func TestGetArticlesUnexpectedStructure(t *testing.T) {
	fetcher := &fakeFetcher{html: "<html><body><p>new design</p></body></html>"}
	h := newTestHandler(t, fetcher)

	_, err := h.GetArticles(context.Background(), "top", 2)
	expectKind(t, err, KindUnexpectedPageStructure)
}

func TestGetArticlesEmptyListing(t *testing.T) {
	fetcher := &fakeFetcher{html: `<html><body><div class="topics"></div></body></html>`}
	h := newTestHandler(t, fetcher)

	articles, err := h.GetArticles(context.Background(), "top", 2)
	if err != nil {
		t.Fatalf("Expected empty list without error, got %v", err)
	}
	if len(articles) != 0 {
		t.Errorf("Expected 0 articles, got %d", len(articles))
	}
}
