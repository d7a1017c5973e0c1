// Package parser extracts article records from GeekNews listing HTML.
package parser

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"geeknews/internal/model"
)

// ErrUnexpectedPageStructure signals that the listing container is
// missing. A missing container means the upstream markup changed and
// must not be conflated with a page that genuinely has no articles.
var ErrUnexpectedPageStructure = errors.New("article list container not found")

// scanFactor bounds how many raw rows are examined per request so a
// corrupted page cannot cause unbounded work: at most scanFactor*limit
// rows are read while skipping malformed ones.
const scanFactor = 3

// Parser turns GeekNews listing HTML into article records. It holds no
// mutable state and is safe for concurrent use.
type Parser struct {
	baseURL *url.URL

	pointsPattern  *regexp.Regexp
	authorPattern  *regexp.Regexp
	timePattern    *regexp.Regexp
	commentPattern *regexp.Regexp
}

// New creates a parser that resolves relative links against baseURL.
func New(baseURL string) (*Parser, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}

	return &Parser{
		baseURL:        base,
		pointsPattern:  regexp.MustCompile(`(\d+)\s*points?`),
		authorPattern:  regexp.MustCompile(`by\s+(\S+)`),
		timePattern:    regexp.MustCompile(`\d+시간전|\d+분전|\d+일전`),
		commentPattern: regexp.MustCompile(`댓글\s*(\d+)개`),
	}, nil
}

// ParseArticles extracts up to limit articles from listing HTML in
// document order. Ranks are assigned 1..n over the emitted items, so a
// skipped malformed row never leaves a gap.
func (p *Parser) ParseArticles(html string, limit int) ([]model.Article, error) {
	if limit < 1 {
		return []model.Article{}, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing listing HTML: %w", err)
	}

	container := doc.Find("div.topics").First()
	if container.Length() == 0 {
		return nil, ErrUnexpectedPageStructure
	}

	articles := make([]model.Article, 0, limit)
	maxScan := limit * scanFactor

	container.Find("div.topic_row").EachWithBreak(func(i int, row *goquery.Selection) bool {
		if i >= maxScan {
			return false
		}

		article, ok := p.parseRow(row)
		if !ok {
			return true
		}

		article.Rank = len(articles) + 1
		articles = append(articles, article)
		return len(articles) < limit
	})

	return articles, nil
}

// parseRow extracts one article from a topic row. ok is false when the
// row has no usable title link, in which case the row is skipped rather
// than emitted half-populated.
func (p *Parser) parseRow(row *goquery.Selection) (model.Article, bool) {
	title, link, ok := p.extractTitleAndURL(row)
	if !ok {
		return model.Article{}, false
	}

	article := model.Article{Title: title, URL: link}

	info := row.Find(".topicinfo").First()
	if info.Length() == 0 {
		// No metadata block at all: keep the item with field defaults.
		return article, true
	}

	infoText := strings.TrimSpace(info.Text())
	article.Points = p.extractPoints(info, infoText)
	article.Author = p.extractAuthor(info, infoText)
	article.Time = p.timePattern.FindString(infoText)
	article.CommentCount = p.extractCommentCount(info)

	return article, true
}

func (p *Parser) extractTitleAndURL(row *goquery.Selection) (title, link string, ok bool) {
	anchor := row.Find(".topictitle a").First()
	if anchor.Length() == 0 {
		return "", "", false
	}

	title = strings.TrimSpace(anchor.Text())
	if h1 := anchor.Find("h1").First(); h1.Length() > 0 {
		title = strings.TrimSpace(h1.Text())
	}

	href, hasHref := anchor.Attr("href")
	href = strings.TrimSpace(href)
	if title == "" || !hasHref || href == "" {
		return "", "", false
	}

	return title, p.resolveURL(href), true
}

// resolveURL makes a possibly-relative listing link absolute.
func (p *Parser) resolveURL(href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return p.baseURL.ResolveReference(ref).String()
}

func (p *Parser) extractPoints(info *goquery.Selection, infoText string) int {
	marker := info.Find("span[id^='tp']").First()
	if marker.Length() > 0 {
		if n, err := strconv.Atoi(strings.TrimSpace(marker.Text())); err == nil && n >= 0 {
			return n
		}
	}
	if m := p.pointsPattern.FindStringSubmatch(infoText); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}
	return 0
}

func (p *Parser) extractAuthor(info *goquery.Selection, infoText string) string {
	if author := info.Find("a[href^='/user']").First(); author.Length() > 0 {
		return strings.TrimSpace(author.Text())
	}
	if m := p.authorPattern.FindStringSubmatch(infoText); m != nil {
		return m[1]
	}
	return ""
}

func (p *Parser) extractCommentCount(info *goquery.Selection) int {
	comment := info.Find("a.u").First()
	if comment.Length() == 0 {
		return 0
	}
	if m := p.commentPattern.FindStringSubmatch(comment.Text()); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}
	return 0
}
