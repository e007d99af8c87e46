package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/newsdraft/newsdraft/pkg/domain"
)

// Parser fetches and parses RSS/Atom feeds into entries
type Parser struct {
	client     *http.Client
	userAgent  string
	maxEntries int
}

// NewParser creates a new feed parser. maxEntries limits how many entries
// Parse returns, zero means unlimited.
func NewParser(timeout time.Duration, userAgent string, maxEntries int) *Parser {
	return &Parser{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent:  userAgent,
		maxEntries: maxEntries,
	}
}

// Parse fetches a feed from the given URL and returns its entries in feed order.
// Summaries are plain text, HTML from the feed is stripped.
func (p *Parser) Parse(ctx context.Context, url string) ([]domain.Entry, error) {
	body, err := p.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close()

	parser := gofeed.NewParser()
	parsed, err := parser.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	entries := make([]domain.Entry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if p.maxEntries > 0 && len(entries) >= p.maxEntries {
			break
		}

		entry := domain.Entry{
			Title: strings.TrimSpace(item.Title),
			Link:  item.Link,
		}

		// set GUID, fall back to link then to a synthetic one
		switch {
		case item.GUID != "":
			entry.GUID = item.GUID
		case item.Link != "":
			entry.GUID = item.Link
		default:
			entry.GUID = fmt.Sprintf("%s-%s", parsed.Title, item.Title)
		}

		// summary from description, content as fallback
		entry.Summary = sanitizeHTML(item.Description)
		if entry.Summary == "" {
			entry.Summary = sanitizeHTML(item.Content)
		}

		// set published time
		if item.PublishedParsed != nil {
			entry.Published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			entry.Published = *item.UpdatedParsed
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// fetch retrieves content from a URL
func (p *Parser) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", p.userAgent)

	// add browser-like headers
	addBrowserHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}
