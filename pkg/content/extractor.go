package content

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-pkgz/lgr"
	"github.com/markusmobius/go-trafilatura"

	"github.com/newsdraft/newsdraft/pkg/config"
	"github.com/newsdraft/newsdraft/pkg/domain"
)

// truncationMarker is appended when extracted text exceeds the configured limit
const truncationMarker = "... [content truncated]"

// maxBodySize caps how much of a page we read, pages larger than this
// are cut before parsing
const maxBodySize = 10 * 1024 * 1024

// HTTPExtractor fetches web pages and extracts their main article text.
// Trafilatura does the heavy lifting, with a DOM heuristic fallback for
// pages it cannot handle.
type HTTPExtractor struct {
	cfg    config.ExtractionConfig
	client *http.Client
}

// NewHTTPExtractor creates a new content extractor. An explicit proxy in the
// config wins, otherwise HTTP_PROXY/HTTPS_PROXY from the environment apply.
func NewHTTPExtractor(cfg config.ExtractionConfig) *HTTPExtractor {
	proxyFunc := http.ProxyFromEnvironment
	if cfg.Proxy != "" {
		if proxyURL, err := url.Parse(cfg.Proxy); err == nil {
			proxyFunc = http.ProxyURL(proxyURL)
		}
	}

	return &HTTPExtractor{
		cfg: cfg,
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: &http.Transport{Proxy: proxyFunc},
		},
	}
}

// Extract retrieves the page at the given URL and returns its title and main
// text content. Navigation, ads and other boilerplate are removed.
func (e *HTTPExtractor) Extract(ctx context.Context, urlStr string) (*domain.SourceDoc, error) {
	// validate URL
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("invalid URL: %s", urlStr)
	}

	body, err := e.fetch(ctx, urlStr)
	if err != nil {
		return nil, err
	}

	doc := &domain.SourceDoc{URL: urlStr}

	// primary extraction via trafilatura
	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		ExcludeTables:   false,
		IncludeImages:   false,
		IncludeLinks:    false,
		Deduplicate:     true,
		OriginalURL:     parsedURL,
	}
	result, err := trafilatura.Extract(bytes.NewReader(body), opts)
	if err == nil && result != nil {
		doc.Text = strings.TrimSpace(result.ContentText)
		doc.Title = strings.TrimSpace(result.Metadata.Title)
	}

	// fall back to DOM heuristics when trafilatura comes back empty or thin
	if len(doc.Text) < e.cfg.MinTextLength {
		lgr.Printf("[DEBUG] trafilatura returned %d chars for %s, trying fallback", len(doc.Text), urlStr)
		title, text := extractFallback(bytes.NewReader(body))
		if len(text) > len(doc.Text) {
			doc.Text = text
		}
		if doc.Title == "" {
			doc.Title = title
		}
	}

	if len(doc.Text) < e.cfg.MinTextLength {
		return nil, fmt.Errorf("no usable content extracted from %s (%d chars)", urlStr, len(doc.Text))
	}

	// limit content length
	if e.cfg.MaxTextLength > 0 && len(doc.Text) > e.cfg.MaxTextLength {
		doc.Text = doc.Text[:e.cfg.MaxTextLength] + truncationMarker
	}

	return doc, nil
}

// fetch retrieves the page body
func (e *HTTPExtractor) fetch(ctx context.Context, urlStr string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", e.cfg.UserAgent)
	addBrowserHeaders(req)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL %s: %w", urlStr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d for URL %s", resp.StatusCode, urlStr)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read body from %s: %w", urlStr, err)
	}

	return body, nil
}
