// Package workflow coordinates the generation pipelines. It wires feed
// parsing, curation, extraction and drafting into the article run, and
// script writing plus scene code generation into the video run. Stages run
// sequentially, one LLM conversation at a time, except scene code
// generation which fans out with a bounded worker pool.
package workflow

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/newsdraft/newsdraft/pkg/domain"
)

//go:generate moq -out mocks/entry_parser.go -pkg mocks -skip-ensure -fmt goimports . EntryParser
//go:generate moq -out mocks/curator.go -pkg mocks -skip-ensure -fmt goimports . Curator
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor
//go:generate moq -out mocks/writer.go -pkg mocks -skip-ensure -fmt goimports . Writer

// EntryParser fetches and parses a feed into entries
type EntryParser interface {
	Parse(ctx context.Context, feedURL string) ([]domain.Entry, error)
}

// Curator selects the entries worth reading in full
type Curator interface {
	Rank(ctx context.Context, entries []domain.Entry) ([]domain.Selection, error)
}

// Extractor pulls the main text out of a web page
type Extractor interface {
	Extract(ctx context.Context, pageURL string) (*domain.SourceDoc, error)
}

// Writer drafts an article from extracted source documents
type Writer interface {
	Draft(ctx context.Context, docs []domain.SourceDoc) (*domain.Article, error)
}

// ArticleResult is the outcome of one article pipeline run
type ArticleResult struct {
	Article    *domain.Article    // nil when the curator selected nothing
	Selections []domain.Selection // what the curator picked
	Entries    int                // how many entries the feed produced
	Extracted  int                // how many selections yielded usable content
}

// ArticleWorkflow runs the feed-to-article pipeline
type ArticleWorkflow struct {
	parser    EntryParser
	curator   Curator
	extractor Extractor
	writer    Writer
}

// NewArticleWorkflow creates the article pipeline from its stage implementations
func NewArticleWorkflow(parser EntryParser, curator Curator, extractor Extractor, writer Writer) *ArticleWorkflow {
	return &ArticleWorkflow{
		parser:    parser,
		curator:   curator,
		extractor: extractor,
		writer:    writer,
	}
}

// Run executes the pipeline for one feed URL. Stages run strictly in order:
// fetch, curate, extract, write. A run that finds nothing worth writing about
// finishes cleanly with a nil Article. Extraction failures for individual
// pages are logged and dropped, the run fails only when every selected page
// fails to extract.
func (w *ArticleWorkflow) Run(ctx context.Context, feedURL string) (*ArticleResult, error) {
	result := &ArticleResult{}

	lgr.Printf("[INFO] stage %s: %s", domain.StageFetching, feedURL)
	entries, err := w.parser.Parse(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	result.Entries = len(entries)
	if len(entries) == 0 {
		lgr.Printf("[WARN] feed %s has no entries, nothing to do", feedURL)
		return result, nil
	}
	lgr.Printf("[INFO] feed produced %d entries", len(entries))

	lgr.Printf("[INFO] stage %s: ranking entries", domain.StageFiltering)
	selections, err := w.curator.Rank(ctx, entries)
	if err != nil {
		return nil, fmt.Errorf("curate entries: %w", err)
	}
	result.Selections = selections
	if len(selections) == 0 {
		lgr.Printf("[INFO] curator selected nothing, no article to write")
		return result, nil
	}
	for _, sel := range selections {
		lgr.Printf("[INFO] selected %q (score %.1f): %s", sel.Entry.Title, sel.Score, sel.Reason)
	}

	lgr.Printf("[INFO] stage %s: %d pages", domain.StageExtracting, len(selections))
	docs := make([]domain.SourceDoc, 0, len(selections))
	for _, sel := range selections {
		doc, err := w.extractor.Extract(ctx, sel.Entry.Link)
		if err != nil {
			lgr.Printf("[WARN] failed to extract %s, dropping: %v", sel.Entry.Link, err)
			continue
		}
		// page title can be missing, the feed entry title still names the source
		if doc.Title == "" {
			doc.Title = sel.Entry.Title
		}
		docs = append(docs, *doc)
	}
	result.Extracted = len(docs)
	if len(docs) == 0 {
		return nil, fmt.Errorf("extract content: all %d selected pages failed", len(selections))
	}

	lgr.Printf("[INFO] stage %s: drafting from %d sources", domain.StageWriting, len(docs))
	article, err := w.writer.Draft(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("draft article: %w", err)
	}
	result.Article = article

	lgr.Printf("[INFO] stage %s: article %q with %d sections", domain.StageDone, article.Title, len(article.Sections))
	return result, nil
}
