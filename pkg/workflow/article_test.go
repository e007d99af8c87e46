package workflow

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsdraft/newsdraft/pkg/domain"
	"github.com/newsdraft/newsdraft/pkg/workflow/mocks"
)

func articleTestEntries() []domain.Entry {
	return []domain.Entry{
		{GUID: "g1", Title: "Go Memory Model", Link: "http://example.com/memory", Summary: "happens-before rules"},
		{GUID: "g2", Title: "Celebrity Gossip", Link: "http://example.com/gossip", Summary: "not technical"},
		{GUID: "g3", Title: "Raft Explained", Link: "http://example.com/raft", Summary: "consensus walkthrough"},
	}
}

func TestArticleWorkflow_Run(t *testing.T) {
	parser := &mocks.EntryParserMock{
		ParseFunc: func(ctx context.Context, feedURL string) ([]domain.Entry, error) {
			assert.Equal(t, "http://example.com/feed.xml", feedURL)
			return articleTestEntries(), nil
		},
	}
	curator := &mocks.CuratorMock{
		RankFunc: func(ctx context.Context, entries []domain.Entry) ([]domain.Selection, error) {
			require.Len(t, entries, 3)
			return []domain.Selection{
				{Entry: entries[0], Score: 9, Reason: "deep dive"},
				{Entry: entries[2], Score: 7.5, Reason: "solid walkthrough"},
			}, nil
		},
	}
	extractor := &mocks.ExtractorMock{
		ExtractFunc: func(ctx context.Context, pageURL string) (*domain.SourceDoc, error) {
			return &domain.SourceDoc{Title: "Page " + pageURL, URL: pageURL, Text: "extracted text for " + pageURL}, nil
		},
	}
	writer := &mocks.WriterMock{
		DraftFunc: func(ctx context.Context, docs []domain.SourceDoc) (*domain.Article, error) {
			require.Len(t, docs, 2)
			assert.Equal(t, "http://example.com/memory", docs[0].URL)
			assert.Equal(t, "http://example.com/raft", docs[1].URL)
			return &domain.Article{
				Title:    "Understanding Distributed Go",
				Sections: []domain.Section{{Heading: "Intro", Text: "text"}},
			}, nil
		},
	}

	wf := NewArticleWorkflow(parser, curator, extractor, writer)
	result, err := wf.Run(context.Background(), "http://example.com/feed.xml")
	require.NoError(t, err)

	require.NotNil(t, result.Article)
	assert.Equal(t, "Understanding Distributed Go", result.Article.Title)
	assert.Equal(t, 3, result.Entries)
	assert.Len(t, result.Selections, 2)
	assert.Equal(t, 2, result.Extracted)

	// one extraction per selection, in selection order
	require.Len(t, extractor.ExtractCalls(), 2)
	assert.Equal(t, "http://example.com/memory", extractor.ExtractCalls()[0].PageURL)
	assert.Equal(t, "http://example.com/raft", extractor.ExtractCalls()[1].PageURL)
	assert.Len(t, writer.DraftCalls(), 1)
}

func TestArticleWorkflow_Run_EmptySelection(t *testing.T) {
	parser := &mocks.EntryParserMock{
		ParseFunc: func(ctx context.Context, feedURL string) ([]domain.Entry, error) {
			return articleTestEntries(), nil
		},
	}
	curator := &mocks.CuratorMock{
		RankFunc: func(ctx context.Context, entries []domain.Entry) ([]domain.Selection, error) {
			return []domain.Selection{}, nil
		},
	}
	extractor := &mocks.ExtractorMock{}
	writer := &mocks.WriterMock{}

	wf := NewArticleWorkflow(parser, curator, extractor, writer)
	result, err := wf.Run(context.Background(), "http://example.com/feed.xml")
	require.NoError(t, err, "empty selection is a designed early exit, not an error")

	assert.Nil(t, result.Article)
	assert.Equal(t, 3, result.Entries)
	assert.Empty(t, result.Selections)

	// the early exit must not touch later stages
	assert.Empty(t, extractor.ExtractCalls())
	assert.Empty(t, writer.DraftCalls())
}

func TestArticleWorkflow_Run_EmptyFeed(t *testing.T) {
	parser := &mocks.EntryParserMock{
		ParseFunc: func(ctx context.Context, feedURL string) ([]domain.Entry, error) {
			return []domain.Entry{}, nil
		},
	}
	curator := &mocks.CuratorMock{}
	extractor := &mocks.ExtractorMock{}
	writer := &mocks.WriterMock{}

	wf := NewArticleWorkflow(parser, curator, extractor, writer)
	result, err := wf.Run(context.Background(), "http://example.com/feed.xml")
	require.NoError(t, err)

	assert.Nil(t, result.Article)
	assert.Equal(t, 0, result.Entries)

	// no entries means the curator never gets an LLM call
	assert.Empty(t, curator.RankCalls())
	assert.Empty(t, extractor.ExtractCalls())
	assert.Empty(t, writer.DraftCalls())
}

func TestArticleWorkflow_Run_FeedError(t *testing.T) {
	parser := &mocks.EntryParserMock{
		ParseFunc: func(ctx context.Context, feedURL string) ([]domain.Entry, error) {
			return nil, fmt.Errorf("connection refused")
		},
	}
	curator := &mocks.CuratorMock{}
	extractor := &mocks.ExtractorMock{}
	writer := &mocks.WriterMock{}

	wf := NewArticleWorkflow(parser, curator, extractor, writer)
	_, err := wf.Run(context.Background(), "http://example.com/feed.xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch feed")
	assert.Empty(t, curator.RankCalls())
}

func TestArticleWorkflow_Run_CuratorError(t *testing.T) {
	parser := &mocks.EntryParserMock{
		ParseFunc: func(ctx context.Context, feedURL string) ([]domain.Entry, error) {
			return articleTestEntries(), nil
		},
	}
	curator := &mocks.CuratorMock{
		RankFunc: func(ctx context.Context, entries []domain.Entry) ([]domain.Selection, error) {
			return nil, fmt.Errorf("llm unavailable")
		},
	}
	extractor := &mocks.ExtractorMock{}
	writer := &mocks.WriterMock{}

	wf := NewArticleWorkflow(parser, curator, extractor, writer)
	_, err := wf.Run(context.Background(), "http://example.com/feed.xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "curate entries")
	assert.Empty(t, extractor.ExtractCalls())
}

func TestArticleWorkflow_Run_PartialExtractionFailure(t *testing.T) {
	parser := &mocks.EntryParserMock{
		ParseFunc: func(ctx context.Context, feedURL string) ([]domain.Entry, error) {
			return articleTestEntries(), nil
		},
	}
	curator := &mocks.CuratorMock{
		RankFunc: func(ctx context.Context, entries []domain.Entry) ([]domain.Selection, error) {
			return []domain.Selection{
				{Entry: entries[0], Score: 9},
				{Entry: entries[1], Score: 8},
				{Entry: entries[2], Score: 7},
			}, nil
		},
	}
	extractor := &mocks.ExtractorMock{
		ExtractFunc: func(ctx context.Context, pageURL string) (*domain.SourceDoc, error) {
			if pageURL == "http://example.com/gossip" {
				return nil, fmt.Errorf("status 404")
			}
			return &domain.SourceDoc{Title: "ok", URL: pageURL, Text: "content"}, nil
		},
	}
	writer := &mocks.WriterMock{
		DraftFunc: func(ctx context.Context, docs []domain.SourceDoc) (*domain.Article, error) {
			// the failed page is dropped, the two survivors still get written up
			require.Len(t, docs, 2)
			return &domain.Article{Title: "Draft", Sections: []domain.Section{{Heading: "H", Text: "T"}}}, nil
		},
	}

	wf := NewArticleWorkflow(parser, curator, extractor, writer)
	result, err := wf.Run(context.Background(), "http://example.com/feed.xml")
	require.NoError(t, err)
	require.NotNil(t, result.Article)
	assert.Equal(t, 2, result.Extracted)
	assert.Len(t, extractor.ExtractCalls(), 3)
}

func TestArticleWorkflow_Run_AllExtractionsFail(t *testing.T) {
	parser := &mocks.EntryParserMock{
		ParseFunc: func(ctx context.Context, feedURL string) ([]domain.Entry, error) {
			return articleTestEntries(), nil
		},
	}
	curator := &mocks.CuratorMock{
		RankFunc: func(ctx context.Context, entries []domain.Entry) ([]domain.Selection, error) {
			return []domain.Selection{{Entry: entries[0], Score: 9}, {Entry: entries[2], Score: 8}}, nil
		},
	}
	extractor := &mocks.ExtractorMock{
		ExtractFunc: func(ctx context.Context, pageURL string) (*domain.SourceDoc, error) {
			return nil, fmt.Errorf("timeout")
		},
	}
	writer := &mocks.WriterMock{}

	wf := NewArticleWorkflow(parser, curator, extractor, writer)
	_, err := wf.Run(context.Background(), "http://example.com/feed.xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all 2 selected pages failed")
	assert.Empty(t, writer.DraftCalls(), "nothing to write from when every page failed")
}

func TestArticleWorkflow_Run_WriterError(t *testing.T) {
	parser := &mocks.EntryParserMock{
		ParseFunc: func(ctx context.Context, feedURL string) ([]domain.Entry, error) {
			return articleTestEntries(), nil
		},
	}
	curator := &mocks.CuratorMock{
		RankFunc: func(ctx context.Context, entries []domain.Entry) ([]domain.Selection, error) {
			return []domain.Selection{{Entry: entries[0], Score: 9}}, nil
		},
	}
	extractor := &mocks.ExtractorMock{
		ExtractFunc: func(ctx context.Context, pageURL string) (*domain.SourceDoc, error) {
			return &domain.SourceDoc{Title: "ok", URL: pageURL, Text: "content"}, nil
		},
	}
	writer := &mocks.WriterMock{
		DraftFunc: func(ctx context.Context, docs []domain.SourceDoc) (*domain.Article, error) {
			return nil, fmt.Errorf("model overloaded")
		},
	}

	wf := NewArticleWorkflow(parser, curator, extractor, writer)
	_, err := wf.Run(context.Background(), "http://example.com/feed.xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "draft article")
}

func TestArticleWorkflow_Run_MissingDocTitleFallsBackToEntry(t *testing.T) {
	parser := &mocks.EntryParserMock{
		ParseFunc: func(ctx context.Context, feedURL string) ([]domain.Entry, error) {
			return articleTestEntries(), nil
		},
	}
	curator := &mocks.CuratorMock{
		RankFunc: func(ctx context.Context, entries []domain.Entry) ([]domain.Selection, error) {
			return []domain.Selection{{Entry: entries[0], Score: 9}}, nil
		},
	}
	extractor := &mocks.ExtractorMock{
		ExtractFunc: func(ctx context.Context, pageURL string) (*domain.SourceDoc, error) {
			return &domain.SourceDoc{URL: pageURL, Text: "content without a page title"}, nil
		},
	}
	writer := &mocks.WriterMock{
		DraftFunc: func(ctx context.Context, docs []domain.SourceDoc) (*domain.Article, error) {
			require.Len(t, docs, 1)
			assert.Equal(t, "Go Memory Model", docs[0].Title, "entry title should fill a missing page title")
			return &domain.Article{Title: "Draft", Sections: []domain.Section{{Heading: "H", Text: "T"}}}, nil
		},
	}

	wf := NewArticleWorkflow(parser, curator, extractor, writer)
	_, err := wf.Run(context.Background(), "http://example.com/feed.xml")
	require.NoError(t, err)
}
