package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsdraft/newsdraft/pkg/domain"
	"github.com/newsdraft/newsdraft/pkg/store"
)

func TestStoreAdapter(t *testing.T) {
	s, err := store.New(context.Background(), store.Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	})
	require.NoError(t, err)
	defer s.Close()

	adapter := NewStoreAdapter(s)
	ctx := context.Background()

	t.Run("article round trip", func(t *testing.T) {
		article := &domain.Article{Title: "Adapter Test", Introduction: "i", Conclusion: "c"}

		id, err := adapter.SaveArticle(ctx, "https://example.com/feed.xml", article)
		require.NoError(t, err)

		rec, err := adapter.GetArticle(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Adapter Test", rec.Title)

		recs, err := adapter.ListArticles(ctx, 10)
		require.NoError(t, err)
		assert.Len(t, recs, 1)
	})

	t.Run("script round trip", func(t *testing.T) {
		result := &domain.ScriptResult{Keyword: "graphs", Audience: domain.AudienceBeginner, Script: "s"}

		id, err := adapter.SaveScript(ctx, result)
		require.NoError(t, err)

		rec, err := adapter.GetScript(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "graphs", rec.Keyword)

		recs, err := adapter.ListScripts(ctx, 10)
		require.NoError(t, err)
		assert.Len(t, recs, 1)
	})
}
