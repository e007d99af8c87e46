package server

import (
	"context"

	"github.com/newsdraft/newsdraft/pkg/domain"
	"github.com/newsdraft/newsdraft/pkg/store"
)

// StoreAdapter adapts the artifact store to the server Archive interface
type StoreAdapter struct {
	store *store.Store
}

// NewStoreAdapter creates a new store adapter
func NewStoreAdapter(s *store.Store) *StoreAdapter {
	return &StoreAdapter{store: s}
}

// SaveArticle archives a generated article
func (a *StoreAdapter) SaveArticle(ctx context.Context, feedURL string, article *domain.Article) (int64, error) {
	return a.store.Articles.SaveArticle(ctx, feedURL, article)
}

// GetArticle returns an archived article by ID
func (a *StoreAdapter) GetArticle(ctx context.Context, id int64) (*store.ArticleRecord, error) {
	return a.store.Articles.GetArticle(ctx, id)
}

// ListArticles returns archived articles, newest first
func (a *StoreAdapter) ListArticles(ctx context.Context, limit int) ([]store.ArticleRecord, error) {
	return a.store.Articles.ListArticles(ctx, limit)
}

// SaveScript archives a generated video script
func (a *StoreAdapter) SaveScript(ctx context.Context, result *domain.ScriptResult) (int64, error) {
	return a.store.Scripts.SaveScript(ctx, result)
}

// GetScript returns an archived script by ID
func (a *StoreAdapter) GetScript(ctx context.Context, id int64) (*store.ScriptRecord, error) {
	return a.store.Scripts.GetScript(ctx, id)
}

// ListScripts returns archived scripts, newest first
func (a *StoreAdapter) ListScripts(ctx context.Context, limit int) ([]store.ScriptRecord, error) {
	return a.store.Scripts.ListScripts(ctx, limit)
}
