package store

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/newsdraft/newsdraft/pkg/domain"
)

// ArticleStore handles archived article database operations
type ArticleStore struct {
	db *sqlx.DB
}

// NewArticleStore creates a new article store
func NewArticleStore(database *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: database}
}

// ArticleRecord is one archived article with its run metadata
type ArticleRecord struct {
	ID        int64          `json:"id"`
	FeedURL   string         `json:"feed_url"`
	Title     string         `json:"title"`
	Sources   int            `json:"sources"`
	Article   domain.Article `json:"article"`
	CreatedAt time.Time      `json:"created_at"`
}

// articleSQL represents an archived article row for SQL operations
type articleSQL struct {
	ID          int64       `db:"id"`
	FeedURL     string      `db:"feed_url"`
	Title       string      `db:"title"`
	SourceCount int         `db:"source_count"`
	Payload     articleJSON `db:"payload"`
	CreatedAt   time.Time   `db:"created_at"`
}

// articleJSON stores the full article as a JSON column
type articleJSON domain.Article

// Value implements driver.Valuer for database storage
func (a articleJSON) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// Scan implements sql.Scanner for database retrieval
func (a *articleJSON) Scan(value interface{}) error {
	if value == nil {
		*a = articleJSON{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported payload type %T", value)
	}

	return json.Unmarshal(data, a)
}

// SaveArticle archives a generated article and returns its assigned ID.
// Insert retries on SQLite lock contention with a short backoff.
func (s *ArticleStore) SaveArticle(ctx context.Context, feedURL string, article *domain.Article) (int64, error) {
	if article == nil {
		return 0, fmt.Errorf("nil article")
	}

	row := &articleSQL{
		FeedURL:     feedURL,
		Title:       article.Title,
		SourceCount: len(article.Sources),
		Payload:     articleJSON(*article),
	}

	var id int64
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	err := retrier.Do(ctx, func() error {
		query := `
			INSERT INTO articles (feed_url, title, source_count, payload)
			VALUES (:feed_url, :title, :source_count, :payload)
		`
		result, err := s.db.NamedExecContext(ctx, query, row)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("save article: %w", err)}
		}

		id, err = result.LastInsertId()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get insert id: %w", err)}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetArticle retrieves an archived article by ID
func (s *ArticleStore) GetArticle(ctx context.Context, id int64) (*ArticleRecord, error) {
	var row articleSQL
	err := s.db.GetContext(ctx, &row, "SELECT * FROM articles WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("get article %d: %w", id, err)
	}
	return row.toRecord(), nil
}

// ListArticles retrieves archived articles, newest first
func (s *ArticleStore) ListArticles(ctx context.Context, limit int) ([]ArticleRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	var rows []articleSQL
	err := s.db.SelectContext(ctx, &rows,
		"SELECT * FROM articles ORDER BY created_at DESC, id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	records := make([]ArticleRecord, len(rows))
	for i, row := range rows {
		records[i] = *row.toRecord()
	}
	return records, nil
}

// toRecord converts the SQL row into the public record
func (r *articleSQL) toRecord() *ArticleRecord {
	return &ArticleRecord{
		ID:        r.ID,
		FeedURL:   r.FeedURL,
		Title:     r.Title,
		Sources:   r.SourceCount,
		Article:   domain.Article(r.Payload),
		CreatedAt: r.CreatedAt,
	}
}
