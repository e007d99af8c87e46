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

// ScriptStore handles archived video script database operations
type ScriptStore struct {
	db *sqlx.DB
}

// NewScriptStore creates a new script store
func NewScriptStore(database *sqlx.DB) *ScriptStore {
	return &ScriptStore{db: database}
}

// ScriptRecord is one archived script result with its run metadata
type ScriptRecord struct {
	ID        int64               `json:"id"`
	Keyword   string              `json:"keyword"`
	Audience  string              `json:"audience"`
	Title     string              `json:"title,omitempty"`
	Scenes    int                 `json:"scenes"`
	Result    domain.ScriptResult `json:"result"`
	CreatedAt time.Time           `json:"created_at"`
}

// scriptSQL represents an archived script row for SQL operations
type scriptSQL struct {
	ID         int64      `db:"id"`
	Keyword    string     `db:"keyword"`
	Audience   string     `db:"audience"`
	Title      string     `db:"title"`
	SceneCount int        `db:"scene_count"`
	Payload    scriptJSON `db:"payload"`
	CreatedAt  time.Time  `db:"created_at"`
}

// scriptJSON stores the full script result as a JSON column
type scriptJSON domain.ScriptResult

// Value implements driver.Valuer for database storage
func (s scriptJSON) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements sql.Scanner for database retrieval
func (s *scriptJSON) Scan(value interface{}) error {
	if value == nil {
		*s = scriptJSON{}
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

	return json.Unmarshal(data, s)
}

// SaveScript archives a generated script result and returns its assigned ID.
// Insert retries on SQLite lock contention with a short backoff.
func (s *ScriptStore) SaveScript(ctx context.Context, result *domain.ScriptResult) (int64, error) {
	if result == nil {
		return 0, fmt.Errorf("nil script result")
	}

	title := ""
	if len(result.Titles) > 0 {
		title = result.Titles[0]
	}

	row := &scriptSQL{
		Keyword:    result.Keyword,
		Audience:   string(result.Audience),
		Title:      title,
		SceneCount: len(result.CodeBlocks),
		Payload:    scriptJSON(*result),
	}

	var id int64
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	err := retrier.Do(ctx, func() error {
		query := `
			INSERT INTO scripts (keyword, audience, title, scene_count, payload)
			VALUES (:keyword, :audience, :title, :scene_count, :payload)
		`
		result, err := s.db.NamedExecContext(ctx, query, row)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("save script: %w", err)}
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

// GetScript retrieves an archived script by ID
func (s *ScriptStore) GetScript(ctx context.Context, id int64) (*ScriptRecord, error) {
	var row scriptSQL
	err := s.db.GetContext(ctx, &row, "SELECT * FROM scripts WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("get script %d: %w", id, err)
	}
	return row.toRecord(), nil
}

// ListScripts retrieves archived scripts, newest first
func (s *ScriptStore) ListScripts(ctx context.Context, limit int) ([]ScriptRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	var rows []scriptSQL
	err := s.db.SelectContext(ctx, &rows,
		"SELECT * FROM scripts ORDER BY created_at DESC, id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("list scripts: %w", err)
	}

	records := make([]ScriptRecord, len(rows))
	for i, row := range rows {
		records[i] = *row.toRecord()
	}
	return records, nil
}

// toRecord converts the SQL row into the public record
func (r *scriptSQL) toRecord() *ScriptRecord {
	return &ScriptRecord{
		ID:        r.ID,
		Keyword:   r.Keyword,
		Audience:  r.Audience,
		Title:     r.Title,
		Scenes:    r.SceneCount,
		Result:    domain.ScriptResult(r.Payload),
		CreatedAt: r.CreatedAt,
	}
}
