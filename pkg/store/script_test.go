package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsdraft/newsdraft/pkg/domain"
)

func TestScriptStore_SaveAndGet(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	result := &domain.ScriptResult{
		Keyword:        "hash tables",
		Audience:       domain.AudienceBeginner,
		Titles:         []string{"Hash Tables Explained", "Buckets and Keys"},
		Script:         "raw script text",
		EnhancedScript: "raw script text with code",
		CodeBlocks: []domain.CodeBlock{
			{Description: "bucket layout", Concept: "hashing", Code: "class Scene: pass"},
		},
	}

	id, err := s.Scripts.SaveScript(ctx, result)
	require.NoError(t, err)
	assert.Positive(t, id)

	rec, err := s.Scripts.GetScript(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, "hash tables", rec.Keyword)
	assert.Equal(t, "beginner", rec.Audience)
	assert.Equal(t, "Hash Tables Explained", rec.Title) // first suggested title
	assert.Equal(t, 1, rec.Scenes)
	assert.Equal(t, *result, rec.Result)
	assert.False(t, rec.CreatedAt.IsZero())
}

func TestScriptStore_SaveWithoutTitles(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	result := &domain.ScriptResult{
		Keyword:  "recursion",
		Audience: domain.AudienceAdvanced,
		Script:   "script without title suggestions",
	}

	id, err := s.Scripts.SaveScript(ctx, result)
	require.NoError(t, err)

	rec, err := s.Scripts.GetScript(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, rec.Title)
	assert.Zero(t, rec.Scenes)
}

func TestScriptStore_SaveNil(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.Scripts.SaveScript(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil script result")
}

func TestScriptStore_GetMissing(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.Scripts.GetScript(context.Background(), 404)
	require.Error(t, err)
}

func TestScriptStore_List(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		r := &domain.ScriptResult{
			Keyword:  fmt.Sprintf("topic %d", i),
			Audience: domain.AudienceIntermediate,
			Script:   "s",
		}
		_, err := s.Scripts.SaveScript(ctx, r)
		require.NoError(t, err)
	}

	recs, err := s.Scripts.ListScripts(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "topic 3", recs[0].Keyword) // newest first
	assert.Equal(t, "topic 2", recs[1].Keyword)
}
