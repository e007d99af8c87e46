package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/newsdraft/newsdraft/pkg/config"
	"github.com/newsdraft/newsdraft/pkg/domain"
)

// Curator uses LLM to judge which feed entries are worth reading in full
type Curator struct {
	client      *openai.Client
	config      config.LLMConfig
	maxSelected int
	systemMsg   string
}

// NewCurator creates a new entry curator
func NewCurator(cfg config.LLMConfig, curation config.CurationConfig) *Curator {
	// use custom system prompt if provided, otherwise use default
	systemMsg := curation.Prompt
	if systemMsg == "" {
		systemMsg = defaultCuratorPrompt
	}

	return &Curator{
		client:      newClient(cfg),
		config:      cfg,
		maxSelected: curation.MaxSelected,
		systemMsg:   systemMsg,
	}
}

// default system prompt for entry curation
const defaultCuratorPrompt = `You are a content evaluation expert reviewing RSS feed entries.

Judge every entry against all three criteria:
1. Technical relevance - does it contain useful technical information
2. Novelty - does it bring new ideas or information
3. Depth - is it more than surface-level news

Only entries that satisfy all the criteria deserve selection. Pick the ones that help a technical reader learn something new or gain real insight.

Each selection should contain:
- link: the entry link, copied exactly as given
- score: value score (0-10)
- reason: brief explanation of why the entry is worth reading (max 100 chars)

Never exceed the requested number of selections. When nothing qualifies, respond with an empty array rather than padding the selection with weak entries.`

// Rank asks the LLM to pick the most valuable entries. The result keeps the
// LLM's order, every selection refers to one of the input entries, and an
// empty result means nothing qualified. Never exceeds the configured maximum.
func (c *Curator) Rank(ctx context.Context, entries []domain.Entry) ([]domain.Selection, error) {
	if len(entries) == 0 {
		return []domain.Selection{}, nil
	}

	prompt := c.buildPrompt(entries)

	// retry up to 3 times if we get invalid JSON
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		content, err := chat(ctx, c.client, c.config, c.systemMsg, prompt, c.config.JSONMode)
		if err != nil {
			return nil, err
		}

		selections, err := c.parseResponse(content, entries)
		if err == nil {
			return selections, nil
		}

		lastErr = err

		// if this was a JSON parsing error, retry
		if strings.Contains(err.Error(), "failed to parse json") || strings.Contains(err.Error(), "no json array found") {
			continue
		}

		// for other errors, don't retry
		return nil, err
	}

	return nil, fmt.Errorf("failed after 3 attempts: %w", lastErr)
}

// buildPrompt creates the curation prompt listing all entries
func (c *Curator) buildPrompt(entries []domain.Entry) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Evaluate these feed entries and select at most %d worth reading in full:\n\n", c.maxSelected)
	for i, entry := range entries {
		fmt.Fprintf(&sb, "%d. Title: %s\n", i+1, entry.Title)
		fmt.Fprintf(&sb, "   Link: %s\n", entry.Link)
		if entry.Summary != "" {
			fmt.Fprintf(&sb, "   Summary: %s\n", truncate(entry.Summary, 500))
		}
		sb.WriteString("\n")
	}

	if c.config.JSONMode {
		sb.WriteString("Respond with a JSON object containing a 'selections' array of selection objects.")
	} else {
		sb.WriteString("Respond with a JSON array of selection objects.")
	}
	return sb.String()
}

// rawSelection is the wire format the LLM responds with
type rawSelection struct {
	Link   string  `json:"link"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

// parseResponse parses the LLM response into selections bound to input entries
func (c *Curator) parseResponse(content string, entries []domain.Entry) ([]domain.Selection, error) {
	var raw []rawSelection

	if c.config.JSONMode {
		// parse as JSON object with selections array
		var resp struct {
			Selections []rawSelection `json:"selections"`
		}
		if err := json.Unmarshal([]byte(content), &resp); err != nil {
			return nil, fmt.Errorf("failed to parse json object response: %w", err)
		}
		raw = resp.Selections
	} else {
		// parse as JSON array embedded in free text
		start := strings.Index(content, "[")
		end := strings.LastIndex(content, "]")
		if start == -1 || end == -1 || start >= end {
			return nil, fmt.Errorf("no json array found in response")
		}

		jsonStr := content[start : end+1]
		if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
			return nil, fmt.Errorf("failed to parse json array response: %w", err)
		}
	}

	// bind selections to input entries by link, drop anything the LLM made up
	byLink := make(map[string]domain.Entry, len(entries))
	for _, entry := range entries {
		byLink[entry.Link] = entry
	}

	selections := []domain.Selection{}
	seen := make(map[string]bool)
	for _, r := range raw {
		entry, ok := byLink[r.Link]
		if !ok || seen[r.Link] {
			continue
		}
		seen[r.Link] = true

		// ensure score is in valid range
		if r.Score < 0 {
			r.Score = 0
		} else if r.Score > 10 {
			r.Score = 10
		}

		selections = append(selections, domain.Selection{
			Entry:  entry,
			Score:  r.Score,
			Reason: r.Reason,
		})

		if c.maxSelected > 0 && len(selections) >= c.maxSelected {
			break
		}
	}

	return selections, nil
}
