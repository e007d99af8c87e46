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

// Writer uses LLM to draft a technical article from extracted source documents
type Writer struct {
	client         *openai.Client
	config         config.LLMConfig
	maxSourceChars int
	systemMsg      string
}

// NewWriter creates a new article writer
func NewWriter(cfg config.LLMConfig, writer config.WriterConfig) *Writer {
	systemMsg := writer.Prompt
	if systemMsg == "" {
		systemMsg = defaultWriterPrompt
	}

	return &Writer{
		client:         newClient(cfg),
		config:         cfg,
		maxSourceChars: writer.MaxSourceChars,
		systemMsg:      systemMsg,
	}
}

// default system prompt for article drafting
const defaultWriterPrompt = `You are a professional technical writer who produces publication-ready articles.

Work from the provided source material only:
1. Analyze the sources and settle on one compelling, educational theme
2. Structure the article with an introduction, body sections and a conclusion
3. Write detailed content with technical accuracy and depth
4. Add examples and practical advice where the sources support them

Do not invent facts beyond the sources and do not stretch thin material. The article should follow a clear logical structure, offer real technical insight and use professional but approachable language.

The response must be a JSON object with these fields:
- title: the article headline
- introduction: opening that frames the theme (1-3 paragraphs)
- sections: array of {heading, text} body sections
- conclusion: closing thoughts and takeaways`

// Draft writes an article from the given source documents. The returned
// article always lists every input document in Sources, regardless of what
// the model produced.
func (w *Writer) Draft(ctx context.Context, docs []domain.SourceDoc) (*domain.Article, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("no source documents provided")
	}

	prompt := w.buildPrompt(docs)

	// retry up to 3 times if we get invalid JSON
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		content, err := chat(ctx, w.client, w.config, w.systemMsg, prompt, w.config.JSONMode)
		if err != nil {
			return nil, err
		}

		article, err := w.parseResponse(content)
		if err == nil {
			article.Sources = sourceRefs(docs)
			return article, nil
		}

		lastErr = err
	}

	return nil, fmt.Errorf("failed after 3 attempts: %w", lastErr)
}

// buildPrompt lists the source documents with their content
func (w *Writer) buildPrompt(docs []domain.SourceDoc) string {
	var sb strings.Builder

	sb.WriteString("Write a technical article based on these sources:\n\n")
	for i, doc := range docs {
		fmt.Fprintf(&sb, "### Source %d: %s\n", i+1, doc.Title)
		fmt.Fprintf(&sb, "URL: %s\n", doc.URL)
		fmt.Fprintf(&sb, "Content:\n%s\n\n", truncate(doc.Text, w.maxSourceChars))
	}

	sb.WriteString("Respond with a JSON object containing title, introduction, sections and conclusion.")
	return sb.String()
}

// parseResponse parses the LLM response into an article. A draft without a
// title or without body sections counts as a parse failure.
func (w *Writer) parseResponse(content string) (*domain.Article, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || start >= end {
		return nil, fmt.Errorf("no json object found in response")
	}

	var article domain.Article
	if err := json.Unmarshal([]byte(content[start:end+1]), &article); err != nil {
		return nil, fmt.Errorf("failed to parse json object response: %w", err)
	}

	if strings.TrimSpace(article.Title) == "" {
		return nil, fmt.Errorf("article draft has no title")
	}
	if len(article.Sections) == 0 {
		return nil, fmt.Errorf("article draft has no sections")
	}

	return &article, nil
}

// sourceRefs converts documents to article source references
func sourceRefs(docs []domain.SourceDoc) []domain.SourceRef {
	refs := make([]domain.SourceRef, 0, len(docs))
	for _, doc := range docs {
		refs = append(refs, domain.SourceRef{Title: doc.Title, URL: doc.URL})
	}
	return refs
}
