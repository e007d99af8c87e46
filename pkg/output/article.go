package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/go-pkgz/lgr"

	"github.com/newsdraft/newsdraft/pkg/domain"
)

// RenderArticle renders an article in the requested format
func RenderArticle(article *domain.Article, format Format) (string, error) {
	if article == nil {
		return "", fmt.Errorf("no article to render")
	}

	switch format {
	case FormatMarkdown:
		return articleMarkdown(article), nil
	case FormatText:
		return articleText(article), nil
	case FormatJSON:
		data, err := json.MarshalIndent(article, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal article: %w", err)
		}
		return string(data) + "\n", nil
	}
	return "", fmt.Errorf("unknown output format %q", format)
}

// WriteArticle renders the article and writes it to path. An empty path
// sends the rendered article to stdout instead.
func WriteArticle(path string, format Format, article *domain.Article) error {
	content, err := RenderArticle(article, format)
	if err != nil {
		return err
	}

	if path == "" {
		fmt.Println(content)
		return nil
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil { //nolint:gosec // user-requested output file
		return fmt.Errorf("write article to %s: %w", path, err)
	}
	lgr.Printf("[INFO] article written to %s", path)
	return nil
}

// articleMarkdown renders the article as a Markdown document
func articleMarkdown(article *domain.Article) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", article.Title)

	if article.Introduction != "" {
		sb.WriteString(article.Introduction)
		sb.WriteString("\n\n")
	}

	for _, section := range article.Sections {
		fmt.Fprintf(&sb, "## %s\n\n%s\n\n", section.Heading, section.Text)
	}

	if article.Conclusion != "" {
		fmt.Fprintf(&sb, "## Conclusion\n\n%s\n\n", article.Conclusion)
	}

	if len(article.Sources) > 0 {
		sb.WriteString("## References\n\n")
		for i, src := range article.Sources {
			fmt.Fprintf(&sb, "%d. [%s](%s)\n", i+1, src.Title, src.URL)
		}
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// articleText renders the article as plain text with underlined headings
func articleText(article *domain.Article) string {
	var sb strings.Builder

	sb.WriteString(article.Title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", utf8.RuneCountInString(article.Title)))
	sb.WriteString("\n\n")

	if article.Introduction != "" {
		sb.WriteString(article.Introduction)
		sb.WriteString("\n\n")
	}

	for _, section := range article.Sections {
		sb.WriteString(section.Heading)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat("-", utf8.RuneCountInString(section.Heading)))
		sb.WriteString("\n\n")
		sb.WriteString(section.Text)
		sb.WriteString("\n\n")
	}

	if article.Conclusion != "" {
		sb.WriteString("Conclusion\n----------\n\n")
		sb.WriteString(article.Conclusion)
		sb.WriteString("\n\n")
	}

	if len(article.Sources) > 0 {
		sb.WriteString("References:\n")
		for i, src := range article.Sources {
			fmt.Fprintf(&sb, "%d. %s - %s\n", i+1, src.Title, src.URL)
		}
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}
