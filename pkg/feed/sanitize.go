package feed

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// stripPolicy removes all HTML markup, leaving text content only
var stripPolicy = bluemonday.StrictPolicy()

// sanitizeHTML converts feed HTML to plain text: tags are stripped,
// entities decoded and whitespace collapsed. Feed descriptions often
// carry markup and tracking pixels we never want in LLM prompts.
func sanitizeHTML(s string) string {
	if s == "" {
		return ""
	}
	text := stripPolicy.Sanitize(s)
	text = html.UnescapeString(text)
	return strings.Join(strings.Fields(text), " ")
}
