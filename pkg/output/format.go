// Package output renders generated articles and video scripts to their
// final form and writes them to files. Three formats are supported:
// Markdown for reading, plain text for voice-over work, and JSON for
// feeding other tools.
package output

import (
	"fmt"
	"strings"
	"unicode"
)

// Format selects the rendering of a generated artifact
type Format string

// supported output formats
const (
	FormatMarkdown Format = "md"
	FormatText     Format = "txt"
	FormatJSON     Format = "json"
)

// ParseFormat converts a CLI format string to a Format
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatMarkdown:
		return FormatMarkdown, nil
	case FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown output format %q, want md, txt or json", s)
}

// Ext returns the file extension for the format, dot included
func (f Format) Ext() string {
	return "." + string(f)
}

// slugify turns free text into a filename-safe token: lowercased, spaces and
// hyphens become underscores, anything else non-alphanumeric is dropped
func slugify(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			sb.WriteRune('_')
		}
	}
	slug := sb.String()
	if slug == "" {
		slug = "untitled"
	}
	return slug
}

// truncateRunes cuts s to at most n runes
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
