package workflow

import (
	"slices"
	"strings"
)

const (
	visualStart = "[visualize:"
	visualEnd   = "[/visualize]"
)

// marker is one visualization annotation in a script, recorded with byte
// offsets into the original text so code can be spliced in later
type marker struct {
	Description string // what to show, from the opening tag
	Concept     string // narration text between the tags
	Start       int    // offset of the opening bracket
	End         int    // offset just past the closing tag
}

// parseMarkers finds all visualization markers in script order. An opening
// tag without a matching close extends to the next marker or the end of the
// text. A malformed opening tag (no closing bracket after the description)
// is skipped.
func parseMarkers(script string) []marker {
	var markers []marker
	pos := 0
	for {
		start := strings.Index(script[pos:], visualStart)
		if start == -1 {
			break
		}
		start += pos

		descStart := start + len(visualStart)
		descEnd := strings.Index(script[descStart:], "]")
		if descEnd == -1 {
			pos = descStart
			continue
		}
		descEnd += descStart

		contentStart := descEnd + 1
		contentEnd := strings.Index(script[contentStart:], visualEnd)
		var end int
		if contentEnd == -1 {
			// no closing tag, content runs to the next marker or the end
			if next := strings.Index(script[contentStart:], visualStart); next != -1 {
				contentEnd = contentStart + next
			} else {
				contentEnd = len(script)
			}
			end = contentEnd
		} else {
			contentEnd += contentStart
			end = contentEnd + len(visualEnd)
		}

		markers = append(markers, marker{
			Description: strings.TrimSpace(script[descStart:descEnd]),
			Concept:     strings.TrimSpace(script[contentStart:contentEnd]),
			Start:       start,
			End:         end,
		})

		pos = contentEnd
	}
	return markers
}

// titleHeadings mark the start of a title suggestion block
var titleHeadings = []string{"title suggestion", "video title"}

// parseTitles extracts suggested titles from the script. Titles are list
// lines (numbered or bulleted) following a heading that mentions title
// suggestions, the first non-list line closes the block.
func parseTitles(script string) []string {
	var titles []string
	inSection := false

	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)

		if !inSection {
			lower := strings.ToLower(trimmed)
			for _, h := range titleHeadings {
				if strings.Contains(lower, h) {
					inSection = true
					break
				}
			}
			continue
		}

		if trimmed == "" {
			continue
		}
		if !isListLine(trimmed) {
			inSection = false
			continue
		}

		title := strings.TrimSpace(strings.TrimLeft(trimmed, "-•* 0123456789."))
		if title != "" && !slices.Contains(titles, title) {
			titles = append(titles, title)
		}
	}

	return titles
}

// isListLine reports whether a line looks like a bulleted or numbered item
func isListLine(line string) bool {
	if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") || strings.HasPrefix(line, "*") {
		return true
	}
	if len(line) >= 2 && line[0] >= '1' && line[0] <= '9' && line[1] == '.' {
		return true
	}
	return false
}
