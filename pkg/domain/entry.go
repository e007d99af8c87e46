package domain

import "time"

// Entry represents a single feed entry as parsed from an RSS/Atom document.
// Entries are immutable once produced and keep the feed document order.
type Entry struct {
	GUID      string    `json:"guid"`
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	Summary   string    `json:"summary"`
	Published time.Time `json:"published,omitempty"`
}

// Selection is a feed entry the curator judged valuable, with the LLM's
// score and reasoning. Selections are ordered most to least valuable.
type Selection struct {
	Entry  Entry   `json:"entry"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

// SourceDoc holds the main text extracted from one selected article page.
// Consumed by the article writer and discarded after the run.
type SourceDoc struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Text  string `json:"text"`
}
