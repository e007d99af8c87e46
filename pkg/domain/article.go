package domain

// Section is one body section of a drafted article
type Section struct {
	Heading string `json:"heading"`
	Text    string `json:"text"`
}

// SourceRef points at an article page the draft was based on
type SourceRef struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Article is the terminal artifact of the rss-writer pipeline
type Article struct {
	Title        string      `json:"title"`
	Introduction string      `json:"introduction"`
	Sections     []Section   `json:"sections"`
	Conclusion   string      `json:"conclusion"`
	Sources      []SourceRef `json:"sources,omitempty"`
}
