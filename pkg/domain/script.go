package domain

// Audience is the target audience level for a teaching script
type Audience string

// known audience levels
const (
	AudienceBeginner     Audience = "beginner"
	AudienceIntermediate Audience = "intermediate"
	AudienceAdvanced     Audience = "advanced"
)

// Valid reports whether the audience is one of the known levels
func (a Audience) Valid() bool {
	switch a {
	case AudienceBeginner, AudienceIntermediate, AudienceAdvanced:
		return true
	}
	return false
}

// CodeBlock is a generated visualization scene for one marked concept
type CodeBlock struct {
	Description string `json:"description"`
	Concept     string `json:"concept"`
	Code        string `json:"code"`
}

// ScriptResult is the terminal artifact of the video-script pipeline.
// Script is the raw generated script, EnhancedScript the same text with
// the visualization code blocks embedded after their marked sections.
type ScriptResult struct {
	Keyword        string      `json:"keyword"`
	Audience       Audience    `json:"audience"`
	Titles         []string    `json:"suggested_titles,omitempty"`
	Script         string      `json:"script"`
	EnhancedScript string      `json:"enhanced_script"`
	CodeBlocks     []CodeBlock `json:"code_blocks,omitempty"`
}
