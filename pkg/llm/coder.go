package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/newsdraft/newsdraft/pkg/config"
)

// Coder uses LLM to generate Manim animation code for script concepts
type Coder struct {
	client    *openai.Client
	config    config.LLMConfig
	systemMsg string
}

// NewCoder creates a new visualization coder
func NewCoder(cfg config.LLMConfig, script config.ScriptConfig) *Coder {
	systemMsg := script.CoderPrompt
	if systemMsg == "" {
		systemMsg = defaultCoderPrompt
	}

	return &Coder{
		client:    newClient(cfg),
		config:    cfg,
		systemMsg: systemMsg,
	}
}

// default system prompt for visualization code generation
const defaultCoderPrompt = `You are a Manim animation expert who visualizes mathematical and technical concepts.

Generate precise, well-structured Manim code for concepts taken from teaching video scripts. The code must:
1. Use current Manim community edition (manim-community) syntax
2. Clearly visualize the given concept for the viewer
3. Be well organized with the necessary comments
4. Run standalone without extra dependencies

Design the animation for visual clarity, smooth pacing and teaching value rather than decoration. Return the code in a single fenced python block.`

// VisualCode generates animation code for one marked script concept.
// description names what to show, concept is the narration text between the
// markers, keyword gives the overall topic context.
func (c *Coder) VisualCode(ctx context.Context, description, concept, keyword string) (string, error) {
	var sb strings.Builder
	sb.WriteString("Generate Manim Python animation code for this concept from a technical teaching video script:\n\n")
	fmt.Fprintf(&sb, "Visualization goal: %s\n", description)
	fmt.Fprintf(&sb, "Concept: %s\n", concept)
	fmt.Fprintf(&sb, "Topic keyword: %s\n\n", keyword)
	sb.WriteString(`The code should:
1. Use current Manim community edition (manim-community) syntax
2. Clearly visualize the concept above
3. Carry comments explaining what each part does
4. Run standalone

Make the visuals reinforce understanding of the concept and follow good Manim practice.`)

	content, err := chat(ctx, c.client, c.config, c.systemMsg, sb.String(), false)
	if err != nil {
		return "", err
	}

	code, err := extractPythonCode(content)
	if err != nil {
		return "", fmt.Errorf("parse code response: %w", err)
	}

	return code, nil
}

// extractPythonCode pulls Python source out of an LLM response. Fenced
// python blocks win, an unterminated fence runs to the end of the text, and
// when no fence exists the code is taken from the first manim import line
// onward. Blocks that import manim are preferred over ones that don't.
func extractPythonCode(content string) (string, error) {
	var blocks []string
	var current []string
	inBlock := false

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "```python"):
			inBlock = true
			current = nil
		case trimmed == "```" && inBlock:
			inBlock = false
			if len(current) > 0 {
				blocks = append(blocks, strings.Join(current, "\n"))
			}
			current = nil
		case inBlock:
			current = append(current, line)
		}
	}

	// unterminated fence runs to the end
	if inBlock && len(current) > 0 {
		blocks = append(blocks, strings.Join(current, "\n"))
	}

	// no fences at all, look for a manim import as the start of code
	if len(blocks) == 0 {
		lines := strings.Split(content, "\n")
		for i, line := range lines {
			if strings.Contains(line, "import manim") || strings.Contains(line, "from manim import") {
				blocks = append(blocks, strings.Join(lines[i:], "\n"))
				break
			}
		}
	}

	if len(blocks) == 0 {
		return "", fmt.Errorf("no python code found in response")
	}

	// prefer a block that actually imports manim
	for _, block := range blocks {
		if strings.Contains(block, "import manim") || strings.Contains(block, "from manim import") {
			return block, nil
		}
	}

	return blocks[0], nil
}
