package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/newsdraft/newsdraft/pkg/config"
	"github.com/newsdraft/newsdraft/pkg/domain"
)

// ScriptWriter uses LLM to write teaching video scripts for technical keywords
type ScriptWriter struct {
	client    *openai.Client
	config    config.LLMConfig
	systemMsg string
}

// NewScriptWriter creates a new video script writer
func NewScriptWriter(cfg config.LLMConfig, script config.ScriptConfig) *ScriptWriter {
	systemMsg := script.Prompt
	if systemMsg == "" {
		systemMsg = defaultScriptPrompt
	}

	return &ScriptWriter{
		client:    newClient(cfg),
		config:    cfg,
		systemMsg: systemMsg,
	}
}

// default system prompt for script writing
const defaultScriptPrompt = `You are a technical teaching video script expert who turns complex technical concepts into clear, well-organized narration scripts.

Given a technical keyword, write a complete teaching script that:
1. Follows a clear structure covering introduction, background, core concepts, how it works, real applications and a summary
2. Reads naturally when spoken aloud, suitable for voice-over recording
3. Stays technically accurate while matching the target audience's level
4. Marks concepts and formulas that deserve animation using the format [visualize: description]content[/visualize]
5. Suggests 3-5 catchy video titles under a "Title suggestions" heading

The final output must be a complete production-ready script with title suggestions, section structure and full narration text.`

// audienceDesc maps audience levels to prompt descriptions
var audienceDesc = map[domain.Audience]string{
	domain.AudienceBeginner:     "beginner level, assume the audience has little to no prior knowledge of the topic",
	domain.AudienceIntermediate: "intermediate level, assume the audience already understands the basic concepts",
	domain.AudienceAdvanced:     "advanced level, assume the audience knows the fundamentals and wants deep technical detail",
}

// Generate writes a narration script for the keyword. The response is free
// text carrying [visualize: ...]...[/visualize] markers and title suggestions,
// parsing is up to the caller.
func (s *ScriptWriter) Generate(ctx context.Context, keyword string, audience domain.Audience) (string, error) {
	if strings.TrimSpace(keyword) == "" {
		return "", fmt.Errorf("empty keyword")
	}

	desc, ok := audienceDesc[audience]
	if !ok {
		desc = audienceDesc[domain.AudienceBeginner]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Write the script for a technical teaching video about %q.\n\n", keyword)
	fmt.Fprintf(&sb, "Target audience: %s\n\n", desc)
	sb.WriteString(`Plan the content first, then write the full script. The recommended structure:
1. Introduction: present the topic and why it matters
2. Background: brief history or context
3. Core concepts: explain the main technical ideas
4. How it works: walk through the mechanics
5. Applications: show where the technology is used in practice
6. Summary: recap the key points and suggest further learning

Suggest 3-5 catchy video titles.

The script should read naturally when spoken, stay technically accurate and match the audience level in depth and complexity.

Mark the key parts that deserve animation as:
[visualize: description]content[/visualize]
`)

	content, err := chat(ctx, s.client, s.config, s.systemMsg, sb.String(), false)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("empty script from llm")
	}

	return content, nil
}
