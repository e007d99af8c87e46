package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/newsdraft/newsdraft/pkg/domain"
)

// sceneSlugLen caps how much of a scene description makes it into the filename
const sceneSlugLen = 30

// RenderScript renders a script result in the requested format. Markdown
// embeds the enhanced script with inline code, plain text uses the raw
// script with fence markers stripped, JSON dumps the whole structure.
func RenderScript(result *domain.ScriptResult, format Format) (string, error) {
	if result == nil {
		return "", fmt.Errorf("no script to render")
	}

	switch format {
	case FormatMarkdown:
		return scriptMarkdown(result), nil
	case FormatText:
		return scriptText(result), nil
	case FormatJSON:
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal script: %w", err)
		}
		return string(data) + "\n", nil
	}
	return "", fmt.Errorf("unknown output format %q", format)
}

// WriteScript renders the script result and writes it into dir, creating the
// directory when needed. The base file name is <keyword>_<audience>_<unix-ts>.
// Markdown output additionally writes each scene's code into a sibling
// <base>_scenes directory so the animations can be rendered directly.
// Returns the path of the main output file.
func WriteScript(dir string, format Format, result *domain.ScriptResult) (string, error) {
	content, err := RenderScript(result, format)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir %s: %w", dir, err)
	}

	base := fmt.Sprintf("%s_%s_%d", slugify(result.Keyword), result.Audience, time.Now().Unix())
	path := filepath.Join(dir, base+format.Ext())
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil { //nolint:gosec // user-requested output file
		return "", fmt.Errorf("write script to %s: %w", path, err)
	}
	lgr.Printf("[INFO] script written to %s", path)

	if format == FormatMarkdown && len(result.CodeBlocks) > 0 {
		scenesDir := filepath.Join(dir, base+"_scenes")
		if err := writeScenes(scenesDir, result.CodeBlocks); err != nil {
			return "", err
		}
		lgr.Printf("[INFO] %d scene files written to %s", len(result.CodeBlocks), scenesDir)
	}

	return path, nil
}

// writeScenes stores each code block as its own python file
func writeScenes(dir string, blocks []domain.CodeBlock) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create scenes dir %s: %w", dir, err)
	}

	for i, block := range blocks {
		name := fmt.Sprintf("scene_%d_%s.py", i+1, truncateRunes(slugify(block.Description), sceneSlugLen))
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(block.Code), 0o644); err != nil { //nolint:gosec // user-requested output file
			return fmt.Errorf("write scene %d to %s: %w", i+1, path, err)
		}
	}
	return nil
}

// scriptTitle picks the headline: first suggested title, keyword fallback
func scriptTitle(result *domain.ScriptResult) string {
	if len(result.Titles) > 0 {
		return result.Titles[0]
	}
	return fmt.Sprintf("About %s: a technical video script", result.Keyword)
}

// scriptMarkdown renders the result as a Markdown document
func scriptMarkdown(result *domain.ScriptResult) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", scriptTitle(result))

	sb.WriteString("## Metadata\n\n")
	fmt.Fprintf(&sb, "- **Keyword**: %s\n", result.Keyword)
	fmt.Fprintf(&sb, "- **Audience**: %s\n\n", result.Audience)

	if len(result.Titles) > 0 {
		sb.WriteString("## Suggested titles\n\n")
		for i, title := range result.Titles {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, title)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Script\n\n")
	if result.EnhancedScript != "" {
		sb.WriteString(result.EnhancedScript)
	} else {
		sb.WriteString(result.Script)
	}
	sb.WriteString("\n")

	if len(result.CodeBlocks) > 0 {
		sb.WriteString("\n## Appendix: animation code\n\n")
		for i, block := range result.CodeBlocks {
			fmt.Fprintf(&sb, "### Scene %d: %s\n\n", i+1, block.Description)
			fmt.Fprintf(&sb, "```python\n%s\n```\n\n", block.Code)
		}
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// scriptText renders the result as plain text for voice-over use. Code stays
// out of the narration, the appendix only lists scene descriptions.
func scriptText(result *domain.ScriptResult) string {
	var sb strings.Builder

	sb.WriteString(scriptTitle(result))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 50))
	sb.WriteString("\n\n")

	sb.WriteString("Metadata:\n")
	fmt.Fprintf(&sb, "Keyword: %s\n", result.Keyword)
	fmt.Fprintf(&sb, "Audience: %s\n\n", result.Audience)

	if len(result.Titles) > 0 {
		sb.WriteString("Suggested titles:\n")
		for i, title := range result.Titles {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, title)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Script:\n")
	sb.WriteString(strings.Repeat("=", 50))
	sb.WriteString("\n\n")

	// the raw script, with any markdown code fences stripped for clean narration
	script := strings.ReplaceAll(result.Script, "```python", "")
	script = strings.ReplaceAll(script, "```", "")
	sb.WriteString(script)
	sb.WriteString("\n")

	if len(result.CodeBlocks) > 0 {
		sb.WriteString("\nAppendix: animation code (saved as separate python files)\n")
		sb.WriteString(strings.Repeat("-", 50))
		sb.WriteString("\n")
		for i, block := range result.CodeBlocks {
			fmt.Fprintf(&sb, "Scene %d: %s\n", i+1, block.Description)
		}
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}
