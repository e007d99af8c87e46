package workflow

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/newsdraft/newsdraft/pkg/domain"
)

//go:generate moq -out mocks/script_writer.go -pkg mocks -skip-ensure -fmt goimports . ScriptWriter
//go:generate moq -out mocks/coder.go -pkg mocks -skip-ensure -fmt goimports . Coder

// ScriptWriter generates a narration script for a technical keyword
type ScriptWriter interface {
	Generate(ctx context.Context, keyword string, audience domain.Audience) (string, error)
}

// Coder generates animation code for one marked script concept
type Coder interface {
	VisualCode(ctx context.Context, description, concept, keyword string) (string, error)
}

// VideoWorkflow runs the keyword-to-script pipeline
type VideoWorkflow struct {
	scriptWriter ScriptWriter
	coder        Coder
	maxScenes    int
	maxWorkers   int
}

// NewVideoWorkflow creates the video script pipeline. maxScenes caps how many
// visualization markers get animation code, maxWorkers bounds concurrent code
// generations.
func NewVideoWorkflow(scriptWriter ScriptWriter, coder Coder, maxScenes, maxWorkers int) *VideoWorkflow {
	if maxScenes <= 0 {
		maxScenes = 6
	}
	if maxWorkers <= 0 {
		maxWorkers = 3
	}
	return &VideoWorkflow{
		scriptWriter: scriptWriter,
		coder:        coder,
		maxScenes:    maxScenes,
		maxWorkers:   maxWorkers,
	}
}

// Run generates the script for a keyword, then animation code for every
// marked concept, and assembles the enhanced script with the code inlined
// after each marker. A failed scene is logged and skipped, the script
// itself survives. Scene generation runs concurrently but the enhanced
// script always keeps marker order.
func (w *VideoWorkflow) Run(ctx context.Context, keyword string, audience domain.Audience) (*domain.ScriptResult, error) {
	if !audience.Valid() {
		lgr.Printf("[WARN] unknown audience level %q, using %s", audience, domain.AudienceBeginner)
		audience = domain.AudienceBeginner
	}

	lgr.Printf("[INFO] generating script for %q (audience: %s)", keyword, audience)
	script, err := w.scriptWriter.Generate(ctx, keyword, audience)
	if err != nil {
		return nil, fmt.Errorf("generate script: %w", err)
	}

	titles := parseTitles(script)
	lgr.Printf("[INFO] script has %d chars, %d title suggestions", len(script), len(titles))

	markers := parseMarkers(script)
	if len(markers) > w.maxScenes {
		lgr.Printf("[INFO] capping %d visualization markers to %d scenes", len(markers), w.maxScenes)
		markers = markers[:w.maxScenes]
	}

	result := &domain.ScriptResult{
		Keyword:  keyword,
		Audience: audience,
		Titles:   titles,
		Script:   script,
	}

	if len(markers) == 0 {
		lgr.Printf("[INFO] no visualization markers found, script stays as is")
		result.EnhancedScript = script
		return result, nil
	}

	codes, err := w.generateScenes(ctx, markers, keyword)
	if err != nil {
		return nil, fmt.Errorf("generate scenes: %w", err)
	}

	for i, m := range markers {
		if codes[i] == "" {
			continue
		}
		result.CodeBlocks = append(result.CodeBlocks, domain.CodeBlock{
			Description: m.Description,
			Concept:     m.Concept,
			Code:        codes[i],
		})
	}
	lgr.Printf("[INFO] generated code for %d of %d scenes", len(result.CodeBlocks), len(markers))

	result.EnhancedScript = insertCodeBlocks(script, markers, codes)
	return result, nil
}

// generateScenes produces animation code for each marker, bounded by the
// worker limit. The returned slice is indexed like markers, failed scenes
// hold an empty string. Only context cancellation fails the whole batch.
func (w *VideoWorkflow) generateScenes(ctx context.Context, markers []marker, keyword string) ([]string, error) {
	codes := make([]string, len(markers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.maxWorkers)

	for i, m := range markers {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			lgr.Printf("[DEBUG] generating scene %d: %s", i+1, m.Description)
			code, err := w.coder.VisualCode(gctx, m.Description, m.Concept, keyword)
			if err != nil {
				lgr.Printf("[WARN] scene %d (%s) failed, skipping: %v", i+1, m.Description, err)
				return nil
			}
			codes[i] = code
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return codes, nil
}

// insertCodeBlocks splices generated code into the script after each marker.
// Insertions run back to front so earlier marker offsets stay valid.
func insertCodeBlocks(script string, markers []marker, codes []string) string {
	enhanced := script
	for i := len(markers) - 1; i >= 0; i-- {
		if codes[i] == "" {
			continue
		}
		pos := markers[i].End
		if pos < 0 || pos > len(enhanced) {
			continue
		}
		insertion := fmt.Sprintf("\n\n```python\n# Animation: %s\n%s\n```\n\n", markers[i].Description, codes[i])
		enhanced = enhanced[:pos] + insertion + enhanced[pos:]
	}
	return enhanced
}
