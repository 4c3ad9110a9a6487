package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/captionkit-backend/internal/domain"
)

const (
	PhaseReset    = "reset"
	PhaseCaptions = "captions"
)

// allPhases defines the canonical execution order. Reset runs only when
// requested explicitly.
var allPhases = []string{PhaseCaptions}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Removed  int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// Pipeline seeds the saved-captions store with rendered demo captions.
type Pipeline struct {
	log      *slog.Logger
	store    CaptionStore
	renderer Renderer
	cfg      Config
	results  map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, store CaptionStore, renderer Renderer, cfg Config) *Pipeline {
	return &Pipeline{
		log:      log,
		store:    store,
		renderer: renderer,
		cfg:      cfg,
		results:  make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases
// run, always in the order reset, captions.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun := allPhases
	if len(phases) > 0 {
		filter := make(map[string]bool, len(phases))
		for _, ph := range phases {
			switch ph {
			case PhaseReset, PhaseCaptions:
				filter[ph] = true
			default:
				return fmt.Errorf("unknown phase %q", ph)
			}
		}
		toRun = nil
		for _, ph := range []string{PhaseReset, PhaseCaptions} {
			if filter[ph] {
				toRun = append(toRun, ph)
			}
		}
	}

	for _, phase := range toRun {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case PhaseReset:
			result = p.runReset(ctx)
		case PhaseCaptions:
			result = p.runCaptions(ctx)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
		} else {
			p.log.Info("phase completed",
				slog.String("phase", phase),
				slog.Int("inserted", result.Inserted),
				slog.Int("removed", result.Removed),
				slog.Int("skipped", result.Skipped),
				slog.Duration("duration", result.Duration),
			)
		}
	}

	p.log.Info("pipeline completed",
		slog.Int("phases_run", len(toRun)),
		slog.Int("saved_total", p.store.Count()),
	)
	return nil
}

func (p *Pipeline) runReset(ctx context.Context) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: p.store.Count()}
	}
	return PhaseResult{Removed: p.store.ClearAll(ctx)}
}

// runCaptions renders every prompt, rotating through the configured styles
// and niches, and saves the first PerPrompt captions of each batch.
func (p *Pipeline) runCaptions(ctx context.Context) PhaseResult {
	if len(p.cfg.Prompts) == 0 {
		return PhaseResult{Err: fmt.Errorf("no prompts configured")}
	}
	if p.cfg.PerPrompt <= 0 {
		return PhaseResult{Err: fmt.Errorf("per_prompt must be > 0 (got %d)", p.cfg.PerPrompt)}
	}

	styles := resolveStyles(p.cfg.Styles)
	niches := resolveNiches(p.cfg.Niches)

	var result PhaseResult
	for i, prompt := range p.cfg.Prompts {
		style := styles[i%len(styles)]
		niche := niches[i%len(niches)]

		captions := p.renderer.Render(prompt, style, niche)
		if len(captions) > p.cfg.PerPrompt {
			captions = captions[:p.cfg.PerPrompt]
		}

		if p.cfg.DryRun {
			result.Skipped += len(captions)
			continue
		}

		for _, c := range captions {
			_, created, err := p.store.Save(ctx, c)
			switch {
			case err != nil:
				result.Errors++
				p.log.Warn("save seed caption",
					slog.String("prompt", prompt),
					slog.String("error", err.Error()),
				)
			case created:
				result.Inserted++
			default:
				result.Skipped++
			}
		}
	}
	return result
}

func resolveStyles(raw []string) []domain.Style {
	if len(raw) == 0 {
		return domain.Styles
	}
	out := make([]domain.Style, len(raw))
	for i, s := range raw {
		out[i] = domain.ResolveStyle(s)
	}
	return out
}

func resolveNiches(raw []string) []domain.Niche {
	if len(raw) == 0 {
		return domain.Niches
	}
	out := make([]domain.Niche, len(raw))
	for i, n := range raw {
		out[i] = domain.ResolveNiche(n)
	}
	return out
}
