// README: Content orchestrator: picks a vendor, builds prompts per category, parses results.
package planner

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"tripkit/internal/ai"
	"tripkit/internal/config"
	"tripkit/internal/logger"
	"tripkit/internal/maps"
)

// Generator produces starter content for a trip through the configured AI
// vendor. Category failures are isolated; a vendor that produces nothing is
// replaced wholesale by the simulator so creation is never blocked.
type Generator struct {
	cfg       config.AIConfig
	provider  ai.Provider
	simulator ai.Provider
	places    *maps.PlacesService
	log       *zap.SugaredLogger
}

// NewGenerator wires the vendor selected in cfg. A vendor with a missing
// credential degrades to the simulator before any network call is attempted.
// places may be nil; wishlist enrichment is skipped without it.
func NewGenerator(cfg config.AIConfig, places *maps.PlacesService) *Generator {
	return &Generator{
		cfg:       cfg,
		provider:  selectProvider(cfg),
		simulator: ai.NewSimulator(),
		places:    places,
		log:       logger.GetLogger(),
	}
}

func selectProvider(cfg config.AIConfig) ai.Provider {
	if !cfg.Available() {
		return ai.NewSimulator()
	}
	switch cfg.Service {
	case config.ServiceClaude:
		return ai.NewClaudeClient(cfg.ClaudeKey, cfg.ClaudeBaseURL)
	case config.ServiceDeepSeek:
		return ai.NewDeepSeekClient(cfg.DeepSeekKey, cfg.DeepSeekBaseURL)
	case config.ServiceOpenAI:
		return ai.NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIBaseURL)
	case config.ServiceGemini:
		return ai.NewGeminiClient(cfg.GeminiKey)
	default:
		return ai.NewSimulator()
	}
}

// Vendor names the provider that Generate will call first.
func (g *Generator) Vendor() string { return g.provider.Name() }

// Generate builds the four content categories for a trip. The destination is
// normalized, season and travel style are derived from the dates, and each
// category runs its own prompt/completion/parse cycle. Always returns usable
// content; the worst case is empty lists.
func (g *Generator) Generate(ctx context.Context, destination string, days int, startDate time.Time) Content {
	in := ai.PromptInput{
		Destination: NormalizeDestination(destination),
		Days:        days,
		Season:      Season(startDate.Month()),
		TravelStyle: TravelStyle(days),
	}

	content := g.generateWith(ctx, g.provider, in)
	if content.Empty() && g.provider.Name() != g.simulator.Name() {
		g.log.Warnw("vendor produced no content, switching to simulation", "vendor", g.provider.Name())
		content = g.generateWith(ctx, g.simulator, in)
	}

	g.enrichWishlists(ctx, in.Destination, content.Wishlists)
	return content
}

// generateWith runs the prompt cycle for every category against one provider.
// A failed or blank completion falls back to the simulator for that category
// only; a parse failure leaves that category empty.
func (g *Generator) generateWith(ctx context.Context, p ai.Provider, in ai.PromptInput) Content {
	opts := ai.Options{MaxTokens: g.cfg.MaxTokens, Temperature: g.cfg.Temperature}

	var out Content
	for _, category := range ai.Categories() {
		prompt := ai.BuildPrompt(category, in)

		raw, err := p.GenerateCompletion(ctx, prompt, opts)
		if err != nil || strings.TrimSpace(raw) == "" {
			if err != nil {
				g.log.Warnw("completion failed", "vendor", p.Name(), "category", category, "error", err)
			}
			if p.Name() == g.simulator.Name() {
				continue
			}
			raw, _ = g.simulator.GenerateCompletion(ctx, prompt, opts)
		}

		list := toFields(ai.ExtractJSONArray(string(category), raw))
		if len(list) == 0 {
			g.log.Warnw("category yielded no entries", "vendor", p.Name(), "category", category)
		}
		switch category {
		case ai.CategoryChecklist:
			out.Checklists = list
		case ai.CategoryItems:
			out.Items = list
		case ai.CategoryLocalInfo:
			out.LocalInfos = list
		case ai.CategoryWishlist:
			out.Wishlists = list
		}
	}
	return out
}

func toFields(entries []map[string]any) []Fields {
	out := make([]Fields, 0, len(entries))
	for _, e := range entries {
		out = append(out, Fields(e))
	}
	return out
}

// enrichWishlists backfills address and rating from the Places API for
// entries that lack them. Best effort; lookup failures are ignored.
func (g *Generator) enrichWishlists(ctx context.Context, destination string, wishlists []Fields) {
	if g.places == nil {
		return
	}
	for _, w := range wishlists {
		name, _ := w["place_name"].(string)
		if name == "" {
			continue
		}
		if addr, ok := w["address"].(string); ok && addr != "" {
			continue
		}

		place, err := g.places.FindPlace(ctx, name, destination)
		if err != nil {
			g.log.Debugw("place lookup failed", "place", name, "error", err)
			continue
		}
		w["address"] = place.Address
		if _, ok := w["rating"]; !ok && place.Rating > 0 {
			w["rating"] = float64(place.Rating)
		}
	}
}
