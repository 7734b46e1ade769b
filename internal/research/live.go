package research

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
)

// defaultLiveTimeout bounds the single LLM call a live research pass makes.
// The pipeline must never block Recommender on a slow provider.
const defaultLiveTimeout = 30 * time.Second

// liveConfidence is the confidence attached to a successful live pass.
const liveConfidence = 0.75

// LiveProvider backs the Researcher stage with an LLM via langchaingo.
// On any failure, timeout, or unparseable response it falls back to the
// static panel and marks the result degraded; it never surfaces an error
// to the pipeline.
type LiveProvider struct {
	model    llms.Model
	fallback Provider
	timeout  time.Duration
	logger   *slog.Logger
}

// LiveProviderOption configures a LiveProvider.
type LiveProviderOption func(*LiveProvider)

// WithLiveTimeout bounds the LLM call. Default: 30s.
func WithLiveTimeout(d time.Duration) LiveProviderOption {
	return func(p *LiveProvider) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithLiveLogger sets the structured logger. Default: slog.Default().
func WithLiveLogger(logger *slog.Logger) LiveProviderOption {
	return func(p *LiveProvider) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithFallback sets the provider used when the live call fails.
// Default: NewStaticProvider().
func WithFallback(fallback Provider) LiveProviderOption {
	return func(p *LiveProvider) {
		if fallback != nil {
			p.fallback = fallback
		}
	}
}

// NewLiveProvider creates a LiveProvider around the given model.
func NewLiveProvider(model llms.Model, opts ...LiveProviderOption) *LiveProvider {
	p := &LiveProvider{
		model:    model,
		fallback: NewStaticProvider(),
		timeout:  defaultLiveTimeout,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Research queries the model for a competitor panel and market analysis.
// The response must be a JSON document matching the Result schema; anything
// else degrades to the static panel.
func (p *LiveProvider) Research(ctx context.Context, projectType, industry string) (*Result, error) {
	callCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	response, err := llms.GenerateFromSinglePrompt(callCtx, p.model, researchPrompt(projectType, industry))
	if err != nil {
		p.logger.WarnContext(ctx, "live research failed, falling back to static panel",
			"industry", industry,
			"timeout", errors.Is(err, context.DeadlineExceeded),
			"error", err,
		)
		return p.degraded(ctx, projectType, industry)
	}

	result, err := parseLiveResult(response)
	if err != nil {
		p.logger.WarnContext(ctx, "live research response unusable, falling back to static panel",
			"industry", industry,
			"error", err,
		)
		return p.degraded(ctx, projectType, industry)
	}

	result.Industry = industry
	result.Confidence = liveConfidence
	result.CompetitiveGaps = competitiveGaps(result.CompetitiveGaps, result.Competitors)
	if len(result.Recommendations) == 0 {
		result.Recommendations = contextualizedRecommendations(result.Competitors)
	}
	return result, nil
}

// degraded serves the static panel flagged as degraded. The fallback
// contract means this path cannot fail.
func (p *LiveProvider) degraded(ctx context.Context, projectType, industry string) (*Result, error) {
	result, err := p.fallback.Research(ctx, projectType, industry)
	if err != nil {
		// Static fallback never errors; any custom fallback that does is
		// replaced by the generic panel to keep the stage total.
		static := NewStaticProvider()
		result, _ = static.Research(ctx, projectType, industry)
	}
	result.Degraded = true
	return result, nil
}

// parseLiveResult decodes the model response, tolerating surrounding prose
// by extracting the outermost JSON object.
func parseLiveResult(response string) (*Result, error) {
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var result Result
	if err := json.Unmarshal([]byte(response[start:end+1]), &result); err != nil {
		return nil, fmt.Errorf("decoding research payload: %w", err)
	}

	if len(result.Competitors) == 0 {
		return nil, fmt.Errorf("research payload has no competitors")
	}
	for _, c := range result.Competitors {
		if !c.MarketPosition.IsValid() {
			return nil, fmt.Errorf("competitor %q has invalid market position %q", c.Name, c.MarketPosition)
		}
	}

	return &result, nil
}

func researchPrompt(projectType, industry string) string {
	return fmt.Sprintf(`You are a competitive research analyst. Produce a JSON object describing the current market for a %s in the %s industry.

The object must have these fields: "competitors" (array of objects with "name", "domain", "market_position" being one of leader/challenger/niche/emerging, "strengths", "weaknesses", "pricing", "user_base", "key_features", "tech_stack", "market_share" 0-100), "market" (object with "size", "growth_rate", "trends", "opportunities", "threats", "target_segments"), and "competitive_gaps" (array of unmet-need statements).

Respond with only the JSON object.`, projectType, industry)
}

var _ Provider = (*LiveProvider)(nil)
