// Package research implements the Researcher stage of the strategy
// pipeline. The default provider serves curated static competitor panels
// per known industry; unknown industries get a minimal generic panel. An
// optional live provider can wrap an LLM and falls back to the static
// panel on failure.
package research

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// Confidence levels by panel origin.
const (
	curatedConfidence = 0.85
	genericConfidence = 0.55
)

// sharedWeaknessThreshold is the minimum number of competitors that must
// share a weakness before it counts as a competitive gap.
const sharedWeaknessThreshold = 2

// maxSharedWeaknessGaps caps how many shared weaknesses are promoted to
// competitive gaps.
const maxSharedWeaknessGaps = 3

// StaticProvider serves curated in-memory research panels. It performs no
// network calls and never returns an error.
type StaticProvider struct {
	logger *slog.Logger
}

// StaticProviderOption configures a StaticProvider.
type StaticProviderOption func(*StaticProvider)

// WithStaticLogger sets the structured logger. Default: slog.Default().
func WithStaticLogger(logger *slog.Logger) StaticProviderOption {
	return func(p *StaticProvider) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewStaticProvider creates a StaticProvider.
func NewStaticProvider(opts ...StaticProviderOption) *StaticProvider {
	p := &StaticProvider{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Research returns the curated panel for a known industry, or the generic
// fallback panel for an unrecognized one. The competitor list is never
// empty and the method never errors.
func (p *StaticProvider) Research(ctx context.Context, projectType, industry string) (*Result, error) {
	key := strings.ToLower(strings.TrimSpace(industry))

	panel, known := curatedPanels[key]
	if !known {
		panel = genericPanel(projectType, industry)
		p.logger.DebugContext(ctx, "industry not in curated set, using generic panel",
			"industry", industry)
	}

	result := &Result{
		Industry:    panel.industry,
		Competitors: clone(panel.competitors),
		Market:      panel.market,
		Confidence:  panel.confidence,
	}
	result.CompetitiveGaps = competitiveGaps(panel.unmetNeeds, result.Competitors)
	result.Recommendations = contextualizedRecommendations(result.Competitors)

	return result, nil
}

// competitiveGaps combines the panel's fixed unmet-need statements with
// weaknesses shared by at least two competitors. Shared weaknesses are
// ranked by frequency (ties keep first-appearance order) and capped.
func competitiveGaps(unmetNeeds []string, competitors []CompetitorProfile) []string {
	gaps := append([]string(nil), unmetNeeds...)

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0
	for _, c := range competitors {
		for _, w := range c.Weaknesses {
			if _, seen := firstSeen[w]; !seen {
				firstSeen[w] = order
				order++
			}
			counts[w]++
		}
	}

	var shared []string
	for w, n := range counts {
		if n >= sharedWeaknessThreshold {
			shared = append(shared, w)
		}
	}
	sort.SliceStable(shared, func(i, j int) bool {
		if counts[shared[i]] != counts[shared[j]] {
			return counts[shared[i]] > counts[shared[j]]
		}
		return firstSeen[shared[i]] < firstSeen[shared[j]]
	})
	if len(shared) > maxSharedWeaknessGaps {
		shared = shared[:maxSharedWeaknessGaps]
	}

	for _, w := range shared {
		gaps = append(gaps, fmt.Sprintf("Shared competitor weakness: %s", w))
	}
	return gaps
}

// contextualizedRecommendations returns the fixed ranked recommendation
// list with competitor names substituted in.
func contextualizedRecommendations(competitors []CompetitorProfile) []string {
	leader := competitors[0].Name
	trailer := competitors[len(competitors)-1].Name

	return []string{
		fmt.Sprintf("Position against %s on speed of getting from idea to published site", leader),
		"Lead with AI-assisted workflows as the primary differentiator",
		fmt.Sprintf("Target the segments %s serves poorly before expanding upmarket", trailer),
		"Price for teams from day one; per-seat friction is a recurring complaint",
	}
}

func clone(competitors []CompetitorProfile) []CompetitorProfile {
	out := make([]CompetitorProfile, len(competitors))
	copy(out, competitors)
	return out
}

var _ Provider = (*StaticProvider)(nil)
