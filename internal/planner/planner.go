// Package planner implements the first stage of the strategy pipeline.
// It classifies a natural-language project description into a typed
// ProjectAnalysis via fixed keyword vocabularies. The stage is pure and
// never fails: unclassifiable input degrades to generic defaults with
// lowered confidence.
package planner

import (
	"context"
	"log/slog"
	"strings"
)

// Analyzer classifies project requests. Safe for concurrent use.
type Analyzer struct {
	logger *slog.Logger
}

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*Analyzer)

// WithLogger sets the structured logger. Default: slog.Default().
func WithLogger(logger *slog.Logger) AnalyzerOption {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer(opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze classifies the project described by description and requirements.
// It always returns a complete analysis; malformed or ambiguous input falls
// back to "Web Application" with medium complexity rather than erroring.
func (a *Analyzer) Analyze(ctx context.Context, description, requirements string) *ProjectAnalysis {
	text := normalize(description + " " + requirements)

	projectType, typeMatched := classifyProjectType(text)
	complexity, complexityMatched := classifyComplexity(text)
	features, featuresMatched := extractFeatures(text)

	stack, ok := techStackByProjectType[projectType]
	if !ok {
		stack = techStackByProjectType[DefaultProjectType]
	}

	analysis := &ProjectAnalysis{
		ProjectType:       projectType,
		Complexity:        complexity,
		RequiredFeatures:  features,
		TechnicalStack:    append([]string(nil), stack...),
		EstimatedTimeline: timelineByComplexity[complexity],
		RiskFactors:       append([]string(nil), riskFactorsByComplexity[complexity]...),
		SuccessMetrics:    append([]string(nil), successMetricsByComplexity[complexity]...),
		Confidence:        classificationConfidence(typeMatched, complexityMatched, featuresMatched),
	}

	a.logger.DebugContext(ctx, "project analyzed",
		"project_type", analysis.ProjectType,
		"complexity", analysis.Complexity,
		"features", len(analysis.RequiredFeatures),
		"confidence", analysis.Confidence,
	)

	return analysis
}

// classifyProjectType returns the first matching project type rule and
// whether any rule matched.
func classifyProjectType(text string) (string, bool) {
	for _, rule := range projectTypeRules {
		for _, kw := range rule.keywords {
			if matchKeyword(text, kw) {
				return rule.projectType, true
			}
		}
	}
	return DefaultProjectType, false
}

// classifyComplexity scans tiers in priority order and returns the first
// tier with a keyword hit, defaulting to medium.
func classifyComplexity(text string) (Complexity, bool) {
	for _, tier := range complexityTiers {
		for _, kw := range tier.keywords {
			if matchKeyword(text, kw) {
				return tier.complexity, true
			}
		}
	}
	return ComplexityMedium, false
}

// extractFeatures returns every canonical feature with a keyword hit, in
// table order, and whether any keyword matched. When nothing matches, a
// generic default trio is returned so the list is never empty.
func extractFeatures(text string) ([]string, bool) {
	var features []string
	for _, rule := range featureRules {
		for _, kw := range rule.keywords {
			if matchKeyword(text, kw) {
				features = append(features, rule.feature)
				break
			}
		}
	}

	if len(features) == 0 {
		return append([]string(nil), defaultFeatures...), false
	}
	return features, true
}

// classificationConfidence derives the stage confidence from how much of
// the vocabulary matched. Fully generic input bottoms out at 0.6.
func classificationConfidence(typeMatched, complexityMatched, featuresMatched bool) float64 {
	confidence := 0.6
	if typeMatched {
		confidence += 0.15
	}
	if complexityMatched {
		confidence += 0.1
	}
	if featuresMatched {
		confidence += 0.1
	}
	return confidence
}

func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// matchKeyword reports whether kw occurs in text. Multi-word keywords match
// as substrings; single-word keywords must match a whole token so short
// keywords like "ai" don't fire inside unrelated words.
func matchKeyword(text, kw string) bool {
	if strings.ContainsRune(kw, ' ') {
		return strings.Contains(text, kw)
	}
	for _, token := range tokenize(text) {
		if token == kw {
			return true
		}
	}
	return false
}

// tokenize splits text into lowercase tokens, keeping hyphens so compound
// keywords like "real-time" survive as single tokens.
func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			return false
		default:
			return true
		}
	})
}
