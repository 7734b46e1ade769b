package research

import "context"

// MarketPosition classifies a competitor's standing in its market.
type MarketPosition string

const (
	PositionLeader     MarketPosition = "leader"
	PositionChallenger MarketPosition = "challenger"
	PositionNiche      MarketPosition = "niche"
	PositionEmerging   MarketPosition = "emerging"
)

// String returns the string representation of the market position.
func (p MarketPosition) String() string {
	return string(p)
}

// IsValid returns true if the position is a known value.
func (p MarketPosition) IsValid() bool {
	switch p {
	case PositionLeader, PositionChallenger, PositionNiche, PositionEmerging:
		return true
	default:
		return false
	}
}

// CompetitorProfile describes one competitor in the researched market.
type CompetitorProfile struct {
	Name           string         `json:"name"`
	Domain         string         `json:"domain"`
	MarketPosition MarketPosition `json:"market_position"`
	Strengths      []string       `json:"strengths"`
	Weaknesses     []string       `json:"weaknesses"`
	Pricing        string         `json:"pricing"`
	UserBase       string         `json:"user_base"`
	KeyFeatures    []string       `json:"key_features"`
	TechStack      []string       `json:"tech_stack"`

	// MarketShare is an estimated share of the addressable market (0-100).
	MarketShare float64 `json:"market_share"`

	RecentNews []string `json:"recent_news,omitempty"`
}

// MarketAnalysis summarizes the researched market as a whole.
type MarketAnalysis struct {
	Size           string   `json:"size"`
	GrowthRate     string   `json:"growth_rate"`
	Trends         []string `json:"trends"`
	Opportunities  []string `json:"opportunities"`
	Threats        []string `json:"threats"`
	TargetSegments []string `json:"target_segments"`
}

// Result is the Researcher stage output: a competitor panel plus market
// analysis, derived gaps, and contextualized recommendations.
type Result struct {
	Industry        string              `json:"industry"`
	Competitors     []CompetitorProfile `json:"competitors"`
	Market          MarketAnalysis      `json:"market"`
	CompetitiveGaps []string            `json:"competitive_gaps"`
	Recommendations []string            `json:"recommendations"`

	// Confidence reflects data quality: lower for the generic fallback
	// panel than for a curated or live-researched one.
	Confidence float64 `json:"confidence"`

	// Degraded is set when a live provider failed or timed out and the
	// static panel was substituted. It is a quality flag, not an error.
	Degraded bool `json:"degraded"`
}

// Provider produces research data for a project domain. The static
// in-memory implementation is the default; a live web-research client can
// be substituted behind the same contract without touching downstream
// stages.
type Provider interface {
	Research(ctx context.Context, projectType, industry string) (*Result, error)
}
