package research

import "fmt"

// panel is a curated research data set for one industry.
type panel struct {
	industry    string
	competitors []CompetitorProfile
	market      MarketAnalysis
	unmetNeeds  []string
	confidence  float64
}

// curatedPanels holds the static competitor panels, keyed by normalized
// industry name. Development tooling is the curated domain today; the map
// is the extension point for further domains.
var curatedPanels = map[string]panel{
	"development": {
		industry: "development",
		competitors: []CompetitorProfile{
			{
				Name:           "GitHub Codespaces",
				Domain:         "github.com/features/codespaces",
				MarketPosition: PositionLeader,
				Strengths:      []string{"GitHub ecosystem integration", "Enterprise trust", "Prebuilt dev containers"},
				Weaknesses:     []string{"Limited offline support", "Pricing scales poorly for teams"},
				Pricing:        "$0.18/hour per 2-core instance",
				UserBase:       "Millions of GitHub users",
				KeyFeatures:    []string{"Cloud dev environments", "VS Code in browser", "Dev container spec"},
				TechStack:      []string{"VS Code", "Docker", "Azure"},
				MarketShare:    28,
				RecentNews:     []string{"Expanded GPU instance availability"},
			},
			{
				Name:           "Replit",
				Domain:         "replit.com",
				MarketPosition: PositionChallenger,
				Strengths:      []string{"Instant onboarding", "AI pair programmer", "Education foothold"},
				Weaknesses:     []string{"Limited offline support", "Weak large-project performance"},
				Pricing:        "Free tier; $20/month Core",
				UserBase:       "20M+ developers",
				KeyFeatures:    []string{"Zero-setup IDE", "Multiplayer editing", "Instant deployment"},
				TechStack:      []string{"Nix", "CodeMirror", "GCP"},
				MarketShare:    22,
				RecentNews:     []string{"Agent-driven app generation launch"},
			},
			{
				Name:           "CodeSandbox",
				Domain:         "codesandbox.io",
				MarketPosition: PositionNiche,
				Strengths:      []string{"Frontend prototyping speed", "Embeddable sandboxes"},
				Weaknesses:     []string{"Weak backend language coverage", "Pricing scales poorly for teams"},
				Pricing:        "Free tier; $15/month Pro",
				UserBase:       "4M+ monthly creators",
				KeyFeatures:    []string{"Instant sandboxes", "npm dependency resolution", "Live collaboration"},
				TechStack:      []string{"MicroVMs", "Node.js"},
				MarketShare:    12,
			},
			{
				Name:           "Gitpod",
				Domain:         "gitpod.io",
				MarketPosition: PositionNiche,
				Strengths:      []string{"Ephemeral workspace model", "Self-hosting option"},
				Weaknesses:     []string{"Limited offline support", "Smaller extension ecosystem"},
				Pricing:        "Free 50 hours; $9/month Personal",
				UserBase:       "1.5M+ developers",
				KeyFeatures:    []string{"Prebuilds", "Workspace snapshots", "Git platform integration"},
				TechStack:      []string{"Kubernetes", "Containerd"},
				MarketShare:    9,
			},
			{
				Name:           "StackBlitz",
				Domain:         "stackblitz.com",
				MarketPosition: PositionEmerging,
				Strengths:      []string{"WebContainers run Node in-browser", "Instant boot times"},
				Weaknesses:     []string{"Browser-runtime compatibility limits", "Smaller extension ecosystem"},
				Pricing:        "Free tier; $18/month Teams",
				UserBase:       "3M+ monthly developers",
				KeyFeatures:    []string{"WebContainers", "Zero-latency HMR", "Shareable environments"},
				TechStack:      []string{"WebAssembly", "Service Workers"},
				MarketShare:    7,
			},
		},
		market: MarketAnalysis{
			Size:       "$4.8B cloud development environment market",
			GrowthRate: "17% CAGR through 2029",
			Trends: []string{
				"AI-assisted coding becoming table stakes",
				"Shift from local to ephemeral cloud environments",
				"Browser-native runtimes maturing",
			},
			Opportunities: []string{
				"AI-native workflows competitors bolt on as extensions",
				"Team pricing models that do not punish growth",
				"Offline-capable hybrid environments",
			},
			Threats: []string{
				"Platform incumbents bundling dev environments for free",
				"Model API cost volatility",
			},
			TargetSegments: []string{
				"Early-stage product teams",
				"Coding educators and bootcamps",
				"Open-source maintainers",
			},
		},
		unmetNeeds: []string{
			"No competitor offers a first-class offline-to-cloud sync story",
			"AI assistance is bolted on rather than driving the core workflow",
		},
		confidence: curatedConfidence,
	},
}

// genericPanel builds the minimal fallback panel for an industry outside
// the curated set. It always contains exactly one generic incumbent so
// downstream stages never see an empty competitor list.
func genericPanel(projectType, industry string) panel {
	label := industry
	if label == "" {
		label = "general web"
	}
	if projectType == "" {
		projectType = "Web Application"
	}

	return panel{
		industry: label,
		competitors: []CompetitorProfile{
			{
				Name:           "Established Incumbent",
				Domain:         "incumbent.example",
				MarketPosition: PositionLeader,
				Strengths:      []string{"Brand recognition", "Existing customer base"},
				Weaknesses:     []string{"Slow release cadence", "Aging user experience"},
				Pricing:        "Custom enterprise pricing",
				UserBase:       "Established market presence",
				KeyFeatures:    []string{"Broad feature coverage"},
				TechStack:      []string{"Legacy web stack"},
				MarketShare:    40,
			},
		},
		market: MarketAnalysis{
			Size:       fmt.Sprintf("Addressable market for %s not sized; industry %q outside curated coverage", projectType, label),
			GrowthRate: "Unknown",
			Trends:     []string{"Buyers expect modern, fast web experiences"},
			Opportunities: []string{
				"Incumbents are slow to modernize",
			},
			Threats: []string{
				"Low barriers to entry attract fast followers",
			},
			TargetSegments: []string{"Underserved small and mid-size buyers"},
		},
		unmetNeeds: []string{
			"Modern user experience at accessible pricing",
		},
		confidence: genericConfidence,
	}
}
