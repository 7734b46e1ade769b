package planner

// Classification vocabulary. All matching is case-insensitive; single-word
// keywords match whole tokens, multi-word keywords match as substrings.

// DefaultProjectType is returned when no vocabulary entry matches.
const DefaultProjectType = "Web Application"

// projectTypeRule maps a keyword set to a project type label.
// Rules are evaluated in order; the first match wins.
type projectTypeRule struct {
	projectType string
	keywords    []string
}

var projectTypeRules = []projectTypeRule{
	{"Development Environment", []string{"ide", "editor", "development environment", "code editor", "devtool"}},
	{"E-commerce Platform", []string{"ecommerce", "e-commerce", "shop", "store", "marketplace", "retail"}},
	{"Content Platform", []string{"blog", "cms", "content management", "publishing", "magazine"}},
	{"SaaS Application", []string{"saas", "dashboard", "analytics", "b2b", "subscription service"}},
	{"Portfolio Site", []string{"portfolio", "landing page", "brochure", "personal site"}},
	{"Community Platform", []string{"social", "community", "forum", "network"}},
}

// Complexity indicator tiers, scanned in priority order.
// The first tier with any keyword present in the combined text decides the
// complexity; text matching nothing defaults to medium.
var complexityTiers = []struct {
	complexity Complexity
	keywords   []string
}{
	{ComplexityEnterprise, []string{"enterprise", "multi-tenant", "compliance", "sso", "audit trail"}},
	{ComplexityHigh, []string{"ai", "machine learning", "real-time", "realtime", "collaborative", "scale", "microservices", "distributed"}},
	{ComplexityMedium, []string{"database", "auth", "authentication", "api", "payment", "integration", "cms"}},
	{ComplexityLow, []string{"simple", "basic", "static", "landing", "brochure"}},
}

// featureRule maps a canonical feature name to its trigger keywords.
type featureRule struct {
	feature  string
	keywords []string
}

// featureRules is ordered so extracted feature lists are deterministic.
var featureRules = []featureRule{
	{"User Authentication", []string{"auth", "authentication", "login", "signup", "sso", "account"}},
	{"Real-time Updates", []string{"real-time", "realtime", "live", "collaborative", "websocket"}},
	{"Database Integration", []string{"database", "storage", "crud", "records", "persistence"}},
	{"API Integration", []string{"api", "webhook", "integration", "third-party"}},
	{"Responsive Design", []string{"responsive", "mobile", "tablet"}},
	{"Payment Processing", []string{"payment", "billing", "subscription", "checkout", "stripe"}},
	{"File Upload", []string{"upload", "file", "media", "attachment"}},
	{"Search Functionality", []string{"search", "filter", "autocomplete"}},
}

// defaultFeatures is returned when no feature keyword matches at all.
// The Planner never returns an empty feature list.
var defaultFeatures = []string{"Responsive Design", "Contact Form", "SEO Optimization"}

// timelineByComplexity is the coarse delivery estimate per tier.
var timelineByComplexity = map[Complexity]string{
	ComplexityLow:        "2-3 weeks",
	ComplexityMedium:     "4-8 weeks",
	ComplexityHigh:       "3-5 months",
	ComplexityEnterprise: "6-12 months",
}

// riskFactorsByComplexity lists the standing delivery risks per tier.
var riskFactorsByComplexity = map[Complexity][]string{
	ComplexityLow: {
		"Scope creep from underspecified requirements",
		"Low differentiation against template-built competitors",
	},
	ComplexityMedium: {
		"Third-party integration instability",
		"Feature scope growing beyond the initial estimate",
		"Insufficient test coverage under schedule pressure",
	},
	ComplexityHigh: {
		"Real-time infrastructure complexity",
		"AI/model dependency costs and rate limits",
		"Scaling bottlenecks under concurrent load",
		"Key-person dependency on specialist skills",
	},
	ComplexityEnterprise: {
		"Compliance and audit requirements extending timelines",
		"Multi-tenant data isolation defects",
		"Organizational coordination overhead",
		"Vendor lock-in on platform services",
	},
}

// successMetricsByComplexity lists the default launch metrics per tier.
var successMetricsByComplexity = map[Complexity][]string{
	ComplexityLow: {
		"Page load time under 2 seconds",
		"Lighthouse score above 90",
	},
	ComplexityMedium: {
		"Weekly active users growing 10% month over month",
		"Conversion rate above 2%",
		"99.5% uptime",
	},
	ComplexityHigh: {
		"Concurrent session capacity of 10,000 users",
		"P95 latency under 200ms",
		"Feature adoption above 40% within 60 days",
		"99.9% uptime",
	},
	ComplexityEnterprise: {
		"SOC 2 readiness at launch",
		"Tenant onboarding under 1 business day",
		"P95 latency under 200ms at contract scale",
		"99.95% uptime",
	},
}

// techStackByProjectType is the recommended baseline stack per project type.
var techStackByProjectType = map[string][]string{
	"Development Environment": {"TypeScript", "Node.js", "WebSockets", "Monaco Editor", "Docker"},
	"E-commerce Platform":     {"Next.js", "Node.js", "PostgreSQL", "Stripe", "Redis"},
	"Content Platform":        {"Next.js", "Headless CMS", "PostgreSQL", "CDN"},
	"SaaS Application":        {"React", "Go", "PostgreSQL", "Redis", "Kubernetes"},
	"Portfolio Site":          {"Next.js", "Tailwind CSS", "Vercel"},
	"Community Platform":      {"React", "Node.js", "PostgreSQL", "WebSockets", "Redis"},
	DefaultProjectType:        {"React", "Node.js", "PostgreSQL", "Tailwind CSS"},
}
