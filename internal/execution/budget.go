package execution

import (
	"fmt"
	"math"

	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/judge"
)

// contingencyRate is the share of the scaled subtotal reserved as
// contingency.
const contingencyRate = 0.10

type budgetLine struct {
	category    string
	base        float64
	description string
}

var budgetCatalogue = []budgetLine{
	{"Engineering Team", 180000, "Salaries and contractors across all phases"},
	{"AI & API Costs", 24000, "Model inference, embeddings, and third-party AI APIs"},
	{"Infrastructure & Hosting", 18000, "Cloud compute, storage, and networking"},
	{"Third-Party Services", 12000, "Payments, email, analytics, and monitoring vendors"},
	{"Marketing & Launch", 30000, "Launch campaign, content, and early acquisition"},
}

// tierMultiplier scales the budget baseline by the plan's investment tier.
func tierMultiplier(tier judge.InvestmentTier) float64 {
	switch tier {
	case judge.TierLow:
		return 0.5
	case judge.TierMedium:
		return 1.0
	case judge.TierHigh:
		return 1.5
	case judge.TierVeryHigh:
		return 2.25
	default:
		return 1.0
	}
}

// buildBudget scales the fixed category list by investment tier and
// appends a contingency line worth 10% of the scaled subtotal.
func buildBudget(tier judge.InvestmentTier) []BudgetItem {
	multiplier := tierMultiplier(tier)

	items := make([]BudgetItem, 0, len(budgetCatalogue)+1)
	subtotal := 0.0
	for _, line := range budgetCatalogue {
		amount := math.Round(line.base * multiplier)
		subtotal += amount
		items = append(items, BudgetItem{
			Category:    line.category,
			Estimated:   amount,
			Allocated:   amount,
			Description: line.description,
		})
	}

	contingency := math.Round(subtotal * contingencyRate)
	items = append(items, BudgetItem{
		Category:    "Contingency",
		Estimated:   contingency,
		Allocated:   contingency,
		Description: fmt.Sprintf("%.0f%% reserve against the %s tier baseline", contingencyRate*100, tier),
	})

	return items
}

// Readiness factor weights. Each factor is a fixed confidence constant in
// this design; the weights are the contract and the constants are the
// placeholder inputs.
const (
	weightTechnicalFeasibility = 0.25
	weightResourceAvailability = 0.20
	weightMarketTiming         = 0.25
	weightRiskManagement       = 0.15
	weightBudgetRealism        = 0.15
)

const (
	factorTechnicalFeasibility = 0.85
	factorResourceAvailability = 0.75
	factorMarketTiming         = 0.80
	factorRiskManagement       = 0.70
	factorBudgetRealism        = 0.75
)

// readinessScore is the weighted confidence (0-100) that execution can
// start.
func readinessScore() int {
	weighted := factorTechnicalFeasibility*weightTechnicalFeasibility +
		factorResourceAvailability*weightResourceAvailability +
		factorMarketTiming*weightMarketTiming +
		factorRiskManagement*weightRiskManagement +
		factorBudgetRealism*weightBudgetRealism
	return int(math.Round(weighted * 100))
}
