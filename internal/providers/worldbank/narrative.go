package worldbank

import (
	"fmt"
	"math"

	"github.com/pribylovaa/risk-sense/internal/models"
)

// signals — последние значения, по которым выбираются формулировки.
type signals struct {
	growth       *float64
	unemployment *float64
	inflation    *float64
	highIncome   bool
}

func basicSummary(p models.CountryProfile) []string {
	return []string{
		fmt.Sprintf("%s is a %s country located in %s.", p.Name, p.IncomeLevel, p.Region),
		fmt.Sprintf("With a GDP of %s, it has various economic and development characteristics.", p.GDP),
		fmt.Sprintf("The country's capital city is %s and it has a %s economy.", p.Capital, p.IncomeLevel),
	}
}

func basicAnalysis(p models.CountryProfile) []string {
	return []string{
		fmt.Sprintf("%s's economic position as a %s economy reflects its current development status.", p.Name, p.IncomeLevel),
		"Recent economic data shows some important trends and indicators that provide insights into the country's financial health.",
		fmt.Sprintf("Regional and global economic factors continue to influence %s's economic trajectory.", p.Name),
	}
}

func detailedSummary(p models.CountryProfile, s signals) []string {
	growth := "varying"
	if s.growth != nil {
		growth = "negative"
		if *s.growth > 0 {
			growth = "positive"
		}
	}

	outlook := "a mixed economic picture"
	if s.growth != nil && s.inflation != nil && s.unemployment != nil {
		outlook = "some economic challenges"
		if *s.growth > 2 && *s.inflation < 5 && *s.unemployment < 7 {
			outlook = "a relatively stable economy"
		}
	}

	return []string{
		fmt.Sprintf("%s is a %s country located in %s.", p.Name, p.IncomeLevel, p.Region),
		fmt.Sprintf("With a GDP of %s, the country has experienced %s economic growth recently.", p.GDP, growth),
		fmt.Sprintf("Key economic indicators suggest %s.", outlook),
	}
}

func detailedAnalysis(p models.CountryProfile, s signals) []string {
	out := make([]string, 0, 4)

	switch {
	case s.growth == nil:
		out = append(out, fmt.Sprintf("%s's economy shows mixed growth patterns.", p.Name))
	case *s.growth > 0:
		out = append(out, fmt.Sprintf("%s's economy is growing at %s.", p.Name, formatPercent(*s.growth)))
	default:
		out = append(out, fmt.Sprintf("%s's economy is contracting at %s.", p.Name, formatPercent(math.Abs(*s.growth))))
	}

	if s.unemployment != nil {
		trend := "remains a concern"
		if unemploymentImproved(p.Indicators) {
			trend = "has improved from previous periods"
		}
		out = append(out, fmt.Sprintf("The unemployment rate of %s %s.", formatPercent(*s.unemployment), trend))
	} else {
		out = append(out, "Employment data shows mixed results.")
	}

	if s.inflation != nil {
		state := "is relatively controlled"
		if *s.inflation > 3 {
			state = "remains elevated"
		}
		out = append(out, fmt.Sprintf("Inflation %s at %s.", state, formatPercent(*s.inflation)))
	} else {
		out = append(out, "Price stability shows varying patterns.")
	}

	hurdles := "development hurdles that require strategic policy responses"
	if s.highIncome {
		hurdles = "challenges typical of advanced economies"
	}
	out = append(out, fmt.Sprintf("As a %s economy, %s faces %s.", p.IncomeLevel, p.Name, hurdles))

	return out
}

func unemploymentImproved(indicators []models.EconomicIndicator) bool {
	for _, ind := range indicators {
		if ind.Indicator == "Unemployment Rate" {
			return ind.Change.Direction == models.DirectionUp
		}
	}

	return false
}
