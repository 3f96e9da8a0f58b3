// risk — пересчёт уровня риска проекта по макросигналам страны.
package risk

import (
	"fmt"

	"github.com/pribylovaa/risk-sense/internal/models"
)

// Значения по умолчанию, если сигнал получить не удалось.
const (
	DefaultGDPGrowth  = 1.5
	DefaultInflation  = 3.0
	DefaultNewsImpact = 0.0
)

// Signals — входные сигналы пересчёта.
type Signals struct {
	GDPGrowth  float64 // %
	Inflation  float64 // %
	NewsImpact float64 // [-1, 1]
}

// DefaultSignals — нейтральные сигналы.
func DefaultSignals() Signals {
	return Signals{GDPGrowth: DefaultGDPGrowth, Inflation: DefaultInflation, NewsImpact: DefaultNewsImpact}
}

// Score суммирует вклад сигналов и отраслевую поправку.
func Score(sector models.ProjectSector, s Signals) int {
	score := 0

	switch {
	case s.GDPGrowth < 0:
		score += 2
	case s.GDPGrowth < 1:
		score++
	case s.GDPGrowth > 3:
		score--
	}

	switch {
	case s.Inflation > 7:
		score += 2
	case s.Inflation > 4:
		score++
	case s.Inflation < 2:
		score--
	}

	switch {
	case s.NewsImpact < -0.5:
		score += 2
	case s.NewsImpact < 0:
		score++
	case s.NewsImpact > 0.5:
		score--
	}

	switch sector {
	case models.SectorEnergy:
		if s.Inflation > 5 {
			score++
		}
	case models.SectorInfrastructure:
		if s.GDPGrowth < 1 {
			score++
		}
	case models.SectorAgriculture:
		if s.NewsImpact < 0 {
			score++
		}
	}

	return score
}

// LevelForScore: >=3 critical, >=1 high, >=-1 medium, иначе low.
func LevelForScore(score int) models.RiskLevel {
	switch {
	case score >= 3:
		return models.RiskCritical
	case score >= 1:
		return models.RiskHigh
	case score >= -1:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

// Rescore возвращает копию проекта с новым уровнем риска.
// PreviousRisk всегда получает прежний CurrentRisk; ImpactAnalysis
// переписывается только при смене уровня.
func Rescore(p models.Project, s Signals) models.Project {
	out := p.Clone()

	prev := p.CurrentRisk
	out.PreviousRisk = &prev
	out.CurrentRisk = LevelForScore(Score(p.Sector, s))

	if out.CurrentRisk != prev {
		out.ImpactAnalysis = impactText(prev, out.CurrentRisk, s)
	}

	return out
}

// RescoreAll применяет Rescore к каждому проекту.
func RescoreAll(projects []models.Project, s Signals) []models.Project {
	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		out = append(out, Rescore(p, s))
	}

	return out
}

var severity = map[models.RiskLevel]int{
	models.RiskLow:      0,
	models.RiskMedium:   1,
	models.RiskHigh:     2,
	models.RiskCritical: 3,
}

func impactText(prev, cur models.RiskLevel, s Signals) string {
	econ := fmt.Sprintf("GDP: %.1f%%, Inflation: %.1f%%", s.GDPGrowth, s.Inflation)
	raised := severity[cur] > severity[prev]

	switch cur {
	case models.RiskCritical:
		return fmt.Sprintf("CRITICAL ALERT: Project viability at significant risk due to deteriorating economic conditions (%s) and negative sentiment. Recommend immediate reevaluation.", econ)
	case models.RiskHigh:
		if raised {
			return fmt.Sprintf("Risk elevated to HIGH: Economic indicators (%s) and market sentiment have worsened. Budget and timeline pressures expected.", econ)
		}
		return fmt.Sprintf("Risk reduced to HIGH: Conditions have eased slightly (%s) but significant pressures on budget and timeline remain.", econ)
	case models.RiskMedium:
		if raised {
			return fmt.Sprintf("Risk elevated to MEDIUM: Economic indicators (%s) and market sentiment point to emerging pressures that warrant closer monitoring.", econ)
		}
		return fmt.Sprintf("Risk reduced to MEDIUM: Improving economic conditions (%s) support a more favorable outlook, though challenges remain.", econ)
	default:
		return fmt.Sprintf("Risk decreased to LOW: Strong economic performance (%s) and positive market sentiment support optimal project conditions.", econ)
	}
}
