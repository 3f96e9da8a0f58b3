package models

// ProjectStatus — стадия финансирования проекта.
type ProjectStatus string

const (
	StatusFunded   ProjectStatus = "funded"
	StatusOnHold   ProjectStatus = "on_hold"
	StatusProposed ProjectStatus = "proposed"
)

// ProjectSector — отрасль проекта.
type ProjectSector string

const (
	SectorEnergy         ProjectSector = "energy"
	SectorInfrastructure ProjectSector = "infrastructure"
	SectorAgriculture    ProjectSector = "agriculture"
	SectorTechnology     ProjectSector = "technology"
	SectorHealthcare     ProjectSector = "healthcare"
	SectorEducation      ProjectSector = "education"
	SectorWater          ProjectSector = "water"
	SectorFinance        ProjectSector = "finance"
)

// RiskLevel — качественный уровень риска.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Project — проект из справочника, пересчитываемый на каждый запрос.
type Project struct {
	ID              string        `json:"id" yaml:"id"`
	Name            string        `json:"name" yaml:"name"`
	Description     string        `json:"description" yaml:"description"`
	Country         string        `json:"country" yaml:"country"`
	Status          ProjectStatus `json:"status" yaml:"status"`
	Sector          ProjectSector `json:"sector" yaml:"sector"`
	Budget          float64       `json:"budget" yaml:"budget"` // млн
	StartDate       string        `json:"startDate" yaml:"start_date"`
	ExpectedEndDate string        `json:"expectedEndDate" yaml:"expected_end_date"`
	CurrentRisk     RiskLevel     `json:"currentRisk" yaml:"current_risk"`
	PreviousRisk    *RiskLevel    `json:"previousRisk,omitempty" yaml:"previous_risk,omitempty"`
	RiskFactors     []string      `json:"riskFactors" yaml:"risk_factors"`
	ImpactAnalysis  string        `json:"impactAnalysis" yaml:"impact_analysis"`
}

// Clone возвращает глубокую копию проекта.
func (p Project) Clone() Project {
	out := p
	out.RiskFactors = append([]string(nil), p.RiskFactors...)
	if p.PreviousRisk != nil {
		prev := *p.PreviousRisk
		out.PreviousRisk = &prev
	}

	return out
}
