package models

// Overview — вкладка Overview.
type Overview struct {
	Population     string   `json:"population"`
	PopulationYear string   `json:"populationYear"`
	GDP            string   `json:"gdp"`
	GDPPerCapita   string   `json:"gdpPerCapita"`
	Government     string   `json:"government"`
	Summary        []string `json:"summary"`
}

// EconomicData — вкладка Economic.
type EconomicData struct {
	Indicators []EconomicIndicator `json:"indicators"`
	Analysis   []string            `json:"analysis"`
}

// NewsData — вкладка News.
type NewsData struct {
	Items     []NewsItem         `json:"items"`
	Sentiment SentimentBreakdown `json:"sentiment"`
}

// InsightContent — вкладка AI Insights.
type InsightContent struct {
	Content           string             `json:"content"`
	FollowUpQuestions []FollowUpQuestion `json:"followUpQuestions"`
}

// Analysis — объединённый ответ /api/analyze.
type Analysis struct {
	CountryCode  string         `json:"countryCode"`
	CountryName  string         `json:"countryName"`
	Query        string         `json:"query"`
	Overview     Overview       `json:"overview"`
	EconomicData EconomicData   `json:"economicData"`
	NewsData     NewsData       `json:"newsData"`
	AIInsights   InsightContent `json:"aiInsights"`
}

// CreditRating — суверенный рейтинг S&P.
type CreditRating struct {
	CountryCode string `json:"countryCode" yaml:"country_code"`
	Rating      string `json:"rating" yaml:"rating"`
	Outlook     string `json:"outlook" yaml:"outlook"`
	DateUpdated string `json:"dateUpdated" yaml:"date_updated"`
}

// DisasterRisk — показатели World Risk Index.
type DisasterRisk struct {
	CountryCode        string   `json:"countryCode" yaml:"country_code"`
	WRIRank            *int     `json:"wriRank,omitempty" yaml:"wri_rank,omitempty"`
	WRIScore           *float64 `json:"wriScore,omitempty" yaml:"wri_score,omitempty"`
	ExposureScore      *float64 `json:"exposureScore,omitempty" yaml:"exposure_score,omitempty"`
	VulnerabilityScore *float64 `json:"vulnerabilityScore,omitempty" yaml:"vulnerability_score,omitempty"`
	Year               int      `json:"year" yaml:"year"`
}

// RiskRating — ответ /api/risk-rating/{code}.
type RiskRating struct {
	CountryCode  string        `json:"countryCode"`
	CreditRating *CreditRating `json:"creditRating,omitempty"`
	DisasterRisk *DisasterRisk `json:"disasterRisk,omitempty"`
	// DisasterRiskLevel — качественная оценка ранга WRI ("Extreme" ... "Very Low", "Unknown").
	DisasterRiskLevel string `json:"disasterRiskLevel"`
}
