package models

// KeyHighlight — ключевая цифра года NIB.
type KeyHighlight struct {
	Title       string `json:"title" yaml:"title"`
	Value       string `json:"value" yaml:"value"`
	Description string `json:"description" yaml:"description"`
	SourceURL   string `json:"sourceUrl" yaml:"source_url"`
}

// FactSheet — ссылка на отчёт NIB.
type FactSheet struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Link        string `json:"link" yaml:"link"`
}

// YearInBrief — блок "Our Year in Brief".
type YearInBrief struct {
	Title         string         `json:"title" yaml:"title"`
	Description   string         `json:"description" yaml:"description"`
	KeyHighlights []KeyHighlight `json:"keyHighlights" yaml:"key_highlights"`
	FactSheets    []FactSheet    `json:"factSheets" yaml:"fact_sheets"`
}

// QuickLink — быстрая ссылка на странице NIB.
type QuickLink struct {
	Title       string `json:"title" yaml:"title"`
	Icon        string `json:"icon" yaml:"icon"`
	Description string `json:"description" yaml:"description"`
	Link        string `json:"link" yaml:"link"`
}

// NIBBasicInfo — статичная справка о Nordic Investment Bank.
type NIBBasicInfo struct {
	YearInBrief YearInBrief `json:"yearInBrief" yaml:"year_in_brief"`
	QuickLinks  []QuickLink `json:"quickLinks" yaml:"quick_links"`
}

// NIBAIRecommendations — по одной рекомендации на секторную корзину.
type NIBAIRecommendations struct {
	Sustainable    AIRecommendation `json:"sustainable"`
	Infrastructure AIRecommendation `json:"infrastructure"`
	Innovation     AIRecommendation `json:"innovation"`
}

// NIBRecommendationSet — ответ /api/nib/recommendations.
type NIBRecommendationSet struct {
	Basic             NIBBasicInfo         `json:"basic"`
	AIRecommendations NIBAIRecommendations `json:"aiRecommendations"`
	AnalysisDate      string               `json:"analysisDate"`
}
