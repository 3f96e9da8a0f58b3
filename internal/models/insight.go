package models

// FollowUpQuestion — предложенный моделью следующий вопрос.
type FollowUpQuestion struct {
	Question string `json:"question"`
}

// AIInsight — HTML-анализ и список follow-up вопросов.
type AIInsight struct {
	Content           string             `json:"content"`
	FollowUpQuestions []FollowUpQuestion `json:"followUpQuestions"`
	// Fallback выставляется, если провайдер недоступен и вернулась заглушка.
	// Такие ответы отдаются клиенту, но не кэшируются.
	Fallback bool `json:"-"`
}

// P3Recommendation — рекомендации Predict / Prevent / Protect (HTML-фрагменты).
type P3Recommendation struct {
	Predict  string `json:"predict"`
	Prevent  string `json:"prevent"`
	Protect  string `json:"protect"`
	Fallback bool   `json:"-"`
}

// AIRecommendation — инвестиционная рекомендация по сектору.
type AIRecommendation struct {
	Title             string `json:"title"`
	Description       string `json:"description"`
	Industry          string `json:"industry"`
	RiskLevel         string `json:"riskLevel"`
	OpportunityLevel  string `json:"opportunityLevel"`
	Analysis          string `json:"analysis"`
	KeyRecommendation string `json:"keyRecommendation"`
	Fallback          bool   `json:"-"`
}
