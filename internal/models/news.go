package models

// NewsItem — нормализованная статья новостного провайдера.
type NewsItem struct {
	Title  string `json:"title"`
	Source string `json:"source"`
	// Date — относительная ("Today", "3 days ago") или абсолютная дата.
	Date        string `json:"date"`
	Description string `json:"description"`
	URL         string `json:"url"`
	ImageURL    string `json:"imageUrl,omitempty"`
	// Tags выводятся по ключевым словам, источник их не присылает.
	Tags []string `json:"tags"`
}

// SentimentBreakdown — доли позитивных/нейтральных/негативных статей в процентах.
type SentimentBreakdown struct {
	Positive float64 `json:"positive"`
	Neutral  float64 `json:"neutral"`
	Negative float64 `json:"negative"`
	Summary  string  `json:"summary"`
}
