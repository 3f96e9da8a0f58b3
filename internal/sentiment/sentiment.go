// sentiment — детерминированная оценка тональности новостей по словарям.
package sentiment

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/pribylovaa/risk-sense/internal/models"
)

var positiveWords = []string{
	"growth", "increase", "gain", "improved", "positive", "success", "recovery", "up",
	"rising", "opportunity", "profit", "progress", "strong", "benefit", "advance",
}

var negativeWords = []string{
	"decline", "decrease", "loss", "crisis", "concern", "negative", "fail", "down",
	"falling", "problem", "deficit", "weak", "risk", "threat", "challenge",
}

const (
	dominantShare = 40.0
	topTagsCount  = 3
	noNewsSummary = "No recent news articles were found for analysis."
)

// Empty — разбивка для пустого набора статей.
func Empty() models.SentimentBreakdown {
	return models.SentimentBreakdown{Positive: 20, Neutral: 60, Negative: 20, Summary: noNewsSummary}
}

// Estimate классифицирует каждую статью по перевесу позитивных или
// негативных слов (подстрочный поиск без токенизации; каждое слово
// учитывается один раз) и возвращает доли в процентах.
func Estimate(items []models.NewsItem) models.SentimentBreakdown {
	if len(items) == 0 {
		return Empty()
	}

	var pos, neg, neu int
	for _, it := range items {
		content := strings.ToLower(it.Title + " " + it.Description)
		p, n := countMatches(content, positiveWords), countMatches(content, negativeWords)

		switch {
		case p > n:
			pos++
		case n > p:
			neg++
		default:
			neu++
		}
	}

	total := float64(len(items))
	b := models.SentimentBreakdown{
		Positive: float64(pos) / total * 100,
		Neutral:  float64(neu) / total * 100,
		Negative: float64(neg) / total * 100,
	}

	trend := "mostly neutral"
	switch {
	case b.Positive > dominantShare:
		trend = "predominantly positive"
	case b.Negative > dominantShare:
		trend = "predominantly negative"
	}

	b.Summary = fmt.Sprintf(
		"Recent news coverage shows %s sentiment (%d%% neutral, %d%% positive, %d%% negative). Key topics in the reporting include %s.",
		trend, roundPct(b.Neutral), roundPct(b.Positive), roundPct(b.Negative),
		strings.Join(topTags(items, topTagsCount), ", "),
	)

	return b
}

// ImpactScore сводит разбивку к шкале [-1, 1].
func ImpactScore(b models.SentimentBreakdown) float64 {
	return math.Max(-1, math.Min(1, b.Positive-b.Negative))
}

func countMatches(content string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(content, w) {
			n++
		}
	}

	return n
}

// topTags — самые частые теги; при равенстве раньше идёт тот, что встретился первым.
func topTags(items []models.NewsItem, limit int) []string {
	counts := make(map[string]int)
	var order []string

	for _, it := range items {
		for _, tag := range it.Tags {
			if _, seen := counts[tag]; !seen {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })

	if len(order) > limit {
		order = order[:limit]
	}

	return order
}

func roundPct(v float64) int { return int(math.Round(v)) }
