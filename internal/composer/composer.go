// composer строит промпты для текстовой модели и превращает её ответы
// в записи фиксированной формы. Ошибки провайдера и неразборчивые ответы
// наружу не выходят: вызывающий всегда получает заполненную запись,
// заглушки помечаются флагом Fallback.
package composer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/pribylovaa/risk-sense/internal/metrics"
	"github.com/pribylovaa/risk-sense/internal/models"
	"github.com/pribylovaa/risk-sense/internal/providers/openrouter"
	"github.com/pribylovaa/risk-sense/pkg/log"
)

var errMissingField = errors.New("missing field")

const (
	taskInsight        = "insight"
	taskFollowUp       = "follow_up"
	taskP3             = "p3"
	taskRecommendation = "recommendation"

	kindFallback = "fallback"
)

// Completer — провайдер текстовой модели.
type Completer interface {
	Complete(ctx context.Context, r openrouter.Request) (string, error)
	Configured() bool
}

// Options — параметры генерации; нулевые значения заменяются дефолтами.
// Temperature == nil означает температуру по умолчанию, явный 0 сохраняется.
type Options struct {
	MaxTokens   int
	P3MaxTokens int
	Temperature *float64
}

const (
	defaultMaxTokens   = 2048
	defaultP3MaxTokens = 3000
	defaultTemperature = 0.7
)

// Composer — построитель AI-рекомендаций.
type Composer struct {
	llm         Completer
	opts        Options
	temperature float64
}

// New создаёт Composer поверх провайдера модели.
func New(llm Completer, opts Options) *Composer {
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = defaultMaxTokens
	}
	if opts.P3MaxTokens <= 0 {
		opts.P3MaxTokens = defaultP3MaxTokens
	}

	temperature := defaultTemperature
	if opts.Temperature != nil {
		temperature = *opts.Temperature
	}

	return &Composer{llm: llm, opts: opts, temperature: temperature}
}

// Configured сообщает, есть ли у провайдера ключ.
func (c *Composer) Configured() bool { return c.llm.Configured() }

// InsightInput — контекст для вкладки AI Insights.
type InsightInput struct {
	Profile models.CountryProfile
	News    []models.NewsItem
	Query   string
}

// FollowUpInput — контекст уточняющего вопроса.
type FollowUpInput struct {
	Profile  models.CountryProfile
	Question string
}

// P3Input — контекст рекомендаций Predict / Prevent / Protect.
// Climate == nil, если климатические данные получить не удалось.
type P3Input struct {
	Profile models.CountryProfile
	News    []models.NewsItem
	Climate *models.RenewableSummary
	Query   string
}

// complete вызывает модель; ошибка означает, что ответа нет совсем.
func (c *Composer) complete(ctx context.Context, task string, r openrouter.Request) (string, error) {
	const op = "composer.complete"

	lg := log.From(ctx)

	if !c.llm.Configured() {
		lg.Warn("ai_provider_not_configured", slog.String("op", op), slog.String("task", task))
		return "", errNotConfigured
	}

	raw, err := c.llm.Complete(ctx, r)
	if err != nil {
		lg.Error("ai_provider_error",
			slog.String("op", op),
			slog.String("task", task),
			slog.String("err", err.Error()),
		)
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return raw, nil
}

var errNotConfigured = errors.New("text generation provider is not configured")

func observe(ctx context.Context, task string, out Outcome) {
	metrics.AIParseOutcomes.WithLabelValues(task, out.Kind.String()).Inc()

	lg := log.From(ctx)
	switch out.Kind {
	case KindParsed:
		lg.Debug("ai_response_parsed", slog.String("task", task), slog.String("strategy", out.Strategy))
	case KindDegraded:
		lg.Warn("ai_response_degraded", slog.String("task", task))
	default:
		lg.Warn("ai_response_unusable", slog.String("task", task), slog.String("reason", out.Reason))
	}
}

func observeFallback(task string) {
	metrics.AIParseOutcomes.WithLabelValues(task, kindFallback).Inc()
}

// Insight — HTML-анализ страны и три follow-up вопроса.
func (c *Composer) Insight(ctx context.Context, in InsightInput) models.AIInsight {
	raw, err := c.complete(ctx, taskInsight, openrouter.Request{
		User:        insightPrompt(in),
		MaxTokens:   c.opts.MaxTokens,
		Temperature: c.temperature,
		JSONMode:    true,
	})
	if err != nil {
		observeFallback(taskInsight)
		return insightFallback(in.Profile, in.Query)
	}

	out := Parse(raw, "analysis")
	observe(ctx, taskInsight, out)

	name := in.Profile.Name
	switch out.Kind {
	case KindParsed:
		return models.AIInsight{
			Content:           out.String("analysis"),
			FollowUpQuestions: followUpQuestions(out, parsedQuestions(name)),
		}
	case KindDegraded:
		return models.AIInsight{
			Content:           out.Text,
			FollowUpQuestions: questions(degradedQuestions(name)),
		}
	default:
		return insightFallback(in.Profile, in.Query)
	}
}

// followUpQuestions читает followUpQuestions как список объектов или строк.
// Пустой список заменяется на def.
func followUpQuestions(out Outcome, def []string) []models.FollowUpQuestion {
	var list []models.FollowUpQuestion
	if err := out.Decode("followUpQuestions", &list); err != nil {
		list = nil
		var plain []string
		if err := out.Decode("followUpQuestions", &plain); err == nil {
			for _, q := range plain {
				list = append(list, models.FollowUpQuestion{Question: q})
			}
		}
	}

	res := make([]models.FollowUpQuestion, 0, len(list))
	for _, q := range list {
		if s := strings.TrimSpace(q.Question); s != "" {
			res = append(res, models.FollowUpQuestion{Question: s})
		}
	}

	if len(res) == 0 {
		return questions(def)
	}

	return res
}

func questions(list []string) []models.FollowUpQuestion {
	out := make([]models.FollowUpQuestion, 0, len(list))
	for _, q := range list {
		out = append(out, models.FollowUpQuestion{Question: q})
	}

	return out
}

func parsedQuestions(name string) []string {
	return []string{
		fmt.Sprintf("How does %s's economy compare to neighboring countries?", name),
		fmt.Sprintf("What are the main challenges facing %s in the next 5 years?", name),
		fmt.Sprintf("What industries are growing fastest in %s?", name),
	}
}

func degradedQuestions(name string) []string {
	return []string{
		fmt.Sprintf("What is the investment outlook for %s in the next year?", name),
		fmt.Sprintf("What are the biggest economic risks in %s?", name),
		fmt.Sprintf("How does %s's regulatory environment impact investors?", name),
	}
}

func fallbackQuestions(name string) []string {
	return []string{
		fmt.Sprintf("What are the major economic sectors in %s?", name),
		fmt.Sprintf("How has COVID-19 impacted %s's economy?", name),
		fmt.Sprintf("What are the key investment risks in %s?", name),
	}
}

const (
	dataNotAvailable = "Data not available"

	// FallbackNotice идёт сразу за заголовком HTML-заглушки: по нему клиент отличает её от анализа.
	FallbackNotice = "<h3>AI analysis unavailable</h3>\n<p>We encountered an error generating the AI analysis. Showing a data-only summary instead.</p>"
)

func insightFallback(p models.CountryProfile, query string) models.AIInsight {
	return models.AIInsight{
		Content:           fallbackHTML(p, query),
		FollowUpQuestions: questions(fallbackQuestions(p.Name)),
		Fallback:          true,
	}
}

func fallbackHTML(p models.CountryProfile, query string) string {
	gdp, perCapita := orNotAvailable(p.GDP), orNotAvailable(p.GDPPerCapita)

	outlook := "developing"
	if p.GDPGrowth != nil {
		if *p.GDPGrowth > 0 {
			outlook = "growing"
		} else {
			outlook = "challenging"
		}
	}

	return fmt.Sprintf(`
<h2>Analysis of %[1]s - %[2]s</h2>
%[6]s
<p>Here is an overview of %[1]s based on the available data:</p>

<h3>Economic Overview</h3>
<p>GDP: %[3]s</p>
<p>GDP Per Capita: %[4]s</p>

<h3>Key Insights</h3>
<ul>
  <li>Economic indicators suggest %[1]s has a %[5]s economy.</li>
  <li>Recent news indicates there may be opportunities in several sectors.</li>
  <li>Consider consulting more detailed analysis for investment decisions.</li>
</ul>
`, p.Name, query, gdp, perCapita, outlook, FallbackNotice)
}

func orNotAvailable(v string) string {
	if v == "" || v == "N/A" {
		return dataNotAvailable
	}

	return v
}

// FollowUp отвечает на уточняющий вопрос прозой (HTML). Второе значение
// сообщает, что вернулась заглушка.
func (c *Composer) FollowUp(ctx context.Context, in FollowUpInput) (string, bool) {
	raw, err := c.complete(ctx, taskFollowUp, openrouter.Request{
		User:        followUpPrompt(in),
		MaxTokens:   c.opts.MaxTokens,
		Temperature: c.temperature,
	})
	if err != nil || strings.TrimSpace(raw) == "" {
		observeFallback(taskFollowUp)
		return fallbackHTML(in.Profile, in.Question), true
	}

	metrics.AIParseOutcomes.WithLabelValues(taskFollowUp, KindParsed.String()).Inc()

	return raw, false
}

const (
	predictTitle = "Risk Analysis"
	preventTitle = "Prevention Strategies"
	protectTitle = "Protection Recommendations"
)

var paragraphSplitRe = regexp.MustCompile(`\n\s*\n`)

// P3 — рекомендации Predict / Prevent / Protect.
func (c *Composer) P3(ctx context.Context, in P3Input) models.P3Recommendation {
	raw, err := c.complete(ctx, taskP3, openrouter.Request{
		User:        p3Prompt(in),
		MaxTokens:   c.opts.P3MaxTokens,
		Temperature: c.temperature,
		JSONMode:    true,
	})
	if err != nil {
		observeFallback(taskP3)
		return p3Fallback()
	}

	out := Parse(raw, "predict", "prevent", "protect")
	observe(ctx, taskP3, out)

	var rec models.P3Recommendation
	switch out.Kind {
	case KindParsed:
		rec = models.P3Recommendation{
			Predict: out.String("predict"),
			Prevent: out.String("prevent"),
			Protect: out.String("protect"),
		}
	case KindDegraded:
		rec = splitSections(out.Text)
	default:
		return p3Fallback()
	}

	return fillEmptySections(rec)
}

// splitSections делит абзацы текста на три примерно равные части.
func splitSections(text string) models.P3Recommendation {
	var parts []string
	for _, p := range paragraphSplitRe.Split(text, -1) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	n := len(parts)
	section := func(title string, chunk []string) string {
		if len(chunk) == 0 {
			return ""
		}
		return fmt.Sprintf("<h3>%s</h3><p>%s</p>", title, strings.Join(chunk, "</p><p>"))
	}

	return models.P3Recommendation{
		Predict: section(predictTitle, parts[:n/3]),
		Prevent: section(preventTitle, parts[n/3:2*n/3]),
		Protect: section(protectTitle, parts[2*n/3:]),
	}
}

func fillEmptySections(rec models.P3Recommendation) models.P3Recommendation {
	if strings.TrimSpace(rec.Predict) == "" {
		rec.Predict = "<h3>Risk Analysis</h3><p>No risk analysis could be generated. Please try with different parameters.</p>"
	}
	if strings.TrimSpace(rec.Prevent) == "" {
		rec.Prevent = "<h3>Prevention Strategies</h3><p>No prevention strategies could be generated. Please try with different parameters.</p>"
	}
	if strings.TrimSpace(rec.Protect) == "" {
		rec.Protect = "<h3>Protection Recommendations</h3><p>No protection recommendations could be generated. Please try with different parameters.</p>"
	}

	return rec
}

func p3Fallback() models.P3Recommendation {
	return models.P3Recommendation{
		Predict:  "<h3>Risk Analysis Error</h3><p>We encountered an issue processing the risk analysis. Please try again with more specific parameters.</p>",
		Prevent:  "<h3>Prevention Strategies Error</h3><p>We encountered an issue generating prevention strategies. Please try again with more specific parameters.</p>",
		Protect:  "<h3>Protection Recommendations Error</h3><p>We encountered an issue developing protection recommendations. Please try again with more specific parameters.</p>",
		Fallback: true,
	}
}

// Sector — секторная корзина рекомендаций NIB.
type Sector struct {
	// Name подставляется в промпт и в тексты заглушки.
	Name string
	// Title — заголовок заглушки.
	Title  string
	Prompt string
}

var (
	SectorSustainable = Sector{
		Name:   "sustainable finance",
		Title:  "Sustainable Finance",
		Prompt: "Generate detailed investment recommendations for sustainable finance and green bonds in the Nordic and Baltic region based on NIB's mandate and focus areas. Include analysis of risks and opportunities.",
	}
	SectorInfrastructure = Sector{
		Name:   "infrastructure development",
		Title:  "Infrastructure Development",
		Prompt: "Generate detailed investment recommendations for infrastructure projects in the Nordic and Baltic region based on NIB's mandate and focus areas. Focus on transportation, energy, and digital connectivity. Include analysis of risks and opportunities.",
	}
	SectorInnovation = Sector{
		Name:   "innovation and technology",
		Title:  "Innovation & Technology",
		Prompt: "Generate detailed investment recommendations for innovation and technology sectors in the Nordic and Baltic region based on NIB's mandate and focus areas. Focus on digital transformation, clean technology, and bioeconomy. Include analysis of risks and opportunities.",
	}
)

var recommendationFields = []string{
	"title", "description", "industry", "riskLevel", "opportunityLevel", "analysis", "keyRecommendation",
}

// Recommendation — инвестиционная рекомендация по сектору. Ответ без
// структуры заменяется заглушкой сектора.
func (c *Composer) Recommendation(ctx context.Context, s Sector) models.AIRecommendation {
	ctx, _ = log.With(ctx, slog.String("sector", s.Name))

	raw, err := c.complete(ctx, taskRecommendation, openrouter.Request{
		System:      recommendationSystemPrompt(s.Name),
		User:        s.Prompt,
		MaxTokens:   c.opts.MaxTokens,
		Temperature: c.temperature,
		JSONMode:    true,
	})
	if err != nil {
		observeFallback(taskRecommendation)
		return recommendationFallback(s)
	}

	out := Parse(raw, "title")
	observe(ctx, taskRecommendation, out)

	if out.Kind != KindParsed {
		return recommendationFallback(s)
	}

	values := make(map[string]string, len(recommendationFields))
	for _, f := range recommendationFields {
		values[f] = out.String(f)
	}

	return models.AIRecommendation{
		Title:             values["title"],
		Description:       values["description"],
		Industry:          values["industry"],
		RiskLevel:         values["riskLevel"],
		OpportunityLevel:  values["opportunityLevel"],
		Analysis:          values["analysis"],
		KeyRecommendation: values["keyRecommendation"],
	}
}

func recommendationFallback(s Sector) models.AIRecommendation {
	return models.AIRecommendation{
		Title:             s.Title,
		Description:       fmt.Sprintf("Investment opportunities in %s across Nordic and Baltic countries.", s.Name),
		Industry:          s.Name,
		RiskLevel:         "Medium",
		OpportunityLevel:  "Medium",
		Analysis:          fmt.Sprintf("Based on NIB's mandate, %s represents a key area of focus with both challenges and opportunities. The Nordic and Baltic region continues to see development in this sector.", s.Name),
		KeyRecommendation: fmt.Sprintf("Consider targeted investments in %s projects that align with NIB's dual mandate of productivity enhancement and environmental sustainability.", s.Name),
		Fallback:          true,
	}
}
