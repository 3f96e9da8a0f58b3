package composer

import (
	"encoding/json"
	"fmt"

	"github.com/pribylovaa/risk-sense/internal/models"
)

// maxPromptNews — сколько статей попадает в промпт.
const maxPromptNews = 5

const noClimateData = "No climate data available"

// countryInfo и economicInfo — проекции профиля, которые видит модель.
type countryInfo struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Region      string `json:"region"`
	IncomeLevel string `json:"incomeLevel"`
	Capital     string `json:"capital"`
	Population  string `json:"population"`
}

type economicInfo struct {
	GDP          string                     `json:"gdp"`
	GDPPerCapita string                     `json:"gdpPerCapita"`
	GDPGrowth    *float64                   `json:"gdpGrowth,omitempty"`
	Indicators   []models.EconomicIndicator `json:"indicators,omitempty"`
}

type promptNews struct {
	Title       string `json:"title"`
	Source      string `json:"source"`
	Description string `json:"description"`
}

func countryJSON(p models.CountryProfile) string {
	return indent(countryInfo{
		Name:        p.Name,
		Code:        p.Code,
		Region:      p.Region,
		IncomeLevel: p.IncomeLevel,
		Capital:     p.Capital,
		Population:  p.Population,
	})
}

func economicJSON(p models.CountryProfile) string {
	return indent(economicInfo{
		GDP:          p.GDP,
		GDPPerCapita: p.GDPPerCapita,
		GDPGrowth:    p.GDPGrowth,
		Indicators:   p.Indicators,
	})
}

func newsJSON(items []models.NewsItem) string {
	if len(items) > maxPromptNews {
		items = items[:maxPromptNews]
	}

	out := make([]promptNews, 0, len(items))
	for _, it := range items {
		out = append(out, promptNews{Title: it.Title, Source: it.Source, Description: it.Description})
	}

	return indent(out)
}

func climateJSON(c *models.RenewableSummary) string {
	if c == nil || !c.HasData {
		return noClimateData
	}

	return indent(c)
}

func indent(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}

	return string(b)
}

func insightPrompt(in InsightInput) string {
	name := in.Profile.Name
	return fmt.Sprintf(`You are an expert global analyst with access to economic data, news, and country information.
You need to provide an in-depth analysis of %[1]s based on the following data and the user's query.

Country Information:
%[2]s

Economic Data:
%[3]s

Recent News:
%[4]s

User's Query:
%[5]s

Please provide:
1. A comprehensive analysis addressing the user's query
2. Key insights based on the economic data
3. Relevant connections to recent news events
4. Any notable trends or patterns you observe

Format your response using simple HTML elements like <h2>, <h3>, <p>, <ul>, and <li> for better readability.

After your analysis, please return three follow-up questions that the user might want to ask next.
IMPORTANT: Format your entire response as a JSON object with this exact structure:

{
  "analysis": "Your full HTML-formatted analysis here...",
  "followUpQuestions": [
    {"question": "First follow-up question?"},
    {"question": "Second follow-up question?"},
    {"question": "Third follow-up question?"}
  ]
}

Make sure to escape any quotes within your HTML analysis with backslashes.
`, name, countryJSON(in.Profile), economicJSON(in.Profile), newsJSON(in.News), in.Query)
}

func followUpPrompt(in FollowUpInput) string {
	return fmt.Sprintf(`You are an expert global analyst with access to economic data and country information.
A user is asking a follow-up question about %[1]s.

Country Information:
%[2]s

Economic Data:
%[3]s

User's Question:
%[4]s

Please provide a detailed, insightful response to the user's question based on the provided data.
Format your response using simple HTML elements like <h3>, <p>, <ul>, and <li> for better readability.
`, in.Profile.Name, countryJSON(in.Profile), economicJSON(in.Profile), in.Question)
}

func p3Prompt(in P3Input) string {
	return fmt.Sprintf(`You are an investment risk expert with the task of providing strategic P3 (Predict, Prevent, Protect) recommendations for investments in %[1]s.
Based on the data provided, deliver comprehensive strategic recommendations for investors focused on the country.

Country Information:
%[2]s

Economic Data:
%[3]s

Recent News:
%[4]s

Climate & Renewable Energy Data:
%[5]s

User's Investment Query:
%[6]s

Please provide a detailed P3 (Predict, Prevent, Protect) analysis in JSON format ONLY.

Your task is to analyze the data and generate:
1. PREDICT: Identify potential investment risks in %[1]s (political instability, economic volatility, etc.)
2. PREVENT: Offer strategic preventative measures and mitigating actions
3. PROTECT: Recommend concrete protective actions for safeguarding investments

Your response must be ONLY a valid JSON object with three keys. Use the following exact structure:

{
  "predict": "<h3>Investment Risk Analysis for %[1]s</h3><p>Analysis of potential risks...</p>",
  "prevent": "<h3>Prevention Strategies</h3><p>Strategic measures to mitigate risks...</p>",
  "protect": "<h3>Protection Recommendations</h3><p>Actions to safeguard investments...</p>"
}

Important requirements:
1. Each value must contain properly formatted HTML with <h3>, <p>, <ul>, and <li> tags.
2. Do not include any text, explanations or notes outside the JSON object.
3. Make sure to escape quotes inside the HTML content with backslashes.
4. Each section should be comprehensive (300+ words).
5. Return ONLY a valid, parseable JSON object.
`, in.Profile.Name, countryJSON(in.Profile), economicJSON(in.Profile), newsJSON(in.News), climateJSON(in.Climate), in.Query)
}

func recommendationSystemPrompt(sector string) string {
	return fmt.Sprintf(`You are an expert investment advisor specializing in Nordic and Baltic investments, with deep knowledge of the Nordic Investment Bank (NIB) and its mandate.
NIB finances projects that improve productivity and benefit the environment in the Nordic and Baltic countries.

You will analyze %s investment opportunities in the Nordic and Baltic region.

Provide detailed, practical investment recommendations with:
1. Title - a concise title for the recommendation
2. Description - a brief 1-2 sentence description
3. Industry - the specific industry segment
4. Risk level - classify as Low, Medium, or High
5. Opportunity level - classify as Low, Medium, or High
6. Analysis - a detailed paragraph analyzing the current state and potential
7. Key recommendation - a concise actionable recommendation

IMPORTANT: You must respond with valid JSON only. Do not include any explanatory text or markdown formatting.
Your entire response must be a single JSON object with these exact keys:
{
  "title": "",
  "description": "",
  "industry": "",
  "riskLevel": "",
  "opportunityLevel": "",
  "analysis": "",
  "keyRecommendation": ""
}

Do not use code blocks, do not use backticks, and do not include any additional text before or after the JSON.
`, sector)
}
