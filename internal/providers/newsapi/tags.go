package newsapi

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type tagRule struct {
	tag      string
	keywords []string
}

// tagRules проверяются по порядку; статья получает все совпавшие теги.
var tagRules = []tagRule{
	{"Economy", []string{"economy", "economic", "gdp", "growth", "recession"}},
	{"Technology", []string{"tech", "technology", "digital", "innovation", "startup"}},
	{"Monetary Policy", []string{"policy", "regulation", "law", "government", "reform"}},
	{"Real Estate", []string{"real estate", "housing", "property", "mortgage", "home"}},
	{"Employment", []string{"job", "employment", "unemployment", "labor", "workforce"}},
	{"Trade", []string{"trade", "export", "import", "tariff", "global"}},
}

const generalTag = "General"

// Tags выводит темы статьи по ключевым словам заголовка и описания.
// Если ничего не совпало, тегом становится самое длинное слово запроса
// длиннее трёх символов (при равенстве — первое), с заглавной буквы.
func Tags(title, description, query string) []string {
	content := strings.ToLower(title + " " + description)

	var tags []string
	for _, rule := range tagRules {
		for _, kw := range rule.keywords {
			if strings.Contains(content, kw) {
				tags = append(tags, rule.tag)
				break
			}
		}
	}

	if len(tags) > 0 {
		return tags
	}

	return []string{queryTopic(query)}
}

func queryTopic(query string) string {
	best := ""
	for _, w := range strings.Fields(query) {
		n := utf8.RuneCountInString(w)
		if n > 3 && n > utf8.RuneCountInString(best) {
			best = w
		}
	}

	if best == "" {
		return generalTag
	}

	r, size := utf8.DecodeRuneInString(best)
	return string(unicode.ToUpper(r)) + best[size:]
}
