package composer

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
)

// Kind — результат разбора ответа модели.
type Kind int

const (
	// KindParsed — найден JSON-объект со всеми обязательными полями.
	KindParsed Kind = iota
	// KindDegraded — структуру извлечь не удалось, есть очищенный текст.
	KindDegraded
	// KindFailed — использовать нечего.
	KindFailed
)

func (k Kind) String() string {
	switch k {
	case KindParsed:
		return "parsed"
	case KindDegraded:
		return "degraded"
	default:
		return "failed"
	}
}

// Outcome — размеченный результат Parse.
type Outcome struct {
	Kind Kind
	// Fields заполняется для KindParsed.
	Fields map[string]json.RawMessage
	// Text — очищенный текст для KindDegraded.
	Text string
	// Strategy — имя сработавшей стратегии (для логов и метрик).
	Strategy string
	// Reason — причина для KindFailed.
	Reason string
}

// String возвращает строковое поле; нестроковое значение отдаётся как есть.
func (o Outcome) String(field string) string {
	raw, ok := o.Fields[field]
	if !ok {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	return string(raw)
}

// Decode разбирает поле в dst.
func (o Outcome) Decode(field string, dst any) error {
	raw, ok := o.Fields[field]
	if !ok {
		return errMissingField
	}

	return json.Unmarshal(raw, dst)
}

type strategy struct {
	name    string
	extract func(text string) (string, bool)
}

var (
	fencedRe      = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")
	firstObjectRe = regexp.MustCompile(`(?s)\{.*?\}`)
)

// strategies применяются по порядку до первого успеха.
var strategies = []strategy{
	{"direct", func(text string) (string, bool) { return text, true }},
	{"fenced", func(text string) (string, bool) {
		m := fencedRe.FindStringSubmatch(text)
		if m == nil {
			return "", false
		}
		return m[1], true
	}},
	{"first_object", func(text string) (string, bool) {
		m := firstObjectRe.FindString(text)
		return m, m != ""
	}},
	{"outer_braces", func(text string) (string, bool) {
		first, last := strings.Index(text, "{"), strings.LastIndex(text, "}")
		if first == -1 || last <= first {
			return "", false
		}
		return text[first : last+1], true
	}},
}

// Parse извлекает из ответа модели JSON-объект с обязательными полями.
// Поле считается заданным, если оно есть, не null и не пустая строка.
// Массив объектов трактуется как его первый элемент.
func Parse(raw string, required ...string) Outcome {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Outcome{Kind: KindFailed, Reason: "empty response"}
	}

	for _, st := range strategies {
		candidate, ok := st.extract(text)
		if !ok {
			continue
		}

		fields, ok := decodeObject(candidate)
		if !ok || !hasFields(fields, required) {
			continue
		}

		return Outcome{Kind: KindParsed, Fields: fields, Strategy: st.name}
	}

	cleaned := Clean(text, required...)
	if cleaned == "" {
		return Outcome{Kind: KindFailed, Reason: "no usable text"}
	}

	return Outcome{Kind: KindDegraded, Text: cleaned, Strategy: "cleanup"}
}

func decodeObject(candidate string) (map[string]json.RawMessage, bool) {
	data := bytes.TrimSpace([]byte(candidate))
	if len(data) == 0 {
		return nil, false
	}

	if data[0] == '[' {
		var arr []map[string]json.RawMessage
		if err := json.Unmarshal(data, &arr); err != nil || len(arr) == 0 || arr[0] == nil {
			return nil, false
		}
		return arr[0], true
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil || obj == nil {
		return nil, false
	}

	return obj, true
}

func hasFields(fields map[string]json.RawMessage, required []string) bool {
	for _, name := range required {
		v := bytes.TrimSpace(fields[name])
		if len(v) == 0 || string(v) == "null" || string(v) == `""` {
			return false
		}
	}

	return true
}

var (
	fenceMarkRe     = regexp.MustCompile("```(?:json)?")
	openBraceRe     = regexp.MustCompile(`^\s*\{\s*`)
	closeBraceRe    = regexp.MustCompile(`\s*\}\s*$`)
	trailingFieldRe = regexp.MustCompile(`(?s),\s*"followUpQuestions"\s*:.*$`)
)

var unescaper = strings.NewReplacer(`\n`, "\n", `\t`, "\t", `\"`, `"`, `\'`, "'", `\\`, `\`)

// Clean превращает неразобранный ответ в читаемый текст: убирает
// markdown-ограждения, внешние скобки, префикс первого поля,
// хвост с followUpQuestions и экранирование.
func Clean(text string, fields ...string) string {
	s := strings.TrimSpace(fenceMarkRe.ReplaceAllString(text, ""))
	s = openBraceRe.ReplaceAllString(s, "")
	s = closeBraceRe.ReplaceAllString(s, "")

	if len(fields) > 0 {
		// Префикс снимается в первом вхождении, даже если перед ним есть текст.
		prefix := regexp.MustCompile(`"` + regexp.QuoteMeta(fields[0]) + `"\s*:\s*"?`)
		if loc := prefix.FindStringIndex(s); loc != nil {
			s = s[:loc[0]] + s[loc[1]:]
		}
	}

	s = trailingFieldRe.ReplaceAllString(s, "")
	s = strings.TrimSuffix(strings.TrimPrefix(s, `"`), `"`)

	return strings.TrimSpace(unescaper.Replace(s))
}
