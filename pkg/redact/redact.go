// redact предоставляет утилиты безопасного редактирования чувствительных
// данных для логов (API-ключи провайдеров). Цель — исключить утечки секретов,
// сохранив при этом полезный для отладки контекст (префикс ключа).
package redact

import "strings"

// Secret маскирует API-ключ для логирования.
//
// Правила:
//   - пустая строка -> "" (ключ не задан, это полезно видеть в логах);
//   - ключ короче 12 символов (по рунам) заменяется целиком на "***";
//   - иначе остаются первые 4 символа + "***".
//
// Примеры:
//
//	"sk-or-v1-abcdef0123456789" -> "sk-o***"
//	"short"                     -> "***"
func Secret(s string) string {
	if s == "" {
		return ""
	}

	r := []rune(s)
	if len(r) < 12 {
		return "***"
	}

	return string(r[:4]) + "***"
}

// Scrub заменяет вхождения секретов в тексте (например, в теле ошибки
// провайдера) на "[REDACTED]". Пустые секреты игнорируются.
func Scrub(text string, secrets ...string) string {
	for _, s := range secrets {
		if s == "" {
			continue
		}
		text = strings.ReplaceAll(text, s, "[REDACTED]")
	}

	return text
}
