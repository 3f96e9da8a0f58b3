// providers — общие типы адаптеров внешних API: единая ошибка провайдера,
// Result для опциональных вызовов и JSON-GET с метриками.
package providers

import (
	"errors"
	"fmt"
)

// ErrNotConfigured — у провайдера нет обязательной настройки (обычно API-ключа).
var ErrNotConfigured = errors.New("provider not configured")

// ProviderError — единый вид ошибки внешнего вызова.
// HTTPStatus == 0 означает сетевую ошибку или ошибку декодирования.
type ProviderError struct {
	Provider   string
	HTTPStatus int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.HTTPStatus == 0 {
		return fmt.Sprintf("%s: %s", e.Provider, e.Message)
	}

	return fmt.Sprintf("%s: status %d: %s", e.Provider, e.HTTPStatus, e.Message)
}

// ConfigError сообщает, какой настройки не хватает.
type ConfigError struct {
	Provider string
	Setting  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s is not configured (%s)", e.Provider, e.Setting)
}

func (e *ConfigError) Is(target error) bool { return target == ErrNotConfigured }

// NotConfigured — конструктор ConfigError.
func NotConfigured(provider, setting string) error {
	return &ConfigError{Provider: provider, Setting: setting}
}
