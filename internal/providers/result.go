package providers

// Result — итог опционального вызова. Вызывающая сторона сама решает,
// прерывать ли запрос (Err != nil) или подставить значение по умолчанию (Or).
type Result[T any] struct {
	Value T
	Err   error
}

// Capture упаковывает пару (значение, ошибка).
func Capture[T any](v T, err error) Result[T] {
	return Result[T]{Value: v, Err: err}
}

// OK — вызов завершился без ошибки.
func (r Result[T]) OK() bool { return r.Err == nil }

// Or возвращает значение или def при ошибке.
func (r Result[T]) Or(def T) T {
	if r.Err != nil {
		return def
	}

	return r.Value
}
