package errors

import "errors"

var (
	// ErrSourceUnavailable — сетевая ошибка или статус не 2xx
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrSourceSchemaInvalid — ответ не соответствует ожидаемой схеме
	ErrSourceSchemaInvalid = errors.New("source schema invalid")
	// ErrAllSourcesExhausted — ни один источник не дал валидный ответ
	ErrAllSourcesExhausted = errors.New("all sources exhausted")
	// ErrCacheReadInvalid — запись кэша повреждена, трактуется как промах
	ErrCacheReadInvalid = errors.New("cache entry invalid")
	// ErrHistoryUnsupported — среди источников нет ни одного с историей
	ErrHistoryUnsupported = errors.New("historical prices unsupported")
	// ErrInvalidDate — дата истории не разобрана или в будущем
	ErrInvalidDate = errors.New("invalid date")
)
