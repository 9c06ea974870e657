package errcode

import (
	"context"
	"errors"

	derrors "github.com/NastyaGoryachaya/btc-ticker-service/internal/errors"
)

type Code string

const (
	NoPrice            Code = "NO_PRICE"
	HistoryUnsupported Code = "HISTORY_UNSUPPORTED"
	NotReady           Code = "NOT_READY"
	Timeout            Code = "TIMEOUT"

	BadRequest Code = "BAD_REQUEST"
	Internal   Code = "INTERNAL_ERROR"
)

// From — код ошибки для транспортов (HTTP, бот)
func From(err error) Code {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, derrors.ErrInvalidDate):
		return BadRequest
	case errors.Is(err, derrors.ErrHistoryUnsupported):
		return HistoryUnsupported
	case errors.Is(err, context.DeadlineExceeded):
		return Timeout
	case errors.Is(err, derrors.ErrAllSourcesExhausted):
		return NoPrice
	default:
		return Internal
	}
}
