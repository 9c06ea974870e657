package httptransport

import (
	"net/http"

	"github.com/NastyaGoryachaya/btc-ticker-service/internal/ports/errcode"
)

// FromServiceError — HTTP-статус и машиночитаемый код ошибки для ответа
func FromServiceError(err error) (int, string) {
	switch errcode.From(err) {
	case errcode.BadRequest:
		return http.StatusBadRequest, "invalid_date"
	case errcode.HistoryUnsupported:
		return http.StatusNotImplemented, "history_unsupported"
	case errcode.NoPrice:
		return http.StatusBadGateway, "price_unavailable"
	case errcode.Timeout:
		return http.StatusGatewayTimeout, "upstream_timeout"
	default:
		return http.StatusInternalServerError, "internal_server_error"
	}
}
