package bot

import (
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/i18n"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/ports/errcode"
)

func translateBotError(c *i18n.Catalog, code errcode.Code) string {
	switch code {
	case errcode.BadRequest:
		return c.T("errBadDate")
	case errcode.NoPrice, errcode.NotReady, errcode.Timeout, errcode.HistoryUnsupported:
		return c.T("errNoPrice")
	default:
		return c.T("errInternal")
	}
}
