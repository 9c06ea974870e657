package api_client

import (
	"fmt"

	"github.com/NastyaGoryachaya/btc-ticker-service/internal/domain"
	derrors "github.com/NastyaGoryachaya/btc-ticker-service/internal/errors"
)

// withReference — дополняет котировку опорной ценой.
// nativePct — процент от источника, если он его отдаёт; иначе считаем сами
func withReference(q domain.Quote, open float64, nativePct *float64) (domain.Quote, error) {
	if !domain.IsValidPrice(open) {
		return domain.Quote{}, fmt.Errorf("%w: open price must be positive, got %v", derrors.ErrSourceSchemaInvalid, open)
	}
	q.OpenPrice = domain.Float(open)
	if nativePct != nil {
		pct, err := checkPercent("variation", *nativePct)
		if err != nil {
			return domain.Quote{}, err
		}
		q.VariationPct = domain.Float(pct)
		return q, nil
	}
	pct, ok := domain.Variation(q.CurrentPrice, open)
	if !ok {
		return domain.Quote{}, fmt.Errorf("%w: cannot compute variation", derrors.ErrSourceSchemaInvalid)
	}
	q.VariationPct = domain.Float(pct)
	return q, nil
}
