package presentation

import (
	"context"
	"log/slog"

	"github.com/NastyaGoryachaya/btc-ticker-service/internal/pkg/pricefmt"
)

// LogSink — пишет результат цикла в лог
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) ShowSuccess(ctx context.Context, p Payload) {
	attrs := []any{
		"price", pricefmt.FormatPrice(p.CurrentPrice),
		"badge", pricefmt.FormatPriceShort(p.CurrentPrice),
		"source", p.Source,
	}
	if p.ReferencePrice != nil {
		attrs = append(attrs, "reference", *p.ReferencePrice, "reference_source", p.ReferenceSource)
	}
	if p.VariationPct != nil {
		attrs = append(attrs, "variation", pricefmt.FormatVariation(*p.VariationPct))
	}
	s.logger.InfoContext(ctx, "price updated", attrs...)
}

func (s *LogSink) ShowError(ctx context.Context, diagnostic string) {
	s.logger.WarnContext(ctx, "price update failed", "diagnostic", diagnostic)
}
