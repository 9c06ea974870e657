package presentation

import (
	"context"
	"time"

	"github.com/NastyaGoryachaya/btc-ticker-service/internal/domain"
)

// Payload — результат успешного цикла обновления
type Payload struct {
	CurrentPrice    float64       `json:"current_price"`
	ReferencePrice  *float64      `json:"reference_price,omitempty"`
	VariationPct    *float64      `json:"variation_pct,omitempty"`
	Source          domain.Source `json:"source"`
	ReferenceSource domain.Source `json:"reference_source,omitempty"`
	At              time.Time     `json:"at"`
}

//go:generate mockgen -source=sink.go -destination=mocks/mock_sink.go -package=mocks

// Sink — получатель результата цикла: либо успех, либо явная ошибка
type Sink interface {
	ShowSuccess(ctx context.Context, p Payload)
	ShowError(ctx context.Context, diagnostic string)
}

// Multi — рассылает результат во все sink по порядку
type Multi []Sink

func (m Multi) ShowSuccess(ctx context.Context, p Payload) {
	for _, s := range m {
		s.ShowSuccess(ctx, p)
	}
}

func (m Multi) ShowError(ctx context.Context, diagnostic string) {
	for _, s := range m {
		s.ShowError(ctx, diagnostic)
	}
}
