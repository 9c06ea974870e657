package presentation

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/NastyaGoryachaya/btc-ticker-service/internal/domain"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/i18n"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/pkg/pricefmt"
)

const (
	ColorOK    = "#000000"
	ColorError = "#FF0000"
	TextError  = "N/A"
)

// State — последнее отрисованное состояние бейджа
type State struct {
	Text       string    `json:"text"`
	Color      string    `json:"color"`
	Title      string    `json:"title"`
	OK         bool      `json:"ok"`
	Diagnostic string    `json:"diagnostic,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
	Payload    *Payload  `json:"payload,omitempty"`
}

// Badge — sink, хранящий состояние для HTTP и бота
type Badge struct {
	mu      sync.RWMutex
	state   State
	catalog *i18n.Catalog
	now     func() time.Time
}

func NewBadge(catalog *i18n.Catalog) *Badge {
	return &Badge{
		catalog: catalog,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (b *Badge) ShowSuccess(_ context.Context, p Payload) {
	st := RenderSuccess(b.catalog, p)
	st.UpdatedAt = b.now()
	b.set(st)
}

// ShowError — бейдж "N/A" красным; прошлое значение не сохраняется
func (b *Badge) ShowError(_ context.Context, diagnostic string) {
	st := RenderError(b.catalog, diagnostic)
	st.UpdatedAt = b.now()
	b.set(st)
}

// State — копия текущего состояния; ok=false, пока не было ни одного цикла
func (b *Badge) State() (State, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state, !b.state.UpdatedAt.IsZero()
}

func (b *Badge) set(st State) {
	b.mu.Lock()
	b.state = st
	b.mu.Unlock()
}

// RenderSuccess — текст бейджа и многострочная подсказка
func RenderSuccess(c *i18n.Catalog, p Payload) State {
	lines := []string{c.T("tooltipNow", pricefmt.FormatPrice(p.CurrentPrice))}
	if p.ReferencePrice != nil {
		lines = append(lines, c.T("tooltipOpen", pricefmt.FormatPrice(*p.ReferencePrice)))
	}
	if p.VariationPct != nil {
		lines = append(lines, c.T("tooltipVariation", pricefmt.FormatVariation(*p.VariationPct)))
	}
	lines = append(lines, c.T("tooltipSource", sourceLabel(p)))

	cp := p
	return State{
		Text:    pricefmt.FormatPriceShort(p.CurrentPrice),
		Color:   ColorOK,
		Title:   strings.Join(lines, "\n"),
		OK:      true,
		Payload: &cp,
	}
}

func RenderError(c *i18n.Catalog, diagnostic string) State {
	return State{
		Text:       TextError,
		Color:      ColorError,
		Title:      c.T("tooltipError"),
		OK:         false,
		Diagnostic: diagnostic,
	}
}

// sourceLabel — "binance" или "binance / cache", если опорная цена пришла из другого места
func sourceLabel(p Payload) string {
	if p.ReferenceSource == domain.SourceNone || p.ReferenceSource == p.Source {
		return string(p.Source)
	}
	return string(p.Source) + " / " + string(p.ReferenceSource)
}
