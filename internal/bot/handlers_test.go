package bot

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/NastyaGoryachaya/btc-ticker-service/internal/bot/mocks"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/domain"
	derrors "github.com/NastyaGoryachaya/btc-ticker-service/internal/errors"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/i18n"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/presentation"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v4"
)

// fakeContext — telebot.Context, в котором реализованы только Args и Send
type fakeContext struct {
	telebot.Context
	args []string
	sent []string
}

func (f *fakeContext) Args() []string { return f.args }

func (f *fakeContext) Send(what interface{}, _ ...interface{}) error {
	f.sent = append(f.sent, fmt.Sprint(what))
	return nil
}

type botFixture struct {
	bot     *Bot
	badge   *mocks.MockBadgeReader
	history *mocks.MockHistoryResolver
	touch   *mocks.MockActivityToucher
}

func newBotFixture(t *testing.T) botFixture {
	ctrl := gomock.NewController(t)
	f := botFixture{
		badge:   mocks.NewMockBadgeReader(ctrl),
		history: mocks.NewMockHistoryResolver(ctrl),
		touch:   mocks.NewMockActivityToucher(ctrl),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.bot = newBot(f.badge, f.history, f.touch, i18n.MustLoad("en"), logger)
	f.bot.now = func() time.Time { return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) }
	return f
}

func TestHandleStart(t *testing.T) {
	f := newBotFixture(t)
	c := &fakeContext{}

	require.NoError(t, f.bot.handleStart(c))
	require.Len(t, c.sent, 1)
	require.Contains(t, c.sent[0], "/history dd-mm-yyyy")
}

func TestTouchMiddleware(t *testing.T) {
	f := newBotFixture(t)
	f.touch.EXPECT().Touch()

	called := false
	h := f.bot.touch(func(telebot.Context) error {
		called = true
		return nil
	})
	require.NoError(t, h(&fakeContext{}))
	require.True(t, called)
}

func TestHandlePrice(t *testing.T) {
	f := newBotFixture(t)
	f.badge.EXPECT().State().Return(presentation.State{
		Text:  "350k",
		Title: "Bitcoin price now: R$ 350.000",
		OK:    true,
	}, true)
	c := &fakeContext{}

	require.NoError(t, f.bot.handlePrice(c))
	require.Equal(t, []string{"350k\nBitcoin price now: R$ 350.000"}, c.sent)
}

func TestHandlePrice_NotReady(t *testing.T) {
	f := newBotFixture(t)
	f.badge.EXPECT().State().Return(presentation.State{}, false)
	c := &fakeContext{}

	require.NoError(t, f.bot.handlePrice(c))
	require.Equal(t, []string{"Price data is unavailable right now, try again later"}, c.sent)
}

func TestHandleHistory(t *testing.T) {
	f := newBotFixture(t)
	f.history.EXPECT().
		ResolveHistorical(gomock.Any(), time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)).
		Return(domain.Quote{CurrentPrice: 612345.6, Source: domain.SourceCoinGecko}, nil)
	c := &fakeContext{args: []string{"02-01-2025"}}

	require.NoError(t, f.bot.handleHistory(c))
	require.Equal(t, []string{"Price on 02-01-2025: R$ 612.346 (coingecko)"}, c.sent)
}

func TestHandleHistory_Usage(t *testing.T) {
	f := newBotFixture(t)
	c := &fakeContext{}

	require.NoError(t, f.bot.handleHistory(c))
	require.Equal(t, []string{"Usage: /history dd-mm-yyyy"}, c.sent)
}

func TestHandleHistory_BadDate(t *testing.T) {
	for _, arg := range []string{"2025-01-02", "31-02-2025", "11-03-2025"} {
		t.Run(arg, func(t *testing.T) {
			f := newBotFixture(t)
			c := &fakeContext{args: []string{arg}}

			require.NoError(t, f.bot.handleHistory(c))
			require.Equal(t, []string{"Invalid date"}, c.sent)
		})
	}
}

func TestHandleHistory_ResolverFailure(t *testing.T) {
	cases := map[string]struct {
		err  error
		want string
	}{
		"exhausted": {
			err:  fmt.Errorf("%w: %w", derrors.ErrAllSourcesExhausted, errors.New("down")),
			want: "Price data is unavailable right now, try again later",
		},
		"internal": {
			err:  errors.New("boom"),
			want: "Internal service error, try again later",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			f := newBotFixture(t)
			f.history.EXPECT().ResolveHistorical(gomock.Any(), gomock.Any()).Return(domain.Quote{}, tc.err)
			c := &fakeContext{args: []string{"02-01-2025"}}

			require.NoError(t, f.bot.handleHistory(c))
			require.Equal(t, []string{tc.want}, c.sent)
		})
	}
}
