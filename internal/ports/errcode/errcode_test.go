package errcode

import (
	"context"
	"errors"
	"fmt"
	"testing"

	derrors "github.com/NastyaGoryachaya/btc-ticker-service/internal/errors"
)

func TestFrom(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Code
	}{
		{"nil", nil, ""},
		{"invalid date", fmt.Errorf("parse: %w", derrors.ErrInvalidDate), BadRequest},
		{"exhausted", fmt.Errorf("resolve: %w: %w", derrors.ErrAllSourcesExhausted, errors.New("x")), NoPrice},
		{"history unsupported", fmt.Errorf("%w: %w", derrors.ErrAllSourcesExhausted, derrors.ErrHistoryUnsupported), HistoryUnsupported},
		{"deadline", fmt.Errorf("%w: %w", derrors.ErrAllSourcesExhausted, context.DeadlineExceeded), Timeout},
		{"other", errors.New("boom"), Internal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := From(tc.err); got != tc.want {
				t.Fatalf("From(%v) = %q, want %q", tc.err, got, tc.want)
			}
		})
	}
}
