package domain

import (
	"math"
	"testing"
	"time"
)

func TestDateKey_UsesUTC(t *testing.T) {
	// 23:30 в Сан-Паулу (UTC-3) — это уже следующий день по UTC
	loc := time.FixedZone("BRT", -3*60*60)
	local := time.Date(2025, 3, 10, 23, 30, 0, 0, loc)

	if got := DateKey(local); got != "2025-03-11" {
		t.Fatalf("unexpected date key: %s", got)
	}
}

func TestParseDateKey_RoundTrip(t *testing.T) {
	d, err := ParseDateKey("2025-01-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Location() != time.UTC || d.Hour() != 0 {
		t.Fatalf("expected midnight UTC, got %v", d)
	}
	if DateKey(d) != "2025-01-02" {
		t.Fatalf("round trip mismatch: %s", DateKey(d))
	}
	if _, err := ParseDateKey("02-01-2025"); err == nil {
		t.Fatalf("expected error for wrong layout")
	}
}

func TestVariation(t *testing.T) {
	pct, ok := Variation(350000, 340000)
	if !ok {
		t.Fatalf("expected ok")
	}
	if math.Abs(pct-2.941176470588235) > 1e-9 {
		t.Fatalf("unexpected pct: %v", pct)
	}

	pct, ok = Variation(340000, 350000)
	if !ok || math.Abs(pct-(-2.857142857142857)) > 1e-9 {
		t.Fatalf("unexpected pct: %v ok=%v", pct, ok)
	}

	if _, ok := Variation(100, 0); ok {
		t.Fatalf("zero reference must not produce variation")
	}
}

func TestQuote_HasReference(t *testing.T) {
	if (Quote{CurrentPrice: 1}).HasReference() {
		t.Fatalf("bare quote has no reference")
	}
	if !(Quote{CurrentPrice: 1, VariationPct: Float(2.5)}).HasReference() {
		t.Fatalf("variation counts as reference")
	}
}

func TestIsValidPrice(t *testing.T) {
	for _, v := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if IsValidPrice(v) {
			t.Fatalf("%v must be invalid", v)
		}
	}
	if !IsValidPrice(0.01) {
		t.Fatalf("positive price must be valid")
	}
}
