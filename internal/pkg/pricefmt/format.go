package pricefmt

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Форматирование цены и изменения для бейджа, подсказки и бота

const currencyPrefix = "R$ "

// invalid — для NaN и бесконечностей, decimal на них паникует
const invalid = "N/A"

var (
	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)
)

// FormatPrice — цена с группировкой точкой и без копеек: 350123.45 -> "R$ 350.123"
func FormatPrice(v float64) string {
	if !finite(v) {
		return invalid
	}
	return currencyPrefix + humanize.FormatFloat("#.###,", v)
}

// FormatPriceShort — компактная запись для бейджа.
// < 10 000 — целое; до миллиона — тысячи с отбрасыванием остатка (999999 -> "999k");
// от миллиона — миллионы с одним знаком, ".0" убирается (1000000 -> "1m", 1250000 -> "1.2m")
func FormatPriceShort(v float64) string {
	if !finite(v) {
		return invalid
	}
	// границы считаются по округлённому значению, иначе 9999.6 даёт "9k"
	r := math.Round(v)
	if r < 10_000 {
		return strconv.FormatFloat(r, 'f', 0, 64)
	}
	d := decimal.NewFromFloat(r)
	if d.LessThan(million) {
		return d.Div(thousand).Truncate(0).String() + "k"
	}
	return d.Div(million).Truncate(1).String() + "m"
}

// FormatVariation — "+2.94% ▲" / "-2.86% ▼"; знак и стрелка по округлённому значению
func FormatVariation(pct float64) string {
	if !finite(pct) {
		return invalid
	}
	d := decimal.NewFromFloat(pct).Round(2)
	if d.IsNegative() {
		return d.StringFixed(2) + "% ▼"
	}
	return "+" + d.StringFixed(2) + "% ▲"
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
