package domain

import "time"

const dateKeyLayout = "2006-01-02"

// DateKey — календарный день в UTC в формате YYYY-MM-DD.
// Все границы суток в сервисе считаются только через эту функцию.
func DateKey(t time.Time) string {
	return t.UTC().Format(dateKeyLayout)
}

// ParseDateKey — обратное преобразование, результат в 00:00 UTC
func ParseDateKey(s string) (time.Time, error) {
	return time.ParseInLocation(dateKeyLayout, s, time.UTC)
}
