package dailyref

import "time"

// Clock — источник времени; в тестах подменяется фиксированным
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now().UTC() }

func NewRealClock() Clock {
	return realClock{}
}

// FixedClock — часы, всегда возвращающие одно и то же время
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c).UTC() }
