package adapter

import "time"

//go:generate mockgen -source=clock.go -destination=../mocks/clock.go -package=mocks -mock_names=Clock=MockClock

// Clock abstracts time for deterministic tests
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// NewClock returns a Clock backed by the system time
func NewClock() Clock {
	return realClock{}
}
