package summarizer

import "time"

// Clock supplies wall-clock time for the elapsed-time statistic.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
