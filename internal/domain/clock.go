package domain

import "github.com/jonboulle/clockwork"

// clock supplies "today" for requests without a current date and stamps
// CreatedAt on calculations.
var clock = clockwork.NewRealClock()

// SetClock swaps the package time source. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
