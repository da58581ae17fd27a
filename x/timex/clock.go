package timex

import "time"

// Clock is the time source for the control loop and everything it drives.
// Sleep blocks the caller; there is no other suspension point.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// System is the wall clock.
type System struct{}

func (System) Now() time.Time        { return time.Now() }
func (System) Sleep(d time.Duration) { time.Sleep(d) }
