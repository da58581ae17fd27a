package mathx

import (
	"math"
	"time"
)

// RoundSeconds returns |d| in whole seconds, rounding halves to even.
func RoundSeconds(d time.Duration) int {
	return int(math.RoundToEven(Abs(d).Seconds()))
}
