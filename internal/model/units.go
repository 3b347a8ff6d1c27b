package model

import "math"

// InchesPerFoot converts feet to inches.
const InchesPerFoot = 12.0

// ToInches converts a feet+inches length to total inches. No bounds checking:
// negative inputs propagate and must be validated upstream.
func ToInches(lengthFt, lengthIn float64) float64 {
	return lengthFt*InchesPerFoot + lengthIn
}

// RoundUpToIncrement rounds inches up to the nearest multiple of increment.
// An increment of 1/8" (0.125) matches common stock ordering practice.
// increment <= 0 is guarded by settings validation, not here.
func RoundUpToIncrement(inches, increment float64) float64 {
	return math.Ceil(inches/increment) * increment
}
