package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// PingPong maps t onto a triangle wave between 0 and length: it rises for
// length units, falls back for length units and repeats.
func PingPong(t, length float64) float64 {
	if length <= 0 {
		return 0
	}
	t = math.Mod(t, 2*length)
	if t < 0 {
		t += 2 * length
	}
	if t > length {
		return 2*length - t
	}
	return t
}
