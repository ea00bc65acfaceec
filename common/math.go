package common

import "math"

// degreesPerRadian is 180/π.
const degreesPerRadian = 180 / math.Pi

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FastInvSqrt approximates 1/sqrt(x) for x >= 0 using the float32 bit-level
// estimate refined by a single Newton iteration. The relative error is below
// 0.2%. For x == 0 the result is large but finite.
func FastInvSqrt(x float64) float64 {
	f := float32(x)
	half := f * 0.5
	i := math.Float32bits(f)
	i = 0x5f3759df - i>>1
	y := math.Float32frombits(i)
	y = y * (1.5 - half*y*y)
	return float64(y)
}

// FastAcos approximates acos(x) in radians with a rational polynomial.
// Inputs are clamped to [-1, 1]; the absolute error is below 0.02 rad.
func FastAcos(x float64) float64 {
	x = Clamp(x, -1, 1)
	sq := x * x
	return math.Pi/2 + x*(0.9217841528914573*sq-0.939115566365855)/
		(1+sq*(0.295624144969963174*sq-1.2845906244690837))
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * degreesPerRadian
}

// Sign returns -1 for negative x, 1 for positive x and 0 otherwise.
func Sign(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
