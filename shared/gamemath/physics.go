package gamemath

// Integrate advances one frame of vertical motion: position moves by the
// current speed, then gravity is added to the speed. Speed is not capped.
func Integrate(y, speedY, gravity float64) (newY, newSpeedY float64) {
	return y + speedY, speedY + gravity
}

// ClampToGround reports whether an object whose bottom edge is at or below
// groundY should be snapped, and returns the top Y that puts its bottom on groundY.
func ClampToGround(y, height, groundY float64) (newY float64, grounded bool) {
	if y+height >= groundY {
		return groundY - height, true
	}
	return y, false
}

// LandsOnTop reports whether a falling object lands on a surface at topY this frame.
// bottom is the object's bottom edge after integration and speedY its speed.
func LandsOnTop(bottom, speedY, topY, tolerance float64) bool {
	return speedY >= 0 &&
		bottom <= topY+tolerance &&
		bottom+speedY >= topY
}

// Approach moves value toward limit by step and never passes it.
func Approach(value, step, limit float64) float64 {
	if value+step > limit {
		return limit
	}
	return value + step
}

// Ratio returns value/total clamped to [0, 1]. A non-positive total yields 0.
func Ratio(value, total float64) float64 {
	if total <= 0 {
		return 0
	}
	r := value / total
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
