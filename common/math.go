package common

const (
	BaseWidth  = 1024
	BaseHeight = 576
)

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi]. If hi < lo, lo wins.
func Clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
