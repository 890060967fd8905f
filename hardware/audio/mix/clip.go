// Package mix folds the output of several sound chips into one stream.
package mix

// Clip limits a 32bit running sum to the 16bit sample range. A soft knee is
// applied rather than a hard limit so that an overdriven mix distorts instead
// of folding over.
func Clip(x int32) int16 {
	abs := x
	if abs < 0 {
		abs = -abs
	}

	// saturator y = x / (1 + |x|/32768)
	y := int64(x) * 32767 / int64(32768+(abs>>15))

	return int16(max(min(y, 32767), -32768))
}
