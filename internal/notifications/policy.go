package notifications

// ShouldNotify reports whether a countdown of days lands exactly on one of the
// announcement thresholds. Negative and zero counts never notify.
func ShouldNotify(days int) bool {
	for _, t := range thresholds {
		if days == t {
			return true
		}
	}
	return false
}

// Thresholds returns the countdown day-counts that trigger an announcement,
// largest first.
func Thresholds() []int {
	out := make([]int, len(thresholds))
	copy(out, thresholds[:])
	return out
}
