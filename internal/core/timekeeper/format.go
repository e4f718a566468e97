package timekeeper

import "fmt"

// FormatRemaining renders seconds as zero-padded MM:SS. Minutes are not capped.
func FormatRemaining(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// ProgressFraction returns the elapsed share of an interval in percent, clamped to 0..100.
func ProgressFraction(current, remaining int) float64 {
	if current <= 0 {
		return 0
	}
	progress := float64(current-remaining) / float64(current) * 100
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}
