package analytics

// Intensity buckets a daily count into the 0..4 heatmap color scale. The
// thresholds are fixed and calibrated for submission-volume platforms.
func Intensity(count int) int {
	switch {
	case count <= 0:
		return 0
	case count <= 2:
		return 1
	case count <= 5:
		return 2
	case count <= 10:
		return 3
	default:
		return 4
	}
}
