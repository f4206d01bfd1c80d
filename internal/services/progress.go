// Package services implements the progress, ordering, streak and
// session-facade business logic
package services

import "math"

// CalculateProgress derives a completion percentage from child-video
// watch counts: round(100 * watched / total), half away from zero.
// An empty collection is forced to 0.
func CalculateProgress(watched, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(watched) / float64(total)))
}

// ClampProgress bounds a directly-set progress value to [0, 100].
// Only the simple-node path goes through here; derived progress is
// already in range by construction.
func ClampProgress(value int) int {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}
