package services

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePosition converts a stored playback position into total seconds.
// Accepted forms are "mm:ss" and bare seconds ("247").
func ParsePosition(position string) (int, error) {
	position = strings.TrimSpace(position)
	if position == "" {
		return 0, nil
	}

	if minutes, seconds, ok := strings.Cut(position, ":"); ok {
		m, err := strconv.Atoi(minutes)
		if err != nil || m < 0 {
			return 0, fmt.Errorf("invalid minutes in position %q", position)
		}
		s, err := strconv.Atoi(seconds)
		if err != nil || s < 0 || s > 59 {
			return 0, fmt.Errorf("invalid seconds in position %q", position)
		}
		return m*60 + s, nil
	}

	total, err := strconv.Atoi(position)
	if err != nil || total < 0 {
		return 0, fmt.Errorf("invalid position %q", position)
	}
	return total, nil
}

// FormatPosition renders total seconds as "mm:ss"
func FormatPosition(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	return fmt.Sprintf("%02d:%02d", totalSeconds/60, totalSeconds%60)
}

// BuildResumeLink turns a stored video reference plus position into a
// playable URL. A reference containing a scheme is treated as a full URL
// (custom videos); anything else is a catalog video identifier.
func BuildResumeLink(videoRef, position string) (string, error) {
	seconds, err := ParsePosition(position)
	if err != nil {
		return "", err
	}

	link := videoRef
	if !strings.Contains(videoRef, "://") {
		link = "https://www.youtube.com/watch?v=" + videoRef
	}

	if seconds > 0 {
		separator := "?"
		if strings.Contains(link, "?") {
			separator = "&"
		}
		link = fmt.Sprintf("%s%st=%ds", link, separator, seconds)
	}

	return link, nil
}
