package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePosition(t *testing.T) {
	tests := []struct {
		name          string
		position      string
		expected      int
		expectedError bool
	}{
		{name: "empty means start", position: "", expected: 0},
		{name: "mm:ss", position: "12:34", expected: 754},
		{name: "zero padded", position: "01:05", expected: 65},
		{name: "large minutes", position: "120:00", expected: 7200},
		{name: "bare seconds", position: "247", expected: 247},
		{name: "whitespace tolerated", position: " 10:00 ", expected: 600},
		{name: "seconds out of range", position: "1:60", expectedError: true},
		{name: "negative minutes", position: "-1:30", expectedError: true},
		{name: "garbage", position: "abc", expectedError: true},
		{name: "negative seconds value", position: "-5", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParsePosition(tt.position)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestFormatPosition(t *testing.T) {
	assert.Equal(t, "00:00", FormatPosition(0))
	assert.Equal(t, "01:05", FormatPosition(65))
	assert.Equal(t, "12:34", FormatPosition(754))
	assert.Equal(t, "120:00", FormatPosition(7200))
	assert.Equal(t, "00:00", FormatPosition(-30))
}

func TestBuildResumeLink(t *testing.T) {
	tests := []struct {
		name          string
		videoRef      string
		position      string
		expected      string
		expectedError bool
	}{
		{
			name:     "catalog id without position",
			videoRef: "abc123",
			expected: "https://www.youtube.com/watch?v=abc123",
		},
		{
			name:     "catalog id with position",
			videoRef: "abc123",
			position: "01:30",
			expected: "https://www.youtube.com/watch?v=abc123&t=90s",
		},
		{
			name:     "full url with position",
			videoRef: "https://example.com/v/9",
			position: "30",
			expected: "https://example.com/v/9?t=30s",
		},
		{
			name:     "full url with query and position",
			videoRef: "https://example.com/watch?v=9",
			position: "30",
			expected: "https://example.com/watch?v=9&t=30s",
		},
		{
			name:     "position zero omits the fragment",
			videoRef: "abc123",
			position: "00:00",
			expected: "https://www.youtube.com/watch?v=abc123",
		},
		{
			name:          "invalid position",
			videoRef:      "abc123",
			position:      "nope",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link, err := BuildResumeLink(tt.videoRef, tt.position)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, link)
			}
		})
	}
}
