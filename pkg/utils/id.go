package utils

import (
	"regexp"

	"github.com/google/uuid"
)

var (
	videoIDRe = regexp.MustCompile(`(?:https?://)?(?:www\.|m\.|music\.)?(?:youtube|youtu|youtube-nocookie)\.(?:com|be)/(?:watch\?v=|embed/|v/|.+\?v=|shorts/)?([^&=%\?/]{11})`)
	bareIDRe  = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)
)

// ExtractVideoID returns the 11-character YouTube video id, or "" when none is found.
// Only used to annotate logs; the proxied URL is forwarded unchanged.
func ExtractVideoID(input string) string {
	matches := videoIDRe.FindStringSubmatch(input)
	if len(matches) >= 2 {
		return matches[1]
	}

	if bareIDRe.MatchString(input) {
		return input
	}

	return ""
}

// NewRequestID returns a random id used to correlate the log lines of one request.
func NewRequestID() string {
	return uuid.NewString()
}
