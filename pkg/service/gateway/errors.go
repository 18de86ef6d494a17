package gateway

import "strings"

// transientMarkers are substrings that identify quota and rate limit
// failures in upstream error messages. Anything else is treated as a
// hard failure and skips straight to the next tier.
var transientMarkers = []string{
	"429",
	"quota",
	"rate limit",
	"resource_exhausted",
}

func isTransient(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
