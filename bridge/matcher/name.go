package matcher

import (
	"regexp"
	"strings"
)

var (
	politicianMarker = regexp.MustCompile(`(?i)politician\s*:\s*([A-Za-z\s]+)`)
	fullName         = regexp.MustCompile(`[A-Z][a-z]+\s+[A-Z][a-z]+`)
)

// PoliticianName extracts a politician name from message, preferring an
// explicit "politician: <name>" marker over the first two consecutive
// capitalized words.
func PoliticianName(message string) (string, bool) {
	if m := politicianMarker.FindStringSubmatch(message); len(m) == 2 {
		if name := strings.TrimSpace(m[1]); name != "" {
			return name, true
		}
	}
	if name := strings.TrimSpace(fullName.FindString(message)); name != "" {
		return name, true
	}
	return "", false
}

// PoliticianArg returns an Extractor storing the extracted name under key.
func PoliticianArg(key string) Extractor {
	return func(message string) (map[string]interface{}, bool) {
		name, ok := PoliticianName(message)
		if !ok {
			return nil, false
		}
		return map[string]interface{}{key: name}, true
	}
}
