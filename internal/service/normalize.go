package service

import "strings"

// Sentinel labels a classifier emits when it has nothing usable.
var sentinelLabels = map[string]struct{}{
	"unknown":      {},
	"unknown food": {},
}

// VagueLabelMessage is returned when the route rejects a label before lookup.
const VagueLabelMessage = "Prediction result was too vague or empty for nutrition lookup."

// Normalize trims whitespace from a raw label and reports whether the result is
// usable for lookup: non-empty and not a sentinel (compared case-insensitively).
// The trimmed label keeps its original case.
func Normalize(raw string) (string, bool) {
	label := strings.TrimSpace(raw)
	if label == "" {
		return "", false
	}
	if _, ok := sentinelLabels[strings.ToLower(label)]; ok {
		return label, false
	}
	return label, true
}

// Gate is the route-level check run before Lookup. A rejected label yields the
// NotFound result the caller should send back.
func Gate(raw string) (string, Result, bool) {
	label, ok := Normalize(raw)
	if !ok {
		return "", NotFound{Message: VagueLabelMessage}, false
	}
	return label, nil, true
}
