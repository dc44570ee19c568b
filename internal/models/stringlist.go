package models

import (
	"encoding/json"
	"strings"
)

// StringListKind tags how a stored list column was decoded.
type StringListKind int

const (
	StringListEmpty StringListKind = iota
	StringListJSON
	StringListLegacyCommaList
)

// StringListResult is the decoded form of a JSON-in-text list column.
// Older rows may hold a plain comma-separated string instead of JSON;
// those decode as StringListLegacyCommaList rather than failing.
type StringListResult struct {
	Kind   StringListKind
	Values []string
}

// DecodeStringList parses a stored list column. It never returns an error:
// invalid JSON falls back to comma-splitting when legacyFallback is set,
// otherwise to an empty list.
func DecodeStringList(raw string, legacyFallback bool) StringListResult {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return StringListResult{Kind: StringListEmpty, Values: []string{}}
	}

	var values []string
	if err := json.Unmarshal([]byte(trimmed), &values); err == nil {
		return StringListResult{Kind: StringListJSON, Values: values}
	}

	if !legacyFallback {
		return StringListResult{Kind: StringListEmpty, Values: []string{}}
	}

	parts := strings.Split(trimmed, ",")
	values = make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			values = append(values, v)
		}
	}
	return StringListResult{Kind: StringListLegacyCommaList, Values: values}
}

// EncodeStringList serializes a list for storage in a text column.
func EncodeStringList(values []string) string {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(data)
}
