package utils

import (
	"strconv"
)

// MaxLimit caps page sizes on the public API
const MaxLimit = 100

// ListMeta is the pagination metadata attached to list responses
type ListMeta struct {
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

// ParseLimitOffset parses limit/offset query values. Unparsable or negative
// values fall back to the given default limit and offset 0.
func ParseLimitOffset(limitStr, offsetStr string, defaultLimit int) (int, int) {
	limit := defaultLimit
	offset := 0

	if limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed >= 0 {
			limit = parsed
		}
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	if offsetStr != "" {
		if parsed, err := strconv.Atoi(offsetStr); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	return limit, offset
}

// ParseBool parses a query flag, returning the fallback on empty or
// unparsable input
func ParseBool(value string, fallback bool) bool {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
