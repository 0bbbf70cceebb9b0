// Package strutil contains small string conversion helpers for query parsing.
package strutil

import "strconv"

// ConvertToInt parses a string as int, returning 0 on failure.
func ConvertToInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

// ConvertToInt64 parses a string as int64, returning 0 on failure.
func ConvertToInt64(value string) int64 {
	result, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return result
}
