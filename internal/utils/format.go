// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"
	"strings"
)

const (
	kilobyte = 1024
	megabyte = 1024 * 1024

	ellipsis = "..."
)

// FormatFileSize renders a byte count the way file lists show it:
//
//	FormatFileSize(1023)    // "1023 B"
//	FormatFileSize(1024)    // "1.00 KB"
//	FormatFileSize(1048576) // "1.00 MB"
func FormatFileSize(size int64) string {
	switch {
	case size < kilobyte:
		return fmt.Sprintf("%d B", size)
	case size < megabyte:
		return fmt.Sprintf("%.2f KB", float64(size)/kilobyte)
	default:
		return fmt.Sprintf("%.2f MB", float64(size)/megabyte)
	}
}

// TruncateMiddle shortens s to at most max runes by cutting out its middle
// and putting "..." in its place, so both ends of long node ids and hashes
// stay readable. Strings of max runes or fewer are returned unchanged.
//
// When max leaves no room for the ellipsis the prefix alone is returned.
func TruncateMiddle(s string, max int) string {
	runes := []rune(s)
	if max < 0 {
		max = 0
	}
	if len(runes) <= max {
		return s
	}
	if max <= len(ellipsis) {
		return string(runes[:max])
	}

	keep := max - len(ellipsis)
	head := (keep + 1) / 2
	tail := keep - head

	var b strings.Builder
	b.WriteString(string(runes[:head]))
	b.WriteString(ellipsis)
	b.WriteString(string(runes[len(runes)-tail:]))
	return b.String()
}

// FormatSum joins an amount with its currency code, e.g. "1500 sat".
// An empty sum renders as "-".
func FormatSum(sum, currency string) string {
	sum = strings.TrimSpace(sum)
	if sum == "" {
		return "-"
	}
	if currency == "" {
		return sum
	}
	return sum + " " + currency
}
