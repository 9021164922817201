// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		name string
		size int64
		want string
	}{
		{"zero", 0, "0 B"},
		{"below kilobyte", 1023, "1023 B"},
		{"exactly kilobyte", 1024, "1.00 KB"},
		{"fractional kilobytes", 1536, "1.50 KB"},
		{"just below megabyte", 1048575, "1024.00 KB"},
		{"exactly megabyte", 1048576, "1.00 MB"},
		{"large", 5 * 1048576, "5.00 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFileSize(tt.size))
		})
	}
}

func TestTruncateMiddle_ShortStringsUnchanged(t *testing.T) {
	assert.Equal(t, "abc", TruncateMiddle("abc", 3))
	assert.Equal(t, "abc", TruncateMiddle("abc", 10))
	assert.Equal(t, "", TruncateMiddle("", 0))
}

func TestTruncateMiddle_KeepsPrefixAndSuffix(t *testing.T) {
	nodeID := "039180c169e5f6d7c579cf1cefa37bffd47a2b389c8125601f4068c87bea795943"

	got := TruncateMiddle(nodeID, 13)

	assert.Equal(t, "03918...95943", got)
	assert.Len(t, got, 13)
	assert.True(t, strings.HasPrefix(nodeID, strings.Split(got, "...")[0]))
	assert.True(t, strings.HasSuffix(nodeID, strings.Split(got, "...")[1]))
}

func TestTruncateMiddle_LengthInvariant(t *testing.T) {
	s := "abcdefghijklmnopqrstuvwxyz"
	for max := 0; max <= len(s)+2; max++ {
		got := TruncateMiddle(s, max)
		if max >= len(s) {
			assert.Equal(t, s, got, "max=%d", max)
			continue
		}
		assert.Equal(t, max, utf8.RuneCountInString(got), "max=%d", max)
	}
}

func TestTruncateMiddle_TinyMax(t *testing.T) {
	assert.Equal(t, "ab", TruncateMiddle("abcdef", 2))
	assert.Equal(t, "abc", TruncateMiddle("abcdef", 3))
	assert.Equal(t, "a...h", TruncateMiddle("abcdefgh", 5))
}

func TestTruncateMiddle_Runes(t *testing.T) {
	got := TruncateMiddle("ääääääääää", 7)
	assert.Equal(t, "ää...ää", got)
}

func TestFormatSum(t *testing.T) {
	assert.Equal(t, "1500 sat", FormatSum("1500", "sat"))
	assert.Equal(t, "1500", FormatSum("1500", ""))
	assert.Equal(t, "-", FormatSum("  ", "sat"))
}
