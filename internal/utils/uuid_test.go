// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDGenerator_Generate_IsUUIDv7(t *testing.T) {
	id := NewIDGenerator().Generate()

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestIDGenerator_Generate_Unique(t *testing.T) {
	g := NewIDGenerator()
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := g.Generate()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestIDGenerator_NodeID_Shape(t *testing.T) {
	id := NewIDGenerator().NodeID()

	assert.Len(t, id, 66)
	assert.True(t, strings.HasPrefix(id, "02"))
	assert.Equal(t, strings.ToLower(id), id)
}
