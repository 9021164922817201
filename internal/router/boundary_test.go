// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package router

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-bitcredit/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundary_Catch(t *testing.T) {
	b := NewBoundary(logger.Nop())

	assert.Nil(t, b.Catch(nil))

	f := b.Catch(errors.New("get bill b1: Not Found"))
	require.NotNil(t, f)
	assert.Equal(t, "get bill b1: Not Found", f.Message)
	assert.Equal(t, Home, f.Home)

	f = b.Catch(errors.New("  "))
	require.NotNil(t, f)
	assert.Equal(t, "unknown error", f.Message)
}

func TestBoundary_Run(t *testing.T) {
	b := NewBoundary(logger.Nop())

	assert.Nil(t, b.Run(func() error { return nil }))

	f := b.Run(func() error { return errors.New("boom") })
	require.NotNil(t, f)
	assert.Equal(t, "boom", f.Message)
}

func TestBoundary_RunRecoversPanics(t *testing.T) {
	b := NewBoundary(logger.Nop())

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "error", value: errors.New("nil map"), want: "nil map"},
		{name: "string", value: "index out of range", want: "index out of range"},
		{name: "other", value: 42, want: "unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := b.Run(func() error { panic(tt.value) })
			require.NotNil(t, f)
			assert.Equal(t, tt.want, f.Message)
			assert.Equal(t, Home, f.Home)
		})
	}
}
