// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_Resolve(t *testing.T) {
	r := New()

	tests := []struct {
		path  string
		route Route
	}{
		{path: "/", route: Home},
		{path: "", route: Home},
		{path: "/onboarding", route: Onboarding},
		{path: "/create-identity/", route: CreateIdentity},
		{path: "/bills", route: Bills},
		{path: "/contacts", route: Contacts},
		{path: "/settings", route: Settings},
		{path: "/mint", route: Mint},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			loc, err := r.Resolve(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.route, loc.Route)
		})
	}
}

func TestRouter_ResolveParams(t *testing.T) {
	r := New()

	loc, err := r.Resolve(BillPath("abc/1"))
	require.NoError(t, err)

	assert.Equal(t, BillDetail, loc.Route)
	assert.Equal(t, "abc/1", loc.Param("id"))
	assert.Empty(t, loc.Param("missing"))
}

func TestRouter_ResolveUnknown(t *testing.T) {
	_, err := New().Resolve("/nowhere")
	assert.ErrorIs(t, err, ErrUnknownRoute)
}

func TestAllRoutesResolve(t *testing.T) {
	r := New()
	for _, route := range AllRoutes {
		path := string(route)
		if route == BillDetail {
			path = BillPath("b1")
		}
		loc, err := r.Resolve(path)
		require.NoError(t, err, path)
		assert.Equal(t, route, loc.Route)
	}
}
