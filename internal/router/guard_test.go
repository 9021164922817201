// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeIdentity struct {
	authenticated bool
	settled       bool
}

func (f fakeIdentity) IsAuthenticated() bool { return f.authenticated }
func (f fakeIdentity) Settled() bool         { return f.settled }

func TestGuard_AuthenticatedOnPublicRouteGoesHome(t *testing.T) {
	g := NewGuard(fakeIdentity{authenticated: true, settled: true})

	for _, route := range PublicRoutes {
		assert.Equal(t, Decision{Kind: Redirect, Target: Home}, g.Check(route), route)
	}
}

func TestGuard_UnauthenticatedOnPrivateRouteGoesToOnboarding(t *testing.T) {
	g := NewGuard(fakeIdentity{authenticated: false, settled: true})

	for _, route := range AllRoutes {
		if g.IsPublic(route) {
			continue
		}
		assert.Equal(t, Decision{Kind: Redirect, Target: Onboarding}, g.Check(route), route)
	}
}

func TestGuard_Allows(t *testing.T) {
	authed := NewGuard(fakeIdentity{authenticated: true, settled: true})
	assert.Equal(t, Decision{Kind: Allow, Target: Bills}, authed.Check(Bills))
	assert.Equal(t, Decision{Kind: Allow, Target: Home}, authed.Check(Home))

	anon := NewGuard(fakeIdentity{settled: true})
	assert.Equal(t, Decision{Kind: Allow, Target: Onboarding}, anon.Check(Onboarding))
	assert.Equal(t, Decision{Kind: Allow, Target: RestoreAccount}, anon.Check(RestoreAccount))
}

// TestGuard_WaitsUntilSettled verifies that no redirect happens before the
// identity resolution has finished.
func TestGuard_WaitsUntilSettled(t *testing.T) {
	g := NewGuard(fakeIdentity{authenticated: false, settled: false})

	for _, route := range AllRoutes {
		assert.Equal(t, Wait, g.Check(route).Kind, route)
	}
}

func TestGuard_CustomPublicRoutes(t *testing.T) {
	g := NewGuard(fakeIdentity{settled: true}, Settings)

	assert.True(t, g.IsPublic(Settings))
	assert.False(t, g.IsPublic(Onboarding))
	assert.Equal(t, Allow, g.Check(Settings).Kind)
}

func TestDecisionKind_String(t *testing.T) {
	assert.Equal(t, "allow", Allow.String())
	assert.Equal(t, "redirect", Redirect.String())
	assert.Equal(t, "wait", Wait.String())
	assert.Equal(t, "unknown", DecisionKind(9).String())
}
