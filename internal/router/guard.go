// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package router

// IdentityState is the part of the session the guard reads.
type IdentityState interface {
	IsAuthenticated() bool
	Settled() bool
}

// DecisionKind is the outcome of a guard check.
type DecisionKind int

const (
	// Allow renders the requested route.
	Allow DecisionKind = iota
	// Redirect sends the user to Decision.Target instead.
	Redirect
	// Wait shows a loading state until the identity settles.
	Wait
)

func (k DecisionKind) String() string {
	switch k {
	case Allow:
		return "allow"
	case Redirect:
		return "redirect"
	case Wait:
		return "wait"
	default:
		return "unknown"
	}
}

// Decision is returned by [Guard.Check].
type Decision struct {
	Kind   DecisionKind
	Target Route
}

// Guard decides whether a route may be rendered for the current identity.
type Guard struct {
	identity IdentityState
	public   map[Route]struct{}
}

// NewGuard returns a guard over identity. Without explicit public routes
// [PublicRoutes] is used.
func NewGuard(identity IdentityState, publicRoutes ...Route) *Guard {
	if len(publicRoutes) == 0 {
		publicRoutes = PublicRoutes
	}

	public := make(map[Route]struct{}, len(publicRoutes))
	for _, r := range publicRoutes {
		public[r] = struct{}{}
	}
	return &Guard{identity: identity, public: public}
}

// IsPublic reports whether route is reachable without an identity.
func (g *Guard) IsPublic(route Route) bool {
	_, ok := g.public[route]
	return ok
}

// Check is evaluated on every navigation. While the identity is not
// settled it answers Wait rather than guessing.
func (g *Guard) Check(route Route) Decision {
	if !g.identity.Settled() {
		return Decision{Kind: Wait}
	}

	authenticated := g.identity.IsAuthenticated()
	public := g.IsPublic(route)

	switch {
	case authenticated && public:
		return Decision{Kind: Redirect, Target: Home}
	case !authenticated && !public:
		return Decision{Kind: Redirect, Target: Onboarding}
	default:
		return Decision{Kind: Allow, Target: route}
	}
}
