// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package router maps client paths to screens, guards them by identity
// state and turns errors escaping a screen into a failure screen.
package router

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Route is a route pattern.
type Route string

const (
	Home           Route = "/"
	Onboarding     Route = "/onboarding"
	CreateIdentity Route = "/create-identity"
	RestoreAccount Route = "/restore-account"
	Bills          Route = "/bills"
	BillDetail     Route = "/bill/{id}"
	CreateBill     Route = "/create-bill"
	Contacts       Route = "/contacts"
	CreateContact  Route = "/create-contact"
	Notifications  Route = "/notifications"
	IdentityRoute  Route = "/identity"
	CompanyRoute   Route = "/company"
	Settings       Route = "/settings"
	Mint           Route = "/mint"
)

// AllRoutes lists every route the client knows.
var AllRoutes = []Route{
	Home, Onboarding, CreateIdentity, RestoreAccount,
	Bills, BillDetail, CreateBill,
	Contacts, CreateContact,
	Notifications, IdentityRoute, CompanyRoute, Settings, Mint,
}

// PublicRoutes are reachable without an active identity.
var PublicRoutes = []Route{Onboarding, CreateIdentity, RestoreAccount}

// ErrUnknownRoute is returned by [Router.Resolve] for a path no route
// matches.
var ErrUnknownRoute = errors.New("unknown route")

// Location is a resolved path.
type Location struct {
	Route  Route
	Path   string
	Params map[string]string
}

// Param returns the value of a path parameter, e.g. "id" of /bill/{id}.
func (l Location) Param(name string) string {
	return l.Params[name]
}

// Router resolves paths against [AllRoutes].
type Router struct {
	mux *chi.Mux
}

// New builds the route table.
func New() *Router {
	mux := chi.NewRouter()
	for _, route := range AllRoutes {
		mux.Get(string(route), http.NotFound)
	}
	return &Router{mux: mux}
}

// Resolve matches path against the route table.
func (r *Router) Resolve(path string) (Location, error) {
	path = "/" + strings.Trim(strings.TrimSpace(path), "/")

	rctx := chi.NewRouteContext()
	if !r.mux.Match(rctx, http.MethodGet, path) {
		return Location{}, fmt.Errorf("%w: %s", ErrUnknownRoute, path)
	}

	params := make(map[string]string, len(rctx.URLParams.Keys))
	for i, key := range rctx.URLParams.Keys {
		value, err := url.PathUnescape(rctx.URLParams.Values[i])
		if err != nil {
			value = rctx.URLParams.Values[i]
		}
		params[key] = value
	}

	return Location{
		Route:  Route(rctx.RoutePattern()),
		Path:   path,
		Params: params,
	}, nil
}

// BillPath returns the path of a bill's detail screen.
func BillPath(id string) string {
	return "/bill/" + url.PathEscape(id)
}
