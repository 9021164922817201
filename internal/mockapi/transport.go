// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mockapi

import (
	"net/http"
	"net/http/httptest"
)

// Transport is an [http.RoundTripper] that serves requests with an
// in-process handler instead of the network.
type Transport struct {
	handler http.Handler
}

// NewTransport returns a Transport serving h's routes.
func NewTransport(h *Handler) *Transport {
	return &Transport{handler: h.Init()}
}

// RoundTrip serves req with the handler and returns the recorded response.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Body != nil {
		defer req.Body.Close()
	}
	if err := req.Context().Err(); err != nil {
		return nil, err
	}

	// handlers expect server-side request fields
	in := req.Clone(req.Context())
	in.RequestURI = req.URL.RequestURI()
	if in.Body == nil {
		in.Body = http.NoBody
	}

	rec := httptest.NewRecorder()
	t.handler.ServeHTTP(rec, in)

	resp := rec.Result()
	resp.Request = req
	return resp, nil
}

// BaseURL is the placeholder node address used with [Transport]; requests
// never leave the process.
const BaseURL = "http://mock.node"
