// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"io"
	"net/http"
	"strings"
	"testing"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient()

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}

	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestNewHTTPClient_NoRetries(t *testing.T) {
	client := NewHTTPClient()

	if client.RetryCount != 0 {
		t.Fatalf("expected retry count 0, got %d", client.RetryCount)
	}
}

func TestHTTPClient_WithTransport_RoutesRequests(t *testing.T) {
	calls := 0
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		calls++
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{"Content-Type": []string{"application/json"}},
			Body:       io.NopCloser(strings.NewReader(`{}`)),
			Request:    r,
		}, nil
	})

	client := NewHTTPClient().WithTransport(rt)
	resp, err := client.R().Get("http://node.invalid/identity/active")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if resp.StatusCode() != http.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode())
	}
	if calls != 1 {
		t.Errorf("expected transport to be called once, got %d", calls)
	}
}

func TestHTTPClient_WithTransport_NilKeepsDefault(t *testing.T) {
	client := NewHTTPClient()
	before := client.GetClient().Transport

	client.WithTransport(nil)

	if client.GetClient().Transport != before {
		t.Fatal("expected nil transport to keep the default transport")
	}
}
