// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Retries are disabled: every request is a single attempt.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New().SetRetryCount(0)}
}

// WithTransport routes every request through rt instead of the network.
// A nil rt keeps the default transport. The local mock node is plugged in
// this way.
func (c *HTTPClient) WithTransport(rt http.RoundTripper) *HTTPClient {
	if rt != nil {
		c.SetTransport(rt)
	}
	return c
}
