// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for communicating with the
// Bitcredit node API.
//
// The primary abstraction is [APIClient]: every request goes against a single
// configured base URL, carries a default JSON content type and decodes a JSON
// success body into a caller-provided value. Any non-2xx status becomes an
// [*HTTPError] carrying the HTTP status text; callers can test for it with
// errors.Is(err, [ErrHTTPStatus]). There are no retries and no caching.
package adapter

import (
	"context"
	"io"
	"net/url"

	"github.com/MKhiriev/go-bitcredit/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_client_mock.go -package=mock

// RequestOptions describes a single request issued through [APIClient.Do].
type RequestOptions struct {
	// Method is the HTTP verb. Empty means GET.
	Method string
	// Body is JSON-encoded when non-nil.
	Body any
	// Headers are applied after the defaults, so they override them.
	Headers map[string]string
	// Query is appended to the request URL.
	Query url.Values
	// Result receives the decoded JSON body of a successful response.
	// A nil Result discards the body.
	Result any
}

// APIClient issues requests against the node API.
type APIClient interface {
	// Do sends one request to path (relative to the base URL) and decodes the
	// success body into opts.Result. A non-2xx response is returned as an
	// [*HTTPError].
	Do(ctx context.Context, path string, opts RequestOptions) error

	// Upload posts content as the multipart form field "file" under the
	// given filename and returns the opaque upload id assigned by the node.
	Upload(ctx context.Context, path, filename string, content io.Reader) (models.UploadedFile, error)
}
