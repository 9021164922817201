// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// ErrHTTPStatus matches every [*HTTPError] via errors.Is.
var ErrHTTPStatus = errors.New("http status error")

// HTTPError is returned for any non-2xx response. Its message is the HTTP
// status text, e.g. "Not Found".
type HTTPError struct {
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	return e.Status
}

// Is reports ErrHTTPStatus as a match.
func (e *HTTPError) Is(target error) bool {
	return target == ErrHTTPStatus
}
