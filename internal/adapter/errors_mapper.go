// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"net/http"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	status := http.StatusText(resp.StatusCode())
	if status == "" {
		status = resp.Status()
	}

	return &HTTPError{StatusCode: resp.StatusCode(), Status: status}
}

// StatusCode extracts the HTTP status of err, or 0 when err is not an
// [*HTTPError].
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}
