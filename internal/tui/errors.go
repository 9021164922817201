// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-bitcredit/internal/adapter"
	"github.com/MKhiriev/go-bitcredit/internal/validators"
)

var errNoDefaultMint = errors.New("no default mint configured, set one in settings")

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var validationErrs validators.ValidationErrors
	if errors.As(err, &validationErrs) {
		return "Please fix: " + validationErrs.Error()
	}

	var httpErr *adapter.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.StatusCode {
		case http.StatusNotFound:
			return "Not found on the node"
		case http.StatusConflict:
			return "The node rejected the change: " + err.Error()
		}
		return err.Error()
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "The node is unreachable"
	}

	return err.Error()
}
