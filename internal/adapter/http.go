// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-bitcredit/internal/config"
	"github.com/MKhiriev/go-bitcredit/internal/logger"
	"github.com/MKhiriev/go-bitcredit/internal/utils"
	"github.com/MKhiriev/go-bitcredit/models"
	"github.com/go-resty/resty/v2"
)

const traceIDHeader = "X-Trace-ID"

type httpAPIClient struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPAPIClient constructs the HTTP implementation of [APIClient].
// It normalises the base URL from adapterCfg.HTTPAddress and applies
// adapterCfg.RequestTimeout (zero leaves requests unbounded). A non-nil
// transport replaces the network, which is how the local mock node is
// plugged in.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPAPIClient(adapterCfg config.ClientAdapter, transport http.RoundTripper, log *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient().WithTransport(transport)
	client.SetBaseURL(baseURL)
	if adapterCfg.RequestTimeout > 0 {
		client.SetTimeout(adapterCfg.RequestTimeout)
	}

	return &httpAPIClient{client: client, logger: log.Component("adapter")}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Do implements [APIClient].
func (h *httpAPIClient) Do(ctx context.Context, path string, opts RequestOptions) error {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	req := h.request(ctx).SetHeader("Content-Type", "application/json")
	for k, v := range opts.Headers {
		req.SetHeader(k, v)
	}
	if opts.Query != nil {
		req.SetQueryParamsFromValues(opts.Query)
	}
	if opts.Body != nil {
		req.SetBody(opts.Body)
	}

	resp, err := h.execute(req, method, path)
	if err != nil {
		return err
	}

	if opts.Result == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), opts.Result); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}

	return nil
}

// Upload implements [APIClient].
func (h *httpAPIClient) Upload(ctx context.Context, path, filename string, content io.Reader) (models.UploadedFile, error) {
	var uploaded models.UploadedFile

	req := h.request(ctx).SetFileReader("file", filename, content)

	resp, err := h.execute(req, http.MethodPost, path)
	if err != nil {
		return uploaded, err
	}

	if err = json.Unmarshal(resp.Body(), &uploaded); err != nil {
		return uploaded, fmt.Errorf("decode upload response: %w", err)
	}

	return uploaded, nil
}

func (h *httpAPIClient) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}
	return req
}

func (h *httpAPIClient) execute(req *resty.Request, method, path string) (*resty.Response, error) {
	start := time.Now()
	resp, err := req.Execute(method, path)

	log := h.logger.WithTraceID(req.Context())
	if err != nil {
		log.Err(err).
			Str("func", "httpAPIClient.execute").
			Str("method", method).
			Str("path", path).
			Dur("duration", time.Since(start)).
			Msg("request failed")
		return nil, fmt.Errorf("%s %s request: %w", method, path, err)
	}

	log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("request finished")

	return resp, mapHTTPError(resp)
}
