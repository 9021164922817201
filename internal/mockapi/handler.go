// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mockapi

import (
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-bitcredit/internal/logger"
	"github.com/MKhiriev/go-bitcredit/internal/utils"
)

// maxUploadSize caps multipart uploads, as the node does.
const maxUploadSize = 10 << 20

// Handler serves the node API over a [Node].
type Handler struct {
	node   *Node
	logger *logger.Logger
}

func NewHandler(node *Node, log *logger.Logger) *Handler {
	log.Info().Msg("mock node handler created")
	return &Handler{
		node:   node,
		logger: log,
	}
}

// respond writes v as JSON with status 200.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, v any) {
	if _, err := utils.WriteJSON(w, v, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.respond").Msg("error writing response")
	}
}

// respondOK answers the mutating endpoints that return no payload.
func (h *Handler) respondOK(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// fail maps err to a status code and answers with the status text.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)
	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	utils.WriteStatus(w, status)
}

// decode reads a JSON body into dst, answering 400 on failure.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, funcName string, dst any) bool {
	if err := utils.ReadJSON(r, dst); err != nil {
		h.fail(w, r, funcName, errors.Join(ErrInvalidRequest, err))
		return false
	}
	return true
}

// upload stores the multipart "file" field.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			logger.FromRequest(r).Warn().Str("func", "*Handler.upload").Msg("upload too large")
			utils.WriteStatus(w, http.StatusRequestEntityTooLarge)
			return
		}
		h.fail(w, r, "*Handler.upload", errors.Join(ErrInvalidRequest, err))
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		h.fail(w, r, "*Handler.upload", err)
		return
	}

	h.respond(w, r, h.node.StoreUpload(header.Filename, content))
}

// pathParam returns the unescaped route parameter key.
func pathParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if unescaped, err := url.PathUnescape(v); err == nil {
		return unescaped
	}
	return v
}
