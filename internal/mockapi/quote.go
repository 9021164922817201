// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mockapi

import "net/http"

func (h *Handler) quote(w http.ResponseWriter, r *http.Request) {
	q, err := h.node.Quote(pathParam(r, "id"))
	if err != nil {
		h.fail(w, r, "*Handler.quote", err)
		return
	}
	h.respond(w, r, q)
}

func (h *Handler) acceptQuote(w http.ResponseWriter, r *http.Request) {
	if err := h.node.AcceptQuote(pathParam(r, "id")); err != nil {
		h.fail(w, r, "*Handler.acceptQuote", err)
		return
	}
	h.respondOK(w, r)
}

func (h *Handler) declineQuote(w http.ResponseWriter, r *http.Request) {
	if err := h.node.DeclineQuote(pathParam(r, "id")); err != nil {
		h.fail(w, r, "*Handler.declineQuote", err)
		return
	}
	h.respondOK(w, r)
}
