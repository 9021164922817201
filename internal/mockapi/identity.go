// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mockapi

import (
	"net/http"

	"github.com/MKhiriev/go-bitcredit/models"
)

// activeIdentityResponse carries the identity type as its numeric code,
// the way the node encodes it.
type activeIdentityResponse struct {
	NodeID string `json:"node_id"`
	Type   int    `json:"type"`
}

func (h *Handler) activeIdentity(w http.ResponseWriter, r *http.Request) {
	active := h.node.ActiveIdentity()
	h.respond(w, r, activeIdentityResponse{NodeID: active.NodeID, Type: active.Type.Code()})
}

func (h *Handler) identityDetail(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.node.PersonalIdentity())
}

func (h *Handler) createIdentity(w http.ResponseWriter, r *http.Request) {
	var in models.Identity
	if !h.decode(w, r, "*Handler.createIdentity", &in) {
		return
	}
	created, err := h.node.CreateIdentity(in)
	if err != nil {
		h.fail(w, r, "*Handler.createIdentity", err)
		return
	}
	h.respond(w, r, created)
}

func (h *Handler) changeIdentity(w http.ResponseWriter, r *http.Request) {
	var in models.Identity
	if !h.decode(w, r, "*Handler.changeIdentity", &in) {
		return
	}
	if err := h.node.ChangeIdentity(in); err != nil {
		h.fail(w, r, "*Handler.changeIdentity", err)
		return
	}
	h.respondOK(w, r)
}

func (h *Handler) switchIdentity(w http.ResponseWriter, r *http.Request) {
	var req models.SwitchIdentityRequest
	if !h.decode(w, r, "*Handler.switchIdentity", &req) {
		return
	}
	if err := h.node.SwitchIdentity(req); err != nil {
		h.fail(w, r, "*Handler.switchIdentity", err)
		return
	}
	h.respondOK(w, r)
}

func (h *Handler) backupSeed(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.node.BackupSeed())
}

func (h *Handler) recoverSeed(w http.ResponseWriter, r *http.Request) {
	var seed models.SeedPhrase
	if !h.decode(w, r, "*Handler.recoverSeed", &seed) {
		return
	}
	if err := h.node.RecoverSeed(seed); err != nil {
		h.fail(w, r, "*Handler.recoverSeed", err)
		return
	}
	h.respondOK(w, r)
}
