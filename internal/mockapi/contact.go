// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mockapi

import (
	"net/http"

	"github.com/MKhiriev/go-bitcredit/models"
)

func (h *Handler) listContacts(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, models.ContactList{Contacts: h.node.Contacts()})
}

func (h *Handler) contactDetail(w http.ResponseWriter, r *http.Request) {
	contact, err := h.node.Contact(pathParam(r, "id"))
	if err != nil {
		h.fail(w, r, "*Handler.contactDetail", err)
		return
	}
	h.respond(w, r, contact)
}

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	var in models.Contact
	if !h.decode(w, r, "*Handler.createContact", &in) {
		return
	}
	created, err := h.node.CreateContact(in)
	if err != nil {
		h.fail(w, r, "*Handler.createContact", err)
		return
	}
	h.respond(w, r, created)
}

func (h *Handler) editContact(w http.ResponseWriter, r *http.Request) {
	var in models.Contact
	if !h.decode(w, r, "*Handler.editContact", &in) {
		return
	}
	if err := h.node.EditContact(in); err != nil {
		h.fail(w, r, "*Handler.editContact", err)
		return
	}
	h.respondOK(w, r)
}

func (h *Handler) removeContact(w http.ResponseWriter, r *http.Request) {
	if err := h.node.RemoveContact(pathParam(r, "id")); err != nil {
		h.fail(w, r, "*Handler.removeContact", err)
		return
	}
	h.respondOK(w, r)
}
