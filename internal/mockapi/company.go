// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mockapi

import (
	"net/http"

	"github.com/MKhiriev/go-bitcredit/models"
)

func (h *Handler) listCompanies(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, models.CompanyList{Companies: h.node.Companies()})
}

func (h *Handler) companyDetail(w http.ResponseWriter, r *http.Request) {
	company, err := h.node.Company(pathParam(r, "id"))
	if err != nil {
		h.fail(w, r, "*Handler.companyDetail", err)
		return
	}
	h.respond(w, r, company)
}

func (h *Handler) createCompany(w http.ResponseWriter, r *http.Request) {
	var in models.Company
	if !h.decode(w, r, "*Handler.createCompany", &in) {
		return
	}
	created, err := h.node.CreateCompany(in)
	if err != nil {
		h.fail(w, r, "*Handler.createCompany", err)
		return
	}
	h.respond(w, r, created)
}

func (h *Handler) editCompany(w http.ResponseWriter, r *http.Request) {
	var in models.Company
	if !h.decode(w, r, "*Handler.editCompany", &in) {
		return
	}
	if err := h.node.EditCompany(in); err != nil {
		h.fail(w, r, "*Handler.editCompany", err)
		return
	}
	h.respondOK(w, r)
}

func (h *Handler) addSignatory(w http.ResponseWriter, r *http.Request) {
	var req models.SignatoryRequest
	if !h.decode(w, r, "*Handler.addSignatory", &req) {
		return
	}
	if err := h.node.AddSignatory(req); err != nil {
		h.fail(w, r, "*Handler.addSignatory", err)
		return
	}
	h.respondOK(w, r)
}

func (h *Handler) removeSignatory(w http.ResponseWriter, r *http.Request) {
	var req models.SignatoryRequest
	if !h.decode(w, r, "*Handler.removeSignatory", &req) {
		return
	}
	if err := h.node.RemoveSignatory(req); err != nil {
		h.fail(w, r, "*Handler.removeSignatory", err)
		return
	}
	h.respondOK(w, r)
}
