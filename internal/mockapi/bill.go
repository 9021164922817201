// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mockapi

import (
	"net/http"

	"github.com/MKhiriev/go-bitcredit/models"
)

func (h *Handler) listBills(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, models.BillList{Bills: h.node.Bills()})
}

func (h *Handler) listLightBills(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, models.LightBillList{Bills: h.node.LightBills()})
}

func (h *Handler) billDetail(w http.ResponseWriter, r *http.Request) {
	bill, err := h.node.Bill(pathParam(r, "id"))
	if err != nil {
		h.fail(w, r, "*Handler.billDetail", err)
		return
	}
	h.respond(w, r, bill)
}

func (h *Handler) searchBills(w http.ResponseWriter, r *http.Request) {
	var filter models.BillSearchFilter
	if !h.decode(w, r, "*Handler.searchBills", &filter) {
		return
	}
	h.respond(w, r, models.LightBillList{Bills: h.node.SearchBills(filter)})
}

func (h *Handler) issueBill(w http.ResponseWriter, r *http.Request) {
	var req models.IssueBillRequest
	if !h.decode(w, r, "*Handler.issueBill", &req) {
		return
	}
	id, err := h.node.IssueBill(req)
	if err != nil {
		h.fail(w, r, "*Handler.issueBill", err)
		return
	}
	h.respond(w, r, id)
}

func (h *Handler) endorseBill(w http.ResponseWriter, r *http.Request) {
	billAction(h, w, r, "*Handler.endorseBill", h.node.EndorseBill)
}

func (h *Handler) acceptBill(w http.ResponseWriter, r *http.Request) {
	billAction(h, w, r, "*Handler.acceptBill", h.node.AcceptBill)
}

func (h *Handler) requestToPay(w http.ResponseWriter, r *http.Request) {
	billAction(h, w, r, "*Handler.requestToPay", h.node.RequestToPay)
}

func (h *Handler) requestToAccept(w http.ResponseWriter, r *http.Request) {
	billAction(h, w, r, "*Handler.requestToAccept", h.node.RequestToAccept)
}

func (h *Handler) offerToSell(w http.ResponseWriter, r *http.Request) {
	billAction(h, w, r, "*Handler.offerToSell", h.node.OfferToSell)
}

func (h *Handler) requestToMint(w http.ResponseWriter, r *http.Request) {
	billAction(h, w, r, "*Handler.requestToMint", h.node.RequestToMint)
}

// billAction decodes a request body of type Req and applies it.
func billAction[Req any](h *Handler, w http.ResponseWriter, r *http.Request, funcName string, apply func(Req) error) {
	var req Req
	if !h.decode(w, r, funcName, &req) {
		return
	}
	if err := apply(req); err != nil {
		h.fail(w, r, funcName, err)
		return
	}
	h.respondOK(w, r)
}
