// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mockapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-bitcredit/internal/utils"
)

// Init builds the router with every node API route.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)

	router.Route("/identity", func(r chi.Router) {
		r.Get("/active", h.activeIdentity)
		r.Get("/detail", h.identityDetail)
		r.Post("/create", h.createIdentity)
		r.Put("/change", h.changeIdentity)
		r.Put("/switch", h.switchIdentity)
		r.Post("/upload_file", h.upload)
		r.Get("/seed/backup", h.backupSeed)
		r.Put("/seed/recover", h.recoverSeed)
	})

	router.Route("/company", func(r chi.Router) {
		r.Get("/list", h.listCompanies)
		r.Get("/detail/{id}", h.companyDetail)
		r.Post("/create", h.createCompany)
		r.Put("/edit", h.editCompany)
		r.Put("/add_signatory", h.addSignatory)
		r.Put("/remove_signatory", h.removeSignatory)
		r.Post("/upload_file", h.upload)
	})

	router.Route("/contacts", func(r chi.Router) {
		r.Get("/list", h.listContacts)
		r.Get("/detail/{id}", h.contactDetail)
		r.Post("/create", h.createContact)
		r.Put("/edit", h.editContact)
		r.Delete("/remove/{id}", h.removeContact)
		r.Post("/upload_file", h.upload)
	})

	router.Get("/bills", h.listBills)
	router.Get("/bills/light", h.listLightBills)
	router.Route("/bill", func(r chi.Router) {
		r.Get("/detail/{id}", h.billDetail)
		r.Post("/search", h.searchBills)
		r.Post("/issue", h.issueBill)
		r.Put("/endorse", h.endorseBill)
		r.Put("/accept", h.acceptBill)
		r.Put("/request_to_pay", h.requestToPay)
		r.Put("/request_to_accept", h.requestToAccept)
		r.Put("/offer_to_sell", h.offerToSell)
		r.Put("/request_to_mint", h.requestToMint)
		r.Post("/upload_files", h.upload)
	})

	router.Get("/notifications", h.listNotifications)
	router.Post("/notifications/{id}/done", h.markNotificationDone)

	router.Get("/quote/{id}", h.quote)
	router.Put("/quote/{id}/accept", h.acceptQuote)
	router.Put("/quote/{id}/decline", h.declineQuote)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteStatus(w, http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteStatus(w, http.StatusMethodNotAllowed)
	})

	return router
}
