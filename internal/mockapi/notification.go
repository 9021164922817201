// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mockapi

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-bitcredit/models"
)

func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	filter, err := parseNotificationFilter(r.URL.Query())
	if err != nil {
		h.fail(w, r, "*Handler.listNotifications", err)
		return
	}
	h.respond(w, r, h.node.Notifications(filter))
}

func (h *Handler) markNotificationDone(w http.ResponseWriter, r *http.Request) {
	if err := h.node.MarkNotificationDone(pathParam(r, "id")); err != nil {
		h.fail(w, r, "*Handler.markNotificationDone", err)
		return
	}
	h.respondOK(w, r)
}

func parseNotificationFilter(q url.Values) (models.NotificationFilter, error) {
	filter := models.NotificationFilter{
		Reference: q.Get("reference_id"),
		NodeID:    q.Get("node_ids"),
	}

	if v := q.Get("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			return filter, fmt.Errorf("%w: active=%q", ErrInvalidRequest, v)
		}
		filter.Active = &active
	}

	for key, dst := range map[string]*int{"limit": &filter.Limit, "offset": &filter.Offset} {
		v := q.Get(key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return filter, fmt.Errorf("%w: %s=%q", ErrInvalidRequest, key, v)
		}
		*dst = n
	}

	return filter, nil
}
