// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-bitcredit/internal/adapter"
	"github.com/MKhiriev/go-bitcredit/models"
)

type clientNotificationService struct {
	api adapter.APIClient
}

func NewClientNotificationService(api adapter.APIClient) NotificationService {
	return &clientNotificationService{api: api}
}

func (s *clientNotificationService) List(ctx context.Context, filter models.NotificationFilter) ([]models.Notification, error) {
	var notifications []models.Notification
	err := s.api.Do(ctx, "/notifications", adapter.RequestOptions{
		Query:  notificationQuery(filter),
		Result: &notifications,
	})
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

func (s *clientNotificationService) MarkDone(ctx context.Context, id string) error {
	path := "/notifications/" + url.PathEscape(id) + "/done"
	if err := s.api.Do(ctx, path, adapter.RequestOptions{Method: http.MethodPost}); err != nil {
		return fmt.Errorf("mark notification %s done: %w", id, err)
	}
	return nil
}

// notificationQuery turns the filter into query parameters, leaving out
// unset fields. A nil result means no query string.
func notificationQuery(filter models.NotificationFilter) url.Values {
	q := url.Values{}
	if filter.Active != nil {
		q.Set("active", strconv.FormatBool(*filter.Active))
	}
	if filter.Reference != "" {
		q.Set("reference_id", filter.Reference)
	}
	if filter.NodeID != "" {
		q.Set("node_ids", filter.NodeID)
	}
	if filter.Limit > 0 {
		q.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Offset > 0 {
		q.Set("offset", strconv.Itoa(filter.Offset))
	}

	if len(q) == 0 {
		return nil
	}
	return q
}
