// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NotificationType is the category of a notification.
type NotificationType string

const (
	// GeneralNotification is informational only.
	GeneralNotification NotificationType = "General"
	// BillNotification refers to a bill through ReferenceID.
	BillNotification NotificationType = "Bill"
)

// ActionType is the action a bill notification asks for.
type ActionType string

const (
	ActionAcceptBill   ActionType = "AcceptBill"
	ActionPayBill      ActionType = "PayBill"
	ActionCheckBill    ActionType = "CheckBill"
	ActionCheckQuote   ActionType = "CheckQuote"
	ActionRecourseBill ActionType = "RecourseBill"
)

// NotificationPayload carries the action details of a bill notification.
type NotificationPayload struct {
	ActionType ActionType `json:"action_type"`
	BillID     string     `json:"bill_id"`
	Sum        *string    `json:"sum,omitempty"`
}

// Notification is a message the node addressed to one of its identities.
// At most one active notification is attached to a bill.
type Notification struct {
	ID               string              `json:"id"`
	NodeID           string              `json:"node_id"`
	NotificationType NotificationType    `json:"notification_type"`
	ReferenceID      string              `json:"reference_id,omitempty"`
	Description      string              `json:"description"`
	Datetime         string              `json:"datetime"`
	Active           bool                `json:"active"`
	Payload          NotificationPayload `json:"payload"`
}

// NotificationFilter narrows GET /notifications.
type NotificationFilter struct {
	Active    *bool  `json:"active,omitempty"`
	Reference string `json:"reference_id,omitempty"`
	NodeID    string `json:"node_id,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	Offset    int    `json:"offset,omitempty"`
}
