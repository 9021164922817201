// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// QuoteStatus is the mint's answer to a request to mint.
type QuoteStatus string

const (
	QuotePending  QuoteStatus = "pending"
	QuoteOffered  QuoteStatus = "offered"
	QuoteAccepted QuoteStatus = "accepted"
	QuoteDeclined QuoteStatus = "declined"
)

// Quote is a mint's offer for a bill.
type Quote struct {
	BillID     string      `json:"bill_id"`
	MintNodeID string      `json:"mint_node_id"`
	Sum        string      `json:"sum"`
	QuoteID    string      `json:"quote_id,omitempty"`
	Token      string      `json:"token,omitempty"`
	Status     QuoteStatus `json:"status"`
}
