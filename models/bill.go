// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BillType is the kind of instrument drawn.
type BillType int

const (
	// PromissoryNote: the drawer promises to pay the payee.
	PromissoryNote BillType = 0
	// SelfDraftedBill: the drawer orders itself to pay the payee.
	SelfDraftedBill BillType = 1
	// DraftedBill: the drawer orders the drawee to pay the payee.
	DraftedBill BillType = 2
)

// String implements fmt.Stringer.
func (t BillType) String() string {
	switch t {
	case PromissoryNote:
		return "promissory note"
	case SelfDraftedBill:
		return "self-drafted bill"
	case DraftedBill:
		return "bill of exchange"
	default:
		return "unknown"
	}
}

// BillParticipant is one party of a bill: drawer, drawee, payee or endorsee.
type BillParticipant struct {
	Type    ContactType   `json:"type"`
	NodeID  string        `json:"node_id"`
	Name    string        `json:"name"`
	Email   string        `json:"email,omitempty"`
	Address PostalAddress `json:"postal_address"`
}

// File is a document attached to a bill.
type File struct {
	Name string `json:"name"`
	Hash string `json:"hash"`
	Size int64  `json:"size"`
}

// Block is one entry of a bill's chain. The client never checks hashes or
// signatures; it only renders the chain.
type Block struct {
	ID           int64  `json:"id"`
	Hash         string `json:"hash"`
	PreviousHash string `json:"previous_hash"`
	Signature    string `json:"signature"`
	Timestamp    int64  `json:"timestamp"`
	OpCode       string `json:"op_code"`
	Data         string `json:"data,omitempty"`
}

// ChainOfBlocks is the append-only history of a bill.
type ChainOfBlocks struct {
	Blocks []Block `json:"blocks"`
}

// Bill is the full view of a bill as returned by GET /bill/detail/{id}.
type Bill struct {
	ID               string   `json:"id"`
	TimeOfDrawing    int64    `json:"time_of_drawing"`
	Type             BillType `json:"bill_type"`
	CountryOfIssuing string   `json:"country_of_issuing"`
	CityOfIssuing    string   `json:"city_of_issuing"`

	Drawee   BillParticipant  `json:"drawee"`
	Drawer   BillParticipant  `json:"drawer"`
	Payee    BillParticipant  `json:"payee"`
	Endorsee *BillParticipant `json:"endorsee,omitempty"`

	Currency         string `json:"currency"`
	Sum              string `json:"sum"`
	MaturityDate     string `json:"maturity_date"`
	IssueDate        string `json:"issue_date"`
	CountryOfPayment string `json:"country_of_payment"`
	CityOfPayment    string `json:"city_of_payment"`
	Language         string `json:"language"`

	Accepted          bool `json:"accepted"`
	Endorsed          bool `json:"endorsed"`
	RequestedToPay    bool `json:"requested_to_pay"`
	RequestedToAccept bool `json:"requested_to_accept"`
	Paid              bool `json:"paid"`
	WaitingForPayment bool `json:"waiting_for_payment"`

	Files              []File        `json:"files,omitempty"`
	ActiveNotification *Notification `json:"active_notification,omitempty"`
	ChainOfBlocks      ChainOfBlocks `json:"chain_of_blocks"`
}

// Holder returns the participant currently holding the bill: the last
// endorsee if the bill was endorsed, the payee otherwise.
func (b Bill) Holder() BillParticipant {
	if b.Endorsee != nil {
		return *b.Endorsee
	}
	return b.Payee
}

// LightBill is the list projection returned by GET /bills/light.
type LightBill struct {
	ID                 string           `json:"id"`
	Drawee             BillParticipant  `json:"drawee"`
	Drawer             BillParticipant  `json:"drawer"`
	Payee              BillParticipant  `json:"payee"`
	Endorsee           *BillParticipant `json:"endorsee,omitempty"`
	ActiveNotification *Notification    `json:"active_notification,omitempty"`
	Sum                string           `json:"sum"`
	Currency           string           `json:"currency"`
	IssueDate          string           `json:"issue_date"`
	TimeOfDrawing      int64            `json:"time_of_drawing"`
	TimeOfMaturity     int64            `json:"time_of_maturity"`
}

// BillList is the response of GET /bills.
type BillList struct {
	Bills []Bill `json:"bills"`
}

// LightBillList is the response of GET /bills/light.
type LightBillList struct {
	Bills []LightBill `json:"bills"`
}

// BillRole filters bills by the active identity's role in them.
type BillRole string

const (
	RoleAll    BillRole = "all"
	RolePayer  BillRole = "payer"
	RolePayee  BillRole = "payee"
	RoleHolder BillRole = "holder"
)

// BillSearchFilter is the body of POST /bill/search.
type BillSearchFilter struct {
	Search       string     `json:"search_term,omitempty"`
	DateRange    *DateRange `json:"date_range,omitempty"`
	Role         BillRole   `json:"role"`
	Currency     string     `json:"currency,omitempty"`
	Counterparty string     `json:"counterparty,omitempty"`
}

// DateRange bounds a search by issue date (ISO yyyy-mm-dd, inclusive).
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// IssueBillRequest is the body of POST /bill/issue.
type IssueBillRequest struct {
	Type             BillType `json:"t"`
	CountryOfIssuing string   `json:"country_of_issuing"`
	CityOfIssuing    string   `json:"city_of_issuing"`
	IssueDate        string   `json:"issue_date"`
	MaturityDate     string   `json:"maturity_date"`
	Payee            string   `json:"payee"`
	Drawee           string   `json:"drawee"`
	Sum              string   `json:"sum"`
	Currency         string   `json:"currency"`
	CountryOfPayment string   `json:"country_of_payment"`
	CityOfPayment    string   `json:"city_of_payment"`
	Language         string   `json:"language"`
	FileUploadID     string   `json:"file_upload_id,omitempty"`
}

// BillID is the response of POST /bill/issue.
type BillID struct {
	ID string `json:"id"`
}

// EndorseBillRequest is the body of POST /bill/endorse.
type EndorseBillRequest struct {
	BillID   string `json:"bill_id"`
	Endorsee string `json:"endorsee"`
}

// BillActionRequest is the body of the single-bill actions (accept, request
// to accept).
type BillActionRequest struct {
	BillID string `json:"bill_id"`
}

// RequestToPayRequest is the body of POST /bill/request_to_pay.
type RequestToPayRequest struct {
	BillID   string `json:"bill_id"`
	Currency string `json:"currency"`
}

// OfferToSellRequest is the body of POST /bill/offer_to_sell.
type OfferToSellRequest struct {
	BillID   string `json:"bill_id"`
	Buyer    string `json:"buyer"`
	Sum      string `json:"sum"`
	Currency string `json:"currency"`
}

// RequestToMintRequest is the body of POST /bill/request_to_mint.
type RequestToMintRequest struct {
	BillID     string `json:"bill_id"`
	MintNodeID string `json:"mint_node"`
}
