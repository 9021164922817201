// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mockapi

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-bitcredit/internal/logger"
	"github.com/MKhiriev/go-bitcredit/internal/utils"
	"github.com/MKhiriev/go-bitcredit/models"
)

// Block op codes appended to a bill's chain.
const (
	opIssue           = "Issue"
	opAccept          = "Accept"
	opEndorse         = "Endorse"
	opRequestToPay    = "RequestToPay"
	opRequestToAccept = "RequestToAccept"
	opOfferToSell     = "OfferToSell"
	opRequestToMint   = "RequestToMint"
)

// Node is the in-memory state of the mock node. All methods are safe for
// concurrent use and return copies of the stored records.
type Node struct {
	mu sync.Mutex

	personal      models.Identity
	active        models.ActiveIdentity
	seed          string
	companies     []models.Company
	contacts      []models.Contact
	bills         []models.Bill
	notifications []models.Notification
	quotes        map[string]models.Quote
	uploads       map[string]models.File

	ids    *utils.IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewNode returns a node seeded with one personal identity, one company,
// two contacts, three bills, a few notifications and an offered quote.
func NewNode(log *logger.Logger) *Node {
	n := &Node{
		personal:  fixturePersonal(),
		seed:      SeedPhrase,
		companies: fixtureCompanies(),
		contacts:  fixtureContacts(),
		quotes:    make(map[string]models.Quote),
		uploads:   make(map[string]models.File),
		ids:       utils.NewIDGenerator(),
		now:       time.Now,
		logger:    log,
	}
	n.active = models.ActiveIdentity{NodeID: n.personal.NodeID, Type: models.PersonalIdentity}

	for _, fb := range fixtureBills(n.personal, n.companies[0].AsIdentity(), n.contacts) {
		bill := fb.bill
		ts := bill.TimeOfDrawing
		for _, op := range fb.blocks {
			appendBlock(&bill, op, ts, "")
			ts += 3600
		}
		n.bills = append(n.bills, bill)
	}
	n.notifications = fixtureNotifications()
	for _, q := range fixtureQuotes() {
		n.quotes[q.BillID] = q
	}

	return n
}

// ActiveIdentity returns the identity the node currently acts as.
func (n *Node) ActiveIdentity() models.ActiveIdentity {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.active
}

// PersonalIdentity returns the node owner's identity.
func (n *Node) PersonalIdentity() models.Identity {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.personal
}

// CreateIdentity replaces the personal identity with a freshly keyed one
// and makes it active.
func (n *Node) CreateIdentity(in models.Identity) (models.Identity, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return models.Identity{}, fmt.Errorf("%w: name and email are required", ErrInvalidRequest)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	in.NodeID = n.ids.NodeID()
	in.Type = models.PersonalIdentity
	n.personal = in
	n.active = models.ActiveIdentity{NodeID: in.NodeID, Type: models.PersonalIdentity}
	return in, nil
}

// ChangeIdentity updates the personal identity's non-empty fields.
func (n *Node) ChangeIdentity(in models.Identity) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if in.NodeID != "" && in.NodeID != n.personal.NodeID {
		return fmt.Errorf("%w: identity %s", ErrNotFound, in.NodeID)
	}
	setIfNotEmpty(&n.personal.Name, in.Name)
	setIfNotEmpty(&n.personal.Email, in.Email)
	setIfNotEmpty(&n.personal.Avatar, in.Avatar)
	setIfNotEmpty(&n.personal.ProfilePictureFileUploadID, in.ProfilePictureFileUploadID)
	setIfNotEmpty(&n.personal.IdentityDocumentFileUploadID, in.IdentityDocumentFileUploadID)
	if in.Address != (models.PostalAddress{}) {
		n.personal.Address = in.Address
	}
	return nil
}

// SwitchIdentity makes the personal identity (type 0) or one of the
// companies (type 1) active.
func (n *Node) SwitchIdentity(req models.SwitchIdentityRequest) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	switch req.Type {
	case models.PersonalIdentity.Code():
		if req.NodeID != n.personal.NodeID {
			return fmt.Errorf("%w: personal identity %s", ErrNotFound, req.NodeID)
		}
		n.active = models.ActiveIdentity{NodeID: req.NodeID, Type: models.PersonalIdentity}
	case models.CompanyIdentity.Code():
		if n.companyIndex(req.NodeID) < 0 {
			return fmt.Errorf("%w: company %s", ErrNotFound, req.NodeID)
		}
		n.active = models.ActiveIdentity{NodeID: req.NodeID, Type: models.CompanyIdentity}
	default:
		return fmt.Errorf("%w: identity type %d", ErrInvalidRequest, req.Type)
	}

	n.logger.Debug().Str("node_id", req.NodeID).Int("t", req.Type).Msg("identity switched")
	return nil
}

// BackupSeed returns the seed phrase of the personal identity.
func (n *Node) BackupSeed() models.SeedPhrase {
	n.mu.Lock()
	defer n.mu.Unlock()
	return models.SeedPhrase{SeedPhrase: n.seed}
}

// RecoverSeed restores the node from a 12 or 24 word seed phrase. The
// seeded phrase restores the seeded identity; any other phrase yields a
// blank identity with a derived node id.
func (n *Node) RecoverSeed(seed models.SeedPhrase) error {
	words := strings.Fields(seed.SeedPhrase)
	if len(words) != 12 && len(words) != 24 {
		return fmt.Errorf("%w: seed phrase must have 12 or 24 words", ErrInvalidRequest)
	}
	phrase := strings.Join(words, " ")

	n.mu.Lock()
	defer n.mu.Unlock()

	if phrase == SeedPhrase {
		n.personal = fixturePersonal()
	} else {
		sum := sha256.Sum256([]byte(phrase))
		n.personal = models.Identity{NodeID: "02" + hex.EncodeToString(sum[:]), Type: models.PersonalIdentity}
	}
	n.seed = phrase
	n.active = models.ActiveIdentity{NodeID: n.personal.NodeID, Type: models.PersonalIdentity}
	return nil
}

// StoreUpload records an uploaded file and returns its upload id.
func (n *Node) StoreUpload(name string, content []byte) models.UploadedFile {
	sum := sha256.Sum256(content)
	id := n.ids.Generate()

	n.mu.Lock()
	defer n.mu.Unlock()
	n.uploads[id] = models.File{Name: name, Hash: hex.EncodeToString(sum[:]), Size: int64(len(content))}
	return models.UploadedFile{FileUploadID: id}
}

// Companies lists the companies the node owner signs for.
func (n *Node) Companies() []models.Company {
	n.mu.Lock()
	defer n.mu.Unlock()
	return slices.Clone(n.companies)
}

// Company returns one company by id.
func (n *Node) Company(id string) (models.Company, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	i := n.companyIndex(id)
	if i < 0 {
		return models.Company{}, fmt.Errorf("%w: company %s", ErrNotFound, id)
	}
	return n.companies[i], nil
}

// CreateCompany registers a company with the personal identity as its
// first signatory.
func (n *Node) CreateCompany(in models.Company) (models.Company, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return models.Company{}, fmt.Errorf("%w: name and email are required", ErrInvalidRequest)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	in.ID = "03" + n.ids.NodeID()[2:]
	in.Signatories = []models.Signer{{NodeID: n.personal.NodeID, Name: n.personal.Name, Address: n.personal.Address}}
	n.companies = append(n.companies, in)
	return in, nil
}

// EditCompany updates a company's non-empty fields.
func (n *Node) EditCompany(in models.Company) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	i := n.companyIndex(in.ID)
	if i < 0 {
		return fmt.Errorf("%w: company %s", ErrNotFound, in.ID)
	}
	c := &n.companies[i]
	setIfNotEmpty(&c.Name, in.Name)
	setIfNotEmpty(&c.Email, in.Email)
	setIfNotEmpty(&c.Logo, in.Logo)
	setIfNotEmpty(&c.LogoFileUploadID, in.LogoFileUploadID)
	setIfNotEmpty(&c.ProofOfRegistrationFileUploadID, in.ProofOfRegistrationFileUploadID)
	if in.Address != (models.PostalAddress{}) {
		c.Address = in.Address
	}
	return nil
}

// AddSignatory adds a known contact as a company signatory.
func (n *Node) AddSignatory(req models.SignatoryRequest) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	i := n.companyIndex(req.CompanyID)
	if i < 0 {
		return fmt.Errorf("%w: company %s", ErrNotFound, req.CompanyID)
	}
	c := &n.companies[i]
	if slices.ContainsFunc(c.Signatories, func(s models.Signer) bool { return s.NodeID == req.SignatoryID }) {
		return fmt.Errorf("%w: %s is already a signatory", ErrConflict, req.SignatoryID)
	}

	j := n.contactIndex(req.SignatoryID)
	if j < 0 {
		return fmt.Errorf("%w: contact %s", ErrNotFound, req.SignatoryID)
	}
	contact := n.contacts[j]
	c.Signatories = append(c.Signatories, models.Signer{NodeID: contact.NodeID, Name: contact.Name, Address: contact.Address})
	return nil
}

// RemoveSignatory removes a signatory. The last signatory cannot be
// removed.
func (n *Node) RemoveSignatory(req models.SignatoryRequest) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	i := n.companyIndex(req.CompanyID)
	if i < 0 {
		return fmt.Errorf("%w: company %s", ErrNotFound, req.CompanyID)
	}
	c := &n.companies[i]
	j := slices.IndexFunc(c.Signatories, func(s models.Signer) bool { return s.NodeID == req.SignatoryID })
	if j < 0 {
		return fmt.Errorf("%w: signatory %s", ErrNotFound, req.SignatoryID)
	}
	if len(c.Signatories) == 1 {
		return fmt.Errorf("%w: cannot remove the last signatory", ErrConflict)
	}
	c.Signatories = slices.Delete(c.Signatories, j, j+1)
	return nil
}

// Contacts lists the contact book.
func (n *Node) Contacts() []models.Contact {
	n.mu.Lock()
	defer n.mu.Unlock()
	return slices.Clone(n.contacts)
}

// Contact returns one contact by node id.
func (n *Node) Contact(nodeID string) (models.Contact, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	i := n.contactIndex(nodeID)
	if i < 0 {
		return models.Contact{}, fmt.Errorf("%w: contact %s", ErrNotFound, nodeID)
	}
	return n.contacts[i], nil
}

// CreateContact adds a contact. Node ids are unique in the contact book.
func (n *Node) CreateContact(in models.Contact) (models.Contact, error) {
	if in.NodeID == "" || strings.TrimSpace(in.Name) == "" {
		return models.Contact{}, fmt.Errorf("%w: node id and name are required", ErrInvalidRequest)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.contactIndex(in.NodeID) >= 0 {
		return models.Contact{}, fmt.Errorf("%w: contact %s exists", ErrConflict, in.NodeID)
	}
	n.contacts = append(n.contacts, in)
	return in, nil
}

// EditContact replaces a contact's non-empty fields.
func (n *Node) EditContact(in models.Contact) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	i := n.contactIndex(in.NodeID)
	if i < 0 {
		return fmt.Errorf("%w: contact %s", ErrNotFound, in.NodeID)
	}
	c := &n.contacts[i]
	setIfNotEmpty(&c.Name, in.Name)
	setIfNotEmpty(&c.Email, in.Email)
	setIfNotEmpty(&c.AvatarFileUploadID, in.AvatarFileUploadID)
	setIfNotEmpty(&c.ProofDocumentFileUploadID, in.ProofDocumentFileUploadID)
	if in.Address != (models.PostalAddress{}) {
		c.Address = in.Address
	}
	return nil
}

// RemoveContact deletes a contact.
func (n *Node) RemoveContact(nodeID string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	i := n.contactIndex(nodeID)
	if i < 0 {
		return fmt.Errorf("%w: contact %s", ErrNotFound, nodeID)
	}
	n.contacts = slices.Delete(n.contacts, i, i+1)
	return nil
}

// Bills lists all bills, newest first.
func (n *Node) Bills() []models.Bill {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.sortedBills()
}

// LightBills lists bill summaries, newest first.
func (n *Node) LightBills() []models.LightBill {
	bills := n.Bills()
	out := make([]models.LightBill, 0, len(bills))
	for _, b := range bills {
		out = append(out, lightBill(b))
	}
	return out
}

// Bill returns one bill by id.
func (n *Node) Bill(id string) (models.Bill, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	i := n.billIndex(id)
	if i < 0 {
		return models.Bill{}, fmt.Errorf("%w: bill %s", ErrNotFound, id)
	}
	return n.bills[i], nil
}

// SearchBills filters bills by term, role relative to the active identity,
// currency, counterparty and issue date range.
func (n *Node) SearchBills(filter models.BillSearchFilter) []models.LightBill {
	n.mu.Lock()
	self := n.active.NodeID
	bills := n.sortedBills()
	n.mu.Unlock()

	term := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]models.LightBill, 0)
	for _, b := range bills {
		if !matchesRole(b, filter.Role, self) {
			continue
		}
		if filter.Currency != "" && !strings.EqualFold(b.Currency, filter.Currency) {
			continue
		}
		if filter.Counterparty != "" && !hasParticipant(b, filter.Counterparty) {
			continue
		}
		if r := filter.DateRange; r != nil {
			if (r.From != "" && b.IssueDate < r.From) || (r.To != "" && b.IssueDate > r.To) {
				continue
			}
		}
		if term != "" && !matchesTerm(b, term) {
			continue
		}
		out = append(out, lightBill(b))
	}
	return out
}

// IssueBill draws a bill from the active identity. Payee and drawee must
// be contacts or the node's own identities.
func (n *Node) IssueBill(req models.IssueBillRequest) (models.BillID, error) {
	if req.Sum == "" || req.Currency == "" || req.IssueDate == "" || req.MaturityDate == "" {
		return models.BillID{}, fmt.Errorf("%w: sum, currency and dates are required", ErrInvalidRequest)
	}
	if sum, err := strconv.ParseUint(req.Sum, 10, 64); err != nil || sum == 0 {
		return models.BillID{}, fmt.Errorf("%w: sum must be a positive integer", ErrInvalidRequest)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	drawer, err := n.participant(n.active.NodeID)
	if err != nil {
		return models.BillID{}, err
	}
	// a promissory note is drawn on the drawer, a self-drafted bill is
	// payable to the drawer
	drawee, payee := drawer, drawer
	if req.Type != models.PromissoryNote {
		if drawee, err = n.participant(req.Drawee); err != nil {
			return models.BillID{}, err
		}
	}
	if req.Type != models.SelfDraftedBill {
		if payee, err = n.participant(req.Payee); err != nil {
			return models.BillID{}, err
		}
	}

	now := n.now()
	bill := models.Bill{
		ID:               n.ids.Generate(),
		TimeOfDrawing:    now.Unix(),
		Type:             req.Type,
		CountryOfIssuing: req.CountryOfIssuing,
		CityOfIssuing:    req.CityOfIssuing,
		Drawer:           drawer,
		Drawee:           drawee,
		Payee:            payee,
		Currency:         req.Currency,
		Sum:              req.Sum,
		IssueDate:        req.IssueDate,
		MaturityDate:     req.MaturityDate,
		CountryOfPayment: req.CountryOfPayment,
		CityOfPayment:    req.CityOfPayment,
		Language:         req.Language,
	}
	if req.FileUploadID != "" {
		f, ok := n.uploads[req.FileUploadID]
		if !ok {
			return models.BillID{}, fmt.Errorf("%w: upload %s", ErrNotFound, req.FileUploadID)
		}
		bill.Files = []models.File{f}
	}
	appendBlock(&bill, opIssue, now.Unix(), drawer.NodeID)
	n.bills = append(n.bills, bill)

	n.notify(drawee.NodeID, bill.ID, "New bill waiting for acceptance", models.ActionAcceptBill)
	return models.BillID{ID: bill.ID}, nil
}

// EndorseBill transfers the bill from its holder to the endorsee.
func (n *Node) EndorseBill(req models.EndorseBillRequest) error {
	return n.mutateBill(req.BillID, opEndorse, func(b *models.Bill) error {
		if b.Holder().NodeID != n.active.NodeID {
			return fmt.Errorf("%w: only the holder can endorse", ErrForbidden)
		}
		if b.Paid {
			return fmt.Errorf("%w: bill is paid", ErrConflict)
		}
		endorsee, err := n.participant(req.Endorsee)
		if err != nil {
			return err
		}
		b.Endorsee = &endorsee
		b.Endorsed = true
		return nil
	})
}

// AcceptBill records the drawee's acceptance.
func (n *Node) AcceptBill(req models.BillActionRequest) error {
	return n.mutateBill(req.BillID, opAccept, func(b *models.Bill) error {
		if b.Drawee.NodeID != n.active.NodeID {
			return fmt.Errorf("%w: only the drawee can accept", ErrForbidden)
		}
		if b.Accepted {
			return fmt.Errorf("%w: bill is already accepted", ErrConflict)
		}
		b.Accepted = true
		b.RequestedToAccept = false
		n.notify(b.Holder().NodeID, b.ID, "Bill was accepted by the drawee", models.ActionCheckBill)
		return nil
	})
}

// RequestToPay asks the drawee to pay the holder.
func (n *Node) RequestToPay(req models.RequestToPayRequest) error {
	return n.mutateBill(req.BillID, opRequestToPay, func(b *models.Bill) error {
		if b.Holder().NodeID != n.active.NodeID {
			return fmt.Errorf("%w: only the holder can request payment", ErrForbidden)
		}
		if b.RequestedToPay {
			return fmt.Errorf("%w: payment was already requested", ErrConflict)
		}
		b.RequestedToPay = true
		b.WaitingForPayment = true
		n.notify(b.Drawee.NodeID, b.ID, "Payment of the bill was requested", models.ActionPayBill)
		return nil
	})
}

// RequestToAccept asks the drawee to accept the bill.
func (n *Node) RequestToAccept(req models.BillActionRequest) error {
	return n.mutateBill(req.BillID, opRequestToAccept, func(b *models.Bill) error {
		if b.Accepted {
			return fmt.Errorf("%w: bill is already accepted", ErrConflict)
		}
		b.RequestedToAccept = true
		n.notify(b.Drawee.NodeID, b.ID, "Acceptance of the bill was requested", models.ActionAcceptBill)
		return nil
	})
}

// OfferToSell offers the bill to a buyer for the given sum.
func (n *Node) OfferToSell(req models.OfferToSellRequest) error {
	return n.mutateBill(req.BillID, opOfferToSell, func(b *models.Bill) error {
		if b.Holder().NodeID != n.active.NodeID {
			return fmt.Errorf("%w: only the holder can sell", ErrForbidden)
		}
		if _, err := n.participant(req.Buyer); err != nil {
			return err
		}
		n.notify(req.Buyer, b.ID, "A bill was offered to you", models.ActionCheckBill)
		return nil
	})
}

// RequestToMint asks a mint for a quote on the bill. The mock mint offers
// the sum minus a 1.5% discount right away.
func (n *Node) RequestToMint(req models.RequestToMintRequest) error {
	return n.mutateBill(req.BillID, opRequestToMint, func(b *models.Bill) error {
		if b.Holder().NodeID != n.active.NodeID {
			return fmt.Errorf("%w: only the holder can request to mint", ErrForbidden)
		}
		if q, ok := n.quotes[b.ID]; ok && q.Status != models.QuoteDeclined {
			return fmt.Errorf("%w: quote already exists", ErrConflict)
		}
		sum, err := strconv.ParseUint(b.Sum, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: bill sum %q", ErrInvalidRequest, b.Sum)
		}
		mint := req.MintNodeID
		if mint == "" {
			mint = MintNodeID
		}
		n.quotes[b.ID] = models.Quote{
			BillID:     b.ID,
			MintNodeID: mint,
			Sum:        strconv.FormatUint(sum-sum*15/1000, 10),
			QuoteID:    n.ids.Generate(),
			Status:     models.QuoteOffered,
		}
		n.notify(n.active.NodeID, b.ID, "Mint quote is ready", models.ActionCheckQuote)
		return nil
	})
}

// Notifications lists notifications matching the filter, newest first.
func (n *Node) Notifications(filter models.NotificationFilter) []models.Notification {
	n.mu.Lock()
	all := slices.Clone(n.notifications)
	n.mu.Unlock()

	slices.SortStableFunc(all, func(a, b models.Notification) int { return strings.Compare(b.Datetime, a.Datetime) })

	out := make([]models.Notification, 0, len(all))
	for _, item := range all {
		if filter.Active != nil && item.Active != *filter.Active {
			continue
		}
		if filter.Reference != "" && item.ReferenceID != filter.Reference {
			continue
		}
		if filter.NodeID != "" && !slices.Contains(strings.Split(filter.NodeID, ","), item.NodeID) {
			continue
		}
		out = append(out, item)
	}

	if filter.Offset > 0 {
		out = out[min(filter.Offset, len(out)):]
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out
}

// MarkNotificationDone deactivates a notification.
func (n *Node) MarkNotificationDone(id string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	i := slices.IndexFunc(n.notifications, func(item models.Notification) bool { return item.ID == id })
	if i < 0 {
		return fmt.Errorf("%w: notification %s", ErrNotFound, id)
	}
	n.notifications[i].Active = false
	return nil
}

// Quote returns the mint quote of a bill.
func (n *Node) Quote(billID string) (models.Quote, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	q, ok := n.quotes[billID]
	if !ok {
		return models.Quote{}, fmt.Errorf("%w: quote for bill %s", ErrNotFound, billID)
	}
	return q, nil
}

// AcceptQuote accepts an offered quote, which issues an e-cash token.
func (n *Node) AcceptQuote(billID string) error {
	return n.resolveQuote(billID, models.QuoteAccepted)
}

// DeclineQuote declines an offered quote.
func (n *Node) DeclineQuote(billID string) error {
	return n.resolveQuote(billID, models.QuoteDeclined)
}

func (n *Node) resolveQuote(billID string, status models.QuoteStatus) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	q, ok := n.quotes[billID]
	if !ok {
		return fmt.Errorf("%w: quote for bill %s", ErrNotFound, billID)
	}
	if q.Status != models.QuoteOffered {
		return fmt.Errorf("%w: quote is %s", ErrConflict, q.Status)
	}
	q.Status = status
	if status == models.QuoteAccepted {
		q.Token = "cashuA" + strings.ReplaceAll(n.ids.Generate(), "-", "")
	}
	n.quotes[billID] = q
	return nil
}

// mutateBill applies fn to the bill under the lock and appends a block
// with op when fn succeeds.
func (n *Node) mutateBill(id, op string, fn func(b *models.Bill) error) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	i := n.billIndex(id)
	if i < 0 {
		return fmt.Errorf("%w: bill %s", ErrNotFound, id)
	}
	bill := n.bills[i]
	bill.Files = slices.Clone(bill.Files)
	bill.ChainOfBlocks.Blocks = slices.Clone(bill.ChainOfBlocks.Blocks)
	if err := fn(&bill); err != nil {
		return err
	}
	appendBlock(&bill, op, n.now().Unix(), n.active.NodeID)
	n.bills[i] = bill
	return nil
}

// notify records a bill notification. Callers hold the lock.
func (n *Node) notify(nodeID, billID, description string, action models.ActionType) {
	n.notifications = append(n.notifications, models.Notification{
		ID:               n.ids.Generate(),
		NodeID:           nodeID,
		NotificationType: models.BillNotification,
		ReferenceID:      billID,
		Description:      description,
		Datetime:         n.now().UTC().Format(time.RFC3339),
		Active:           true,
		Payload:          models.NotificationPayload{ActionType: action, BillID: billID},
	})
}

// participant resolves a node id against the node's own identities and
// the contact book. Callers hold the lock.
func (n *Node) participant(nodeID string) (models.BillParticipant, error) {
	if nodeID == n.personal.NodeID {
		return participantFromIdentity(n.personal), nil
	}
	if i := n.companyIndex(nodeID); i >= 0 {
		return participantFromIdentity(n.companies[i].AsIdentity()), nil
	}
	if i := n.contactIndex(nodeID); i >= 0 {
		return participantFromContact(n.contacts[i]), nil
	}
	return models.BillParticipant{}, fmt.Errorf("%w: participant %s", ErrNotFound, nodeID)
}

func (n *Node) sortedBills() []models.Bill {
	out := slices.Clone(n.bills)
	slices.SortStableFunc(out, func(a, b models.Bill) int { return int(b.TimeOfDrawing - a.TimeOfDrawing) })
	return out
}

func (n *Node) companyIndex(id string) int {
	return slices.IndexFunc(n.companies, func(c models.Company) bool { return c.ID == id })
}

func (n *Node) contactIndex(nodeID string) int {
	return slices.IndexFunc(n.contacts, func(c models.Contact) bool { return c.NodeID == nodeID })
}

func (n *Node) billIndex(id string) int {
	return slices.IndexFunc(n.bills, func(b models.Bill) bool { return b.ID == id })
}

func appendBlock(b *models.Bill, op string, ts int64, signer string) {
	blocks := b.ChainOfBlocks.Blocks
	prev := ""
	if len(blocks) > 0 {
		prev = blocks[len(blocks)-1].Hash
	}
	data := fmt.Sprintf("%s|%s|%s|%d", b.ID, op, signer, ts)
	sum := sha256.Sum256([]byte(prev + data))
	sig := sha256.Sum256([]byte(signer + data))

	b.ChainOfBlocks.Blocks = append(blocks, models.Block{
		ID:           int64(len(blocks) + 1),
		Hash:         hex.EncodeToString(sum[:]),
		PreviousHash: prev,
		Signature:    hex.EncodeToString(sig[:]),
		Timestamp:    ts,
		OpCode:       op,
	})
}

func lightBill(b models.Bill) models.LightBill {
	var maturity int64
	if t, err := time.Parse(time.DateOnly, b.MaturityDate); err == nil {
		maturity = t.Unix()
	}
	return models.LightBill{
		ID:                 b.ID,
		Drawee:             b.Drawee,
		Drawer:             b.Drawer,
		Payee:              b.Payee,
		Endorsee:           b.Endorsee,
		ActiveNotification: b.ActiveNotification,
		Sum:                b.Sum,
		Currency:           b.Currency,
		IssueDate:          b.IssueDate,
		TimeOfDrawing:      b.TimeOfDrawing,
		TimeOfMaturity:     maturity,
	}
}

func matchesRole(b models.Bill, role models.BillRole, self string) bool {
	switch role {
	case models.RolePayer:
		return b.Drawee.NodeID == self
	case models.RolePayee:
		return b.Payee.NodeID == self
	case models.RoleHolder:
		return b.Holder().NodeID == self
	default:
		return true
	}
}

func hasParticipant(b models.Bill, nodeID string) bool {
	if b.Drawer.NodeID == nodeID || b.Drawee.NodeID == nodeID || b.Payee.NodeID == nodeID {
		return true
	}
	return b.Endorsee != nil && b.Endorsee.NodeID == nodeID
}

func matchesTerm(b models.Bill, term string) bool {
	fields := []string{b.ID, b.Drawer.Name, b.Drawee.Name, b.Payee.Name, b.CityOfIssuing, b.CityOfPayment}
	if b.Endorsee != nil {
		fields = append(fields, b.Endorsee.Name)
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
