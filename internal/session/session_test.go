// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/MKhiriev/go-bitcredit/internal/adapter"
	"github.com/MKhiriev/go-bitcredit/internal/logger"
	"github.com/MKhiriev/go-bitcredit/internal/mock"
	"github.com/MKhiriev/go-bitcredit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSession(t *testing.T) (*Session, *mock.MockIdentityService, *mock.MockCompanyService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	identities := mock.NewMockIdentityService(ctrl)
	companies := mock.NewMockCompanyService(ctrl)
	return New(identities, companies, logger.Nop()), identities, companies
}

// recorder collects every published snapshot.
type recorder struct {
	mu    sync.Mutex
	snaps []Snapshot
}

func (r *recorder) record(s Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snaps = append(r.snaps, s)
}

func (r *recorder) states() []State {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]State, 0, len(r.snaps))
	for _, s := range r.snaps {
		out = append(out, s.State)
	}
	return out
}

var alice = models.Identity{
	NodeID:  "02alice",
	Name:    "Alice",
	Email:   "alice@example.com",
	Address: models.PostalAddress{Country: "AT", City: "Vienna", Address: "Ring 1"},
}

var acme = models.Company{
	ID:      "03acme",
	Name:    "ACME",
	Logo:    "logo.png",
	Address: models.PostalAddress{Country: "AT", City: "Graz", Address: "Platz 2"},
}

// ── initial state ────────────────────────────────────────────────────────────

func TestNew_Unresolved(t *testing.T) {
	s, _, _ := newTestSession(t)

	snap := s.Snapshot()
	assert.Equal(t, Unresolved, snap.State)
	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.Settled(), "nothing attempted yet")
}

// ── Resolve ──────────────────────────────────────────────────────────────────

func TestResolve_Personal(t *testing.T) {
	s, identities, _ := newTestSession(t)
	rec := &recorder{}
	s.Subscribe(rec.record)

	gomock.InOrder(
		identities.EXPECT().Active(gomock.Any()).Return(models.ActiveIdentity{NodeID: "02alice", Type: models.PersonalIdentity}, nil),
		identities.EXPECT().Detail(gomock.Any()).Return(alice, nil),
	)

	require.NoError(t, s.Resolve(context.Background()))

	snap := s.Snapshot()
	assert.Equal(t, Resolved, snap.State)
	assert.Equal(t, "02alice", snap.NodeID)
	assert.Equal(t, models.PersonalIdentity, snap.Type)
	assert.Equal(t, "Alice", snap.Name)
	assert.Equal(t, "Vienna", snap.Address.City)
	assert.True(t, s.IsAuthenticated())
	assert.True(t, s.Settled())

	assert.Equal(t, []State{Resolving, Resolving, Resolved}, rec.states())
}

func TestResolve_CompanyUsesCompanyDetail(t *testing.T) {
	s, identities, companies := newTestSession(t)

	identities.EXPECT().Active(gomock.Any()).Return(models.ActiveIdentity{NodeID: "03acme", Type: models.CompanyIdentity}, nil)
	companies.EXPECT().Detail(gomock.Any(), "03acme").Return(acme, nil)

	require.NoError(t, s.Resolve(context.Background()))

	snap := s.Snapshot()
	assert.Equal(t, models.CompanyIdentity, snap.Type)
	assert.Equal(t, "ACME", snap.Name)
	assert.Equal(t, "logo.png", snap.Avatar)
}

// TestResolve_ActiveFailsStaysUnresolved verifies there is no retry and the
// session is settled as unauthenticated.
func TestResolve_ActiveFailsStaysUnresolved(t *testing.T) {
	s, identities, _ := newTestSession(t)
	identities.EXPECT().Active(gomock.Any()).
		Return(models.ActiveIdentity{}, &adapter.HTTPError{StatusCode: http.StatusNotFound, Status: "Not Found"}).
		Times(1)

	err := s.Resolve(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrHTTPStatus)
	snap := s.Snapshot()
	assert.Equal(t, Unresolved, snap.State)
	assert.Empty(t, snap.NodeID)
	assert.False(t, s.IsAuthenticated())
	assert.True(t, s.Settled())
}

func TestResolve_DetailFailsKeepsNodeID(t *testing.T) {
	s, identities, _ := newTestSession(t)
	identities.EXPECT().Active(gomock.Any()).Return(models.ActiveIdentity{NodeID: "02alice", Type: models.PersonalIdentity}, nil)
	identities.EXPECT().Detail(gomock.Any()).Return(models.Identity{}, errors.New("boom"))

	err := s.Resolve(context.Background())

	require.Error(t, err)
	snap := s.Snapshot()
	assert.Equal(t, Resolved, snap.State)
	assert.Equal(t, "02alice", snap.NodeID)
	assert.Empty(t, snap.Name)
	assert.True(t, s.IsAuthenticated())
}

// ── Switch ───────────────────────────────────────────────────────────────────

func resolvedAsAlice(t *testing.T, s *Session, identities *mock.MockIdentityService) {
	t.Helper()
	identities.EXPECT().Active(gomock.Any()).Return(models.ActiveIdentity{NodeID: "02alice", Type: models.PersonalIdentity}, nil)
	identities.EXPECT().Detail(gomock.Any()).Return(alice, nil)
	require.NoError(t, s.Resolve(context.Background()))
}

// TestSwitch_NodeIDClearedWhileInFlight verifies that the node id is empty
// during the switch call and equals the new id afterwards, and that no
// published snapshot pairs the old node id with the new type.
func TestSwitch_NodeIDClearedWhileInFlight(t *testing.T) {
	s, identities, companies := newTestSession(t)
	resolvedAsAlice(t, s, identities)

	rec := &recorder{}
	s.Subscribe(rec.record)

	identities.EXPECT().
		Switch(gomock.Any(), "03acme", models.CompanyIdentity).
		DoAndReturn(func(context.Context, string, models.IdentityType) error {
			inFlight := s.Snapshot()
			assert.Equal(t, Switching, inFlight.State)
			assert.Empty(t, inFlight.NodeID)
			assert.Empty(t, inFlight.Name)
			assert.False(t, s.IsAuthenticated())
			assert.False(t, s.Settled())
			return nil
		})
	companies.EXPECT().Detail(gomock.Any(), "03acme").Return(acme, nil)

	require.NoError(t, s.Switch(context.Background(), "03acme", models.CompanyIdentity))

	snap := s.Snapshot()
	assert.Equal(t, Resolved, snap.State)
	assert.Equal(t, "03acme", snap.NodeID)
	assert.Equal(t, models.CompanyIdentity, snap.Type)
	assert.Equal(t, "ACME", snap.Name)

	for _, published := range rec.snaps {
		if published.NodeID == "02alice" {
			assert.NotEqual(t, models.CompanyIdentity, published.Type)
		}
		if published.Type == models.CompanyIdentity {
			assert.Equal(t, "03acme", published.NodeID)
		}
	}
	assert.Equal(t, []State{Switching, Resolving, Resolved}, rec.states())
}

func TestSwitch_FailureRestoresPrevious(t *testing.T) {
	s, identities, _ := newTestSession(t)
	resolvedAsAlice(t, s, identities)
	before := s.Snapshot()

	identities.EXPECT().Switch(gomock.Any(), "03acme", models.CompanyIdentity).
		Return(&adapter.HTTPError{StatusCode: http.StatusInternalServerError, Status: "Internal Server Error"})

	err := s.Switch(context.Background(), "03acme", models.CompanyIdentity)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Internal Server Error")
	assert.Equal(t, before, s.Snapshot())
}

func TestSwitch_DetailFailureKeepsNewIdentity(t *testing.T) {
	s, identities, companies := newTestSession(t)
	resolvedAsAlice(t, s, identities)

	identities.EXPECT().Switch(gomock.Any(), "03acme", models.CompanyIdentity).Return(nil)
	companies.EXPECT().Detail(gomock.Any(), "03acme").Return(models.Company{}, errors.New("detail down"))

	err := s.Switch(context.Background(), "03acme", models.CompanyIdentity)

	require.Error(t, err)
	snap := s.Snapshot()
	assert.Equal(t, "03acme", snap.NodeID)
	assert.Equal(t, models.CompanyIdentity, snap.Type)
	assert.Empty(t, snap.Name, "display fields of the old identity must not leak")
}

func TestSwitch_InvalidArguments(t *testing.T) {
	s, _, _ := newTestSession(t)

	assert.ErrorIs(t, s.Switch(context.Background(), "", models.PersonalIdentity), ErrInvalidSwitch)
	assert.ErrorIs(t, s.Switch(context.Background(), "02x", models.IdentityType("robot")), ErrInvalidSwitch)
	assert.Equal(t, Unresolved, s.Snapshot().State)
}

// ── Subscribe ────────────────────────────────────────────────────────────────

func TestSubscribe_Unsubscribe(t *testing.T) {
	s, identities, _ := newTestSession(t)
	rec := &recorder{}
	unsubscribe := s.Subscribe(rec.record)
	unsubscribe()

	resolvedAsAlice(t, s, identities)

	assert.Empty(t, rec.snaps)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "UNRESOLVED", Unresolved.String())
	assert.Equal(t, "RESOLVING", Resolving.String())
	assert.Equal(t, "RESOLVED", Resolved.String())
	assert.Equal(t, "SWITCHING", Switching.String())
	assert.Equal(t, "UNKNOWN", State(42).String())
}
