// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"maps"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/go-bitcredit/internal/dispatch"
	"github.com/MKhiriev/go-bitcredit/internal/logger"
	"github.com/MKhiriev/go-bitcredit/internal/mock"
	"github.com/MKhiriev/go-bitcredit/internal/service"
	"github.com/MKhiriev/go-bitcredit/internal/session"
	"github.com/MKhiriev/go-bitcredit/internal/validators"
	"github.com/MKhiriev/go-bitcredit/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	aliceNodeID = "02" + strings.Repeat("a1", 32)
	acmeNodeID  = "03" + strings.Repeat("c3", 32)
	bobNodeID   = "02" + strings.Repeat("b2", 32)
	mintNodeID  = "02" + strings.Repeat("d4", 32)

	alice = models.Identity{
		NodeID:  aliceNodeID,
		Type:    models.PersonalIdentity,
		Name:    "Alice Smith",
		Email:   "alice@example.com",
		Address: models.PostalAddress{Country: "AT", City: "Vienna", Address: "Ring 1"},
	}
	acme = models.Company{
		ID:      acmeNodeID,
		Name:    "Acme GmbH",
		Email:   "office@acme.example",
		Address: models.PostalAddress{Country: "AT", City: "Graz", Address: "Platz 2"},
	}
)

type testMocks struct {
	identity     *mock.MockIdentityService
	company      *mock.MockCompanyService
	contact      *mock.MockContactService
	bill         *mock.MockBillService
	notification *mock.MockNotificationService
	quote        *mock.MockQuoteService
	mint         *memoryMintConfig
	shareDir     string
}

func newTestDeps(t *testing.T) (*Deps, *testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &testMocks{
		identity:     mock.NewMockIdentityService(ctrl),
		company:      mock.NewMockCompanyService(ctrl),
		contact:      mock.NewMockContactService(ctrl),
		bill:         mock.NewMockBillService(ctrl),
		notification: mock.NewMockNotificationService(ctrl),
		quote:        mock.NewMockQuoteService(ctrl),
		mint:         &memoryMintConfig{},
		shareDir:     t.TempDir(),
	}

	env := dispatch.NewStaticDetector(dispatch.Signals{Standalone: true})
	share, err := dispatch.RegisterShare(dispatch.NewRegistry(env, logger.Nop()), m.shareDir)
	require.NoError(t, err)

	deps := &Deps{
		Services: &service.ClientServices{
			IdentityService:     m.identity,
			CompanyService:      m.company,
			ContactService:      m.contact,
			BillService:         m.bill,
			NotificationService: m.notification,
			QuoteService:        m.quote,
		},
		Session:     session.New(m.identity, m.company, logger.Nop()),
		Share:       share,
		MintConfig:  m.mint,
		Validator:   validators.NewFormValidator(),
		Environment: env,
		Logger:      logger.Nop(),
	}
	return deps, m
}

// signInAlice resolves the session to Alice's personal identity.
func signInAlice(t *testing.T, deps *Deps, m *testMocks) {
	t.Helper()
	m.identity.EXPECT().Active(gomock.Any()).
		Return(models.ActiveIdentity{NodeID: aliceNodeID, Type: models.PersonalIdentity}, nil)
	m.identity.EXPECT().Detail(gomock.Any()).Return(alice, nil)
	require.NoError(t, deps.Session.Resolve(context.Background()))
}

// runCmd runs cmd and returns its message. Batches are not expanded.
func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

type memoryMintConfig struct {
	mu     sync.Mutex
	cfg    models.MintConfig
	writes int
}

func (s *memoryMintConfig) Read(context.Context) (models.MintConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.cfg
	out.Flags = maps.Clone(s.cfg.Flags)
	return out, nil
}

func (s *memoryMintConfig) Write(_ context.Context, partial models.MintConfig) (models.MintConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	if partial.DefaultMintURL != "" {
		s.cfg.DefaultMintURL = partial.DefaultMintURL
	}
	if partial.DefaultMintNodeID != "" {
		s.cfg.DefaultMintNodeID = partial.DefaultMintNodeID
	}
	return s.cfg, nil
}

func (s *memoryMintConfig) Reset(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = models.MintConfig{}
	return nil
}
