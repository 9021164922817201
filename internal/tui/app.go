// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-bitcredit/internal/router"
	"github.com/MKhiriev/go-bitcredit/internal/session"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// pageFactory builds the screen of a resolved location.
type pageFactory func(ctx context.Context, deps *Deps, loc router.Location) tea.Model

// RootModel is a TUI router:
// 1) resolves paths and asks the guard before opening a screen
// 2) shows a spinner while the guard answers Wait
// 3) shows service errors in an overlay and failed screens in a failure view
// 4) delegates all other messages to the active screen
type RootModel struct {
	ctx      context.Context
	deps     *Deps
	router   *router.Router
	guard    *router.Guard
	boundary *router.Boundary
	pages    map[router.Route]pageFactory

	current  tea.Model
	location router.Location
	start    string
	pending  string
	spinner  spinner.Model
	overlay  *errorOverlayModel
	failure  *router.Failure
	snapshot session.Snapshot

	quitByUser bool
}

// NewRootModel registers all screens and opens startPath once the session
// has been resolved.
func NewRootModel(ctx context.Context, deps *Deps, startPath string) RootModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return RootModel{
		ctx:      ctx,
		deps:     deps,
		router:   router.New(),
		guard:    router.NewGuard(deps.Session),
		boundary: router.NewBoundary(deps.Logger),
		pages:    defaultPages(),
		start:    startPath,
		spinner:  s,
		snapshot: deps.Session.Snapshot(),
	}
}

func defaultPages() map[router.Route]pageFactory {
	return map[router.Route]pageFactory{
		router.Home:           newHomeModel,
		router.Onboarding:     newOnboardingModel,
		router.CreateIdentity: newCreateIdentityModel,
		router.RestoreAccount: newRestoreAccountModel,
		router.Bills:          newBillsModel,
		router.BillDetail:     newBillDetailModel,
		router.CreateBill:     newCreateBillModel,
		router.Contacts:       newContactsModel,
		router.CreateContact:  newCreateContactModel,
		router.Notifications:  newNotificationsModel,
		router.IdentityRoute:  newIdentitySwitchModel,
		router.CompanyRoute:   newCompanyModel,
		router.Settings:       newSettingsModel,
		router.Mint:           newMintModel,
	}
}

func (r RootModel) Init() tea.Cmd {
	start := r.start
	return tea.Batch(
		cmdResolveSession(r.ctx, r.deps.Session),
		func() tea.Msg { return NavigateTo{Path: start} },
	)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			r.quitByUser = true
			return r, tea.Quit
		}

		if r.overlay != nil {
			switch keyMsg.String() {
			case "enter", "esc":
				r.overlay = nil
			}
			return r, nil
		}

		if r.failure != nil {
			switch keyMsg.String() {
			case "h", "enter", "esc":
				home := string(r.failure.Home)
				r.failure = nil
				return r.navigate(home)
			case "q":
				r.quitByUser = true
				return r, tea.Quit
			}
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		return r.navigate(msg.Path)

	case sessionChangedMsg:
		r.snapshot = msg.snapshot
		return r.recheck()

	case sessionResolvedMsg:
		// A failed resolve leaves the session unauthenticated and the guard
		// sends the user to onboarding, so the error is not shown.
		r.snapshot = r.deps.Session.Snapshot()
		return r.recheck()

	case errorMsg:
		if msg.err != nil {
			r.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
		}
		return r, nil

	case screenFailedMsg:
		r.fail(r.boundary.Catch(msg.err))
		return r, nil

	case spinner.TickMsg:
		// Screens run spinners of their own.
		if msg.ID == r.spinner.ID() {
			if r.pending == "" {
				return r, nil
			}
			var cmd tea.Cmd
			r.spinner, cmd = r.spinner.Update(msg)
			return r, cmd
		}
	}

	if r.current == nil {
		return r, nil
	}

	var cmd tea.Cmd
	failure := r.boundary.Run(func() error {
		r.current, cmd = r.current.Update(msg)
		return nil
	})
	if failure != nil {
		r.fail(failure)
		return r, nil
	}
	return r, cmd
}

// navigate resolves path and opens it if the guard allows.
func (r RootModel) navigate(path string) (tea.Model, tea.Cmd) {
	loc, err := r.router.Resolve(path)
	if err != nil {
		r.fail(r.boundary.Catch(err))
		return r, nil
	}

	decision := r.guard.Check(loc.Route)
	switch decision.Kind {
	case router.Wait:
		wasWaiting := r.pending != ""
		r.pending = loc.Path
		if wasWaiting {
			return r, nil
		}
		return r, r.spinner.Tick
	case router.Redirect:
		r.pending = ""
		return r.navigate(string(decision.Target))
	}

	factory, ok := r.pages[loc.Route]
	if !ok {
		r.fail(r.boundary.Catch(fmt.Errorf("%w: %s", router.ErrUnknownRoute, loc.Path)))
		return r, nil
	}

	var page tea.Model
	failure := r.boundary.Run(func() error {
		page = factory(r.ctx, r.deps, loc)
		return nil
	})
	if failure != nil {
		r.fail(failure)
		return r, nil
	}

	r.pending = ""
	r.failure = nil
	r.location = loc
	r.current = page
	return r, page.Init()
}

// recheck re-runs a navigation waiting for the session, or re-checks the
// open screen after the identity changed.
func (r RootModel) recheck() (tea.Model, tea.Cmd) {
	if r.pending != "" {
		if !r.deps.Session.Settled() {
			return r, nil
		}
		return r.navigate(r.pending)
	}

	if r.current == nil || r.failure != nil {
		return r, nil
	}

	decision := r.guard.Check(r.location.Route)
	switch decision.Kind {
	case router.Redirect:
		return r.navigate(string(decision.Target))
	case router.Wait:
		return r.navigate(r.location.Path)
	}
	return r, nil
}

func (r *RootModel) fail(failure *router.Failure) {
	r.failure = failure
	r.current = nil
	r.pending = ""
}

func (r RootModel) View() string {
	var b strings.Builder
	b.WriteString(r.header())
	b.WriteString("\n\n")

	switch {
	case r.failure != nil:
		b.WriteString(renderPage("SOMETHING WENT WRONG",
			errorStyle.Render(r.failure.Message),
			"h / enter: back to home │ q: quit"))
	case r.pending != "":
		b.WriteString(renderPage("LOADING", r.spinner.View()+" resolving identity...", ""))
	case r.current == nil:
		b.WriteString(renderPage("BITCREDIT", "", ""))
	default:
		b.WriteString(r.current.View())
	}

	if r.overlay != nil {
		b.WriteString("\n\n")
		b.WriteString(r.overlay.View())
	}
	return appStyle.Render(b.String())
}

func (r RootModel) header() string {
	snap := r.snapshot
	if !snap.IsAuthenticated() {
		return headerStyle.Render("Bitcredit │ " + strings.ToLower(snap.State.String()))
	}
	return headerStyle.Render(fmt.Sprintf("Bitcredit │ %s (%s) %s",
		valueOrDash(snap.Name), snap.Type, shortID(snap.NodeID)))
}

func cmdResolveSession(ctx context.Context, s *session.Session) tea.Cmd {
	return func() tea.Msg {
		return sessionResolvedMsg{err: s.Resolve(ctx)}
	}
}
