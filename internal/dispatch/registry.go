// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dispatch

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-bitcredit/internal/logger"
)

// Func is one implementation of an action.
type Func[In, Out any] func(ctx context.Context, in In) (Out, error)

// Action is a registered pair of implementations.
type Action[In, Out any] struct {
	id        string
	browser   Func[In, Out]
	installed Func[In, Out]
	env       Environment
	logger    *logger.Logger
}

// Registry owns the actions of one client instance.
type Registry struct {
	mu      sync.Mutex
	env     Environment
	actions map[string]any
	logger  *logger.Logger
}

// NewRegistry returns an empty registry whose actions consult env.
func NewRegistry(env Environment, log *logger.Logger) *Registry {
	return &Registry{
		env:     env,
		actions: make(map[string]any),
		logger:  log.Component("dispatch"),
	}
}

// Register stores the browser and installed implementations under id and
// returns the action. If id is already registered the stored action is
// returned and the given implementations are ignored; differing types yield
// [ErrActionTypeMismatch].
func Register[In, Out any](r *Registry, id string, browser, installed Func[In, Out]) (*Action[In, Out], error) {
	if id == "" {
		return nil, ErrEmptyActionID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.actions[id]; ok {
		action, ok := existing.(*Action[In, Out])
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrActionTypeMismatch, id)
		}
		return action, nil
	}

	if browser == nil || installed == nil {
		return nil, fmt.Errorf("%w: %q", ErrNilAction, id)
	}

	action := &Action[In, Out]{
		id:        id,
		browser:   browser,
		installed: installed,
		env:       r.env,
		logger:    r.logger,
	}
	r.actions[id] = action

	r.logger.Debug().Str("action", id).Msg("action registered")
	return action, nil
}

// Len returns the number of registered identifiers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.actions)
}

// ID returns the identifier the action is registered under.
func (a *Action[In, Out]) ID() string {
	return a.id
}

// Invoke checks the environment and runs the matching implementation.
// Errors are returned unchanged; a panic comes back as [ErrActionPanicked].
func (a *Action[In, Out]) Invoke(ctx context.Context, in In) (out Out, err error) {
	installed := a.env.Installed()

	selected := a.browser
	if installed {
		selected = a.installed
	}

	defer func() {
		if rec := recover(); rec != nil {
			var zero Out
			out = zero
			err = fmt.Errorf("%w: %s: %v", ErrActionPanicked, a.id, rec)
		}
		if err != nil {
			a.logger.WithTraceID(ctx).Err(err).
				Str("action", a.id).
				Bool("installed", installed).
				Msg("action failed")
		}
	}()

	return selected(ctx, in)
}
