// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dispatch

import (
	"strings"

	"github.com/MKhiriev/go-bitcredit/internal/config"
)

const (
	standaloneDisplayMode = "standalone"
	androidAppReferrer    = "android-app://"
)

// Environment reports whether the process runs as the installed app.
type Environment interface {
	Installed() bool
}

// Signals are the raw inputs of installed-app detection.
type Signals struct {
	DisplayMode string
	Standalone  bool
	Referrer    string
}

// SignalsFromConfig converts the configured environment signals.
func SignalsFromConfig(cfg config.ClientEnvironment) Signals {
	return Signals{
		DisplayMode: cfg.DisplayMode,
		Standalone:  cfg.Standalone,
		Referrer:    cfg.Referrer,
	}
}

// Detector is the [Environment] backed by [Signals]. The signal source is
// read on every call so a change is seen by the next invocation.
type Detector struct {
	source func() Signals
}

// NewDetector returns a Detector reading its signals from source.
func NewDetector(source func() Signals) *Detector {
	return &Detector{source: source}
}

// NewStaticDetector returns a Detector over fixed signals.
func NewStaticDetector(signals Signals) *Detector {
	return NewDetector(func() Signals { return signals })
}

// Installed checks, in order: a standalone display mode, the standalone
// flag, a referrer of an Android app.
func (d *Detector) Installed() bool {
	s := d.source()

	if strings.EqualFold(strings.TrimSpace(s.DisplayMode), standaloneDisplayMode) {
		return true
	}
	if s.Standalone {
		return true
	}
	return strings.HasPrefix(s.Referrer, androidAppReferrer)
}

// EnvironmentFunc adapts a plain function to [Environment].
type EnvironmentFunc func() bool

func (f EnvironmentFunc) Installed() bool { return f() }
