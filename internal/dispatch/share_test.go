// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dispatch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-bitcredit/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubClipboard(t *testing.T, fn func(string) error) {
	t.Helper()
	orig := writeClipboard
	writeClipboard = fn
	t.Cleanup(func() { writeClipboard = orig })
}

func TestShare_BrowserUsesClipboard(t *testing.T) {
	var copied string
	stubClipboard(t, func(s string) error { copied = s; return nil })

	r := NewRegistry(NewStaticDetector(Signals{}), logger.Nop())
	share, err := RegisterShare(r, t.TempDir())
	require.NoError(t, err)

	got, err := share.Invoke(context.Background(), "bill b1")

	require.NoError(t, err)
	assert.Equal(t, "clipboard", got.Target)
	assert.Equal(t, "bill b1", copied)
}

func TestShare_ClipboardError(t *testing.T) {
	stubClipboard(t, func(string) error { return errors.New("no display") })

	r := NewRegistry(NewStaticDetector(Signals{}), logger.Nop())
	share, err := RegisterShare(r, t.TempDir())
	require.NoError(t, err)

	_, err = share.Invoke(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "copy to clipboard")
}

func TestShare_InstalledWritesFile(t *testing.T) {
	stubClipboard(t, func(string) error {
		t.Fatal("clipboard must not be used in the installed context")
		return nil
	})

	dir := filepath.Join(t.TempDir(), "share")
	r := NewRegistry(NewStaticDetector(Signals{DisplayMode: "standalone"}), logger.Nop())
	share, err := RegisterShare(r, dir)
	require.NoError(t, err)

	got, err := share.Invoke(context.Background(), "node 02aa")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got.Target, dir))
	content, err := os.ReadFile(got.Target)
	require.NoError(t, err)
	assert.Equal(t, "node 02aa", string(content))
}

func TestShare_InstalledCancelledContext(t *testing.T) {
	r := NewRegistry(NewStaticDetector(Signals{Standalone: true}), logger.Nop())
	share, err := RegisterShare(r, t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = share.Invoke(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
}
