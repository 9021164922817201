// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dispatch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/google/uuid"
)

// ShareActionID identifies the share action.
const ShareActionID = "share"

// ShareResult tells where shared text went: "clipboard" or a file path.
type ShareResult struct {
	Target string
}

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// RegisterShare registers the share action: the browser context copies the
// text to the clipboard, the installed-app context writes it to a new file
// in dir.
func RegisterShare(r *Registry, dir string) (*Action[string, ShareResult], error) {
	return Register(r, ShareActionID, shareToClipboard, shareToFile(dir))
}

func shareToClipboard(_ context.Context, text string) (ShareResult, error) {
	if err := writeClipboard(text); err != nil {
		return ShareResult{}, fmt.Errorf("copy to clipboard: %w", err)
	}
	return ShareResult{Target: "clipboard"}, nil
}

func shareToFile(dir string) Func[string, ShareResult] {
	return func(ctx context.Context, text string) (ShareResult, error) {
		if err := ctx.Err(); err != nil {
			return ShareResult{}, err
		}

		if err := os.MkdirAll(dir, 0o700); err != nil {
			return ShareResult{}, fmt.Errorf("create share dir: %w", err)
		}

		path := filepath.Join(dir, "bitcredit-share-"+uuid.NewString()+".txt")
		if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
			return ShareResult{}, fmt.Errorf("write share file: %w", err)
		}
		return ShareResult{Target: path}, nil
	}
}
