// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	left    key.Binding
	right   key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	home    key.Binding
	reload  key.Binding
	share   key.Binding
	delete  key.Binding
	yes     key.Binding
	no      key.Binding

	// home screen menu
	newBill       key.Binding
	search        key.Binding
	contacts      key.Binding
	notifications key.Binding
	identity      key.Binding
	company       key.Binding
	settings      key.Binding
	mint          key.Binding

	// bill actions
	accept          key.Binding
	requestToPay    key.Binding
	requestToAccept key.Binding
	requestToMint   key.Binding
	endorse         key.Binding
	offerToSell     key.Binding

	// misc
	newItem   key.Binding
	addSigner key.Binding
	backup    key.Binding
	decline   key.Binding
	toggle    key.Binding
	reset     key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	left:    key.NewBinding(key.WithKeys("left")),
	right:   key.NewBinding(key.WithKeys("right")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	home:    key.NewBinding(key.WithKeys("h", "enter")),
	reload:  key.NewBinding(key.WithKeys("r")),
	share:   key.NewBinding(key.WithKeys("x")),
	delete:  key.NewBinding(key.WithKeys("d")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n", "esc")),

	newBill:       key.NewBinding(key.WithKeys("n")),
	search:        key.NewBinding(key.WithKeys("/")),
	contacts:      key.NewBinding(key.WithKeys("c")),
	notifications: key.NewBinding(key.WithKeys("o")),
	identity:      key.NewBinding(key.WithKeys("i")),
	company:       key.NewBinding(key.WithKeys("g")),
	settings:      key.NewBinding(key.WithKeys("s")),
	mint:          key.NewBinding(key.WithKeys("m")),

	accept:          key.NewBinding(key.WithKeys("a")),
	requestToPay:    key.NewBinding(key.WithKeys("p")),
	requestToAccept: key.NewBinding(key.WithKeys("t")),
	requestToMint:   key.NewBinding(key.WithKeys("m")),
	endorse:         key.NewBinding(key.WithKeys("e")),
	offerToSell:     key.NewBinding(key.WithKeys("f")),

	newItem:   key.NewBinding(key.WithKeys("n")),
	addSigner: key.NewBinding(key.WithKeys("a")),
	backup:    key.NewBinding(key.WithKeys("b")),
	decline:   key.NewBinding(key.WithKeys("d")),
	toggle:    key.NewBinding(key.WithKeys("tab")),
	reset:     key.NewBinding(key.WithKeys("ctrl+r")),
}
