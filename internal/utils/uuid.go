// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
)

// IDGenerator produces identifiers for records created by the local mock
// node: time-ordered UUIDs for bills, notifications and uploads, and
// node-id shaped hex strings for identities and companies.
type IDGenerator struct{}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Generate returns a UUIDv7, falling back to a random UUIDv4.
func (g *IDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// NodeID returns a 66 character hex string shaped like a compressed
// secp256k1 public key ("02" followed by 32 bytes), derived from a fresh
// UUID. It is only an identifier; no key material backs it.
func (g *IDGenerator) NodeID() string {
	sum := sha256.Sum256([]byte(g.Generate()))
	return "02" + hex.EncodeToString(sum[:])
}
