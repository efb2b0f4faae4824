// Package cryptox implements key derivation and the authenticated cipher
// used for save payloads.
//
// The threat model is casual file editing, not a determined reader of the
// executable: the derivation inputs below are non-secret constants, and the
// design does not pretend otherwise. Changing that assumption means
// revisiting the whole model, not just these values.
package cryptox

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// KeySize is the derived key length in bytes (AES-256 / HMAC-SHA256).
const KeySize = 32

// kdfIterations is fixed for the life of the format: saves written with one
// count are unreadable under another.
const kdfIterations = 120_000

// Salt material is assembled from two disjoint constants so the full
// sequence never appears contiguously in the binary. This only deters naive
// static scanning; the salt is not a secret.
var (
	saltHead = []byte{0x5a, 0x17, 0xc4, 0x09, 0xee, 0x42, 0x8b, 0xd1}
	saltTail = []byte("wagon-ledger-v1")
)

// DeriveKey turns a slot identifier into the slot's symmetric key using
// PBKDF2-HMAC-SHA256. The function is pure: the same slot always derives
// the same key, and distinct slots never collide because the identifier is
// embedded in the password token. The key is never persisted.
func DeriveKey(slotID string) []byte {
	password := []byte("slot::" + slotID + "::key")
	salt := make([]byte, 0, len(saltHead)+len(saltTail))
	salt = append(salt, saltHead...)
	salt = append(salt, saltTail...)
	return pbkdf2.Key(password, salt, kdfIterations, KeySize, sha256.New)
}
