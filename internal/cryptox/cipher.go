package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"

	"github.com/dkarpov/savevault/internal/common"
)

const (
	ivSize  = aes.BlockSize
	macSize = sha256.Size

	// MinPayloadSize is the smallest payload worth parsing: IV, MAC and at
	// least one ciphertext byte. Anything shorter is rejected outright.
	MinPayloadSize = ivSize + macSize + 1
)

// Encrypt seals plaintext into the payload layout IV(16) ‖ MAC(32) ‖
// ciphertext. The IV is freshly random per call. The MAC is
// HMAC-SHA256(key, plaintext) — it binds the plaintext, not the ciphertext,
// so tampering is detected before any downstream decompression runs.
// Encryption is AES-256-CBC with PKCS#7 padding.
func Encrypt(plaintext, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	iv := make([]byte, ivSize)
	if _, err := rand.Read(iv); err != nil {
		return nil, err
	}

	mac := computeMAC(key, plaintext)

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	ct := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ct, padded)

	out := make([]byte, 0, ivSize+macSize+len(ct))
	out = append(out, iv...)
	out = append(out, mac...)
	out = append(out, ct...)
	return out, nil
}

// DecryptAndVerify opens a payload produced by Encrypt and returns the
// plaintext only after the stored MAC has been recomputed over the decrypted
// bytes and compared in constant time.
//
// Every failure mode — truncation, ciphertext not block-aligned, bad
// padding, MAC mismatch — collapses into the same opaque
// common.ErrIntegrity. Callers cannot tell "wrong key" from "tampered" from
// "corrupted", which keeps the failure surface uniform.
func DecryptAndVerify(payload, key []byte) ([]byte, error) {
	if len(payload) < MinPayloadSize {
		return nil, common.ErrIntegrity
	}

	iv := payload[:ivSize]
	mac := payload[ivSize : ivSize+macSize]
	ct := payload[ivSize+macSize:]

	if len(ct)%aes.BlockSize != 0 {
		return nil, common.ErrIntegrity
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, common.ErrIntegrity
	}

	padded := make([]byte, len(ct))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ct)

	plaintext, ok := pkcs7Unpad(padded, aes.BlockSize)
	if !ok {
		return nil, common.ErrIntegrity
	}

	if !hmac.Equal(computeMAC(key, plaintext), mac) {
		return nil, common.ErrIntegrity
	}

	return plaintext, nil
}

func computeMAC(key, data []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(data)
	return h.Sum(nil)
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+n)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, bool) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, false
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, false
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, false
		}
	}
	return data[:len(data)-n], true
}
