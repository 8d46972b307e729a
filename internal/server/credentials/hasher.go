// Package credentials creates and verifies salted password credentials.
//
// A credential is stored as "salt$digest", both hex encoded, where digest is
// argon2id over the password keyed by the salt.
package credentials

import (
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"github.com/dmitrijs2005/ecosocial/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	saltSize  = 16
	keyLength = 32
	separator = "$"
)

// Params are the argon2id cost parameters.
type Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
}

// DefaultParams matches the cost the server uses unless configured otherwise.
var DefaultParams = Params{Time: 1, Memory: 64 * 1024, Threads: 4}

type Hasher struct {
	params Params
}

func NewHasher(p Params) *Hasher {
	if p.Time == 0 {
		p.Time = DefaultParams.Time
	}
	if p.Memory == 0 {
		p.Memory = DefaultParams.Memory
	}
	if p.Threads == 0 {
		p.Threads = DefaultParams.Threads
	}
	return &Hasher{params: p}
}

func (h *Hasher) derive(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, h.params.Time, h.params.Memory, h.params.Threads, keyLength)
}

// Create returns a new credential for password with a fresh random salt.
func (h *Hasher) Create(password string) string {
	salt := common.GenerateRandByteArray(saltSize)
	digest := h.derive(password, salt)
	defer common.WipeByteArray(digest)

	return hex.EncodeToString(salt) + separator + hex.EncodeToString(digest)
}

// Verify reports whether password matches credential. Malformed credentials
// never match.
func (h *Hasher) Verify(password, credential string) bool {
	parts := strings.Split(credential, separator)
	if len(parts) != 2 {
		return false
	}

	salt, err := hex.DecodeString(parts[0])
	if err != nil || len(salt) == 0 {
		return false
	}
	want, err := hex.DecodeString(parts[1])
	if err != nil || len(want) != keyLength {
		return false
	}

	got := h.derive(password, salt)
	defer common.WipeByteArray(got)

	return subtle.ConstantTimeCompare(got, want) == 1
}
