// Package digest provides the canonical hashing support for the ledger. Every
// node must produce the identical digest for the identical block contents or
// the chain validation between peers falls apart.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// ZeroHash represents a hash code of zeros.
const ZeroHash string = "0000000000000000000000000000000000000000000000000000000000000000"

// Hash returns a unique string for the value. The value is normalized into a
// canonical form before hashing so the digest never depends on struct field
// declaration order. The encoding/json package serializes map keys in sorted
// order, which gives us the canonical form.
func Hash(value any) string {
	data, err := json.Marshal(value)
	if err != nil {
		return ZeroHash
	}

	var normalized any
	if err := json.Unmarshal(data, &normalized); err != nil {
		return ZeroHash
	}

	canonical, err := json.Marshal(normalized)
	if err != nil {
		return ZeroHash
	}

	hash := sha256.Sum256(canonical)
	return hex.EncodeToString(hash[:])
}
