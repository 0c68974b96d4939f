//revive:disable:var-naming
package types

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/types/interfaces"
)

// Hash256ByteLength is the fixed wire length of a Hash256 field.
const Hash256ByteLength = 32

// Hash256 represents a fixed-length 256-bit hash field (ledger hashes,
// transaction hashes, digests).
type Hash256 struct{}

// ErrInvalidHash256 is returned when a JSON value is not a 32-byte hex string.
var ErrInvalidHash256 = errors.New("invalid Hash256, value should be a 64-character hex string")

// FromJSON hex-decodes value into its raw 32 bytes.
func (h *Hash256) FromJSON(value any) ([]byte, error) {
	return decodeFixedHash(value, Hash256ByteLength, ErrInvalidHash256)
}

// ToJSON reads 32 bytes and returns their uppercase hex string.
func (h *Hash256) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	raw, err := p.ReadBytes(Hash256ByteLength)
	if err != nil {
		return nil, err
	}
	return strings.ToUpper(hex.EncodeToString(raw)), nil
}
