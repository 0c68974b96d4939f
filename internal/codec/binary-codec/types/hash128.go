//revive:disable:var-naming
package types

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/types/interfaces"
)

// Hash128ByteLength is the fixed wire length of a Hash128 field.
const Hash128ByteLength = 16

// Hash128 represents a fixed-length 128-bit hash field.
type Hash128 struct{}

// ErrInvalidHash128 is returned when a JSON value is not a 16-byte hex string.
var ErrInvalidHash128 = errors.New("invalid Hash128, value should be a 32-character hex string")

// FromJSON hex-decodes value into its raw 16 bytes.
func (h *Hash128) FromJSON(value any) ([]byte, error) {
	return decodeFixedHash(value, Hash128ByteLength, ErrInvalidHash128)
}

// ToJSON reads 16 bytes and returns their uppercase hex string.
func (h *Hash128) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	raw, err := p.ReadBytes(Hash128ByteLength)
	if err != nil {
		return nil, err
	}
	return strings.ToUpper(hex.EncodeToString(raw)), nil
}

// decodeFixedHash hex-decodes value and validates its length is exactly n bytes.
func decodeFixedHash(value any, n int, invalid error) ([]byte, error) {
	strVal, ok := value.(string)
	if !ok {
		return nil, invalid
	}

	decoded, err := hex.DecodeString(strVal)
	if err != nil || len(decoded) != n {
		return nil, invalid
	}
	return decoded, nil
}
