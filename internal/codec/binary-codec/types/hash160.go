//revive:disable:var-naming
package types

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/types/interfaces"
)

// Hash160ByteLength is the fixed wire length of a Hash160 field.
const Hash160ByteLength = 20

// Hash160 represents a fixed-length 160-bit hash field, used for currency
// codes embedded in path steps.
type Hash160 struct{}

// ErrInvalidHash160 is returned when a JSON value is not a 20-byte hex string.
var ErrInvalidHash160 = errors.New("invalid Hash160, value should be a 40-character hex string")

// FromJSON hex-decodes value into its raw 20 bytes.
func (h *Hash160) FromJSON(value any) ([]byte, error) {
	return decodeFixedHash(value, Hash160ByteLength, ErrInvalidHash160)
}

// ToJSON reads 20 bytes and returns their uppercase hex string.
func (h *Hash160) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	raw, err := p.ReadBytes(Hash160ByteLength)
	if err != nil {
		return nil, err
	}
	return strings.ToUpper(hex.EncodeToString(raw)), nil
}
