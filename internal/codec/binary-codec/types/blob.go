//revive:disable:var-naming
package types

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/types/interfaces"
)

// Blob represents an arbitrary-length hex-encoded byte field, VL-encoded on
// the wire by the enclosing field dispatch.
type Blob struct{}

// ErrInvalidBlob is returned when a JSON value is not a valid hex string.
var ErrInvalidBlob = errors.New("invalid Blob, value should be a hex string")

// FromJSON hex-decodes value into its raw bytes.
func (b *Blob) FromJSON(value any) ([]byte, error) {
	strVal, ok := value.(string)
	if !ok {
		return nil, ErrInvalidBlob
	}

	decoded, err := hex.DecodeString(strVal)
	if err != nil {
		return nil, ErrInvalidBlob
	}
	return decoded, nil
}

// ToJSON reads a VL-prefixed blob and returns its uppercase hex string.
func (b *Blob) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	length, err := p.ReadVariableLength()
	if err != nil {
		return nil, err
	}

	raw, err := p.ReadBytes(length)
	if err != nil {
		return nil, err
	}

	return strings.ToUpper(hex.EncodeToString(raw)), nil
}
