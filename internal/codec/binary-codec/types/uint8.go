//revive:disable:var-naming
package types

import (
	"errors"

	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/types/interfaces"
)

// UInt8 represents an 8-bit unsigned integer field.
type UInt8 struct{}

// ErrInvalidUInt8 is returned when a value is not a representable UInt8.
var ErrInvalidUInt8 = errors.New("invalid UInt8, value should be a number in [0, 255]")

// FromJSON converts a numeric JSON value into its single wire byte.
func (u *UInt8) FromJSON(value any) ([]byte, error) {
	n, ok := coerceToUint64(value)
	if !ok || n > 0xff {
		return nil, ErrInvalidUInt8
	}
	return []byte{byte(n)}, nil
}

// ToJSON reads one byte and returns it as an int.
func (u *UInt8) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	b, err := p.ReadByte()
	if err != nil {
		return nil, err
	}
	return int(b), nil
}
