//revive:disable:var-naming
package types

import (
	"encoding/binary"
	"errors"

	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/types/interfaces"
)

// UInt32 represents a 32-bit unsigned integer field.
type UInt32 struct{}

// ErrInvalidUInt32 is returned when a value is not a representable UInt32.
var ErrInvalidUInt32 = errors.New("invalid UInt32, value should be a number in [0, 4294967295]")

// FromJSON converts a numeric JSON value into its 4-byte big-endian wire form.
func (u *UInt32) FromJSON(value any) ([]byte, error) {
	n, ok := coerceToUint64(value)
	if !ok || n > 0xffffffff {
		return nil, ErrInvalidUInt32
	}
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(n))
	return buf, nil
}

// ToJSON reads 4 bytes big-endian and returns them as a uint32, matching the
// type callers (e.g. Flags, Sequence) typically hold it as.
func (u *UInt32) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	raw, err := p.ReadBytes(4)
	if err != nil {
		return nil, err
	}
	return binary.BigEndian.Uint32(raw), nil
}
