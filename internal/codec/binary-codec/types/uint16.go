//revive:disable:var-naming
package types

import (
	"encoding/binary"
	"errors"

	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/definitions"
	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/types/interfaces"
)

// UInt16 represents a 16-bit unsigned integer field. Besides plain numbers,
// it accepts the symbolic LedgerEntryType names rippled allows in JSON
// (e.g. "RippleState"), resolved against the catalog.
type UInt16 struct{}

// ErrInvalidUInt16 is returned when a value is not a representable UInt16
// and is not a recognized LedgerEntryType name.
var ErrInvalidUInt16 = errors.New("invalid UInt16, value should be a number in [0, 65535] or a known LedgerEntryType name")

// FromJSON converts a numeric or LedgerEntryType-name JSON value into its
// 2-byte big-endian wire form.
func (u *UInt16) FromJSON(value any) ([]byte, error) {
	if n, ok := coerceToUint64(value); ok {
		if n > 0xffff {
			return nil, ErrInvalidUInt16
		}
		buf := make([]byte, 2)
		binary.BigEndian.PutUint16(buf, uint16(n))
		return buf, nil
	}

	name, ok := value.(string)
	if !ok {
		return nil, ErrInvalidUInt16
	}
	code, ok := definitions.Get().LedgerEntryTypeCode(name)
	if !ok {
		return nil, ErrInvalidUInt16
	}
	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, uint16(code))
	return buf, nil
}

// ToJSON reads 2 bytes big-endian and returns them as an int.
func (u *UInt16) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	raw, err := p.ReadBytes(2)
	if err != nil {
		return nil, err
	}
	return int(binary.BigEndian.Uint16(raw)), nil
}
