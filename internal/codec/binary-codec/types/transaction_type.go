//revive:disable:var-naming
package types

import (
	"encoding/binary"
	"errors"

	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/definitions"
	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/types/interfaces"
)

// TransactionType represents the TransactionType field: a UInt16 on the
// wire, but named ("Payment", "OfferCreate", ...) in JSON.
type TransactionType struct{}

// ErrInvalidTransactionType is returned for an unrecognized transaction type name.
var ErrInvalidTransactionType = errors.New("invalid TransactionType, value should be a known transaction type name")

// FromJSON resolves a transaction type name to its wire code.
func (t *TransactionType) FromJSON(value any) ([]byte, error) {
	name, ok := value.(string)
	if !ok {
		return nil, ErrInvalidTransactionType
	}

	code, ok := definitions.Get().TransactionTypeCode(name)
	if !ok {
		return nil, ErrInvalidTransactionType
	}

	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, uint16(code))
	return buf, nil
}

// ToJSON reads the wire code and resolves it back to its transaction type name.
func (t *TransactionType) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	raw, err := p.ReadBytes(2)
	if err != nil {
		return nil, err
	}
	code := int32(binary.BigEndian.Uint16(raw))

	name, ok := definitions.Get().TransactionTypeName(code)
	if !ok {
		return nil, ErrInvalidTransactionType
	}
	return name, nil
}
