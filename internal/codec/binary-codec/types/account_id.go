//revive:disable:var-naming
package types

import (
	"errors"

	addresscodec "github.com/LeJamon/goXRPLd/internal/codec/address-codec"
	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/types/interfaces"
)

// AccountID represents an XRPL AccountID field: a 20-byte account payload,
// VL-encoded on the wire by the enclosing field dispatch.
type AccountID struct{}

// ErrInvalidAccountID is returned when a JSON value is not a valid classic
// address string.
var ErrInvalidAccountID = errors.New("invalid AccountID, value should be a classic address string")

// FromJSON decodes a classic r-address into its raw 20-byte AccountID.
func (a *AccountID) FromJSON(value any) ([]byte, error) {
	strVal, ok := value.(string)
	if !ok {
		return nil, ErrInvalidAccountID
	}

	accountID, err := addresscodec.DecodeAccountID(strVal)
	if err != nil {
		return nil, err
	}
	return accountID, nil
}

// ToJSON reads a VL-prefixed AccountID off the parser and returns its
// classic address string.
func (a *AccountID) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	length, err := p.ReadVariableLength()
	if err != nil {
		return nil, err
	}

	raw, err := p.ReadBytes(length)
	if err != nil {
		return nil, err
	}

	return addresscodec.EncodeAccountID(raw)
}
