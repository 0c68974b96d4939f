//revive:disable:var-naming
package types

import (
	"errors"

	addresscodec "github.com/LeJamon/goXRPLd/internal/codec/address-codec"
	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/types/interfaces"
)

// PathSet encodes a Payment's alternative currency-exchange paths: an array
// of paths, each an array of step objects.
type PathSet struct{}

const (
	pathSetAccountTag  byte = 0x01
	pathSetCurrencyTag byte = 0x10
	pathSetIssuerTag   byte = 0x20
	pathSeparatorByte  byte = 0xff
	pathSetEndByte     byte = 0x00
)

// ErrInvalidPathSet is returned when a PathSet value is not a JSON array of
// arrays of step objects.
var ErrInvalidPathSet = errors.New("invalid PathSet, value should be an array of arrays of path step objects")

// FromJSON serializes a PathSet from its nested-array JSON shape.
func (ps *PathSet) FromJSON(value any) ([]byte, error) {
	paths, ok := value.([]any)
	if !ok {
		return nil, ErrInvalidPathSet
	}

	var out []byte
	for i, pathVal := range paths {
		if i > 0 {
			out = append(out, pathSeparatorByte)
		}

		steps, ok := pathVal.([]any)
		if !ok {
			return nil, ErrInvalidPathSet
		}

		for _, stepVal := range steps {
			step, ok := stepVal.(map[string]any)
			if !ok {
				return nil, ErrInvalidPathSet
			}
			stepBytes, err := serializePathStep(step)
			if err != nil {
				return nil, err
			}
			out = append(out, stepBytes...)
		}
	}

	out = append(out, pathSetEndByte)
	return out, nil
}

// serializePathStep emits every component present on the step (account,
// currency, issuer), combining their tag bits and concatenating their
// 20-byte fields in that order. A step naming only one component — the
// common case — degenerates to a single tag byte and a single field.
func serializePathStep(step map[string]any) ([]byte, error) {
	var tag byte
	var body []byte

	if account, ok := step["account"]; ok {
		accountStr, ok := account.(string)
		if !ok {
			return nil, ErrInvalidPathSet
		}
		accountID, err := addresscodec.DecodeAccountID(accountStr)
		if err != nil {
			return nil, err
		}
		tag |= pathSetAccountTag
		body = append(body, accountID...)
	}

	if currency, ok := step["currency"]; ok {
		currencyStr, ok := currency.(string)
		if !ok {
			return nil, ErrInvalidPathSet
		}
		currencyBytes, err := serializePathCurrencyCode(currencyStr)
		if err != nil {
			return nil, err
		}
		tag |= pathSetCurrencyTag
		body = append(body, currencyBytes...)
	}

	if issuer, ok := step["issuer"]; ok {
		issuerStr, ok := issuer.(string)
		if !ok {
			return nil, ErrInvalidPathSet
		}
		issuerID, err := addresscodec.DecodeAccountID(issuerStr)
		if err != nil {
			return nil, err
		}
		tag |= pathSetIssuerTag
		body = append(body, issuerID...)
	}

	if tag == 0 {
		return nil, ErrInvalidPathSet
	}
	return append([]byte{tag}, body...), nil
}

// serializePathCurrencyCode encodes a path step's currency component.
// Unlike Amount, "XRP" is allowed here and encodes as 20 zero bytes.
func serializePathCurrencyCode(currency string) ([]byte, error) {
	if currency == "XRP" {
		return make([]byte, 20), nil
	}
	return encodeCurrencyCode(currency)
}

// deserializePathCurrencyCode is the path-context counterpart to
// deserializeIssuedCurrencyCode: 20 zero bytes decode back to "XRP" instead
// of a standard-form currency code, since path steps allow it.
func deserializePathCurrencyCode(raw []byte) string {
	allZero := true
	for _, b := range raw {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return "XRP"
	}
	currency, err := deserializeIssuedCurrencyCode(raw)
	if err != nil {
		return ""
	}
	return currency
}

// ToJSON reads a serialized PathSet back into its nested-array JSON shape.
func (ps *PathSet) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	var paths []any
	var currentPath []any

	for {
		tag, err := p.ReadByte()
		if err != nil {
			return nil, err
		}

		if tag == pathSetEndByte {
			paths = append(paths, currentPath)
			break
		}
		if tag == pathSeparatorByte {
			paths = append(paths, currentPath)
			currentPath = nil
			continue
		}

		step := map[string]any{}

		if tag&pathSetAccountTag != 0 {
			raw, err := p.ReadBytes(20)
			if err != nil {
				return nil, err
			}
			account, err := addresscodec.EncodeAccountID(raw)
			if err != nil {
				return nil, err
			}
			step["account"] = account
		}
		if tag&pathSetCurrencyTag != 0 {
			raw, err := p.ReadBytes(20)
			if err != nil {
				return nil, err
			}
			step["currency"] = deserializePathCurrencyCode(raw)
		}
		if tag&pathSetIssuerTag != 0 {
			raw, err := p.ReadBytes(20)
			if err != nil {
				return nil, err
			}
			issuer, err := addresscodec.EncodeAccountID(raw)
			if err != nil {
				return nil, err
			}
			step["issuer"] = issuer
		}

		currentPath = append(currentPath, step)
	}

	return paths, nil
}
