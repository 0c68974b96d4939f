package serdes

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/definitions"
	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/serdes/interfaces"
)

// ErrFieldIDTooLarge is returned when a type code or field code does not fit
// the field-identifier byte layout (both must be in 0..255, since a code of
// 16 or more is written as a standalone byte).
var ErrFieldIDTooLarge = errors.New("serdes: type code or field code out of range for field ID encoding")

// FieldIDCodec encodes and decodes the 1-3 byte field identifiers that
// precede every serialized field: a (type code, field code) pair packed
// according to the rippled field-ID layout.
type FieldIDCodec struct {
	defs interfaces.Definitions
}

// NewFieldIDCodec builds a FieldIDCodec backed by the given catalog.
func NewFieldIDCodec(defs interfaces.Definitions) *FieldIDCodec {
	return &FieldIDCodec{defs: defs}
}

// Encode returns the wire bytes for the field identifier of fieldName.
func (c *FieldIDCodec) Encode(fieldName string) ([]byte, error) {
	fh, err := c.defs.GetFieldHeaderByFieldName(fieldName)
	if err != nil {
		return nil, err
	}
	return c.encodeHeader(*fh)
}

func (c *FieldIDCodec) encodeHeader(fh definitions.FieldHeader) ([]byte, error) {
	t, f := fh.TypeCode, fh.FieldCode
	if t < 0 || f < 0 || t > 0xff || f > 0xff {
		return nil, ErrFieldIDTooLarge
	}

	switch {
	case t < 16 && f < 16:
		return []byte{byte(t<<4 | f)}, nil
	case t >= 16 && f < 16:
		return []byte{byte(f), byte(t)}, nil
	case t < 16 && f >= 16:
		return []byte{byte(t << 4), byte(f)}, nil
	default:
		return []byte{0x00, byte(t), byte(f)}, nil
	}
}

// Decode resolves a hex-encoded field identifier back to its field name.
// It supports the 1, 2, and 3 byte encodings described by Encode.
func (c *FieldIDCodec) Decode(fieldIDHex string) (string, error) {
	raw, err := hex.DecodeString(fieldIDHex)
	if err != nil {
		return "", fmt.Errorf("serdes: decode field ID %q: %w", fieldIDHex, err)
	}

	fh, err := headerFromBytes(raw)
	if err != nil {
		return "", err
	}
	return c.defs.GetFieldNameByFieldHeader(fh)
}

// headerFromBytes decodes a field ID using the same nibble state machine as
// readFieldHeader, but over an in-memory slice: a zero nibble means its
// value was promoted to a standalone following byte.
func headerFromBytes(raw []byte) (definitions.FieldHeader, error) {
	if len(raw) == 0 {
		return definitions.FieldHeader{}, errors.New("serdes: empty field ID")
	}

	pos := 0
	next := func() (byte, error) {
		if pos >= len(raw) {
			return 0, fmt.Errorf("serdes: field ID truncated: %x", raw)
		}
		b := raw[pos]
		pos++
		return b, nil
	}

	first, err := next()
	if err != nil {
		return definitions.FieldHeader{}, err
	}

	typeCode := int32(first >> 4)
	fieldCode := int32(first & 0x0f)

	if typeCode == 0 {
		b, err := next()
		if err != nil {
			return definitions.FieldHeader{}, err
		}
		typeCode = int32(b)
	}
	if fieldCode == 0 {
		b, err := next()
		if err != nil {
			return definitions.FieldHeader{}, err
		}
		fieldCode = int32(b)
	}

	if pos != len(raw) {
		return definitions.FieldHeader{}, fmt.Errorf("serdes: field ID has trailing bytes: %x", raw)
	}

	return definitions.FieldHeader{TypeCode: typeCode, FieldCode: fieldCode}, nil
}

// readFieldHeader reads a field header directly off a byte stream, advancing
// past however many bytes (1-3) the encoding consumed.
func readFieldHeader(p *BinaryParser) (definitions.FieldHeader, error) {
	first, err := p.ReadByte()
	if err != nil {
		return definitions.FieldHeader{}, err
	}

	typeCode := int32(first >> 4)
	fieldCode := int32(first & 0x0f)

	if typeCode == 0 {
		typeCode, err = readByteAsInt32(p)
		if err != nil {
			return definitions.FieldHeader{}, err
		}
	}
	if fieldCode == 0 {
		fieldCode, err = readByteAsInt32(p)
		if err != nil {
			return definitions.FieldHeader{}, err
		}
	}

	return definitions.FieldHeader{TypeCode: typeCode, FieldCode: fieldCode}, nil
}

func readByteAsInt32(p *BinaryParser) (int32, error) {
	b, err := p.ReadByte()
	if err != nil {
		return 0, err
	}
	return int32(b), nil
}
