package serdes

import (
	"errors"

	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/definitions"
	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/serdes/interfaces"
)

// ErrParserOutOfBound is returned when a read would run past the end of the
// underlying buffer.
var ErrParserOutOfBound = errors.New("serdes: parser read out of bound")

// BinaryParser walks a wire-format byte buffer, decoding field headers and
// primitive values in the order the rippled binary format requires them.
type BinaryParser struct {
	data []byte
	pos  int
	defs interfaces.Definitions
}

// NewBinaryParser wraps data for sequential reads against defs' catalog.
func NewBinaryParser(data []byte, defs interfaces.Definitions) *BinaryParser {
	return &BinaryParser{data: data, defs: defs}
}

// HasMore reports whether any unread bytes remain.
func (p *BinaryParser) HasMore() bool {
	return p.pos < len(p.data)
}

// ReadByte consumes and returns the next byte.
func (p *BinaryParser) ReadByte() (byte, error) {
	if p.pos >= len(p.data) {
		return 0, ErrParserOutOfBound
	}
	b := p.data[p.pos]
	p.pos++
	return b, nil
}

// Peek returns the next byte without consuming it.
func (p *BinaryParser) Peek() (byte, error) {
	if p.pos >= len(p.data) {
		return 0, ErrParserOutOfBound
	}
	return p.data[p.pos], nil
}

// ReadBytes consumes and returns the next n bytes.
func (p *BinaryParser) ReadBytes(n int) ([]byte, error) {
	if n < 0 || p.pos+n > len(p.data) {
		return nil, ErrParserOutOfBound
	}
	b := p.data[p.pos : p.pos+n]
	p.pos += n
	return b, nil
}

// ReadVariableLength decodes a 1-3 byte VL length prefix and returns the
// length it encodes, consuming only the prefix bytes.
func (p *BinaryParser) ReadVariableLength() (int, error) {
	b1, err := p.ReadByte()
	if err != nil {
		return 0, err
	}

	switch {
	case int(b1) <= 192:
		return int(b1), nil
	case int(b1) <= 240:
		b2, err := p.ReadByte()
		if err != nil {
			return 0, err
		}
		return vlTwoByteOffset + (int(b1)-vlTwoByteOffset)*256 + int(b2), nil
	case int(b1) <= 254:
		b2, err := p.ReadByte()
		if err != nil {
			return 0, err
		}
		b3, err := p.ReadByte()
		if err != nil {
			return 0, err
		}
		return vlThreeByteOffset + (int(b1)-241)*65536 + int(b2)*256 + int(b3), nil
	default:
		return 0, ErrLengthPrefixTooLong
	}
}

// ReadField reads the next field header off the stream and resolves it to
// its catalog FieldInstance.
func (p *BinaryParser) ReadField() (*definitions.FieldInstance, error) {
	fh, err := readFieldHeader(p)
	if err != nil {
		return nil, err
	}
	name, err := p.defs.GetFieldNameByFieldHeader(fh)
	if err != nil {
		return nil, err
	}
	fi, err := p.defs.GetFieldInstanceByFieldName(name)
	if err != nil {
		return nil, err
	}
	return fi, nil
}
