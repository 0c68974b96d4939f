package serdes

import (
	"bytes"

	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/definitions"
)

// BinarySerializer accumulates the wire bytes of a serialized object. Fields
// are written in the order callers present them; canonical ordering is the
// caller's responsibility (see the types package's STObject).
type BinarySerializer struct {
	sink  bytes.Buffer
	codec *FieldIDCodec
}

// NewBinarySerializer builds a serializer that encodes field IDs through codec.
func NewBinarySerializer(codec *FieldIDCodec) *BinarySerializer {
	return &BinarySerializer{codec: codec}
}

// WriteFieldAndValue appends a field's identifier and value to the sink. If
// the field is VL-encoded, value is treated as the raw, unprefixed payload
// and a length prefix is written ahead of it.
func (s *BinarySerializer) WriteFieldAndValue(fieldInstance definitions.FieldInstance, value []byte) error {
	idBytes, err := s.codec.encodeHeader(fieldInstance.Header)
	if err != nil {
		return err
	}
	s.sink.Write(idBytes)

	if fieldInstance.IsVLEncoded {
		vl, err := encodeVariableLength(len(value))
		if err != nil {
			return err
		}
		s.sink.Write(vl)
	}

	s.sink.Write(value)
	return nil
}

// GetSink returns the bytes accumulated so far.
func (s *BinarySerializer) GetSink() []byte {
	return s.sink.Bytes()
}
