//revive:disable:var-naming
package types

import (
	"errors"
	"fmt"

	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/definitions"
	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/serdes"
	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/types/interfaces"
)

// STArray represents a field holding an array of single-key wrapper objects,
// e.g. Memos holding a list of {"Memo": {...}} elements.
type STArray struct{}

// ErrInvalidSTArray is returned when an STArray value is not an array of
// single-key wrapper objects.
var ErrInvalidSTArray = errors.New("invalid STArray, value should be an array of single-key wrapper objects")

// FromJSON serializes each wrapper element as a field keyed by its single
// key, then appends the ArrayEndMarker field id.
func (a *STArray) FromJSON(value []any) ([]byte, error) {
	defs := definitions.Get()
	codec := serdes.NewFieldIDCodec(defs)

	var out []byte
	for _, el := range value {
		wrapper, ok := el.(map[string]any)
		if !ok || len(wrapper) != 1 {
			return nil, ErrInvalidSTArray
		}

		for fieldName, innerVal := range wrapper {
			if _, ok := defs.FieldDef(fieldName); !ok {
				return nil, fmt.Errorf("starray: unknown field %q", fieldName)
			}
			innerMap, ok := innerVal.(map[string]any)
			if !ok {
				return nil, ErrInvalidSTArray
			}

			innerSerializer := serdes.NewBinarySerializer(serdes.NewFieldIDCodec(defs))
			innerBytes, err := NewSTObject(innerSerializer).FromJSON(innerMap)
			if err != nil {
				return nil, err
			}

			idBytes, err := codec.Encode(fieldName)
			if err != nil {
				return nil, err
			}
			out = append(out, idBytes...)
			out = append(out, innerBytes...)
			out = append(out, objectEndMarkerBytes...)
		}
	}

	out = append(out, arrayEndMarkerBytes...)
	return out, nil
}

// ToJSON reads wrapper-object elements until the ArrayEndMarker is reached.
func (a *STArray) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	var result []any
	for {
		fi, err := p.ReadField()
		if err != nil {
			return nil, err
		}
		if fi.FieldName == "ArrayEndMarker" {
			break
		}

		inner, err := NewSTObject(nil).ToJSON(p)
		if err != nil {
			return nil, err
		}
		result = append(result, map[string]any{fi.FieldName: inner})
	}
	return result, nil
}
