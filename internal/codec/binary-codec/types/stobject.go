//revive:disable:var-naming
package types

import (
	"errors"
	"fmt"
	"sort"

	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/definitions"
	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/serdes"
	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/types/interfaces"
)

// objectEndMarkerBytes and arrayEndMarkerBytes are the fixed field-id
// encodings of ObjectEndMarker (type 14, field 1) and ArrayEndMarker (type
// 15, field 1): single bytes since both type and field code are under 16.
var (
	objectEndMarkerBytes = []byte{0xe1}
	arrayEndMarkerBytes  = []byte{0xf1}
)

// STObject serializes a JSON object's fields in canonical field order. It
// is the central dispatcher: every field's value is encoded by recursing
// into the matching primitive, STArray, or nested STObject encoder.
//
// A single STObject value is only ever appended with its ObjectEndMarker by
// whichever call dispatched it as a nested field (see encodeFieldBody) — the
// top-level transaction object has no enclosing dispatcher and so carries
// none.
type STObject struct {
	serializer *serdes.BinarySerializer
}

// NewSTObject constructs an STObject that writes into the given serializer.
func NewSTObject(serializer *serdes.BinarySerializer) *STObject {
	return &STObject{serializer: serializer}
}

// ErrInvalidSTObject is returned when an STObject value is not a JSON object.
var ErrInvalidSTObject = errors.New("invalid STObject, value should be an object")

type sortableField struct {
	name string
	fi   *definitions.FieldInstance
}

// FromJSON serializes the given object's fields, sorted by canonical field
// order, into the object's bound serializer and returns the accumulated
// bytes.
func (o *STObject) FromJSON(value map[string]any) ([]byte, error) {
	defs := definitions.Get()

	fields := make([]sortableField, 0, len(value))
	for name := range value {
		fi, ok := defs.FieldDef(name)
		if !ok {
			return nil, fmt.Errorf("stobject: unknown field %q", name)
		}
		if !fi.IsSerialized {
			continue
		}
		fields = append(fields, sortableField{name: name, fi: fi})
	}
	sort.Slice(fields, func(i, j int) bool {
		return fields[i].fi.Ordinal < fields[j].fi.Ordinal
	})

	for _, f := range fields {
		body, err := encodeFieldBody(f.name, f.fi, value[f.name])
		if err != nil {
			return nil, err
		}
		if err := o.serializer.WriteFieldAndValue(*f.fi, body); err != nil {
			return nil, err
		}
	}

	return o.serializer.GetSink(), nil
}

// encodeFieldBody returns the raw value bytes for one field (post field-id,
// pre VL-wrapping, which WriteFieldAndValue applies for VL-encoded types).
func encodeFieldBody(fieldName string, fi *definitions.FieldInstance, raw any) ([]byte, error) {
	if fieldName == "TransactionType" {
		return (&TransactionType{}).FromJSON(raw)
	}

	switch fi.Type {
	case "STObject":
		innerMap, ok := raw.(map[string]any)
		if !ok {
			return nil, ErrInvalidSTObject
		}
		innerSerializer := serdes.NewBinarySerializer(serdes.NewFieldIDCodec(definitions.Get()))
		innerBytes, err := NewSTObject(innerSerializer).FromJSON(innerMap)
		if err != nil {
			return nil, err
		}
		return append(innerBytes, objectEndMarkerBytes...), nil

	case "STArray":
		arr, ok := raw.([]any)
		if !ok {
			return nil, ErrInvalidSTArray
		}
		return (&STArray{}).FromJSON(arr)

	case "AccountID":
		return (&AccountID{}).FromJSON(raw)
	case "Amount":
		return (&Amount{}).FromJSON(raw)
	case "Blob":
		return (&Blob{}).FromJSON(raw)
	case "Hash128":
		return (&Hash128{}).FromJSON(raw)
	case "Hash160":
		return (&Hash160{}).FromJSON(raw)
	case "Hash256":
		return (&Hash256{}).FromJSON(raw)
	case "UInt8":
		return (&UInt8{}).FromJSON(raw)
	case "UInt16":
		return (&UInt16{}).FromJSON(raw)
	case "UInt32":
		return (&UInt32{}).FromJSON(raw)
	case "UInt64":
		return (&UInt64{}).FromJSON(raw)
	case "PathSet":
		return (&PathSet{}).FromJSON(raw)
	default:
		return nil, fmt.Errorf("stobject: unsupported field type %q for field %q", fi.Type, fieldName)
	}
}

// ToJSON reads fields until either the ObjectEndMarker is encountered (a
// nested call) or the parser runs out of data (the top-level transaction).
func (o *STObject) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	result := map[string]any{}
	for p.HasMore() {
		fi, err := p.ReadField()
		if err != nil {
			return nil, err
		}
		if fi.FieldName == "ObjectEndMarker" {
			break
		}

		val, err := decodeFieldValue(p, fi)
		if err != nil {
			return nil, err
		}
		result[fi.FieldName] = val
	}
	return result, nil
}

func decodeFieldValue(p interfaces.BinaryParser, fi *definitions.FieldInstance) (any, error) {
	if fi.FieldName == "TransactionType" {
		return (&TransactionType{}).ToJSON(p)
	}

	switch fi.Type {
	case "STObject":
		return NewSTObject(nil).ToJSON(p)
	case "STArray":
		return (&STArray{}).ToJSON(p)
	case "AccountID":
		return (&AccountID{}).ToJSON(p)
	case "Amount":
		return (&Amount{}).ToJSON(p)
	case "Blob":
		return (&Blob{}).ToJSON(p)
	case "Hash128":
		return (&Hash128{}).ToJSON(p)
	case "Hash160":
		return (&Hash160{}).ToJSON(p)
	case "Hash256":
		return (&Hash256{}).ToJSON(p)
	case "UInt8":
		return (&UInt8{}).ToJSON(p)
	case "UInt16":
		return (&UInt16{}).ToJSON(p)
	case "UInt32":
		return (&UInt32{}).ToJSON(p)
	case "UInt64":
		return (&UInt64{}).ToJSON(p)
	case "PathSet":
		return (&PathSet{}).ToJSON(p)
	default:
		return nil, fmt.Errorf("stobject: unsupported field type %q for field %q", fi.Type, fi.FieldName)
	}
}
