package serdes

import "errors"

// ErrLengthPrefixTooLong is returned when a value's length exceeds the
// maximum the VL length-prefix encoding can represent (918744 bytes).
var ErrLengthPrefixTooLong = errors.New("serdes: variable length prefix too long, max length is 918744 bytes")

const (
	vlMaxSingleByte = 192
	vlMaxTwoByte    = 12480
	vlMaxThreeByte  = 918744
	vlTwoByteOffset = 193
	vlThreeByteOffset = 12481
)

// encodeVariableLength returns the 1-3 byte length prefix for a value of the
// given byte length, per the rippled VL encoding scheme:
//
//	0-192:          1 byte, the length itself
//	193-12480:       2 bytes, offset from 193
//	12481-918744:    3 bytes, offset from 12481
//	>918744:        error
func encodeVariableLength(length int) ([]byte, error) {
	switch {
	case length <= vlMaxSingleByte:
		return []byte{byte(length)}, nil
	case length <= vlMaxTwoByte:
		length -= vlTwoByteOffset
		return []byte{
			byte(vlTwoByteOffset + (length >> 8)),
			byte(length & 0xff),
		}, nil
	case length <= vlMaxThreeByte:
		length -= vlThreeByteOffset
		return []byte{
			byte(241 + (length >> 16)),
			byte((length >> 8) & 0xff),
			byte(length & 0xff),
		}, nil
	default:
		return nil, ErrLengthPrefixTooLong
	}
}
