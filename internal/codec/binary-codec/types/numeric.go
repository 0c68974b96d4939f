//revive:disable:var-naming
package types

// coerceToUint64 normalizes the numeric JSON representations a caller might
// hand us (Go map literals built by hand, or values parsed from JSON text)
// into a single uint64, so UInt8/UInt16/UInt32 don't need to special-case
// every concrete numeric type Go or encoding/json might produce.
func coerceToUint64(value any) (uint64, bool) {
	switch v := value.(type) {
	case uint64:
		return v, true
	case uint32:
		return uint64(v), true
	case uint16:
		return uint64(v), true
	case uint8:
		return uint64(v), true
	case uint:
		return uint64(v), true
	case int64:
		return uint64(v), true
	case int32:
		return uint64(v), true
	case int16:
		return uint64(v), true
	case int8:
		return uint64(v), true
	case int:
		return uint64(v), true
	case float64:
		return uint64(v), true
	case float32:
		return uint64(v), true
	default:
		return 0, false
	}
}
