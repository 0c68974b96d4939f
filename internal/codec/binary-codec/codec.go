// Package binarycodec implements the XRPL canonical binary serialization
// format: the wire encoding used for signing and submitting transactions.
package binarycodec

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"math"
	"strings"

	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/definitions"
	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/serdes"
	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/types"
)

const (
	txMultiSigPrefix          = "534D5400"
	paymentChannelClaimPrefix = "434C4D00"
	txSigPrefix               = "53545800"
	batchPrefix               = "42434800"
)

var (
	// ErrNotAnObject is returned when the top-level JSON value is not an object.
	ErrNotAnObject = errors.New("binarycodec: transaction JSON must be an object")

	// ErrSigningClaimFieldNotFound is returned when a payment channel claim is
	// missing its Channel or Amount field.
	ErrSigningClaimFieldNotFound = errors.New("'Channel' & 'Amount' fields are both required, but were not found")
	// ErrBatchFlagsFieldNotFound is returned when the 'flags' field is missing.
	ErrBatchFlagsFieldNotFound = errors.New("no field `flags`")
	// ErrBatchTxIDsFieldNotFound is returned when the 'txIDs' field is missing.
	ErrBatchTxIDsFieldNotFound = errors.New("no field `txIDs`")
	// ErrBatchTxIDsNotArray is returned when the 'txIDs' field is not an array.
	ErrBatchTxIDsNotArray = errors.New("txIDs field must be an array")
	// ErrBatchFlagsNotUInt32 is returned when the 'flags' field is not a uint32.
	ErrBatchFlagsNotUInt32 = errors.New("flags field must be a uint32")
	// ErrBatchTxIDsLengthTooLong is returned when txIDs has more than math.MaxUint32 entries.
	ErrBatchTxIDsLengthTooLong = errors.New("txIDs length exceeds maximum uint32 value")
)

// SerializeTx parses transactionJSON, filters and sorts its top-level fields
// by canonical field order, and returns their concatenated encoding as an
// uppercase hex string. When forSigning is true, fields that are not part of
// the transaction's signing form are omitted.
func SerializeTx(transactionJSON string, forSigning bool) (string, error) {
	var tx map[string]any
	if err := json.Unmarshal([]byte(transactionJSON), &tx); err != nil {
		return "", err
	}

	if forSigning {
		tx = removeNonSigningFields(tx)
	}
	return Encode(tx)
}

// Encode converts a transaction object to its canonical binary hex encoding,
// silently dropping any top-level key that Definitions does not recognize.
func Encode(tx map[string]any) (string, error) {
	for k := range tx {
		if _, ok := definitions.Get().FieldDef(k); !ok {
			delete(tx, k)
		}
	}

	st := types.NewSTObject(serdes.NewBinarySerializer(serdes.NewFieldIDCodec(definitions.Get())))
	b, err := st.FromJSON(tx)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(b)), nil
}

// Decode parses a canonical binary hex encoding back into a transaction object.
func Decode(hexEncoded string) (map[string]any, error) {
	b, err := hex.DecodeString(hexEncoded)
	if err != nil {
		return nil, err
	}
	p := serdes.NewBinaryParser(b, definitions.Get())
	st := types.NewSTObject(serdes.NewBinarySerializer(serdes.NewFieldIDCodec(definitions.Get())))
	v, err := st.ToJSON(p)
	if err != nil {
		return nil, err
	}
	result, ok := v.(map[string]any)
	if !ok {
		return nil, ErrNotAnObject
	}
	return result, nil
}

// EncodeForSigning encodes a transaction into binary format in preparation
// for single signing, prefixed with the STX hash prefix.
func EncodeForSigning(tx map[string]any) (string, error) {
	encoded, err := Encode(removeNonSigningFields(tx))
	if err != nil {
		return "", err
	}
	return strings.ToUpper(txSigPrefix + encoded), nil
}

// EncodeForMultisigning encodes a transaction into binary format in
// preparation for one signer's contribution to a multi-signed transaction.
func EncodeForMultisigning(tx map[string]any, xrpAccountID string) (string, error) {
	tx["SigningPubKey"] = ""

	suffix, err := (&types.AccountID{}).FromJSON(xrpAccountID)
	if err != nil {
		return "", err
	}

	encoded, err := Encode(removeNonSigningFields(tx))
	if err != nil {
		return "", err
	}
	return strings.ToUpper(txMultiSigPrefix + encoded + hex.EncodeToString(suffix)), nil
}

// EncodeForSigningClaim encodes a payment channel claim (Channel, Amount)
// into binary format in preparation for signing. The native-amount
// non-XRP-bit is cleared since a claim amount carries no "is XRP" marker.
func EncodeForSigningClaim(tx map[string]any) (string, error) {
	if tx["Channel"] == nil || tx["Amount"] == nil {
		return "", ErrSigningClaimFieldNotFound
	}

	channel, err := (&types.Hash256{}).FromJSON(tx["Channel"])
	if err != nil {
		return "", err
	}

	amount, err := (&types.Amount{}).FromJSON(tx["Amount"])
	if err != nil {
		return "", err
	}
	if len(amount) == types.NativeAmountByteLength {
		amount[0] &^= 0x40
	}

	return strings.ToUpper(paymentChannelClaimPrefix + hex.EncodeToString(channel) + hex.EncodeToString(amount)), nil
}

// EncodeForSigningBatch encodes a batch transaction's flags and constituent
// transaction IDs into binary format in preparation for signing.
func EncodeForSigningBatch(tx map[string]any) (string, error) {
	if tx["flags"] == nil {
		return "", ErrBatchFlagsFieldNotFound
	}
	if tx["txIDs"] == nil {
		return "", ErrBatchTxIDsFieldNotFound
	}

	txIDs, ok := tx["txIDs"].([]string)
	if !ok {
		return "", ErrBatchTxIDsNotArray
	}
	flags, ok := tx["flags"].(uint32)
	if !ok {
		return "", ErrBatchFlagsNotUInt32
	}
	if len(txIDs) > math.MaxUint32 {
		return "", ErrBatchTxIDsLengthTooLong
	}

	flagsBytes, err := (&types.UInt32{}).FromJSON(flags)
	if err != nil {
		return "", err
	}
	countBytes, err := (&types.UInt32{}).FromJSON(uint32(len(txIDs)))
	if err != nil {
		return "", err
	}

	result := batchPrefix + hex.EncodeToString(flagsBytes) + hex.EncodeToString(countBytes)
	for _, txID := range txIDs {
		idBytes, err := (&types.Hash256{}).FromJSON(txID)
		if err != nil {
			return "", err
		}
		result += hex.EncodeToString(idBytes)
	}

	return strings.ToUpper(result), nil
}

// removeNonSigningFields drops every field that Definitions marks as not
// part of a transaction's signing form.
func removeNonSigningFields(tx map[string]any) map[string]any {
	for k := range tx {
		fi, ok := definitions.Get().FieldDef(k)
		if ok && !fi.IsSigningField {
			delete(tx, k)
		}
	}
	return tx
}
