// Package addresscodec encodes and decodes XRPL classic addresses: a
// version byte and 20-byte AccountID, base58-checksummed with the XRPL
// alphabet.
package addresscodec

import (
	"crypto/sha256"
	"errors"
	"strings"

	"github.com/btcsuite/btcutil/base58"
)

// AccountAddressPrefix is the version byte for classic (AccountID) addresses.
const AccountAddressPrefix = 0x00

// accountIDLength is the byte length of an XRPL AccountID payload.
const accountIDLength = 20

// stdAlphabet is the Bitcoin base58 alphabet btcutil/base58 encodes with.
// xrplAlphabet is ripple's own ordering of the same 58 symbols. Translating
// character-by-character between them after encoding (or before decoding)
// yields XRPL's base58 dialect from a standard base58 implementation.
const (
	stdAlphabet  = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	xrplAlphabet = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"
)

// ErrInvalidChecksum is returned when a decoded address fails its
// double-SHA-256 checksum verification.
var ErrInvalidChecksum = errors.New("addresscodec: invalid checksum")

// ErrInvalidAddressLength is returned when a decoded address payload is not
// exactly 20 bytes, or the input is too short to hold a version byte and
// checksum at all.
var ErrInvalidAddressLength = errors.New("addresscodec: invalid address length")

// ErrInvalidVersionByte is returned when a decoded address's version byte is
// not the expected AccountID prefix.
var ErrInvalidVersionByte = errors.New("addresscodec: unexpected version byte")

func stdToXRPL(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		idx := strings.IndexRune(stdAlphabet, r)
		if idx < 0 {
			b.WriteRune(r)
			continue
		}
		b.WriteByte(xrplAlphabet[idx])
	}
	return b.String()
}

func xrplToStd(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		idx := strings.IndexRune(xrplAlphabet, r)
		if idx < 0 {
			return "", errors.New("addresscodec: character not in XRPL base58 alphabet")
		}
		b.WriteByte(stdAlphabet[idx])
	}
	return b.String(), nil
}

func checksum(payload []byte) []byte {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	return second[:4]
}

// EncodeAccountID encodes a 20-byte AccountID payload into its classic
// r-address form.
func EncodeAccountID(accountID []byte) (string, error) {
	if len(accountID) != accountIDLength {
		return "", ErrInvalidAddressLength
	}

	key := string(accountID)
	if cached, ok := encodeCache.Get(key); ok {
		return cached, nil
	}

	payload := make([]byte, 0, 1+accountIDLength)
	payload = append(payload, AccountAddressPrefix)
	payload = append(payload, accountID...)
	payload = append(payload, checksum(payload)...)

	address := stdToXRPL(base58.Encode(payload))
	encodeCache.Add(key, address)
	return address, nil
}

// DecodeAccountID decodes a classic r-address back to its 20-byte AccountID
// payload, verifying the version byte and checksum.
func DecodeAccountID(address string) ([]byte, error) {
	if cached, ok := decodeCache.Get(address); ok {
		out := make([]byte, accountIDLength)
		copy(out, cached[:])
		return out, nil
	}

	stdEncoded, err := xrplToStd(address)
	if err != nil {
		return nil, err
	}

	decoded := base58.Decode(stdEncoded)
	if len(decoded) < 5 {
		return nil, ErrInvalidAddressLength
	}

	payload, sum := decoded[:len(decoded)-4], decoded[len(decoded)-4:]
	want := checksum(payload)
	if string(want) != string(sum) {
		return nil, ErrInvalidChecksum
	}

	if payload[0] != AccountAddressPrefix {
		return nil, ErrInvalidVersionByte
	}

	accountID := payload[1:]
	if len(accountID) != accountIDLength {
		return nil, ErrInvalidAddressLength
	}

	var cached [20]byte
	copy(cached[:], accountID)
	decodeCache.Add(address, cached)

	return accountID, nil
}

// IsValidClassicAddress reports whether address decodes to a well-formed
// 20-byte AccountID with a valid checksum.
func IsValidClassicAddress(address string) bool {
	_, err := DecodeAccountID(address)
	return err == nil
}
