// Package bech32 implements the checksummed, human-readable address text
// encoding: a lowercase prefix, a separator and a payload of 5-bit values
// rendered in a fixed 32-character alphabet, protected by a 6-value BCH
// checksum. The codec is stateless and safe for concurrent use.
package bech32

import (
	"strings"

	"github.com/juju/errors"
)

// separator divides the human-readable prefix from the data part. The data
// alphabet does not contain it, so the last occurrence is always the divider
// even when the prefix itself contains '1'.
const separator = '1'

// Decoded is the result of decoding an address string. A checksum failure is
// not an error: it is reported through Valid, with the raw polymod accumulator
// in Checksum, so that a well-formed but corrupt address can still be
// inspected.
type Decoded struct {
	HRP      string
	Payload  []byte
	Valid    bool
	Checksum uint32
}

// Encode renders payload under the human-readable prefix hrp, appending the
// checksum. The prefix is folded to lowercase before the checksum is computed
// and the returned string is always lowercase. Payload values must fit in
// 5 bits; the payload may be empty.
func Encode(hrp string, payload []byte) (string, error) {
	if len(hrp) == 0 {
		return "", errors.Annotatef(ErrInvalidPrefix, "empty prefix")
	}
	lower := strings.ToLower(hrp)
	if hrp != lower && hrp != strings.ToUpper(hrp) {
		return "", errors.Annotatef(ErrInvalidPrefix, "mixed case prefix %q", hrp)
	}
	for i := 0; i < len(lower); i++ {
		if lower[i] < 33 || lower[i] > 126 {
			return "", errors.Annotatef(ErrInvalidPrefix, "character %d at position %d", lower[i], i)
		}
	}
	for i, v := range payload {
		if v > 31 {
			return "", errors.Annotatef(ErrInvalidValue, "value %d at position %d", v, i)
		}
	}
	var b strings.Builder
	b.Grow(len(lower) + 1 + len(payload) + checksumLength)
	b.WriteString(lower)
	b.WriteByte(separator)
	for _, v := range appendChecksum(lower, payload) {
		b.WriteByte(symbolOf(v))
	}
	return b.String(), nil
}

// Decode splits addr into its prefix and data part and maps the data part
// back to 5-bit values. Structural violations (bad characters, mixed case, a
// misplaced separator) are returned as errors; the checksum verdict is
// reported in the result. Decoding is case-insensitive, the returned HRP is
// lowercase.
func Decode(addr string) (*Decoded, error) {
	for i := 0; i < len(addr); i++ {
		if addr[i] < 33 || addr[i] > 126 {
			return nil, errors.Annotatef(ErrInvalidCharRange, "character %d at position %d", addr[i], i)
		}
	}
	lower := strings.ToLower(addr)
	if addr != lower && addr != strings.ToUpper(addr) {
		return nil, ErrMixedCase
	}
	addr = lower
	pos := strings.LastIndexByte(addr, separator)
	if pos < 1 || pos+checksumLength+1 > len(addr) {
		return nil, errors.Annotatef(ErrInvalidSeparator, "separator at %d in %d characters", pos, len(addr))
	}
	hrp := addr[:pos]
	dataPart := addr[pos+1:]
	data := make([]byte, len(dataPart))
	for i := 0; i < len(dataPart); i++ {
		v, err := valueOf(dataPart[i])
		if err != nil {
			return nil, errors.Annotatef(err, "position %d", pos+1+i)
		}
		data[i] = v
	}
	valid, chk := VerifyChecksum(hrp, data)
	return &Decoded{
		HRP:      hrp,
		Payload:  data[:len(data)-checksumLength],
		Valid:    valid,
		Checksum: chk,
	}, nil
}
