package bech32

import (
	"github.com/juju/errors"
)

// AddressType describes the validation profile of one address family.
type AddressType struct {
	HRP       string // required human-readable prefix
	MaxLength int    // total character limit, 0 for unlimited
	StrictPad bool   // reject non-canonical padding when regrouping to bytes
}

var (
	// BTC stuff
	BTCMainnetAddress = AddressType{"bc", 90, true}
	BTCTestnetAddress = AddressType{"tb", 90, true}
	BTCRegtestAddress = AddressType{"bcrt", 90, true}
)

// AddressEncode renders a raw byte payload as an address of the given type.
func AddressEncode(payload []byte, addressType AddressType) (string, error) {
	address, err := Encode(addressType.HRP, BytesToGroups(payload))
	if err != nil {
		return "", err
	}
	if addressType.MaxLength > 0 && len(address) > addressType.MaxLength {
		return "", errors.Annotatef(ErrTooLong, "%d characters, limit %d", len(address), addressType.MaxLength)
	}
	return address, nil
}

// AddressDecode recovers the raw byte payload of an address of the given
// type. Unlike Decode it treats a checksum failure as an error, since the
// caller asked for trustworthy bytes rather than a diagnostic report.
func AddressDecode(address string, addressType AddressType) ([]byte, error) {
	if addressType.MaxLength > 0 && len(address) > addressType.MaxLength {
		return nil, errors.Annotatef(ErrTooLong, "%d characters, limit %d", len(address), addressType.MaxLength)
	}
	decoded, err := Decode(address)
	if err != nil {
		return nil, err
	}
	if decoded.HRP != addressType.HRP {
		return nil, errors.Annotatef(ErrInvalidPrefix, "%q, want %q", decoded.HRP, addressType.HRP)
	}
	if !decoded.Valid {
		return nil, errors.Annotatef(ErrChecksumMismatch, "polymod %#x", decoded.Checksum)
	}
	return GroupsToBytes(decoded.Payload, addressType.StrictPad)
}
