package bech32

import (
	"github.com/juju/errors"
)

var (
	// ErrInvalidCharRange is returned when a string contains a character outside
	// the printable range 33..126
	ErrInvalidCharRange = errors.New("Character outside printable range")
	// ErrMixedCase is returned when a string mixes uppercase and lowercase
	ErrMixedCase = errors.New("Mixed case string")
	// ErrInvalidSeparator is returned when the last separator leaves an empty
	// prefix or no room for the checksum
	ErrInvalidSeparator = errors.New("Invalid separator position")
	// ErrInvalidCharacter is returned when a data character is not in the alphabet
	ErrInvalidCharacter = errors.New("Character not in alphabet")
	// ErrInvalidPrefix is returned when a human-readable prefix is empty,
	// out of range or not the expected one
	ErrInvalidPrefix = errors.New("Invalid human-readable prefix")
	// ErrInvalidValue is returned when a data value does not fit in 5 bits
	ErrInvalidValue = errors.New("Data value out of range")
	// ErrNonZeroPadding is returned by strict regrouping when padding bits are set
	ErrNonZeroPadding = errors.New("Non-zero padding bits")
	// ErrExcessPadding is returned by strict regrouping when a full group of
	// padding bits remains
	ErrExcessPadding = errors.New("Excess padding bits")
	// ErrTooLong is returned when an address exceeds the profile length limit
	ErrTooLong = errors.New("Address too long")
	// ErrChecksumMismatch is returned by profile decoding for a well-formed
	// address whose checksum does not verify
	ErrChecksumMismatch = errors.New("Checksum mismatch")
)
