package bech32

import (
	"github.com/juju/errors"
)

// BytesToGroups repacks b from 8-bit bytes into 5-bit groups, MSB-first.
// The final group is zero-padded on the right when the bit count is not a
// multiple of 5.
func BytesToGroups(b []byte) []byte {
	groups := make([]byte, 0, (len(b)*8+4)/5)
	var acc uint32
	var bits uint
	for _, v := range b {
		acc = acc<<8 | uint32(v)
		bits += 8
		for bits >= 5 {
			bits -= 5
			groups = append(groups, byte(acc>>bits)&31)
		}
	}
	if bits > 0 {
		groups = append(groups, byte(acc<<(5-bits))&31)
	}
	return groups
}

// GroupsToBytes repacks 5-bit groups back into 8-bit bytes. In strict mode the
// leftover bits after the last full byte must amount to less than one group
// and must all be zero; otherwise two distinct group sequences could map to
// the same byte string. In non-strict mode leftover bits are discarded.
func GroupsToBytes(groups []byte, strict bool) ([]byte, error) {
	out := make([]byte, 0, len(groups)*5/8)
	var acc uint32
	var bits uint
	for i, v := range groups {
		if v > 31 {
			return nil, errors.Annotatef(ErrInvalidValue, "value %d at group %d", v, i)
		}
		acc = acc<<5 | uint32(v)
		bits += 5
		for bits >= 8 {
			bits -= 8
			out = append(out, byte(acc>>bits))
		}
	}
	if strict {
		if bits >= 5 {
			return nil, errors.Annotatef(ErrExcessPadding, "%d leftover bits", bits)
		}
		if acc&(1<<bits-1) != 0 {
			return nil, ErrNonZeroPadding
		}
	}
	return out, nil
}
