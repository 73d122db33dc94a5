//go:build unittest

package bech32

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/juju/errors"
)

func TestBytesToGroups(t *testing.T) {
	tests := []struct {
		in   []byte
		want []byte
	}{
		{nil, []byte{}},
		{[]byte{0xFF}, []byte{31, 28}},
		{[]byte{0x00}, []byte{0, 0}},
		{
			// witness program of the known mainnet vector
			[]byte{0x75, 0x1e, 0x76, 0xe8, 0x19, 0x91, 0x96, 0xd4, 0x54, 0x94, 0x1c, 0x45, 0xd1, 0xb3, 0xa3, 0x23, 0xf1, 0x43, 0x3b, 0xd6},
			[]byte{14, 20, 15, 7, 13, 26, 0, 25, 18, 6, 11, 13, 8, 21, 4, 20, 3, 17, 2, 29, 3, 12, 29, 3, 4, 15, 24, 20, 6, 14, 30, 22},
		},
	}
	for _, tt := range tests {
		got := BytesToGroups(tt.in)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("BytesToGroups(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGroupsRoundTrip(t *testing.T) {
	inputs := [][]byte{
		{},
		{0x00},
		{0xFF},
		{0xDE, 0xAD, 0xBE, 0xEF},
		{0x75, 0x1e, 0x76, 0xe8, 0x19, 0x91, 0x96, 0xd4, 0x54, 0x94, 0x1c, 0x45, 0xd1, 0xb3, 0xa3, 0x23, 0xf1, 0x43, 0x3b, 0xd6},
		bytes.Repeat([]byte{0xA5}, 33),
	}
	for _, in := range inputs {
		got, err := GroupsToBytes(BytesToGroups(in), true)
		if err != nil {
			t.Errorf("Round trip of %v failed: %v", in, err)
			continue
		}
		if !bytes.Equal(got, in) {
			t.Errorf("Round trip of %v = %v", in, got)
		}
	}
}

func TestGroupsToBytesStrict(t *testing.T) {
	tests := []struct {
		groups []byte
		want   error
	}{
		// two bits of leftover padding, both set
		{[]byte{31, 31}, ErrNonZeroPadding},
		// a single group is all padding
		{[]byte{0}, ErrExcessPadding},
		// one byte plus seven leftover bits
		{[]byte{31, 31, 0}, ErrExcessPadding},
		{[]byte{32}, ErrInvalidValue},
		{[]byte{0, 1, 200}, ErrInvalidValue},
	}
	for _, tt := range tests {
		_, err := GroupsToBytes(tt.groups, true)
		if err == nil {
			t.Errorf("GroupsToBytes(%v, true) succeeded, want %v", tt.groups, tt.want)
			continue
		}
		if errors.Cause(err) != tt.want {
			t.Errorf("GroupsToBytes(%v, true) = %v, want %v", tt.groups, err, tt.want)
		}
	}
}

func TestGroupsToBytesNonStrict(t *testing.T) {
	tests := []struct {
		groups []byte
		want   []byte
	}{
		{[]byte{31, 31}, []byte{0xFF}},
		{[]byte{0}, []byte{}},
		{[]byte{31, 31, 0}, []byte{0xFF}},
	}
	for _, tt := range tests {
		got, err := GroupsToBytes(tt.groups, false)
		if err != nil {
			t.Errorf("GroupsToBytes(%v, false) failed: %v", tt.groups, err)
			continue
		}
		if !bytes.Equal(got, tt.want) {
			t.Errorf("GroupsToBytes(%v, false) = %v, want %v", tt.groups, got, tt.want)
		}
	}
}
