package bech32

// Generator words of the checksum polynomial.
var generator = [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

// checksumTarget is the value the polymod accumulator takes over a correctly
// checksummed value sequence.
const checksumTarget = 1

// checksumLength is the number of trailing checksum values in the data part.
const checksumLength = 6

// hrpExpand folds the prefix into the checksum value domain: the high bits of
// every character, a zero, then the low bits of every character.
func hrpExpand(hrp string) []byte {
	exp := make([]byte, 0, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		exp = append(exp, hrp[i]>>5)
	}
	exp = append(exp, 0)
	for i := 0; i < len(hrp); i++ {
		exp = append(exp, hrp[i]&31)
	}
	return exp
}

// polymod runs the BCH shift register over values and returns the raw
// 30-bit accumulator.
func polymod(values []byte) uint32 {
	chk := uint32(1)
	for _, v := range values {
		top := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := uint(0); i < 5; i++ {
			if (top>>i)&1 != 0 {
				chk ^= generator[i]
			}
		}
	}
	return chk
}

// VerifyChecksum reports whether data, whose last six values are the checksum,
// passes under hrp. The raw accumulator value is returned alongside the
// verdict for diagnostic callers.
func VerifyChecksum(hrp string, data []byte) (bool, uint32) {
	chk := polymod(append(hrpExpand(hrp), data...))
	return chk == checksumTarget, chk
}

// appendChecksum returns payload extended with its six checksum values,
// most significant group first.
func appendChecksum(hrp string, payload []byte) []byte {
	values := append(hrpExpand(hrp), payload...)
	values = append(values, 0, 0, 0, 0, 0, 0)
	pm := polymod(values) ^ checksumTarget
	out := append(make([]byte, 0, len(payload)+checksumLength), payload...)
	for i := 0; i < checksumLength; i++ {
		out = append(out, byte(pm>>uint(5*(5-i)))&31)
	}
	return out
}
