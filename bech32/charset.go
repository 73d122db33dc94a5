package bech32

// charset is the fixed 32-symbol data alphabet; the index of a symbol is its
// 5-bit value. The characters 1, b, i and o are deliberately absent.
const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// charsetRev maps an ASCII code to its 5-bit value, 0xFF for codes outside
// the alphabet.
var charsetRev = func() [128]byte {
	var rev [128]byte
	for i := range rev {
		rev[i] = 0xFF
	}
	for i := 0; i < len(charset); i++ {
		rev[charset[i]] = byte(i)
	}
	return rev
}()

func symbolOf(v byte) byte {
	return charset[v]
}

// valueOf folds uppercase letters to lowercase before the lookup.
func valueOf(c byte) (byte, error) {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	if c >= 128 || charsetRev[c] == 0xFF {
		return 0, ErrInvalidCharacter
	}
	return charsetRev[c], nil
}
