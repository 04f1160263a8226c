package pathencoding

import (
	"unicode/utf16"
	"unicode/utf8"
)

// wideToWTF8 converts UTF-16 units to a string. Paired surrogates become
// ordinary UTF-8; an unpaired surrogate is written as its three-byte
// generalized UTF-8 sequence (WTF-8), so no unit is lost.
func wideToWTF8(units []uint16) string {
	buf := make([]byte, 0, len(units))
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case isHighSurrogate(u) && i+1 < len(units) && isLowSurrogate(units[i+1]):
			buf = utf8.AppendRune(buf, utf16.DecodeRune(rune(u), rune(units[i+1])))
			i++
		case isHighSurrogate(u) || isLowSurrogate(u):
			buf = append(buf, 0xe0|byte(u>>12), 0x80|byte(u>>6)&0x3f, 0x80|byte(u)&0x3f)
		default:
			buf = utf8.AppendRune(buf, rune(u))
		}
	}
	return string(buf)
}

// wtf8ToWide is the inverse of wideToWTF8. Bytes that are neither UTF-8 nor
// an encoded surrogate become U+FFFD.
func wtf8ToWide(s string) []uint16 {
	units := make([]uint16, 0, len(s))
	for i := 0; i < len(s); {
		if u, ok := surrogateAt(s, i); ok {
			units = append(units, u)
			i += 3
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		units = utf16.AppendRune(units, r)
		i += size
	}
	return units
}

// surrogateAt decodes a three-byte encoded surrogate (ED A0..BF 80..BF)
// starting at s[i].
func surrogateAt(s string, i int) (uint16, bool) {
	if i+3 > len(s) {
		return 0, false
	}
	b0, b1, b2 := s[i], s[i+1], s[i+2]
	if b0 != 0xed || b1 < 0xa0 || b1 > 0xbf || b2&0xc0 != 0x80 {
		return 0, false
	}
	return 0xd000 | uint16(b1&0x3f)<<6 | uint16(b2&0x3f), true
}
