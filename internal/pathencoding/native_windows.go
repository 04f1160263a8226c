//go:build windows

package pathencoding

import "unicode/utf8"

// UnitBits is the width of a native path unit on this platform.
const UnitBits = 16

// Encode encodes a native path. Path strings hold UTF-16 units in WTF-8
// form; escaped tokens carry the units themselves, big-endian.
//
// Decode(Encode(s)) == s holds for every string that is valid WTF-8, which
// includes every path the OS returns. Bytes outside WTF-8 have no UTF-16
// form and are encoded as U+FFFD, so such strings do not round-trip.
func Encode(path string) string {
	if utf8.ValidString(path) && !NeedsEscaping(path) {
		return path
	}
	return escape(wideToBytes(wtf8ToWide(path)))
}

// Decode decodes a token produced by Encode.
func Decode(token string) (string, error) {
	if !IsEscaped(token) {
		return token, nil
	}
	units, err := DecodeWide(token)
	if err != nil {
		return "", err
	}
	return wideToWTF8(units), nil
}
