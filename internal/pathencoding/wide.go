package pathencoding

import "unicode/utf16"

const (
	surrHigh = 0xd800
	surrLow  = 0xdc00
	surrEnd  = 0xe000
)

// wideToBytes renders each unit as two bytes, most significant first.
func wideToBytes(units []uint16) []byte {
	raw := make([]byte, 0, len(units)*2)
	for _, u := range units {
		raw = append(raw, byte(u>>8), byte(u))
	}
	return raw
}

// bytesToWide is the inverse of wideToBytes. It fails only when raw has an
// odd length.
func bytesToWide(raw []byte) ([]uint16, bool) {
	if len(raw)%2 != 0 {
		return nil, false
	}
	units := make([]uint16, len(raw)/2)
	for i := range units {
		units[i] = uint16(raw[2*i])<<8 | uint16(raw[2*i+1])
	}
	return units, true
}

// wideToText interprets units as UTF-16. It reports false when the units
// contain an unpaired surrogate; that is a classification outcome, not an
// error.
func wideToText(units []uint16) (string, bool) {
	for i := 0; i < len(units); i++ {
		switch u := units[i]; {
		case isHighSurrogate(u):
			if i+1 >= len(units) || !isLowSurrogate(units[i+1]) {
				return "", false
			}
			i++
		case isLowSurrogate(u):
			return "", false
		}
	}
	return string(utf16.Decode(units)), true
}

// textToWide converts text to UTF-16 units. Invalid UTF-8 bytes, which only
// appear in a hand-edited file, become U+FFFD.
func textToWide(text string) []uint16 {
	units := make([]uint16, 0, len(text))
	for _, r := range text {
		units = utf16.AppendRune(units, r)
	}
	return units
}

func isHighSurrogate(u uint16) bool {
	return u >= surrHigh && u < surrLow
}

func isLowSurrogate(u uint16) bool {
	return u >= surrLow && u < surrEnd
}
