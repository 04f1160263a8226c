//go:build !windows

package pathencoding

// UnitBits is the width of a native path unit on this platform.
const UnitBits = 8

// Encode encodes a native path. Here a path's units are the bytes of the
// string, so a safe path is returned unchanged without copying.
func Encode(path string) string {
	return encodeString(path)
}

// Decode decodes a token produced by Encode.
func Decode(token string) (string, error) {
	if !IsEscaped(token) {
		return token, nil
	}
	raw, err := decodePayload(token)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
