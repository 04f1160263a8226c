package pathencoding

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"
)

// Sentinel marks an escaped token. It is followed immediately by the
// base64 payload. Verbatim tokens never start with it (see NeedsEscaping).
const Sentinel = "//b64_"

// payloadEncoding is used for every payload so that tokens written by one
// build are readable by any other. Strict mode rejects non-canonical
// padding bits, which keeps the token for a given path unique.
var payloadEncoding = base64.StdEncoding.Strict()

// EncodeBytes encodes a path made of 8-bit units.
func EncodeBytes(units []byte) string {
	if utf8.Valid(units) {
		text := string(units)
		if !NeedsEscaping(text) {
			return text
		}
	}
	return escape(units)
}

// DecodeBytes decodes a token produced by EncodeBytes.
func DecodeBytes(token string) ([]byte, error) {
	if !IsEscaped(token) {
		return []byte(token), nil
	}
	return decodePayload(token)
}

// EncodeWide encodes a path made of 16-bit units. Units that do not form
// valid UTF-16 (unpaired surrogates) force an escaped token.
func EncodeWide(units []uint16) string {
	if text, ok := wideToText(units); ok && !NeedsEscaping(text) {
		return text
	}
	return escape(wideToBytes(units))
}

// DecodeWide decodes a token produced by EncodeWide.
func DecodeWide(token string) ([]uint16, error) {
	if !IsEscaped(token) {
		return textToWide(token), nil
	}
	raw, err := decodePayload(token)
	if err != nil {
		return nil, err
	}
	units, ok := bytesToWide(raw)
	if !ok {
		return nil, malformed(token, "odd payload length %d for 16-bit units", len(raw))
	}
	return units, nil
}

// IsEscaped reports whether token is an escaped token rather than a
// verbatim path.
func IsEscaped(token string) bool {
	return strings.HasPrefix(token, Sentinel)
}

// encodeString encodes a path held in a string whose bytes are the path's
// 8-bit units. A safe path is returned as the same string.
func encodeString(path string) string {
	if utf8.ValidString(path) && !NeedsEscaping(path) {
		return path
	}
	return escape([]byte(path))
}

func escape(raw []byte) string {
	var b strings.Builder
	b.Grow(len(Sentinel) + payloadEncoding.EncodedLen(len(raw)))
	b.WriteString(Sentinel)
	b.WriteString(payloadEncoding.EncodeToString(raw))
	return b.String()
}

// decodePayload strips the Sentinel and decodes the remainder.
func decodePayload(token string) ([]byte, error) {
	payload := token[len(Sentinel):]

	// The base64 decoder silently skips CR and LF; a payload carrying them
	// has been edited and is rejected rather than reinterpreted.
	if strings.ContainsAny(payload, "\r\n") {
		return nil, malformed(token, "line break in payload")
	}

	raw, err := payloadEncoding.DecodeString(payload)
	if err != nil {
		return nil, malformed(token, "%v", err)
	}
	return raw, nil
}
