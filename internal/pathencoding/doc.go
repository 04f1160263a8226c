// Package pathencoding converts filesystem paths to printable, line-safe
// tokens and back.
//
// A path is treated as an opaque sequence of platform path units: bytes on
// Unix-like systems, UTF-16 code units on Windows. Paths whose units form
// valid text without control characters are stored verbatim. Every other
// path is stored as an escaped token: the Sentinel prefix followed by the
// standard, padded base64 rendering of the path's raw bytes. 16-bit units
// are rendered big-endian so tokens are portable between machines.
// Printable text that already begins with Sentinel is the one exception to
// verbatim output: it is escaped, so NeedsEscaping("//b64_x") is true.
//
// Key properties:
//   - Reversibility: Decode(Encode(p)) == p for every path, bit for bit
//   - Line safety: tokens never contain control characters
//   - Unambiguity: a verbatim token never starts with Sentinel
//   - Zero copy: a safe path is returned as the same string
//
// Example Usage:
//
//	token := pathencoding.Encode(path)
//	// ... persist token on its own line ...
//	path, err := pathencoding.Decode(token)
//	if errors.Is(err, pathencoding.ErrMalformedPayload) {
//	    // the line was edited by hand; skip it
//	}
package pathencoding
