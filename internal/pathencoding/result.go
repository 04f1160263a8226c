package pathencoding

// Result describes how a single path was encoded.
type Result struct {
	Token          string // The token ready to be written on its own line
	Escaped        bool   // Whether the token is an escaped token
	OriginalLength int    // Length of the path in bytes
	EncodedLength  int    // Length of the token in bytes
}

// Analyze encodes path and reports how it was encoded.
func Analyze(path string) Result {
	token := Encode(path)
	return Result{
		Token:          token,
		Escaped:        IsEscaped(token),
		OriginalLength: len(path),
		EncodedLength:  len(token),
	}
}

// ExpansionRatio returns EncodedLength / OriginalLength, or 0 for an empty
// path.
func (r Result) ExpansionRatio() float64 {
	if r.OriginalLength == 0 {
		return 0
	}
	return float64(r.EncodedLength) / float64(r.OriginalLength)
}
