package pathencoding

import (
	"errors"
	"fmt"
)

// ErrMalformedPayload indicates an escaped token whose payload is not valid
// base64 or does not describe a whole number of path units.
var ErrMalformedPayload = errors.New("malformed payload")

// DecodeError reports a token that carries the Sentinel prefix but cannot
// be decoded back to a path.
type DecodeError struct {
	Token string // The offending token
	Err   error  // The underlying error, wraps ErrMalformedPayload
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode path token %q: %v", e.Token, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func malformed(token string, format string, args ...any) error {
	return &DecodeError{
		Token: token,
		Err:   fmt.Errorf("%w: "+format, append([]any{ErrMalformedPayload}, args...)...),
	}
}
