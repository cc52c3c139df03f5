package sm2

import "errors"

var (
	// ErrRandomFailure is returned when the secure RNG cannot produce a
	// scalar for signing.
	ErrRandomFailure = errors.New("sm2: random source failed")

	// ErrBadSignature is returned by verification when (r, s) fails a
	// range check or the signing equation.
	ErrBadSignature = errors.New("sm2: signature rejected")

	// ErrInvalidEncoding is returned when the DER re-encoding of a parsed
	// (r, s) does not reproduce the input byte-for-byte.
	ErrInvalidEncoding = errors.New("sm2: non-canonical signature encoding")

	// ErrDigestFailure is returned when the ZA step fails: the user
	// identity is too long for ENTLA's 16-bit length field, or the hash
	// reports a non-positive digest size. Hash write errors are not
	// checked.
	ErrDigestFailure = errors.New("sm2: digest computation failed")

	// ErrSignRetryExhausted is returned when the signing loop's defensive
	// iteration cap is reached without producing a valid (r, s).
	ErrSignRetryExhausted = errors.New("sm2: exhausted retry budget without a valid signature")

	// ErrBadKey is returned when 1 + dA ≡ 0 (mod n), which makes the
	// signing equation's modular inverse undefined.
	ErrBadKey = errors.New("sm2: private key is degenerate (1 + d ≡ 0 mod n)")
)
