/*
Package oaep implements the RSA-OAEP message encoding and decoding
transform from RFC 8017 (PKCS #1 v2.2) section 7.1: the encode/decode
steps applied before and after the RSA trapdoor permutation, plus the
MGF1 mask generation function they're both built on.

This package does not perform RSA modular exponentiation itself — the
trapdoor permutation is assumed to be provided by the caller (for example
crypto/rsa, or this module's own internal/rsatrapdoor used by the demo
binary). Encode produces an encoded message block EM of exactly emLen
bytes with a leading 0x00 byte, ready to be interpreted as the RSA message
representative:

	em, err := oaep.Encode(sha256.New(), sha256.New(), []byte("hello"), nil, pubKey.Size(), rand.Reader)
	if err != nil {
	    return err
	}
	c, err := rsatrapdoor.Encrypt(pubKey, em)

Decode reverses the transform in constant time with respect to the
ciphertext and recovered plaintext: every internal check is accumulated
into a single "bad" flag and collapsed to one error only at the end, so a
chosen-ciphertext attacker cannot use timing or distinct error values to
mount a Manger-style padding oracle attack.

# Sources

This is a from-scratch reimplementation of RFC 8017 section 7.1.1/7.1.2,
cross-checked against mmussomele/crypto's rsa package (MGF1 and OAEP
encode/decode shape) and against crypto/rsa's own OAEP decoder
(constant-time accumulate-then-collapse discipline).
*/
package oaep
