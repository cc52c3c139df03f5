package oaep

import (
	"crypto/subtle"
	"hash"
)

// Decode reverses the OAEP transform, recovering the plaintext embedded in
// em by a prior call to Encode, per RFC 8017 section 7.1.2.
//
// Length convention: k is the RSA modulus size in bytes (emLen_modulus).
// em is the (k-1)-byte block obtained after
// the caller has already stripped the RSA message representative's
// conceptual leading 0x00 byte. internal/rsatrapdoor.Decrypt returns the
// full k-byte block, so its output is passed from index 1 onwards. If em
// is shorter than k-1 bytes (leading zero bytes were lost to big.Int's
// byte encoding), Decode left-pads it with zeros into a fixed k-1-byte
// buffer; an em longer than k-1 bytes is a decoding failure, reported
// only through the final accept/reject decision rather than an early
// return.
//
// maxLen bounds the caller's output buffer: once the plaintext has been
// recovered, Decode additionally rejects a plaintext longer than maxLen
// with ErrDataTooLarge. Pass a negative maxLen
// to accept any length. This check runs after, and independently of, the
// constant-time accept/reject decision below — it is a buffer-capacity
// check, not a padding-oracle-sensitive one.
//
// The entire accept/reject decision is constant-time with respect to em's
// contents and the position of the recovered plaintext within it: every
// check sets a single "bad" flag instead of returning early, and the flag
// is only consulted once, at the very end.
func Decode(h, mgfHash hash.Hash, em, label []byte, k int, maxLen int) ([]byte, error) {
	if mgfHash == nil {
		mgfHash = h
	}
	hLen := h.Size()

	// This check depends only on the modulus length, never on secret
	// data, so an early return here leaks nothing an attacker doesn't
	// already know.
	if k < 2*hLen+2 {
		return nil, ErrDecoding
	}

	dbLen := k - 1 - hLen

	// Copy em into a fixed-size buffer of exactly k-1 bytes, right-aligned,
	// regardless of how many leading zero bytes em itself has. flen/lzero
	// track the caller-observed length without ever branching on it after
	// this point.
	buf := make([]byte, k-1)
	flen := len(em)
	if flen > k-1 {
		flen = k - 1
	}
	lzero := k - 1 - flen
	copy(buf[lzero:], em[len(em)-flen:])

	invalid := 0
	if len(em) > k-1 {
		invalid = 1
	}

	maskedSeed := buf[:hLen]
	maskedDB := buf[hLen:]

	seed := make([]byte, hLen)
	copy(seed, maskedSeed)
	if err := mgf1XOR(seed, mgfHash, maskedDB); err != nil {
		return nil, ErrDecoding
	}

	db := make([]byte, dbLen)
	copy(db, maskedDB)
	if err := mgf1XOR(db, mgfHash, seed); err != nil {
		return nil, ErrDecoding
	}

	h.Reset()
	h.Write(label)
	expectedLHash := h.Sum(nil)

	lHashGood := subtle.ConstantTimeCompare(db[:hLen], expectedLHash)

	// Constant-time scan for the 0x01 separator: "looking" stays 1 until
	// the first 0x01 byte is seen, at which point index latches; any
	// other nonzero byte seen while still looking marks the message
	// invalid.
	looking := 1
	index := 0
	invalidPS := 0
	for i := hLen; i < len(db); i++ {
		equals0 := subtle.ConstantTimeByteEq(db[i], 0)
		equals1 := subtle.ConstantTimeByteEq(db[i], 1)
		index = subtle.ConstantTimeSelect(looking&equals1, i, index)
		looking = subtle.ConstantTimeSelect(looking&equals1, 0, looking)
		invalidPS = subtle.ConstantTimeSelect(looking&(1-equals0), 1, invalidPS)
	}

	bad := 0
	bad = subtle.ConstantTimeSelect(invalid, 1, bad)
	bad = subtle.ConstantTimeSelect(1-lHashGood, 1, bad)
	bad = subtle.ConstantTimeSelect(invalidPS, 1, bad)
	bad = subtle.ConstantTimeSelect(looking, 1, bad) // never found the 0x01 separator

	zero(seed)

	if bad != 0 {
		zero(db)
		return nil, ErrDecoding
	}

	plainLen := len(db) - index - 1
	if maxLen >= 0 && plainLen > maxLen {
		zero(db)
		return nil, ErrDataTooLarge
	}

	msg := make([]byte, plainLen)
	copy(msg, db[index+1:])
	zero(db)

	return msg, nil
}
