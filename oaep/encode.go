package oaep

import (
	"hash"
	"io"
)

// Encode produces an OAEP-encoded message block EM of exactly emLen bytes,
// per RFC 8017 section 7.1.1.
//
//   - h is the label-hash, used both for lHash and, when mgfHash is nil, as
//     the MGF1 hash. mgfHash lets the caller use a different hash inside
//     MGF1 than the one used to digest the label, since they may
//     legitimately differ.
//   - label may be nil or empty; it is still hashed (the hash of the empty
//     string) and bound into the encoding.
//   - emLen is the full output length (the RSA modulus size in bytes,
//     including the leading 0x00 this function writes itself).
//   - random supplies the hLen-byte seed; it must be a cryptographically
//     secure source.
func Encode(h, mgfHash hash.Hash, msg, label []byte, emLen int, random io.Reader) ([]byte, error) {
	if mgfHash == nil {
		mgfHash = h
	}
	hLen := h.Size()

	if emLen < 2*hLen+2 {
		return nil, ErrKeySizeTooSmall
	}
	if len(msg) > emLen-2*hLen-2 {
		return nil, ErrMessageTooLarge
	}

	h.Reset()
	h.Write(label)
	lHash := h.Sum(nil)

	// DB = lHash || PS || 0x01 || msg, where PS is the zero padding that
	// fills out the rest of the hLen-byte-short block.
	db := make([]byte, emLen-hLen-1)
	copy(db, lHash)
	db[len(db)-len(msg)-1] = 0x01
	copy(db[len(db)-len(msg):], msg)

	seed := make([]byte, hLen)
	if _, err := io.ReadFull(random, seed); err != nil {
		return nil, err
	}

	if err := mgf1XOR(db, mgfHash, seed); err != nil {
		return nil, err
	}
	maskedDB := db

	seedMask, err := MGF1(mgfHash, maskedDB, hLen)
	if err != nil {
		return nil, err
	}
	maskedSeed := seed
	for i := range maskedSeed {
		maskedSeed[i] ^= seedMask[i]
	}

	em := make([]byte, emLen)
	em[0] = 0x00
	copy(em[1:1+hLen], maskedSeed)
	copy(em[1+hLen:], maskedDB)

	zero(seed)
	zero(db)

	return em, nil
}

// zero overwrites b with zeros; used to scrub transient buffers that held
// the seed or a data block before they go out of scope, since they may
// have held key-derived material.
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
