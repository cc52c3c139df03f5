// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rsatrapdoor provides the raw RSA permutation used to glue an
// OAEP-encoded message block to a demonstration RSA keypair.
//
// This is explicitly NOT part of the OAEP transform itself: raw RSA
// modular exponentiation is assumed to be provided by the caller. This
// package exists only so the
// demo binary can show a full encrypt/decrypt round trip
// without reaching into crypto/rsa's unexported internals.
package rsatrapdoor

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"math/big"
)

var bigOne = big.NewInt(1)

// Encrypt applies the public RSA permutation m^e mod n to em, the OAEP
// encoded message block, and returns a fixed-length big-endian ciphertext.
func Encrypt(pub *rsa.PublicKey, em []byte) ([]byte, error) {
	if pub.N.Sign() == 0 {
		return nil, rsa.ErrDecryption
	}
	m := new(big.Int).SetBytes(em)
	if m.Cmp(pub.N) >= 0 {
		return nil, errors.New("rsatrapdoor: message representative out of range")
	}
	e := big.NewInt(int64(pub.E))
	c := new(big.Int).Exp(m, e, pub.N)
	return c.FillBytes(make([]byte, pub.Size())), nil
}

// Decrypt applies the private RSA permutation c^d mod n, blinded to avoid
// a timing side channel on d, and returns the recovered fixed-length
// encoded message block.
func Decrypt(priv *rsa.PrivateKey, ciphertext []byte) ([]byte, error) {
	c := new(big.Int).SetBytes(ciphertext)
	if priv.N.Sign() == 0 || c.Cmp(priv.N) >= 0 {
		return nil, rsa.ErrDecryption
	}

	// Blinding multiplies c by r^e before decrypting, then divides the
	// factor of r back out: (m^e * r^e)^d = m*r (mod n).
	var r, rInv *big.Int
	for {
		var err error
		r, err = rand.Int(rand.Reader, priv.N)
		if err != nil {
			return nil, err
		}
		if r.Sign() == 0 {
			r = bigOne
		}
		rInv = new(big.Int).ModInverse(r, priv.N)
		if rInv != nil {
			break
		}
	}

	e := big.NewInt(int64(priv.E))
	rPowE := new(big.Int).Exp(r, e, priv.N)
	blinded := new(big.Int).Mul(c, rPowE)
	blinded.Mod(blinded, priv.N)

	m := new(big.Int).Exp(blinded, priv.D, priv.N)
	m.Mul(m, rInv)
	m.Mod(m, priv.N)

	return m.FillBytes(make([]byte, priv.Size())), nil
}
