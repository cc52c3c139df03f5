// Package sm2 implements the SM2 elliptic-curve signature scheme (GM/T
// 0003.2) over the 256-bit prime-field curve sm2p256v1: the user-identity
// pre-hash ZA, signature generation, and signature verification.
//
// Key serialization and certificate handling are out of scope; callers
// bring an existing *PrivateKey or *PublicKey, typically parsed elsewhere.
// GenerateKey is provided for tests and demonstrations. The elliptic-curve group operations themselves come
// from github.com/emmansun/gmsm's constant-time SM2 curve implementation,
// the same collaborator relationship the OAEP package has with the raw
// RSA permutation in internal/rsatrapdoor.
//
//	key, _ := sm2.GenerateKey(rand.Reader)
//	r, s, err := sm2.SignMessage(rand.Reader, key, sm3.New, []byte("1234567812345678"), []byte("message digest"))
//	ok := sm2.VerifyMessage(&key.PublicKey, sm3.New, []byte("1234567812345678"), []byte("message digest"), r, s)
//
// # Sources
//
// The ZA composition and the DER canonicalization check on the verify
// path are grounded on dromara/dongle's internal/sm2 package; the
// signing and verification equations follow GM/T 0003.2 directly.
package sm2
