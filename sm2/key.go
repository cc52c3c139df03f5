package sm2

import (
	"crypto/elliptic"
	"io"
	"math/big"

	"github.com/bastionzero/oaepsm2/internal/bigmath"
)

// PublicKey is an SM2 public point PA = [dA]G on sm2p256v1.
type PublicKey struct {
	X, Y *big.Int
}

// PrivateKey is an SM2 key pair; D is the private scalar dA and PublicKey
// is PA = [dA]G. Key generation is provided for test and demonstration
// convenience — key serialization, PEM encoding, and certificate handling
// remain out of scope.
type PrivateKey struct {
	PublicKey
	D *big.Int
}

// GenerateKey samples a fresh SM2 key pair using random as the secure
// entropy source.
func GenerateKey(random io.Reader) (*PrivateKey, error) {
	c := curve()
	n := c.Params().N

	d, err := bigmath.RandRange(random, n)
	if err != nil {
		return nil, ErrRandomFailure
	}

	x, y := c.ScalarBaseMult(d.Bytes())
	return &PrivateKey{
		PublicKey: PublicKey{X: x, Y: y},
		D:         d,
	}, nil
}

// coordLen returns the byte length of an affine coordinate on the curve,
// 32 for sm2p256v1.
func coordLen(c elliptic.Curve) int {
	return (c.Params().BitSize + 7) / 8
}
