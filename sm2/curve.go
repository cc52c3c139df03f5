package sm2

import (
	"crypto/elliptic"
	"math/big"

	"github.com/emmansun/gmsm/sm2/sm2ec"
)

// curve returns the sm2p256v1 group: scalar multiplication,
// affine-coordinate extraction, and an identity test, all supplied by
// emmansun/gmsm's constant-time implementation rather than hand-rolled
// here.
func curve() elliptic.Curve {
	return sm2ec.P256()
}

// isIdentity reports whether (x, y) is the point at infinity, represented
// by gmsm (and the standard library's elliptic.Curve convention) as
// (0, 0).
func isIdentity(x, y *big.Int) bool {
	return x.Sign() == 0 && y.Sign() == 0
}
