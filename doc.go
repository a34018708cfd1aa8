// Package blsttc provides a non-interactive zero-knowledge proof of equality
// of discrete logarithms (DLEQ, Chaum-Pedersen), made non-interactive with
// the Fiat-Shamir transform.
//
// The protocol core lives in the dleq package; concrete instantiations over
// the G1 groups of the supported curves live in the dleq sub-packages:
//   - BLS12_381
//   - BN254
//
// See the dleq package documentation for the proof semantics and the caller
// obligations around commitment randomness.
package blsttc

import (
	"github.com/blang/semver/v4"
	"github.com/consensys/gnark-crypto/ecc"
)

// Version of the library
var Version = semver.MustParse("0.1.0")

// Curves returns the curves the DLEQ proof system is instantiated over
func Curves() []ecc.ID {
	return []ecc.ID{
		ecc.BLS12_381,
		ecc.BN254,
	}
}
