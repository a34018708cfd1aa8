// Package dleq implements a non-interactive zero-knowledge proof (NIZK) of
// equality of discrete logarithms, also known as a Chaum-Pedersen proof.
//
// Given four group elements (g, h, g_x, h_x), a prover knowing x such that
// g_x = g^x and h_x = h^x convinces a verifier that the same exponent x
// satisfies both relations, without revealing x. The interactive protocol is
// made non-interactive with the Fiat-Shamir transform: the verifier's random
// challenge is replaced by a hash of the protocol transcript.
//
// The protocol logic is curve-agnostic. It is expressed over the GroupElement
// and Scalar capabilities, satisfied by the G1Affine and fr.Element types of
// the gnark-crypto curve packages; see the per-curve sub-packages for concrete
// instantiations.
package dleq

import (
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/sha3"
)

// domainProofOfDLEqChallenge separates the challenge oracle from any other use
// of the hash function. Changing it invalidates all previously issued proofs.
const domainProofOfDLEqChallenge = "blsttc-zk-proof-of-dleq-challenge"

var (
	// ErrInvalidProof is returned when the recomputed challenge does not match
	// the proof. This is the normal rejection outcome for a forged or corrupted
	// proof.
	ErrInvalidProof = errors.New("dleq: invalid proof")

	// ErrInvalidInstance is returned for structurally degenerate statements,
	// for which the equality relation is vacuous or trivially forgeable.
	ErrInvalidInstance = errors.New("dleq: invalid instance")
)

// GroupElement describes the operations the protocol needs from a point in a
// prime-order subgroup: group law, scalar multiplication, equality and a
// fixed-length canonical byte encoding. *G1Affine of the gnark-crypto curve
// packages satisfies it.
type GroupElement[G1El any] interface {
	*G1El
	Add(a, b *G1El) *G1El
	ScalarMultiplication(a *G1El, s *big.Int) *G1El
	Equal(a *G1El) bool
	IsInfinity() bool
	Marshal() []byte
}

// Scalar describes the operations the protocol needs from an element of the
// scalar field: ring arithmetic, equality, conversion to a big.Int for scalar
// multiplication, a fixed-length canonical encoding and its strict inverse.
// *fr.Element of the gnark-crypto curve packages satisfies it.
type Scalar[FrEl any] interface {
	*FrEl
	Mul(x, y *FrEl) *FrEl
	Sub(x, y *FrEl) *FrEl
	Equal(x *FrEl) bool
	BigInt(v *big.Int) *big.Int
	Marshal() []byte
	SetBytesCanonical(b []byte) error
}

// Instance is the public statement "G_x and H_x have the same discrete log
// with respect to G and H": G_x = G^x and H_x = H^x for a single secret x.
// G and H must be distinct generators of the same prime-order subgroup; see
// Validate.
type Instance[G1El any] struct {
	G, H, GX, HX G1El
}

// Witness is the prover's secret data: the exponent X whose equality is being
// proven, and the commitment randomness R consumed by one call to Prove.
//
// R must be drawn uniformly at random and must never be reused across proofs:
// two proofs sharing the same R reveal X through the standard two-transcript
// attack. A Witness is never serialized.
type Witness[FrEl any] struct {
	X, R FrEl
}

// Proof is a NIZK proof of equality of discrete logs: the Fiat-Shamir
// challenge C and the prover's response S. It is the only artifact exchanged
// between prover and verifier and reveals nothing about the witness.
type Proof[FrEl any] struct {
	C, S FrEl
}

// Challenge is the Fiat-Shamir oracle. It deterministically maps the protocol
// transcript (g, g_x, h, h_x) plus the commitments (g_k, h_k) to one scalar:
// the transcript bytes are the labelled canonical encodings of the six
// elements followed by a domain-separation tag, their SHA3-256 digest seeds a
// SHAKE256 stream, and the scalar is drawn from that stream by rejection
// sampling.
//
// Identical transcripts always yield identical scalars; prover and verifier
// rely on this to derive bit-identical challenges.
func Challenge[G1El, FrEl any, PtEl GroupElement[G1El], PtFr Scalar[FrEl]](g, gx, h, hx, gk, hk *G1El) FrEl {
	transcript := []struct {
		label string
		point *G1El
	}{
		{"g-value", g},
		{"g_x", gx},
		{"h-value", h},
		{"h_x", hx},
		{"g_k", gk},
		{"h_k", hk},
	}

	var buf []byte
	for _, entry := range transcript {
		buf = append(buf, entry.label...)
		buf = append(buf, PtEl(entry.point).Marshal()...)
	}
	buf = append(buf, domainProofOfDLEqChallenge...)

	seed := sha3.Sum256(buf)
	prg := sha3.NewShake256()
	prg.Write(seed[:])

	var c FrEl
	chunk := make([]byte, len(PtFr(&c).Marshal()))
	for {
		// the sponge reader always fills chunk and never errors
		_, _ = prg.Read(chunk)
		if err := PtFr(&c).SetBytesCanonical(chunk); err == nil {
			return c
		}
	}
}

// Validate rejects structurally degenerate statements: a generator equal to
// the group identity, or G == H, which would make the equality relation
// vacuous. It does not (and cannot) check that the caller-supplied generators
// have an unknown discrete-log relation.
func Validate[G1El any, PtEl GroupElement[G1El]](instance *Instance[G1El]) error {
	if PtEl(&instance.G).IsInfinity() || PtEl(&instance.H).IsInfinity() {
		return fmt.Errorf("%w: generator is the group identity", ErrInvalidInstance)
	}
	if PtEl(&instance.G).Equal(&instance.H) {
		return fmt.Errorf("%w: g and h must be distinct", ErrInvalidInstance)
	}
	return nil
}

// Prove generates a proof that instance.GX and instance.HX share the discrete
// log witness.X. It commits with k = witness.R, derives the challenge
// c = Challenge(g, g_x, h, h_x, g^k, h^k) and responds with s = k - c·x.
//
// Prove draws no randomness and performs no checks: a witness that does not
// satisfy the instance yields a proof that fails verification, and a reused
// witness.R leaks the secret (see Witness). Callers are responsible for both.
func Prove[G1El, FrEl any, PtEl GroupElement[G1El], PtFr Scalar[FrEl]](instance *Instance[G1El], witness *Witness[FrEl]) *Proof[FrEl] {
	var k big.Int
	PtFr(&witness.R).BigInt(&k)

	var gk, hk G1El
	PtEl(&gk).ScalarMultiplication(&instance.G, &k)
	PtEl(&hk).ScalarMultiplication(&instance.H, &k)

	c := Challenge[G1El, FrEl, PtEl, PtFr](&instance.G, &instance.GX, &instance.H, &instance.HX, &gk, &hk)

	// s = k - c·x
	var s FrEl
	PtFr(&s).Mul(&c, &witness.X)
	PtFr(&s).Sub(&witness.R, &s)

	return &Proof[FrEl]{C: c, S: s}
}

// Verify checks that proof is consistent with instance. It reconstructs the
// candidate commitments g_k' = g^s + g_x^c and h_k' = h^s + h_x^c, recomputes
// the challenge over them and accepts iff it equals proof.C.
//
// It returns nil on success, ErrInvalidInstance for degenerate statements
// (see Validate) and ErrInvalidProof on challenge mismatch. Verification
// failure is a mathematical fact about the (instance, proof) pair, not a
// transient condition.
func Verify[G1El, FrEl any, PtEl GroupElement[G1El], PtFr Scalar[FrEl]](instance *Instance[G1El], proof *Proof[FrEl]) error {
	if err := Validate[G1El, PtEl](instance); err != nil {
		return err
	}

	var c, s big.Int
	PtFr(&proof.C).BigInt(&c)
	PtFr(&proof.S).BigInt(&s)

	// g_k' = g^s + g_x^c
	var t, gk, hk G1El
	PtEl(&gk).ScalarMultiplication(&instance.G, &s)
	PtEl(&t).ScalarMultiplication(&instance.GX, &c)
	PtEl(&gk).Add(&gk, &t)

	// h_k' = h^s + h_x^c
	PtEl(&hk).ScalarMultiplication(&instance.H, &s)
	PtEl(&t).ScalarMultiplication(&instance.HX, &c)
	PtEl(&hk).Add(&hk, &t)

	cPrime := Challenge[G1El, FrEl, PtEl, PtFr](&instance.G, &instance.GX, &instance.H, &instance.HX, &gk, &hk)

	if !PtFr(&cPrime).Equal(&proof.C) {
		return ErrInvalidProof
	}
	return nil
}
