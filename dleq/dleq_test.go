package dleq_test

import (
	"math/big"
	"testing"

	curve "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/naitik-supraoracles/blsttc-supra-for-moonshot/dleq"
)

type testInstance = dleq.Instance[curve.G1Affine]
type testWitness = dleq.Witness[fr.Element]

// newInstance builds the statement (g, h, g^x, h^x) over BLS12-381 G1, with h
// an independent generator obtained by hashing seed to the curve.
func newInstance(t *testing.T, x *fr.Element, seed string) *testInstance {
	t.Helper()

	_, _, g, _ := curve.Generators()
	h, err := curve.HashToG1([]byte(seed), []byte("BLSTTC-DLEQ-TEST_XMD:SHA-256_SSWU_RO_"))
	require.NoError(t, err)

	var xBig big.Int
	x.BigInt(&xBig)

	var instance testInstance
	instance.G = g
	instance.H = h
	instance.GX.ScalarMultiplication(&g, &xBig)
	instance.HX.ScalarMultiplication(&h, &xBig)
	return &instance
}

func genFr() gopter.Gen {
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		var elmt fr.Element
		if _, err := elmt.SetRandom(); err != nil {
			panic(err)
		}
		return gopter.NewGenResult(elmt, gopter.NoShrinker)
	}
}

func TestCompleteness(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20

	properties := gopter.NewProperties(parameters)

	properties.Property("verify(prove(instance, witness)) succeeds for all valid witnesses", prop.ForAll(
		func(x, r fr.Element) bool {
			instance := newInstance(t, &x, "completeness")
			witness := &testWitness{X: x, R: r}
			proof := dleq.Prove(instance, witness)
			return dleq.Verify(instance, proof) == nil
		},
		genFr(),
		genFr(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestChallengeDeterminism(t *testing.T) {
	assert := require.New(t)

	var x, k fr.Element
	x.SetUint64(42)
	k.SetUint64(99)
	instance := newInstance(t, &x, "determinism")

	var kBig big.Int
	k.BigInt(&kBig)
	var gk, hk curve.G1Affine
	gk.ScalarMultiplication(&instance.G, &kBig)
	hk.ScalarMultiplication(&instance.H, &kBig)

	c1 := dleq.Challenge[curve.G1Affine, fr.Element](&instance.G, &instance.GX, &instance.H, &instance.HX, &gk, &hk)
	c2 := dleq.Challenge[curve.G1Affine, fr.Element](&instance.G, &instance.GX, &instance.H, &instance.HX, &gk, &hk)
	assert.True(c1.Equal(&c2), "identical transcripts must yield identical challenges")

	// a different commitment changes the transcript, hence the challenge
	c3 := dleq.Challenge[curve.G1Affine, fr.Element](&instance.G, &instance.GX, &instance.H, &instance.HX, &hk, &gk)
	assert.False(c1.Equal(&c3))
}

func TestChallengeBindsEveryElement(t *testing.T) {
	assert := require.New(t)

	var x fr.Element
	x.SetUint64(7)
	instance := newInstance(t, &x, "binding")

	var gk, hk curve.G1Affine
	gk.Set(&instance.GX)
	hk.Set(&instance.HX)

	reference := dleq.Challenge[curve.G1Affine, fr.Element](&instance.G, &instance.GX, &instance.H, &instance.HX, &gk, &hk)

	// swapping any two distinct transcript positions must change the challenge
	swapped := dleq.Challenge[curve.G1Affine, fr.Element](&instance.H, &instance.GX, &instance.G, &instance.HX, &gk, &hk)
	assert.False(reference.Equal(&swapped))
}

// TestCommitmentReuseRevealsSecret documents why witness randomness must be
// fresh per proof: a prover reusing the same (x, r) against two different
// statements hands the secret to anyone holding both proofs, since
// s1 - s2 = (c2 - c1)·x.
func TestCommitmentReuseRevealsSecret(t *testing.T) {
	assert := require.New(t)

	var x, r fr.Element
	x.SetUint64(123456789)
	r.SetUint64(987654321)
	witness := &testWitness{X: x, R: r}

	instance1 := newInstance(t, &x, "first statement")
	instance2 := newInstance(t, &x, "second statement")

	proof1 := dleq.Prove(instance1, witness)
	proof2 := dleq.Prove(instance2, witness)

	assert.NoError(dleq.Verify(instance1, proof1))
	assert.NoError(dleq.Verify(instance2, proof2))

	// the adversary's computation: x = (s1 - s2) / (c2 - c1)
	var num, den, recovered fr.Element
	num.Sub(&proof1.S, &proof2.S)
	den.Sub(&proof2.C, &proof1.C)
	den.Inverse(&den)
	recovered.Mul(&num, &den)

	assert.True(recovered.Equal(&x), "commitment randomness reuse must leak the secret")
}

func TestValidate(t *testing.T) {
	assert := require.New(t)

	var x fr.Element
	x.SetUint64(7)
	instance := newInstance(t, &x, "validate")
	assert.NoError(dleq.Validate[curve.G1Affine](instance))

	// identity generator
	degenerate := *instance
	degenerate.G.X.SetZero()
	degenerate.G.Y.SetZero()
	assert.ErrorIs(dleq.Validate[curve.G1Affine](&degenerate), dleq.ErrInvalidInstance)

	// g == h makes the statement vacuous
	degenerate = *instance
	degenerate.H.Set(&degenerate.G)
	assert.ErrorIs(dleq.Validate[curve.G1Affine](&degenerate), dleq.ErrInvalidInstance)
}
