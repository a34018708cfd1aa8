// Package bls12381 instantiates the DLEQ proof system over the G1 group of
// the BLS12-381 curve.
package bls12381

import (
	"time"

	curve "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/naitik-supraoracles/blsttc-supra-for-moonshot/dleq"
	"github.com/naitik-supraoracles/blsttc-supra-for-moonshot/logger"
)

// hGeneratorDST is the hash-to-curve domain separation tag under which the
// second generator is derived; see Generators.
const hGeneratorDST = "BLSTTC-DLEQ-H-BLS12381G1_XMD:SHA-256_SSWU_RO_"

// Instance is the public statement (g, h, g_x, h_x); see dleq.Instance.
type Instance dleq.Instance[curve.G1Affine]

// Witness is the prover's secret (x, r); see dleq.Witness.
type Witness dleq.Witness[fr.Element]

// Proof is a DLEQ proof (c, s); see dleq.Proof.
type Proof dleq.Proof[fr.Element]

// NewWitness returns a witness for the secret x with fresh commitment
// randomness drawn from crypto/rand. The returned witness must be used for at
// most one call to Prove; see dleq.Witness for the reuse hazard.
func NewWitness(x *fr.Element) (*Witness, error) {
	var w Witness
	w.X.Set(x)
	if _, err := w.R.SetRandom(); err != nil {
		return nil, err
	}
	return &w, nil
}

// Generators returns two independent generators of G1: g is the canonical
// generator, h is obtained by hashing a fixed seed to the curve, so that no
// discrete-log relation between g and h is known to anyone.
func Generators() (g, h curve.G1Affine, err error) {
	_, _, g, _ = curve.Generators()
	h, err = curve.HashToG1([]byte("blsttc-dleq-second-generator"), []byte(hGeneratorDST))
	return
}

// Validate rejects degenerate statements; see dleq.Validate.
func (instance *Instance) Validate() error {
	return dleq.Validate[curve.G1Affine]((*dleq.Instance[curve.G1Affine])(instance))
}

// Prove generates a proof that instance.GX and instance.HX share the discrete
// log witness.X; see dleq.Prove for the protocol and the caller obligations.
func Prove(instance *Instance, witness *Witness) *Proof {
	log := logger.Logger().With().Str("curve", "bls12-381").Str("protocol", "dleq").Logger()
	start := time.Now()

	proof := dleq.Prove(
		(*dleq.Instance[curve.G1Affine])(instance),
		(*dleq.Witness[fr.Element])(witness),
	)

	log.Debug().Dur("took", time.Since(start)).Msg("prover done")
	return (*Proof)(proof)
}

// Verify checks that proof is consistent with instance; see dleq.Verify.
func Verify(instance *Instance, proof *Proof) error {
	log := logger.Logger().With().Str("curve", "bls12-381").Str("protocol", "dleq").Logger()
	start := time.Now()

	err := dleq.Verify(
		(*dleq.Instance[curve.G1Affine])(instance),
		(*dleq.Proof[fr.Element])(proof),
	)
	if err != nil {
		log.Debug().Err(err).Dur("took", time.Since(start)).Msg("verifier done")
		return err
	}

	log.Debug().Dur("took", time.Since(start)).Msg("verifier done")
	return nil
}
