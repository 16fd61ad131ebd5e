// Copyright 2020 ConsenSys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package groth16

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/ali-rezai/groth16-go/internal/fieldutil"
	"github.com/ali-rezai/groth16-go/internal/polynomial"
	"github.com/ali-rezai/groth16-go/internal/qap"
	"github.com/ali-rezai/groth16-go/internal/zkplog"
)

// Prover holds a Program and the SRS derived from it. It takes
// ownership of both at construction and is read-only afterward, so a
// single Prover may safely be used to produce any number of proofs
// concurrently.
type Prover struct {
	program *qap.Program
	srs     *SRS
}

// NewProver pairs a Program with the SRS produced for it by
// NewTrustedSetup. It does not verify that srs was actually derived
// from program; passing a mismatched pair produces proofs that fail
// verification rather than an error here.
func NewProver(program *qap.Program, srs *SRS) *Prover {
	return &Prover{program: program, srs: srs}
}

// Prove builds a proof that witness satisfies the prover's program. It
// fails with ErrWitnessShape if len(witness) does not match the
// program's witness width, and with ErrBadWitness if the witness does
// not satisfy the constraint system.
func (p *Prover) Prove(witness []int64, opts ...Option) (Proof, error) {
	cfg := newConfig(opts...)
	log := zkplog.Logger().With().Str("component", "prover").Logger()

	if len(witness) != p.program.NumWitness {
		return Proof{}, ErrWitnessShape
	}

	w := fieldutil.FromInt64Slice(witness)

	a := weightedSum(p.program.A, w)
	b := weightedSum(p.program.B, w)
	c := weightedSum(p.program.C, w)

	numerator := a.Mul(b).Sub(c)
	h, err := polynomial.Divide(numerator, p.program.T)
	if err != nil {
		log.Debug().Err(err).Msg("witness does not satisfy the constraint system")
		return Proof{}, ErrBadWitness
	}

	r, err := sampleScalar(cfg.randomSource)
	if err != nil {
		return Proof{}, err
	}
	s, err := sampleScalar(cfg.randomSource)
	if err != nil {
		return Proof{}, err
	}

	srs := p.srs
	aCommit := g1MSM(srs.TauPowersG1, a.Coefficients())
	bCommitG1 := g1MSM(srs.TauPowersG1, b.Coefficients())
	bCommitG2 := g2MSM(srs.TauPowersG2, b.Coefficients())
	hCommit := g1MSM(srs.HPowersG1, h.Coefficients())

	l := srs.Public
	proverWitness := w[l:]
	proverTermsCommit := g1MSM(srs.ProverKey, proverWitness)

	var piA bls12381.G1Jac
	piA.FromAffine(&srs.AlphaG1)
	{
		var t bls12381.G1Jac
		t.FromAffine(&aCommit)
		piA.AddAssign(&t)
	}
	{
		var t bls12381.G1Jac
		t.FromAffine(&srs.DeltaG1)
		t.ScalarMultiplication(&t, r.BigInt(new(big.Int)))
		piA.AddAssign(&t)
	}
	var piAAffine bls12381.G1Affine
	piAAffine.FromJacobian(&piA)

	var piBG1 bls12381.G1Jac
	piBG1.FromAffine(&srs.BetaG1)
	{
		var t bls12381.G1Jac
		t.FromAffine(&bCommitG1)
		piBG1.AddAssign(&t)
	}
	{
		var t bls12381.G1Jac
		t.FromAffine(&srs.DeltaG1)
		t.ScalarMultiplication(&t, s.BigInt(new(big.Int)))
		piBG1.AddAssign(&t)
	}
	var piBG1Affine bls12381.G1Affine
	piBG1Affine.FromJacobian(&piBG1)

	var piB bls12381.G2Jac
	piB.FromAffine(&srs.BetaG2)
	{
		var t bls12381.G2Jac
		t.FromAffine(&bCommitG2)
		piB.AddAssign(&t)
	}
	{
		var t bls12381.G2Jac
		t.FromAffine(&srs.DeltaG2)
		t.ScalarMultiplication(&t, s.BigInt(new(big.Int)))
		piB.AddAssign(&t)
	}
	var piBAffine bls12381.G2Affine
	piBAffine.FromJacobian(&piB)

	var piC bls12381.G1Jac
	piC.FromAffine(&proverTermsCommit)
	{
		var t bls12381.G1Jac
		t.FromAffine(&hCommit)
		piC.AddAssign(&t)
	}
	{
		// s * pi_A
		var t bls12381.G1Jac
		t.FromAffine(&piAAffine)
		t.ScalarMultiplication(&t, s.BigInt(new(big.Int)))
		piC.AddAssign(&t)
	}
	{
		// r * pi_B_G1
		var t bls12381.G1Jac
		t.FromAffine(&piBG1Affine)
		t.ScalarMultiplication(&t, r.BigInt(new(big.Int)))
		piC.AddAssign(&t)
	}
	{
		// - r*s * delta*G1
		var rs fr.Element
		rs.Mul(&r, &s)
		var t bls12381.G1Jac
		t.FromAffine(&srs.DeltaG1)
		t.ScalarMultiplication(&t, rs.BigInt(new(big.Int)))
		piC.SubAssign(&t)
	}
	var piCAffine bls12381.G1Affine
	piCAffine.FromJacobian(&piC)

	log.Debug().Msg("proof generated")
	return Proof{A: piAAffine, B: piBAffine, C: piCAffine}, nil
}

// weightedSum returns Sum w[j]*polys[j].
func weightedSum(polys []polynomial.Polynomial, w []fr.Element) polynomial.Polynomial {
	acc := polynomial.Zero()
	for j, poly := range polys {
		if w[j].IsZero() {
			continue
		}
		scaled := scalePolynomial(poly, w[j])
		acc = acc.Add(scaled)
	}
	return acc
}

// scalePolynomial returns c*poly.
func scalePolynomial(poly polynomial.Polynomial, c fr.Element) polynomial.Polynomial {
	coeffs := poly.Coefficients()
	out := make([]fr.Element, len(coeffs))
	for i, a := range coeffs {
		out[i].Mul(&a, &c)
	}
	return polynomial.New(out)
}
