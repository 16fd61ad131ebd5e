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

	"github.com/ali-rezai/groth16-go/internal/qap"
	"github.com/ali-rezai/groth16-go/internal/zkplog"
)

// SRS is the structured reference string produced by a trusted-setup
// ceremony for a single Program. Every field is read-only after
// construction and may be freely shared between a Prover and a
// Verifier, across goroutines or processes, by value copy or by
// reference.
//
// The toxic waste (tau, alpha, beta, gamma, delta) used to derive these
// values is never stored: NewTrustedSetup samples it on the stack and
// lets it go out of scope once the SRS is populated.
type SRS struct {
	NumConstraints int // m, copied from the Program
	NumWitness     int // n, copied from the Program
	Public         int // l, copied from the Program

	AlphaG1 bls12381.G1Affine
	BetaG1  bls12381.G1Affine
	BetaG2  bls12381.G2Affine
	GammaG2 bls12381.G2Affine
	DeltaG1 bls12381.G1Affine
	DeltaG2 bls12381.G2Affine

	// TauPowersG1[i], TauPowersG2[i] hold tau^i * G1, tau^i * G2 for
	// i in [0, m).
	TauPowersG1 []bls12381.G1Affine
	TauPowersG2 []bls12381.G2Affine

	// HPowersG1[i] holds tau^i * t(tau) / delta * G1 for i in [0, m).
	HPowersG1 []bls12381.G1Affine

	// VerifierKey[j] holds psi^v_j for j in [0, l).
	VerifierKey []bls12381.G1Affine

	// ProverKey[j] holds psi^p_{j+l} for j in [0, n-l); ProverKey[i]
	// corresponds to witness column l+i.
	ProverKey []bls12381.G1Affine
}

// NewTrustedSetup runs a trusted-setup ceremony for program, sampling
// toxic waste tau, alpha, beta, gamma, delta from a cryptographically
// secure source (crypto/rand.Reader by default; override with
// WithRandomSource). gamma and delta are resampled until nonzero, since
// their inverses are required below.
func NewTrustedSetup(program *qap.Program, opts ...Option) (*SRS, error) {
	cfg := newConfig(opts...)
	log := zkplog.Logger().With().Str("component", "setup").Logger()
	log.Debug().Int("m", program.NumConstraints).Int("n", program.NumWitness).Msg("starting trusted setup")

	tau, err := sampleScalar(cfg.randomSource)
	if err != nil {
		return nil, err
	}
	alpha, err := sampleScalar(cfg.randomSource)
	if err != nil {
		return nil, err
	}
	beta, err := sampleScalar(cfg.randomSource)
	if err != nil {
		return nil, err
	}
	gamma, err := sampleNonZeroScalar(cfg.randomSource)
	if err != nil {
		return nil, err
	}
	delta, err := sampleNonZeroScalar(cfg.randomSource)
	if err != nil {
		return nil, err
	}

	_, _, g1Gen, g2Gen := bls12381.Generators()

	var gammaInv, deltaInv fr.Element
	gammaInv.Inverse(&gamma)
	deltaInv.Inverse(&delta)

	srs := &SRS{
		NumConstraints: program.NumConstraints,
		NumWitness:     program.NumWitness,
		Public:         program.Public,
	}

	srs.AlphaG1 = scalarMulG1(g1Gen, alpha)
	srs.BetaG1 = scalarMulG1(g1Gen, beta)
	srs.BetaG2 = scalarMulG2(g2Gen, beta)
	srs.GammaG2 = scalarMulG2(g2Gen, gamma)
	srs.DeltaG1 = scalarMulG1(g1Gen, delta)
	srs.DeltaG2 = scalarMulG2(g2Gen, delta)

	m := program.NumConstraints
	tauPowers := powers(tau, m)

	srs.TauPowersG1 = make([]bls12381.G1Affine, m)
	srs.TauPowersG2 = make([]bls12381.G2Affine, m)
	for i := 0; i < m; i++ {
		srs.TauPowersG1[i] = scalarMulG1(g1Gen, tauPowers[i])
		srs.TauPowersG2[i] = scalarMulG2(g2Gen, tauPowers[i])
	}

	tauT := program.T.Evaluate(tau)
	var tauTOverDelta fr.Element
	tauTOverDelta.Mul(&tauT, &deltaInv)

	srs.HPowersG1 = make([]bls12381.G1Affine, m)
	for i := 0; i < m; i++ {
		var c fr.Element
		c.Mul(&tauPowers[i], &tauTOverDelta)
		srs.HPowersG1[i] = scalarMulG1(g1Gen, c)
	}

	n := program.NumWitness
	l := program.Public
	srs.VerifierKey = make([]bls12381.G1Affine, l)
	srs.ProverKey = make([]bls12381.G1Affine, n-l)
	for j := 0; j < n; j++ {
		psi := psiNumerator(program, j, tau, alpha, beta)
		if j < l {
			var v fr.Element
			v.Mul(&psi, &gammaInv)
			srs.VerifierKey[j] = scalarMulG1(g1Gen, v)
		} else {
			var v fr.Element
			v.Mul(&psi, &deltaInv)
			srs.ProverKey[j-l] = scalarMulG1(g1Gen, v)
		}
	}

	log.Debug().Msg("trusted setup complete")
	return srs, nil
}

// psiNumerator computes alpha*B_j(tau) + beta*A_j(tau) + C_j(tau), the
// shared numerator of both the verifier-key and prover-key elements for
// witness column j.
func psiNumerator(program *qap.Program, j int, tau, alpha, beta fr.Element) fr.Element {
	aTau := program.A[j].Evaluate(tau)
	bTau := program.B[j].Evaluate(tau)
	cTau := program.C[j].Evaluate(tau)

	var alphaB, betaA, sum fr.Element
	alphaB.Mul(&alpha, &bTau)
	betaA.Mul(&beta, &aTau)
	sum.Add(&alphaB, &betaA)
	sum.Add(&sum, &cTau)
	return sum
}

// powers returns [1, x, x^2, ..., x^(n-1)].
func powers(x fr.Element, n int) []fr.Element {
	out := make([]fr.Element, n)
	if n == 0 {
		return out
	}
	out[0].SetOne()
	for i := 1; i < n; i++ {
		out[i].Mul(&out[i-1], &x)
	}
	return out
}

func scalarMulG1(base bls12381.G1Affine, s fr.Element) bls12381.G1Affine {
	var res bls12381.G1Affine
	res.ScalarMultiplication(&base, s.BigInt(new(big.Int)))
	return res
}

func scalarMulG2(base bls12381.G2Affine, s fr.Element) bls12381.G2Affine {
	var res bls12381.G2Affine
	res.ScalarMultiplication(&base, s.BigInt(new(big.Int)))
	return res
}
