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
	"runtime"
	"sync"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// minWorkPerWorker mirrors the constraint-solver's per-task floor: below
// this many terms, splitting across goroutines costs more in scheduling
// than it saves.
const minWorkPerWorker = 64

// g1MSM computes Sum scalars[i]*bases[i] in G1. scalars is commonly a
// canonicalized polynomial's coefficient vector, which is shorter than
// bases whenever the polynomial's degree is below its bound (e.g. h(x)
// is always strictly shorter than the m-sized HPowersG1 vector); any
// base beyond len(scalars) corresponds to an implicit zero coefficient
// and is skipped rather than indexed. When there is enough work, the
// index range is partitioned across a worker pool of up to
// runtime.NumCPU() goroutines, each accumulating a partial sum in
// Jacobian coordinates before the partials are combined; this is the
// same fixed-worker-pool, task-range idiom a constraint solver uses to
// parallelize independent rows.
func g1MSM(bases []bls12381.G1Affine, scalars []fr.Element) bls12381.G1Affine {
	n := len(bases)
	if len(scalars) < n {
		n = len(scalars)
	}
	if n == 0 {
		return bls12381.G1Affine{}
	}

	numWorkers := runtime.NumCPU()
	if byWork := n / minWorkPerWorker; byWork < numWorkers {
		numWorkers = byWork
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	chunk := (n + numWorkers - 1) / numWorkers
	partials := make([]bls12381.G1Jac, numWorkers)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		start := w * chunk
		if start >= n {
			break
		}
		end := start + chunk
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			partials[w] = g1MSMRange(bases, scalars, start, end)
		}(w, start, end)
	}
	wg.Wait()

	var acc bls12381.G1Jac
	for i := range partials {
		acc.AddAssign(&partials[i])
	}
	var res bls12381.G1Affine
	res.FromJacobian(&acc)
	return res
}

func g1MSMRange(bases []bls12381.G1Affine, scalars []fr.Element, start, end int) bls12381.G1Jac {
	var acc bls12381.G1Jac
	for i := start; i < end; i++ {
		if scalars[i].IsZero() {
			continue
		}
		var term bls12381.G1Jac
		term.FromAffine(&bases[i])
		term.ScalarMultiplication(&term, scalars[i].BigInt(new(big.Int)))
		acc.AddAssign(&term)
	}
	return acc
}

// g2MSM is g1MSM's G2 counterpart, with the same implicit-zero-padding
// behavior when scalars is shorter than bases. The witness-column and
// tau-power vectors this package sums over are small enough in the G2
// case (only the pi_B accumulation uses it) that a single-goroutine sum
// is always used; it is kept as a distinct function so the G1 hot path
// above can be tuned independently.
func g2MSM(bases []bls12381.G2Affine, scalars []fr.Element) bls12381.G2Affine {
	n := len(bases)
	if len(scalars) < n {
		n = len(scalars)
	}

	var acc bls12381.G2Jac
	for i := 0; i < n; i++ {
		if scalars[i].IsZero() {
			continue
		}
		var term bls12381.G2Jac
		term.FromAffine(&bases[i])
		term.ScalarMultiplication(&term, scalars[i].BigInt(new(big.Int)))
		acc.AddAssign(&term)
	}
	var res bls12381.G2Affine
	res.FromJacobian(&acc)
	return res
}
