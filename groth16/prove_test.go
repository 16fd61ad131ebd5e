package groth16

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProveDefaultRandomSource(t *testing.T) {
	program := buildProgram(t, 2)
	srs, err := NewTrustedSetup(program)
	require.NoError(t, err)

	prover := NewProver(program, srs)
	proof, err := prover.Prove([]int64{1, 5, 1, 6, 25, 1})
	require.NoError(t, err)

	verifier := NewVerifier(srs)
	require.NoError(t, verifier.Verify(proof, []int64{1, 5}))
}

func TestProveIsRandomizedAcrossCalls(t *testing.T) {
	program := buildProgram(t, 2)
	srs, err := NewTrustedSetup(program, WithRandomSource(seededSource(3)))
	require.NoError(t, err)

	prover := NewProver(program, srs)
	witness := []int64{1, 5, 1, 6, 25, 1}

	first, err := prover.Prove(witness, WithRandomSource(seededSource(4)))
	require.NoError(t, err)
	second, err := prover.Prove(witness, WithRandomSource(seededSource(5)))
	require.NoError(t, err)

	require.NotEqual(t, first.A, second.A, "distinct blinding scalars must yield distinct proofs")

	verifier := NewVerifier(srs)
	require.NoError(t, verifier.Verify(first, []int64{1, 5}))
	require.NoError(t, verifier.Verify(second, []int64{1, 5}))
}
