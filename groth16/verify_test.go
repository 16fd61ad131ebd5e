package groth16

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerifyRejectsWrongPublicInputValues(t *testing.T) {
	program := buildProgram(t, 2)
	srs, err := NewTrustedSetup(program, WithRandomSource(seededSource(9)))
	require.NoError(t, err)

	prover := NewProver(program, srs)
	proof, err := prover.Prove([]int64{1, 5, 1, 6, 25, 1}, WithRandomSource(seededSource(10)))
	require.NoError(t, err)

	verifier := NewVerifier(srs)
	require.NoError(t, verifier.Verify(proof, []int64{1, 5}))

	err = verifier.Verify(proof, []int64{1, 6})
	require.ErrorIs(t, err, ErrBadProof)
}
