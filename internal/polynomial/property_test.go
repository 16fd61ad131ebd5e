package polynomial

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func coeffsFromInt64(values []int64) []fr.Element {
	out := make([]fr.Element, len(values))
	for i, v := range values {
		if v >= 0 {
			out[i].SetUint64(uint64(v))
		} else {
			var mag fr.Element
			mag.SetUint64(uint64(-v))
			out[i].Neg(&mag)
		}
	}
	return out
}

func polyFromInt64s(values []int64) Polynomial {
	return New(coeffsFromInt64(values))
}

func smallPoly() gopter.Gen {
	return gen.SliceOfN(5, gen.Int64Range(-64, 64)).Map(polyFromInt64s)
}

func smallScalar() gopter.Gen {
	return gen.Int64Range(-64, 64).Map(func(v int64) fr.Element {
		return coeffsFromInt64([]int64{v})[0]
	})
}

// TestPolynomialAlgebraLaws checks the ring laws §8 requires of Add and
// Mul, and the homomorphism between evaluation and the ring operations.
func TestPolynomialAlgebraLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("addition is associative", prop.ForAll(
		func(a, b, c Polynomial) bool {
			return a.Add(b).Add(c).Equal(a.Add(b.Add(c)))
		},
		smallPoly(), smallPoly(), smallPoly(),
	))

	properties.Property("addition is commutative", prop.ForAll(
		func(a, b Polynomial) bool {
			return a.Add(b).Equal(b.Add(a))
		},
		smallPoly(), smallPoly(),
	))

	properties.Property("multiplication is commutative", prop.ForAll(
		func(a, b Polynomial) bool {
			return a.Mul(b).Equal(b.Mul(a))
		},
		smallPoly(), smallPoly(),
	))

	properties.Property("multiplication is associative", prop.ForAll(
		func(a, b, c Polynomial) bool {
			return a.Mul(b).Mul(c).Equal(a.Mul(b.Mul(c)))
		},
		smallPoly(), smallPoly(), smallPoly(),
	))

	properties.Property("multiplication distributes over addition", prop.ForAll(
		func(a, b, c Polynomial) bool {
			lhs := a.Mul(b.Add(c))
			rhs := a.Mul(b).Add(a.Mul(c))
			return lhs.Equal(rhs)
		},
		smallPoly(), smallPoly(), smallPoly(),
	))

	properties.Property("degree is the index of the highest nonzero coefficient", prop.ForAll(
		func(a Polynomial) bool {
			if a.IsZero() {
				return a.Degree() == -1
			}
			return a.Degree() == len(a.Coefficients())-1 && !a.LeadingCoefficient().IsZero()
		},
		smallPoly(),
	))

	properties.Property("eval is a ring homomorphism for addition", prop.ForAll(
		func(a, b Polynomial, x fr.Element) bool {
			sum := a.Add(b)
			lhs := sum.Evaluate(x)
			var rhs fr.Element
			ea, eb := a.Evaluate(x), b.Evaluate(x)
			rhs.Add(&ea, &eb)
			return lhs.Equal(&rhs)
		},
		smallPoly(), smallPoly(), smallScalar(),
	))

	properties.Property("eval is a ring homomorphism for multiplication", prop.ForAll(
		func(a, b Polynomial, x fr.Element) bool {
			prod := a.Mul(b)
			lhs := prod.Evaluate(x)
			var rhs fr.Element
			ea, eb := a.Evaluate(x), b.Evaluate(x)
			rhs.Mul(&ea, &eb)
			return lhs.Equal(&rhs)
		},
		smallPoly(), smallPoly(), smallScalar(),
	))

	properties.TestingRun(t)
}

// TestDivideLaw checks §8's "if a = b*q, then Divide(a, b) = q".
func TestDivideLaw(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("divide undoes multiply by a nonzero divisor", prop.ForAll(
		func(q, d Polynomial) bool {
			if d.IsZero() {
				return true
			}
			a := q.Mul(d)
			got, err := Divide(a, d)
			return err == nil && got.Equal(q)
		},
		smallPoly(), smallPoly(),
	))

	properties.TestingRun(t)
}

// TestInterpolateRoundTripProperty checks §8's interpolation round trip
// with randomly generated values over the fixed domain {1, ..., 6}.
func TestInterpolateRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("interpolate passes through every sample point", prop.ForAll(
		func(values []int64) bool {
			n := len(values)
			domainInts := make([]int64, n)
			for i := range domainInts {
				domainInts[i] = int64(i + 1)
			}
			domain := coeffsFromInt64(domainInts)
			evals := coeffsFromInt64(values)

			p := Interpolate(domain, evals)
			if p.Degree() >= n {
				return false
			}
			for i, d := range domain {
				got := p.Evaluate(d)
				if !evals[i].Equal(&got) {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(6, gen.Int64Range(-64, 64)),
	))

	properties.TestingRun(t)
}
