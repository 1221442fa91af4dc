package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/born-ml/layerchain/internal/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// toDense converts m to a gonum matrix for cross-checking.
func toDense(m *matrix.Matrix) *mat.Dense {
	data := m.Data()
	f64 := make([]float64, len(data))
	for i, v := range data {
		f64[i] = float64(v)
	}
	return mat.NewDense(m.Rows(), m.Cols(), f64)
}

// assertMatchesDense checks m against a gonum result element by element.
func assertMatchesDense(t *testing.T, want mat.Matrix, got *matrix.Matrix, tol float64) {
	t.Helper()
	r, c := want.Dims()
	require.Equal(t, matrix.Size{Rows: r, Cols: c}, got.Size())
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			assert.InDelta(t, want.At(i, j), got.At(i, j), tol, "element (%d, %d)", i, j)
		}
	}
}

// diagonallyDominant returns a random well-conditioned n×n matrix.
func diagonallyDominant(rng *rand.Rand, n int) *matrix.Matrix {
	m := matrix.New(n, n)
	m.Rand(rng, -1, 1)
	for i := 0; i < n; i++ {
		m.Set(i, i, m.At(i, i)+float32(n))
	}
	return m
}

func TestInvert_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{1, 2, 3, 5, 8} {
		a := diagonallyDominant(rng, n)

		inv, err := a.Invert()
		require.NoError(t, err)

		prod, err := a.MatMul(inv)
		require.NoError(t, err)
		assert.True(t, prod.AllClose(matrix.Eye(n), 1e-3), "n=%d: A·A⁻¹ should be identity", n)

		var want mat.Dense
		require.NoError(t, want.Inverse(toDense(a)))
		assertMatchesDense(t, &want, inv, 1e-4)
	}
}

func TestInvert_NeedsRowSwap(t *testing.T) {
	// Zero on the leading diagonal forces a pivot search.
	a := mustFromSlice(t, 3, 3,
		0, 2, 1,
		1, 0, 0,
		3, 0, 1,
	)
	inv, err := a.Invert()
	require.NoError(t, err)

	var want mat.Dense
	require.NoError(t, want.Inverse(toDense(a)))
	assertMatchesDense(t, &want, inv, 1e-5)
}

func TestInvert_TransposedView(t *testing.T) {
	a := mustFromSlice(t, 2, 2, 4, 7, 2, 6)
	inv, err := a.T().Invert()
	require.NoError(t, err)

	var want mat.Dense
	require.NoError(t, want.Inverse(toDense(a).T()))
	assertMatchesDense(t, &want, inv, 1e-5)
}

func TestInvert_Singular(t *testing.T) {
	tests := []struct {
		name string
		m    *matrix.Matrix
	}{
		{"zero", matrix.New(3, 3)},
		{"dependent rows", mustFromSlice(t, 2, 2, 1, 2, 2, 4)},
		{"zero column", mustFromSlice(t, 2, 2, 0, 1, 0, 3)},
		{"not square", matrix.New(2, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.m.Invert()
			assert.ErrorIs(t, err, matrix.ErrSingular)
		})
	}
}

func TestInvert_Empty(t *testing.T) {
	inv, err := (&matrix.Matrix{}).Invert()
	require.NoError(t, err)
	assert.True(t, inv.IsEmpty())
}

func TestSolve_Square(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	a := diagonallyDominant(rng, 4)
	b := matrix.New(4, 2)
	b.Rand(rng, -5, 5)

	x := matrix.Solve(a, b)
	require.False(t, x.IsEmpty())

	ax, err := a.MatMul(x)
	require.NoError(t, err)
	assert.True(t, ax.AllClose(b, 1e-3))

	var want mat.Dense
	require.NoError(t, want.Solve(toDense(a), toDense(b)))
	assertMatchesDense(t, &want, x, 1e-3)
}

func TestSolve_LeastSquares(t *testing.T) {
	// Fit y = 2x + 1 through noisy samples.
	a := mustFromSlice(t, 5, 2,
		0, 1,
		1, 1,
		2, 1,
		3, 1,
		4, 1,
	)
	b := mustFromSlice(t, 5, 1, 1.1, 2.9, 5.2, 6.8, 9.1)

	x := matrix.Solve(a, b)
	require.Equal(t, matrix.Size{Rows: 2, Cols: 1}, x.Size())

	var want mat.Dense
	require.NoError(t, want.Solve(toDense(a), toDense(b)))
	assertMatchesDense(t, &want, x, 1e-3)
	assert.InDelta(t, 2, x.At(0, 0), 0.1)
	assert.InDelta(t, 1, x.At(1, 0), 0.2)
}

func TestSolve_Failures(t *testing.T) {
	tests := []struct {
		name string
		a, b *matrix.Matrix
	}{
		{"singular", mustFromSlice(t, 2, 2, 1, 2, 2, 4), matrix.New(2, 1)},
		{"rank deficient", matrix.New(3, 2), matrix.New(3, 1)},
		{"shape mismatch", matrix.Eye(2), matrix.New(3, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, matrix.Solve(tt.a, tt.b).IsEmpty())
		})
	}
}

func TestSolve_DoesNotModifyOperands(t *testing.T) {
	a := mustFromSlice(t, 3, 2, 1, 0, 0, 1, 1, 1)
	b := mustFromSlice(t, 3, 1, 1, 2, 3)
	aData, bData := a.Data(), b.Data()

	_ = matrix.Solve(a, b)
	assert.Equal(t, aData, a.Data())
	assert.Equal(t, bData, b.Data())
	assert.True(t, a.IsUnique(), "temporary views must be released")
}

func TestMatMul_LargeMatchesDense(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	a := matrix.New(96, 80)
	a.Rand(rng, -1, 1)
	b := matrix.New(48, 80)
	b.Rand(rng, -1, 1)

	// Large enough to be split across workers; b is used through a view.
	got, err := a.MatMul(b.T())
	require.NoError(t, err)

	var want mat.Dense
	want.Mul(toDense(a), toDense(b).T())
	assertMatchesDense(t, &want, got, 1e-4)
}
