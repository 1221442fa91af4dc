package matrix

import "fmt"

// Invert returns the inverse of a square matrix using Gauss-Jordan
// elimination on the augmented block [A | I].
//
// For each column the first row at or below the diagonal with a nonzero entry
// becomes the pivot row (swapped into place), is normalized, and is used to
// clear the entries below it. A second pass from the last row upwards clears
// the entries above the diagonal, leaving the inverse in the right half.
//
// Returns ErrSingular when m is not square or no pivot exists for a column.
func (m *Matrix) Invert() (*Matrix, error) {
	if m.rows != m.cols {
		return nil, fmt.Errorf("invert: %w: matrix is %v", ErrSingular, m.Size())
	}
	n := m.rows
	if n == 0 {
		return &Matrix{}, nil
	}
	n2 := 2 * n

	// Augmented block is freshly allocated, so rows are contiguous.
	aug := make([]float32, n*n2)
	for r := 0; r < n; r++ {
		row := aug[r*n2 : (r+1)*n2]
		for c := 0; c < n; c++ {
			row[c] = m.at(r, c)
		}
		row[n+r] = 1
	}

	for r := 0; r < n; r++ {
		p := r
		for p < n && aug[p*n2+r] == 0 {
			p++
		}
		if p == n {
			return nil, fmt.Errorf("invert: %w: no pivot in column %d", ErrSingular, r)
		}
		if p != r {
			rowR := aug[r*n2 : (r+1)*n2]
			rowP := aug[p*n2 : (p+1)*n2]
			for i := range rowR {
				rowR[i], rowP[i] = rowP[i], rowR[i]
			}
		}

		// Entries left of the diagonal are already zero.
		pivot := aug[r*n2 : (r+1)*n2]
		coef := 1 / pivot[r]
		for i := r; i < n2; i++ {
			pivot[i] *= coef
		}

		for k := r + 1; k < n; k++ {
			eliminate(aug[k*n2:(k+1)*n2], pivot, r)
		}
	}

	for r := n - 1; r >= 0; r-- {
		pivot := aug[r*n2 : (r+1)*n2]
		for k := r - 1; k >= 0; k-- {
			eliminate(aug[k*n2:(k+1)*n2], pivot, r)
		}
	}

	res := New(n, n)
	for r := 0; r < n; r++ {
		copy(res.buf.data[r*n:(r+1)*n], aug[r*n2+n:(r+1)*n2])
	}
	return res, nil
}

// eliminate subtracts row[col] * pivot from row, starting at col.
func eliminate(row, pivot []float32, col int) {
	coef := -row[col]
	if coef == 0 {
		return
	}
	for i := col; i < len(row); i++ {
		row[i] += coef * pivot[i]
	}
}

// Solve returns X such that A · X = B.
//
// Square systems are solved as inverse(A) · B. Over- and under-determined
// systems use the normal equations: (Aᵗ·A)⁻¹ · Aᵗ · B.
//
// Solve never returns an error: when the system cannot be solved (singular
// matrix or incompatible shapes) it returns the empty matrix.
func Solve(a, b *Matrix) *Matrix {
	x, err := solve(a, b)
	if err != nil {
		return &Matrix{}
	}
	return x
}

func solve(a, b *Matrix) (*Matrix, error) {
	if a.rows == a.cols {
		inv, err := a.Invert()
		if err != nil {
			return nil, err
		}
		return inv.MatMul(b)
	}

	at := a.T()
	defer at.Release()

	ata, err := at.MatMul(a)
	if err != nil {
		return nil, err
	}
	inv, err := ata.Invert()
	if err != nil {
		return nil, err
	}
	pinv, err := inv.MatMul(at)
	if err != nil {
		return nil, err
	}
	return pinv.MatMul(b)
}
