// Package matrix implements a dense 2-D float32 matrix with copy-on-write
// storage sharing and stride-based views.
//
// Matrices are handled by pointer. Clone returns a second handle that shares
// storage with the original; the first mutating call on either handle makes a
// private copy, so aliases never observe each other's writes:
//
//	a := matrix.Eye(3)
//	b := a.Clone()      // shares storage, no copy
//	_ = b.AddInPlace(a) // b copies its storage first, a is unchanged
//
// T returns a transposed view in O(1) by swapping extents and strides. The view
// shares storage exactly like a clone.
//
// The zero Matrix is the empty matrix: 0 rows, 0 columns, no storage.
package matrix

import (
	"fmt"
	"math"
	"math/rand"
)

// Size holds matrix dimensions.
type Size struct {
	Rows int
	Cols int
}

// Count returns the number of elements.
func (s Size) Count() int {
	return s.Rows * s.Cols
}

// Equal reports whether two sizes are identical.
func (s Size) Equal(other Size) bool {
	return s.Rows == other.Rows && s.Cols == other.Cols
}

// String returns "RxC".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}

// Matrix is a 2-D float32 matrix backed by reference-counted storage.
//
// Element (r, c) lives at buf.data[r*rowStride + c*colStride].
type Matrix struct {
	buf       *buffer
	rows      int
	cols      int
	rowStride int
	colStride int
}

// maxElements bounds rows*cols for any matrix.
const maxElements = math.MaxInt32

// checkDims validates a rows×cols size.
func checkDims(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("%w: %dx%d", ErrNegativeDimension, rows, cols)
	}
	if rows > 0 && cols > maxElements/rows {
		return fmt.Errorf("%w: %dx%d exceeds %d elements", ErrTooLarge, rows, cols, maxElements)
	}
	return nil
}

// New creates a zero-filled matrix with the given dimensions.
// A zero dimension yields the empty matrix. Panics on negative dimensions
// or when rows*cols exceeds math.MaxInt32.
func New(rows, cols int) *Matrix {
	if err := checkDims(rows, cols); err != nil {
		panic("matrix.New: " + err.Error())
	}
	if rows == 0 || cols == 0 {
		return &Matrix{}
	}
	return &Matrix{
		buf:       newBuffer(rows * cols),
		rows:      rows,
		cols:      cols,
		rowStride: cols,
		colStride: 1,
	}
}

// NewSize creates a zero-filled matrix of the given size.
func NewSize(sz Size) *Matrix {
	return New(sz.Rows, sz.Cols)
}

// FromSlice creates a matrix from row-major data. The slice is copied.
func FromSlice(rows, cols int, data []float32) (*Matrix, error) {
	if err := checkDims(rows, cols); err != nil {
		return nil, fmt.Errorf("from slice: %w", err)
	}
	if rows*cols != len(data) {
		return nil, fmt.Errorf("from slice: %w: %dx%d requires %d elements, got %d",
			ErrShapeMismatch, rows, cols, rows*cols, len(data))
	}
	m := New(rows, cols)
	if m.buf != nil {
		copy(m.buf.data, data)
	}
	return m, nil
}

// FromVector creates a column vector from vec. The slice is copied.
func FromVector(vec []float32) *Matrix {
	m := New(len(vec), 1)
	if m.buf != nil {
		copy(m.buf.data, vec)
	}
	return m
}

// Full creates a matrix with every element set to v.
func Full(rows, cols int, v float32) *Matrix {
	m := New(rows, cols)
	if m.buf != nil {
		for i := range m.buf.data {
			m.buf.data[i] = v
		}
	}
	return m
}

// Eye returns the n×n identity matrix.
func Eye(n int) *Matrix {
	m := New(n, n)
	for i := 0; i < n; i++ {
		m.buf.data[i*n+i] = 1
	}
	return m
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Size returns the dimensions.
func (m *Matrix) Size() Size { return Size{Rows: m.rows, Cols: m.cols} }

// Count returns the number of elements.
func (m *Matrix) Count() int { return m.rows * m.cols }

// IsEmpty reports whether the matrix has no storage.
func (m *Matrix) IsEmpty() bool { return m.buf == nil }

// Strides returns the row and column strides in storage slots.
func (m *Matrix) Strides() (rowStride, colStride int) {
	return m.rowStride, m.colStride
}

// at reads an element without bounds checks.
func (m *Matrix) at(r, c int) float32 {
	return m.buf.data[r*m.rowStride+c*m.colStride]
}

// ptr returns the storage index of element (r, c).
// unique must have been called before writing through it.
func (m *Matrix) ptr(r, c int) int {
	return r*m.rowStride + c*m.colStride
}

// At returns element (r, c). Panics if indices are out of bounds.
func (m *Matrix) At(r, c int) float32 {
	m.checkIndex(r, c)
	return m.at(r, c)
}

// Set writes element (r, c), copying shared storage first.
// Panics if indices are out of bounds.
func (m *Matrix) Set(r, c int, v float32) {
	m.checkIndex(r, c)
	m.unique()
	m.buf.data[m.ptr(r, c)] = v
}

func (m *Matrix) checkIndex(r, c int) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d, %d) out of bounds for %dx%d", r, c, m.rows, m.cols))
	}
}

// unique makes the storage exclusive to this handle before a write.
func (m *Matrix) unique() {
	if m.buf == nil || m.buf.isUnique() {
		return
	}
	nb := m.buf.copyOf()
	m.buf.release()
	m.buf = nb
}

// IsUnique reports whether this handle is the only reference to its storage.
// The empty matrix is always unique.
func (m *Matrix) IsUnique() bool {
	return m.buf == nil || m.buf.isUnique()
}

// SharesStorage reports whether m and other reference the same storage.
func (m *Matrix) SharesStorage(other *Matrix) bool {
	return m.buf != nil && m.buf == other.buf
}

// Clone returns a handle sharing m's storage. No data is copied until
// either handle is mutated.
func (m *Matrix) Clone() *Matrix {
	if m.buf != nil {
		m.buf.addRef()
	}
	c := *m
	return &c
}

// Release drops this handle's reference to its storage and leaves m empty.
// Storage is freed once the last handle is released.
func (m *Matrix) Release() {
	if m.buf != nil {
		m.buf.release()
	}
	*m = Matrix{}
}

// T returns the transpose as a view sharing m's storage.
func (m *Matrix) T() *Matrix {
	t := m.Clone()
	t.rows, t.cols = m.cols, m.rows
	t.rowStride, t.colStride = m.colStride, m.rowStride
	return t
}

// Reshape returns a matrix with the same elements in row-major order and new
// dimensions. Row-major matrices are reshaped without copying.
func (m *Matrix) Reshape(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 || rows*cols != m.Count() {
		return nil, fmt.Errorf("reshape: %w: %v to %dx%d", ErrShapeMismatch, m.Size(), rows, cols)
	}
	if rows*cols == 0 {
		return &Matrix{}, nil
	}
	if m.rowStride == m.cols && m.colStride == 1 {
		res := m.Clone()
		res.rows, res.cols = rows, cols
		res.rowStride, res.colStride = cols, 1
		return res, nil
	}
	return FromSlice(rows, cols, m.Data())
}

// Resize changes the dimensions in place, keeping elements whose indices
// remain valid and zero-filling the rest. A zero dimension empties m.
// Panics on negative dimensions.
func (m *Matrix) Resize(rows, cols int) {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("matrix.Resize: negative dimensions %dx%d", rows, cols))
	}
	if rows == m.rows && cols == m.cols {
		return
	}
	if rows == 0 || cols == 0 {
		m.Release()
		return
	}
	res := New(rows, cols)
	for r := 0; r < min(rows, m.rows); r++ {
		for c := 0; c < min(cols, m.cols); c++ {
			res.buf.data[r*cols+c] = m.at(r, c)
		}
	}
	m.Release()
	*m = *res
}

// ResizeTo is Resize with a Size argument.
func (m *Matrix) ResizeTo(sz Size) {
	m.Resize(sz.Rows, sz.Cols)
}

// Clear sets every element to zero.
func (m *Matrix) Clear() {
	m.Fill(0)
}

// Fill sets every element to v.
func (m *Matrix) Fill(v float32) {
	if m.buf == nil {
		return
	}
	m.unique()
	for i := range m.buf.data {
		m.buf.data[i] = v
	}
}

// Rand fills the matrix with values drawn uniformly from [lo, hi) using rng.
// A nil rng draws from the math/rand global source.
func (m *Matrix) Rand(rng *rand.Rand, lo, hi float32) {
	if m.buf == nil {
		return
	}
	m.unique()
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			var u float32
			if rng != nil {
				u = rng.Float32()
			} else {
				//nolint:gosec // weight initialization is not security-critical
				u = rand.Float32()
			}
			m.buf.data[m.ptr(r, c)] = lo + u*(hi-lo)
		}
	}
}

// Row returns a copy of row idx as a 1×cols matrix.
func (m *Matrix) Row(idx int) (*Matrix, error) {
	if idx < 0 || idx >= m.rows {
		return nil, fmt.Errorf("row %d: %w (rows=%d)", idx, ErrIndexOutOfRange, m.rows)
	}
	res := New(1, m.cols)
	for c := 0; c < m.cols; c++ {
		res.buf.data[c] = m.at(idx, c)
	}
	return res, nil
}

// Column returns a copy of column idx as a rows×1 matrix.
func (m *Matrix) Column(idx int) (*Matrix, error) {
	if idx < 0 || idx >= m.cols {
		return nil, fmt.Errorf("column %d: %w (cols=%d)", idx, ErrIndexOutOfRange, m.cols)
	}
	res := New(m.rows, 1)
	for r := 0; r < m.rows; r++ {
		res.buf.data[r] = m.at(r, idx)
	}
	return res, nil
}

// Sum returns the sum of all elements.
func (m *Matrix) Sum() float32 {
	var s float32
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			s += m.at(r, c)
		}
	}
	return s
}

// Scalar converts a 1×1 matrix to its single value.
func (m *Matrix) Scalar() (float32, error) {
	if m.rows != 1 || m.cols != 1 {
		return 0, fmt.Errorf("scalar: %w: matrix is %v", ErrDegenerateConversion, m.Size())
	}
	return m.at(0, 0), nil
}

// Vector converts a column vector to a slice.
func (m *Matrix) Vector() ([]float32, error) {
	if m.cols != 1 {
		return nil, fmt.Errorf("vector: %w: matrix is %v", ErrDegenerateConversion, m.Size())
	}
	res := make([]float32, m.rows)
	for r := range res {
		res[r] = m.at(r, 0)
	}
	return res, nil
}

// Data returns the elements in row-major order as a fresh slice.
func (m *Matrix) Data() []float32 {
	if m.buf == nil {
		return nil
	}
	res := make([]float32, 0, m.Count())
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			res = append(res, m.at(r, c))
		}
	}
	return res
}

// AllClose reports whether m and other have equal sizes and every pair of
// elements differs by at most tol.
func (m *Matrix) AllClose(other *Matrix, tol float32) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			d := m.at(r, c) - other.at(r, c)
			if !(d <= tol && d >= -tol) {
				return false
			}
		}
	}
	return true
}

// String returns a short description such as "Matrix[3x2]".
func (m *Matrix) String() string {
	return fmt.Sprintf("Matrix[%v]", m.Size())
}
