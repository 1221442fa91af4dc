// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the dense float32 matrix used throughout layerchain.
//
// # Overview
//
// A Matrix is a 2-D view over reference-counted storage:
//   - Copies share storage until one of them is written (copy-on-write)
//   - Transpose is an O(1) view with swapped strides
//   - Element-wise arithmetic, comparisons and math functions
//   - Matrix product, Gauss-Jordan inversion and least-squares Solve
//   - Text encoding shared by the parameter files of nn
//
// # Basic Usage
//
//	import "github.com/born-ml/layerchain/matrix"
//
//	func main() {
//	    a, _ := matrix.FromSlice(2, 2, []float32{4, 7, 2, 6})
//
//	    inv, err := a.Invert()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    id, _ := a.MatMul(inv) // ≈ identity
//	    fmt.Println(id.Data())
//	}
//
// # Sharing
//
// Clone returns a handle that shares storage. Writing through either handle
// first gives that handle a private copy, so the other keeps its values:
//
//	b := a.Clone()
//	b.ScaleInPlace(2) // a is unchanged
//
// Release drops a handle's reference and leaves it empty.
//
// # Errors
//
// Operations on incompatible shapes return an error wrapping ErrShapeMismatch.
// Use errors.Is to test for ErrSingular, ErrDegenerateConversion,
// ErrIndexOutOfRange, ErrNegativeDimension and ErrTooLarge.
package matrix
