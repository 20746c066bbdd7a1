// core/dist/dist.go
package dist

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrEmpty indicates a distance matrix over zero points.
	ErrEmpty = errors.New("dist: empty point set")
	// ErrRagged indicates input haplotypes of unequal length.
	ErrRagged = errors.New("dist: haplotypes differ in length")
)

// Matrix is a symmetric matrix of pairwise Hamming distances. The symmetric
// storage makes D[i][j] == D[j][i] a property of the type rather than a
// convention; D[i][i] is zero by construction.
type Matrix struct {
	sym *mat.SymDense
}

// Hamming builds the pairwise distance matrix over the given haplotypes.
func Hamming(haps [][]byte) (Matrix, error) {
	n := len(haps)
	if n == 0 {
		return Matrix{}, ErrEmpty
	}
	w := len(haps[0])
	for _, h := range haps[1:] {
		if len(h) != w {
			return Matrix{}, ErrRagged
		}
	}
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := 0
			for k := 0; k < w; k++ {
				if haps[i][k] != haps[j][k] {
					d++
				}
			}
			sym.SetSym(i, j, float64(d))
		}
	}
	return Matrix{sym: sym}, nil
}

// FromDense restores a Matrix from its flattened upper-triangular-complete
// row-major form (the session wire format).
func FromDense(n int, data []float64) Matrix {
	return Matrix{sym: mat.NewSymDense(n, data)}
}

// N returns the number of points.
func (m Matrix) N() int {
	if m.sym == nil {
		return 0
	}
	n, _ := m.sym.Dims()
	return n
}

// At returns the distance between points i and j.
func (m Matrix) At(i, j int) float64 { return m.sym.At(i, j) }

// Dense returns the row-major n*n backing data (copied), for persistence.
func (m Matrix) Dense() []float64 {
	n := m.N()
	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i*n+j] = m.sym.At(i, j)
		}
	}
	return out
}
