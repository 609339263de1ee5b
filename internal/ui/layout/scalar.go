//go:build !scalar_i32

package layout

// Scalar is the numeric type of every coordinate and extent in the tree.
// Build with the scalar_i32 tag to switch to integer cells.
type Scalar = float64
