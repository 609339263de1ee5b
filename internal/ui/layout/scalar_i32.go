//go:build scalar_i32

package layout

// Scalar is the numeric type of every coordinate and extent in the tree.
type Scalar = int32
