package layout

import (
	"fmt"
	"math"

	uv "github.com/charmbracelet/ultraviolet"
)

// Rectangle is an integer cell rectangle as used by the terminal renderer.
type Rectangle = uv.Rectangle

// Rect creates a Rectangle from an origin and a size.
func Rect(x, y, width, height int) Rectangle {
	return uv.Rect(x, y, width, height)
}

// Dimensions is a width/height pair.
type Dimensions struct {
	Width  Scalar
	Height Scalar
}

func NewDimensions(width, height Scalar) Dimensions {
	return Dimensions{Width: width, Height: height}
}

// Max returns the element-wise maximum of d and o.
func (d Dimensions) Max(o Dimensions) Dimensions {
	return Dimensions{Width: max(d.Width, o.Width), Height: max(d.Height, o.Height)}
}

// Along returns the extent of d on the given axis.
func (d Dimensions) Along(axis Axis) Scalar {
	if axis == Horizontal {
		return d.Width
	}
	return d.Height
}

// Across returns the extent of d on the axis perpendicular to the given one.
func (d Dimensions) Across(axis Axis) Scalar {
	return d.Along(axis.Cross())
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%vx%v", d.Width, d.Height)
}

// Bounds is an origin plus a size. Slot bounds are relative to the parent slot.
type Bounds struct {
	X    Scalar
	Y    Scalar
	Size Dimensions
}

func NewBounds(x, y, width, height Scalar) Bounds {
	return Bounds{X: x, Y: y, Size: Dimensions{Width: width, Height: height}}
}

// Offset returns b moved by dx, dy.
func (b Bounds) Offset(dx, dy Scalar) Bounds {
	b.X += dx
	b.Y += dy
	return b
}

// Contains reports whether the point lies inside b. The trailing edges are exclusive.
func (b Bounds) Contains(x, y Scalar) bool {
	return x >= b.X && x < b.X+b.Size.Width && y >= b.Y && y < b.Y+b.Size.Height
}

// Rectangle converts b to a cell rectangle, rounding every edge to the nearest cell.
func (b Bounds) Rectangle() Rectangle {
	minX := round(b.X)
	minY := round(b.Y)
	maxX := round(b.X + b.Size.Width)
	maxY := round(b.Y + b.Size.Height)
	return uv.Rect(minX, minY, maxX-minX, maxY-minY)
}

func (b Bounds) String() string {
	return fmt.Sprintf("(%v,%v %v)", b.X, b.Y, b.Size)
}

func round(v Scalar) int {
	return int(math.Round(float64(v)))
}

// Axis selects the horizontal or vertical direction.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Cross returns the perpendicular axis.
func (a Axis) Cross() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}
