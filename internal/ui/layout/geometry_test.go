package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDimensions_Axis(t *testing.T) {
	d := NewDimensions(4, 7)
	assert.Equal(t, Scalar(4), d.Along(Horizontal))
	assert.Equal(t, Scalar(7), d.Along(Vertical))
	assert.Equal(t, Scalar(7), d.Across(Horizontal))
	assert.Equal(t, Scalar(4), d.Across(Vertical))
	assert.Equal(t, NewDimensions(5, 7), d.Max(NewDimensions(5, 2)))
	assert.Equal(t, "4x7", d.String())
}

func TestBounds_Contains(t *testing.T) {
	b := NewBounds(2, 3, 4, 5)
	tests := []struct {
		name     string
		x, y     Scalar
		expected bool
	}{
		{"origin", 2, 3, true},
		{"inside", 5, 7, true},
		{"right edge", 6, 3, false},
		{"bottom edge", 2, 8, false},
		{"left of", 1, 4, false},
		{"above", 3, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, b.Contains(tt.x, tt.y))
		})
	}
}

func TestBounds_Offset(t *testing.T) {
	b := NewBounds(2, 3, 4, 5)
	assert.Equal(t, NewBounds(12, 1, 4, 5), b.Offset(10, -2))
	assert.Equal(t, NewBounds(2, 3, 4, 5), b, "offset returns a copy")
	assert.Equal(t, "(2,3 4x5)", b.String())
}

func TestBounds_Rectangle(t *testing.T) {
	assert.Equal(t, Rect(2, 3, 4, 5), NewBounds(2, 3, 4, 5).Rectangle())
	assert.Equal(t, Rect(-1, 0, 3, 1), NewBounds(-1, 0, 3, 1).Rectangle())
}

func TestAxis(t *testing.T) {
	assert.Equal(t, Vertical, Horizontal.Cross())
	assert.Equal(t, Horizontal, Vertical.Cross())
	assert.Equal(t, "horizontal", Horizontal.String())
	assert.Equal(t, "vertical", Vertical.String())
}
