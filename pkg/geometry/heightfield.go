package geometry

import (
	"math"

	"github.com/taigrr/vantage/pkg/math3d"
)

// doubleSideOffset separates the two copies of a heightfield surface so
// single-sided renderers show it from both above and below.
const doubleSideOffset = 1e-3

// Heightfield creates a double-sided surface from a matrix of z-samples
// over a rectangular X/Y domain centered on the origin. heights[i][j] maps
// to y = rows direction i, x = columns direction j, scaled by spacingX,
// spacingY and scaleZ. Every grid point is emitted twice, displaced by a
// small offset above and below the sampled height, and the top and bottom
// grids are tiled with opposite winding.
func Heightfield(heights [][]float64, spacingX, spacingY, scaleZ float64) (*Mesh, error) {
	rows := len(heights)
	if rows < 2 {
		return nil, invalidf("heightfield needs at least 2 rows, got %d", rows)
	}
	cols := len(heights[0])
	if cols < 2 {
		return nil, invalidf("heightfield needs at least 2 columns, got %d", cols)
	}
	for i, row := range heights {
		if len(row) != cols {
			return nil, invalidf("heightfield row %d has %d columns, want %d", i, len(row), cols)
		}
		for j, h := range row {
			if math.IsNaN(h) || math.IsInf(h, 0) {
				return nil, invalidf("heightfield sample (%d,%d) is not finite", i, j)
			}
		}
	}
	if spacingX <= 0 || spacingY <= 0 || scaleZ <= 0 {
		return nil, invalidf("heightfield scale factors must be positive, got (%g, %g, %g)", spacingX, spacingY, scaleZ)
	}

	m := &Mesh{}
	halfX := spacingX * float64(cols-1) / 2
	halfY := spacingY * float64(rows-1) / 2

	// Top sheet first, then the bottom sheet at the same grid order.
	for _, side := range []float64{doubleSideOffset, -doubleSideOffset} {
		for i := range rows {
			for j := range cols {
				m.addVertex(math3d.P3(
					spacingX*float64(j)-halfX,
					spacingY*float64(i)-halfY,
					heights[i][j]*scaleZ+side,
				))
			}
		}
	}

	bottom := rows * cols
	at := func(i, j int) int { return i*cols + j }

	for i := 0; i < rows-1; i++ {
		for j := 0; j < cols-1; j++ {
			// Top grid faces +Z, bottom grid reversed to face -Z.
			m.addQuad(at(i, j), at(i, j+1), at(i+1, j+1), at(i+1, j))
			m.addQuad(bottom+at(i, j), bottom+at(i+1, j), bottom+at(i+1, j+1), bottom+at(i, j+1))
		}
	}

	return m, nil
}
