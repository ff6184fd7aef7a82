package gesture

// Matrices are 2D affines laid out as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |

// pivotZoomAffine returns the matrix that scales by z about (px, py) and then
// translates by (dx, dy):
//
//	x' = z*(x - px) + px + dx
func pivotZoomAffine(px, py, z, dx, dy float64) [6]float64 {
	return [6]float64{z, 0, 0, z, px + dx - z*px, py + dy - z*py}
}

// invertPivotZoom inverts a matrix built by pivotZoomAffine. A zero scale has
// no inverse; the identity is returned so coordinate queries stay finite.
func invertPivotZoom(m [6]float64) [6]float64 {
	z := m[0]
	if z > -1e-12 && z < 1e-12 {
		return [6]float64{1, 0, 0, 1, 0, 0}
	}
	return [6]float64{1 / z, 0, 0, 1 / z, -m[4] / z, -m[5] / z}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
