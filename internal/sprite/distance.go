package sprite

import "math"

// edtInf stands in for infinity in the squared distance transform. True
// infinities turn parabola intersections into NaN.
const edtInf = 1e20

// BoundaryDistance computes the unsigned distance, in pixels, from every
// pixel to the boundary of the region where mask > 0.
//
// The boundary is the zero level set of phi = (mask > 0 ? 0 : -1) + 0.5, which
// runs half way between an inside pixel center and its outside neighbor. The
// distance of a pixel is therefore its exact Euclidean distance to the nearest
// pixel on the other side of the boundary, minus one half. Pixels adjacent to
// the boundary sit at 0.5 on either side.
//
// The second result is false when the mask has no boundary (all zero or all
// nonzero); the distance is undefined then and the returned slice is nil.
func BoundaryDistance(mask *Mask) ([]float64, bool) {
	n := len(mask.Alpha)
	inside := 0
	for _, a := range mask.Alpha {
		if a > 0 {
			inside++
		}
	}
	if inside == 0 || inside == n {
		return nil, false
	}

	// Squared distance to the nearest outside pixel, and to the nearest inside pixel.
	toOutside := make([]float64, n)
	toInside := make([]float64, n)
	for i, a := range mask.Alpha {
		if a > 0 {
			toOutside[i] = edtInf
		} else {
			toInside[i] = edtInf
		}
	}
	squaredEDT(toOutside, mask.Width, mask.Height)
	squaredEDT(toInside, mask.Width, mask.Height)

	dist := make([]float64, n)
	for i, a := range mask.Alpha {
		sq := toInside[i]
		if a > 0 {
			sq = toOutside[i]
		}
		dist[i] = math.Sqrt(sq) - 0.5
	}
	return dist, true
}

// squaredEDT replaces each sample of grid with the squared Euclidean distance
// to the nearest zero sample, using the separable transform of Felzenszwalb
// and Huttenlocher: one 1D pass down every column, then one along every row.
func squaredEDT(grid []float64, width, height int) {
	size := width
	if height > size {
		size = height
	}
	f := make([]float64, size)
	d := make([]float64, size)
	v := make([]int, size)
	z := make([]float64, size+1)

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			f[y] = grid[y*width+x]
		}
		edt1D(f[:height], d, v, z)
		for y := 0; y < height; y++ {
			grid[y*width+x] = d[y]
		}
	}

	for y := 0; y < height; y++ {
		row := grid[y*width : (y+1)*width]
		copy(f, row)
		edt1D(f[:width], d, v, z)
		copy(row, d[:width])
	}
}

// edt1D computes the lower envelope of the parabolas rooted at f and samples
// it at every index into d. v and z are scratch space of len(f) and len(f)+1.
func edt1D(f, d []float64, v []int, z []float64) {
	n := len(f)
	if n == 0 {
		return
	}

	k := 0
	v[0] = 0
	z[0] = math.Inf(-1)
	z[1] = math.Inf(1)
	for q := 1; q < n; q++ {
		s := parabolaIntersect(f, v[k], q)
		for s <= z[k] {
			k--
			s = parabolaIntersect(f, v[k], q)
		}
		k++
		v[k] = q
		z[k] = s
		z[k+1] = math.Inf(1)
	}

	k = 0
	for q := 0; q < n; q++ {
		for z[k+1] < float64(q) {
			k++
		}
		dq := float64(q - v[k])
		d[q] = dq*dq + f[v[k]]
	}
}

// parabolaIntersect returns the abscissa where the parabolas rooted at p and q meet.
func parabolaIntersect(f []float64, p, q int) float64 {
	fp := f[p] + float64(p*p)
	fq := f[q] + float64(q*q)
	return (fq - fp) / float64(2*(q-p))
}
