// Package spectral implements the frequency-domain kernel shared by the
// spectral effects: an in-place radix-2 FFT over parallel real/imaginary
// slices, the windowed overlap-add driver, and phase-vocoder state.
//
// Frame sizes are fixed power-of-two constants chosen by each effect. A
// non-power-of-two length therefore indicates an engine bug, not a caller
// error, and the transforms panic rather than return an error.
package spectral

import "math"

// Forward performs an in-place radix-2 Cooley-Tukey FFT over the parallel
// real/imaginary slices. Both slices must share a power-of-two length.
func Forward(re, im []float64) {
	n := checkedLength(re, im)
	if n <= 1 {
		return
	}

	// Bit-reversal permutation.
	j := 0
	for i := 1; i < n; i++ {
		bit := n >> 1
		for j&bit != 0 {
			j ^= bit
			bit >>= 1
		}
		j ^= bit

		if i < j {
			re[i], re[j] = re[j], re[i]
			im[i], im[j] = im[j], im[i]
		}
	}

	// Butterfly stages. The twiddle factor advances multiplicatively per
	// butterfly instead of calling cos/sin for every index.
	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		stepRe := math.Cos(-2 * math.Pi / float64(size))
		stepIm := math.Sin(-2 * math.Pi / float64(size))

		for start := 0; start < n; start += size {
			wRe, wIm := 1.0, 0.0

			for k := range half {
				a := start + k
				b := a + half

				tr := wRe*re[b] - wIm*im[b]
				ti := wRe*im[b] + wIm*re[b]
				re[b] = re[a] - tr
				im[b] = im[a] - ti
				re[a] += tr
				im[a] += ti

				wRe, wIm = wRe*stepRe-wIm*stepIm, wRe*stepIm+wIm*stepRe
			}
		}
	}
}

// Inverse performs the in-place inverse transform: conjugate, forward
// transform, conjugate again, then scale every element by 1/N.
func Inverse(re, im []float64) {
	n := checkedLength(re, im)
	if n <= 1 {
		return
	}

	for i := range im {
		im[i] = -im[i]
	}

	Forward(re, im)

	scale := 1 / float64(n)
	for i := range re {
		re[i] *= scale
		im[i] = -im[i] * scale
	}
}

// NextPow2 returns the smallest power of two >= n, with n <= 1 mapping to 1.
func NextPow2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}

func isPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func checkedLength(re, im []float64) int {
	if len(re) != len(im) {
		panic("spectral: real and imaginary slices differ in length")
	}
	if !isPow2(len(re)) {
		panic("spectral: transform length must be a power of two")
	}

	return len(re)
}
