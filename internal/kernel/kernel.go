// Package kernel implements small square convolution kernels for
// per-channel image filtering.
package kernel

// Kernel is a square convolution kernel with row-major weights. Kernels
// produced by this package sum to 1 so convolution preserves mean
// brightness.
type Kernel struct {
	size    int
	weights []float64
}

// Box returns a normalized uniform kernel of the given odd size.
// Box(3) is the classic 3x3 mean blur with all weights 1/9.
// Panics if size is even or not positive.
func Box(size int) Kernel {
	if size < 1 || size%2 == 0 {
		panic("kernel: size must be odd and positive")
	}

	weights := make([]float64, size*size)
	v := 1.0 / float64(len(weights))
	for i := range weights {
		weights[i] = v
	}

	return Kernel{size: size, weights: weights}
}

// Size returns the kernel's side length.
func (k Kernel) Size() int {
	return k.size
}

// Weights returns a copy of the row-major kernel weights.
func (k Kernel) Weights() []float64 {
	w := make([]float64, len(k.weights))
	copy(w, k.weights)
	return w
}

// Convolve applies the kernel to samples interpreted as an h×w image
// with c interleaved channels and returns a freshly allocated result.
// The input slice is never modified.
//
// Border pixels use only the in-bounds portion of the kernel,
// re-normalized by the sum of the weights actually applied. This edge
// shrinking keeps brightness stable at borders, unlike zero padding
// which darkens them.
func (k Kernel) Convolve(samples []uint8, h, w, c int) []uint8 {
	out := make([]uint8, len(samples))
	half := k.size / 2

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for ch := 0; ch < c; ch++ {
				var acc, used float64
				for ky := -half; ky <= half; ky++ {
					sy := y + ky
					if sy < 0 || sy >= h {
						continue
					}
					for kx := -half; kx <= half; kx++ {
						sx := x + kx
						if sx < 0 || sx >= w {
							continue
						}
						weight := k.weights[(ky+half)*k.size+(kx+half)]
						acc += weight * float64(samples[(sy*w+sx)*c+ch])
						used += weight
					}
				}
				// The center tap is always in bounds, so used > 0.
				out[(y*w+x)*c+ch] = clampUint8(acc / used)
			}
		}
	}

	return out
}

// clampUint8 clamps v to [0, 255] and rounds to the nearest integer.
func clampUint8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
