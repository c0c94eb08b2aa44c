package pixedit

import "github.com/gopix/pixedit/internal/kernel"

// Luminance weights for grayscale conversion (ITU-R BT.601).
const (
	lumR = 0.299
	lumG = 0.587
	lumB = 0.114
)

// DefaultRegistry returns a registry pre-populated with the built-in
// filters: grayscale, invert, blur, sepia, rotate and flip.
func DefaultRegistry() *FilterRegistry {
	r := NewRegistry()
	for _, f := range []struct {
		name      string
		transform Transform
	}{
		{"grayscale", Grayscale},
		{"invert", Invert},
		{"blur", Blur},
		{"sepia", Sepia},
		{"rotate", Rotate},
		{"flip", Flip},
	} {
		// Built-in names are non-empty, so Register cannot fail.
		_ = r.Register(f.name, f.transform)
	}
	return r
}

// Grayscale converts an RGB buffer to a single luminance channel using
// BT.601 weights, rounding to the nearest integer. Input that is already
// single-channel passes through unchanged, making the filter idempotent.
func Grayscale(b *Buffer) *Buffer {
	if b.channels == 1 {
		return b.Clone()
	}

	out := make([]uint8, b.height*b.width)
	for i, j := 0, 0; i < len(out); i, j = i+1, j+3 {
		v := lumR*float64(b.samples[j]) +
			lumG*float64(b.samples[j+1]) +
			lumB*float64(b.samples[j+2])
		out[i] = clampUint8(v)
	}

	return &Buffer{height: b.height, width: b.width, channels: 1, samples: out}
}

// Invert replaces every sample s with 255-s, per channel. Applying the
// filter twice restores the input exactly.
func Invert(b *Buffer) *Buffer {
	out := make([]uint8, len(b.samples))
	for i, s := range b.samples {
		out[i] = 255 - s
	}

	return &Buffer{height: b.height, width: b.width, channels: b.channels, samples: out}
}

// Blur applies a 3x3 box blur to each channel independently. Border
// pixels average only their in-bounds neighbors, with the kernel
// re-normalized to the weights actually used, so edges do not darken.
func Blur(b *Buffer) *Buffer {
	out := kernel.Box(3).Convolve(b.samples, b.height, b.width, b.channels)
	return &Buffer{height: b.height, width: b.width, channels: b.channels, samples: out}
}

// Sepia applies the classic sepia tone matrix to RGB buffers.
// Single-channel input passes through unchanged.
func Sepia(b *Buffer) *Buffer {
	if b.channels == 1 {
		return b.Clone()
	}

	out := make([]uint8, len(b.samples))
	for i := 0; i < len(out); i += 3 {
		r := float64(b.samples[i])
		g := float64(b.samples[i+1])
		bl := float64(b.samples[i+2])

		out[i] = clampUint8(0.393*r + 0.769*g + 0.189*bl)
		out[i+1] = clampUint8(0.349*r + 0.686*g + 0.168*bl)
		out[i+2] = clampUint8(0.272*r + 0.534*g + 0.131*bl)
	}

	return &Buffer{height: b.height, width: b.width, channels: b.channels, samples: out}
}

// Rotate turns the image a quarter turn clockwise. An HxW buffer becomes
// WxH; channel count is preserved.
func Rotate(b *Buffer) *Buffer {
	out := make([]uint8, len(b.samples))
	// Destination is b.height pixels wide: dst(x', y') = src(x, y) with
	// x' = H-1-y and y' = x.
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			src := (y*b.width + x) * b.channels
			dst := (x*b.height + (b.height - 1 - y)) * b.channels
			copy(out[dst:dst+b.channels], b.samples[src:src+b.channels])
		}
	}

	return &Buffer{height: b.width, width: b.height, channels: b.channels, samples: out}
}

// Flip mirrors the image horizontally. Pixels move as whole units, so
// channels stay interleaved in their original order.
func Flip(b *Buffer) *Buffer {
	out := make([]uint8, len(b.samples))
	for y := 0; y < b.height; y++ {
		row := y * b.width * b.channels
		for x := 0; x < b.width; x++ {
			src := row + x*b.channels
			dst := row + (b.width-1-x)*b.channels
			copy(out[dst:dst+b.channels], b.samples[src:src+b.channels])
		}
	}

	return &Buffer{height: b.height, width: b.width, channels: b.channels, samples: out}
}
