package pixedit

import "fmt"

// Buffer is an in-memory image: height × width × channels uint8 samples
// stored row-major in a flat slice, channels interleaved per pixel.
// A Buffer has no public mutators. Filters return fresh buffers and
// Clone never shares backing storage, so no two buffers alias.
type Buffer struct {
	height   int
	width    int
	channels int
	samples  []uint8
}

// NewBuffer creates a buffer from raw dimensions and sample data.
// Channels must be 1 (grayscale) or 3 (RGB) and len(samples) must equal
// h*w*c, otherwise NewBuffer fails with ErrShape. The sample slice is
// copied, not retained.
func NewBuffer(h, w, c int, samples []uint8) (*Buffer, error) {
	if h <= 0 || w <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrShape, h, w)
	}
	if c != 1 && c != 3 {
		return nil, fmt.Errorf("%w: %d channels", ErrShape, c)
	}
	if len(samples) != h*w*c {
		return nil, fmt.Errorf("%w: %d samples for %dx%dx%d", ErrShape, len(samples), h, w, c)
	}

	data := make([]uint8, len(samples))
	copy(data, samples)

	return &Buffer{height: h, width: w, channels: c, samples: data}, nil
}

// Uniform creates a buffer with every sample set to v. It is mostly a
// convenience for solid backgrounds and tests.
func Uniform(h, w, c int, v uint8) (*Buffer, error) {
	if h <= 0 || w <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrShape, h, w)
	}
	if c != 1 && c != 3 {
		return nil, fmt.Errorf("%w: %d channels", ErrShape, c)
	}

	samples := make([]uint8, h*w*c)
	for i := range samples {
		samples[i] = v
	}

	return &Buffer{height: h, width: w, channels: c, samples: samples}, nil
}

// Height returns the number of pixel rows.
func (b *Buffer) Height() int {
	return b.height
}

// Width returns the number of pixel columns.
func (b *Buffer) Width() int {
	return b.width
}

// Channels returns the number of samples per pixel: 1 or 3.
func (b *Buffer) Channels() int {
	return b.channels
}

// At returns the sample for channel ch of the pixel at row y, column x.
// Coordinates outside the buffer panic via the slice bounds check.
func (b *Buffer) At(y, x, ch int) uint8 {
	return b.samples[(y*b.width+x)*b.channels+ch]
}

// Samples returns a copy of the raw sample data in row-major order.
// Modifying the returned slice does not affect the buffer.
func (b *Buffer) Samples() []uint8 {
	data := make([]uint8, len(b.samples))
	copy(data, b.samples)
	return data
}

// Clone creates a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	data := make([]uint8, len(b.samples))
	copy(data, b.samples)

	return &Buffer{
		height:   b.height,
		width:    b.width,
		channels: b.channels,
		samples:  data,
	}
}

// clampUint8 clamps v to [0, 255] and rounds to the nearest integer.
// Rounding rather than truncating avoids systematic darkening.
func clampUint8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
