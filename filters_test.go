package pixedit

import (
	"bytes"
	"testing"
)

// mustBuffer builds a buffer or stops the test.
func mustBuffer(t *testing.T, h, w, c int, samples []uint8) *Buffer {
	t.Helper()
	b, err := NewBuffer(h, w, c, samples)
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}
	return b
}

func TestGrayscaleWeights(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    uint8
	}{
		{name: "uniform 100", r: 100, g: 100, b: 100, want: 100}, // weights sum to 1
		{name: "pure red", r: 255, g: 0, b: 0, want: 76},         // round(76.245)
		{name: "pure green", r: 0, g: 255, b: 0, want: 150},      // round(149.685)
		{name: "pure blue", r: 0, g: 0, b: 255, want: 29},        // round(29.07)
		{name: "mixed", r: 10, g: 20, b: 30, want: 18},           // round(18.15)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := mustBuffer(t, 1, 1, 3, []uint8{tt.r, tt.g, tt.b})
			out := Grayscale(in)
			if out.Channels() != 1 {
				t.Fatalf("Channels() = %d, want 1", out.Channels())
			}
			if got := out.At(0, 0, 0); got != tt.want {
				t.Errorf("Grayscale(%d,%d,%d) = %d, want %d", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestGrayscaleIdempotent(t *testing.T) {
	in := mustBuffer(t, 2, 2, 3, []uint8{
		10, 20, 30, 200, 100, 50,
		0, 0, 0, 255, 255, 255,
	})

	once := Grayscale(in)
	twice := Grayscale(once)

	if twice.Channels() != 1 {
		t.Fatalf("Channels() = %d, want 1", twice.Channels())
	}
	if !bytes.Equal(once.samples, twice.samples) {
		t.Errorf("Grayscale(Grayscale(b)) = %v, want %v", twice.samples, once.samples)
	}
	// Second application must still be a fresh buffer, not the same one.
	if &once.samples[0] == &twice.samples[0] {
		t.Error("idempotent pass returned aliased storage")
	}
}

func TestInvertValues(t *testing.T) {
	in := mustBuffer(t, 1, 3, 1, []uint8{0, 100, 255})
	out := Invert(in)

	want := []uint8{255, 155, 0}
	if !bytes.Equal(out.samples, want) {
		t.Errorf("Invert() = %v, want %v", out.samples, want)
	}
}

func TestInvertSelfInverse(t *testing.T) {
	samples := make([]uint8, 4*5*3)
	for i := range samples {
		samples[i] = uint8(i * 37 % 256)
	}
	in := mustBuffer(t, 4, 5, 3, samples)

	out := Invert(Invert(in))
	if !bytes.Equal(out.samples, in.samples) {
		t.Errorf("Invert(Invert(b)) != b")
	}
}

func TestBlurPreservesShape(t *testing.T) {
	for _, c := range []int{1, 3} {
		in, err := Uniform(4, 7, c, 100)
		if err != nil {
			t.Fatalf("Uniform() error = %v", err)
		}
		out := Blur(in)
		if out.Height() != 4 || out.Width() != 7 || out.Channels() != c {
			t.Errorf("Blur shape = %dx%dx%d, want 4x7x%d",
				out.Height(), out.Width(), out.Channels(), c)
		}
	}
}

func TestBlurUniformExact(t *testing.T) {
	// With edge-shrinking re-normalization a solid image blurs to itself.
	in, err := Uniform(5, 5, 3, 100)
	if err != nil {
		t.Fatalf("Uniform() error = %v", err)
	}
	out := Blur(in)
	for i, s := range out.samples {
		if s != 100 {
			t.Fatalf("samples[%d] = %d, want 100", i, s)
		}
	}
}

func TestBlurImpulse(t *testing.T) {
	// A single bright pixel in the center of a 3x3 image. Every output
	// window contains it; border windows are re-normalized over the
	// in-bounds weights only.
	in := mustBuffer(t, 3, 3, 1, []uint8{
		0, 0, 0,
		0, 12, 0,
		0, 0, 0,
	})
	out := Blur(in)

	want := []uint8{
		3, 2, 3, // corners: 12/4 = 3, edges: 12/6 = 2
		2, 1, 2, // center: round(12/9) = 1
		3, 2, 3,
	}
	if !bytes.Equal(out.samples, want) {
		t.Errorf("Blur() = %v, want %v", out.samples, want)
	}
}

func TestBlurDeterministic(t *testing.T) {
	samples := make([]uint8, 6*6*3)
	for i := range samples {
		samples[i] = uint8(i * 53 % 256)
	}
	in := mustBuffer(t, 6, 6, 3, samples)

	first := Blur(in)
	second := Blur(in)
	if !bytes.Equal(first.samples, second.samples) {
		t.Error("Blur produced different output for identical input")
	}
	if !bytes.Equal(in.samples, samples) {
		t.Error("Blur mutated its input")
	}
}

func TestSepia(t *testing.T) {
	in := mustBuffer(t, 1, 2, 3, []uint8{
		100, 100, 100, // gray pixel: 0.393+0.769+0.189 = 1.351 etc.
		255, 255, 255, // white clamps to white-ish sepia
	})
	out := Sepia(in)

	want := []uint8{
		135, 120, 94, // round(135.1), round(120.3), round(93.7)
		255, 255, 239, // 344.5->255, 306.8->255, round(238.9)
	}
	if !bytes.Equal(out.samples, want) {
		t.Errorf("Sepia() = %v, want %v", out.samples, want)
	}
}

func TestSepiaGrayscalePassthrough(t *testing.T) {
	in := mustBuffer(t, 1, 2, 1, []uint8{10, 200})
	out := Sepia(in)

	if out.Channels() != 1 || !bytes.Equal(out.samples, in.samples) {
		t.Errorf("Sepia on 1-channel input = %v, want unchanged %v", out.samples, in.samples)
	}
	if &out.samples[0] == &in.samples[0] {
		t.Error("passthrough returned aliased storage")
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	// 2x3 single channel:
	//   1 2 3        4 1
	//   4 5 6   ->   5 2
	//                6 3
	in := mustBuffer(t, 2, 3, 1, []uint8{1, 2, 3, 4, 5, 6})
	out := Rotate(in)

	if out.Height() != 3 || out.Width() != 2 {
		t.Fatalf("rotated shape = %dx%d, want 3x2", out.Height(), out.Width())
	}
	want := []uint8{4, 1, 5, 2, 6, 3}
	if !bytes.Equal(out.samples, want) {
		t.Errorf("Rotate() = %v, want %v", out.samples, want)
	}
}

func TestRotateFourTimesIdentity(t *testing.T) {
	samples := make([]uint8, 3*4*3)
	for i := range samples {
		samples[i] = uint8(i)
	}
	in := mustBuffer(t, 3, 4, 3, samples)

	out := Rotate(Rotate(Rotate(Rotate(in))))
	if out.Height() != 3 || out.Width() != 4 {
		t.Fatalf("shape after four turns = %dx%d, want 3x4", out.Height(), out.Width())
	}
	if !bytes.Equal(out.samples, in.samples) {
		t.Error("four quarter turns did not restore the original")
	}
}

func TestFlip(t *testing.T) {
	// RGB pixels must move as whole units.
	in := mustBuffer(t, 1, 3, 3, []uint8{
		1, 2, 3, 4, 5, 6, 7, 8, 9,
	})
	out := Flip(in)

	want := []uint8{7, 8, 9, 4, 5, 6, 1, 2, 3}
	if !bytes.Equal(out.samples, want) {
		t.Errorf("Flip() = %v, want %v", out.samples, want)
	}

	if back := Flip(out); !bytes.Equal(back.samples, in.samples) {
		t.Error("Flip(Flip(b)) != b")
	}
}
