package imgio

import (
	"image"
	"image/color"

	"github.com/gopix/pixedit"
)

// FromImage converts any image.Image into a 3-channel RGB buffer.
// Alpha is discarded; decoded pixels arrive premultiplied through the
// standard RGBA accessor.
func FromImage(img image.Image) (*pixedit.Buffer, error) {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	samples := make([]uint8, 0, h*w*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			samples = append(samples, uint8(r>>8), uint8(g>>8), uint8(b>>8))
		}
	}

	return pixedit.NewBuffer(h, w, 3, samples)
}

// ToImage converts a buffer to a standard library image: *image.Gray for
// single-channel buffers, *image.RGBA otherwise.
func ToImage(b *pixedit.Buffer) image.Image {
	w := b.Width()
	h := b.Height()

	if b.Channels() == 1 {
		img := image.NewGray(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				img.SetGray(x, y, color.Gray{Y: b.At(y, x, 0)})
			}
		}
		return img
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: b.At(y, x, 0),
				G: b.At(y, x, 1),
				B: b.At(y, x, 2),
				A: 255,
			})
		}
	}
	return img
}
