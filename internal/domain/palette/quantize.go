package palette

import (
	"image"
	"image/color"
	"sort"

	"github.com/soniakeys/quant/median"
)

// sampleStep takes every n-th pixel of the flattened image.
var sampleStep = 10

func sample(img image.Image, step int) []color.RGBA {
	if step < 1 {
		step = 1
	}
	b := img.Bounds()
	w := b.Dx()
	total := w * b.Dy()
	out := make([]color.RGBA, 0, total/step+1)
	for i := 0; i < total; i += step {
		x := b.Min.X + i%w
		y := b.Min.Y + i/w
		c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
		if c.A < 125 {
			continue
		}
		if c.R > 250 && c.G > 250 && c.B > 250 {
			continue
		}
		out = append(out, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
	}
	return out
}

// quantize runs median cut over the sampled pixels and returns at most n
// colours ordered by how many pixels each one stands for. pixels must not be
// empty and n must be between 2 and 256.
func quantize(pixels []color.RGBA, n int) []color.RGBA {
	strip := image.NewRGBA(image.Rect(0, 0, len(pixels), 1))
	for i, c := range pixels {
		strip.SetRGBA(i, 0, c)
	}

	pi := median.Quantizer(n).Paletted(strip)
	counts := make([]int, len(pi.Palette))
	for _, idx := range pi.Pix {
		counts[idx]++
	}

	order := make([]int, len(pi.Palette))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return counts[order[a]] > counts[order[b]] })

	out := make([]color.RGBA, 0, len(order))
	for _, i := range order {
		if counts[i] == 0 {
			continue
		}
		out = append(out, color.RGBAModel.Convert(pi.Palette[i]).(color.RGBA))
	}
	return out
}
