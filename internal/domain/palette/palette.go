package palette

import (
	"errors"
	"image/color"
	"log"

	"github.com/lucasb-eyer/go-colorful"

	"directa/cotizador/internal/domain/picture"
)

// Palette holds the two theme colours as CSS hex strings.
type Palette struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

var Default = Palette{Primary: "#4f46e5", Secondary: "#64748b"}

// FallbackSecondary is used when no palette entry differs enough from the dominant colour.
var FallbackSecondary = color.RGBA{R: 100, G: 116, B: 139, A: 255}

// channelThreshold is the per-channel distance a secondary colour must exceed
// in at least one channel.
const channelThreshold = 20

var ErrNoColors = errors.New("palette: no usable pixels")

// FromImage extracts a palette from an uploaded logo. Any failure is logged and
// the default palette returned.
func FromImage(data []byte) Palette {
	p, err := Extract(data)
	if err != nil {
		log.Printf("palette: extract failed, using default: %v", err)
		return Default
	}
	return p
}

func Extract(data []byte) (Palette, error) {
	img, format, err := picture.Decode(data)
	if err != nil {
		return Default, err
	}
	pixels := sample(img, sampleStep)
	if len(pixels) == 0 {
		return Default, ErrNoColors
	}

	dominant := quantize(pixels, 5)[0]
	secondary := FallbackSecondary
	for _, c := range quantize(pixels, 2) {
		if differs(c, dominant) {
			secondary = c
			break
		}
	}
	log.Printf("palette: extracted format=%s pixels=%d primary=%s secondary=%s",
		format, len(pixels), hex(dominant), hex(secondary))
	return Palette{Primary: hex(dominant), Secondary: hex(secondary)}, nil
}

// RGB resolves a CSS hex colour, falling back to def when s cannot be parsed.
func RGB(s string, def string) (r, g, b int) {
	c, err := colorful.Hex(s)
	if err != nil {
		c, _ = colorful.Hex(def)
	}
	r8, g8, b8 := c.RGB255()
	return int(r8), int(g8), int(b8)
}

func (p Palette) PrimaryRGB() (r, g, b int)   { return RGB(p.Primary, Default.Primary) }
func (p Palette) SecondaryRGB() (r, g, b int) { return RGB(p.Secondary, Default.Secondary) }

func differs(a, b color.RGBA) bool {
	return absDiff(a.R, b.R) > channelThreshold ||
		absDiff(a.G, b.G) > channelThreshold ||
		absDiff(a.B, b.B) > channelThreshold
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

func hex(c color.RGBA) string {
	cc, _ := colorful.MakeColor(c)
	return cc.Hex()
}
