package gmath

import (
	"iter"
	"math"

	"deedles.dev/xiter"
)

// Color is an RGBA color in the working color space. All channel
// values are normalized to [0, 1] and thus are free from color depth
// limits. Operations do not clamp; use [Color.Clamp] before handing a
// color to something that expects in-range channels.
//
// The zero value is fully transparent black.
type Color struct {
	R, G, B, A float64
}

// RGB returns the fully opaque color with the given channels.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA returns the color with the given channels.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Unpack returns the color packed into p as 8 bits per channel in
// RGBA order, with red in the most significant byte.
func Unpack(p uint32) Color {
	return Color{
		R: float64(p>>24&0xFF) / 0xFF,
		G: float64(p>>16&0xFF) / 0xFF,
		B: float64(p>>8&0xFF) / 0xFF,
		A: float64(p&0xFF) / 0xFF,
	}
}

// Pack returns c packed into a uint32 as 8 bits per channel in RGBA
// order, with red in the most significant byte. Channels are clamped
// to [0, 1] and rounded to the nearest representable value.
func (c Color) Pack() uint32 {
	return pack8(c.R)<<24 | pack8(c.G)<<16 | pack8(c.B)<<8 | pack8(c.A)
}

func pack8(v float64) uint32 {
	return uint32(math.Round(Saturate(v) * 0xFF))
}

// Add returns the channel-wise sum of c and o.
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B, c.A + o.A}
}

// Mul returns the channel-wise product of c and o, i.e. a multiply
// blend.
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B, c.A * o.A}
}

// MulScalar returns c with every channel multiplied by s.
func (c Color) MulScalar(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s, c.A * s}
}

// Lerp blends channel-wise from c to o by t. The parameter is not
// clamped.
func (c Color) Lerp(o Color, t float64) Color {
	return Color{
		R: Lerp(c.R, o.R, t),
		G: Lerp(c.G, o.G, t),
		B: Lerp(c.B, o.B, t),
		A: Lerp(c.A, o.A, t),
	}
}

// Clamp returns c with every channel clamped to [0, 1].
func (c Color) Clamp() Color {
	return Color{
		R: Saturate(c.R),
		G: Saturate(c.G),
		B: Saturate(c.B),
		A: Saturate(c.A),
	}
}

// Luminance returns the relative luminance of c using the Rec. 709
// channel weights.
func (c Color) Luminance() float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// Ramp returns an iterator that yields steps colors blended evenly
// from one color to the other, endpoints included.
func Ramp(from, to Color, steps int) iter.Seq[Color] {
	return func(yield func(Color) bool) {
		if steps == 1 {
			yield(from)
			return
		}
		for i := range steps {
			if !yield(from.Lerp(to, float64(i)/float64(steps-1))) {
				return
			}
		}
	}
}

// RampInto is the same as [Ramp] except that it fills ramp with the
// successive colors instead of yielding them from an iterator.
func RampInto(ramp []Color, from, to Color) {
	for i, c := range xiter.Enumerate(Ramp(from, to, len(ramp))) {
		ramp[i] = c
	}
}
