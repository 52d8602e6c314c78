package render

import "image/color"

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.Color) color.RGBA {
	n := ToRGBA(c)
	return color.RGBA{
		R: uint8(float64(n.R) * 0.5),
		G: uint8(float64(n.G) * 0.5),
		B: uint8(float64(n.B) * 0.5),
		A: n.A,
	}
}

// ToRGBA converts any colour to 8-bit non-premultiplied components.
func ToRGBA(c color.Color) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: n.A}
}
