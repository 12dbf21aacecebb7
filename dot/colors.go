package dot

import "fmt"

// contrastingColors returns n hex RGB strings with hues spread evenly
// around the wheel at full saturation and value, so neighboring class
// indices stay visually far apart.
func contrastingColors(n int) []string {
	out := make([]string, n)
	for i := 0; i < n; i++ {
		r, g, b := hueToRGB(360.0 / float64(n) * float64(i))
		out[i] = fmt.Sprintf("#%02X%02X%02X", r, g, b)
	}

	return out
}

// hueToRGB converts an HSV hue in [0,360) at s=v=1 to 8-bit RGB.
func hueToRGB(h float64) (r, g, b uint8) {
	sector := int(h/60.0) % 6
	f := h/60.0 - float64(int(h/60.0))
	q := uint8(255 * (1 - f))
	t := uint8(255 * f)

	switch sector {
	case 0:
		return 255, t, 0
	case 1:
		return q, 255, 0
	case 2:
		return 0, 255, t
	case 3:
		return 0, q, 255
	case 4:
		return t, 0, 255
	default:
		return 255, 0, q
	}
}
