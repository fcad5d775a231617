package palette

import "hashicon/internal/domain"

// FromHash derives a foreground color from a fingerprint.
func FromHash(fp domain.Fingerprint) domain.Color {
	n := int(fp)
	return domain.Color{
		Hue:        n % 360,
		Saturation: 50 + n%40,
		Lightness:  45 + n%20,
	}
}

// ShadeFromHash derives a background shade from a fingerprint, dark or light.
func ShadeFromHash(fp domain.Fingerprint, dark bool) domain.Color {
	n := int(fp)
	c := domain.Color{
		Hue:        n % 360,
		Saturation: 40 + n%30,
	}
	if dark {
		c.Lightness = 25 + n%15
	} else {
		c.Lightness = 65 + n%20
	}
	return c
}
