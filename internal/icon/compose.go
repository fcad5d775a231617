package icon

import (
	"fmt"

	"hashicon/internal/domain"
	"hashicon/internal/hash"
	"hashicon/internal/icon/cells"
	"hashicon/internal/icon/palette"
)

const (
	// GridSize is the fixed cell grid dimension.
	GridSize = 5

	// chainLength leaves the renderer 45 fingerprints after the five reserved
	// for palette, background and pattern selection.
	chainLength = 50

	borderOpacity = 0.25
)

// Compose builds the image description for seed at the given pixel size.
// pixelSize must be positive; smaller values fail with ErrInvalidArgument.
func Compose(seed string, pixelSize int, circular bool) (domain.Image, error) {
	if pixelSize <= 0 {
		return domain.Image{}, fmt.Errorf("pixel size %d: %w", pixelSize, domain.ErrInvalidArgument)
	}
	chain, err := hash.Chain(seed, chainLength)
	if err != nil {
		return domain.Image{}, err
	}

	colors := [3]domain.Color{
		palette.FromHash(chain[0]),
		palette.FromHash(chain[1]),
		palette.FromHash(chain[2]),
	}
	background := palette.ShadeFromHash(chain[3], true)
	pattern := cells.SelectPattern(chain[4])

	cell := float64(pixelSize) / GridSize
	img := domain.Image{
		Size:       pixelSize,
		Background: background,
		Elements:   cells.Render(chain[5:], pattern, GridSize, cell, colors),
	}
	if circular {
		r := float64(pixelSize) / 2
		img.Clip = &domain.Circle{CX: r, CY: r, R: r}
		img.Border = &domain.Border{
			Color:   domain.Color{Hue: 0, Saturation: 0, Lightness: 100},
			Opacity: borderOpacity,
			Width:   cell / 4,
		}
	}
	return img, nil
}
