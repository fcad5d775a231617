package cells

import "hashicon/internal/domain"

// Render fills the grid from the fingerprint chain and returns the ordered
// element list: row-major over the left half of the grid, each non-center
// element immediately followed by its horizontal mirror.
//
// A cell at (x, y) reads chain[(y*gridSize+x) mod len(chain)], fills only
// when that fingerprint is even, and takes its color from palette[fp mod 3].
func Render(chain []domain.Fingerprint, pattern domain.PatternType, gridSize int, cellPixels float64, palette [3]domain.Color) []domain.CellElement {
	if len(chain) == 0 || gridSize <= 0 {
		return nil
	}
	half := (gridSize + 1) / 2
	total := float64(gridSize) * cellPixels

	var elements []domain.CellElement
	for y := 0; y < gridSize; y++ {
		for x := 0; x < half; x++ {
			fp := chain[(y*gridSize+x)%len(chain)]
			if fp%2 != 0 {
				continue
			}
			el := shapeAt(pattern, fp, float64(x)*cellPixels, float64(y)*cellPixels, cellPixels, palette[int(fp)%3])
			elements = append(elements, el)
			if gridSize-1-x != x {
				elements = append(elements, mirrored(el, total))
			}
		}
	}
	return elements
}

// shapeAt builds the element for one cell anchored at (left, top).
func shapeAt(pattern domain.PatternType, fp domain.Fingerprint, left, top, cell float64, color domain.Color) domain.CellElement {
	switch pattern {
	case domain.PatternTriangles:
		return domain.CellElement{
			Kind:    domain.ShapePolygon,
			Color:   color,
			Polygon: trianglePoints(int(fp)%4, left, top, cell),
		}
	case domain.PatternCircles:
		return domain.CellElement{
			Kind:  domain.ShapeCircle,
			Color: color,
			Circle: &domain.Circle{
				CX: left + cell/2,
				CY: top + cell/2,
				R:  cell / 2 * (0.6 + float64(int(fp)%4)*0.1),
			},
		}
	case domain.PatternDiamonds:
		return domain.CellElement{
			Kind:  domain.ShapePolygon,
			Color: color,
			Polygon: []domain.Point{
				{X: left + cell/2, Y: top},
				{X: left + cell, Y: top + cell/2},
				{X: left + cell/2, Y: top + cell},
				{X: left, Y: top + cell/2},
			},
		}
	case domain.PatternStripes:
		y := top
		if int(fp)%2 == 1 {
			y = top + cell/2
		}
		return domain.CellElement{
			Kind:  domain.ShapeRect,
			Color: color,
			Rect:  &domain.Rect{X: left, Y: y, W: cell, H: cell / 2},
		}
	default: // blocks
		return domain.CellElement{
			Kind:  domain.ShapeRect,
			Color: color,
			Rect:  &domain.Rect{X: left, Y: top, W: cell, H: cell},
		}
	}
}

// trianglePoints returns one of four right-triangle orientations, each
// covering half the cell diagonally.
func trianglePoints(orientation int, left, top, cell float64) []domain.Point {
	tl := domain.Point{X: left, Y: top}
	tr := domain.Point{X: left + cell, Y: top}
	br := domain.Point{X: left + cell, Y: top + cell}
	bl := domain.Point{X: left, Y: top + cell}
	switch orientation {
	case 0:
		return []domain.Point{tl, tr, bl}
	case 1:
		return []domain.Point{tl, tr, br}
	case 2:
		return []domain.Point{tr, br, bl}
	default:
		return []domain.Point{tl, br, bl}
	}
}

// mirrored reflects an element across the vertical axis of the full grid.
func mirrored(el domain.CellElement, total float64) domain.CellElement {
	out := domain.CellElement{Kind: el.Kind, Color: el.Color}
	switch {
	case el.Rect != nil:
		out.Rect = &domain.Rect{X: total - el.Rect.X - el.Rect.W, Y: el.Rect.Y, W: el.Rect.W, H: el.Rect.H}
	case el.Circle != nil:
		out.Circle = &domain.Circle{CX: total - el.Circle.CX, CY: el.Circle.CY, R: el.Circle.R}
	default:
		pts := make([]domain.Point, len(el.Polygon))
		for i, p := range el.Polygon {
			pts[i] = domain.Point{X: total - p.X, Y: p.Y}
		}
		out.Polygon = pts
	}
	return out
}
