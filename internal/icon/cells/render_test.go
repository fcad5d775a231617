package cells_test

import (
	"reflect"
	"testing"

	"hashicon/internal/domain"
	"hashicon/internal/hash"
	"hashicon/internal/icon/cells"
)

var testPalette = [3]domain.Color{
	{Hue: 10, Saturation: 60, Lightness: 50},
	{Hue: 120, Saturation: 70, Lightness: 55},
	{Hue: 230, Saturation: 80, Lightness: 60},
}

func TestSelectPattern(t *testing.T) {
	cases := []struct {
		fp   domain.Fingerprint
		want domain.PatternType
	}{
		{0, domain.PatternTriangles},
		{1, domain.PatternCircles},
		{2, domain.PatternBlocks},
		{3, domain.PatternDiamonds},
		{4, domain.PatternStripes},
		{5, domain.PatternTriangles},
		{401857532, domain.PatternBlocks},
	}
	for _, tc := range cases {
		if got := cells.SelectPattern(tc.fp); got != tc.want {
			t.Errorf("SelectPattern(%d) = %s, want %s", tc.fp, got, tc.want)
		}
	}
}

// mirrorOf reflects an element across the vertical axis, matching the
// renderer's documented mirroring rule.
func mirrorOf(el domain.CellElement, total float64) domain.CellElement {
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

func TestRender_MirrorSymmetry(t *testing.T) {
	patterns := []domain.PatternType{
		domain.PatternTriangles,
		domain.PatternCircles,
		domain.PatternBlocks,
		domain.PatternDiamonds,
		domain.PatternStripes,
	}
	chain, err := hash.Chain("mirror", 50)
	if err != nil {
		t.Fatalf("Chain: %v", err)
	}
	const grid, cell = 5, 8.0
	for _, pattern := range patterns {
		t.Run(string(pattern), func(t *testing.T) {
			elements := cells.Render(chain[5:], pattern, grid, cell, testPalette)
			for _, el := range elements {
				want := mirrorOf(el, grid*cell)
				found := false
				for _, other := range elements {
					if reflect.DeepEqual(other, want) {
						found = true
						break
					}
				}
				if !found {
					t.Fatalf("no mirror for element %+v", el)
				}
			}
		})
	}
}

func TestRender_MirrorFollowsImmediately(t *testing.T) {
	// All-even chain fills every cell.
	chain := make([]domain.Fingerprint, 25)
	for i := range chain {
		chain[i] = domain.Fingerprint(i * 2)
	}
	elements := cells.Render(chain, domain.PatternBlocks, 5, 8, testPalette)
	// Per row: columns 0 and 1 contribute a pair each, the center column one.
	if len(elements) != 25 {
		t.Fatalf("got %d elements, want 25", len(elements))
	}
	for i := 0; i < len(elements); i += 5 {
		for _, pair := range [][2]int{{i, i + 1}, {i + 2, i + 3}} {
			a, b := elements[pair[0]], elements[pair[1]]
			if !reflect.DeepEqual(mirrorOf(a, 40), b) {
				t.Fatalf("element %d is not the mirror of %d", pair[1], pair[0])
			}
		}
	}
}

func TestRender_OddFingerprintsLeaveGaps(t *testing.T) {
	chain := []domain.Fingerprint{1, 3, 5}
	if got := cells.Render(chain, domain.PatternBlocks, 5, 8, testPalette); len(got) != 0 {
		t.Fatalf("odd-only chain produced %d elements, want 0", len(got))
	}
}

func TestRender_ColorSelection(t *testing.T) {
	// fp=6 is even and 6 mod 3 == 0; fp=4 -> palette[1]; fp=2 -> palette[2].
	cases := []struct {
		fp   domain.Fingerprint
		want domain.Color
	}{
		{6, testPalette[0]},
		{4, testPalette[1]},
		{2, testPalette[2]},
	}
	for _, tc := range cases {
		got := cells.Render([]domain.Fingerprint{tc.fp}, domain.PatternBlocks, 1, 8, testPalette)
		if len(got) != 1 {
			t.Fatalf("fp=%d: got %d elements, want 1", tc.fp, len(got))
		}
		if got[0].Color != tc.want {
			t.Errorf("fp=%d: color %v, want %v", tc.fp, got[0].Color, tc.want)
		}
	}
}

func TestRender_CircleRadii(t *testing.T) {
	// Radius factor is 0.6 + (fp mod 4) * 0.1 of the half cell. Filled cells
	// carry even fingerprints, so fp mod 4 is 0 or 2.
	cases := []struct {
		fp   domain.Fingerprint
		want float64
	}{
		{4, 2.4},
		{6, 3.2},
		{16, 2.4},
	}
	for _, tc := range cases {
		got := cells.Render([]domain.Fingerprint{tc.fp}, domain.PatternCircles, 1, 8, testPalette)
		if len(got) != 1 || got[0].Circle == nil {
			t.Fatalf("fp=%d: expected one circle element", tc.fp)
		}
		if got[0].Circle.R != tc.want {
			t.Errorf("fp=%d: radius %v, want %v", tc.fp, got[0].Circle.R, tc.want)
		}
		if got[0].Circle.CX != 4 || got[0].Circle.CY != 4 {
			t.Errorf("fp=%d: circle not centered: %+v", tc.fp, got[0].Circle)
		}
	}
}

func TestRender_StripesUseUpperBand(t *testing.T) {
	// Filled cells always carry even fingerprints, so the band selector
	// fp mod 2 is always 0 and stripes sit in the upper half of the cell.
	chain := []domain.Fingerprint{2, 4, 6, 8}
	elements := cells.Render(chain, domain.PatternStripes, 2, 10, testPalette)
	for _, el := range elements {
		if el.Rect == nil {
			t.Fatalf("stripe element without rect: %+v", el)
		}
		if el.Rect.H != 5 || el.Rect.W != 10 {
			t.Errorf("stripe band size %vx%v, want 10x5", el.Rect.W, el.Rect.H)
		}
		if el.Rect.Y != 0 && el.Rect.Y != 10 {
			t.Errorf("stripe band not at a cell top: y=%v", el.Rect.Y)
		}
	}
}

func TestRender_DiamondVertices(t *testing.T) {
	got := cells.Render([]domain.Fingerprint{2}, domain.PatternDiamonds, 1, 8, testPalette)
	want := []domain.Point{{X: 4, Y: 0}, {X: 8, Y: 4}, {X: 4, Y: 8}, {X: 0, Y: 4}}
	if len(got) != 1 || !reflect.DeepEqual(got[0].Polygon, want) {
		t.Fatalf("diamond vertices = %+v, want %+v", got, want)
	}
}

func TestRender_ChainIndexWraps(t *testing.T) {
	// A single even fingerprint fills every cell of the grid.
	elements := cells.Render([]domain.Fingerprint{2}, domain.PatternBlocks, 5, 8, testPalette)
	if len(elements) != 25 {
		t.Fatalf("got %d elements, want 25", len(elements))
	}
}

func TestRender_Deterministic(t *testing.T) {
	chain, err := hash.Chain("stable", 50)
	if err != nil {
		t.Fatalf("Chain: %v", err)
	}
	a := cells.Render(chain[5:], domain.PatternTriangles, 5, 8, testPalette)
	b := cells.Render(chain[5:], domain.PatternTriangles, 5, 8, testPalette)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical inputs produced different element lists")
	}
}
