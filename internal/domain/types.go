package domain

import (
	"fmt"
	"strconv"
)

// Fingerprint is a non-negative 32-bit hash of string content. It is not
// cryptographically secure; it only needs to be fast and deterministic.
type Fingerprint int32

// Hex returns the base-16 textual form used when chaining fingerprints.
func (f Fingerprint) Hex() string { return strconv.FormatInt(int64(f), 16) }

// Color is a hue/saturation/lightness triple. Hue is in degrees [0,359],
// saturation and lightness are percentages.
type Color struct {
	Hue        int `json:"h"`
	Saturation int `json:"s"`
	Lightness  int `json:"l"`
}

// String renders the color as a CSS color function.
func (c Color) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.Hue, c.Saturation, c.Lightness)
}

// PatternType tags one of the five fixed shape-generation families.
type PatternType string

const (
	PatternTriangles PatternType = "triangles"
	PatternCircles   PatternType = "circles"
	PatternBlocks    PatternType = "blocks"
	PatternDiamonds  PatternType = "diamonds"
	PatternStripes   PatternType = "stripes"
)

// ShapeKind is the geometric primitive a CellElement carries.
type ShapeKind string

const (
	ShapeRect    ShapeKind = "rect"
	ShapeCircle  ShapeKind = "circle"
	ShapePolygon ShapeKind = "polygon"
)

// Point is a 2D coordinate in pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Circle is a center point with a radius.
type Circle struct {
	CX float64 `json:"cx"`
	CY float64 `json:"cy"`
	R  float64 `json:"r"`
}

// CellElement is one filled shape of the grid. Exactly one of Rect, Circle or
// Polygon is set, matching Kind. Elements are generated, never mutated.
type CellElement struct {
	Kind    ShapeKind `json:"kind"`
	Color   Color     `json:"color"`
	Rect    *Rect     `json:"rect,omitempty"`
	Circle  *Circle   `json:"circle,omitempty"`
	Polygon []Point   `json:"polygon,omitempty"`
}

// Border describes the translucent ring drawn around circular icons.
type Border struct {
	Color   Color   `json:"color"`
	Opacity float64 `json:"opacity"`
	Width   float64 `json:"width"`
}

// Image is the final renderer-agnostic description of a generated icon:
// overall pixel dimensions, a background fill, the ordered mirrored shape
// list, and optional circular clip and border. It is a pure value constructed
// once per (seed, size) pair.
type Image struct {
	Size       int           `json:"size"`
	Background Color         `json:"background"`
	Elements   []CellElement `json:"elements"`
	Clip       *Circle       `json:"clip,omitempty"`
	Border     *Border       `json:"border,omitempty"`
}

// Options selects the output size and shape of a rendered icon. CustomSize
// takes precedence over Size when positive.
type Options struct {
	Size       SizeCategory
	CustomSize int
	Circular   bool
}
