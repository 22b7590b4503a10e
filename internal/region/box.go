package region

// Box is an axis-aligned rectangle in pixel coordinates.
//
// The origin is the top-left corner of the image, X increases rightward and
// Y increases downward. Width and height are non-negative after normalization.
type Box struct {
	X int `json:"x"` // Left edge
	Y int `json:"y"` // Top edge
	W int `json:"w"` // Width in pixels
	H int `json:"h"` // Height in pixels
}

// Point is a 2D coordinate in pixel space.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Area returns the box area in square pixels.
func (b Box) Area() int {
	return b.W * b.H
}

// AspectRatio returns width over height, or 0 when the height is zero.
func (b Box) AspectRatio() float64 {
	if b.H == 0 {
		return 0
	}
	return float64(b.W) / float64(b.H)
}

// Right returns the X coordinate of the right edge.
func (b Box) Right() int {
	return b.X + b.W
}

// Bottom returns the Y coordinate of the bottom edge.
func (b Box) Bottom() int {
	return b.Y + b.H
}

// FromCorners builds a Box from two opposite corners, normalizing so that
// width and height come out non-negative regardless of corner order.
func FromCorners(x1, y1, x2, y2 int) Box {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	return Box{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// FromPolygon returns the minimal axis-aligned box enclosing all points.
// An empty point list yields the zero Box.
func FromPolygon(points []Point) Box {
	if len(points) == 0 {
		return Box{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := points[0].X, points[0].Y
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return Box{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Union returns the minimal box enclosing both a and b.
func Union(a, b Box) Box {
	x1 := minInt(a.X, b.X)
	y1 := minInt(a.Y, b.Y)
	x2 := maxInt(a.Right(), b.Right())
	y2 := maxInt(a.Bottom(), b.Bottom())
	return Box{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// overlapArea returns the area of the intersection of a and b,
// or 0 when they do not intersect.
func overlapArea(a, b Box) int {
	ox := minInt(a.Right(), b.Right()) - maxInt(a.X, b.X)
	if ox < 0 {
		ox = 0
	}
	oy := minInt(a.Bottom(), b.Bottom()) - maxInt(a.Y, b.Y)
	if oy < 0 {
		oy = 0
	}
	return ox * oy
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
