package yunet

// Point is a 2D point in pixel or normalized coordinates,
// depending on context.
type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Rect is an axis-aligned rectangle given as top-left corner plus size.
// Units are pixels or normalized 0..1 fractions depending on context.
//
// No sign invariant is enforced: YuNet has been known to report faces
// with negative width or height, rarely, and those values are passed
// through unchanged.
type Rect struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	W float32 `json:"w"`
	H float32 `json:"h"`
}

// NewRect builds a rectangle from its top-left corner and size.
func NewRect(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}
