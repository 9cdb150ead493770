package yunet

// Face is one detected face. It is a plain value: constructed once from
// a raw detection record, never mutated.
type Face struct {
	confidence float32
	rectangle  Rect

	// Resolution of the image this face was detected in (width,
	// height). Stored so normalization always uses the dimensions
	// seen at detection time.
	detectionWidth  int
	detectionHeight int

	landmarks FaceLandmarks
}

// FaceFromDetection converts a raw detection record into a Face, using
// the dimensions of the image that was searched. The score is copied
// verbatim and the integer rectangle and landmark coordinates are
// widened to float32 with no scaling. Total: never fails, performs no
// bounds checks and no confidence clamping — callers discard
// low-confidence or negative-area results themselves if desired.
func FaceFromDetection(raw RawDetection, width, height int) Face {
	return Face{
		confidence:      raw.Score,
		rectangle:       NewRect(float32(raw.X), float32(raw.Y), float32(raw.W), float32(raw.H)),
		detectionWidth:  width,
		detectionHeight: height,
		landmarks:       landmarksFromArray(raw.Landmarks),
	}
}

// Confidence is how confident (nominally 0..1, not clamped) the
// detector is that the rectangle represents a valid face.
func (f Face) Confidence() float32 {
	return f.confidence
}

// Rectangle is the face location in absolute pixel coordinates. It may
// fall outside the image, and may rarely have negative dimensions.
func (f Face) Rectangle() Rect {
	return f.rectangle
}

// NormalizedRectangle is the face rectangle in normalized 0..1
// coordinates, each field divided by the corresponding detection
// dimension. Detection dimensions are used as stored; a zero dimension
// is not guarded against.
func (f Face) NormalizedRectangle() Rect {
	return NewRect(
		f.rectangle.X/float32(f.detectionWidth),
		f.rectangle.Y/float32(f.detectionHeight),
		f.rectangle.W/float32(f.detectionWidth),
		f.rectangle.H/float32(f.detectionHeight),
	)
}

// Size is the minimum of the normalized width and height: a
// scale-invariant measure of how prominent the face is in the frame.
// The minimum rather than the area, so a wide-but-thin spurious
// detection does not register as large.
func (f Face) Size() float32 {
	rect := f.NormalizedRectangle()
	if rect.W < rect.H {
		return rect.W
	}
	return rect.H
}

// Landmarks are the coordinates of the five face landmarks.
func (f Face) Landmarks() FaceLandmarks {
	return f.landmarks
}
