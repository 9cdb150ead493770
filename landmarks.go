package yunet

// FaceLandmarks holds the five facial landmark points YuNet reports
// per face, in absolute pixel coordinates.
//
// "Right" and "left" are defined in the natural face sense: a person's
// right eye is seen on the left side of the image. Landmarks may fall
// outside the image bounds, as YuNet extrapolates the position of
// occluded landmarks from what is actually visible.
type FaceLandmarks struct {
	RightEye   Point `json:"right_eye"`
	LeftEye    Point `json:"left_eye"`
	Nose       Point `json:"nose"`
	MouthRight Point `json:"mouth_right"`
	MouthLeft  Point `json:"mouth_left"`
}

// landmarksFromArray decodes the detector's flat landmark layout:
// [rx, ry, lx, ly, nx, ny, mrx, mry, mlx, mly]. The order is fixed by
// the native detector and must not be rearranged.
func landmarksFromArray(lm [10]int32) FaceLandmarks {
	return FaceLandmarks{
		RightEye:   Point{X: float32(lm[0]), Y: float32(lm[1])},
		LeftEye:    Point{X: float32(lm[2]), Y: float32(lm[3])},
		Nose:       Point{X: float32(lm[4]), Y: float32(lm[5])},
		MouthRight: Point{X: float32(lm[6]), Y: float32(lm[7])},
		MouthLeft:  Point{X: float32(lm[8]), Y: float32(lm[9])},
	}
}
