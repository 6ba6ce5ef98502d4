package hexboard

import "math"

// ForwardAngles holds the canonical cartesian angle (in degrees) that "forward" points to
// for each facing (0-5), derived from the flat-top axial-to-cartesian projection.
var ForwardAngles = [6]float64{270, 330, 30, 90, 150, 210}

// arcToleranceDegrees is the half-width of the forward arc used by jump pieces whose
// directions mask is the forward arc (DIR_F|DIR_FL|DIR_FR).
const arcToleranceDegrees = 75.0

// ForwardArcContains reports whether to lies within the forward arc of a piece facing
// the given direction and standing at from. Used by jumpers restricted to FORWARD_ARC.
func ForwardArcContains(facing uint8, from, to Hex) bool {
	dq := float64(to.Q - from.Q)
	dr := float64(to.R - from.R)

	x := 1.5 * dq
	y := math.Sqrt(3)/2*dq + math.Sqrt(3)*dr

	if x == 0 && y == 0 {
		return true
	}

	angle := math.Atan2(y, x) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}

	forward := ForwardAngles[facing%6]
	diff := math.Abs(angle - forward)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff <= arcToleranceDegrees
}
