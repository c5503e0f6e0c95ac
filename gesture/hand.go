package gesture

import (
	"github.com/lixenwraith/glowfield/vmath"
)

// Landmark indices follow the common 21-point hand model: wrist, then four
// joints per finger from thumb to pinky.
const (
	LandmarkWrist         = 0
	LandmarkThumbTip      = 4
	LandmarkIndexKnuckle  = 5
	LandmarkIndexTip      = 8
	LandmarkMiddleKnuckle = 9
	LandmarkMiddleTip     = 12
	LandmarkRingKnuckle   = 13
	LandmarkRingTip       = 16
	LandmarkPinkyKnuckle  = 17
	LandmarkPinkyTip      = 20

	// LandmarkCount is the full landmark set size
	LandmarkCount = 21
)

// curlRatio scales the wrist-to-middle-knuckle distance into the curl
// threshold: a fingertip closer to the wrist than 1.2 hand-lengths is curled
const curlRatio = 1.2

// fingerTips are the non-thumb fingertips checked for a fist. The thumb
// folds across the palm rather than toward the wrist, so it is excluded.
var fingerTips = [4]int{LandmarkIndexTip, LandmarkMiddleTip, LandmarkRingTip, LandmarkPinkyTip}

// HandFrame is one hand's landmark set in a consistent normalized 3D space
type HandFrame struct {
	Landmarks []vmath.Vec3F
}

// handSize is the wrist-to-middle-knuckle distance used to normalize curl
// thresholds across hand sizes and camera distances
func (h HandFrame) handSize() float64 {
	return vmath.V3FMag(vmath.V3FSub(h.Landmarks[LandmarkMiddleKnuckle], h.Landmarks[LandmarkWrist]))
}

// FingerCurled reports whether the fingertip at the given landmark index is
// curled toward the wrist. Comparison is <= so a degenerate all-zero hand
// still classifies as curled.
func (h HandFrame) FingerCurled(tip int) bool {
	if len(h.Landmarks) < LandmarkCount || tip >= len(h.Landmarks) {
		return false
	}
	dist := vmath.V3FMag(vmath.V3FSub(h.Landmarks[tip], h.Landmarks[LandmarkWrist]))
	return dist <= curlRatio*h.handSize()
}

// Fist reports whether all four non-thumb fingertips are curled
func (h HandFrame) Fist() bool {
	if len(h.Landmarks) < LandmarkCount {
		return false
	}
	for _, tip := range fingerTips {
		if !h.FingerCurled(tip) {
			return false
		}
	}
	return true
}
