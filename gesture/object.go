package gesture

import (
	"strings"
)

// Detection is one labeled bounding box from the object-recognition path
type Detection struct {
	Category string     `json:"category"`
	Score    float64    `json:"score"`
	Box      [4]float64 `json:"box"` // x, y, w, h in normalized image space
}

// Present reports whether any detection matches the category (case
// insensitive) at or above the score floor
func Present(detections []Detection, category string, minScore float64) bool {
	if category == "" {
		return false
	}
	for _, d := range detections {
		if d.Score >= minScore && strings.EqualFold(d.Category, category) {
			return true
		}
	}
	return false
}
