// Package entity contains the core business objects of the project.
package entity

// Location is a geographic coordinate pair. Both fields are always
// populated together; a partially known position is represented by the
// absence of the whole value, never by a zero half.
type Location struct {
	Lat float64 `json:"lat"` // Latitude in degrees.
	Lng float64 `json:"lng"` // Longitude in degrees.
}

// DistanceMethod identifies how a distance was obtained.
type DistanceMethod string

const (
	// DistanceMethodProvider means the value came from the routed
	// distance-matrix provider.
	DistanceMethodProvider DistanceMethod = "provider"
	// DistanceMethodStraightLine means the value is a great-circle
	// fallback with an estimated duration.
	DistanceMethodStraightLine DistanceMethod = "straight-line"
)

// DistanceResult is the outcome of a single origin-to-destination
// distance computation.
//
// Invariant: when Method is DistanceMethodStraightLine, DurationSeconds
// is derived from a fixed assumed speed and is never a measured value.
type DistanceResult struct {
	DistanceMeters  int            `json:"distance_meters"`
	DurationSeconds int            `json:"duration_seconds"`
	Method          DistanceMethod `json:"method"`
	DisplayDistance string         `json:"display_distance"`
	DisplayDuration string         `json:"display_duration"`
}

// IsEstimate reports whether the result came from the straight-line fallback.
func (r *DistanceResult) IsEstimate() bool {
	return r.Method == DistanceMethodStraightLine
}
