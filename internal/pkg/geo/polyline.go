// Package geo provides the geometric primitives used by the route scoring
// pipeline: polyline decoding, great-circle distance and arc-length sampling.
package geo

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTruncatedPolyline is returned when an encoded polyline ends in the
// middle of a coordinate group (continuation bit still set on the last byte).
var ErrTruncatedPolyline = errors.New("polyline ends mid-group")

// Coordinate represents a geographic point in decimal degrees
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// DecodePolyline decodes a Google encoded polyline string into an ordered
// coordinate sequence. The format stores zigzag-encoded deltas in 5-bit
// chunks at 1e-5 degree precision.
func DecodePolyline(encoded string) ([]Coordinate, error) {
	var points []Coordinate
	index := 0
	lat, lng := 0, 0

	for index < len(encoded) {
		dlat, next, err := decodeDelta(encoded, index)
		if err != nil {
			return nil, err
		}
		index = next
		lat += dlat

		dlng, next, err := decodeDelta(encoded, index)
		if err != nil {
			return nil, err
		}
		index = next
		lng += dlng

		points = append(points, Coordinate{
			Latitude:  float64(lat) / 1e5,
			Longitude: float64(lng) / 1e5,
		})
	}

	return points, nil
}

// decodeDelta reads one zigzag-encoded value starting at index and returns
// the decoded delta plus the index of the next unread byte.
func decodeDelta(encoded string, index int) (int, int, error) {
	shift, result := 0, 0

	for {
		if index >= len(encoded) {
			return 0, index, fmt.Errorf("decode polyline at byte %d: %w", index, ErrTruncatedPolyline)
		}
		b := int(encoded[index]) - 63
		index++
		result |= (b & 0x1f) << shift
		shift += 5
		if b < 0x20 {
			break
		}
	}

	if result&1 != 0 {
		return ^(result >> 1), index, nil
	}
	return result >> 1, index, nil
}

// ToLineString decodes an encoded polyline and serializes it as a WKT
// linestring of "longitude latitude" pairs in decoding order.
func ToLineString(encoded string) (string, error) {
	points, err := DecodePolyline(encoded)
	if err != nil {
		return "", err
	}

	pairs := make([]string, len(points))
	for i, p := range points {
		pairs[i] = fmt.Sprintf("%g %g", p.Longitude, p.Latitude)
	}
	return "LINESTRING(" + strings.Join(pairs, ", ") + ")", nil
}

// PointWKT formats a single coordinate as a WKT point geometry
func PointWKT(c Coordinate) string {
	return fmt.Sprintf("POINT(%g %g)", c.Longitude, c.Latitude)
}
