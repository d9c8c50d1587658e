package geo

// SamplePath walks a decoded path and emits representative points roughly
// every intervalMeters of arc length. When the accumulated distance reaches
// the interval the segment's start point is emitted and the accumulator is
// reset to zero; the overshoot is discarded rather than carried forward, so
// long segments under-sample slightly. A path with fewer than 2 points
// yields no samples.
func SamplePath(path []Coordinate, intervalMeters float64) []Coordinate {
	var sampled []Coordinate
	covered := 0.0

	for i := 0; i+1 < len(path); i++ {
		d := Distance(path[i], path[i+1])
		if covered+d >= intervalMeters {
			sampled = append(sampled, path[i])
			covered = 0
		} else {
			covered += d
		}
	}

	return sampled
}
