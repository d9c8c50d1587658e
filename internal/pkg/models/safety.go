package models

// SafetyScore holds the per-dimension safety scores for a route, each on a
// 0-10 scale rounded to one decimal place
type SafetyScore struct {
	Overall        float64 `json:"overall"`
	Lighting       float64 `json:"lighting"`
	Business       float64 `json:"business"`
	Crowd          float64 `json:"crowd"`
	Reports        float64 `json:"reports"`
	Infrastructure float64 `json:"infrastructure"`
}

// RoadSegmentMetrics is the safety metadata recorded for a single road
// segment, produced by the geospatial segment lookup
type RoadSegmentMetrics struct {
	SegmentID             string  `json:"segment_id" db:"id"`
	LengthMeters          float64 `json:"length_meters" db:"length_meters"`
	StreetlightsPerKm     float64 `json:"streetlights_per_km" db:"streetlights_per_km"`
	OpenBusinessesCount   int     `json:"open_businesses_count" db:"open_businesses_count"`
	AvgCrowdDensity       float64 `json:"avg_crowd_density" db:"avg_crowd_density"`
	SafetyReportsPositive int     `json:"safety_reports_positive" db:"safety_reports_positive"`
	SafetyReportsNegative int     `json:"safety_reports_negative" db:"safety_reports_negative"`
	CCTVCamerasCount      int     `json:"cctv_cameras_count" db:"cctv_cameras_count"`
	HasFootpath           bool    `json:"has_footpath" db:"has_footpath"`
	RoadWidthMeters       float64 `json:"road_width_meters" db:"road_width_meters"`
}
