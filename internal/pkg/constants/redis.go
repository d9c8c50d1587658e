package constants

// Redis key patterns
const (
	// KeySegmentCell caches road segment metrics per geohash cell
	KeySegmentCell = "segments:cell:%s"
)
