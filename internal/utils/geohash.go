package utils

import (
	"github.com/mmcloughlin/geohash"
	"github.com/sakhipath/sakhipath/internal/pkg/models"
)

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}
