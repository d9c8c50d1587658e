package usecase

import (
	"github.com/sakhipath/sakhipath/internal/pkg/models"
)

// baselineHeartRate is the resting heart rate severity increases are measured against
const baselineHeartRate = 75.0

// DetermineSeverity classifies an SOS trigger by its source and sensor data
func DetermineSeverity(req *models.SOSRequest) models.SOSSeverity {
	switch req.TriggerSource {
	case models.TriggerSourceFall:
		return models.SeverityCritical

	case models.TriggerSourceBiometric:
		if req.HeartRate <= 0 {
			return models.SeverityMedium
		}
		increase := (req.HeartRate - baselineHeartRate) / baselineHeartRate
		if increase > 0.6 {
			return models.SeverityCritical
		}
		if increase > 0.4 {
			return models.SeverityHigh
		}
		return models.SeverityMedium

	case models.TriggerSourceVoice:
		switch req.DetectedEmotion {
		case "scream", "panic":
			return models.SeverityCritical
		case "fear", "distress":
			return models.SeverityHigh
		}
		return models.SeverityMedium

	case models.TriggerSourceManual:
		return models.SeverityHigh
	}

	return models.SeverityMedium
}
