package usecase

import (
	"fmt"

	"github.com/sakhipath/sakhipath/internal/pkg/models"
)

// composeAlertMessage builds the text sent to every emergency contact,
// including a maps link to the trigger location and a live tracking URL.
func (uc *SOSUC) composeAlertMessage(user *models.User, event *models.SOSEvent) string {
	return fmt.Sprintf(
		"EMERGENCY SOS from %s! Last known location: https://maps.google.com/?q=%f,%f - Track live: %s/track/%s",
		user.Name,
		event.Location.Latitude,
		event.Location.Longitude,
		uc.cfg.SOS.TrackingBaseURL,
		event.ID,
	)
}

// composePoliceMessage builds the text sent to the nearest police station
// for critical events.
func (uc *SOSUC) composePoliceMessage(user *models.User, event *models.SOSEvent) string {
	return fmt.Sprintf(
		"CRITICAL SOS alert: %s (%s) needs help at https://maps.google.com/?q=%f,%f - severity %s, triggered by %s",
		user.Name,
		user.PhoneNumber,
		event.Location.Latitude,
		event.Location.Longitude,
		event.Severity,
		event.TriggerSource,
	)
}
