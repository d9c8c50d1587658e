package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sakhipath/sakhipath/internal/pkg/logger"
	"github.com/sakhipath/sakhipath/internal/pkg/models"
	"github.com/sakhipath/sakhipath/services/sos"
)

// TriggerSOS classifies the trigger, records the event, alerts every
// emergency contact over SMS, WhatsApp and push, and surfaces the nearest
// safe spot. Contact notification failures never abort the pipeline.
func (uc *SOSUC) TriggerSOS(ctx context.Context, req *models.SOSRequest) (*models.SOSResult, error) {
	userID, err := validateTrigger(req)
	if err != nil {
		return nil, err
	}

	user, err := uc.sosRepo.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	event := &models.SOSEvent{
		ID:               uuid.New(),
		UserID:           userID,
		TriggerSource:    req.TriggerSource,
		Severity:         DetermineSeverity(req),
		Location:         req.Location,
		LocationAccuracy: req.LocationAccuracy,
		HeartRate:        req.HeartRate,
		DetectedEmotion:  req.DetectedEmotion,
		StressLevel:      req.StressLevel,
		Status:           models.SOSStatusPending,
		CreatedAt:        time.Now(),
	}

	if err := uc.sosRepo.CreateSOSEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to record SOS event: %w", err)
	}

	contacts, err := uc.sosRepo.GetEmergencyContacts(ctx, userID)
	if err != nil {
		logger.Error("Failed to load emergency contacts",
			logger.String("user_id", userID.String()),
			logger.Err(err))
		contacts = nil
	}

	safeSpots, err := uc.sosRepo.GetNearbySafeSpots(ctx, req.Location, uc.cfg.SOS.SafeSpotRadiusMeters,
		[]string{models.SafeSpotHospital, models.SafeSpotPoliceStation, models.SafeSpotPetrolPump})
	if err != nil {
		logger.Error("Failed to look up nearby safe spots",
			logger.String("user_id", userID.String()),
			logger.Err(err))
		safeSpots = nil
	}

	if len(safeSpots) > 0 {
		if err := uc.sosRepo.SetSafeSpot(ctx, event.ID, safeSpots[0].ID); err != nil {
			logger.Error("Failed to link safe spot to SOS event",
				logger.String("sos_event_id", event.ID.String()),
				logger.Err(err))
		}
	}

	message := uc.composeAlertMessage(user, event)
	notifications := uc.notifyContacts(ctx, event, contacts, message)

	if err := uc.sosRepo.RecordContactsNotified(ctx, event.ID, notifications); err != nil {
		logger.Error("Failed to record notified contacts",
			logger.String("sos_event_id", event.ID.String()),
			logger.Err(err))
	}

	policeNotified := uc.notifyPolice(ctx, user, event, safeSpots)
	if policeNotified {
		if err := uc.sosRepo.MarkPoliceNotified(ctx, event.ID); err != nil {
			logger.Error("Failed to mark police notified",
				logger.String("sos_event_id", event.ID.String()),
				logger.Err(err))
		}
	}

	if err := uc.sosRepo.ActivateSOSEvent(ctx, event.ID); err != nil {
		logger.Error("Failed to activate SOS event",
			logger.String("sos_event_id", event.ID.String()),
			logger.Err(err))
	} else {
		event.Status = models.SOSStatusActive
	}

	if err := uc.sosGW.PublishSOSTriggered(ctx, *event); err != nil {
		logger.Warn("Failed to publish SOS triggered event",
			logger.String("sos_event_id", event.ID.String()),
			logger.Err(err))
	}

	result := &models.SOSResult{
		SOSEventID:       event.ID,
		Severity:         event.Severity,
		ContactsNotified: notifications,
		PoliceNotified:   policeNotified,
	}
	if len(safeSpots) > 0 {
		result.NearestSafeSpot = &safeSpots[0]
	}

	return result, nil
}

// notifyContacts fans out to every contact concurrently. A contact counts as
// notified when at least one channel got through.
func (uc *SOSUC) notifyContacts(ctx context.Context, event *models.SOSEvent, contacts []models.TrustedContact, message string) []models.ContactNotification {
	notifications := make([]models.ContactNotification, len(contacts))

	var wg sync.WaitGroup
	for i, contact := range contacts {
		wg.Add(1)
		go func(i int, contact models.TrustedContact) {
			defer wg.Done()
			notifications[i] = uc.notifyContact(ctx, event, contact, message)
		}(i, contact)
	}
	wg.Wait()

	return notifications
}

func (uc *SOSUC) notifyContact(ctx context.Context, event *models.SOSEvent, contact models.TrustedContact, message string) models.ContactNotification {
	var firstErr error
	delivered := false

	if err := uc.sosGW.SendSMS(ctx, contact.PhoneNumber, message); err != nil {
		firstErr = err
		logger.Warn("SMS delivery failed",
			logger.String("contact_id", contact.ID.String()),
			logger.Err(err))
	} else {
		delivered = true
	}

	if err := uc.sosGW.SendWhatsApp(ctx, contact.PhoneNumber, message); err != nil {
		if firstErr == nil {
			firstErr = err
		}
		logger.Warn("WhatsApp delivery failed",
			logger.String("contact_id", contact.ID.String()),
			logger.Err(err))
	} else {
		delivered = true
	}

	push := models.PushNotification{
		ContactID: contact.ID.String(),
		Title:     "Emergency SOS",
		Body:      message,
		Data: map[string]any{
			"sos_event_id": event.ID.String(),
			"severity":     string(event.Severity),
		},
	}
	if err := uc.sosGW.PublishPushNotification(ctx, push); err != nil {
		if firstErr == nil {
			firstErr = err
		}
		logger.Warn("Push notification failed",
			logger.String("contact_id", contact.ID.String()),
			logger.Err(err))
	} else {
		delivered = true
	}

	notification := models.ContactNotification{ContactID: contact.ID.String()}
	if delivered {
		notification.Status = "sent"
	} else {
		notification.Status = "failed"
		if firstErr != nil {
			notification.Error = firstErr.Error()
		}
	}

	return notification
}

// notifyPolice alerts the nearest police station for critical events
func (uc *SOSUC) notifyPolice(ctx context.Context, user *models.User, event *models.SOSEvent, safeSpots []models.SafeSpot) bool {
	if event.Severity != models.SeverityCritical {
		return false
	}

	for _, spot := range safeSpots {
		if spot.Category != models.SafeSpotPoliceStation || spot.PhoneNumber == "" {
			continue
		}
		if err := uc.sosGW.SendSMS(ctx, spot.PhoneNumber, uc.composePoliceMessage(user, event)); err != nil {
			logger.Error("Failed to alert police station",
				logger.String("safe_spot_id", spot.ID.String()),
				logger.Err(err))
			return false
		}
		return true
	}

	return false
}

func validateTrigger(req *models.SOSRequest) (uuid.UUID, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user_id: %w", err)
	}
	if !req.Location.Valid() {
		return uuid.Nil, fmt.Errorf("trigger location is out of range")
	}
	switch req.TriggerSource {
	case models.TriggerSourceManual, models.TriggerSourceFall,
		models.TriggerSourceBiometric, models.TriggerSourceVoice:
	default:
		return uuid.Nil, fmt.Errorf("%w: %q", sos.ErrUnknownTriggerSource, req.TriggerSource)
	}
	return userID, nil
}
