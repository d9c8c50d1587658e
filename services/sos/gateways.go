package sos

import (
	"context"
	"errors"

	"github.com/sakhipath/sakhipath/internal/pkg/models"
)

// ErrNotificationProvider is returned when the messaging provider rejects a send
var ErrNotificationProvider = errors.New("notification provider request failed")

// SOSGW defines the SOS gateways interface
type SOSGW interface {
	// SendSMS delivers a text message to the given phone number
	SendSMS(ctx context.Context, to, message string) error

	// SendWhatsApp delivers a WhatsApp message to the given phone number
	SendWhatsApp(ctx context.Context, to, message string) error

	// PublishPushNotification publishes a push notification for delivery
	PublishPushNotification(ctx context.Context, push models.PushNotification) error

	// PublishSOSTriggered publishes an SOS triggered event
	PublishSOSTriggered(ctx context.Context, event models.SOSEvent) error
}
