package gateway

import (
	"context"

	"github.com/sakhipath/sakhipath/internal/pkg/constants"
	"github.com/sakhipath/sakhipath/internal/pkg/models"
)

// PublishSOSTriggered publishes an SOS triggered event to NATS
func (g *SOSGW) PublishSOSTriggered(ctx context.Context, event models.SOSEvent) error {
	return g.natsClient.Publish(constants.SubjectSOSTriggered, event)
}

// PublishPushNotification publishes a push notification for the
// notification workers to deliver
func (g *SOSGW) PublishPushNotification(ctx context.Context, push models.PushNotification) error {
	return g.natsClient.Publish(constants.SubjectPushNotify, push)
}
