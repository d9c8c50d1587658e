package constants

// NATS subjects for cross-service events
const (
	SubjectRouteSelected = "route.selected"
	SubjectSOSTriggered  = "sos.triggered"
	SubjectPushNotify    = "notification.push"
)
