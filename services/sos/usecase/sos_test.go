package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakhipath/sakhipath/internal/pkg/models"
	"github.com/sakhipath/sakhipath/services/sos"
	"github.com/sakhipath/sakhipath/services/sos/mocks"
)

func testSOSConfig() *models.Config {
	return &models.Config{
		SOS: models.SOSConfig{
			SafeSpotRadiusMeters: 5000,
			TrackingBaseURL:      "https://track.sakhipath.app",
		},
	}
}

func triggerRequest(source string) *models.SOSRequest {
	return &models.SOSRequest{
		UserID:        uuid.New().String(),
		TriggerSource: source,
		Location:      models.Location{Latitude: -6.1754, Longitude: 106.8272},
	}
}

func testUser(id uuid.UUID) *models.User {
	return &models.User{ID: id, Name: "Asha", PhoneNumber: "+628111222333"}
}

func testContacts(userID uuid.UUID) []models.TrustedContact {
	return []models.TrustedContact{
		{ID: uuid.New(), UserID: userID, Name: "Maa", PhoneNumber: "+628111000001", IsEmergencyContact: true, Priority: 1},
		{ID: uuid.New(), UserID: userID, Name: "Ravi", PhoneNumber: "+628111000002", IsEmergencyContact: true, Priority: 2},
	}
}

func TestTriggerSOS_ManualTriggerNotifiesAllContacts(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSOSRepo(ctrl)
	mockGW := mocks.NewMockSOSGW(ctrl)
	uc := NewSOSUC(testSOSConfig(), mockRepo, mockGW)

	req := triggerRequest(models.TriggerSourceManual)
	userID := uuid.MustParse(req.UserID)
	contacts := testContacts(userID)

	hospital := models.SafeSpot{
		ID: uuid.New(), Name: "RSUD Tarakan", Category: models.SafeSpotHospital,
		PhoneNumber: "+62215551111", DistanceMeters: 820.5,
	}

	mockRepo.EXPECT().GetUser(gomock.Any(), userID).Return(testUser(userID), nil)
	mockRepo.EXPECT().CreateSOSEvent(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().GetEmergencyContacts(gomock.Any(), userID).Return(contacts, nil)
	mockRepo.EXPECT().
		GetNearbySafeSpots(gomock.Any(), req.Location, 5000.0,
			[]string{models.SafeSpotHospital, models.SafeSpotPoliceStation, models.SafeSpotPetrolPump}).
		Return([]models.SafeSpot{hospital}, nil)
	mockRepo.EXPECT().SetSafeSpot(gomock.Any(), gomock.Any(), hospital.ID).Return(nil)
	mockRepo.EXPECT().RecordContactsNotified(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().ActivateSOSEvent(gomock.Any(), gomock.Any()).Return(nil)

	mockGW.EXPECT().SendSMS(gomock.Any(), contacts[0].PhoneNumber, gomock.Any()).Return(nil)
	mockGW.EXPECT().SendSMS(gomock.Any(), contacts[1].PhoneNumber, gomock.Any()).Return(nil)
	mockGW.EXPECT().SendWhatsApp(gomock.Any(), contacts[0].PhoneNumber, gomock.Any()).Return(nil)
	mockGW.EXPECT().SendWhatsApp(gomock.Any(), contacts[1].PhoneNumber, gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishPushNotification(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	mockGW.EXPECT().PublishSOSTriggered(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	result, err := uc.TriggerSOS(context.Background(), req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.SeverityHigh, result.Severity)
	require.Len(t, result.ContactsNotified, 2)
	assert.Equal(t, "sent", result.ContactsNotified[0].Status)
	assert.Equal(t, "sent", result.ContactsNotified[1].Status)
	require.NotNil(t, result.NearestSafeSpot)
	assert.Equal(t, "RSUD Tarakan", result.NearestSafeSpot.Name)
	assert.False(t, result.PoliceNotified)
}

func TestTriggerSOS_FallAlertsNearestPoliceStation(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSOSRepo(ctrl)
	mockGW := mocks.NewMockSOSGW(ctrl)
	uc := NewSOSUC(testSOSConfig(), mockRepo, mockGW)

	req := triggerRequest(models.TriggerSourceFall)
	userID := uuid.MustParse(req.UserID)
	contacts := testContacts(userID)[:1]

	police := models.SafeSpot{
		ID: uuid.New(), Name: "Polsek Gambir", Category: models.SafeSpotPoliceStation,
		PhoneNumber: "+62215552222", DistanceMeters: 1420.0,
	}

	mockRepo.EXPECT().GetUser(gomock.Any(), userID).Return(testUser(userID), nil)
	mockRepo.EXPECT().CreateSOSEvent(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().GetEmergencyContacts(gomock.Any(), userID).Return(contacts, nil)
	mockRepo.EXPECT().
		GetNearbySafeSpots(gomock.Any(), req.Location, 5000.0, gomock.Any()).
		Return([]models.SafeSpot{police}, nil)
	mockRepo.EXPECT().SetSafeSpot(gomock.Any(), gomock.Any(), police.ID).Return(nil)
	mockRepo.EXPECT().RecordContactsNotified(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().MarkPoliceNotified(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().ActivateSOSEvent(gomock.Any(), gomock.Any()).Return(nil)

	// One SMS to the contact, one to the police station
	mockGW.EXPECT().SendSMS(gomock.Any(), contacts[0].PhoneNumber, gomock.Any()).Return(nil)
	mockGW.EXPECT().SendSMS(gomock.Any(), police.PhoneNumber, gomock.Any()).Return(nil)
	mockGW.EXPECT().SendWhatsApp(gomock.Any(), contacts[0].PhoneNumber, gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishPushNotification(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishSOSTriggered(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	result, err := uc.TriggerSOS(context.Background(), req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.SeverityCritical, result.Severity)
	assert.True(t, result.PoliceNotified)
}

func TestTriggerSOS_ContactFailureDoesNotAbortPipeline(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSOSRepo(ctrl)
	mockGW := mocks.NewMockSOSGW(ctrl)
	uc := NewSOSUC(testSOSConfig(), mockRepo, mockGW)

	req := triggerRequest(models.TriggerSourceManual)
	userID := uuid.MustParse(req.UserID)
	contacts := testContacts(userID)[:1]

	mockRepo.EXPECT().GetUser(gomock.Any(), userID).Return(testUser(userID), nil)
	mockRepo.EXPECT().CreateSOSEvent(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().GetEmergencyContacts(gomock.Any(), userID).Return(contacts, nil)
	mockRepo.EXPECT().
		GetNearbySafeSpots(gomock.Any(), req.Location, 5000.0, gomock.Any()).
		Return(nil, nil)
	mockRepo.EXPECT().RecordContactsNotified(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().ActivateSOSEvent(gomock.Any(), gomock.Any()).Return(nil)

	// Every channel fails for the contact
	providerDown := sos.ErrNotificationProvider
	mockGW.EXPECT().SendSMS(gomock.Any(), contacts[0].PhoneNumber, gomock.Any()).Return(providerDown)
	mockGW.EXPECT().SendWhatsApp(gomock.Any(), contacts[0].PhoneNumber, gomock.Any()).Return(providerDown)
	mockGW.EXPECT().PublishPushNotification(gomock.Any(), gomock.Any()).Return(providerDown)
	mockGW.EXPECT().PublishSOSTriggered(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	result, err := uc.TriggerSOS(context.Background(), req)

	// Assert
	require.NoError(t, err)
	require.Len(t, result.ContactsNotified, 1)
	assert.Equal(t, "failed", result.ContactsNotified[0].Status)
	assert.NotEmpty(t, result.ContactsNotified[0].Error)
	assert.Nil(t, result.NearestSafeSpot)
}

func TestTriggerSOS_PartialDeliveryCountsAsSent(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSOSRepo(ctrl)
	mockGW := mocks.NewMockSOSGW(ctrl)
	uc := NewSOSUC(testSOSConfig(), mockRepo, mockGW)

	req := triggerRequest(models.TriggerSourceManual)
	userID := uuid.MustParse(req.UserID)
	contacts := testContacts(userID)[:1]

	mockRepo.EXPECT().GetUser(gomock.Any(), userID).Return(testUser(userID), nil)
	mockRepo.EXPECT().CreateSOSEvent(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().GetEmergencyContacts(gomock.Any(), userID).Return(contacts, nil)
	mockRepo.EXPECT().
		GetNearbySafeSpots(gomock.Any(), req.Location, 5000.0, gomock.Any()).
		Return(nil, nil)
	mockRepo.EXPECT().RecordContactsNotified(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().ActivateSOSEvent(gomock.Any(), gomock.Any()).Return(nil)

	mockGW.EXPECT().SendSMS(gomock.Any(), contacts[0].PhoneNumber, gomock.Any()).Return(sos.ErrNotificationProvider)
	mockGW.EXPECT().SendWhatsApp(gomock.Any(), contacts[0].PhoneNumber, gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishPushNotification(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishSOSTriggered(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	result, err := uc.TriggerSOS(context.Background(), req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "sent", result.ContactsNotified[0].Status)
}

func TestTriggerSOS_RecordsOutcomesOnEvent(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSOSRepo(ctrl)
	mockGW := mocks.NewMockSOSGW(ctrl)
	uc := NewSOSUC(testSOSConfig(), mockRepo, mockGW)

	req := triggerRequest(models.TriggerSourceFall)
	userID := uuid.MustParse(req.UserID)
	contacts := testContacts(userID)[:1]

	police := models.SafeSpot{
		ID: uuid.New(), Name: "Polsek Menteng", Category: models.SafeSpotPoliceStation,
		PhoneNumber: "+62215553333", DistanceMeters: 640.0,
	}

	var eventID uuid.UUID
	mockRepo.EXPECT().GetUser(gomock.Any(), userID).Return(testUser(userID), nil)
	mockRepo.EXPECT().CreateSOSEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.SOSEvent) error {
			eventID = event.ID
			return nil
		})
	mockRepo.EXPECT().GetEmergencyContacts(gomock.Any(), userID).Return(contacts, nil)
	mockRepo.EXPECT().
		GetNearbySafeSpots(gomock.Any(), req.Location, 5000.0, gomock.Any()).
		Return([]models.SafeSpot{police}, nil)

	// The event row is updated with the safe spot, the per-contact
	// outcomes and the police alert
	mockRepo.EXPECT().SetSafeSpot(gomock.Any(), gomock.Any(), police.ID).
		DoAndReturn(func(_ context.Context, id uuid.UUID, _ uuid.UUID) error {
			assert.Equal(t, eventID, id)
			return nil
		})
	var recorded []models.ContactNotification
	mockRepo.EXPECT().RecordContactsNotified(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID, notifications []models.ContactNotification) error {
			assert.Equal(t, eventID, id)
			recorded = notifications
			return nil
		})
	mockRepo.EXPECT().MarkPoliceNotified(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) error {
			assert.Equal(t, eventID, id)
			return nil
		})
	mockRepo.EXPECT().ActivateSOSEvent(gomock.Any(), gomock.Any()).Return(nil)

	mockGW.EXPECT().SendSMS(gomock.Any(), contacts[0].PhoneNumber, gomock.Any()).Return(sos.ErrNotificationProvider)
	mockGW.EXPECT().SendSMS(gomock.Any(), police.PhoneNumber, gomock.Any()).Return(nil)
	mockGW.EXPECT().SendWhatsApp(gomock.Any(), contacts[0].PhoneNumber, gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishPushNotification(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishSOSTriggered(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	result, err := uc.TriggerSOS(context.Background(), req)

	// Assert
	require.NoError(t, err)
	require.Len(t, recorded, 1)
	assert.Equal(t, contacts[0].ID.String(), recorded[0].ContactID)
	assert.Equal(t, "sent", recorded[0].Status)
	assert.Equal(t, recorded, result.ContactsNotified)
	assert.True(t, result.PoliceNotified)
}

func TestTriggerSOS_UnknownTriggerSource(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewSOSUC(testSOSConfig(), mocks.NewMockSOSRepo(ctrl), mocks.NewMockSOSGW(ctrl))

	req := triggerRequest("telepathy")

	// Act
	result, err := uc.TriggerSOS(context.Background(), req)

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, sos.ErrUnknownTriggerSource)
}

func TestTriggerSOS_UserNotFound(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSOSRepo(ctrl)
	uc := NewSOSUC(testSOSConfig(), mockRepo, mocks.NewMockSOSGW(ctrl))

	req := triggerRequest(models.TriggerSourceManual)
	userID := uuid.MustParse(req.UserID)

	mockRepo.EXPECT().GetUser(gomock.Any(), userID).Return(nil, sos.ErrUserNotFound)

	// Act
	result, err := uc.TriggerSOS(context.Background(), req)

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, sos.ErrUserNotFound)
}

func TestTriggerSOS_EventPersistenceFailureAborts(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSOSRepo(ctrl)
	uc := NewSOSUC(testSOSConfig(), mockRepo, mocks.NewMockSOSGW(ctrl))

	req := triggerRequest(models.TriggerSourceManual)
	userID := uuid.MustParse(req.UserID)

	mockRepo.EXPECT().GetUser(gomock.Any(), userID).Return(testUser(userID), nil)
	mockRepo.EXPECT().CreateSOSEvent(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	// Act
	result, err := uc.TriggerSOS(context.Background(), req)

	// Assert
	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to record SOS event")
}
