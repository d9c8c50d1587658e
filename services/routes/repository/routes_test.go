package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakhipath/sakhipath/internal/pkg/models"
)

func sampleRecord() *models.RouteRecord {
	return &models.RouteRecord{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		StartLocation:   models.Location{Latitude: -6.1754, Longitude: 106.8272},
		EndLocation:     models.Location{Latitude: -6.1950, Longitude: 106.8230},
		StartAddress:    "Jl. Medan Merdeka",
		EndAddress:      "Jl. M.H. Thamrin",
		RoutePath:       "LINESTRING(106.8272 -6.1754, 106.8230 -6.195)",
		RouteType:       models.ObjectiveSafest,
		DistanceMeters:  2100,
		DurationSeconds: 1500,
		SafetyScore:     7.8,
		CreatedAt:       time.Now(),
	}
}

func TestCreateRoute_Success(t *testing.T) {
	// Arrange
	repo, mock, _ := setupRepo(t)
	record := sampleRecord()

	mock.ExpectExec("INSERT INTO routes").
		WillReturnResult(sqlmock.NewResult(1, 1))

	// Act
	err := repo.CreateRoute(context.Background(), record)

	// Assert
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRoute_DatabaseError(t *testing.T) {
	// Arrange
	repo, mock, _ := setupRepo(t)
	record := sampleRecord()

	mock.ExpectExec("INSERT INTO routes").
		WillReturnError(errors.New("connection reset"))

	// Act
	err := repo.CreateRoute(context.Background(), record)

	// Assert
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert route")
	assert.NoError(t, mock.ExpectationsWereMet())
}
