package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakhipath/sakhipath/internal/pkg/models"
	"github.com/sakhipath/sakhipath/services/routes"
	"github.com/sakhipath/sakhipath/services/routes/mocks"
)

func performPlanRequest(t *testing.T, handler *RouteHandler, body string, userID interface{}) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/routes/plan", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != nil {
		c.Set("user_id", userID)
	}

	require.NoError(t, handler.PlanRoute(c))
	return rec
}

func TestPlanRoute_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRouteUC(ctrl)
	handler := NewRouteHandler(mockUC)

	userID := uuid.New()
	plan := &models.RoutePlan{
		Selected: models.ScoredRoute{
			CandidateRoute: models.CandidateRoute{Summary: "Jl. Sudirman"},
			SafetyScore:    models.SafetyScore{Overall: 7.8},
		},
		Persisted: true,
	}

	mockUC.EXPECT().
		PlanRoute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *models.RouteRequest) (*models.RoutePlan, error) {
			assert.Equal(t, userID.String(), req.UserID)
			assert.Equal(t, models.ObjectiveSafest, req.Objective)
			return plan, nil
		})

	body := `{"start":{"latitude":-6.1754,"longitude":106.8272},"destination":{"latitude":-6.195,"longitude":106.823},"route_type":"safest"}`

	// Act
	rec := performPlanRequest(t, handler, body, userID)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Jl. Sudirman")
	assert.Contains(t, rec.Body.String(), `"persisted":true`)
}

func TestPlanRoute_UnknownRouteType(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewRouteHandler(mocks.NewMockRouteUC(ctrl))

	body := `{"start":{"latitude":-6.1754,"longitude":106.8272},"destination":{"latitude":-6.195,"longitude":106.823},"route_type":"scenic"}`

	// Act
	rec := performPlanRequest(t, handler, body, uuid.New())

	// Assert
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlanRoute_MissingUser(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewRouteHandler(mocks.NewMockRouteUC(ctrl))

	body := `{"start":{"latitude":-6.1754,"longitude":106.8272},"destination":{"latitude":-6.195,"longitude":106.823},"route_type":"safest"}`

	// Act
	rec := performPlanRequest(t, handler, body, nil)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPlanRoute_ProviderUnavailable(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRouteUC(ctrl)
	handler := NewRouteHandler(mockUC)

	mockUC.EXPECT().
		PlanRoute(gomock.Any(), gomock.Any()).
		Return(nil, routes.ErrRouteProvider)

	body := `{"start":{"latitude":-6.1754,"longitude":106.8272},"destination":{"latitude":-6.195,"longitude":106.823},"route_type":"safest"}`

	// Act
	rec := performPlanRequest(t, handler, body, uuid.New())

	// Assert
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestScoreCandidates_EmptyBody(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewRouteHandler(mocks.NewMockRouteUC(ctrl))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/internal/routes/score", strings.NewReader(`{"candidates":[]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Act
	require.NoError(t, handler.ScoreCandidates(c))

	// Assert
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScoreCandidates_UnknownRouteType(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewRouteHandler(mocks.NewMockRouteUC(ctrl))

	e := echo.New()
	body := `{"candidates":[{"polyline":"_p~iF~ps|U"}],"route_type":"scenic"}`
	req := httptest.NewRequest(http.MethodPost, "/internal/routes/score", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Act
	require.NoError(t, handler.ScoreCandidates(c))

	// Assert
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScoreCandidates_ReturnsRankedSelection(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRouteUC(ctrl)
	handler := NewRouteHandler(mockUC)

	selection := &models.SelectionResult{
		Selected: models.ScoredRoute{
			CandidateRoute: models.CandidateRoute{Summary: "Jl. Thamrin"},
			SafetyScore:    models.SafetyScore{Overall: 6.4},
		},
		Alternatives: []models.ScoredRoute{
			{
				CandidateRoute: models.CandidateRoute{Summary: "Jl. Wahid Hasyim"},
				SafetyScore:    models.SafetyScore{Overall: 5.9},
			},
		},
	}

	mockUC.EXPECT().
		ScoreCandidates(gomock.Any(), gomock.Any(), models.ObjectiveSafest).
		Return(selection, nil)

	e := echo.New()
	body := `{"candidates":[{"polyline":"_p~iF~ps|U","distance_meters":1000,"duration_seconds":700}],"route_type":"safest"}`
	req := httptest.NewRequest(http.MethodPost, "/internal/routes/score", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Act
	require.NoError(t, handler.ScoreCandidates(c))

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Jl. Thamrin")
	assert.Contains(t, rec.Body.String(), "Jl. Wahid Hasyim")
	assert.Contains(t, rec.Body.String(), `"alternatives"`)
}
