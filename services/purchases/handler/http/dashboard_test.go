package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/greenbasket/greenbasket/internal/pkg/models"
	"github.com/greenbasket/greenbasket/services/purchases/mocks"
)

func TestDashboardHandler_Summary_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPurchaseUC(ctrl)
	handler := NewDashboardHandler(mockUC)

	userID := uuid.New()
	mockUC.EXPECT().
		DashboardSummary(gomock.Any(), userID, "").
		Return(&models.DashboardSummary{TotalSpend: 349.99, TotalImpact: 750, EcoCount: 2}, nil).
		Times(1)

	e := echo.New()
	request := httptest.NewRequest(http.MethodGet, "/dashboard/summary", nil)
	recorder := httptest.NewRecorder()
	c := newAuthenticatedContext(e, request, recorder, userID)

	err := handler.Summary(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "349.99")
}

func TestDashboardHandler_Summary_MonthFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPurchaseUC(ctrl)
	handler := NewDashboardHandler(mockUC)

	userID := uuid.New()
	mockUC.EXPECT().
		DashboardSummary(gomock.Any(), userID, "2026-08").
		Return(&models.DashboardSummary{Month: "2026-08"}, nil).
		Times(1)

	e := echo.New()
	request := httptest.NewRequest(http.MethodGet, "/dashboard/summary?month=2026-08", nil)
	recorder := httptest.NewRecorder()
	c := newAuthenticatedContext(e, request, recorder, userID)

	err := handler.Summary(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestDashboardHandler_Summary_InvalidMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPurchaseUC(ctrl)
	handler := NewDashboardHandler(mockUC)

	e := echo.New()
	request := httptest.NewRequest(http.MethodGet, "/dashboard/summary?month=August", nil)
	recorder := httptest.NewRecorder()
	c := newAuthenticatedContext(e, request, recorder, uuid.New())

	err := handler.Summary(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestDashboardHandler_Summary_MissingSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPurchaseUC(ctrl)
	handler := NewDashboardHandler(mockUC)

	e := echo.New()
	request := httptest.NewRequest(http.MethodGet, "/dashboard/summary", nil)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)

	err := handler.Summary(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestDashboardHandler_Monthly_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPurchaseUC(ctrl)
	handler := NewDashboardHandler(mockUC)

	userID := uuid.New()
	mockUC.EXPECT().
		MonthlyBreakdown(gomock.Any(), userID).
		Return([]models.MonthlyAggregate{
			{Month: "2026-07", TotalSpend: 349.99, TotalImpact: 700, PurchaseCount: 2, EcoCount: 1},
			{Month: "2026-08", TotalSpend: 50, TotalImpact: 50, PurchaseCount: 1, EcoCount: 1},
		}, nil).
		Times(1)

	e := echo.New()
	request := httptest.NewRequest(http.MethodGet, "/dashboard/monthly", nil)
	recorder := httptest.NewRecorder()
	c := newAuthenticatedContext(e, request, recorder, userID)

	err := handler.Monthly(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "2026-07")
}

func TestDashboardHandler_Monthly_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPurchaseUC(ctrl)
	handler := NewDashboardHandler(mockUC)

	userID := uuid.New()
	mockUC.EXPECT().
		MonthlyBreakdown(gomock.Any(), userID).
		Return(nil, errors.New("database error")).
		Times(1)

	e := echo.New()
	request := httptest.NewRequest(http.MethodGet, "/dashboard/monthly", nil)
	recorder := httptest.NewRecorder()
	c := newAuthenticatedContext(e, request, recorder, userID)

	err := handler.Monthly(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestDashboardHandler_Tips_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPurchaseUC(ctrl)
	handler := NewDashboardHandler(mockUC)

	userID := uuid.New()
	mockUC.EXPECT().
		Tips(gomock.Any(), userID).
		Return(&models.TipsResponse{
			EcoTip: "Buying local products reduces transport emissions.",
			Purchases: []models.PurchaseTip{
				{Product: "Organic cotton shirt", Suggestion: "Excellent choice! Keep it up."},
			},
		}, nil).
		Times(1)

	e := echo.New()
	request := httptest.NewRequest(http.MethodGet, "/tips", nil)
	recorder := httptest.NewRecorder()
	c := newAuthenticatedContext(e, request, recorder, userID)

	err := handler.Tips(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "transport emissions")
}
