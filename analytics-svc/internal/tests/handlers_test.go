package tests

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "github.com/Ganga-777/Cloud-Kitchen/analytics-svc/internal/api/http"
	"github.com/Ganga-777/Cloud-Kitchen/analytics-svc/internal/domain"
	"github.com/Ganga-777/Cloud-Kitchen/analytics-svc/internal/mocks"
	"github.com/Ganga-777/Cloud-Kitchen/analytics-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, analytics *mocks.AnalyticsInterface, target string) *httptest.ResponseRecorder {
	t.Helper()
	logger, _ := test.NewNullLogger()
	handler := httpapi.NewHandler(analytics, logger)

	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestGetRatingHandler(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		targetType string
		targetID   string
		rating     domain.Rating
		err        error
		wantCode   int
	}{
		{
			name:       "kitchen with reviews",
			target:     "/api/ratings/kitchen/1",
			targetType: "kitchen",
			targetID:   "1",
			rating:     domain.Rating{TargetID: "1", TargetType: "kitchen", Average: 4.7, Count: 3},
			wantCode:   http.StatusOK,
		},
		{
			name:       "dish without reviews",
			target:     "/api/ratings/dish/999",
			targetType: "dish",
			targetID:   "999",
			rating:     domain.Rating{TargetID: "999", TargetType: "dish"},
			wantCode:   http.StatusOK,
		},
		{
			name:       "unknown target type",
			target:     "/api/ratings/driver/1",
			targetType: "driver",
			targetID:   "1",
			err:        service.ErrInvalidTargetType,
			wantCode:   http.StatusBadRequest,
		},
		{
			name:       "redis down",
			target:     "/api/ratings/kitchen/1",
			targetType: "kitchen",
			targetID:   "1",
			err:        errors.New("connection refused"),
			wantCode:   http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			analytics := mocks.NewAnalyticsInterface(t)
			analytics.On("Rating", mock.Anything, testCase.targetType, testCase.targetID).
				Return(testCase.rating, testCase.err)

			w := serve(t, analytics, testCase.target)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantCode != http.StatusOK {
				return
			}
			var got domain.Rating
			require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
			assert.Equal(t, testCase.rating, got)
		})
	}
}

func TestGetRatingHandler_ZeroAverageIsSerialized(t *testing.T) {
	analytics := mocks.NewAnalyticsInterface(t)
	analytics.On("Rating", mock.Anything, "dish", "5").
		Return(domain.Rating{TargetID: "5", TargetType: "dish"}, nil)

	w := serve(t, analytics, "/api/ratings/dish/5")

	assert.JSONEq(t, `{"targetId":"5","targetType":"dish","average":0,"count":0}`, w.Body.String())
}

func TestGetTopDishesHandler(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		period   string
		limit    int
		mocked   bool
		err      error
		wantCode int
	}{
		{name: "defaults", target: "/api/analytics/kitchens/1/top-dishes", mocked: true, wantCode: http.StatusOK},
		{name: "all time with limit", target: "/api/analytics/kitchens/1/top-dishes?period=all&limit=3", period: "all", limit: 3, mocked: true, wantCode: http.StatusOK},
		{name: "bad period", target: "/api/analytics/kitchens/1/top-dishes?period=week", period: "week", mocked: true, err: service.ErrInvalidPeriod, wantCode: http.StatusBadRequest},
		{name: "bad limit", target: "/api/analytics/kitchens/1/top-dishes?limit=abc", wantCode: http.StatusBadRequest},
		{name: "negative limit", target: "/api/analytics/kitchens/1/top-dishes?limit=-2", wantCode: http.StatusBadRequest},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			analytics := mocks.NewAnalyticsInterface(t)
			top := domain.TopDishes{
				KitchenID: "1",
				Period:    "today",
				Dishes:    []domain.DishScore{{DishID: "101", Score: 4}},
			}
			if testCase.mocked {
				analytics.On("TopDishes", mock.Anything, "1", testCase.period, testCase.limit).
					Return(top, testCase.err)
			}

			w := serve(t, analytics, testCase.target)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantCode == http.StatusOK {
				var got domain.TopDishes
				require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
				assert.Equal(t, top, got)
			}
		})
	}
}

func TestHealthHandler(t *testing.T) {
	w := serve(t, mocks.NewAnalyticsInterface(t), "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
