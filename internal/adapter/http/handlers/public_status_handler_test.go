package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"autofixpro/internal/adapter/http/handlers/mocks"
	"autofixpro/internal/domain/entities"
	"autofixpro/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPublicStatusRouter(t *testing.T) (*gin.Engine, *mocks.MockIServiceOrderUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIServiceOrderUseCase(ctrl)
	h := NewPublicStatusHandler(uc)

	r := gin.New()
	r.GET("/v1/public/vehicle-status/:plate", h.VehicleStatus)
	return r, uc
}

func TestPublicStatusHandler_VehicleStatus(t *testing.T) {
	t.Run("unknown plate", func(t *testing.T) {
		r, uc := newPublicStatusRouter(t)

		uc.EXPECT().VehicleStatusByPlate(gomock.Any(), "ZZZ0000").
			Return(usecase.VehicleStatusReport{}, usecase.ErrVehicleNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/public/vehicle-status/ZZZ0000", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("no service history", func(t *testing.T) {
		r, uc := newPublicStatusRouter(t)

		uc.EXPECT().VehicleStatusByPlate(gomock.Any(), "ABC1D23").
			Return(usecase.VehicleStatusReport{}, usecase.ErrNoServiceHistory)

		req := httptest.NewRequest(http.MethodGet, "/v1/public/vehicle-status/ABC1D23", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success hides owner contact", func(t *testing.T) {
		r, uc := newPublicStatusRouter(t)

		now := time.Now().UTC()
		uc.EXPECT().VehicleStatusByPlate(gomock.Any(), "ABC1D23").Return(usecase.VehicleStatusReport{
			Vehicle: entities.Vehicle{
				ID:    "veh-1",
				Plate: "ABC1D23",
				Brand: "Fiat",
				Model: "Uno",
				Owner: entities.OwnerContact{Name: "Ana", Email: "ana@example.com", Phone: "+5511999999999"},
			},
			Order: entities.ServiceOrder{ID: "ord-1", State: entities.OrderStateInTesting, ReceivedAt: now},
			History: []entities.StatusSnapshot{
				{State: "RECEIVED", Description: "Vehicle received at the workshop", Progress: 0, RecordedAt: now},
				{State: "IN_TESTING", Description: "In Testing", Progress: 80, RecordedAt: now.Add(time.Hour)},
			},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/public/vehicle-status/ABC1D23", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["plate"] != "ABC1D23" || body["progress"] != float64(80) {
			t.Fatalf("unexpected status fields: %v", body)
		}
		history, ok := body["history"].([]any)
		if !ok || len(history) != 2 {
			t.Fatalf("unexpected history: %v", body["history"])
		}
		if _, leaked := body["owner"]; leaked {
			t.Fatal("owner contact must not be exposed on the public page")
		}
		if raw := w.Body.String(); strings.Contains(raw, "ana@example.com") || strings.Contains(raw, "+5511999999999") {
			t.Fatal("owner contact leaked into the public payload")
		}
	})
}
