package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"autofixpro/internal/adapter/http/handlers/mocks"
	"autofixpro/internal/domain/entities"
	"autofixpro/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newVehicleRouter(t *testing.T) (*gin.Engine, *mocks.MockIVehicleUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIVehicleUseCase(ctrl)
	h := NewVehicleHandler(uc)

	r := gin.New()
	r.POST("/v1/vehicles", h.Register)
	r.GET("/v1/vehicles/:id", h.GetVehicle)
	return r, uc
}

func TestVehicleHandler_Register(t *testing.T) {
	t.Run("missing plate", func(t *testing.T) {
		r, _ := newVehicleRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles", bytes.NewBufferString(`{"brand":"Fiat","model":"Uno","owner":{"name":"Ana"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate plate", func(t *testing.T) {
		r, uc := newVehicleRouter(t)

		uc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(entities.Vehicle{}, usecase.ErrVehicleAlreadyRegistered)

		payload := `{"plate":"abc1d23","brand":"Fiat","model":"Uno","owner":{"name":"Ana","email":"ana@example.com"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newVehicleRouter(t)

		uc.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, v entities.Vehicle) (entities.Vehicle, error) {
				if v.Plate != "abc1d23" || v.Owner.Email != "ana@example.com" {
					t.Fatalf("unexpected entity from payload: %+v", v)
				}
				v.ID = "veh-1"
				return v, nil
			})

		payload := `{"plate":"abc1d23","brand":"Fiat","model":"Uno","year":2019,"owner":{"name":"Ana","email":"ana@example.com","username":"ana"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestVehicleHandler_GetVehicle(t *testing.T) {
	r, uc := newVehicleRouter(t)

	uc.EXPECT().GetByID(gomock.Any(), "veh-404").Return(entities.Vehicle{}, usecase.ErrVehicleNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v1/vehicles/veh-404", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
