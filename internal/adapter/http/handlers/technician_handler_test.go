package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"autofixpro/internal/adapter/http/handlers/mocks"
	"autofixpro/internal/domain/entities"
	"autofixpro/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newTechnicianRouter(t *testing.T) (*gin.Engine, *mocks.MockITechnicianUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockITechnicianUseCase(ctrl)
	h := NewTechnicianHandler(uc)

	r := gin.New()
	r.POST("/v1/technicians", h.Register)
	r.GET("/v1/technicians", h.ListWithWorkload)
	r.PUT("/v1/technicians/:id/deactivate", h.Deactivate)
	r.PUT("/v1/technicians/:id/reactivate", h.Reactivate)
	return r, uc
}

func TestTechnicianHandler_Register(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		r, _ := newTechnicianRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/technicians", bytes.NewBufferString(`{"specialty":"brakes"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newTechnicianRouter(t)

		uc.EXPECT().Register(gomock.Any(), "Marta", "electrical").
			Return(entities.Technician{ID: "tech-1", Name: "Marta", Specialty: "electrical", Active: true}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/technicians", bytes.NewBufferString(`{"name":"Marta","specialty":"electrical"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["active"] != true {
			t.Fatalf("expected active technician, got %v", body)
		}
	})
}

func TestTechnicianHandler_ListWithWorkload(t *testing.T) {
	r, uc := newTechnicianRouter(t)

	uc.EXPECT().ListWithWorkload(gomock.Any()).Return([]entities.TechnicianLoad{
		{Technician: entities.Technician{ID: "tech-1", Name: "Marta", Active: true}, OpenOrders: 2},
		{Technician: entities.Technician{ID: "tech-2", Name: "Ivo", Active: false}, OpenOrders: 0},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/technicians", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if len(body) != 2 || body[0]["open_orders"] != float64(2) {
		t.Fatalf("unexpected workload payload: %v", body)
	}
}

func TestTechnicianHandler_Deactivate(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := newTechnicianRouter(t)

		uc.EXPECT().Deactivate(gomock.Any(), "tech-404").Return(entities.Technician{}, usecase.ErrTechnicianNotFound)

		req := httptest.NewRequest(http.MethodPut, "/v1/technicians/tech-404/deactivate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newTechnicianRouter(t)

		uc.EXPECT().Deactivate(gomock.Any(), "tech-1").Return(entities.Technician{ID: "tech-1", Active: false}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/technicians/tech-1/deactivate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
