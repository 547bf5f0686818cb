package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gestionpagos/billing-system/internal/core/domain"
	"github.com/gestionpagos/billing-system/internal/core/ports"
)

type stubActivityService struct {
	listFn func(ctx context.Context, limit int) ([]domain.Activity, error)
}

func (s *stubActivityService) Process(context.Context, ports.ActivityInput) error {
	return nil
}

func (s *stubActivityService) ListRecent(ctx context.Context, limit int) ([]domain.Activity, error) {
	return s.listFn(ctx, limit)
}

func TestActivityHandler_List(t *testing.T) {
	e := newTestEcho()
	stub := &stubActivityService{
		listFn: func(ctx context.Context, limit int) ([]domain.Activity, error) {
			if limit != 10 {
				t.Fatalf("expected limit 10, got %d", limit)
			}
			return []domain.Activity{{
				ID:        1,
				Entity:    domain.EntityClient,
				EntityID:  3,
				Action:    domain.ActionCreate,
				Actor:     "ana",
				CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
			}}, nil
		},
	}
	handler := NewActivityHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/actividades?limite=10", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["entidad"] != "cliente" || resp[0]["accion"] != "create" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestActivityHandler_List_InvalidLimit(t *testing.T) {
	e := newTestEcho()
	handler := NewActivityHandler(&stubActivityService{})

	req := httptest.NewRequest(http.MethodGet, "/actividades?limite=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.List(c)
	requireHTTPError(t, err, http.StatusRequestEntityTooLarge)
}
