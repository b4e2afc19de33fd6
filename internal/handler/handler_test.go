package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"kinhon/internal/database"
	"kinhon/internal/model"
	"kinhon/internal/service"
	"kinhon/internal/session"
	"kinhon/internal/store"
)

const testSecret = "test-secret"

func newRouter(t *testing.T) chi.Router {
	t.Helper()

	orders := store.NewMemoryOrders()
	ctx := context.Background()
	for _, o := range database.DemoOrders() {
		if err := orders.Put(ctx, o); err != nil {
			t.Fatal(err)
		}
	}
	complaints := store.NewMemoryComplaints()

	orderSvc := service.NewOrderService(orders, nil)
	complaintSvc := service.NewComplaintService(complaints, nil)

	r := chi.NewRouter()
	r.Get("/api/health", HealthHandler())
	r.Post("/api/session", CreateSessionHandler(testSecret, nil))
	r.Get("/api/orders", ListOrdersHandler(orderSvc))
	r.Get("/api/orders/{id}", GetOrderHandler(orderSvc))
	r.Get("/api/orders/{id}/timeline", OrderTimelineHandler(orderSvc))
	r.Post("/api/complaints", SubmitComplaintHandler(complaintSvc))
	return r
}

func doJSON(t *testing.T, r chi.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	r := newRouter(t)
	rec := doJSON(t, r, http.MethodGet, "/api/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %+v", resp)
	}
}

func TestListOrders(t *testing.T) {
	r := newRouter(t)
	rec := doJSON(t, r, http.MethodGet, "/api/orders?phone="+database.DemoPhone, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var orders []model.Order
	if err := json.NewDecoder(rec.Body).Decode(&orders); err != nil {
		t.Fatal(err)
	}
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(orders))
	}
	if orders[0].ID != "ORD-2024-002" {
		t.Fatalf("expected most recent order first, got %s", orders[0].ID)
	}
	for _, o := range orders {
		if len(o.Items) == 0 {
			t.Fatalf("order %s: items not parsed", o.ID)
		}
	}
}

func TestListOrders_PhoneMissing(t *testing.T) {
	r := newRouter(t)
	rec := doJSON(t, r, http.MethodGet, "/api/orders", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp["error"] != "Phone number required" {
		t.Fatalf("unexpected error message %q", resp["error"])
	}
}

func TestListOrders_NoMatches(t *testing.T) {
	r := newRouter(t)
	rec := doJSON(t, r, http.MethodGet, "/api/orders?phone=000000000", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var orders []model.Order
	if err := json.NewDecoder(rec.Body).Decode(&orders); err != nil {
		t.Fatal(err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected empty list, got %d", len(orders))
	}
}

func TestGetOrder(t *testing.T) {
	r := newRouter(t)
	rec := doJSON(t, r, http.MethodGet, "/api/orders/ORD-2024-001", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var order model.Order
	if err := json.NewDecoder(rec.Body).Decode(&order); err != nil {
		t.Fatal(err)
	}
	if order.ID != "ORD-2024-001" || order.Status != model.StatusOutForDelivery {
		t.Fatalf("unexpected order %+v", order)
	}
	if order.SenderName != "Maria Silva" || len(order.Items) != 2 {
		t.Fatalf("order fields incomplete: %+v", order)
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	r := newRouter(t)
	rec := doJSON(t, r, http.MethodGet, "/api/orders/does-not-exist", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp["error"] != "Order not found" {
		t.Fatalf("unexpected error message %q", resp["error"])
	}
}

func TestOrderTimeline(t *testing.T) {
	r := newRouter(t)
	rec := doJSON(t, r, http.MethodGet, "/api/orders/ORD-2024-001/timeline", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		OrderID string            `json:"order_id"`
		Status  model.OrderStatus `json:"status"`
		Steps   []struct {
			Stage     model.OrderStatus `json:"stage"`
			Completed bool              `json:"completed"`
			Active    bool              `json:"active"`
		} `json:"steps"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.OrderID != "ORD-2024-001" || resp.Status != model.StatusOutForDelivery {
		t.Fatalf("unexpected timeline header %+v", resp)
	}
	if len(resp.Steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(resp.Steps))
	}
	for _, s := range resp.Steps {
		switch s.Stage {
		case model.StatusOutForDelivery:
			if !s.Active {
				t.Fatalf("expected %s active", s.Stage)
			}
		case model.StatusDelivered:
			if s.Active || s.Completed {
				t.Fatalf("expected %s unreached", s.Stage)
			}
		default:
			if !s.Completed {
				t.Fatalf("expected %s completed", s.Stage)
			}
		}
	}
}

func TestSubmitComplaint(t *testing.T) {
	r := newRouter(t)
	rec := doJSON(t, r, http.MethodPost, "/api/complaints", map[string]string{
		"orderId":     "ORD-2024-001",
		"type":        "damaged",
		"description": "box crushed",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Success bool  `json:"success"`
		ID      int64 `json:"id"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success || resp.ID <= 0 {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestSubmitComplaint_MissingField(t *testing.T) {
	r := newRouter(t)
	rec := doJSON(t, r, http.MethodPost, "/api/complaints", map[string]string{
		"orderId": "ORD-2024-001",
		"type":    "damaged",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp["error"] != "Missing required fields" {
		t.Fatalf("unexpected error message %q", resp["error"])
	}
}

func TestCreateSession(t *testing.T) {
	r := newRouter(t)
	rec := doJSON(t, r, http.MethodPost, "/api/session", map[string]string{"phone": database.DemoPhone})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	phone, err := session.ParseToken(testSecret, resp["token"])
	if err != nil {
		t.Fatalf("returned token does not parse: %v", err)
	}
	if phone != database.DemoPhone {
		t.Fatalf("expected token for %s, got %s", database.DemoPhone, phone)
	}
}

func TestCreateSession_PhoneMissing(t *testing.T) {
	r := newRouter(t)
	rec := doJSON(t, r, http.MethodPost, "/api/session", map[string]string{"phone": ""})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
