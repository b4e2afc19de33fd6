package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"kinhon/internal/model"
	"kinhon/internal/service"
	"kinhon/internal/store"
	"kinhon/internal/timeline"
)

// ListOrdersHandler serves GET /api/orders?phone=P: every order addressed
// to the phone, most recent first, items parsed.
func ListOrdersHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		phone := r.URL.Query().Get("phone")

		orders, err := orderSvc.ListByPhone(r.Context(), phone)
		if err != nil {
			if errors.Is(err, service.ErrPhoneRequired) {
				writeError(w, http.StatusBadRequest, msgPhoneRequired)
				return
			}
			slog.Error("list orders failed", "phone", phone, "error", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		if orders == nil {
			orders = []model.Order{}
		}
		writeJSON(w, http.StatusOK, orders)
	}
}

// GetOrderHandler serves GET /api/orders/{id}.
func GetOrderHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		order, err := orderSvc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				writeError(w, http.StatusNotFound, msgOrderNotFound)
				return
			}
			slog.Error("get order failed", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, order)
	}
}

type timelineResponse struct {
	OrderID string            `json:"order_id"`
	Status  model.OrderStatus `json:"status"`
	Steps   []timeline.Step   `json:"steps"`
}

// OrderTimelineHandler serves GET /api/orders/{id}/timeline: the per-stage
// completed/active classification for the order's current status.
func OrderTimelineHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		order, steps, err := orderSvc.Timeline(r.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				writeError(w, http.StatusNotFound, msgOrderNotFound)
				return
			}
			slog.Error("order timeline failed", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, timelineResponse{
			OrderID: order.ID,
			Status:  order.Status,
			Steps:   steps,
		})
	}
}
