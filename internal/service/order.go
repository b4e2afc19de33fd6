package service

import (
	"context"
	"errors"
	"fmt"

	"kinhon/internal/metrics"
	"kinhon/internal/model"
	"kinhon/internal/store"
	"kinhon/internal/timeline"
)

var ErrPhoneRequired = errors.New("phone number required")

type OrderService struct {
	orders store.OrderStore
	m      *metrics.Metrics
}

func NewOrderService(orders store.OrderStore, m *metrics.Metrics) *OrderService {
	return &OrderService{orders: orders, m: m}
}

// ListByPhone returns all orders addressed to the given phone, most recent
// first. The phone is a plain filter key, not an identity check.
func (s *OrderService) ListByPhone(ctx context.Context, phone string) ([]model.Order, error) {
	if phone == "" {
		return nil, ErrPhoneRequired
	}

	orders, err := s.orders.ListByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	s.m.AddOrdersServed(len(orders))
	return orders, nil
}

func (s *OrderService) GetByID(ctx context.Context, id string) (model.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.Order{}, err
		}
		return model.Order{}, fmt.Errorf("get order %s: %w", id, err)
	}

	s.m.IncOrderLookups()
	return order, nil
}

// Timeline fetches an order and derives its tracking timeline.
func (s *OrderService) Timeline(ctx context.Context, id string) (model.Order, []timeline.Step, error) {
	order, err := s.GetByID(ctx, id)
	if err != nil {
		return model.Order{}, nil, err
	}
	return order, timeline.ForStatus(order.Status), nil
}
