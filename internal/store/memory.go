package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"kinhon/internal/model"
)

// MemoryOrders keeps orders in process memory. It backs tests and favors
// clarity over performance.
type MemoryOrders struct {
	mu     sync.RWMutex
	orders map[string]model.Order
}

func NewMemoryOrders() *MemoryOrders {
	return &MemoryOrders{orders: make(map[string]model.Order)}
}

func (s *MemoryOrders) ListByPhone(_ context.Context, phone string) ([]model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var orders []model.Order
	for _, o := range s.orders {
		if o.RecipientPhone == phone {
			orders = append(orders, o)
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (s *MemoryOrders) GetByID(_ context.Context, id string) (model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if o, ok := s.orders[id]; ok {
		return o, nil
	}
	return model.Order{}, ErrNotFound
}

func (s *MemoryOrders) Put(_ context.Context, o model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID] = o
	return nil
}

// MemoryComplaints keeps complaints in process memory with deterministic
// auto-incrementing ids.
type MemoryComplaints struct {
	mu         sync.Mutex
	complaints map[int64]model.Complaint
	nextID     int64
}

func NewMemoryComplaints() *MemoryComplaints {
	return &MemoryComplaints{complaints: make(map[int64]model.Complaint)}
}

func (s *MemoryComplaints) Create(_ context.Context, c *model.Complaint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	c.ID = s.nextID
	c.Status = model.ComplaintStatusOpen
	c.CreatedAt = time.Now()
	s.complaints[c.ID] = *c
	return nil
}

func (s *MemoryComplaints) GetByID(_ context.Context, id int64) (model.Complaint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.complaints[id]; ok {
		return c, nil
	}
	return model.Complaint{}, ErrNotFound
}
