package service

import (
	"context"
	"errors"
	"fmt"

	"kinhon/internal/metrics"
	"kinhon/internal/model"
	"kinhon/internal/store"
)

var ErrMissingFields = errors.New("missing required fields")

type ComplaintService struct {
	complaints store.ComplaintStore
	m          *metrics.Metrics
}

func NewComplaintService(complaints store.ComplaintStore, m *metrics.Metrics) *ComplaintService {
	return &ComplaintService{complaints: complaints, m: m}
}

// Submit files a complaint against an order id and returns the assigned
// complaint id. The order id is not checked for existence; the original
// system accepted orphaned complaints and that contract is preserved.
func (s *ComplaintService) Submit(ctx context.Context, orderID string, ctype model.ComplaintType, description string) (int64, error) {
	if orderID == "" || ctype == "" || description == "" {
		return 0, ErrMissingFields
	}

	c := model.Complaint{
		OrderID:     orderID,
		Type:        ctype,
		Description: description,
	}
	if err := s.complaints.Create(ctx, &c); err != nil {
		return 0, fmt.Errorf("submit complaint: %w", err)
	}

	s.m.IncComplaintsSubmitted()
	return c.ID, nil
}
