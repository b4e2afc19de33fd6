package model

import "time"

type ComplaintType string

const (
	ComplaintDelay   ComplaintType = "delay"
	ComplaintDamaged ComplaintType = "damaged"
	ComplaintMissing ComplaintType = "missing"
	ComplaintOther   ComplaintType = "other"
)

// ComplaintStatusOpen is the status every new complaint starts in. Nothing
// in this system moves a complaint out of it.
const ComplaintStatusOpen = "open"

type Complaint struct {
	ID          int64         `json:"id"`
	OrderID     string        `json:"order_id"`
	Type        ComplaintType `json:"type"`
	Description string        `json:"description"`
	Status      string        `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}
