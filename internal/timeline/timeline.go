// Package timeline derives the per-stage tracking display state for an
// order from its current status and the fixed stage sequence.
package timeline

import (
	"kinhon/internal/model"
)

// Step is one stage of the tracking timeline. A step before the order's
// current stage is Completed, the current stage is Active, later stages
// carry neither flag.
type Step struct {
	Stage     model.OrderStatus `json:"stage"`
	Title     string            `json:"title"`
	Completed bool              `json:"completed"`
	Active    bool              `json:"active"`
}

var stageTitles = map[model.OrderStatus]string{
	model.StatusPending:        "Order Placed",
	model.StatusProcessing:     "Processing",
	model.StatusShipped:        "Shipped",
	model.StatusOutForDelivery: "Out for Delivery",
	model.StatusDelivered:      "Delivered",
}

// ForStatus derives the timeline for a current status. An unknown status
// indexes to -1, leaving every step without flags.
func ForStatus(current model.OrderStatus) []Step {
	currentIdx := stageIndex(current)

	steps := make([]Step, 0, len(model.StatusSequence))
	for i, stage := range model.StatusSequence {
		steps = append(steps, Step{
			Stage:     stage,
			Title:     stageTitles[stage],
			Completed: currentIdx > i,
			Active:    currentIdx == i,
		})
	}
	return steps
}

func stageIndex(status model.OrderStatus) int {
	for i, s := range model.StatusSequence {
		if s == status {
			return i
		}
	}
	return -1
}
