package commands

import "oja/internal/core/domain/services"

// LifecycleRecorder observes committed order lifecycle events. Handlers call it only
// after the unit of work committed.
type LifecycleRecorder interface {
	OrderPlaced(total int64)
	DeliveryAccepted()
	OrderDelivered(payout services.Payout)
}

// NopRecorder discards every event.
type NopRecorder struct{}

func (NopRecorder) OrderPlaced(int64)              {}
func (NopRecorder) DeliveryAccepted()              {}
func (NopRecorder) OrderDelivered(services.Payout) {}
