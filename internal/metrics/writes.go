package metrics

import (
	"oja/internal/core/domain/model/notification"
	"oja/internal/core/domain/model/order"
	"oja/internal/core/domain/model/review"
	"oja/internal/core/domain/model/store"
	"oja/internal/core/domain/model/user"

	"github.com/prometheus/client_golang/prometheus"
)

// Writes counts aggregates persisted by committed transactions, by aggregate kind.
type Writes struct {
	committed *prometheus.CounterVec
}

func NewWrites(reg *Registry) (*Writes, error) {
	w := &Writes{
		committed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "aggregates_committed_total",
			Help:      "Aggregates written by committed transactions.",
		}, []string{"aggregate"}),
	}
	if err := reg.registry.Register(w.committed); err != nil {
		return nil, err
	}
	return w, nil
}

// AggregatesCommitted satisfies postgres.CommitObserver.
func (w *Writes) AggregatesCommitted(aggregates []any) {
	for _, aggregate := range aggregates {
		w.committed.WithLabelValues(aggregateKind(aggregate)).Inc()
	}
}

func aggregateKind(aggregate any) string {
	switch aggregate.(type) {
	case *user.User:
		return "user"
	case *store.Store:
		return "store"
	case *store.Item:
		return "item"
	case *order.Order:
		return "order"
	case *notification.Notification:
		return "notification"
	case *review.Review:
		return "review"
	default:
		return "other"
	}
}
