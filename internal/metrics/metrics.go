// Package metrics exposes the marketplace's prometheus collectors.
//
// Everything is registered on a dedicated registry so the process can run several
// servers (and tests) without colliding on the default one.
package metrics

import (
	"net/http"

	"oja/internal/core/domain/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "oja"

// Registry owns the collectors of one process.
type Registry struct {
	registry *prometheus.Registry
}

// NewRegistry creates a registry with the Go runtime and process collectors.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return &Registry{registry: reg}
}

// Registerer exposes the underlying registry for additional collectors.
func (r *Registry) Registerer() prometheus.Registerer {
	return r.registry
}

// Gatherer exposes the underlying registry for scraping and tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Handler serves the text exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Lifecycle counts committed order events. It satisfies commands.LifecycleRecorder.
type Lifecycle struct {
	ordersPlaced       prometheus.Counter
	orderValue         prometheus.Counter
	deliveriesAccepted prometheus.Counter
	ordersDelivered    prometheus.Counter
	paidOut            *prometheus.CounterVec
}

// NewLifecycle registers the order lifecycle counters on reg.
func NewLifecycle(reg *Registry) (*Lifecycle, error) {
	l := &Lifecycle{
		ordersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_placed_total",
			Help:      "Orders created by checkout.",
		}),
		orderValue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_value_minor_units_total",
			Help:      "Sum of checkout totals (subtotal plus delivery fee), in minor currency units.",
		}),
		deliveriesAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deliveries_accepted_total",
			Help:      "Orders accepted by a courier.",
		}),
		ordersDelivered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_delivered_total",
			Help:      "Orders moved to Delivered and paid out.",
		}),
		paidOut: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payout_minor_units_total",
			Help:      "Money distributed on delivery, in minor currency units, by recipient.",
		}, []string{"recipient"}),
	}

	for _, c := range []prometheus.Collector{
		l.ordersPlaced, l.orderValue, l.deliveriesAccepted, l.ordersDelivered, l.paidOut,
	} {
		if err := reg.registry.Register(c); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func (l *Lifecycle) OrderPlaced(total int64) {
	l.ordersPlaced.Inc()
	l.orderValue.Add(float64(total))
}

func (l *Lifecycle) DeliveryAccepted() {
	l.deliveriesAccepted.Inc()
}

func (l *Lifecycle) OrderDelivered(payout services.Payout) {
	l.ordersDelivered.Inc()
	l.paidOut.WithLabelValues("seller").Add(float64(payout.SellerAmount))
	l.paidOut.WithLabelValues("courier").Add(float64(payout.CourierAmount))
	l.paidOut.WithLabelValues("platform").Add(float64(payout.Commission))
}

// DeliveryCounter reports how many deliveries are being simulated.
type DeliveryCounter interface {
	Count() int
}

// RegisterActiveDeliveries exposes the tracker size as a gauge read at scrape time.
func RegisterActiveDeliveries(reg *Registry, tracker DeliveryCounter) error {
	return reg.registry.Register(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_deliveries",
		Help:      "Orders out for delivery with a simulated courier position.",
	}, func() float64 {
		return float64(tracker.Count())
	}))
}
