// Package simulation moves couriers along a straight line from the store to the buyer.
//
// Progress is a fraction in [0, 1]. Each Advance adds the configured step to every
// tracked delivery; the reported position is the linear interpolation between pickup
// and drop-off at the current progress.
package simulation

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/pkg/errs"
)

// DefaultStep is the progress added per tick: 50 ticks from pickup to drop-off.
const DefaultStep = 0.02

var ErrStepIsOutOfRange = errors.New("step must be in (0, 1]")

type delivery struct {
	pickup   kernel.GeoPoint
	dropoff  kernel.GeoPoint
	progress float64
}

// PositionSimulator keeps the simulated deliveries in memory. It is safe for concurrent use.
type PositionSimulator struct {
	mu         sync.RWMutex
	step       float64
	deliveries map[string]*delivery
	ids        map[string]kernel.UUID
}

func NewPositionSimulator(step float64) (*PositionSimulator, error) {
	if !(step > 0 && step <= 1) {
		return nil, errs.NewValueIsOutOfRangeErrorWithCause("step", step, 0, 1, ErrStepIsOutOfRange)
	}
	return &PositionSimulator{
		step:       step,
		deliveries: make(map[string]*delivery),
		ids:        make(map[string]kernel.UUID),
	}, nil
}

// NewDefaultPositionSimulator uses DefaultStep.
func NewDefaultPositionSimulator() *PositionSimulator {
	s, err := NewPositionSimulator(DefaultStep)
	if err != nil {
		panic(fmt.Sprintf("default simulator: %v", err))
	}
	return s
}

func (s *PositionSimulator) Step() float64 {
	return s.step
}

// Track registers a delivery at progress 0. Tracking an order again keeps its progress.
func (s *PositionSimulator) Track(orderID kernel.UUID, pickup, dropoff kernel.GeoPoint) {
	key := orderID.String()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.deliveries[key]; ok {
		return
	}
	s.deliveries[key] = &delivery{pickup: pickup, dropoff: dropoff}
	s.ids[key] = orderID
}

func (s *PositionSimulator) Untrack(orderID kernel.UUID) {
	key := orderID.String()

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.deliveries, key)
	delete(s.ids, key)
}

// Position interpolates the courier position of a tracked order.
func (s *PositionSimulator) Position(orderID kernel.UUID) (kernel.GeoPoint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.deliveries[orderID.String()]
	if !ok {
		return kernel.GeoPoint{}, false
	}
	return d.pickup.Interpolate(d.dropoff, d.progress), true
}

// Progress returns the fraction of the route covered so far.
func (s *PositionSimulator) Progress(orderID kernel.UUID) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.deliveries[orderID.String()]
	if !ok {
		return 0, false
	}
	return d.progress, true
}

// Tracked returns the tracked order ids sorted by their string form.
func (s *PositionSimulator) Tracked() []kernel.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.ids))
	for key := range s.ids {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := make([]kernel.UUID, 0, len(keys))
	for _, key := range keys {
		result = append(result, s.ids[key])
	}
	return result
}

// Count returns how many deliveries are tracked.
func (s *PositionSimulator) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.deliveries)
}

// Advance moves every delivery one step. Progress never exceeds 1.
func (s *PositionSimulator) Advance() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.deliveries {
		d.progress = kernel.ClampProgress(d.progress + s.step)
	}
}
