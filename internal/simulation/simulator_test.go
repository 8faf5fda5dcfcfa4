package simulation_test

import (
	"sync"
	"testing"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/core/ports"
	"oja/internal/pkg/errs"
	"oja/internal/simulation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.DeliveryTracker = (*simulation.PositionSimulator)(nil)

var (
	pickup  = kernel.MustGeoPoint(6.50, 3.30)
	dropoff = kernel.MustGeoPoint(6.60, 3.40)
)

func TestNewPositionSimulator(t *testing.T) {
	for _, step := range []float64{0, -0.1, 1.5} {
		_, err := simulation.NewPositionSimulator(step)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, "step %v", step)
	}

	s, err := simulation.NewPositionSimulator(1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s.Step(), 1e-12)

	assert.InDelta(t, simulation.DefaultStep, simulation.NewDefaultPositionSimulator().Step(), 1e-12)
}

func TestPositionSimulator_TrackStartsAtPickup(t *testing.T) {
	s := simulation.NewDefaultPositionSimulator()
	id := kernel.NewUUID()

	s.Track(id, pickup, dropoff)

	pos, ok := s.Position(id)
	require.True(t, ok)
	assert.True(t, pickup.IsEqual(pos))
	assert.Equal(t, 1, s.Count())
}

func TestPositionSimulator_AdvanceInterpolatesLinearly(t *testing.T) {
	s := simulation.NewDefaultPositionSimulator()
	id := kernel.NewUUID()
	s.Track(id, pickup, dropoff)

	for range 25 {
		s.Advance()
	}

	progress, ok := s.Progress(id)
	require.True(t, ok)
	assert.InDelta(t, 0.5, progress, 1e-9)

	pos, ok := s.Position(id)
	require.True(t, ok)
	assert.InDelta(t, 6.55, pos.Lat(), 1e-9)
	assert.InDelta(t, 3.35, pos.Lng(), 1e-9)
}

func TestPositionSimulator_ProgressClampsAtDropoff(t *testing.T) {
	s := simulation.NewDefaultPositionSimulator()
	id := kernel.NewUUID()
	s.Track(id, pickup, dropoff)

	for range 60 {
		s.Advance()
	}

	progress, _ := s.Progress(id)
	assert.InDelta(t, 1.0, progress, 1e-12)

	pos, _ := s.Position(id)
	assert.InDelta(t, dropoff.Lat(), pos.Lat(), 1e-9)
	assert.InDelta(t, dropoff.Lng(), pos.Lng(), 1e-9)
}

func TestPositionSimulator_TrackTwiceKeepsProgress(t *testing.T) {
	s := simulation.NewDefaultPositionSimulator()
	id := kernel.NewUUID()
	s.Track(id, pickup, dropoff)
	s.Advance()

	s.Track(id, dropoff, pickup)

	progress, _ := s.Progress(id)
	assert.InDelta(t, 0.02, progress, 1e-12)
	pos, _ := s.Position(id)
	assert.Greater(t, pos.Lat(), pickup.Lat(), "route must not be replaced")
}

func TestPositionSimulator_Untrack(t *testing.T) {
	s := simulation.NewDefaultPositionSimulator()
	first, second := kernel.NewUUID(), kernel.NewUUID()
	s.Track(first, pickup, dropoff)
	s.Track(second, pickup, dropoff)

	s.Untrack(first)
	s.Untrack(kernel.NewUUID())

	_, ok := s.Position(first)
	assert.False(t, ok)
	_, ok = s.Progress(first)
	assert.False(t, ok)

	tracked := s.Tracked()
	require.Len(t, tracked, 1)
	assert.True(t, second.IsEqual(tracked[0]))
}

func TestPositionSimulator_DeliveriesAreIndependent(t *testing.T) {
	s := simulation.NewDefaultPositionSimulator()
	early, late := kernel.NewUUID(), kernel.NewUUID()
	s.Track(early, pickup, dropoff)
	s.Advance()
	s.Advance()
	s.Track(late, pickup, dropoff)
	s.Advance()

	earlyProgress, _ := s.Progress(early)
	lateProgress, _ := s.Progress(late)
	assert.InDelta(t, 0.06, earlyProgress, 1e-12)
	assert.InDelta(t, 0.02, lateProgress, 1e-12)
}

func TestPositionSimulator_ConcurrentUse(t *testing.T) {
	s := simulation.NewDefaultPositionSimulator()
	ids := make([]kernel.UUID, 20)
	for i := range ids {
		ids[i] = kernel.NewUUID()
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(2)
		go func(id kernel.UUID) {
			defer wg.Done()
			s.Track(id, pickup, dropoff)
			_, _ = s.Position(id)
		}(id)
		go func() {
			defer wg.Done()
			s.Advance()
			_ = s.Tracked()
		}()
	}
	wg.Wait()

	assert.Equal(t, len(ids), s.Count())
	for _, id := range ids {
		progress, ok := s.Progress(id)
		require.True(t, ok)
		assert.LessOrEqual(t, progress, 1.0)
	}
}
