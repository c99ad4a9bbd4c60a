package services

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/shellit/internal/core/domain"
)

// changeRecorder collects every notification a ServiceRef emits.
type changeRecorder struct {
	values []*domain.Service
}

func (c *changeRecorder) record(s *domain.Service) {
	c.values = append(c.values, s)
}

func (c *changeRecorder) count() int {
	return len(c.values)
}

func newRecordedRef(t *testing.T, initial *domain.Service) (*ServiceRef, *changeRecorder) {
	t.Helper()
	ref := NewServiceRef(initial, nil)
	rec := &changeRecorder{}
	ref.OnChanged(rec.record)
	t.Cleanup(func() { _ = ref.Close() })
	return ref, rec
}

type countingRunner struct {
	starts int
	stops  int
}

func (r *countingRunner) Start() { r.starts++ }
func (r *countingRunner) Stop()  { r.stops++ }

func TestNewServiceRef(t *testing.T) {
	t.Run("defaults to empty", func(t *testing.T) {
		ref, rec := newRecordedRef(t, nil)
		assert.Nil(t, ref.Service())
		assert.Equal(t, 0, rec.count())
	})

	t.Run("initial service is held without notification", func(t *testing.T) {
		s1 := domain.NewService("s1", "audio", nil)
		ref, rec := newRecordedRef(t, s1)

		assert.Same(t, s1, ref.Service())
		assert.Equal(t, 0, rec.count())
		assert.Equal(t, 1, s1.Consumers())
	})

	t.Run("destroyed initial service is stored as empty", func(t *testing.T) {
		s1 := domain.NewService("s1", "audio", nil)
		s1.Destroy()

		ref, _ := newRecordedRef(t, s1)
		assert.Nil(t, ref.Service())
	})
}

func TestServiceRef_ReturnsMostRecentlySet(t *testing.T) {
	services := []*domain.Service{
		domain.NewService("a", "a", nil),
		domain.NewService("b", "b", nil),
		nil,
		domain.NewService("c", "c", nil),
	}
	ref, rec := newRecordedRef(t, nil)

	for _, s := range services {
		ref.SetService(s)
		assert.Same(t, s, ref.Service())
	}
	assert.Equal(t, len(services), rec.count())
}

func TestServiceRef_SetSameIsIdempotent(t *testing.T) {
	s1 := domain.NewService("s1", "audio", nil)
	ref, rec := newRecordedRef(t, s1)

	ref.SetService(s1)
	ref.SetService(s1)

	assert.Equal(t, 0, rec.count())
	assert.Equal(t, 1, s1.Consumers())
}

func TestServiceRef_SetNilOnEmptyIsIdempotent(t *testing.T) {
	ref, rec := newRecordedRef(t, nil)

	ref.SetService(nil)

	assert.Equal(t, 0, rec.count())
	assert.Nil(t, ref.Service())
}

func TestServiceRef_NotifiesWithNewValue(t *testing.T) {
	s1 := domain.NewService("s1", "audio", nil)
	s2 := domain.NewService("s2", "network", nil)
	ref, rec := newRecordedRef(t, s1)

	ref.SetService(s2)
	ref.SetService(nil)

	require.Equal(t, 2, rec.count())
	assert.Same(t, s2, rec.values[0])
	assert.Nil(t, rec.values[1])
}

func TestServiceRef_NotificationSeesUpdatedValue(t *testing.T) {
	s1 := domain.NewService("s1", "audio", nil)
	ref := NewServiceRef(nil, nil)
	var seen *domain.Service
	ref.OnChanged(func(*domain.Service) { seen = ref.Service() })

	ref.SetService(s1)

	assert.Same(t, s1, seen)
}

func TestServiceRef_DestroyClearsAndNotifiesOnce(t *testing.T) {
	s1 := domain.NewService("s1", "audio", nil)
	ref, rec := newRecordedRef(t, s1)

	s1.Destroy()

	assert.Nil(t, ref.Service())
	require.Equal(t, 1, rec.count())
	assert.Nil(t, rec.values[0])

	s1.Destroy()
	assert.Equal(t, 1, rec.count())
}

func TestServiceRef_DestroyingFormerServiceDoesNotNotify(t *testing.T) {
	s1 := domain.NewService("s1", "audio", nil)
	s2 := domain.NewService("s2", "network", nil)
	ref, rec := newRecordedRef(t, s1)

	ref.SetService(s2)
	s1.Destroy()

	assert.Equal(t, 1, rec.count())
	assert.Same(t, s2, ref.Service())
	assert.Equal(t, 0, s1.Destroyed().Len())
}

func TestServiceRef_Scenario(t *testing.T) {
	s1 := domain.NewService("s1", "audio", nil)
	s2 := domain.NewService("s2", "network", nil)
	ref, rec := newRecordedRef(t, s1)

	assert.Same(t, s1, ref.Service())

	ref.SetService(s2)
	assert.Equal(t, 1, rec.count())
	assert.Same(t, s2, ref.Service())

	s2.Destroy()
	assert.Equal(t, 2, rec.count())
	assert.Nil(t, ref.Service())

	ref.SetService(nil)
	assert.Equal(t, 2, rec.count())
}

func TestServiceRef_SetDestroyedService(t *testing.T) {
	s1 := domain.NewService("s1", "audio", nil)
	dead := domain.NewService("dead", "gone", nil)
	dead.Destroy()

	t.Run("on empty ref is a no-op", func(t *testing.T) {
		ref, rec := newRecordedRef(t, nil)
		ref.SetService(dead)
		assert.Nil(t, ref.Service())
		assert.Equal(t, 0, rec.count())
	})

	t.Run("on held ref clears it", func(t *testing.T) {
		ref, rec := newRecordedRef(t, s1)
		ref.SetService(dead)
		assert.Nil(t, ref.Service())
		assert.Equal(t, 1, rec.count())
	})
}

func TestServiceRef_MultipleRefsToSameService(t *testing.T) {
	s1 := domain.NewService("s1", "audio", nil)
	refA, recA := newRecordedRef(t, s1)
	refB, recB := newRecordedRef(t, s1)

	assert.Equal(t, 2, s1.Consumers())

	s1.Destroy()

	assert.Nil(t, refA.Service())
	assert.Nil(t, refB.Service())
	assert.Equal(t, 1, recA.count())
	assert.Equal(t, 1, recB.count())
}

func TestServiceRef_TracksConsumers(t *testing.T) {
	runner := &countingRunner{}
	s1 := domain.NewService("s1", "audio", runner)
	s2 := domain.NewService("s2", "network", nil)

	ref := NewServiceRef(s1, nil)
	assert.True(t, s1.Running())
	assert.Equal(t, 1, runner.starts)

	ref.SetService(s2)
	assert.False(t, s1.Running())
	assert.Equal(t, 1, runner.stops)
	assert.True(t, s2.Running())

	require.NoError(t, ref.Close())
	assert.False(t, s2.Running())
	assert.False(t, s2.IsDestroyed(), "closing a ref never destroys the service")
}

func TestServiceRef_OnChangedDisconnect(t *testing.T) {
	ref := NewServiceRef(nil, nil)
	calls := 0
	disconnect := ref.OnChanged(func(*domain.Service) { calls++ })

	ref.SetService(domain.NewService("s1", "audio", nil))
	disconnect()
	ref.SetService(nil)

	assert.Equal(t, 1, calls)
}

func TestServiceRef_Close(t *testing.T) {
	s1 := domain.NewService("s1", "audio", nil)
	ref, rec := newRecordedRef(t, s1)

	require.NoError(t, ref.Close())
	require.NoError(t, ref.Close())

	assert.Nil(t, ref.Service())
	assert.Equal(t, 0, rec.count(), "closing does not notify")
	assert.Equal(t, 0, s1.Consumers())
	assert.Equal(t, 0, s1.Destroyed().Len())

	ref.SetService(domain.NewService("s2", "network", nil))
	assert.Nil(t, ref.Service(), "closed ref ignores SetService")

	s1.Destroy()
	assert.Equal(t, 0, rec.count())
}

func TestServiceRef_ClosedWithParentScope(t *testing.T) {
	s1 := domain.NewService("s1", "audio", nil)
	scope := NewScope()
	ref := NewServiceRef(s1, scope)

	require.NoError(t, scope.Close())

	assert.Nil(t, ref.Service())
	assert.Equal(t, 0, s1.Consumers())
	assert.False(t, s1.IsDestroyed())
}

func TestServiceRef_ReentrantSetFromObserver(t *testing.T) {
	s1 := domain.NewService("s1", "audio", nil)
	fallback := domain.NewService("fallback", "fallback", nil)
	ref := NewServiceRef(s1, nil)
	var seen []*domain.Service

	ref.OnChanged(func(s *domain.Service) {
		seen = append(seen, s)
		if s == nil {
			ref.SetService(fallback)
		}
	})

	s1.Destroy()

	assert.Same(t, fallback, ref.Service())
	require.Len(t, seen, 2)
	assert.Nil(t, seen[0])
	assert.Same(t, fallback, seen[1])
}

func TestServiceRef_DoesNotKeepServiceAlive(t *testing.T) {
	ref := NewServiceRef(nil, nil)
	func() {
		ref.SetService(domain.NewService("tmp", "tmp", nil))
	}()

	runtime.GC()

	assert.Nil(t, ref.Service())
}
