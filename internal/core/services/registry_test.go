package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/shellit/internal/core/domain"
)

func TestServiceRegistry_Create(t *testing.T) {
	reg := NewServiceRegistry()

	svc := reg.Create("audio", nil)

	require.NotNil(t, svc)
	assert.NotEmpty(t, svc.ID)
	assert.Equal(t, "audio", svc.Name)

	got, err := reg.Get(svc.ID)
	require.NoError(t, err)
	assert.Same(t, svc, got)
}

func TestServiceRegistry_Create_UniqueIDs(t *testing.T) {
	reg := NewServiceRegistry()

	a := reg.Create("audio", nil)
	b := reg.Create("audio", nil)

	assert.NotEqual(t, a.ID, b.ID)
	assert.NotSame(t, a, b)
}

func TestServiceRegistry_Get_NotFound(t *testing.T) {
	reg := NewServiceRegistry()

	_, err := reg.Get("missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestServiceRegistry_List_CreationOrder(t *testing.T) {
	reg := NewServiceRegistry()
	a := reg.Create("audio", nil)
	b := reg.Create("battery", nil)
	c := reg.Create("network", nil)

	require.NoError(t, reg.Destroy(b.ID))

	list := reg.List()
	require.Len(t, list, 2)
	assert.Same(t, a, list[0])
	assert.Same(t, c, list[1])
}

func TestServiceRegistry_Destroy(t *testing.T) {
	reg := NewServiceRegistry()
	svc := reg.Create("audio", nil)
	ref := NewServiceRef(svc, nil)
	defer ref.Close()

	var notified []*domain.Service
	ref.OnChanged(func(s *domain.Service) { notified = append(notified, s) })

	require.NoError(t, reg.Destroy(svc.ID))

	assert.True(t, svc.IsDestroyed())
	assert.Nil(t, ref.Service())
	assert.Equal(t, []*domain.Service{nil}, notified)

	_, err := reg.Get(svc.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, reg.Destroy(svc.ID), domain.ErrNotFound)
}

func TestServiceRegistry_DestroyAll(t *testing.T) {
	reg := NewServiceRegistry()
	a := reg.Create("audio", nil)
	b := reg.Create("battery", nil)

	var order []string
	a.Destroyed().Connect(func(s *domain.Service) { order = append(order, s.Name) })
	b.Destroyed().Connect(func(s *domain.Service) { order = append(order, s.Name) })

	reg.DestroyAll()

	assert.Empty(t, reg.List())
	assert.Equal(t, []string{"battery", "audio"}, order)
}
