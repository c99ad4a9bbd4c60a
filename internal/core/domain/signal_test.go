package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignal_EmitInConnectionOrder(t *testing.T) {
	var s Signal[int]
	var got []string

	s.Connect(func(v int) { got = append(got, "a") })
	s.Connect(func(v int) { got = append(got, "b") })
	s.Emit(1)

	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 2, s.Len())
}

func TestSignal_Disconnect(t *testing.T) {
	var s Signal[string]
	calls := 0

	id := s.Connect(func(string) { calls++ })
	assert.True(t, s.Disconnect(id))
	assert.False(t, s.Disconnect(id))

	s.Emit("x")
	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, s.Len())
}

func TestSignal_ConnectNil(t *testing.T) {
	var s Signal[int]
	assert.Equal(t, uint64(0), s.Connect(nil))
	assert.Equal(t, 0, s.Len())
}

func TestSignal_DisconnectDuringEmit(t *testing.T) {
	var s Signal[int]
	var second uint64
	calls := 0

	s.Connect(func(int) {
		s.Disconnect(second)
	})
	second = s.Connect(func(int) { calls++ })

	s.Emit(0)
	assert.Equal(t, 0, calls, "callback removed mid-emit must not run")
}

func TestSignal_ConnectDuringEmit(t *testing.T) {
	var s Signal[int]
	late := 0

	s.Connect(func(int) {
		s.Connect(func(int) { late++ })
	})

	s.Emit(0)
	assert.Equal(t, 0, late)

	s.Emit(0)
	assert.Equal(t, 1, late)
}

func TestSignal_Reset(t *testing.T) {
	var s Signal[int]
	s.Connect(func(int) {})
	s.Connect(func(int) {})

	s.Reset()
	assert.Equal(t, 0, s.Len())
}
