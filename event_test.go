package activeobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignalWidth_Valid(t *testing.T) {
	assert.True(t, SignalWidth1.Valid())
	assert.True(t, SignalWidth2.Valid())
	assert.True(t, SignalWidth4.Valid())
	assert.False(t, SignalWidth(3).Valid())
	assert.False(t, SignalWidth(0).Valid())
}

func TestNewStaticEvent_NeverReferenceCounted(t *testing.T) {
	e := NewStaticEvent(42, "hello")
	assert.Equal(t, uint32(42), e.Signal)
	assert.Equal(t, uint8(0), e.PoolID)
	assert.Equal(t, "hello", e.Payload)
}

func TestNewDynamicPool_RejectsInvalidWidth(t *testing.T) {
	_, err := NewDynamicPool(1, SignalWidth(7), nil)
	assert.ErrorIs(t, err, ErrInvalidSignalWidth)
}

func TestNewDynamicPool_RejectsZeroID(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = NewDynamicPool(0, SignalWidth4, nil)
	})
}

func TestDynamicPool_GetResetsRefCtrAndSignal(t *testing.T) {
	p, err := NewDynamicPool(5, SignalWidth4, func() any { return 0 })
	require.NoError(t, err)

	e := p.Get(9)
	assert.Equal(t, uint32(9), e.Signal)
	assert.Equal(t, uint8(5), e.PoolID)
	assert.Equal(t, uint32(0), e.RefCtr.Load())
	assert.Equal(t, SignalWidth4, p.Width())
}

func TestDynamicPool_IncRefDecRefGC(t *testing.T) {
	p, err := NewDynamicPool(5, SignalWidth1, nil)
	require.NoError(t, err)

	e := p.Get(1)
	p.IncRef(e)
	p.IncRef(e)
	assert.Equal(t, uint32(2), e.RefCtr.Load())

	p.DecRef(e)
	assert.Equal(t, uint32(1), e.RefCtr.Load())

	p.GC(e)
	assert.Equal(t, uint32(0), e.RefCtr.Load())
}

func TestDynamicPool_GCRecyclesAndReusesStorage(t *testing.T) {
	type payload struct{ n int }
	p, err := NewDynamicPool(9, SignalWidth2, func() any { return &payload{} })
	require.NoError(t, err)

	e1 := p.Get(1)
	e1.Payload.(*payload).n = 77
	p.GC(e1) // RefCtr already 0: never enqueued, recycled immediately.

	e2 := p.Get(2)
	assert.Same(t, e1, e2, "sync.Pool should hand back the recycled event")
	assert.Equal(t, 77, e2.Payload.(*payload).n)
}

func TestDynamicPool_GCIgnoresStaticEvents(t *testing.T) {
	p, err := NewDynamicPool(1, SignalWidth1, nil)
	require.NoError(t, err)

	e := NewStaticEvent(1, nil)
	assert.NotPanics(t, func() { p.GC(e) })
	assert.Equal(t, uint32(0), e.RefCtr.Load())
}
