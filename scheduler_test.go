package activeobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunOneReturnsFalseWhenIdle(t *testing.T) {
	fw, err := NewFramework(8)
	require.NoError(t, err)
	assert.False(t, fw.Scheduler().RunOne())
}

func TestScheduler_DispatchesHighestPriorityFirst(t *testing.T) {
	fw, err := NewFramework(8)
	require.NoError(t, err)

	var order []uint8
	lowHandler := DispatcherFunc(func(e *Event) { order = append(order, 1) })
	highHandler := DispatcherFunc(func(e *Event) { order = append(order, 5) })

	low := fw.Start(1, 4, lowHandler, &DynamicPool{})
	high := fw.Start(5, 4, highHandler, &DynamicPool{})

	require.True(t, low.Post(NewStaticEvent(1, nil), 0, "test"))
	require.True(t, high.Post(NewStaticEvent(1, nil), 0, "test"))

	assert.True(t, fw.Scheduler().RunOne())
	assert.True(t, fw.Scheduler().RunOne())
	assert.False(t, fw.Scheduler().RunOne())

	assert.Equal(t, []uint8{5, 1}, order, "the higher-priority AO must run to completion first")
}

func TestScheduler_RunDrainsAllReadyQueues(t *testing.T) {
	fw, err := NewFramework(8)
	require.NoError(t, err)

	var n int
	ao := fw.Start(3, 8, DispatcherFunc(func(e *Event) { n++ }), &DynamicPool{})

	for i := 0; i < 5; i++ {
		require.True(t, ao.Post(NewStaticEvent(uint32(i), nil), 0, "test"))
	}

	fw.Scheduler().Run()
	assert.Equal(t, 5, n)
	assert.False(t, fw.Scheduler().RunOne())
}

func TestScheduler_IdleRegisteredPriorityNeverReady(t *testing.T) {
	fw, err := NewFramework(8)
	require.NoError(t, err)
	fw.Start(2, 4, DispatcherFunc(func(e *Event) {}), &DynamicPool{})
	// No events posted to priority 2: RunOne must return false, not panic.
	assert.False(t, fw.Scheduler().RunOne())
}
