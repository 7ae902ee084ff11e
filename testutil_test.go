package activeobject

import "sync/atomic"

// fakePool is a minimal [EventPool] that counts IncRef/DecRef/GC calls and
// records every event it ever recycled, for assertions on refctr balance
// across the test suite.
type fakePool struct {
	incRefs  atomic.Int64
	decRefs  atomic.Int64
	recycled []*Event
}

func (p *fakePool) IncRef(e *Event) {
	if e.PoolID == 0 {
		return
	}
	p.incRefs.Add(1)
	e.RefCtr.Add(1)
}

func (p *fakePool) DecRef(e *Event) {
	if e.PoolID == 0 {
		return
	}
	p.decRefs.Add(1)
	e.RefCtr.Add(^uint32(0))
}

func (p *fakePool) GC(e *Event) {
	if e == nil || e.PoolID == 0 {
		return
	}
	for {
		old := e.RefCtr.Load()
		if old == 0 {
			p.decRefs.Add(1)
			p.recycled = append(p.recycled, e)
			return
		}
		if e.RefCtr.CompareAndSwap(old, old-1) {
			p.decRefs.Add(1)
			if old == 1 {
				p.recycled = append(p.recycled, e)
			}
			return
		}
	}
}

func dynamicEvent(poolID uint8, sig uint32) *Event {
	return &Event{Signal: sig, PoolID: poolID}
}
