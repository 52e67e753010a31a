//go:build bipbuffer_singlethread

package bipbuffer

// index is the single-threaded specialization of the head/tail index,
// selected by building with -tags bipbuffer_singlethread. It elides all
// atomics for callers who statically know the producer and consumer run on
// the same goroutine.
type index struct {
	v uint32
}

func (i *index) loadPlain() uint32 { return i.v }

func (i *index) loadAcquire() uint32 { return i.v }

func (i *index) storeRelease(val uint32) { i.v = val }
