package bufpool

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"gfx.cafe/gfx/pktio/lib/instrumentation/prom"
	"gfx.cafe/gfx/pktio/lib/packet"
)

func TestFixed_Reuse(t *testing.T) {
	pool := NewFixed(8)

	w := pool.Borrow()
	if w.Capacity() != 8 || w.Remaining() != 0 {
		t.Error("expected a fresh writable window")
	}
	w.WriteBytes([]byte("junk"))
	pool.Recycle(w)
	if pool.Free() != 1 {
		t.Error("expected 1 parked window, got", pool.Free())
	}

	w2 := pool.Borrow()
	if w2 != w {
		t.Error("expected to get the same window back")
	}
	if w2.Remaining() != 0 || w2.Room() != 8 {
		t.Error("recycled window must come back reset")
	}
}

func TestFixed_RecycleNil(t *testing.T) {
	pool := NewFixed(8)
	pool.Recycle(nil)
	if pool.Free() != 0 {
		t.Error("nil must not be parked")
	}
}

func TestLocked(t *testing.T) {
	pool := NewLocked(NewFixed(16))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				w := pool.Borrow()
				w.WriteBytes([]byte{1, 2, 3})
				reader := packet.NewReader(pool, w)
				reader.Skip(3)
			}
		}()
	}
	wg.Wait()
}

func TestElastic(t *testing.T) {
	pool := NewElastic(32)

	w := pool.Borrow()
	if w.Capacity() != 32 || w.Remaining() != 0 {
		t.Error("expected a fresh writable window of the pool capacity")
	}
	w.WriteBytes([]byte("data"))
	reader := packet.NewReader(pool, w)
	text, err := reader.Text()
	if err != nil || text != "data" {
		t.Error("got", text, err)
	}

	pool.Recycle(nil)
	// recycling a foreign window must not blow up
	pool.Recycle(packet.NewWindow(32))
}

func TestTracked(t *testing.T) {
	pool := NewTracked(NewFixed(16), nil)

	a := pool.Borrow()
	b := pool.Borrow()
	if pool.Borrows() != 2 || pool.InUse() != 2 {
		t.Error("got", pool.Borrows(), pool.InUse())
	}

	pool.Recycle(a)
	if pool.Recycles() != 1 || pool.InUse() != 1 {
		t.Error("got", pool.Recycles(), pool.InUse())
	}

	// double recycle is rejected, not double counted
	pool.Recycle(a)
	if pool.Recycles() != 1 {
		t.Error("double recycle must not count, got", pool.Recycles())
	}

	if leaked := pool.ReportLeaks(); leaked != 1 {
		t.Error("expected 1 leak, got", leaked)
	}
	pool.Recycle(b)
	if leaked := pool.ReportLeaks(); leaked != 0 {
		t.Error("expected no leaks, got", leaked)
	}
}

func TestTracked_AutoRecycleOnDrain(t *testing.T) {
	pool := NewTracked(NewFixed(16), nil)

	w := pool.Borrow()
	w.WriteBytes([]byte{1, 2, 3})
	reader := packet.NewReader(pool, w)
	if v, err := reader.Uint8(); err != nil || v != 1 {
		t.Error("got", v, err)
	}
	if pool.InUse() != 1 {
		t.Error("window must still be on loan mid-read")
	}
	reader.Skip(2)
	if pool.InUse() != 0 {
		t.Error("draining the reader must recycle the window")
	}
}

func TestMetered(t *testing.T) {
	pool := NewMetered(NewFixed(8), "test")

	w := pool.Borrow()
	w.WriteBytes([]byte{9})
	reader := packet.NewReader(pool, w)
	if v, err := reader.Uint8(); err != nil || v != 9 {
		t.Error("got", v, err)
	}
}

func TestMetered_RecycleNil(t *testing.T) {
	pool := NewMetered(NewFixed(8), "test-nil")
	labels := prom.BufPoolLabels{Pool: "test-nil"}

	w := pool.Borrow()
	if v := testutil.ToFloat64(prom.BufPool.InUse(labels)); v != 1 {
		t.Error("expected 1 in use, got", v)
	}

	pool.Recycle(nil)
	if v := testutil.ToFloat64(prom.BufPool.InUse(labels)); v != 1 {
		t.Error("nil recycle must not move the gauge, got", v)
	}
	if v := testutil.ToFloat64(prom.BufPool.Recycles(labels)); v != 0 {
		t.Error("nil recycle must not count, got", v)
	}

	pool.Recycle(w)
	if v := testutil.ToFloat64(prom.BufPool.InUse(labels)); v != 0 {
		t.Error("expected 0 in use, got", v)
	}
	if v := testutil.ToFloat64(prom.BufPool.Recycles(labels)); v != 1 {
		t.Error("expected 1 recycle, got", v)
	}
}
