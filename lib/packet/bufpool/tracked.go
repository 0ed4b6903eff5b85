package bufpool

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gfx.cafe/gfx/pktio/lib/packet"
)

type borrow struct {
	id uuid.UUID
	at time.Time
}

// Tracked audits pool discipline: every borrow gets an id and a timestamp,
// double recycles and recycles of foreign windows are logged instead of
// corrupting the inner pool, and ReportLeaks names whatever never came back.
// Useful as a test double and for chasing pool starvation in dev builds.
type Tracked struct {
	inner  packet.Pool
	logger *zap.Logger

	mu       sync.Mutex
	live     map[*packet.Window]borrow
	borrows  int
	recycles int
}

func NewTracked(inner packet.Pool, logger *zap.Logger) *Tracked {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracked{
		inner:  inner,
		logger: logger,
		live:   make(map[*packet.Window]borrow),
	}
}

func (T *Tracked) Borrow() *packet.Window {
	w := T.inner.Borrow()

	T.mu.Lock()
	T.borrows++
	T.live[w] = borrow{
		id: uuid.New(),
		at: time.Now(),
	}
	T.mu.Unlock()
	return w
}

func (T *Tracked) Recycle(w *packet.Window) {
	if w == nil {
		return
	}

	T.mu.Lock()
	_, ok := T.live[w]
	if ok {
		delete(T.live, w)
		T.recycles++
	}
	T.mu.Unlock()

	if !ok {
		T.logger.Error("recycle of a window this pool never lent out")
		return
	}
	T.inner.Recycle(w)
}

// Borrows counts every Borrow since construction.
func (T *Tracked) Borrows() int {
	T.mu.Lock()
	defer T.mu.Unlock()
	return T.borrows
}

// Recycles counts every accepted Recycle since construction.
func (T *Tracked) Recycles() int {
	T.mu.Lock()
	defer T.mu.Unlock()
	return T.recycles
}

// InUse counts windows currently out on loan.
func (T *Tracked) InUse() int {
	T.mu.Lock()
	defer T.mu.Unlock()
	return len(T.live)
}

// ReportLeaks logs every outstanding borrow with its id and age and returns
// how many there were.
func (T *Tracked) ReportLeaks() int {
	T.mu.Lock()
	defer T.mu.Unlock()
	for _, b := range T.live {
		T.logger.Warn("window never recycled",
			zap.String("borrow_id", b.id.String()),
			zap.Duration("age", time.Since(b.at)),
		)
	}
	return len(T.live)
}

var _ packet.Pool = (*Tracked)(nil)
