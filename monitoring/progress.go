package monitoring

import (
	"sync"
	"time"

	"github.com/sarchlab/srlatch/plc"
	"github.com/sarchlab/srlatch/sim/hooking"
)

// A ProgressBar is a tracker of the progress
type ProgressBar struct {
	sync.Mutex
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartTime time.Time `json:"start_time"`
	Total     uint64    `json:"total"`
	Finished  uint64    `json:"finished"`
}

// IncrementFinished add a certain amount to finished element.
func (b *ProgressBar) IncrementFinished(amount uint64) {
	b.Lock()
	defer b.Unlock()

	b.Finished += amount
}

// Done tells if every element has finished.
func (b *ProgressBar) Done() bool {
	b.Lock()
	defer b.Unlock()

	return b.Finished >= b.Total
}

// Func counts one finished element for every completed latch cycle.
func (b *ProgressBar) Func(ctx hooking.HookCtx) {
	if ctx.Pos != plc.HookPosCycleEnd {
		return
	}

	b.IncrementFinished(1)
}
