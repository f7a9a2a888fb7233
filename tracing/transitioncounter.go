package tracing

import (
	"sync"

	"github.com/sarchlab/srlatch/latch"
	"github.com/sarchlab/srlatch/plc"
	"github.com/sarchlab/srlatch/sim/hooking"
)

// TransitionCounter counts how often each branch of the latch rule was taken.
type TransitionCounter struct {
	lock    sync.Mutex
	actions []latch.Action
	count   map[latch.Action]uint64
}

// NewTransitionCounter creates a new TransitionCounter.
func NewTransitionCounter() *TransitionCounter {
	return &TransitionCounter{
		count: make(map[latch.Action]uint64),
	}
}

// Func counts the action taken in a finished cycle.
func (t *TransitionCounter) Func(ctx hooking.HookCtx) {
	if ctx.Pos != plc.HookPosCycleEnd {
		return
	}

	record, ok := ctx.Item.(plc.CycleRecord)
	if !ok {
		return
	}

	mode, err := latch.ParseMode(record.Mode)
	if err != nil {
		return
	}

	action := mode.Classify(record.Button, record.Cycle)

	t.lock.Lock()
	defer t.lock.Unlock()

	if _, seen := t.count[action]; !seen {
		t.actions = append(t.actions, action)
	}

	t.count[action]++
}

// Actions returns the actions seen, in order of first appearance.
func (t *TransitionCounter) Actions() []latch.Action {
	t.lock.Lock()
	defer t.lock.Unlock()

	return append([]latch.Action(nil), t.actions...)
}

// Count returns how many cycles took action.
func (t *TransitionCounter) Count(action latch.Action) uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.count[action]
}
