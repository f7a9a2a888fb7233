package tracing

import (
	"github.com/sarchlab/srlatch/datarecording"
	"github.com/sarchlab/srlatch/plc"
	"github.com/sarchlab/srlatch/sim/hooking"
)

// CycleTableName is the table the DBTracer writes to.
const CycleTableName = "cycles"

// DBTracer is a hook that stores cycle records through a DataRecorder.
type DBTracer struct {
	backend datarecording.DataRecorder
}

// NewDBTracer creates the cycle table in backend and returns the tracer.
func NewDBTracer(backend datarecording.DataRecorder) *DBTracer {
	backend.CreateTable(CycleTableName, plc.CycleRecord{})

	return &DBTracer{backend: backend}
}

// Func records a finished cycle.
func (t *DBTracer) Func(ctx hooking.HookCtx) {
	if ctx.Pos != plc.HookPosCycleEnd {
		return
	}

	record, ok := ctx.Item.(plc.CycleRecord)
	if !ok {
		return
	}

	t.backend.InsertData(CycleTableName, record)
}
