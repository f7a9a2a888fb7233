// Package tracing provides hooks that keep a record of every latch cycle.
package tracing

import (
	"fmt"
	"os"
	"sync"

	"github.com/tebeka/atexit"

	"github.com/sarchlab/srlatch/plc"
	"github.com/sarchlab/srlatch/sim/hooking"
)

// CSVTracer is a hook that stores cycle records into a CSV file.
type CSVTracer struct {
	lock sync.Mutex
	path string
	file *os.File

	records    []plc.CycleRecord
	bufferSize int
}

// NewCSVTracer creates a new CSVTracer.
func NewCSVTracer(path string) *CSVTracer {
	return &CSVTracer{
		path:       path,
		bufferSize: 1000,
	}
}

// Init creates the csv file. If the file already exists, it will be
// overwritten.
func (t *CSVTracer) Init() {
	file, err := os.Create(t.path)
	if err != nil {
		panic(err)
	}

	t.file = file

	fmt.Fprintf(file, "Cycle, Mode, Raw, Button, SR, Coerced, Time\n")

	atexit.Register(func() {
		err := t.Close()
		if err != nil {
			panic(err)
		}
	})
}

// Func buffers the record of a finished cycle.
func (t *CSVTracer) Func(ctx hooking.HookCtx) {
	if ctx.Pos != plc.HookPosCycleEnd {
		return
	}

	record, ok := ctx.Item.(plc.CycleRecord)
	if !ok {
		return
	}

	t.lock.Lock()
	defer t.lock.Unlock()

	t.records = append(t.records, record)
	if len(t.records) >= t.bufferSize {
		t.flush()
	}
}

// Flush writes the buffered records to the file.
func (t *CSVTracer) Flush() {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.flush()
}

func (t *CSVTracer) flush() {
	if t.file == nil {
		return
	}

	for _, r := range t.records {
		fmt.Fprintf(t.file, "%d, %s, %d, %d, %d, %t, %.10f\n",
			r.Cycle,
			r.Mode,
			r.Raw,
			r.Button,
			r.SR,
			r.Coerced,
			r.Time,
		)
	}

	t.records = nil
}

// Close flushes and closes the file. Closing twice is a no-op.
func (t *CSVTracer) Close() error {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.file == nil {
		return nil
	}

	t.flush()

	err := t.file.Close()
	t.file = nil

	return err
}
