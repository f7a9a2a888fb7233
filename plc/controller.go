package plc

import (
	"fmt"
	"io"
	"sync"

	"github.com/sarchlab/srlatch/latch"
	"github.com/sarchlab/srlatch/sim/hooking"
	"github.com/sarchlab/srlatch/sim/timing"
)

// HookPosCycleEnd is triggered after every cycle with a CycleRecord as item.
var HookPosCycleEnd = &hooking.HookPos{Name: "CycleEnd"}

// Messages printed by the controller.
const (
	InvalidInputMsg = "Entrada no válida. Se asigna 0."
	manualBanner    = "\n=== MODO MANUAL === (Ingresa 0 o 1)\n"
	memoryBanner    = "\n=== MODO MEMORIA === (SR mantiene estado hasta reset)\n"
)

// CycleRecord describes one finished cycle.
type CycleRecord struct {
	Cycle   int
	Mode    string
	Raw     int
	Button  int
	SR      int
	Coerced bool
	Time    float64
}

// Controller is the PLC running the latch program. It performs exactly
// latch.NumCycles cycles, one per tick.
type Controller struct {
	*timing.TickingComponent
	hooking.HookableBase

	mode   latch.Mode
	button Button
	out    io.Writer

	lock    sync.RWMutex
	cycle   int
	sr      int
	history []latch.State
}

// Start prints the mode banner and schedules the first cycle.
func (c *Controller) Start() {
	switch c.mode {
	case latch.ModeManual:
		fmt.Fprint(c.out, manualBanner)
	case latch.ModeMemory:
		fmt.Fprint(c.out, memoryBanner)
	}

	c.TickLater()
}

// Tick runs one cycle. It reports false once all cycles are done.
func (c *Controller) Tick() bool {
	if c.Done() {
		return false
	}

	record := c.runCycle()

	c.InvokeHook(hooking.HookCtx{
		Domain: c,
		Pos:    HookPosCycleEnd,
		Item:   record,
	})

	return !c.Done()
}

func (c *Controller) runCycle() CycleRecord {
	raw, err := c.button.Read(c.Cycle())

	c.lock.Lock()
	defer c.lock.Unlock()

	button, ok := latch.ValidateButton(raw)
	if err != nil {
		button, ok = latch.Off, false
	}

	if !ok {
		fmt.Fprintln(c.out, InvalidInputMsg)
	}

	c.sr = c.mode.Step(button, c.cycle, c.sr)
	c.history = append(c.history, latch.State{Button: button, SR: c.sr})

	fmt.Fprintf(c.out, "Iteración %2d: Pulsador = %d, SR = %d\n",
		c.cycle, button, c.sr)

	record := CycleRecord{
		Cycle:   c.cycle,
		Mode:    c.mode.String(),
		Raw:     raw,
		Button:  button,
		SR:      c.sr,
		Coerced: !ok,
		Time:    float64(c.Now()),
	}

	c.cycle++

	return record
}

// Mode returns the mode the controller runs.
func (c *Controller) Mode() latch.Mode {
	return c.mode
}

// Cycle returns the number of cycles completed.
func (c *Controller) Cycle() int {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return c.cycle
}

// SR returns the current latch output.
func (c *Controller) SR() int {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return c.sr
}

// Done tells if all cycles have run.
func (c *Controller) Done() bool {
	return c.Cycle() >= latch.NumCycles
}

// History returns a copy of the states produced so far.
func (c *Controller) History() []latch.State {
	c.lock.RLock()
	defer c.lock.RUnlock()

	h := make([]latch.State, len(c.history))
	copy(h, c.history)

	return h
}
