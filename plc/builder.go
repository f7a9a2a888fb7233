package plc

import (
	"io"
	"os"

	"github.com/sarchlab/srlatch/latch"
	"github.com/sarchlab/srlatch/sim/naming"
	"github.com/sarchlab/srlatch/sim/timing"
)

// Builder can build Controllers.
type Builder struct {
	engine timing.Engine
	freq   timing.Freq
	mode   latch.Mode
	button Button
	out    io.Writer
}

// MakeBuilder creates a builder with a 1 Hz clock, manual mode and standard
// output.
func MakeBuilder() Builder {
	return Builder{
		freq: 1 * timing.Hz,
		mode: latch.ModeManual,
		out:  os.Stdout,
	}
}

// WithEngine sets the engine that drives the controller.
func (b Builder) WithEngine(engine timing.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the cycle frequency.
func (b Builder) WithFreq(freq timing.Freq) Builder {
	b.freq = freq
	return b
}

// WithMode sets the latch mode.
func (b Builder) WithMode(mode latch.Mode) Builder {
	b.mode = mode
	return b
}

// WithButton sets where button readings come from.
func (b Builder) WithButton(button Button) Builder {
	b.button = button
	return b
}

// WithOutput sets where cycle lines are printed.
func (b Builder) WithOutput(out io.Writer) Builder {
	b.out = out
	return b
}

func (b Builder) parametersMustBeValid() {
	if b.engine == nil {
		panic("engine is not set")
	}

	if b.button == nil {
		panic("button is not set")
	}

	if !b.mode.IsValid() {
		panic("invalid mode " + b.mode.String())
	}
}

// Build creates a Controller with the given name.
func (b Builder) Build(name string) *Controller {
	b.parametersMustBeValid()
	naming.NameMustBeValid(name)

	c := &Controller{
		mode:   b.mode,
		button: b.button,
		out:    b.out,
	}
	c.TickingComponent = timing.NewTickingComponent(name, b.engine, b.freq, c)

	return c
}
