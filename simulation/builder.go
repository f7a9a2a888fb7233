package simulation

import (
	"log"
	"os"
	"strconv"

	"github.com/sarchlab/srlatch/datarecording"
	"github.com/sarchlab/srlatch/latch"
	"github.com/sarchlab/srlatch/monitoring"
	"github.com/sarchlab/srlatch/plc"
	"github.com/sarchlab/srlatch/sim/id"
	"github.com/sarchlab/srlatch/sim/timing"
	"github.com/sarchlab/srlatch/tracing"
)

// ControllerName is the name of the latch controller in every simulation.
const ControllerName = "Latch"

// Builder can be used to build a simulation.
type Builder struct {
	mode        latch.Mode
	console     *plc.Console
	button      plc.Button
	seed        int64
	seedSet     bool
	traceDBOn   bool
	traceDB     string
	traceCSV    string
	eventLogger *log.Logger
	monitorOn   bool
	monitorPort int
	openBrowser bool
}

// MakeBuilder creates a new builder for a manual-mode run on the standard
// console.
func MakeBuilder() Builder {
	return Builder{
		mode: latch.ModeManual,
	}
}

// WithMode sets the latch mode.
func (b Builder) WithMode(mode latch.Mode) Builder {
	b.mode = mode
	return b
}

// WithConsole sets the console that prompts are printed to and button
// presses are read from.
func (b Builder) WithConsole(console *plc.Console) Builder {
	b.console = console
	return b
}

// WithButton replaces the button source that the mode would pick.
func (b Builder) WithButton(button plc.Button) Builder {
	b.button = button
	return b
}

// WithSeed fixes the seed of the random button in memory mode.
func (b Builder) WithSeed(seed int64) Builder {
	b.seed = seed
	b.seedSet = true
	return b
}

// WithTraceDB records every cycle into a SQLite database at path. The
// ".sqlite3" suffix is appended. An empty path picks a unique name.
func (b Builder) WithTraceDB(path string) Builder {
	b.traceDBOn = true
	b.traceDB = path

	return b
}

// WithTraceCSV records every cycle into a CSV file at path.
func (b Builder) WithTraceCSV(path string) Builder {
	b.traceCSV = path
	return b
}

// WithEventLogger logs every handled event to logger.
func (b Builder) WithEventLogger(logger *log.Logger) Builder {
	b.eventLogger = logger
	return b
}

// WithMonitor turns on the monitoring server.
func (b Builder) WithMonitor() Builder {
	b.monitorOn = true
	return b
}

// WithMonitorPort sets the port number for the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorPort = port
	return b
}

// WithOpenBrowser opens the monitoring page once the server is up.
func (b Builder) WithOpenBrowser() Builder {
	b.openBrowser = true
	return b
}

func (b Builder) parametersMustBeValid() {
	if !b.mode.IsValid() {
		panic("invalid latch mode " + b.mode.String())
	}

	if !b.monitorOn && b.monitorPort != 0 {
		panic("monitor port cannot be set when monitoring is disabled")
	}

	if !b.monitorOn && b.openBrowser {
		panic("browser cannot be opened when monitoring is disabled")
	}
}

// Build builds the simulation.
func (b Builder) Build() *Simulation {
	b.parametersMustBeValid()

	s := &Simulation{
		id:            id.RunID(),
		compNameIndex: make(map[string]int),
		engine:        timing.NewSerialEngine(),
		counter:       tracing.NewTransitionCounter(),
	}

	if b.eventLogger != nil {
		s.engine.AcceptHook(timing.NewEventLogger(b.eventLogger))
	}

	console := b.console
	if console == nil {
		console = plc.NewConsole(os.Stdin, os.Stdout)
	}

	s.controller = plc.MakeBuilder().
		WithEngine(s.engine).
		WithMode(b.mode).
		WithButton(b.buildButton(s, console)).
		WithOutput(console.Out()).
		Build(ControllerName)
	s.controller.AcceptHook(s.counter)

	b.buildTracers(s)

	if b.monitorOn {
		b.buildMonitor(s)
	}

	s.RegisterComponent(s.controller)

	return s
}

func (b Builder) buildButton(s *Simulation, console *plc.Console) plc.Button {
	if b.button != nil {
		return b.button
	}

	if b.mode == latch.ModeManual {
		return plc.NewConsoleButton(console)
	}

	rb := plc.NewTimeSeededRandomButton()
	if b.seedSet {
		rb = plc.NewRandomButton(b.seed)
	}

	s.seed = strconv.FormatInt(rb.Seed(), 10)

	return rb
}

func (b Builder) buildTracers(s *Simulation) {
	if b.traceDBOn {
		s.dataRecorder = datarecording.New(b.traceDB)

		s.execRecorder = datarecording.NewExecRecorder(s.dataRecorder)
		s.execRecorder.Start()
		s.execRecorder.Note("Mode", b.mode.String())
		if s.seed != "" {
			s.execRecorder.Note("Seed", s.seed)
		}

		s.controller.AcceptHook(tracing.NewDBTracer(s.dataRecorder))
	}

	if b.traceCSV != "" {
		s.csvTracer = tracing.NewCSVTracer(b.traceCSV)
		s.csvTracer.Init()
		s.controller.AcceptHook(s.csvTracer)
	}
}

func (b Builder) buildMonitor(s *Simulation) {
	s.monitor = monitoring.NewMonitor()
	if b.monitorPort > 0 {
		s.monitor.WithPortNumber(b.monitorPort)
	}

	s.monitor.RegisterEngine(s.engine)

	bar := s.monitor.CreateProgressBar(ControllerName, latch.NumCycles)
	s.controller.AcceptHook(bar)

	s.monitorURL = s.monitor.StartServer()
	if b.openBrowser {
		s.monitor.OpenBrowser(s.monitorURL)
	}
}
