// Package simulation assembles a complete latch run: the engine, the
// controller and whatever tracers and monitor the user asked for.
package simulation

import (
	"errors"
	"fmt"
	"io"

	"github.com/sarchlab/srlatch/datarecording"
	"github.com/sarchlab/srlatch/monitoring"
	"github.com/sarchlab/srlatch/plc"
	"github.com/sarchlab/srlatch/sim/naming"
	"github.com/sarchlab/srlatch/sim/timing"
	"github.com/sarchlab/srlatch/tracing"
)

// A Component is a named part of a simulation.
type Component interface {
	timing.Named
}

// A Simulation owns everything a single latch run needs.
type Simulation struct {
	id   string
	seed string

	engine     *timing.SerialEngine
	controller *plc.Controller

	dataRecorder datarecording.DataRecorder
	execRecorder *datarecording.ExecRecorder
	csvTracer    *tracing.CSVTracer
	counter      *tracing.TransitionCounter
	monitor      *monitoring.Monitor
	monitorURL   string

	components    []Component
	compNameIndex map[string]int
}

// ID returns the unique ID of the run.
func (s *Simulation) ID() string {
	return s.id
}

// Seed returns the seed of the random button, or an empty string when the
// run does not use one.
func (s *Simulation) Seed() string {
	return s.seed
}

// GetEngine returns the engine used in the simulation.
func (s *Simulation) GetEngine() *timing.SerialEngine {
	return s.engine
}

// GetController returns the latch controller.
func (s *Simulation) GetController() *plc.Controller {
	return s.controller
}

// GetDataRecorder returns the data recorder used in the simulation. It is nil
// when no database trace was requested.
func (s *Simulation) GetDataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

// GetMonitor returns the monitor used in the simulation, if any.
func (s *Simulation) GetMonitor() *monitoring.Monitor {
	return s.monitor
}

// MonitorURL returns where the monitor serves, or an empty string when
// monitoring is off.
func (s *Simulation) MonitorURL() string {
	return s.monitorURL
}

// GetTransitionCounter returns the counter of latch actions.
func (s *Simulation) GetTransitionCounter() *tracing.TransitionCounter {
	return s.counter
}

// RegisterComponent registers a component with the simulation.
func (s *Simulation) RegisterComponent(c Component) {
	compName := c.Name()
	naming.NameMustBeValid(compName)

	if _, found := s.compNameIndex[compName]; found {
		panic("component " + compName + " already registered")
	}

	s.components = append(s.components, c)
	s.compNameIndex[compName] = len(s.components) - 1

	if s.monitor != nil {
		s.monitor.RegisterComponent(c)
	}
}

// GetComponentByName returns the component with the given name.
func (s *Simulation) GetComponentByName(name string) Component {
	index, found := s.compNameIndex[name]
	if !found {
		return nil
	}

	return s.components[index]
}

// Components returns all registered components.
func (s *Simulation) Components() []Component {
	return s.components
}

// Run starts the controller and runs the engine until all cycles are done.
func (s *Simulation) Run() error {
	s.controller.Start()

	return s.engine.Run()
}

// WriteSummary prints how many cycles took each latch action.
func (s *Simulation) WriteSummary(w io.Writer) {
	for _, action := range s.counter.Actions() {
		fmt.Fprintf(w, "%s: %d\n", action, s.counter.Count(action))
	}
}

// Terminate writes and closes every trace file.
func (s *Simulation) Terminate() error {
	var errs []error

	if s.execRecorder != nil {
		s.execRecorder.End()
	}

	if s.dataRecorder != nil {
		errs = append(errs, s.dataRecorder.Close())
	}

	if s.csvTracer != nil {
		errs = append(errs, s.csvTracer.Close())
	}

	return errors.Join(errs...)
}
