package datarecording

import (
	"os"
	"strings"
	"time"
)

// ExecInfo is one property of a program run.
type ExecInfo struct {
	Property string
	Value    string
}

// ExecTableName is the table that holds ExecInfo rows.
const ExecTableName = "exec_info"

const execTimeFormat = "2006-01-02 15:04:05.000000000"

// ExecRecorder records how and when the program ran.
type ExecRecorder struct {
	recorder DataRecorder
	entries  []ExecInfo
}

// NewExecRecorder creates the exec_info table in recorder.
func NewExecRecorder(recorder DataRecorder) *ExecRecorder {
	e := &ExecRecorder{recorder: recorder}

	recorder.CreateTable(ExecTableName, ExecInfo{})

	return e
}

// Start notes the start time and the command line.
func (e *ExecRecorder) Start() {
	e.Note("Start Time", time.Now().Format(execTimeFormat))
	e.Note("Command", strings.Join(os.Args, " "))

	cwd, err := os.Getwd()
	if err != nil {
		panic(err)
	}

	e.Note("Working Directory", cwd)
}

// Note adds a property of the run.
func (e *ExecRecorder) Note(property, value string) {
	e.entries = append(e.entries, ExecInfo{Property: property, Value: value})
}

// End adds the end time and writes all properties.
func (e *ExecRecorder) End() {
	e.Note("End Time", time.Now().Format(execTimeFormat))

	for _, entry := range e.entries {
		e.recorder.InsertData(ExecTableName, entry)
	}

	e.entries = nil

	e.recorder.Flush()
}
