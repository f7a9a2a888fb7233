// Package id provides identifiers for events and runs.
package id

import (
	"strconv"
	"sync/atomic"

	"github.com/rs/xid"
)

// IDGenerator produces unique IDs.
type IDGenerator interface {
	Generate() string
}

// NewIDGenerator returns a generator that counts up from 1.
func NewIDGenerator() IDGenerator {
	return &sequentialIDGenerator{}
}

type sequentialIDGenerator struct {
	nextID uint64
}

func (g *sequentialIDGenerator) Generate() string {
	idNumber := atomic.AddUint64(&g.nextID, 1)

	return strconv.FormatUint(idNumber, 10)
}

var defaultGenerator = NewIDGenerator()

// Generate returns the next ID from the process-wide sequential generator.
func Generate() string {
	return defaultGenerator.Generate()
}

// RunID returns a globally unique ID for naming output of a single run.
func RunID() string {
	return xid.New().String()
}
