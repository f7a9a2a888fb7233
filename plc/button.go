package plc

import (
	"math/rand"
	"time"
)

// A Button produces the raw button reading for a cycle. The value is not
// validated; callers decide what to do with values outside {0, 1}.
type Button interface {
	Read(cycle int) (int, error)
}

// ConsoleButton asks the operator for the button state.
type ConsoleButton struct {
	console *Console
}

// NewConsoleButton creates a button that prompts on the given console.
func NewConsoleButton(console *Console) *ConsoleButton {
	return &ConsoleButton{console: console}
}

// Read prompts for and reads one integer.
func (b *ConsoleButton) Read(cycle int) (int, error) {
	b.console.Printf("Iteración %2d: Estado del pulsador (0/1): ", cycle)

	return b.console.ReadInt()
}

// RandomButton presses itself with probability one half.
type RandomButton struct {
	rng  *rand.Rand
	seed int64
}

// NewRandomButton creates a random button seeded with seed.
func NewRandomButton(seed int64) *RandomButton {
	return &RandomButton{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// NewTimeSeededRandomButton creates a random button seeded from the wall
// clock, so every run draws a different sequence.
func NewTimeSeededRandomButton() *RandomButton {
	return NewRandomButton(time.Now().UnixNano())
}

// Seed returns the seed the button was created with.
func (b *RandomButton) Seed() int64 {
	return b.seed
}

// Read draws 0 or 1 uniformly.
func (b *RandomButton) Read(_ int) (int, error) {
	return b.rng.Intn(2), nil
}

// SequenceButton replays fixed readings. Cycles past the end read 0.
type SequenceButton struct {
	values []int
}

// NewSequenceButton creates a button that returns values[cycle].
func NewSequenceButton(values ...int) *SequenceButton {
	return &SequenceButton{values: values}
}

// Read returns the reading for cycle.
func (b *SequenceButton) Read(cycle int) (int, error) {
	if cycle < 0 || cycle >= len(b.values) {
		return 0, nil
	}

	return b.values[cycle], nil
}
