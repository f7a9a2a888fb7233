// Package main runs the SR latch simulator.
package main

import (
	"github.com/sarchlab/srlatch/srlatch/cmd"
	"github.com/tebeka/atexit"
)

func main() {
	cmd.Execute()
	atexit.Exit(0)
}
