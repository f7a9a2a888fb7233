package plc

import (
	"github.com/sarchlab/srlatch/latch"
)

// InvalidOptionMsg is printed when the menu selection is not a known mode.
const InvalidOptionMsg = "Opción no válida. Saliendo."

// SelectMode shows the mode menu and reads the selection. It returns false,
// after printing InvalidOptionMsg, when the selection is not 1 or 2 or is not
// a number at all.
func SelectMode(console *Console) (latch.Mode, bool) {
	console.Printf("Elije una versión:\n")
	console.Printf("1. Modo Manual (Entrada por teclado)\n")
	console.Printf("2. Modo Memoria (SR con estado persistente)\n")
	console.Printf("Opción: ")

	option, err := console.ReadInt()
	mode := latch.Mode(option)

	if err != nil || !mode.IsValid() {
		console.Printf("%s\n", InvalidOptionMsg)
		return 0, false
	}

	return mode, true
}
