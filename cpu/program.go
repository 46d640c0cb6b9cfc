package cpu

import (
	"iter"
)

// Cell is a single loaded line of machine code.
type Cell struct {
	LineNo  int    // Source line number.
	Address int    // Memory address written.
	Word    Word   // Word written.
	Text    string // Normalized source line.
}

// Program is the record of a machine code load.
type Program struct {
	Cells []Cell
}

// Debug returns the cell that last wrote addr, or nil.
func (prog *Program) Debug(addr int) (cell *Cell) {
	for n := len(prog.Cells) - 1; n >= 0; n-- {
		if prog.Cells[n].Address == addr {
			return &prog.Cells[n]
		}
	}

	return
}

// Words iterates the loaded address and word pairs in load order.
func (prog *Program) Words() iter.Seq2[int, Word] {
	return func(yield func(addr int, word Word) bool) {
		for _, cell := range prog.Cells {
			if !yield(cell.Address, cell.Word) {
				return
			}
		}
	}
}
