package cpu

import (
	"iter"
)

const (
	MEMORY_SIZE = 10000 // Addresses 0000 to 9999
)

// Memory is the word addressable store of the machine.
type Memory struct {
	Cell [MEMORY_SIZE]Word
}

// InRange returns true if addr names a memory cell.
func InRange(addr int) bool {
	return addr >= 0 && addr < MEMORY_SIZE
}

// Read returns the word at addr.
func (mem *Memory) Read(addr int) (word Word, err error) {
	if !InRange(addr) {
		err = ErrAddressRange
		return
	}

	word = mem.Cell[addr]
	return
}

// Write stores a word at addr.
func (mem *Memory) Write(addr int, word Word) (err error) {
	if !InRange(addr) {
		err = ErrAddressRange
		return
	}

	mem.Cell[addr] = word
	return
}

// Fill overwrites every cell with the value returned by filler.
func (mem *Memory) Fill(filler func(addr int) Word) {
	for n := range mem.Cell {
		mem.Cell[n] = filler(n)
	}
}

// Clear sets every cell to 00000.
func (mem *Memory) Clear() {
	clear(mem.Cell[:])
}

// Range iterates the cells from begin to end inclusive, walking downwards
// when end < begin. Iteration stops at the first address out of range.
func (mem *Memory) Range(begin, end int) iter.Seq2[int, Word] {
	return func(yield func(addr int, word Word) bool) {
		step := 1
		if end < begin {
			step = -1
		}
		for addr := begin; InRange(addr); addr += step {
			if !yield(addr, mem.Cell[addr]) {
				return
			}
			if addr == end {
				return
			}
		}
	}
}
