// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"iter"
	"log"
	"os"

	"github.com/ezrec/vsc/cpu"
	"github.com/ezrec/vsc/internal"
)

const (
	RUN_STEP_LIMIT = 100 // Steps executed by a single Run.
)

// Emulator state. CPU + loaded program listing.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently loaded program listing.

	StepLimit int // Steps executed by a single Run; RUN_STEP_LIMIT by default.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:       cpu.NewCpu(),
		Program:   &cpu.Program{},
		StepLimit: RUN_STEP_LIMIT,
	}

	return
}

// Load loads a machine code file into memory.
func (emu *Emulator) Load(path string) (err error) {
	emu.Cpu.Verbose = emu.Verbose

	inf, err := os.Open(path)
	if err != nil {
		emu.Cpu.Loaded = false
		return
	}
	defer inf.Close()

	prog, err := emu.Cpu.Load(inf)
	if prog != nil {
		emu.Program = prog
	}
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: loaded %v cells from %v", len(prog.Cells), path)
	}

	return
}

// Reset zeros memory and registers and clears the halted state.
// The loaded flag and program listing are kept.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
}

// LineNo returns the source line number for the word at the instruction
// pointer, or 0 if unknown.
func (emu *Emulator) LineNo() int {
	ip, ok := emu.Ip()
	if !ok || emu.Program == nil {
		return 0
	}

	cell := emu.Program.Debug(ip)
	if cell == nil {
		return 0
	}

	return cell.LineNo
}

// Step executes a single instruction.
// Faults are returned as *ErrRuntime locating the faulting instruction.
func (emu *Emulator) Step() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	err = emu.Cpu.Runnable()
	if err != nil {
		return
	}

	ip := emu.Cpu.Registers.Ip
	lineno := emu.LineNo()

	err = emu.Cpu.Step()
	if err != nil {
		err = &ErrRuntime{Address: ip, LineNo: lineno, Err: err}
	}

	return
}

// Run steps until the program halts, faults, or StepLimit steps have been
// executed. Reaching the limit returns ErrStepLimit and leaves the machine
// runnable, so a later Run continues where this one stopped.
func (emu *Emulator) Run() (steps int, err error) {
	steps, _, err = emu.RunUntil(nil)
	return
}

// RunUntil is Run, also stopping after any step where watch is true.
func (emu *Emulator) RunUntil(watch *Watch) (steps int, triggered bool, err error) {
	limit := emu.StepLimit
	if limit <= 0 {
		limit = RUN_STEP_LIMIT
	}

	for steps < limit {
		err = emu.Step()
		if err != nil {
			return
		}
		steps++

		if emu.IsHalted() {
			return
		}

		if watch != nil {
			triggered, err = watch.Eval(emu.Cpu)
			if err != nil || triggered {
				return
			}
		}
	}

	err = ErrStepLimit

	if emu.Verbose {
		log.Printf("emulator: %v", err)
	}

	return
}

// IsHalted returns true if the program has halted.
func (emu *Emulator) IsHalted() bool {
	return emu.Cpu.Halted == cpu.HALT_STOPPED
}

// Acc returns the accumulator, and false if it has never been written.
func (emu *Emulator) Acc() (word cpu.Word, ok bool) {
	return emu.Cpu.Registers.Acc, emu.Cpu.Registers.AccValid
}

// AccInt returns the accumulator as an integer, and false if it has never
// been written.
func (emu *Emulator) AccInt() (value int, ok bool) {
	word, ok := emu.Acc()
	if ok {
		value = word.Int()
	}
	return
}

// Ip returns current instruction pointer, and false if no start address is set.
func (emu *Emulator) Ip() (ip int, ok bool) {
	return emu.Cpu.Registers.Ip, emu.Cpu.Registers.IpValid
}

// Sp returns the stack pointer.
func (emu *Emulator) Sp() int {
	return emu.Cpu.Registers.Sp
}

// Bp returns the base pointer.
func (emu *Emulator) Bp() int {
	return emu.Cpu.Registers.Bp
}

// Flags returns the ZERO and NEGATIVE flags.
func (emu *Emulator) Flags() cpu.Flags {
	return emu.Cpu.Registers.Flags
}

// Cells iterates the memory cells of each range in turn.
func (emu *Emulator) Cells(ranges ...internal.Range) (cells iter.Seq2[int, cpu.Word], err error) {
	for _, r := range ranges {
		if !r.Within(cpu.MEMORY_SIZE) {
			err = ErrMemoryRange
			return
		}
	}

	cells = func(yield func(addr int, word cpu.Word) bool) {
		for addr := range internal.IterRanges(ranges...) {
			if !yield(addr, emu.Cpu.Memory.Cell[addr]) {
				return
			}
		}
	}

	return
}

// State iterates the register names and their values, followed by the
// program state.
func (emu *Emulator) State() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(registerSeq(emu.Cpu), stateSeq(emu.Cpu))
}
