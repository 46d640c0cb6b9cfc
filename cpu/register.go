package cpu

const (
	STACK_BASE = MEMORY_SIZE - 1 // Initial base and stack pointer.
)

// Flags are set from the result of INC, DEC, ADD, SUB and MUL.
type Flags struct {
	Zero     bool
	Negative bool
}

// update sets the flags from an arithmetic result.
// At most one of Zero and Negative is ever set.
func (fl *Flags) update(result int) {
	fl.Zero = result == 0
	fl.Negative = result < 0
}

// Registers is the register file of the machine.
type Registers struct {
	Acc      Word // Accumulator.
	AccValid bool // Set once the accumulator has been written.
	Ip       int  // Instruction pointer.
	IpValid  bool // Set once a start address has been chosen.
	Sp       int  // Stack pointer; equal to Bp when the stack is empty.
	Bp       int  // Base pointer; one past the highest stack cell.
	Flags    Flags
}

// Reset returns the registers to their power-on state.
func (reg *Registers) Reset() {
	*reg = Registers{
		Sp: STACK_BASE,
		Bp: STACK_BASE,
	}
}

// setAcc writes the accumulator.
func (reg *Registers) setAcc(word Word) {
	reg.Acc = word
	reg.AccValid = true
}

// HaltState is the halted flag of the program state.
type HaltState int

//go:generate go tool stringer -linecomment -type=HaltState
const (
	HALT_UNSET   = HaltState(0) // unset
	HALT_RUNNING = HaltState(1) // running
	HALT_STOPPED = HaltState(2) // halted
)
