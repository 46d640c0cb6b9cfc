package cpu

import (
	"errors"
	"strconv"

	"github.com/ezrec/vsc/translate"
)

var f = translate.From

var (
	// Word errors
	ErrWordOverflow = errors.New(f("word overflow"))
	ErrWordInvalid  = errors.New(f("word invalid"))

	// Memory errors
	ErrAddressRange = errors.New(f("address out of range"))

	// Cpu state errors; these are reported and never halt the machine.
	ErrNotLoaded      = errors.New(f("no program in memory"))
	ErrHalted         = errors.New(f("program execution halted, reset required"))
	ErrNoStartAddress = errors.New(f("start address not set"))

	// Execution faults; these halt the machine.
	ErrUnknownInstruction = errors.New(f("unknown instruction"))
	ErrAccUnset           = errors.New(f("accumulator never written"))
	ErrStackOverflow      = errors.New(f("general protection fault: no free space on stack"))
	ErrStackUnderflow     = errors.New(f("general protection fault: stack underflow"))
	ErrStackEmpty         = errors.New(f("stack is empty"))
	ErrStackBeyondBase    = errors.New(f("access beyond the stack base"))

	// Loader errors
	ErrLineTokens    = errors.New(f("expected an address and a value"))
	ErrLineAddress   = errors.New(f("address invalid"))
	ErrLineValue     = errors.New(f("value invalid"))
	ErrAddressLimits = errors.New(f("address out of range (0,%v)", strconv.Itoa(MEMORY_SIZE-1)))
)

// ErrParseWord is the error for text that is not a decimal word.
type ErrParseWord string

func (err ErrParseWord) Error() string {
	return f("'%v' is not a decimal numeral", string(err))
}

// ErrOpcode annotates a fault with the instruction word that raised it.
type ErrOpcode Word

func (eo ErrOpcode) Error() string {
	return f("bad opcode %v", Word(eo).Digits())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrSyntax locates a loader failure in the machine code text.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
