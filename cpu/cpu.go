// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
)

// RandomFiller is the power-on content of memory: random five digit patterns.
func RandomFiller(addr int) Word {
	return Word(rand.Intn(WORD_LIMIT))
}

// Cpu is the simulation context of the machine: memory, registers and
// program state.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory    Memory    // Word memory.
	Registers Registers // Register file.

	Loaded bool      // A program has been loaded.
	Halted HaltState // Halted state of the program.
	Steps  int       // Instructions executed since reset.
}

// NewCpu creates a machine with memory filled with random words.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Registers.Reset()
	cpu.Memory.Fill(RandomFiller)

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{"ir", "bp", "sp", "a", "ip", "zero", "negative"}

	reg := &cpu.Registers
	for _, name := range regs {
		var strval string
		switch name {
		case "ir":
			strval = "-----"
			if reg.IpValid {
				if word, err := cpu.Memory.Read(reg.Ip); err == nil {
					strval = word.Digits()
				}
			}
		case "bp":
			strval = fmt.Sprintf("%04d", reg.Bp)
		case "sp":
			strval = fmt.Sprintf("%04d", reg.Sp)
		case "a":
			strval = "-----"
			if reg.AccValid {
				strval = reg.Acc.String()
			}
		case "ip":
			strval = "----"
			if reg.IpValid {
				strval = fmt.Sprintf("%04d", reg.Ip)
			}
		case "zero":
			strval = fmt.Sprintf("%v", reg.Flags.Zero)
		case "negative":
			strval = fmt.Sprintf("%v", reg.Flags.Negative)
		}
		text += fmt.Sprintf("% 8s: %v\n", name, strval)
	}

	return
}

// Reset the CPU state.
// - Zeros all of memory.
// - Returns registers to their power-on state (accumulator and ip unset).
// - Clears the halted state.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Memory.Clear()
	cpu.Registers.Reset()
	cpu.Halted = HALT_RUNNING
	cpu.Steps = 0
}

// SetStartAddress sets the instruction pointer to the next instruction to execute.
func (cpu *Cpu) SetStartAddress(addr int) (err error) {
	if !InRange(addr) {
		err = ErrAddressRange
		return
	}

	cpu.Registers.Ip = addr
	cpu.Registers.IpValid = true

	return
}

// Runnable returns nil if the CPU may execute an instruction.
func (cpu *Cpu) Runnable() (err error) {
	switch {
	case !cpu.Loaded:
		err = ErrNotLoaded
	case cpu.Halted == HALT_STOPPED:
		err = ErrHalted
	case !cpu.Registers.IpValid:
		err = ErrNoStartAddress
	}

	return
}

// Step fetches, decodes and executes a single instruction.
// An error from Runnable leaves the state untouched; any other error is a
// fault that has halted the CPU with the state of the last completed
// instruction.
func (cpu *Cpu) Step() (err error) {
	err = cpu.Runnable()
	if err != nil {
		return
	}

	if cpu.Halted == HALT_UNSET {
		cpu.Halted = HALT_RUNNING
	}

	ip := cpu.Registers.Ip

	inst, err := Decode(&cpu.Memory, ip)
	if err == nil {
		if cpu.Verbose {
			log.Printf("cpu: %04d: %v", ip, inst)
		}
		err = cpu.Execute(inst)
	}

	if err != nil {
		if inst.Size > 0 {
			err = errors.Join(ErrOpcode(inst.Word), err)
		}
		cpu.Halted = HALT_STOPPED
		if cpu.Verbose {
			log.Printf("cpu: %04d: halted: %v", ip, err)
		}
		return
	}

	cpu.Steps++

	return
}

// acc returns the accumulator, which must have been written.
func (cpu *Cpu) acc() (word Word, err error) {
	if !cpu.Registers.AccValid {
		err = ErrAccUnset
		return
	}

	word = cpu.Registers.Acc
	return
}

// read returns the word at addr, which must be a five digit pattern.
func (cpu *Cpu) read(addr int) (word Word, err error) {
	word, err = cpu.Memory.Read(addr)
	if err == nil && !word.Valid() {
		err = ErrWordInvalid
	}

	return
}

// effective returns the memory address named by a direct or indirect operand.
func (cpu *Cpu) effective(inst Instruction) (addr int, err error) {
	addr = inst.Address()

	if inst.Mode == MODE_INDIRECT {
		var ptr Word
		ptr, err = cpu.read(addr)
		if err != nil {
			return
		}
		addr = ptr.Int()
	}

	if !InRange(addr) {
		err = ErrAddressRange
	}

	return
}

// operand returns the value named by the instruction operand.
func (cpu *Cpu) operand(inst Instruction) (word Word, err error) {
	if inst.Mode == MODE_IMMEDIATE {
		word = inst.Operand
		return
	}

	addr, err := cpu.effective(inst)
	if err != nil {
		return
	}

	return cpu.read(addr)
}

// arith applies an arithmetic operation to the accumulator.
func (cpu *Cpu) arith(op CodeOp, arg Word) (result int, word Word, err error) {
	acc, err := cpu.acc()
	if err != nil {
		return
	}

	switch op {
	case OP_ADD:
		result = acc.Int() + arg.Int()
	case OP_SUB:
		result = acc.Int() - arg.Int()
	case OP_MUL:
		result = acc.Int() * arg.Int()
	}

	word, err = EncodeWord(result)
	return
}

// Execute executes a single decoded instruction.
// All checks for an instruction are made before any state is modified.
func (cpu *Cpu) Execute(inst Instruction) (err error) {
	reg := &cpu.Registers
	next := reg.Ip + inst.Size

	switch inst.Op {
	case OP_HLT:
		cpu.Halted = HALT_STOPPED
		return
	case OP_INC, OP_DEC:
		addr := inst.Address()
		var word Word
		word, err = cpu.read(addr)
		if err != nil {
			return
		}
		result := word.Int() + 1
		if inst.Op == OP_DEC {
			result = word.Int() - 1
		}
		word, err = EncodeWord(result)
		if err != nil {
			return
		}
		cpu.Memory.Cell[addr] = word
		reg.Flags.update(result)
	case OP_PUSH:
		var value Word
		if inst.Mode == MODE_IMPLIED {
			value, err = cpu.acc()
		} else {
			value, err = cpu.operand(inst)
		}
		if err != nil {
			return
		}
		err = cpu.checkStack(STACK_PUSH)
		if err != nil {
			return
		}
		cpu.push(value)
	case OP_POP:
		if inst.Mode == MODE_IMPLIED {
			err = cpu.checkStack(STACK_POP)
			if err != nil {
				return
			}
			reg.setAcc(cpu.pop())
			break
		}
		var addr int
		addr, err = cpu.effective(inst)
		if err != nil {
			return
		}
		err = cpu.checkStack(STACK_POP)
		if err != nil {
			return
		}
		cpu.Memory.Cell[addr] = cpu.pop()
	case OP_CPA:
		var value Word
		value, err = cpu.operand(inst)
		if err != nil {
			return
		}
		reg.setAcc(value)
	case OP_STO:
		var acc Word
		acc, err = cpu.acc()
		if err != nil {
			return
		}
		var addr int
		addr, err = cpu.effective(inst)
		if err != nil {
			return
		}
		cpu.Memory.Cell[addr] = acc
	case OP_ADD, OP_SUB, OP_MUL:
		var arg, word Word
		arg, err = cpu.operand(inst)
		if err != nil {
			return
		}
		var result int
		result, word, err = cpu.arith(inst.Op, arg)
		if err != nil {
			return
		}
		reg.setAcc(word)
		reg.Flags.update(result)
	case OP_BRA:
		next = inst.Address()
	case OP_BRN, OP_BRZ:
		var acc Word
		acc, err = cpu.acc()
		if err != nil {
			return
		}
		if (inst.Op == OP_BRN && acc.IsNegative()) || (inst.Op == OP_BRZ && acc.IsZero()) {
			next = inst.Address()
		}
	case OP_BRNF:
		if reg.Flags.Negative {
			next = inst.Address()
		}
	case OP_BRZF:
		if reg.Flags.Zero {
			next = inst.Address()
		}
	default:
		err = ErrUnknownInstruction
		return
	}

	reg.Ip = next

	return
}
