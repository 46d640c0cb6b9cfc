package cpu

import (
	"errors"
	"iter"
)

// StackOp is the kind of stack access being validated.
type StackOp int

const (
	STACK_PUSH = StackOp(0)
	STACK_POP  = StackOp(1)
)

// checkStack validates a stack access against the stack pointers.
// The stack grows downward from Bp; Sp addresses the last pushed word.
func (cpu *Cpu) checkStack(op StackOp) (err error) {
	sp := cpu.Registers.Sp
	bp := cpu.Registers.Bp

	switch op {
	case STACK_PUSH:
		if sp-1 < 0 {
			err = ErrStackOverflow
		} else if !InRange(sp - 1) {
			err = errors.Join(ErrStackOverflow, ErrAddressRange)
		}
	case STACK_POP:
		if sp == bp {
			err = errors.Join(ErrStackUnderflow, ErrStackEmpty)
		} else if sp+1 > bp {
			err = errors.Join(ErrStackUnderflow, ErrStackBeyondBase)
		} else if !InRange(sp) {
			err = errors.Join(ErrStackUnderflow, ErrAddressRange)
		}
	}

	return
}

// push stores a word on the stack. Call checkStack(STACK_PUSH) first.
func (cpu *Cpu) push(word Word) {
	cpu.Registers.Sp--
	cpu.Memory.Cell[cpu.Registers.Sp] = word
}

// pop removes the top word from the stack. Call checkStack(STACK_POP) first.
func (cpu *Cpu) pop() (word Word) {
	word = cpu.Memory.Cell[cpu.Registers.Sp]
	cpu.Registers.Sp++
	return
}

// Push validates and pushes a word on the stack.
func (cpu *Cpu) Push(word Word) (err error) {
	err = cpu.checkStack(STACK_PUSH)
	if err != nil {
		return
	}

	cpu.push(word)
	return
}

// Pop validates and pops a word from the stack.
func (cpu *Cpu) Pop() (word Word, err error) {
	err = cpu.checkStack(STACK_POP)
	if err != nil {
		return
	}

	word = cpu.pop()
	return
}

// StackDepth returns the number of live words on the stack.
func (cpu *Cpu) StackDepth() int {
	depth := cpu.Registers.Bp - cpu.Registers.Sp
	if depth < 0 {
		return 0
	}
	return depth
}

// Stack iterates the live stack from the base (oldest) down to the top.
func (cpu *Cpu) Stack() iter.Seq2[int, Word] {
	if cpu.StackDepth() == 0 {
		return func(yield func(int, Word) bool) {}
	}
	return cpu.Memory.Range(cpu.Registers.Bp-1, cpu.Registers.Sp)
}
