package cpu

import (
	"errors"
	"fmt"
)

// CodeOp is an instruction operation.
type CodeOp int

//go:generate go tool stringer -linecomment -type=CodeOp
const (
	OP_HLT  = CodeOp(0)  // hlt
	OP_INC  = CodeOp(1)  // inc
	OP_DEC  = CodeOp(2)  // dec
	OP_PUSH = CodeOp(3)  // push
	OP_POP  = CodeOp(4)  // pop
	OP_CPA  = CodeOp(5)  // cpa
	OP_STO  = CodeOp(6)  // sto
	OP_ADD  = CodeOp(7)  // add
	OP_SUB  = CodeOp(8)  // sub
	OP_MUL  = CodeOp(9)  // mul
	OP_BRA  = CodeOp(10) // bra
	OP_BRN  = CodeOp(11) // brn
	OP_BRZ  = CodeOp(12) // brz
	OP_BRNF = CodeOp(13) // brnf
	OP_BRZF = CodeOp(14) // brzf
)

// CodeMode is an operand addressing mode.
type CodeMode int

//go:generate go tool stringer -linecomment -type=CodeMode
const (
	MODE_IMPLIED   = CodeMode(0) // implied
	MODE_DIRECT    = CodeMode(1) // direct
	MODE_IMMEDIATE = CodeMode(2) // immediate
	MODE_INDIRECT  = CodeMode(3) // indirect
)

// Operations selected by the leading digit of a direct instruction, 1aaaa to 8aaaa.
var directOps = [...]CodeOp{OP_CPA, OP_STO, OP_ADD, OP_SUB, OP_MUL, OP_BRA, OP_BRN, OP_BRZ}

// Operations selected by the third digit of a 9xyzz instruction, y = 1 to 5.
var extendedOps = [...]CodeOp{OP_CPA, OP_STO, OP_ADD, OP_SUB, OP_MUL}

// Second digit of a 9xyzz instruction.
const (
	GROUP_BRANCH_FLAG     = 0 // 907aa, 908aa
	GROUP_DIRECT_LONG     = 1 // 91y00 aaaaa
	GROUP_IMMEDIATE_SHORT = 2 // 92yss
	GROUP_IMMEDIATE_LONG  = 3 // 93y00 sssss
	GROUP_INDIRECT_SHORT  = 4 // 94yaa
	GROUP_INDIRECT_LONG   = 5 // 95y00 aaaaa
)

// Trailing digits of the stack transfers 9x030 and 9x040.
const (
	TAIL_PUSH = 30
	TAIL_POP  = 40
)

// Instruction is a decoded instruction.
type Instruction struct {
	Word    Word     // Opcode word.
	Op      CodeOp   // Operation.
	Mode    CodeMode // Addressing mode of Operand.
	Long    bool     // Operand is held in the word following the opcode.
	Operand Word     // Address, pointer address or immediate value.
	Size    int      // Words consumed, 1 or 2.
}

// Address returns the operand as an address.
func (inst Instruction) Address() int {
	return inst.Operand.Int()
}

// Decode decodes the instruction held in memory at ip.
func Decode(mem *Memory, ip int) (inst Instruction, err error) {
	word, err := mem.Read(ip)
	if err != nil {
		return
	}

	inst = Instruction{Word: word, Size: 1}

	if !word.Valid() {
		err = ErrUnknownInstruction
		return
	}

	lead := int(word / WORD_MAGNITUDE)
	rest := word % WORD_MAGNITUDE

	switch lead {
	case 0:
		switch {
		case word == 0:
			inst.Op = OP_HLT
		case rest/1000 == 1:
			inst.Op = OP_INC
			inst.Mode = MODE_DIRECT
			inst.Operand = rest % 1000
		case rest/1000 == 2:
			inst.Op = OP_DEC
			inst.Mode = MODE_DIRECT
			inst.Operand = rest % 1000
		case rest == 3000:
			inst.Op = OP_PUSH
		case rest == 4000:
			inst.Op = OP_POP
		default:
			err = ErrUnknownInstruction
		}
	case 1, 2, 3, 4, 5, 6, 7, 8:
		inst.Op = directOps[lead-1]
		inst.Mode = MODE_DIRECT
		inst.Operand = rest
	case 9:
		err = decodeExtended(mem, ip, &inst)
	}

	return
}

// decodeExtended decodes the 9xyzz family.
func decodeExtended(mem *Memory, ip int, inst *Instruction) (err error) {
	rest := int(inst.Word % WORD_MAGNITUDE)
	group := rest / 1000
	sel := (rest / 100) % 10
	tail := rest % 100

	switch group {
	case GROUP_BRANCH_FLAG:
		switch sel {
		case 7:
			inst.Op = OP_BRNF
		case 8:
			inst.Op = OP_BRZF
		default:
			return ErrUnknownInstruction
		}
		inst.Mode = MODE_DIRECT
		inst.Operand = Word(tail)
		return
	case GROUP_IMMEDIATE_SHORT, GROUP_INDIRECT_SHORT:
		if sel < 1 || sel > len(extendedOps) {
			return ErrUnknownInstruction
		}
		inst.Op = extendedOps[sel-1]
		inst.Mode = MODE_INDIRECT
		if group == GROUP_IMMEDIATE_SHORT {
			inst.Mode = MODE_IMMEDIATE
		}
		inst.Operand = Word(tail)
	case GROUP_DIRECT_LONG, GROUP_IMMEDIATE_LONG, GROUP_INDIRECT_LONG:
		switch {
		case sel == 0 && tail == TAIL_PUSH:
			inst.Op = OP_PUSH
		case sel == 0 && tail == TAIL_POP:
			inst.Op = OP_POP
		case sel >= 1 && sel <= len(extendedOps) && tail == 0:
			inst.Op = extendedOps[sel-1]
		default:
			return ErrUnknownInstruction
		}
		switch group {
		case GROUP_DIRECT_LONG:
			inst.Mode = MODE_DIRECT
		case GROUP_IMMEDIATE_LONG:
			inst.Mode = MODE_IMMEDIATE
		case GROUP_INDIRECT_LONG:
			inst.Mode = MODE_INDIRECT
		}
		var operand Word
		operand, err = mem.Read(ip + 1)
		if err != nil {
			return errors.Join(ErrUnknownInstruction, err)
		}
		if !operand.Valid() {
			return errors.Join(ErrUnknownInstruction, ErrWordInvalid)
		}
		inst.Long = true
		inst.Operand = operand
		inst.Size = 2
	default:
		return ErrUnknownInstruction
	}

	// An immediate value cannot be a destination.
	if inst.Mode == MODE_IMMEDIATE && (inst.Op == OP_STO || inst.Op == OP_POP) {
		return ErrUnknownInstruction
	}

	return
}

// Encode returns the memory words of the instruction, the inverse of Decode.
func (inst Instruction) Encode() (words []Word) {
	operand := inst.Operand

	switch inst.Op {
	case OP_HLT:
		return []Word{0}
	case OP_INC:
		return []Word{1000 + operand%1000}
	case OP_DEC:
		return []Word{2000 + operand%1000}
	case OP_BRNF:
		return []Word{90700 + operand%100}
	case OP_BRZF:
		return []Word{90800 + operand%100}
	case OP_BRA, OP_BRN, OP_BRZ:
		return []Word{Word(inst.Op-OP_CPA+1)*WORD_MAGNITUDE + operand%WORD_MAGNITUDE}
	}

	if inst.Mode == MODE_IMPLIED {
		switch inst.Op {
		case OP_PUSH:
			return []Word{3000}
		case OP_POP:
			return []Word{4000}
		}
		return nil
	}

	if inst.Mode == MODE_DIRECT && !inst.Long {
		return []Word{Word(inst.Op-OP_CPA+1)*WORD_MAGNITUDE + operand%WORD_MAGNITUDE}
	}

	var group Word
	switch inst.Mode {
	case MODE_DIRECT:
		group = GROUP_DIRECT_LONG
	case MODE_IMMEDIATE:
		group = GROUP_IMMEDIATE_SHORT
	case MODE_INDIRECT:
		group = GROUP_INDIRECT_SHORT
	}

	var sel, tail Word
	switch inst.Op {
	case OP_PUSH:
		tail = TAIL_PUSH
	case OP_POP:
		tail = TAIL_POP
	default:
		sel = Word(inst.Op-OP_CPA) + 1
	}

	if inst.Long {
		if inst.Mode != MODE_DIRECT {
			group++
		}
		return []Word{90000 + group*1000 + sel*100 + tail, operand}
	}

	return []Word{90000 + group*1000 + sel*100 + operand%100}
}

// String returns the assembly language representation of this instruction.
func (inst Instruction) String() (out string) {
	var arg string

	switch inst.Mode {
	case MODE_IMPLIED:
		return inst.Op.String()
	case MODE_DIRECT:
		switch {
		case inst.Long:
			arg = inst.Operand.Digits()
		case inst.Op == OP_INC || inst.Op == OP_DEC:
			arg = fmt.Sprintf("%03d", uint32(inst.Operand))
		case inst.Op == OP_BRNF || inst.Op == OP_BRZF:
			arg = fmt.Sprintf("%02d", uint32(inst.Operand))
		default:
			arg = fmt.Sprintf("%04d", uint32(inst.Operand))
		}
	case MODE_IMMEDIATE:
		if inst.Long {
			arg = fmt.Sprintf("(%v)", inst.Operand.Digits())
		} else {
			arg = fmt.Sprintf("(%02d)", uint32(inst.Operand))
		}
	case MODE_INDIRECT:
		if inst.Long {
			arg = fmt.Sprintf("[%v]", inst.Operand.Digits())
		} else {
			arg = fmt.Sprintf("[%02d]", uint32(inst.Operand))
		}
	}

	out = fmt.Sprintf("%v %v", inst.Op.String(), arg)

	return
}
