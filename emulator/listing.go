package emulator

import (
	"fmt"
	"iter"
	"strings"

	"github.com/ezrec/vsc/cpu"
)

// Listing iterates the loaded program in load order, disassembling each
// cell as it was loaded. Cells that do not decode are listed as data.
func (emu *Emulator) Listing() iter.Seq2[int, string] {
	return func(yield func(addr int, text string) bool) {
		mem := &cpu.Memory{}
		for addr, word := range emu.Program.Words() {
			mem.Cell[addr] = word
		}

		for addr, word := range emu.Program.Words() {
			text := word.Digits()
			inst, err := cpu.Decode(mem, addr)
			if err == nil {
				var digits []string
				for _, code := range inst.Encode() {
					digits = append(digits, code.Digits())
				}
				text = fmt.Sprintf("%-11v %v", strings.Join(digits, " "), inst)
			}
			if !yield(addr, text) {
				return
			}
		}
	}
}
