package emulator

import (
	"fmt"
	"iter"

	"github.com/ezrec/vsc/cpu"
)

// registerSeq yields the registers and flags in display order.
func registerSeq(c *cpu.Cpu) iter.Seq2[string, string] {
	return func(yield func(name, value string) bool) {
		reg := &c.Registers

		acc := "-----"
		if reg.AccValid {
			acc = reg.Acc.String()
		}
		ip := "----"
		if reg.IpValid {
			ip = fmt.Sprintf("%04d", reg.Ip)
		}

		pairs := [][2]string{
			{"A", acc},
			{"IP", ip},
			{"SP", fmt.Sprintf("%04d", reg.Sp)},
			{"BP", fmt.Sprintf("%04d", reg.Bp)},
			{"zero", fmt.Sprintf("%v", reg.Flags.Zero)},
			{"negative", fmt.Sprintf("%v", reg.Flags.Negative)},
		}
		for _, pair := range pairs {
			if !yield(pair[0], pair[1]) {
				return
			}
		}
	}
}

// stateSeq yields the program state.
func stateSeq(c *cpu.Cpu) iter.Seq2[string, string] {
	return func(yield func(name, value string) bool) {
		if !yield("loaded", fmt.Sprintf("%v", c.Loaded)) {
			return
		}
		if !yield("halted", c.Halted.String()) {
			return
		}
		yield("steps", fmt.Sprintf("%d", c.Steps))
	}
}
