// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"errors"
	"io"
	"log"
	"strconv"
	"strings"
)

// Loader reads machine code text into memory.
//
// Each line holds an address and a word value separated by whitespace;
// anything after a ';' is a comment and blank lines are ignored.
//
//	0000 10005 ; CPA 0005
//	0001 00000 ; HLT
//	0005 42
type Loader struct {
	Verbose bool // If set, verbosely logs each loaded cell.
}

// parseAddress parses a decimal address token.
func parseAddress(token string) (addr int, err error) {
	for _, ch := range token {
		if ch < '0' || ch > '9' {
			err = ErrLineAddress
			return
		}
	}

	value, err := strconv.ParseUint(token, 10, 32)
	if err != nil || value >= MEMORY_SIZE {
		err = ErrAddressLimits
		return
	}

	addr = int(value)
	return
}

// Load parses machine code from input, writing each cell to mem as it is
// read. Loading stops at the first bad line; cells already written stay
// written.
func (ld *Loader) Load(input io.Reader, mem *Memory) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	prog = &Program{}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		text_comment := strings.SplitN(text, ";", 2)
		words := strings.Fields(text_comment[0])
		line = strings.Join(words, " ")

		if len(words) == 0 {
			continue
		}

		if len(words) != 2 {
			err = ErrLineTokens
			return
		}

		var addr int
		addr, err = parseAddress(words[0])
		if err != nil {
			return
		}

		var word Word
		word, err = ParseWord(words[1])
		if err != nil {
			err = errors.Join(ErrLineValue, err)
			return
		}

		if ld.Verbose {
			log.Printf("load: %04d: %v", addr, word.Digits())
		}

		err = mem.Write(addr, word)
		if err != nil {
			return
		}

		prog.Cells = append(prog.Cells, Cell{
			LineNo:  lineno,
			Address: addr,
			Word:    word,
			Text:    line,
		})
	}

	line = ""
	err = scanner.Err()

	return
}

// Load reads a program into memory.
// On success the program is runnable; on failure no program is loaded,
// though memory keeps the cells written before the bad line.
func (cpu *Cpu) Load(input io.Reader) (prog *Program, err error) {
	ld := &Loader{Verbose: cpu.Verbose}

	prog, err = ld.Load(input, &cpu.Memory)
	if err != nil {
		cpu.Loaded = false
		return
	}

	cpu.Loaded = true
	cpu.Halted = HALT_RUNNING

	return
}
