// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ezrec/vsc/emulator"
	"github.com/ezrec/vsc/internal"
	"github.com/ezrec/vsc/translate"
)

var f = translate.From

type options struct {
	load    string
	start   int
	zero    bool
	step    int
	until   string
	memory  string
	stack   bool
	list    bool
	verbose bool
}

func parseArgs(args []string) (opts options, err error) {
	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)

	flags.StringVar(&opts.load, "l", "", ".mc machine code file to load")
	flags.IntVar(&opts.start, "a", 0, "Start address")
	flags.BoolVar(&opts.zero, "z", false, "Zero memory and registers before loading")
	flags.IntVar(&opts.step, "step", 0, "Execute this many single steps instead of a run")
	flags.StringVar(&opts.until, "until", "", "Stop the run when this watch expression is true")
	flags.StringVar(&opts.memory, "m", "", "Memory ranges to show, ie '0-4, 9998'")
	flags.BoolVar(&opts.stack, "stack", false, "Show the stack")
	flags.BoolVar(&opts.list, "list", false, "List the loaded program before running it")
	flags.BoolVar(&opts.verbose, "v", false, "Verbose mode")

	err = flags.Parse(args[1:])
	if err != nil {
		return
	}

	if flags.NArg() != 0 {
		err = errors.New(f("unknown arguments: %v", flags.Args()))
		return
	}

	if len(opts.load) == 0 {
		err = errors.New(f("no machine code file given, use -l PATH"))
		return
	}

	return
}

// address formats a memory address for display.
func address(addr int) string {
	return fmt.Sprintf("%04d", addr)
}

// execute runs the emulator as described by opts, writing the report to out.
// Faults of the running program are reported, not returned.
func execute(opts options, out io.Writer) (err error) {
	var ranges []internal.Range
	if len(opts.memory) != 0 {
		ranges, err = internal.ParseRanges(opts.memory)
		if err != nil {
			return
		}
	}

	var watch *emulator.Watch
	if len(opts.until) != 0 {
		watch, err = emulator.NewWatch(opts.until)
		if err != nil {
			return
		}
	}

	emu := emulator.NewEmulator()
	emu.Verbose = opts.verbose

	if opts.zero {
		emu.Reset()
	}

	err = emu.Load(opts.load)
	if err != nil {
		return
	}
	translate.Fprintln(out, "Program loaded from: %v", opts.load)

	if opts.list {
		for addr, text := range emu.Listing() {
			translate.Fprintln(out, "%v: %v", address(addr), text)
		}
	}

	err = emu.SetStartAddress(opts.start)
	if err != nil {
		return
	}

	var runErr error
	if opts.step > 0 {
		for range opts.step {
			runErr = emu.Step()
			if runErr != nil || emu.IsHalted() {
				break
			}
		}
	} else {
		var steps int
		var triggered bool
		steps, triggered, runErr = emu.RunUntil(watch)
		translate.Fprintln(out, "Executed %d instructions", steps)
		if triggered {
			translate.Fprintln(out, "Watch '%v' triggered", opts.until)
		}
	}

	switch {
	case errors.Is(runErr, emulator.ErrStepLimit):
		translate.Fprintln(out, "Maximum iteration limit reached.")
		translate.Fprintln(out, "If your program is not halted, run it again.")
	case runErr != nil:
		translate.Fprintln(out, "!!! %v", runErr)
	}
	if emu.IsHalted() {
		translate.Fprintln(out, "Machine halted")
	}

	for name, value := range emu.State() {
		translate.Fprintln(out, "%8s = %v", name, value)
	}

	if len(ranges) != 0 {
		cells, err := emu.Cells(ranges...)
		if err != nil {
			return err
		}
		for addr, word := range cells {
			translate.Fprintln(out, "M[%v] = %v", address(addr), word.Digits())
		}
	}

	if opts.stack {
		translate.Fprintln(out, "BP=%v", address(emu.Bp()))
		translate.Fprintln(out, "SP=%v", address(emu.Sp()))
		if emu.StackDepth() == 0 {
			translate.Fprintln(out, "Stack is empty")
		}
		for addr, word := range emu.Stack() {
			translate.Fprintln(out, "M[%v] = %v", address(addr), word.Digits())
		}
	}

	return
}

func main() {
	opts, err := parseArgs(os.Args)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	err = execute(opts, os.Stdout)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}
