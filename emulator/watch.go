package emulator

import (
	"slices"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/vsc/cpu"
)

// Watch is a starlark expression over the machine state, such as
//
//	acc == 42 and not zero
//	mem(9998) < 0 or steps > 50
//
// The predeclared names are acc and ip (None until set), sp, bp, zero,
// negative, halted, steps, and mem(addr) which returns the signed value of
// a memory cell.
type Watch struct {
	Expr string

	program *starlark.Program
}

// watchNames are the names predeclared for a watch expression.
var watchNames = []string{"acc", "ip", "sp", "bp", "zero", "negative", "halted", "steps", "mem"}

// NewWatch compiles a watch expression.
func NewWatch(expr string) (watch *Watch, err error) {
	watch = &Watch{Expr: expr}

	err = watch.compile()
	if err != nil {
		watch = nil
	}

	return
}

// compile checks that Expr is a single expression and compiles it.
func (watch *Watch) compile() (err error) {
	opts := syntax.FileOptions{}

	_, err = opts.ParseExpr("watch", watch.Expr, 0)
	if err != nil {
		err = &ErrWatchExpression{Expr: watch.Expr, Err: err}
		return
	}

	file, err := opts.Parse("watch", "rc="+watch.Expr+"\n", 0)
	if err != nil {
		err = &ErrWatchExpression{Expr: watch.Expr, Err: err}
		return
	}

	program, err := starlark.FileProgram(file, func(name string) bool {
		return slices.Contains(watchNames, name)
	})
	if err != nil {
		err = &ErrWatchExpression{Expr: watch.Expr, Err: err}
		return
	}

	watch.program = program
	return
}

// predeclared returns the names visible to a watch expression.
func predeclared(c *cpu.Cpu) starlark.StringDict {
	reg := &c.Registers

	var acc starlark.Value = starlark.None
	if reg.AccValid {
		acc = starlark.MakeInt(reg.Acc.Int())
	}

	var ip starlark.Value = starlark.None
	if reg.IpValid {
		ip = starlark.MakeInt(reg.Ip)
	}

	mem := func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var addr int
		err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &addr)
		if err != nil {
			return nil, err
		}
		word, err := c.Memory.Read(addr)
		if err != nil {
			return nil, err
		}
		return starlark.MakeInt(word.Int()), nil
	}

	return starlark.StringDict{
		"acc":      acc,
		"ip":       ip,
		"sp":       starlark.MakeInt(reg.Sp),
		"bp":       starlark.MakeInt(reg.Bp),
		"zero":     starlark.Bool(reg.Flags.Zero),
		"negative": starlark.Bool(reg.Flags.Negative),
		"halted":   starlark.Bool(c.Halted == cpu.HALT_STOPPED),
		"steps":    starlark.MakeInt(c.Steps),
		"mem":      starlark.NewBuiltin("mem", mem),
	}
}

// Eval evaluates the watch against the machine state.
func (watch *Watch) Eval(c *cpu.Cpu) (ok bool, err error) {
	if watch.program == nil {
		err = watch.compile()
		if err != nil {
			return
		}
	}

	thread := starlark.Thread{}

	dict, err := watch.program.Init(&thread, predeclared(c))
	if err != nil {
		err = &ErrWatchExpression{Expr: watch.Expr, Err: err}
		return
	}

	rc, found := dict["rc"]
	if !found {
		err = &ErrWatchExpression{Expr: watch.Expr, Err: ErrWatchResult}
		return
	}

	ok = bool(rc.Truth())
	return
}
