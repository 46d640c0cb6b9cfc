package emulator

import (
	"errors"
	"fmt"

	"github.com/ezrec/vsc/translate"
)

var f = translate.From

var (
	ErrStepLimit   = errors.New(f("maximum iteration limit reached, the program has not halted"))
	ErrMemoryRange = errors.New(f("memory range out of bounds"))
	ErrWatchResult = errors.New(f("watch has no result"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Address int
	LineNo  int
	Err     error
}

func (err *ErrRuntime) Error() string {
	addr := fmt.Sprintf("%04d", err.Address)
	if err.LineNo == 0 {
		return f("address %v %v", addr, err.Err)
	}
	return f("address %v line %d %v", addr, err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrWatchExpression is the error for a watch expression that cannot be
// compiled or evaluated.
type ErrWatchExpression struct {
	Expr string
	Err  error
}

func (err *ErrWatchExpression) Error() string {
	return f("watch '%v' %v", err.Expr, err.Err)
}

func (err *ErrWatchExpression) Unwrap() error {
	return err.Err
}
