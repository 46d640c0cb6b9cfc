package emulator

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/vsc/cpu"
	"github.com/ezrec/vsc/internal"
)

// writeProgram writes machine code lines to a temporary file.
func writeProgram(t *testing.T, lines ...string) (path string) {
	path = filepath.Join(t.TempDir(), "program.vsc")
	err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return
}

// loadProgram creates an emulator with zeroed memory, loads the lines and
// starts at address 0.
func loadProgram(t *testing.T, lines ...string) (emu *Emulator) {
	emu = NewEmulator()
	emu.Reset()
	err := emu.Load(writeProgram(t, lines...))
	if err != nil {
		t.Fatal(err)
	}
	err = emu.SetStartAddress(0)
	if err != nil {
		t.Fatal(err)
	}
	return
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Cpu)
	assert.NotNil(emu.Program)
	assert.Equal(RUN_STEP_LIMIT, emu.StepLimit)
	assert.False(emu.Loaded)
	assert.False(emu.IsHalted())

	_, ok := emu.Acc()
	assert.False(ok)
	_, ok = emu.Ip()
	assert.False(ok)
	assert.Equal(cpu.STACK_BASE, emu.Sp())
	assert.Equal(cpu.STACK_BASE, emu.Bp())
}

func TestEmulator_LoadMissing(t *testing.T) {
	assert := assert.New(t)

	emu := loadProgram(t, "0000 00000")
	assert.True(emu.Loaded)

	err := emu.Load(filepath.Join(t.TempDir(), "missing.vsc"))
	assert.ErrorIs(err, os.ErrNotExist)
	assert.False(emu.Loaded)

	_, err = emu.Run()
	assert.ErrorIs(err, cpu.ErrNotLoaded)
}

func TestEmulator_LoadSyntax(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	err := emu.Load(writeProgram(t, "0000 10005", "0001 hlt"))
	assert.ErrorIs(err, cpu.ErrLineValue)
	assert.False(emu.Loaded)

	var es cpu.ErrSyntax
	if assert.True(errors.As(err, &es)) {
		assert.Equal(2, es.LineNo)
	}
}

func TestEmulator_Run(t *testing.T) {
	assert := assert.New(t)

	emu := loadProgram(t,
		"0000 10005 ; cpa 0005",
		"0001 00000 ; hlt",
		"0005 00042",
	)

	steps, err := emu.Run()
	assert.NoError(err)
	assert.Equal(2, steps)
	assert.True(emu.IsHalted())

	value, ok := emu.AccInt()
	assert.True(ok)
	assert.Equal(42, value)

	ip, ok := emu.Ip()
	assert.True(ok)
	assert.Equal(1, ip)

	_, err = emu.Run()
	assert.ErrorIs(err, cpu.ErrHalted)
}

func TestEmulator_RunCountdown(t *testing.T) {
	assert := assert.New(t)

	emu := loadProgram(t,
		"0000 10020 ; cpa 0020",
		"0001 92401 ; sub (01)",
		"0002 20020 ; sto 0020",
		"0003 80005 ; brz 0005",
		"0004 60001 ; bra 0001",
		"0005 00000 ; hlt",
		"0020 00005",
	)

	steps, err := emu.Run()
	assert.NoError(err)
	assert.Equal(1+5*3+4+1, steps)
	assert.Equal(cpu.Word(0), emu.Memory.Cell[20])
	assert.Equal(cpu.Flags{Zero: true}, emu.Flags())
}

func TestEmulator_StepLimit(t *testing.T) {
	assert := assert.New(t)

	emu := loadProgram(t,
		"0000 92100 ; cpa (00)",
		"0001 92301 ; add (01)",
		"0002 60001 ; bra 0001",
	)
	emu.StepLimit = 10

	steps, err := emu.Run()
	assert.ErrorIs(err, ErrStepLimit)
	assert.Equal(10, steps)
	assert.False(emu.IsHalted())

	value, _ := emu.AccInt()
	assert.Equal(5, value)

	steps, err = emu.Run()
	assert.ErrorIs(err, ErrStepLimit)
	assert.Equal(10, steps)
	assert.Equal(20, emu.Steps)

	value, _ = emu.AccInt()
	assert.Equal(10, value)
}

func TestEmulator_RuntimeError(t *testing.T) {
	assert := assert.New(t)

	emu := loadProgram(t,
		"0000 92105 ; cpa (05)",
		"",
		"0001 03000 ; push",
		"0002 04000 ; pop",
		"0003 04000 ; pop",
		"0004 00000",
	)

	steps, err := emu.Run()
	assert.Equal(3, steps)
	assert.ErrorIs(err, cpu.ErrStackUnderflow)
	assert.True(emu.IsHalted())

	var er *ErrRuntime
	if assert.True(errors.As(err, &er)) {
		assert.Equal(3, er.Address)
		assert.Equal(5, er.LineNo)
		assert.Contains(er.Error(), "line 5")
	}

	var eo cpu.ErrOpcode
	if assert.True(errors.As(err, &eo)) {
		assert.Equal(cpu.Word(4000), cpu.Word(eo))
	}
}

func TestEmulator_StepGuards(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	err := emu.Step()
	assert.ErrorIs(err, cpu.ErrNotLoaded)

	var er *ErrRuntime
	assert.False(errors.As(err, &er))

	emu.Reset()
	assert.NoError(emu.Load(writeProgram(t, "0000 00000")))
	assert.ErrorIs(emu.Step(), cpu.ErrNoStartAddress)

	assert.NoError(emu.SetStartAddress(0))
	assert.NoError(emu.Step())
	assert.True(emu.IsHalted())
	assert.ErrorIs(emu.Step(), cpu.ErrHalted)
}

func TestEmulator_Reset(t *testing.T) {
	assert := assert.New(t)

	emu := loadProgram(t, "0000 92107", "0001 00000")
	_, err := emu.Run()
	assert.NoError(err)

	emu.Reset()
	assert.True(emu.Loaded)
	assert.False(emu.IsHalted())
	assert.Equal(0, emu.Steps)
	_, ok := emu.Acc()
	assert.False(ok)
	assert.Equal(cpu.Word(0), emu.Memory.Cell[0])
}

func TestEmulator_LineNo(t *testing.T) {
	assert := assert.New(t)

	emu := loadProgram(t,
		"; header",
		"0000 91100 ; cpa 00010",
		"0001 00010",
		"0002 00000",
	)
	assert.Equal(2, emu.LineNo())

	assert.NoError(emu.Step())
	assert.Equal(4, emu.LineNo())

	assert.NoError(emu.SetStartAddress(50))
	assert.Equal(0, emu.LineNo())
}

func TestEmulator_Cells(t *testing.T) {
	assert := assert.New(t)

	emu := loadProgram(t, "0000 00001", "0001 00002", "0002 00003", "9999 10009")

	cells, err := emu.Cells(internal.Range{Begin: 2, End: 0}, internal.Range{Begin: 9999, End: 9999})
	assert.NoError(err)

	var addrs []int
	var words []cpu.Word
	for addr, word := range cells {
		addrs = append(addrs, addr)
		words = append(words, word)
	}
	assert.Equal([]int{2, 1, 0, 9999}, addrs)
	assert.Equal([]cpu.Word{3, 2, 1, 10009}, words)

	_, err = emu.Cells(internal.Range{Begin: 9990, End: 10000})
	assert.ErrorIs(err, ErrMemoryRange)
}

func TestEmulator_State(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	var names []string
	state := map[string]string{}
	for name, value := range emu.State() {
		names = append(names, name)
		state[name] = value
	}

	assert.Equal([]string{"A", "IP", "SP", "BP", "zero", "negative", "loaded", "halted", "steps"}, names)
	assert.Equal("-----", state["A"])
	assert.Equal("----", state["IP"])
	assert.Equal("9999", state["SP"])
	assert.Equal("false", state["loaded"])
	assert.Equal("unset", state["halted"])

	emu = loadProgram(t, "0000 92342", "0001 00000")
	_, err := emu.Run()
	assert.ErrorIs(err, cpu.ErrAccUnset)

	emu = loadProgram(t, "0000 92142", "0001 00000")
	_, err = emu.Run()
	assert.NoError(err)

	state = map[string]string{}
	for name, value := range emu.State() {
		state[name] = value
	}
	assert.Equal("00042 (+0042)", state["A"])
	assert.Equal("0001", state["IP"])
	assert.Equal("true", state["loaded"])
	assert.Equal("halted", state["halted"])
	assert.Equal("2", state["steps"])
}
