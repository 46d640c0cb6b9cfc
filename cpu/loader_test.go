package cpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoader_Comments(t *testing.T) {
	assert := assert.New(t)

	text := `  0000   10005  ; cpa 0005

; nothing here
	0001 0
0005 42;answer
`
	mem := &Memory{}
	ld := &Loader{}
	prog, err := ld.Load(strings.NewReader(text), mem)
	assert.NoError(err)

	assert.Equal([]Cell{
		{LineNo: 1, Address: 0, Word: 10005, Text: "0000 10005"},
		{LineNo: 4, Address: 1, Word: 0, Text: "0001 0"},
		{LineNo: 5, Address: 5, Word: 42, Text: "0005 42"},
	}, prog.Cells)

	assert.Equal(Word(10005), mem.Cell[0])
	assert.Equal(Word(42), mem.Cell[5])
}

func TestLoader_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text   string
		lineno int
		line   string
		err    error
	}){
		{"0000\n", 1, "0000", ErrLineTokens},
		{"0000 1 2\n", 1, "0000 1 2", ErrLineTokens},
		{"0000 1\n0001 2 ; ok\n  0002  ;missing\n", 3, "0002", ErrLineTokens},
		{"00x1 5\n", 1, "00x1 5", ErrLineAddress},
		{"-1 5\n", 1, "-1 5", ErrLineAddress},
		{"10000 5\n", 1, "10000 5", ErrAddressLimits},
		{"0000 abc\n", 1, "0000 abc", ErrLineValue},
		{"0000 -42\n", 1, "0000 -42", ErrLineValue},
	}

	for _, entry := range table {
		mem := &Memory{}
		ld := &Loader{}
		_, err := ld.Load(strings.NewReader(entry.text), mem)
		assert.ErrorIs(err, entry.err, entry.text)

		var es ErrSyntax
		if assert.True(errors.As(err, &es), entry.text) {
			assert.Equal(entry.lineno, es.LineNo, entry.text)
			assert.Equal(entry.line, es.Line, entry.text)
		}
	}
}

func TestLoader_ValueError(t *testing.T) {
	assert := assert.New(t)

	ld := &Loader{}
	_, err := ld.Load(strings.NewReader("0000 12x45"), &Memory{})

	var ep ErrParseWord
	assert.True(errors.As(err, &ep))
	assert.Equal(ErrParseWord("12x45"), ep)
}

func TestLoader_WideValues(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	ld := &Loader{}
	prog, err := ld.Load(strings.NewReader("0000 000042\n0001 123456\n0002 0000000\n"), mem)
	assert.NoError(err)
	assert.Len(prog.Cells, 3)

	assert.Equal(Word(42), mem.Cell[0])
	assert.Equal(Word(123456), mem.Cell[1])
	assert.False(mem.Cell[1].Valid())
	assert.Equal(Word(0), mem.Cell[2])
}

func TestLoader_NoRollback(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	ld := &Loader{}
	_, err := ld.Load(strings.NewReader("0000 11111\n0001 22222\nbad\n0002 33333\n"), mem)
	assert.ErrorIs(err, ErrLineTokens)

	assert.Equal(Word(11111), mem.Cell[0])
	assert.Equal(Word(22222), mem.Cell[1])
	assert.Equal(Word(0), mem.Cell[2])
}

func TestCpu_Load(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	assert.False(cpu.Loaded)

	prog, err := cpu.Load(strings.NewReader("0000 10042\n"))
	assert.NoError(err)
	assert.Len(prog.Cells, 1)
	assert.True(cpu.Loaded)
	assert.Equal(HALT_RUNNING, cpu.Halted)
	assert.Equal(Word(10042), cpu.Memory.Cell[0])

	_, err = cpu.Load(strings.NewReader("0000 10042\n0001 x\n"))
	assert.ErrorIs(err, ErrLineValue)
	assert.False(cpu.Loaded)
	assert.ErrorIs(cpu.Step(), ErrNotLoaded)
}

func TestCpu_LoadEmpty(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	prog, err := cpu.Load(strings.NewReader("; nothing but a comment\n\n"))
	assert.NoError(err)
	assert.Empty(prog.Cells)
	assert.True(cpu.Loaded)
}
