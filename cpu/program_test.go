package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	ld := &Loader{}
	prog, err := ld.Load(strings.NewReader(strings.Join([]string{
		"0000 10005 ; cpa 0005",
		"0001 00000",
		"0005 00042",
		"0005 00043 ; overwrite",
	}, "\n")), &Memory{})
	assert.NoError(err)

	cell := prog.Debug(0)
	if assert.NotNil(cell) {
		assert.Equal(1, cell.LineNo)
		assert.Equal("0000 10005", cell.Text)
	}

	cell = prog.Debug(5)
	if assert.NotNil(cell) {
		assert.Equal(4, cell.LineNo)
		assert.Equal(Word(43), cell.Word)
	}

	assert.Nil(prog.Debug(2))
	assert.Nil(prog.Debug(MEMORY_SIZE))
}

func TestProgram_Words(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Cells: []Cell{
			{LineNo: 1, Address: 7, Word: 10005},
			{LineNo: 2, Address: 3, Word: 0},
			{LineNo: 3, Address: 7, Word: 42},
		},
	}

	var addrs []int
	var words []Word
	for addr, word := range prog.Words() {
		addrs = append(addrs, addr)
		words = append(words, word)
	}
	assert.Equal([]int{7, 3, 7}, addrs)
	assert.Equal([]Word{10005, 0, 42}, words)

	count := 0
	for range prog.Words() {
		count++
		break
	}
	assert.Equal(1, count)
}
