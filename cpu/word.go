package cpu

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	WORD_DIGITS    = 5      // Digits in a word, sign digit included.
	WORD_LIMIT     = 100000 // Raw word patterns are 00000 to 99999.
	WORD_MAGNITUDE = 10000  // Magnitude digits hold 0000 to 9999.
	WORD_MAX       = WORD_MAGNITUDE - 1
	WORD_MIN       = -WORD_MAX

	SIGN_POSITIVE = 0 // Sign digit of a non-negative word.
	SIGN_NEGATIVE = 1 // Sign digit written for a negative word.
)

// WORD_INVALID is loaded for a numeral too wide to hold in a Word.
const WORD_INVALID = Word(^uint32(0))

// Word is the raw five digit sign-magnitude pattern of a memory cell.
// The leading digit is the sign, the remaining four the magnitude.
type Word uint32

// EncodeWord encodes an integer as a word.
// Values outside [WORD_MIN, WORD_MAX] are not representable.
func EncodeWord(value int) (word Word, err error) {
	if value > WORD_MAX || value < WORD_MIN {
		err = ErrWordOverflow
		return
	}

	if value < 0 {
		word = Word(SIGN_NEGATIVE*WORD_MAGNITUDE + -value)
	} else {
		word = Word(value)
	}

	return
}

// DecodeWord decodes a word into an integer.
func DecodeWord(word Word) int {
	return word.Int()
}

// ParseWord normalizes a decimal numeral into a word.
// Leading zeros are dropped. A numeral wider than five digits is kept as an
// invalid word, which the decoder rejects; one too wide for a Word becomes
// WORD_INVALID.
func ParseWord(text string) (word Word, err error) {
	if len(text) == 0 {
		err = ErrParseWord(text)
		return
	}

	for _, ch := range text {
		if ch < '0' || ch > '9' {
			err = ErrParseWord(text)
			return
		}
	}

	digits := strings.TrimLeft(text, "0")
	if len(digits) == 0 {
		return
	}

	value, perr := strconv.ParseUint(digits, 10, 32)
	if perr != nil {
		word = WORD_INVALID
		return
	}

	word = Word(value)
	return
}

// Valid returns true if the word is a five digit pattern.
func (w Word) Valid() bool {
	return w < WORD_LIMIT
}

// Sign returns the leading (sign) digit.
func (w Word) Sign() int {
	return int(w/WORD_MAGNITUDE) % 10
}

// Magnitude returns the value of the four magnitude digits.
func (w Word) Magnitude() int {
	return int(w % WORD_MAGNITUDE)
}

// IsNegative is true if the sign digit carries the negative marker.
// Any sign digit other than zero is treated as negative.
func (w Word) IsNegative() bool {
	return w.Sign() != SIGN_POSITIVE
}

// IsZero is true if the magnitude digits are all zero, regardless of sign.
func (w Word) IsZero() bool {
	return w.Magnitude() == 0
}

// Int returns the signed value of the word.
func (w Word) Int() int {
	if w.IsNegative() {
		return -w.Magnitude()
	}
	return w.Magnitude()
}

// Digits returns the five digit text of the word.
func (w Word) Digits() string {
	return fmt.Sprintf("%05d", uint32(w))
}

// String returns the digits and signed value, such as "10042 (-0042)".
func (w Word) String() string {
	return fmt.Sprintf("%v (%v)", w.Digits(), FormatInt(w.Int()))
}

// FormatInt formats a word value with an explicit sign and four digits.
func FormatInt(value int) string {
	if value > 0 {
		return fmt.Sprintf("+%04d", value)
	}
	return fmt.Sprintf("%05d", value)
}
