package internal

import (
	"strconv"
	"strings"

	"github.com/ezrec/vsc/translate"
)

// Range is an inclusive span of addresses.
type Range struct {
	Begin int
	End   int
}

// ErrRange is the error for an unparseable range item.
type ErrRange string

func (err ErrRange) Error() string {
	return translate.From("'%v' is not an address or address range", string(err))
}

// ParseRanges parses a list such as "1, 5, 10-15" into ranges.
// Items are separated by commas or whitespace; each item is a single
// non-negative number or two numbers joined by '-'.
func ParseRanges(text string) (ranges []Range, err error) {
	items := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	for _, item := range items {
		parts := strings.Split(item, "-")
		var nums []int
		for _, part := range parts {
			var n int
			n, err = strconv.Atoi(part)
			if err != nil || n < 0 || part[0] == '+' {
				err = ErrRange(item)
				return
			}
			nums = append(nums, n)
		}

		switch len(nums) {
		case 1:
			ranges = append(ranges, Range{Begin: nums[0], End: nums[0]})
		case 2:
			ranges = append(ranges, Range{Begin: nums[0], End: nums[1]})
		default:
			err = ErrRange(item)
			return
		}
	}

	return
}

// Within returns true if every address of the range lies in [0, limit).
func (r Range) Within(limit int) bool {
	return r.Begin >= 0 && r.End >= 0 && r.Begin < limit && r.End < limit
}
