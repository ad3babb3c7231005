package hanzi

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is an inclusive key interval. A range with Min above Max is valid
// and matches nothing.
type Range struct {
	Min uint8
	Max uint8
}

// Contains reports whether key lies inside the range.
func (r Range) Contains(key uint8) bool {
	return key >= r.Min && key <= r.Max
}

// String renders the range in the "min,max" form accepted by ParseRange.
func (r Range) String() string {
	return fmt.Sprintf("%d,%d", r.Min, r.Max)
}

// ParseRange parses a "min,max" range string.
//
// It returns nil, meaning no filter, when raw is empty, does not have
// exactly two comma separated parts, or either part is not an integer in
// 0..255. Each part may carry one leading '+' and surrounding spaces.
// Malformed input is not reported as an error.
func ParseRange(raw string) *Range {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return nil
	}
	lo, ok := parseBound(parts[0])
	if !ok {
		return nil
	}
	hi, ok := parseBound(parts[1])
	if !ok {
		return nil
	}
	return &Range{Min: lo, Max: hi}
}

// parseBound accepts a decimal 0..255 with one optional leading '+',
// ignoring surrounding spaces.
func parseBound(raw string) (uint8, bool) {
	s := strings.TrimPrefix(strings.TrimSpace(raw), "+")
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, false
	}
	return uint8(v), true
}
