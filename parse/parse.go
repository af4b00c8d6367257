package parse

import (
	"math"

	"golang.org/x/exp/constraints"
)

// NumsPositive returns every maximal digit run in input as a value of
// the chosen signed integer type. Runs that overflow I are skipped.
// Complexity: O(len(input)).
func NumsPositive[I constraints.Signed](input string) []I {
	return nums[I](input, isDigit)
}

// NumsSigned behaves like NumsPositive but treats '-' as part of a
// numeric run, so a '-' directly in front of a digit run negates it.
// Complexity: O(len(input)).
func NumsSigned[I constraints.Signed](input string) []I {
	return nums[I](input, func(b byte) bool { return isDigit(b) || b == '-' })
}

// nums splits input into maximal runs of bytes sharing the numeric
// class, then parses each numeric run from its start. Runs that fail to
// parse (stray signs, overflow) contribute nothing.
func nums[I constraints.Signed](input string, numeric func(byte) bool) []I {
	var out []I
	for i := 0; i < len(input); {
		cls := numeric(input[i])
		j := i + 1
		for j < len(input) && numeric(input[j]) == cls {
			j++
		}
		if cls {
			if v, ok := atoiPrefix[I](input[i:j]); ok {
				out = append(out, v)
			}
		}
		i = j
	}

	return out
}

// atoiPrefix parses the longest leading number of run: an optional '-'
// followed by digits, stopping at the first byte that cannot extend the
// number. Returns false when the run has no leading number or when the
// value does not fit in I.
func atoiPrefix[I constraints.Signed](run string) (I, bool) {
	i := 0
	neg := false
	if run[0] == '-' {
		neg = true
		i = 1
	}
	if i >= len(run) || !isDigit(run[i]) {
		return 0, false
	}
	var v int64
	for ; i < len(run) && isDigit(run[i]); i++ {
		d := int64(run[i] - '0')
		if v > (math.MaxInt64-d)/10 {
			return 0, false
		}
		v = v*10 + d
	}
	if neg {
		v = -v
	}
	// Width check for narrow target types: round-trip must be exact.
	r := I(v)
	if int64(r) != v {
		return 0, false
	}

	return r, true
}

// isDigit reports whether b is an ASCII decimal digit.
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
