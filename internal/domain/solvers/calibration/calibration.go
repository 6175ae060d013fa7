// Package calibration recovers trebuchet calibration values: the two-digit
// number formed by the first and last digit found on each line.
package calibration

// longestToken is the length of the longest spelled digit ("three", "seven", "eight").
const longestToken = 5

// tokens maps every recognised digit token to its value. Spelled digits
// include "zero".
var tokens = map[string]uint64{
	"0": 0, "1": 1, "2": 2, "3": 3, "4": 4,
	"5": 5, "6": 6, "7": 7, "8": 8, "9": 9,
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
}

// matcher reports the digit starting at byte offset i of line, if any.
type matcher func(line string, i int) (uint64, bool)

// Digits sums the calibration values using numeric digits only.
func Digits(lines []string) uint64 {
	return sum(lines, matchDigit)
}

// Words sums the calibration values using numeric and spelled digits.
// Tokens may overlap, so "oneight" reads as 1 then 8.
func Words(lines []string) uint64 {
	return sum(lines, matchToken)
}

func sum(lines []string, match matcher) uint64 {
	var total uint64
	for _, line := range lines {
		total += value(line, match)
	}

	return total
}

// value returns first*10 + last for the digits match finds in line. A single
// digit serves as both; a line without digits is worth 0.
func value(line string, match matcher) uint64 {
	var first, last uint64

	found := false

	for i := 0; i < len(line); i++ {
		d, ok := match(line, i)
		if !ok {
			continue
		}

		if !found {
			first = d
			found = true
		}

		last = d
	}

	if !found {
		return 0
	}

	return first*10 + last
}

func matchDigit(line string, i int) (uint64, bool) {
	c := line[i]
	if c < '0' || c > '9' {
		return 0, false
	}

	return uint64(c - '0'), true
}

// matchToken returns the shortest token starting at i.
func matchToken(line string, i int) (uint64, bool) {
	for n := 1; n <= longestToken && i+n <= len(line); n++ {
		if d, ok := tokens[line[i:i+n]]; ok {
			return d, true
		}
	}

	return 0, false
}
