package aoc

import "strings"

// spelledDigits holds the number words, indexed by value-1.
var spelledDigits = [...]string{
	"one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
}

// SpelledMatch is the result of matching letters against the number words.
type SpelledMatch int

const (
	NoMatch SpelledMatch = iota
	Incomplete
	Complete
)

func (m SpelledMatch) String() string {
	switch m {
	case NoMatch:
		return "NoMatch"
	case Incomplete:
		return "Incomplete"
	case Complete:
		return "Complete"
	}
	return ""
}

// MatchSpelled reports whether s is one of "one".."nine" (Complete, with
// its value), a proper prefix of one of them (Incomplete) or neither.
// The empty string is Incomplete.
func MatchSpelled(s string) (m SpelledMatch, n int) {
	for i, w := range spelledDigits {
		if w == s {
			return Complete, i + 1
		}
		if strings.HasPrefix(w, s) {
			m = Incomplete
		}
	}
	return m, 0
}

// RestartSuffix returns the longest proper suffix of s that is still
// Incomplete, trying suffixes from longest to shortest. It returns "" when
// none is.
func RestartSuffix(s string) string {
	for i := 1; i < len(s); i++ {
		if m, _ := MatchSpelled(s[i:]); m == Incomplete {
			return s[i:]
		}
	}
	return ""
}

// NumberScanner finds digits in text, both as ASCII digits and as spelled
// number words. Spelled words may overlap: "eightwo" yields 8 then 2.
//
// The zero value is ready to use.
type NumberScanner struct {
	buf []byte // letters consumed so far that prefix some number word
}

// Reset drops any partially matched word.
func (s *NumberScanner) Reset() {
	s.buf = s.buf[:0]
}

// Step feeds c to the scanner. It reports the digit completed by c, if any.
func (s *NumberScanner) Step(c byte) (digit int, ok bool) {
	switch {
	case '0' <= c && c <= '9':
		s.Reset()
		return Digit(rune(c)), true
	case 'a' <= c && c <= 'z':
		s.buf = append(s.buf, c)
		m, n := MatchSpelled(string(s.buf))
		switch m {
		case Complete:
			s.Reset()
			return n, true
		case Incomplete:
			return 0, false
		}
		s.buf = append(s.buf[:0], RestartSuffix(string(s.buf))...)
		return 0, false
	default:
		s.Reset()
		return 0, false
	}
}

// ForNumbers calls f for each digit in line, literal or spelled, in the
// order they complete. A word still incomplete at the end of line is
// dropped.
func ForNumbers(line string, f func(n int) (keepGoing bool)) {
	var s NumberScanner
	for i := 0; i < len(line); i++ {
		if d, ok := s.Step(line[i]); ok && !f(d) {
			return
		}
	}
}

// Numbers returns the digits found by ForNumbers.
func Numbers(line string) []int {
	var out []int
	ForNumbers(line, func(n int) bool {
		out = append(out, n)
		return true
	})
	return out
}

// DigitsIn returns the ASCII digits in line, ignoring everything else.
func DigitsIn(line string) []int {
	var out []int
	for _, c := range line {
		if '0' <= c && c <= '9' {
			out = append(out, Digit(c))
		}
	}
	return out
}

// CalibrationValue combines the first and last of nums into a two digit
// number. A single digit is used twice; no digits gives 0.
func CalibrationValue(nums []int) int {
	if len(nums) == 0 {
		return 0
	}
	return 10*nums[0] + nums[len(nums)-1]
}
