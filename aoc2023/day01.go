package main

import "github.com/aocsolve/aoc"

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (s solver) D1p1() any {
	return s.calibrationSum(aoc.DigitsIn)
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func (s solver) D1p2() any {
	return s.calibrationSum(aoc.Numbers)
}

func (s solver) calibrationSum(digits func(string) []int) int {
	sum := 0
	s.ForLines(func(line string) {
		nums := digits(line)
		s.Debugf("%s: %v", line, nums)
		sum += aoc.CalibrationValue(nums)
	})
	return sum
}
