package main

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/aocsolve/aoc"
)

var (
	gameRx = regexp.MustCompile(`^Game (\d+): ([ ,;0-9redgnblu]+)$`)
	drawRx = regexp.MustCompile(`^(\d+) (red|green|blue)$`)
)

// cubes is one handful of cubes, or the content of a bag.
type cubes struct {
	Red, Green, Blue int
}

// fits reports whether c could have been drawn from bag.
func (c cubes) fits(bag cubes) bool {
	return c.Red <= bag.Red && c.Green <= bag.Green && c.Blue <= bag.Blue
}

func (c cubes) power() int {
	return c.Red * c.Green * c.Blue
}

type game struct {
	ID     int
	Rounds []cubes
}

func (g game) possible(bag cubes) bool {
	for _, r := range g.Rounds {
		if !r.fits(bag) {
			return false
		}
	}
	return true
}

// minBag returns the fewest cubes of each color that make every round
// possible.
func (g game) minBag() cubes {
	return aoc.Fold(g.Rounds, func(acc, r cubes) cubes {
		return cubes{
			Red:   max(acc.Red, r.Red),
			Green: max(acc.Green, r.Green),
			Blue:  max(acc.Blue, r.Blue),
		}
	}, cubes{})
}

// parseGame parses "Game 1: 3 blue, 4 red; 1 red, 2 green". It reports
// false for any line that does not follow that shape.
func parseGame(line string) (game, bool) {
	m := gameRx.FindStringSubmatch(line)
	if m == nil {
		return game{}, false
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return game{}, false
	}
	g := game{ID: id}
	for _, round := range strings.Split(m[2], "; ") {
		r, ok := parseRound(round)
		if !ok {
			return game{}, false
		}
		g.Rounds = append(g.Rounds, r)
	}
	return g, true
}

func parseRound(round string) (cubes, bool) {
	var c cubes
	for _, draw := range strings.Split(round, ", ") {
		m := drawRx.FindStringSubmatch(draw)
		if m == nil {
			return cubes{}, false
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return cubes{}, false
		}
		switch m[2] {
		case "red":
			c.Red = n
		case "green":
			c.Green = n
		case "blue":
			c.Blue = n
		}
	}
	return c, true
}

func (s solver) forGames(f func(game)) {
	s.ForLines(func(line string) {
		g, ok := parseGame(line)
		if !ok {
			s.Debugf("skipping %q", line)
			return
		}
		f(g)
	})
}

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func (s solver) D2p1() any {
	bag := cubes{Red: 12, Green: 13, Blue: 14}
	var ids []int
	s.forGames(func(g game) {
		if g.possible(bag) {
			ids = append(ids, g.ID)
		}
	})
	return aoc.Sum(ids...)
}

// want=2286
func (s solver) D2p2() any {
	var powers []int
	s.forGames(func(g game) {
		powers = append(powers, g.minBag().power())
	})
	return aoc.Sum(powers...)
}
