package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aocsolve/aoc"
)

const day2Sample = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
`

func TestParseGame(t *testing.T) {
	g, ok := parseGame("Game 33: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green")
	require.True(t, ok)
	assert.Equal(t, game{
		ID: 33,
		Rounds: []cubes{
			{Red: 4, Blue: 3},
			{Red: 1, Green: 2, Blue: 6},
			{Green: 2},
		},
	}, g)
}

func TestParseGameRejects(t *testing.T) {
	for _, line := range []string{
		"",
		"Game: 3 blue",
		"Game 1: 3 purple",
		"Game 1: 3 blue,4 red",
		"Game 1: blue 3",
		"game 1: 3 blue",
		"Game 99999999999999999999: 1 red",
		"Game 1: 99999999999999999999 red",
		"Game 1: 2 blue; 99999999999999999999 red",
	} {
		_, ok := parseGame(line)
		assert.False(t, ok, "parseGame(%q)", line)
	}
}

func TestParseRound(t *testing.T) {
	c, ok := parseRound("1 red, 1 green, 1 blue")
	require.True(t, ok)
	assert.Equal(t, cubes{Red: 1, Green: 1, Blue: 1}, c)
}

func TestCubesFits(t *testing.T) {
	bag := cubes{Red: 12, Green: 13, Blue: 14}
	for _, c := range []cubes{
		{Red: 12, Blue: 3},
		{Red: 1, Green: 13, Blue: 6},
		{Green: 2, Blue: 14},
	} {
		assert.True(t, c.fits(bag), "%+v", c)
	}
	for _, c := range []cubes{
		{Red: 13, Blue: 3},
		{Red: 1, Green: 14, Blue: 6},
		{Green: 2, Blue: 15},
	} {
		assert.False(t, c.fits(bag), "%+v", c)
	}
}

func TestMinBag(t *testing.T) {
	g, ok := parseGame("Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red")
	require.True(t, ok)
	assert.Equal(t, cubes{Red: 20, Green: 13, Blue: 6}, g.minBag())
	assert.Equal(t, 1560, g.minBag().power())
}

func TestDay2(t *testing.T) {
	s := solver{aoc.NewPuzzle(day2Sample + "not a game\n")}
	assert.Equal(t, 8, s.D2p1())
	assert.Equal(t, 2286, s.D2p2())

	s = solver{aoc.NewPuzzle("Game 1: 99999999999999999999 red\nGame 2: 1 red\n")}
	assert.Equal(t, 2, s.D2p1(), "overflowing game is skipped")
	assert.Equal(t, 0, s.D2p2(), "only game 2 counts, with no green or blue")
}
