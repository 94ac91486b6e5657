package algo

import (
	"testing"

	"github.com/laserwatch/laserwatch/pkg/grid"
)

const smallField = `.#..#
.....
#####
....#
...##`

const mediumField = `......#.#.
#..#.#....
..#######.
.#.#.###..
.#..#.....
..#....#.#
#..#....#.
.##.#..###
##...#..#.
.#....####`

const largeField = `.#..##.###...#######
##.############..##.
.#.######.########.#
.###.#######.####.#.
#####.##.#.##.###.##
..#####..#.#########
####################
#.####....###.#.#.##
##.#################
#####.##.###..####..
..######..##.#######
####.##.####...##..#
.#####..#.######.###
##...#.##########...
#.##########.#######
.####.#.###.###.#.##
....##.##.###..#####
.#.#.###########.###
#.#.#.#####.####.###
###.##.####.##.#..##`

// sweepField has its observer marked X rather than #.
const sweepField = `.#....#####...#..
##...##.#####..##
##...#...#.#####.
..#.....X...###..
..#.#.....#....##`

func mustParse(t *testing.T, s string) *grid.Map {
	t.Helper()
	m, err := grid.ParseString(s, grid.DefaultOccupied)
	if err != nil {
		t.Fatalf("failed to parse field: %v", err)
	}
	return m
}
